package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/placekeeper/internal/common"
	"github.com/dmitrijs2005/placekeeper/internal/config"
	"github.com/dmitrijs2005/placekeeper/internal/form"
	"github.com/dmitrijs2005/placekeeper/internal/geo"
	"github.com/dmitrijs2005/placekeeper/internal/logging"
	"github.com/dmitrijs2005/placekeeper/internal/models"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	lines := &[]string{}
	printlnFn = func(args ...any) (int, error) {
		*lines = append(*lines, strings.TrimRight(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return lines
}

func outputContains(lines []string, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestApp(ps placeService, r *bufio.Reader) *App {
	return &App{
		config:  &config.Config{},
		log:     testLogger(),
		places:  ps,
		reader:  r,
		sortKey: models.SortByDate,
		sortAsc: true,
	}
}

type fakePS struct {
	listKey models.SortKey
	listAsc bool
	listOut []models.Place
	listErr error

	searchText string
	searchOut  []models.Place

	getID  string
	getOut *models.Place
	getErr error

	savedForm *form.PlaceForm
	saveErr   error

	delID  string
	delErr error
}

func (f *fakePS) List(ctx context.Context, key models.SortKey, ascending bool) ([]models.Place, error) {
	f.listKey = key
	f.listAsc = ascending
	return f.listOut, f.listErr
}

func (f *fakePS) Search(ctx context.Context, substring string) ([]models.Place, error) {
	f.searchText = substring
	return f.searchOut, nil
}

func (f *fakePS) Get(ctx context.Context, id string) (*models.Place, error) {
	f.getID = id
	return f.getOut, f.getErr
}

func (f *fakePS) Save(ctx context.Context, fm *form.PlaceForm) (*models.Place, error) {
	if !fm.CanSave() {
		return nil, common.ErrorNameRequired
	}
	f.savedForm = fm
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	return fm.Place(), nil
}

func (f *fakePS) Delete(ctx context.Context, id string) error {
	f.delID = id
	return f.delErr
}

type fakeGeocoder struct {
	searchQuery string
	searchOut   []geo.Candidate
	searchErr   error

	reverseOut *geo.Address
	reverseErr error
}

func (f *fakeGeocoder) Search(ctx context.Context, address string) ([]geo.Candidate, error) {
	f.searchQuery = address
	return f.searchOut, f.searchErr
}

func (f *fakeGeocoder) Reverse(ctx context.Context, c geo.Coordinate) (*geo.Address, error) {
	return f.reverseOut, f.reverseErr
}

type stubRouter struct {
	route *geo.Route
	err   error
}

func (s *stubRouter) WalkingRoute(ctx context.Context, from, to geo.Coordinate) (*geo.Route, error) {
	return s.route, s.err
}

type fakeBackup struct {
	pushed  []string
	pushErr error
}

func (f *fakeBackup) Push(ctx context.Context, p *models.Place) (string, error) {
	if f.pushErr != nil {
		return "", f.pushErr
	}
	key := "places/" + p.Id + ".png"
	f.pushed = append(f.pushed, key)
	return key, nil
}

func (f *fakeBackup) FetchURL(ctx context.Context, key string) (string, error) {
	return "http://bucket.local/" + key, nil
}

// ------------ tests ------------

func TestAdd_SavesFilledForm(t *testing.T) {
	captureOutput(t)

	ps := &fakePS{}
	app := newTestApp(ps, readerFromLines(
		"Central Market", // name
		"Riga",           // location
		"market",         // type
		"3",              // tap star 3
		"",               // done rating
		"",               // no photo
	))

	require.NoError(t, app.Add(context.Background()))

	require.NotNil(t, ps.savedForm)
	p := ps.savedForm.Place()
	assert.Equal(t, "Central Market", p.Name)
	assert.Equal(t, "Riga", p.Location)
	assert.Equal(t, "market", p.Type)
	assert.Equal(t, 3, p.Rating)
	assert.NotEmpty(t, p.Id)
}

func TestAdd_SameStarTwiceClearsRating(t *testing.T) {
	captureOutput(t)

	ps := &fakePS{}
	app := newTestApp(ps, readerFromLines(
		"Park",
		"",
		"",
		"5",
		"5",
		"",
		"",
	))

	require.NoError(t, app.Add(context.Background()))
	require.NotNil(t, ps.savedForm)
	assert.Equal(t, 0, ps.savedForm.Place().Rating)
}

func TestAdd_EmptyNameRefused(t *testing.T) {
	out := captureOutput(t)

	ps := &fakePS{}
	app := newTestApp(ps, readerFromLines(
		"", // name left empty
		"",
		"",
		"",
		"",
	))

	err := app.Add(context.Background())
	require.ErrorIs(t, err, common.ErrorNameRequired)
	assert.Nil(t, ps.savedForm, "nothing may reach the store")
	assert.True(t, outputContains(*out, "Name is required"))
}

func TestEdit_EmptyAnswersKeepFields(t *testing.T) {
	captureOutput(t)

	created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	ps := &fakePS{getOut: &models.Place{
		Id: "id1", Name: "Old Cafe", Location: "Riga", Type: "cafe", Rating: 2, CreatedAt: created,
	}}
	app := newTestApp(ps, readerFromLines(
		"id1", // id to edit
		"",    // keep name
		"",    // keep location
		"",    // keep type
		"",    // keep rating
		"",    // keep photo
	))

	require.NoError(t, app.Edit(context.Background()))
	assert.Equal(t, "id1", ps.getID)

	require.NotNil(t, ps.savedForm)
	p := ps.savedForm.Place()
	assert.Equal(t, "id1", p.Id)
	assert.Equal(t, "Old Cafe", p.Name)
	assert.Equal(t, 2, p.Rating)
	assert.Equal(t, created, p.CreatedAt)
}

func TestEdit_NotFound(t *testing.T) {
	out := captureOutput(t)

	ps := &fakePS{getErr: common.ErrorNotFound}
	app := newTestApp(ps, readerFromLines("missing"))

	err := app.Edit(context.Background())
	require.ErrorIs(t, err, common.ErrorNotFound)
	assert.True(t, outputContains(*out, "not found"))
}

func TestDelete_PassesID(t *testing.T) {
	captureOutput(t)

	ps := &fakePS{}
	app := newTestApp(ps, readerFromLines("id777"))

	require.NoError(t, app.Delete(context.Background()))
	assert.Equal(t, "id777", ps.delID)
}

func TestShow_PrintsDetailsAndExportsImage(t *testing.T) {
	out := captureOutput(t)

	tmp := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(old) })

	ps := &fakePS{getOut: &models.Place{
		Id: "id1", Name: "Opera House", Location: "Riga", Type: "theatre", Rating: 5,
		CreatedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}}
	app := newTestApp(ps, readerFromLines("id1"))

	require.NoError(t, app.Show(context.Background()))
	assert.True(t, outputContains(*out, "Opera House"))
	assert.True(t, outputContains(*out, "Image saved to:"))

	_, err = os.Stat("export/id1.png")
	require.NoError(t, err, "image must be exported")
}

func TestSort_UpdatesStateAndRelists(t *testing.T) {
	captureOutput(t)

	ps := &fakePS{}
	app := newTestApp(ps, readerFromLines("name", "desc"))

	require.NoError(t, app.Sort(context.Background()))
	assert.Equal(t, models.SortByName, app.sortKey)
	assert.False(t, app.sortAsc)
	assert.Equal(t, models.SortByName, ps.listKey, "listing must use the new order")
	assert.False(t, ps.listAsc)
}

func TestSort_UnknownKeyKeepsState(t *testing.T) {
	captureOutput(t)

	ps := &fakePS{}
	app := newTestApp(ps, readerFromLines("size"))

	require.NoError(t, app.Sort(context.Background()))
	assert.Equal(t, models.SortByDate, app.sortKey)
	assert.True(t, app.sortAsc)
}

func TestSearch_PassesText(t *testing.T) {
	out := captureOutput(t)

	ps := &fakePS{searchOut: []models.Place{{Id: "1", Name: "Corner Cafe"}}}
	app := newTestApp(ps, readerFromLines("cafe"))

	require.NoError(t, app.Search(context.Background()))
	assert.Equal(t, "cafe", ps.searchText)
	assert.True(t, outputContains(*out, "Corner Cafe"))
}

func TestLocate_PrintsCandidates(t *testing.T) {
	out := captureOutput(t)

	gc := &fakeGeocoder{searchOut: []geo.Candidate{
		{DisplayName: "Brivibas iela 1, Riga", Coordinate: geo.Coordinate{Lat: 56.95, Lon: 24.11}},
	}}
	app := newTestApp(&fakePS{}, readerFromLines("Brivibas 1"))
	app.geocoder = gc

	require.NoError(t, app.Locate(context.Background()))
	assert.Equal(t, "Brivibas 1", gc.searchQuery)
	assert.True(t, outputContains(*out, "Brivibas iela 1, Riga"))
}

func TestLocate_NothingFound(t *testing.T) {
	out := captureOutput(t)

	app := newTestApp(&fakePS{}, readerFromLines("nowhere at all"))
	app.geocoder = &fakeGeocoder{}

	err := app.Locate(context.Background())
	require.ErrorIs(t, err, common.ErrorNoDestination)
	assert.True(t, outputContains(*out, "Destination is not found"))
}

func TestWhereAmI_PrintsAddress(t *testing.T) {
	out := captureOutput(t)

	app := newTestApp(&fakePS{}, readerFromLines())
	app.location = geo.NewStaticProvider(geo.AuthAuthorizedWhenInUse, &geo.Coordinate{Lat: 56.95, Lon: 24.11})
	app.geocoder = &fakeGeocoder{reverseOut: &geo.Address{City: "Riga", Street: "Brivibas iela", HouseNumber: "1"}}

	require.NoError(t, app.WhereAmI(context.Background()))
	assert.True(t, outputContains(*out, "Riga, Brivibas iela, 1"))
}

func TestWhereAmI_Restricted(t *testing.T) {
	out := captureOutput(t)

	app := newTestApp(&fakePS{}, readerFromLines())
	app.location = geo.NewStaticProvider(geo.AuthDenied, nil)

	err := app.WhereAmI(context.Background())
	require.ErrorIs(t, err, common.ErrorLocationRestricted)
	assert.True(t, outputContains(*out, "enable location access"))
}

func TestRoute_PrintsSummary(t *testing.T) {
	out := captureOutput(t)

	ps := &fakePS{getOut: &models.Place{Id: "id1", Name: "Old Town", Location: "Old Town, Riga"}}
	gc := &fakeGeocoder{searchOut: []geo.Candidate{
		{DisplayName: "Old Town, Riga", Coordinate: geo.Coordinate{Lat: 56.949, Lon: 24.105}},
	}}
	app := newTestApp(ps, readerFromLines("id1"))
	app.geocoder = gc
	app.location = geo.NewStaticProvider(geo.AuthAuthorizedAlways, &geo.Coordinate{Lat: 56.95, Lon: 24.11})
	app.directions = geo.NewDirections(&stubRouter{route: &geo.Route{Distance: 1250, Duration: 125}}, testLogger())

	require.NoError(t, app.Route(context.Background()))
	assert.Equal(t, "id1", ps.getID)
	assert.Equal(t, "Old Town, Riga", gc.searchQuery)
	assert.True(t, outputContains(*out, "Distance: 1.2 km"))
	assert.True(t, outputContains(*out, "Time: 2:05"))
}

func TestRoute_PlaceWithoutLocation(t *testing.T) {
	out := captureOutput(t)

	ps := &fakePS{getOut: &models.Place{Id: "id1", Name: "Nameless"}}
	app := newTestApp(ps, readerFromLines("id1"))
	app.geocoder = &fakeGeocoder{}

	err := app.Route(context.Background())
	require.ErrorIs(t, err, common.ErrorNoDestination)
	assert.True(t, outputContains(*out, "Destination is not found"))
}

func TestRoute_UnresolvableLocation(t *testing.T) {
	out := captureOutput(t)

	ps := &fakePS{getOut: &models.Place{Id: "id1", Name: "Lost", Location: "nowhere at all"}}
	app := newTestApp(ps, readerFromLines("id1"))
	app.geocoder = &fakeGeocoder{}

	err := app.Route(context.Background())
	require.ErrorIs(t, err, common.ErrorNoDestination)
	assert.True(t, outputContains(*out, "Destination is not found"))
}

func TestRoute_NoCurrentLocation(t *testing.T) {
	out := captureOutput(t)

	ps := &fakePS{getOut: &models.Place{Id: "id1", Name: "Old Town", Location: "Old Town, Riga"}}
	app := newTestApp(ps, readerFromLines("id1"))
	app.geocoder = &fakeGeocoder{searchOut: []geo.Candidate{
		{DisplayName: "Old Town, Riga", Coordinate: geo.Coordinate{Lat: 56.949, Lon: 24.105}},
	}}
	app.location = geo.NewStaticProvider(geo.AuthAuthorizedAlways, nil)
	app.directions = geo.NewDirections(&stubRouter{route: &geo.Route{}}, testLogger())

	err := app.Route(context.Background())
	require.ErrorIs(t, err, common.ErrorNoCurrentLocation)
	assert.True(t, outputContains(*out, "Current location is not found"))
}

func TestBackup_PushesAllPlaces(t *testing.T) {
	out := captureOutput(t)

	ps := &fakePS{listOut: []models.Place{
		{Id: "id1", Name: "A"},
		{Id: "id2", Name: "B"},
	}}
	bk := &fakeBackup{}
	app := newTestApp(ps, readerFromLines("")) // empty id means all
	app.config.S3Bucket = "placekeeper"
	app.backup = bk

	require.NoError(t, app.Backup(context.Background()))
	assert.Equal(t, []string{"places/id1.png", "places/id2.png"}, bk.pushed)
	assert.True(t, outputContains(*out, "Backed up 2 of 2 photos"))
	assert.True(t, outputContains(*out, "http://bucket.local/places/id1.png"))
}

func TestBackup_SinglePlace(t *testing.T) {
	out := captureOutput(t)

	ps := &fakePS{getOut: &models.Place{Id: "id9", Name: "C"}}
	bk := &fakeBackup{}
	app := newTestApp(ps, readerFromLines("id9"))
	app.config.S3Bucket = "placekeeper"
	app.backup = bk

	require.NoError(t, app.Backup(context.Background()))
	assert.Equal(t, "id9", ps.getID)
	assert.Equal(t, []string{"places/id9.png"}, bk.pushed)
	assert.True(t, outputContains(*out, "Backed up 1 of 1 photos"))
}

func TestBackup_NotConfigured(t *testing.T) {
	out := captureOutput(t)

	app := newTestApp(&fakePS{}, readerFromLines())

	require.NoError(t, app.Backup(context.Background()))
	assert.True(t, outputContains(*out, "not configured"))
}

func TestGetStatus(t *testing.T) {
	app := newTestApp(&fakePS{}, readerFromLines())
	assert.Equal(t, "(date asc)", app.getStatus())

	app.sortKey = models.SortByName
	app.sortAsc = false
	assert.Equal(t, "(name desc)", app.getStatus())
}
