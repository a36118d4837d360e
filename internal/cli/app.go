package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/dmitrijs2005/placekeeper/internal/config"
	"github.com/dmitrijs2005/placekeeper/internal/form"
	"github.com/dmitrijs2005/placekeeper/internal/geo"
	"github.com/dmitrijs2005/placekeeper/internal/logging"
	"github.com/dmitrijs2005/placekeeper/internal/models"
	"github.com/dmitrijs2005/placekeeper/internal/photos"
	"github.com/dmitrijs2005/placekeeper/internal/services"
	"github.com/dmitrijs2005/placekeeper/internal/storage"
)

// placeService is the slice of the application service the CLI depends on.
// The real *services.PlaceService satisfies it; tests can provide a stub.
type placeService interface {
	List(ctx context.Context, key models.SortKey, ascending bool) ([]models.Place, error)
	Search(ctx context.Context, substring string) ([]models.Place, error)
	Get(ctx context.Context, id string) (*models.Place, error)
	Save(ctx context.Context, f *form.PlaceForm) (*models.Place, error)
	Delete(ctx context.Context, id string) error
}

// photoBackup is the photo-backup surface the CLI depends on.
type photoBackup interface {
	Push(ctx context.Context, p *models.Place) (string, error)
	FetchURL(ctx context.Context, key string) (string, error)
}

type App struct {
	config     *config.Config
	db         *sql.DB
	log        logging.Logger
	places     placeService
	geocoder   geo.Geocoder
	directions *geo.Directions
	location   geo.LocationProvider
	backup     photoBackup
	reader     *bufio.Reader

	sortKey models.SortKey
	sortAsc bool
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	slog := slog.New(slog.NewTextHandler(os.Stderr, nil))
	logger := logging.NewSlogLogger(slog)

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	httpClient := &http.Client{Timeout: c.HTTPTimeout}
	geocoder := geo.NewNominatimClient(c.GeocoderBaseURL, httpClient)
	router := geo.NewOSRMClient(c.RouterBaseURL, httpClient)

	var position *geo.Coordinate
	if c.HasPosition() {
		position = &geo.Coordinate{Lat: c.Latitude, Lon: c.Longitude}
	}

	return &App{
		config:     c,
		db:         db,
		log:        logger,
		places:     services.NewPlaceService(db, logger),
		geocoder:   geocoder,
		directions: geo.NewDirections(router, logger),
		location:   geo.NewStaticProvider(geo.Authorization(c.LocationStatus), position),
		reader:     bufio.NewReader(os.Stdin),
		sortKey:    models.SortByDate,
		sortAsc:    true,
	}, nil
}

// getStatus renders the prompt status: the current sort order.
func (a *App) getStatus() string {
	key := "date"
	if a.sortKey == models.SortByName {
		key = "name"
	}
	order := "asc"
	if !a.sortAsc {
		order = "desc"
	}
	return fmt.Sprintf("(%s %s)", key, order)
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	printlnFn("PlaceKeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// getBackup lazily constructs the photo backup, prompting for the secret key
// if the config leaves it out.
func (a *App) getBackup() (photoBackup, error) {
	if a.backup != nil {
		return a.backup, nil
	}

	secret := a.config.S3SecretKey
	if secret == "" {
		b, err := GetSecret(os.Stdout, "Enter S3 secret key")
		if err != nil {
			return nil, err
		}
		secret = string(b)
	}

	a.backup = photos.NewBackup(photos.BackupConfig{
		Endpoint:  a.config.S3Endpoint,
		Region:    a.config.S3Region,
		Bucket:    a.config.S3Bucket,
		AccessKey: a.config.S3AccessKey,
		SecretKey: secret,
	}, a.log)
	return a.backup, nil
}
