package photos

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrijs2005/placekeeper/internal/logging"
	"github.com/dmitrijs2005/placekeeper/internal/models"
	"github.com/dmitrijs2005/placekeeper/internal/netx"
)

// Seams for tests: AWS SDK entry points are reassignable so presigning can
// be exercised without a live object store.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}

	uploadToPresignedURL = netx.UploadToS3PresignedURL
)

// BackupConfig describes the S3-compatible bucket photos are copied to.
// MinIO works; only static credentials are supported.
type BackupConfig struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

// Backup pushes place photos to the configured bucket through presigned
// URLs.
type Backup struct {
	cfg BackupConfig
	log logging.Logger
}

// NewBackup returns a Backup for the given bucket settings.
func NewBackup(cfg BackupConfig, log logging.Logger) *Backup {
	return &Backup{cfg: cfg, log: log}
}

// Enabled reports whether a target bucket is configured at all.
func (b *Backup) Enabled() bool {
	return b.cfg.Bucket != ""
}

// StorageKey is the object key a place's photo is stored under.
func StorageKey(p *models.Place) string {
	return fmt.Sprintf("places/%s.png", p.Id)
}

func (b *Backup) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(b.cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			b.cfg.AccessKey,
			b.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(b.cfg.Endpoint)
	})

	return newS3PresignClient(client), nil
}

// Push uploads the place's rendered image (photo or placeholder) and
// returns the object key it was stored under.
func (b *Backup) Push(ctx context.Context, p *models.Place) (string, error) {
	presignClient, err := b.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := b.cfg.Bucket
	key := StorageKey(p)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	if err := uploadToPresignedURL(req.URL, Render(p)); err != nil {
		b.log.Error(ctx, "photo backup failed", "id", p.Id, "error", err)
		return "", err
	}
	return key, nil
}

// FetchURL returns a presigned GET URL for a previously pushed photo.
func (b *Backup) FetchURL(ctx context.Context, key string) (string, error) {
	presignClient, err := b.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := b.cfg.Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
