package storage

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"printshop/config"
	"printshop/internal/domain/constants"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/blob/s3blob"
)

// locator builds the public location string returned to uploaders.
type locator func(key string) string

func openBucket(ctx context.Context, cfg *config.StorageConfig, logger *slog.Logger) (*blob.Bucket, locator, error) {
	switch cfg.Driver {
	case constants.StorageDriverMem:
		logger.Warn("Using in-memory object store, objects are lost on restart")

		return memblob.OpenBucket(nil), func(key string) string {
			return "mem://" + cfg.Bucket + "/" + key
		}, nil

	case constants.StorageDriverFile:
		if cfg.LocalDir == "" {
			return nil, nil, errors.New("storage.localDir is required for the file driver")
		}
		bucket, err := fileblob.OpenBucket(cfg.LocalDir, &fileblob.Options{CreateDir: true})
		if err != nil {
			return nil, nil, errors.Wrap(err, "open file bucket")
		}

		return bucket, func(key string) string {
			return "file://" + path.Join(cfg.LocalDir, key)
		}, nil

	case constants.StorageDriverS3:
		client := newS3Client(cfg)
		if cfg.CreateBucket {
			if err := ensureBucket(ctx, client, cfg); err != nil {
				return nil, nil, err
			}
		}
		bucket, err := s3blob.OpenBucket(ctx, client, cfg.Bucket, nil)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open s3 bucket")
		}

		return bucket, s3Locator(cfg), nil

	default:
		return nil, nil, errors.Errorf("unknown storage driver: %s", cfg.Driver)
	}
}

func newS3Client(cfg *config.StorageConfig) *s3.Client {
	opts := s3.Options{
		Region:       cfg.Region,
		UsePathStyle: forcePathStyle(cfg),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	if cfg.AccessKey != "" {
		accessKey, secretKey := cfg.AccessKey, cfg.SecretKey
		opts.Credentials = aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     accessKey,
				SecretAccessKey: secretKey,
				Source:          "printshop-config",
			}, nil
		})
	}

	return s3.New(opts)
}

func forcePathStyle(cfg *config.StorageConfig) bool {
	return cfg.ForcePathStyle != nil && *cfg.ForcePathStyle
}

// ensureBucket creates the bucket on S3-compatible stores (MinIO in development) when missing.
func ensureBucket(ctx context.Context, client *s3.Client, cfg *config.StorageConfig) error {
	if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(cfg.Bucket)}); err == nil {
		return nil
	}

	input := &s3.CreateBucketInput{Bucket: aws.String(cfg.Bucket)}
	if cfg.Region != "" && cfg.Region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(cfg.Region),
		}
	}
	if _, err := client.CreateBucket(ctx, input); err != nil {
		var owned *types.BucketAlreadyOwnedByYou
		if errors.As(err, &owned) {
			return nil
		}

		return errors.Wrapf(err, "create bucket %s", cfg.Bucket)
	}

	return nil
}

func s3Locator(cfg *config.StorageConfig) locator {
	if cfg.Endpoint == "" {
		host := fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)

		return func(key string) string {
			return host + "/" + escapeKey(key)
		}
	}

	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	if forcePathStyle(cfg) {
		return func(key string) string {
			return endpoint + "/" + cfg.Bucket + "/" + escapeKey(key)
		}
	}

	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return func(key string) string {
			return endpoint + "/" + cfg.Bucket + "/" + escapeKey(key)
		}
	}
	u.Host = cfg.Bucket + "." + u.Host

	base := u.String()

	return func(key string) string {
		return base + "/" + escapeKey(key)
	}
}

func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}

	return strings.Join(segments, "/")
}
