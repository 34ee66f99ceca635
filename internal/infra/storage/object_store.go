package storage

import (
	"context"
	"io"
	"log/slog"
	"time"

	"printshop/config"
	"printshop/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
	"golang.org/x/sync/errgroup"
)

// maxBatch mirrors the S3 DeleteObjects limit.
const maxBatch = 1000

// deleteConcurrency bounds parallel deletes within one batch.
const deleteConcurrency = 16

var errBatchTooLarge = errors.New("key exceeds the per-call batch limit")

type objectStore struct {
	bucket   *blob.Bucket
	location locator
}

// Params holds dependencies for the object store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.ObjectStore, error) {
	cfg := params.Config.Storage
	bucket, loc, err := openBucket(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Object store ready",
		slog.String("driver", cfg.Driver),
		slog.String("bucket", cfg.Bucket),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return NewObjectStore(bucket, loc), nil
}

// NewObjectStore wraps an already opened bucket. loc may be nil.
func NewObjectStore(bucket *blob.Bucket, loc func(key string) string) service.ObjectStore {
	if loc == nil {
		loc = func(key string) string { return key }
	}

	return &objectStore{bucket: bucket, location: loc}
}

func storageErr(op service.StorageOp, key string, err error) *service.StorageError {
	return &service.StorageError{
		Op:       op,
		Key:      key,
		NotFound: gcerrors.Code(err) == gcerrors.NotFound,
		Err:      err,
	}
}

func (s *objectStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return storageErr(service.StorageOpPut, key, err)
	}

	return nil
}

func (s *objectStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, storageErr(service.StorageOpGet, key, err)
	}

	return data, nil
}

func (s *objectStore) Copy(ctx context.Context, dstKey, srcKey string) error {
	if err := s.bucket.Copy(ctx, dstKey, srcKey, nil); err != nil {
		return storageErr(service.StorageOpCopy, srcKey, err)
	}

	return nil
}

func (s *objectStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return storageErr(service.StorageOpDelete, key, err)
	}

	return nil
}

// DeleteMany deletes up to maxBatch keys concurrently; keys beyond the batch are reported as skipped.
func (s *objectStore) DeleteMany(ctx context.Context, keys []string) []service.DeleteResult {
	results := make([]service.DeleteResult, len(keys))
	for i, key := range keys {
		results[i].Key = key
	}

	batch := keys
	if len(batch) > maxBatch {
		batch = batch[:maxBatch]
		for i := maxBatch; i < len(keys); i++ {
			results[i].Err = &service.StorageError{
				Op:  service.StorageOpDeleteBatch,
				Key: keys[i],
				Err: errBatchTooLarge,
			}
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(deleteConcurrency)
	for i, key := range batch {
		g.Go(func() error {
			if err := s.bucket.Delete(gctx, key); err != nil {
				results[i].Err = storageErr(service.StorageOpDeleteBatch, key, err)
			}

			// Per-key failures never cancel the rest of the batch.
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (s *objectStore) List(ctx context.Context, prefix string) ([]service.ObjectInfo, error) {
	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})

	var objects []service.ObjectInfo
	for {
		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, storageErr(service.StorageOpList, prefix, err)
		}
		if obj.IsDir {
			continue
		}
		objects = append(objects, service.ObjectInfo{
			Key:     obj.Key,
			Size:    obj.Size,
			ModTime: obj.ModTime,
		})
	}

	return objects, nil
}

func (s *objectStore) SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	signed, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{Expiry: expiry})
	if err != nil {
		return "", storageErr(service.StorageOpSign, key, err)
	}

	return signed, nil
}

func (s *objectStore) Location(key string) string {
	return s.location(key)
}

func newStoragePolicy() service.StoragePolicy {
	return service.DefaultStoragePolicy{}
}

// Module provides the object store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New, newStoragePolicy),
)
