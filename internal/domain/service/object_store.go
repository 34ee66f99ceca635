package service

import (
	"context"
	"fmt"
	"time"
)

// StorageOp names an object-store call.
type StorageOp string

const (
	StorageOpPut         StorageOp = "put"
	StorageOpGet         StorageOp = "get"
	StorageOpCopy        StorageOp = "copy"
	StorageOpDelete      StorageOp = "delete"
	StorageOpDeleteBatch StorageOp = "delete_batch"
	StorageOpList        StorageOp = "list"
	StorageOpSign        StorageOp = "sign"
)

// StorageError is returned by every ObjectStore call.
type StorageError struct {
	Op       StorageOp
	Key      string
	NotFound bool
	Err      error
}

func (e *StorageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ObjectInfo describes a listed object.
type ObjectInfo struct {
	Key     string
	Size    int64
	ModTime time.Time
}

// DeleteResult is the outcome of deleting one key in a batch.
type DeleteResult struct {
	Key string
	Err *StorageError
}

// ObjectStore is the shared bucket. Errors are always *StorageError.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Copy(ctx context.Context, dstKey, srcKey string) error
	Delete(ctx context.Context, key string) error

	// DeleteMany deletes at most one batch of keys and reports per-key outcomes.
	DeleteMany(ctx context.Context, keys []string) []DeleteResult

	List(ctx context.Context, prefix string) ([]ObjectInfo, error)

	// SignedURL returns a time-limited GET URL for key.
	SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	// Location returns the public location reported back to uploaders.
	Location(key string) string
}

// StorageDecision is what a caller does after a failed storage call.
type StorageDecision int

const (
	// Continue logs the failure and degrades.
	Continue StorageDecision = iota
	// Abort fails the enclosing operation.
	Abort
)

func (d StorageDecision) String() string {
	if d == Abort {
		return "abort"
	}

	return "continue"
}

// StoragePolicy decides how callers react to storage failures.
type StoragePolicy interface {
	Decide(err *StorageError) StorageDecision
}

// DefaultStoragePolicy aborts when nothing durable was written or nothing could be
// enumerated (put, list) and continues for every other call.
type DefaultStoragePolicy struct{}

// Decide implements StoragePolicy.
func (DefaultStoragePolicy) Decide(err *StorageError) StorageDecision {
	if err == nil {
		return Continue
	}

	switch err.Op {
	case StorageOpPut, StorageOpList:
		return Abort
	default:
		return Continue
	}
}
