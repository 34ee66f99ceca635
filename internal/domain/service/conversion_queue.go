package service

import (
	"context"

	"github.com/google/uuid"
)

// ConversionJob asks for the office files of one paid order to be converted.
type ConversionJob struct {
	RequestID string    `json:"request_id,omitempty"`
	OrderID   uuid.UUID `json:"order_id"`
}

// ConversionQueue accepts jobs for asynchronous processing.
type ConversionQueue interface {
	Enqueue(ctx context.Context, job ConversionJob) error
	Close() error
}

// ConversionJobHandler runs one job. Implemented by the conversion use case.
type ConversionJobHandler interface {
	HandleConversionJob(ctx context.Context, job ConversionJob) error
}
