package usecase

import (
	"context"

	"printshop/internal/domain/service"

	"github.com/google/uuid"
)

// ItemOutcome is the result of attempting to convert one line item.
type ItemOutcome string

const (
	ItemConverted ItemOutcome = "converted"
	ItemSkipped   ItemOutcome = "skipped"
	ItemFailed    ItemOutcome = "failed"
)

// ItemResult reports one line item of a conversion run.
type ItemResult struct {
	Index        int
	OriginalName string
	Outcome      ItemOutcome
	ConvertedKey string
	Err          error
}

// ItemCallback observes every item as soon as it has been attempted.
type ItemCallback func(ItemResult)

// ConversionReport summarises a conversion run.
type ConversionReport struct {
	OrderID uuid.UUID
	Items   []ItemResult
	// Requeued is false when staff had already moved the order past QUEUED.
	Requeued bool
}

// Failed counts the items whose conversion failed.
func (r *ConversionReport) Failed() int {
	n := 0
	for _, item := range r.Items {
		if item.Outcome == ItemFailed {
			n++
		}
	}

	return n
}

// ConversionUsecase converts the office documents of paid orders to PDF.
type ConversionUsecase interface {
	service.ConversionJobHandler

	// ConvertOrder processes every item sequentially; a failing item never stops the others.
	ConvertOrder(ctx context.Context, orderID uuid.UUID, onItem ItemCallback) (*ConversionReport, error)
}
