package entity

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotCancellable is returned when cancelling outside QUEUED.
	ErrOrderNotCancellable = errors.New("order can only be cancelled while queued")
	// ErrInvalidOrderStatus is returned for unknown status values.
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusQueued     OrderStatus = "QUEUED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusPrinting   OrderStatus = "PRINTING"
	OrderStatusReady      OrderStatus = "READY"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// IsValid reports whether the status is known.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusQueued, OrderStatusProcessing, OrderStatusPrinting,
		OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// PaymentStatus tracks the mocked payment.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// Orientation of the printed page.
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

const (
	defaultPaperType = "A4_75gsm"
	defaultPageRange = "All"
)

// PrintConfig is the per-item print configuration chosen by the customer.
type PrintConfig struct {
	Color       ColorMode   `json:"color"`
	Side        Sidedness   `json:"side"`
	Copies      int         `json:"copies"`
	PaperType   string      `json:"paperType"`
	PageRange   string      `json:"pageRange"`
	Orientation Orientation `json:"orientation"`
	PaperSize   PaperSize   `json:"paperSize"`
}

// WithDefaults fills unset optional fields.
func (c PrintConfig) WithDefaults() PrintConfig {
	if c.Color == "" {
		c.Color = ColorModeBW
	}
	if c.Side == "" {
		c.Side = SideSingle
	}
	if c.PaperType == "" {
		c.PaperType = defaultPaperType
	}
	if c.PageRange == "" {
		c.PageRange = defaultPageRange
	}
	if c.Orientation == "" {
		c.Orientation = OrientationPortrait
	}
	if c.PaperSize == "" {
		c.PaperSize = PaperA4
	}

	return c
}

// Validate checks a defaulted config: at least one copy and known option values.
func (c PrintConfig) Validate() error {
	if c.Copies < 1 {
		return fmt.Errorf("copies must be at least 1, got %d", c.Copies)
	}
	if c.Color != ColorModeBW && c.Color != ColorModeColor {
		return fmt.Errorf("unsupported color mode %q", c.Color)
	}
	if c.Side != SideSingle && c.Side != SideDouble {
		return fmt.Errorf("unsupported side %q", c.Side)
	}
	if c.Orientation != OrientationPortrait && c.Orientation != OrientationLandscape {
		return fmt.Errorf("unsupported orientation %q", c.Orientation)
	}
	if !c.PaperSize.IsValid() {
		return fmt.Errorf("unsupported paper size %q", c.PaperSize)
	}

	return nil
}

// LineItem is one printed file within an order.
type LineItem struct {
	StorageKey     string      `json:"storageKey"`
	OriginalName   string      `json:"originalName"`
	FileHash       string      `json:"fileHash,omitempty"`
	FileType       string      `json:"fileType,omitempty"`
	PageCount      int         `json:"pageCount"`
	ConvertedKey   string      `json:"convertedKey,omitempty"`
	Config         PrintConfig `json:"config"`
	CalculatedCost float64     `json:"calculatedCost"`
}

// Order is the durable record of one print job.
type Order struct {
	ID            uuid.UUID     `json:"id"`
	ShopID        uuid.UUID     `json:"shopId"`
	UserID        uuid.UUID     `json:"userId"`
	Items         []LineItem    `json:"items"`
	TotalAmount   float64       `json:"totalAmount"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PaymentID     string        `json:"paymentId,omitempty"`
	Status        OrderStatus   `json:"orderStatus"`
	PickupCode    string        `json:"pickupCode"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`

	User *User `json:"user,omitempty"` // populated on reads, nil otherwise
}

// NewOrder returns a QUEUED, unpaid order with a fresh pickup code.
func NewOrder(shopID, userID uuid.UUID) *Order {
	return &Order{
		ID:            uuid.Must(uuid.NewV7()),
		ShopID:        shopID,
		UserID:        userID,
		PaymentStatus: PaymentPending,
		Status:        OrderStatusQueued,
		PickupCode:    NewPickupCode(),
	}
}

// NewPickupCode returns four random decimal digits. Codes may collide.
func NewPickupCode() string {
	return fmt.Sprintf("%d", 1000+rand.IntN(9000))
}

// Cancel moves a QUEUED order to CANCELLED, refunding it when paid.
func (o *Order) Cancel() error {
	if o.Status != OrderStatusQueued {
		return ErrOrderNotCancellable
	}
	if o.PaymentStatus == PaymentPaid {
		o.PaymentStatus = PaymentRefunded
	}
	o.Status = OrderStatusCancelled

	return nil
}

// SetStatus applies a staff-chosen status. Any valid status is accepted.
func (o *Order) SetStatus(status OrderStatus) error {
	if !status.IsValid() {
		return ErrInvalidOrderStatus
	}
	o.Status = status

	return nil
}

// MarkPaid records a captured payment.
func (o *Order) MarkPaid(paymentID string) {
	o.PaymentStatus = PaymentPaid
	o.PaymentID = paymentID
}

// ConfirmQueued re-asserts QUEUED after conversion. Unlike an unconditional
// reset, orders staff already advanced past processing, or cancelled, keep
// their status so a late conversion never rewinds fulfilment.
func (o *Order) ConfirmQueued() bool {
	switch o.Status {
	case OrderStatusQueued, OrderStatusProcessing:
		o.Status = OrderStatusQueued

		return true
	default:
		return false
	}
}
