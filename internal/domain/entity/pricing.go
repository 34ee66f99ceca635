package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ColorMode selects black/white or color printing.
type ColorMode string

const (
	ColorModeBW    ColorMode = "bw"
	ColorModeColor ColorMode = "color"
)

// Sidedness selects single or double sided printing.
type Sidedness string

const (
	SideSingle Sidedness = "single"
	SideDouble Sidedness = "double"
)

// PaperSize is an ISO A-series sheet size.
type PaperSize string

const (
	PaperA4 PaperSize = "A4"
	PaperA3 PaperSize = "A3"
	PaperA2 PaperSize = "A2"
	PaperA1 PaperSize = "A1"
)

// IsValid reports whether the paper size is supported.
func (p PaperSize) IsValid() bool {
	switch p {
	case PaperA4, PaperA3, PaperA2, PaperA1:
		return true
	default:
		return false
	}
}

// SidedRates holds per-sheet rates for one color mode.
type SidedRates struct {
	Single float64 `json:"single"`
	Double float64 `json:"double"`
}

// BulkDiscount replaces the A4 rate once an item reaches Threshold sheets.
type BulkDiscount struct {
	Enabled    bool    `json:"enabled"`
	Threshold  int     `json:"threshold"`
	BWPrice    float64 `json:"bwPrice"`
	ColorPrice float64 `json:"colorPrice"`
}

// SizeRate holds single-sided rates for an oversized sheet.
type SizeRate struct {
	BW    float64 `json:"bw"`
	Color float64 `json:"color"`
}

// PricingTable is a shop's complete price list.
type PricingTable struct {
	BW           SidedRates             `json:"bw"`
	Color        SidedRates             `json:"color"`
	BulkDiscount BulkDiscount           `json:"bulkDiscount"`
	OtherSizes   map[PaperSize]SizeRate `json:"otherSizes,omitempty"`
}

// DefaultPricingTable returns the price list assigned to new shops.
func DefaultPricingTable() PricingTable {
	return PricingTable{
		BW:    SidedRates{Single: 3, Double: 2},
		Color: SidedRates{Single: 10, Double: 8},
		BulkDiscount: BulkDiscount{
			Enabled:    false,
			Threshold:  100,
			BWPrice:    1.5,
			ColorPrice: 8,
		},
		OtherSizes: map[PaperSize]SizeRate{
			PaperA3: {BW: 6, Color: 20},
			PaperA2: {BW: 15, Color: 50},
			PaperA1: {BW: 30, Color: 100},
		},
	}
}

// Validate checks the table once at the shop boundary.
func (p PricingTable) Validate() error {
	rates := map[string]float64{
		"bw.single":    p.BW.Single,
		"bw.double":    p.BW.Double,
		"color.single": p.Color.Single,
		"color.double": p.Color.Double,
	}
	if p.BulkDiscount.Enabled {
		rates["bulkDiscount.bwPrice"] = p.BulkDiscount.BWPrice
		rates["bulkDiscount.colorPrice"] = p.BulkDiscount.ColorPrice
		if p.BulkDiscount.Threshold <= 0 {
			return fmt.Errorf("bulkDiscount.threshold must be positive when enabled, got %d", p.BulkDiscount.Threshold)
		}
	}

	for size, rate := range p.OtherSizes {
		if size == PaperA4 || !size.IsValid() {
			return fmt.Errorf("unsupported size %q in otherSizes", size)
		}
		rates["otherSizes."+string(size)+".bw"] = rate.BW
		rates["otherSizes."+string(size)+".color"] = rate.Color
	}

	for field, rate := range rates {
		if rate < 0 {
			return fmt.Errorf("%s must not be negative, got %v", field, rate)
		}
	}

	return nil
}

// Rate returns the per-sheet rate applied to an item of totalSheets sheets.
func (p PricingTable) Rate(cfg PrintConfig, totalSheets int) decimal.Decimal {
	isColor := cfg.Color == ColorModeColor
	isDouble := cfg.Side == SideDouble

	size := cfg.PaperSize
	if size == "" {
		size = PaperA4
	}

	// Oversized sheets priced per single side.
	if sizeRate, ok := p.OtherSizes[size]; ok && size != PaperA4 {
		rate := decimal.NewFromFloat(sizeRate.BW)
		if isColor {
			rate = decimal.NewFromFloat(sizeRate.Color)
		}
		if isDouble {
			rate = rate.Mul(decimal.NewFromInt(2))
		}

		return rate
	}

	bulk := p.BulkDiscount
	if bulk.Enabled && totalSheets >= bulk.Threshold {
		if isColor {
			return decimal.NewFromFloat(bulk.ColorPrice)
		}

		return decimal.NewFromFloat(bulk.BWPrice)
	}

	rates := p.BW
	if isColor {
		rates = p.Color
	}
	if isDouble {
		return decimal.NewFromFloat(rates.Double)
	}

	return decimal.NewFromFloat(rates.Single)
}

// ItemCost prices pageCount pages printed copies times. Zero copies cost nothing.
func (p PricingTable) ItemCost(pageCount int, cfg PrintConfig) float64 {
	totalSheets := pageCount * cfg.Copies
	cost := p.Rate(cfg, totalSheets).Mul(decimal.NewFromInt(int64(totalSheets)))
	f, _ := cost.Float64()

	return f
}

// Quote prices every item in place and returns the order total.
func (p PricingTable) Quote(items []LineItem) float64 {
	total := decimal.Zero
	for i := range items {
		items[i].CalculatedCost = p.ItemCost(items[i].PageCount, items[i].Config)
		total = total.Add(decimal.NewFromFloat(items[i].CalculatedCost))
	}
	f, _ := total.Float64()

	return f
}
