// Package pricing computes the live quote, itemized breakdown, and
// lead-time range for a configuration. All functions are pure and total:
// any fully populated configuration produces an estimate.
package pricing

import (
	"fmt"
	"math"

	"github.com/jewelify/design-engine/internal/design"
)

// #region constants
const (
	basePrice  = 1200
	priceFloor = 1200
	priceCeil  = 2500

	platinumUpcharge = 600
	rosePremium      = 200
	polishUpcharge   = 150
	clarityUpcharge  = 120
	coloredStoneFee  = 180

	qualityThreshold = 0.7

	baseDays = 60
	minDays  = 25
	maxDays  = 60
)

// #endregion constants

// #region line-item
// LineItem is one row of the price breakdown.
type LineItem struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

// #endregion line-item

// #region price
// EstimatePrice returns the displayed quote, clamped to
// [priceFloor, priceCeil]. The clamp applies to the total only; Breakdown
// deliberately reports the raw terms, so the two can diverge at the clamp
// boundaries (see Breakdown).
func EstimatePrice(c design.Config) int {
	price := rawPrice(c)
	if price > priceCeil {
		price = priceCeil
	}
	if price < priceFloor {
		price = priceFloor
	}
	return price
}

// RawPrice returns the unclamped price formula value: the sum of every
// breakdown line item.
func RawPrice(c design.Config) int {
	return rawPrice(c)
}

func rawPrice(c design.Config) int {
	price := basePrice
	if c.MaterialColor == design.ColorPlatinum {
		price += platinumUpcharge
	}
	if c.MaterialColor == design.ColorRose {
		price += rosePremium
	}
	if c.Polish > qualityThreshold {
		price += polishUpcharge
	}
	if c.Clarity > qualityThreshold {
		price += clarityUpcharge
	}
	if c.StoneColor != design.StoneClear {
		price += coloredStoneFee
	}
	price += int(math.Round((c.Polish + c.Clarity) * 100))
	return price
}

// #endregion price

// #region breakdown
// Breakdown itemizes the raw price formula, one line per non-zero term, in
// formula order. The [priceFloor, priceCeil] clamp is NOT applied here:
// the items sum to RawPrice, which at the clamp boundaries differs from
// EstimatePrice. Callers must display the clamped total separately from
// the itemized list; the discrepancy is intentional and kept visible
// rather than reconciled.
func Breakdown(c design.Config) []LineItem {
	items := []LineItem{{Label: "Base craftsmanship", Amount: basePrice}}

	if c.MaterialColor == design.ColorPlatinum {
		items = append(items, LineItem{Label: "Platinum material upcharge", Amount: platinumUpcharge})
	}
	if c.MaterialColor == design.ColorRose {
		items = append(items, LineItem{Label: "Rose alloy premium", Amount: rosePremium})
	}
	if c.Polish > qualityThreshold {
		items = append(items, LineItem{Label: "High polish finish", Amount: polishUpcharge})
	}
	if c.Clarity > qualityThreshold {
		items = append(items, LineItem{Label: "Stone clarity selection", Amount: clarityUpcharge})
	}
	if c.StoneColor != design.StoneClear {
		items = append(items, LineItem{Label: "Colored gemstone", Amount: coloredStoneFee})
	}
	if dynamic := int(math.Round((c.Polish + c.Clarity) * 100)); dynamic != 0 {
		items = append(items, LineItem{Label: "Detailing & QC (polish/clarity)", Amount: dynamic})
	}

	return items
}

// #endregion breakdown

// #region days
// EstimateDays returns the crafting lead time as a "{min}-{max}" range.
// Higher quality shortens the schedule, premium metals and colored stones
// lengthen it, and the total is clamped to [minDays, maxDays] before the
// five-day spread is added.
func EstimateDays(c design.Config) string {
	days := baseDays
	if c.Polish > qualityThreshold {
		days -= 8
	}
	if c.Clarity > qualityThreshold {
		days -= 7
	}
	if c.MaterialColor == design.ColorPlatinum {
		days += 5
	}
	if c.MaterialColor == design.ColorRose {
		days += 2
	}
	if c.StoneColor != design.StoneClear {
		days += 2
	}
	days -= int(math.Round((c.Polish + c.Clarity) * 5))
	if days < minDays {
		days = minDays
	}
	if days > maxDays {
		days = maxDays
	}
	return fmt.Sprintf("%d-%d", days, days+5)
}

// #endregion days
