package detector

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/soukwatch/pricetracker/internal/platform/models"
)

//go:generate mockery --name History --filename history.go

// Prices closer than this are considered equal.
const priceEpsilon = 0.01

// Significance thresholds on absolute percentage change.
const (
	highSignificanceThreshold   = 20.0
	mediumSignificanceThreshold = 5.0
)

// History reads stored price snapshots.
type History interface {
	// LatestSnapshotBefore returns the most recent snapshot of the product
	// excluding the one with excludeID, or nil when there is none.
	LatestSnapshotBefore(ctx context.Context, productID, source string, excludeID int64) (*models.Snapshot, error)
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Option is custom configuration of Detector.
type Option func(d *Detector)

// Detector classifies the transition between a newly persisted snapshot
// and the product's previous one. It never writes; the caller stores the
// emitted change record.
type Detector struct {
	history History
	clock   Clock
}

// NewDetector returns new Detector.
func NewDetector(history History, ops ...Option) Detector {
	det := Detector{
		history: history,
		clock:   systemClock{},
	}

	for _, op := range ops {
		op(&det)
	}

	return det
}

// WithClock sets Detector's custom Clock.
func WithClock(c Clock) Option {
	return func(d *Detector) {
		d.clock = c
	}
}

// Detect looks up the snapshot immediately preceding snapshot and returns
// the classified change, or nil when the transition doesn't qualify.
func (d Detector) Detect(ctx context.Context, snapshot models.Snapshot) (*models.Change, error) {
	previous, err := d.history.LatestSnapshotBefore(ctx, snapshot.ProductID, snapshot.Source, snapshot.ID)
	if err != nil {
		return nil, fmt.Errorf("can't get previous snapshot: %w", err)
	}

	return Classify(previous, snapshot, d.clock.Now()), nil
}

// Classify compares two adjacent snapshots of the same product and returns
// the change record to store, or nil when nothing qualifies:
//   - no previous snapshot: new_product, only when the new price is present;
//   - prices equal within epsilon: discount_added/discount_removed when the
//     discount moved (missing discount counts as 0), otherwise nil;
//   - either price missing: nil, the transition can't be classified;
//   - otherwise increase/decrease with difference and percentage.
func Classify(previous *models.Snapshot, current models.Snapshot, at time.Time) *models.Change {
	if previous == nil {
		if current.Price == nil {
			return nil
		}
		return &models.Change{
			ProductID:         current.ProductID,
			Source:            current.Source,
			ChangeType:        models.ChangeNewProduct,
			CurrentPrice:      current.Price,
			CurrentDiscount:   current.Discount,
			CurrentSnapshotID: current.ID,
			ChangedAt:         at,
			Significance:      models.SignificanceLow,
			DataQuality:       current.DataQuality,
		}
	}

	if previous.Price == nil || current.Price == nil {
		return nil
	}

	oldPrice := *previous.Price
	newPrice := *current.Price

	if math.Abs(newPrice-oldPrice) < priceEpsilon {
		return classifyDiscountShift(previous, current, at)
	}

	diff := newPrice - oldPrice
	percentage := 0.0
	if oldPrice > 0 {
		percentage = diff / oldPrice * 100
	}

	changeType := models.ChangeIncrease
	if diff < 0 {
		changeType = models.ChangeDecrease
	}

	return &models.Change{
		ProductID:          current.ProductID,
		Source:             current.Source,
		ChangeType:         changeType,
		PreviousPrice:      previous.Price,
		CurrentPrice:       current.Price,
		PriceDifference:    diff,
		PercentageChange:   percentage,
		PreviousDiscount:   previous.Discount,
		CurrentDiscount:    current.Discount,
		PreviousSnapshotID: &previous.ID,
		CurrentSnapshotID:  current.ID,
		ChangedAt:          at,
		Significance:       significance(percentage),
		DataQuality:        current.DataQuality,
	}
}

func classifyDiscountShift(previous *models.Snapshot, current models.Snapshot, at time.Time) *models.Change {
	oldDiscount := discountOrZero(previous.Discount)
	newDiscount := discountOrZero(current.Discount)

	if oldDiscount == newDiscount {
		return nil
	}

	changeType := models.ChangeDiscountRemoved
	if newDiscount > oldDiscount {
		changeType = models.ChangeDiscountAdded
	}

	return &models.Change{
		ProductID:          current.ProductID,
		Source:             current.Source,
		ChangeType:         changeType,
		PreviousPrice:      previous.Price,
		CurrentPrice:       current.Price,
		PriceDifference:    0,
		PercentageChange:   0,
		PreviousDiscount:   &oldDiscount,
		CurrentDiscount:    &newDiscount,
		PreviousSnapshotID: &previous.ID,
		CurrentSnapshotID:  current.ID,
		ChangedAt:          at,
		Significance:       models.SignificanceLow,
		DataQuality:        current.DataQuality,
	}
}

func significance(percentage float64) models.Significance {
	switch abs := math.Abs(percentage); {
	case abs > highSignificanceThreshold:
		return models.SignificanceHigh
	case abs > mediumSignificanceThreshold:
		return models.SignificanceMedium
	default:
		return models.SignificanceLow
	}
}

func discountOrZero(discount *float64) float64 {
	if discount == nil {
		return 0
	}
	return *discount
}
