package alerting

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/soukwatch/pricetracker/internal/platform/models"
)

//go:generate mockery --name Storage --filename storage.go

// Storage reads alert preferences and price history.
type Storage interface {
	// ActiveAlertPreferences returns all active preferences.
	ActiveAlertPreferences(ctx context.Context) ([]models.AlertPreference, error)
	// RecentSnapshots returns the newest snapshots of the product, newest first.
	RecentSnapshots(ctx context.Context, productID string, limit int) ([]models.Snapshot, error)
}

// Evaluator cross-references active alert preferences against the two most
// recent snapshots of each watched product. Evaluation is read-only, it
// only produces candidates; recording and delivery happen elsewhere.
type Evaluator struct {
	storage Storage
	logger  *zerolog.Logger
}

// NewEvaluator returns new Evaluator.
func NewEvaluator(storage Storage, logger *zerolog.Logger) Evaluator {
	return Evaluator{
		storage: storage,
		logger:  logger,
	}
}

// Evaluate returns the alerts that should fire right now. A preference
// whose product has fewer than two priced snapshots is skipped, not
// failed; a read error on one preference skips it and the rest continue.
func (e Evaluator) Evaluate(ctx context.Context) ([]models.AlertCandidate, error) {
	preferences, err := e.storage.ActiveAlertPreferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't get alert preferences: %w", err)
	}

	candidates := []models.AlertCandidate{}

	for ix := range preferences {
		fired, err := e.evaluatePreference(ctx, &preferences[ix])
		if err != nil {
			e.logger.Warn().
				Err(err).
				Str("userEmail", preferences[ix].UserEmail).
				Str("productId", preferences[ix].ProductID).
				Msg("can't evaluate alert preference")
			continue
		}
		candidates = append(candidates, fired...)
	}

	return candidates, nil
}

func (e Evaluator) evaluatePreference(ctx context.Context, pref *models.AlertPreference) ([]models.AlertCandidate, error) {
	snapshots, err := e.storage.RecentSnapshots(ctx, pref.ProductID, 2)
	if err != nil {
		return nil, fmt.Errorf("can't get recent snapshots: %w", err)
	}

	if len(snapshots) < 2 {
		return nil, nil
	}

	current := snapshots[0].Price
	previous := snapshots[1].Price
	if current == nil || previous == nil {
		return nil, nil
	}

	var fired []models.AlertCandidate

	if pref.PriceDropThreshold > 0 {
		percentage := 0.0
		if *previous > 0 {
			percentage = (*current - *previous) / *previous * 100
		}

		if percentage < -pref.PriceDropThreshold {
			fired = append(fired, models.AlertCandidate{
				PreferenceID:  pref.ID,
				UserEmail:     pref.UserEmail,
				ProductID:     pref.ProductID,
				AlertType:     models.AlertPriceDrop,
				CurrentPrice:  *current,
				PreviousPrice: previous,
				ChangePercent: &percentage,
				Threshold:     pref.PriceDropThreshold,
			})
		}
	}

	if pref.PriceBelowThreshold != nil && *current < *pref.PriceBelowThreshold {
		fired = append(fired, models.AlertCandidate{
			PreferenceID: pref.ID,
			UserEmail:    pref.UserEmail,
			ProductID:    pref.ProductID,
			AlertType:    models.AlertPriceBelowThreshold,
			CurrentPrice: *current,
			Threshold:    *pref.PriceBelowThreshold,
		})
	}

	return fired, nil
}
