package alerting_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/soukwatch/pricetracker/internal/alerting"
	"github.com/soukwatch/pricetracker/internal/alerting/mocks"
	"github.com/soukwatch/pricetracker/internal/platform/models"
)

var (
	now    = time.Date(2024, time.March, 10, 12, 30, 0, 0, time.UTC)
	logger = zerolog.Nop()
)

func preference(id int64, productID string, dropThreshold float64, below *float64) models.AlertPreference {
	return models.AlertPreference{
		ID:                  id,
		UserEmail:           "user@example.ma",
		ProductID:           productID,
		PriceDropThreshold:  dropThreshold,
		PriceBelowThreshold: below,
		IsActive:            true,
	}
}

func snapshots(prices ...*float64) []models.Snapshot {
	snaps := make([]models.Snapshot, 0, len(prices))
	for ix, price := range prices {
		snaps = append(snaps, models.Snapshot{
			ID:        int64(100 - ix),
			ProductID: "p1",
			Source:    "jumia.ma",
			ScrapedAt: now.Add(-time.Duration(ix) * 24 * time.Hour),
			Price:     price,
		})
	}
	return snaps
}

func TestUnitEvaluatePriceDrop(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.On("ActiveAlertPreferences", mock.Anything).
		Return([]models.AlertPreference{preference(1, "p1", 10, nil)}, nil)
	// 100 -> 80 is a 20% drop against a 10% threshold.
	storage.On("RecentSnapshots", mock.Anything, "p1", 2).
		Return(snapshots(lo.ToPtr(80.0), lo.ToPtr(100.0)), nil)

	eva := alerting.NewEvaluator(storage, &logger)

	candidates, err := eva.Evaluate(context.TODO())

	require.NoError(t, err, "shouldn't return any error")
	require.Len(t, candidates, 1, "should fire exactly one alert")

	alert := candidates[0]
	assert.Equal(t, models.AlertPriceDrop, alert.AlertType)
	assert.Equal(t, int64(1), alert.PreferenceID)
	assert.Equal(t, "user@example.ma", alert.UserEmail)
	assert.Equal(t, 80.0, alert.CurrentPrice)
	assert.Equal(t, lo.ToPtr(100.0), alert.PreviousPrice)
	require.NotNil(t, alert.ChangePercent)
	assert.InDelta(t, -20.0, *alert.ChangePercent, 0.0001)
	assert.Equal(t, 10.0, alert.Threshold)
}

func TestUnitEvaluatePriceBelowThreshold(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.On("ActiveAlertPreferences", mock.Anything).
		Return([]models.AlertPreference{preference(2, "p1", 0, lo.ToPtr(90.0))}, nil)
	storage.On("RecentSnapshots", mock.Anything, "p1", 2).
		Return(snapshots(lo.ToPtr(85.0), lo.ToPtr(86.0)), nil)

	eva := alerting.NewEvaluator(storage, &logger)

	candidates, err := eva.Evaluate(context.TODO())

	require.NoError(t, err, "shouldn't return any error")
	require.Len(t, candidates, 1)
	assert.Equal(t, models.AlertPriceBelowThreshold, candidates[0].AlertType)
	assert.Equal(t, 85.0, candidates[0].CurrentPrice)
	assert.Equal(t, 90.0, candidates[0].Threshold)
}

func TestUnitEvaluateBothAlertsFire(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.On("ActiveAlertPreferences", mock.Anything).
		Return([]models.AlertPreference{preference(3, "p1", 10, lo.ToPtr(90.0))}, nil)
	storage.On("RecentSnapshots", mock.Anything, "p1", 2).
		Return(snapshots(lo.ToPtr(80.0), lo.ToPtr(100.0)), nil)

	eva := alerting.NewEvaluator(storage, &logger)

	candidates, err := eva.Evaluate(context.TODO())

	require.NoError(t, err, "shouldn't return any error")
	require.Len(t, candidates, 2, "both thresholds crossed, both alerts fire")
	assert.Equal(t, models.AlertPriceDrop, candidates[0].AlertType)
	assert.Equal(t, models.AlertPriceBelowThreshold, candidates[1].AlertType)
}

func TestUnitEvaluateSkips(t *testing.T) {
	tests := map[string]struct {
		snapshots []models.Snapshot
	}{
		"single snapshot":        {snapshots: snapshots(lo.ToPtr(80.0))},
		"no snapshots":           {snapshots: nil},
		"current price missing":  {snapshots: snapshots(nil, lo.ToPtr(100.0))},
		"previous price missing": {snapshots: snapshots(lo.ToPtr(80.0), nil)},
		"drop under threshold":   {snapshots: snapshots(lo.ToPtr(96.0), lo.ToPtr(100.0))},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			storage := mocks.NewStorage(t)
			storage.On("ActiveAlertPreferences", mock.Anything).
				Return([]models.AlertPreference{preference(4, "p1", 10, nil)}, nil)
			storage.On("RecentSnapshots", mock.Anything, "p1", 2).
				Return(tt.snapshots, nil)

			eva := alerting.NewEvaluator(storage, &logger)

			candidates, err := eva.Evaluate(context.TODO())

			require.NoError(t, err, "missing data is not an error")
			assert.Empty(t, candidates, "no alert should fire")
		})
	}
}

func TestUnitEvaluateSnapshotReadErrorSkipsPreference(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.On("ActiveAlertPreferences", mock.Anything).
		Return([]models.AlertPreference{
			preference(5, "p1", 10, nil),
			preference(6, "p2", 10, nil),
		}, nil)
	storage.On("RecentSnapshots", mock.Anything, "p1", 2).
		Return(nil, assert.AnError)
	storage.On("RecentSnapshots", mock.Anything, "p2", 2).
		Return(snapshots(lo.ToPtr(80.0), lo.ToPtr(100.0)), nil)

	eva := alerting.NewEvaluator(storage, &logger)

	candidates, err := eva.Evaluate(context.TODO())

	require.NoError(t, err, "one failing preference shouldn't fail evaluation")
	require.Len(t, candidates, 1, "remaining preferences should still be evaluated")
	assert.Equal(t, int64(6), candidates[0].PreferenceID)
}

func TestUnitEvaluatePreferencesError(t *testing.T) {
	storage := mocks.NewStorage(t)
	storage.On("ActiveAlertPreferences", mock.Anything).Return(nil, assert.AnError)

	eva := alerting.NewEvaluator(storage, &logger)

	_, err := eva.Evaluate(context.TODO())

	require.ErrorContains(t, err, "can't get alert preferences")
	require.ErrorIs(t, err, assert.AnError, "should return error containing assert.AnError")
}
