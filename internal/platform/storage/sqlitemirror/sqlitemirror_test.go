package sqlitemirror_test

import (
	"context"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/soukwatch/pricetracker/internal/platform/models"
	"github.com/soukwatch/pricetracker/internal/platform/models/modelstesting"
	"github.com/soukwatch/pricetracker/internal/platform/storage/sqlitemirror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitSaveProduct(t *testing.T) {
	mirror, err := sqlitemirror.Open(":memory:")
	require.NoError(t, err, "shouldn't return any error")
	t.Cleanup(func() { _ = mirror.Close() })

	product := modelstesting.FakeProduct(func(p *models.Product) {
		p.ProductID = "SKU-1"
		p.Source = "jumia.ma"
		p.Brand = lo.ToPtr("Samsung")
	})
	snapshot := modelstesting.FakeSnapshot(func(s *models.Snapshot) {
		s.ProductID = "SKU-1"
		s.Source = "jumia.ma"
		s.Price = lo.ToPtr(199.0)
	})

	err = mirror.SaveProduct(context.TODO(), product, snapshot)

	require.NoError(t, err, "shouldn't return any error")

	products, err := mirror.ProductCount(context.TODO())
	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, int64(1), products, "should mirror the product")

	history, err := mirror.HistoryCount(context.TODO())
	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, int64(1), history, "should mirror the snapshot")

	price, err := mirror.LastPrice(context.TODO(), "SKU-1", "jumia.ma")
	require.NoError(t, err, "shouldn't return any error")
	require.NotNil(t, price, "should remember the last price")
	assert.InDelta(t, 199.0, *price, 0.0001, "should remember the last price")
}

func TestUnitSaveProductUpsert(t *testing.T) {
	mirror, err := sqlitemirror.Open(":memory:")
	require.NoError(t, err, "shouldn't return any error")
	t.Cleanup(func() { _ = mirror.Close() })

	first := modelstesting.FakeProduct(func(p *models.Product) {
		p.ProductID = "SKU-1"
		p.Source = "jumia.ma"
		p.Brand = lo.ToPtr("Samsung")
	})
	second := modelstesting.FakeProduct(func(p *models.Product) {
		p.ProductID = "SKU-1"
		p.Source = "jumia.ma"
		p.Brand = nil
		p.Category = lo.ToPtr("Smartphones")
	})

	err = mirror.SaveProduct(context.TODO(), first, modelstesting.FakeSnapshot(func(s *models.Snapshot) {
		s.ProductID = "SKU-1"
		s.Source = "jumia.ma"
		s.Price = lo.ToPtr(199.0)
		s.ScrapedAt = time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	}))
	require.NoError(t, err, "shouldn't return any error")

	err = mirror.SaveProduct(context.TODO(), second, modelstesting.FakeSnapshot(func(s *models.Snapshot) {
		s.ProductID = "SKU-1"
		s.Source = "jumia.ma"
		s.Price = lo.ToPtr(149.0)
		s.ScrapedAt = time.Date(2025, time.March, 2, 10, 0, 0, 0, time.UTC)
	}))
	require.NoError(t, err, "shouldn't return any error")

	products, err := mirror.ProductCount(context.TODO())
	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, int64(1), products, "should keep one row per (product, source)")

	history, err := mirror.HistoryCount(context.TODO())
	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, int64(2), history, "history should be append-only")

	price, err := mirror.LastPrice(context.TODO(), "SKU-1", "jumia.ma")
	require.NoError(t, err, "shouldn't return any error")
	require.NotNil(t, price, "should remember the last price")
	assert.InDelta(t, 149.0, *price, 0.0001, "last price should follow the newest snapshot")
}

func TestUnitLastPriceUnknownProduct(t *testing.T) {
	mirror, err := sqlitemirror.Open(":memory:")
	require.NoError(t, err, "shouldn't return any error")
	t.Cleanup(func() { _ = mirror.Close() })

	price, err := mirror.LastPrice(context.TODO(), "unknown", "jumia.ma")

	require.NoError(t, err, "unknown product is not an error")
	assert.Nil(t, price, "unknown product should have no price")
}
