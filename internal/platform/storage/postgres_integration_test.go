package storage_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/samber/lo"
	"github.com/soukwatch/pricetracker/internal/platform"
	"github.com/soukwatch/pricetracker/internal/platform/models"
	"github.com/soukwatch/pricetracker/internal/platform/models/modelstesting"
	"github.com/soukwatch/pricetracker/internal/platform/storage"
	pgmodels "github.com/soukwatch/pricetracker/internal/platform/storage/gen/postgres/public/model"
	"github.com/soukwatch/pricetracker/internal/platform/storage/storagetesting"
	"github.com/stretchr/testify/suite"
)

const testSource = "jumia.ma"

func TestPostgresIntegration(t *testing.T) {
	suite.Run(t, new(PostgresTestSuite))
}

type PostgresTestSuite struct {
	suite.Suite
	DB *sql.DB
}

func (s *PostgresTestSuite) SetupSuite() {
	s.DB = storagetesting.Open(s.T())
	storagetesting.CleanupData(s.T(), s.DB)
}

func (s *PostgresTestSuite) TearDownSuite() {
	storagetesting.CleanupData(s.T(), s.DB)
	if err := s.DB.Close(); err != nil {
		s.FailNow("close DB", err)
	}
}

func (s *PostgresTestSuite) TestIntegrationUpsertProduct() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	scrapedAt := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	post := storage.NewPostgres(s.DB)

	product := modelstesting.FakeProduct(func(p *models.Product) {
		p.ProductID = "SKU-1"
		p.Source = testSource
		p.Brand = lo.ToPtr("Samsung")
		p.Category = lo.ToPtr("Phones")
		p.FirstSeenAt = scrapedAt
		p.LastUpdatedAt = scrapedAt
		p.LastScrapedAt = scrapedAt
	})

	created, err := post.UpsertProduct(context.TODO(), &product)

	s.Require().NoError(err, "shouldn't return any error")
	s.True(created, "first upsert should create the product")
	s.NotZero(product.ID, "product should get an id")

	stored := storagetesting.GetProduct(s.T(), s.DB, "SKU-1", testSource)
	s.Require().NotNil(stored, "product should be stored")
	s.Equal("Samsung", *stored.Brand, "brand should be stored")
	s.True(stored.IsActive, "product should be active")
	s.Equal(int32(0), stored.PriceHistoryCount, "history count should start at zero")
	s.True(stored.FirstSeenAt.Equal(scrapedAt), "first seen should match scrape time")

	// Second scrape: nil fields must not blank stored ones, non-nil ones win.
	laterAt := scrapedAt.Add(24 * time.Hour)
	update := modelstesting.FakeProduct(func(p *models.Product) {
		p.ProductID = "SKU-1"
		p.Source = testSource
		p.Brand = nil
		p.Category = lo.ToPtr("Smartphones")
		p.LastScrapedAt = laterAt
	})

	created, err = post.UpsertProduct(context.TODO(), &update)

	s.Require().NoError(err, "shouldn't return any error")
	s.False(created, "second upsert should update the product")
	s.Equal(product.ID, update.ID, "should keep the stored id")

	stored = storagetesting.GetProduct(s.T(), s.DB, "SKU-1", testSource)
	s.Require().NotNil(stored, "product should still be stored")
	s.Equal("Samsung", *stored.Brand, "nil brand should not blank the stored one")
	s.Equal("Smartphones", *stored.Category, "non-nil category should override")
	s.True(stored.FirstSeenAt.Equal(scrapedAt), "first seen should be preserved")
	s.True(stored.LastScrapedAt.Equal(laterAt), "last scraped should be refreshed")

	products := storagetesting.GetProducts(s.T(), s.DB)
	s.Len(products, 1, "should keep a single row per (product, source)")
}

func (s *PostgresTestSuite) TestIntegrationAppendSnapshot() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	post := storage.NewPostgres(s.DB)

	snapshot := modelstesting.FakeSnapshot(func(sn *models.Snapshot) {
		sn.ProductID = "SKU-1"
		sn.Source = testSource
		sn.Price = lo.ToPtr(199.99)
	})

	id, err := post.AppendSnapshot(context.TODO(), &snapshot)

	s.Require().NoError(err, "shouldn't return any error")
	s.NotZero(id, "should return assigned id")
	s.Equal(id, snapshot.ID, "should set snapshot id")

	second := modelstesting.FakeSnapshot(func(sn *models.Snapshot) {
		sn.ProductID = "SKU-1"
		sn.Source = testSource
		sn.Price = lo.ToPtr(189.99)
	})

	secondID, err := post.AppendSnapshot(context.TODO(), &second)

	s.Require().NoError(err, "shouldn't return any error")
	s.NotEqual(id, secondID, "snapshots should never be overwritten")
	s.Len(storagetesting.GetSnapshots(s.T(), s.DB), 2, "history should be append-only")
}

func (s *PostgresTestSuite) TestIntegrationUpdateAggregates() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	post := storage.NewPostgres(s.DB)

	product := modelstesting.FakeProduct(func(p *models.Product) {
		p.ProductID = "SKU-1"
		p.Source = testSource
	})
	_, err := post.UpsertProduct(context.TODO(), &product)
	s.Require().NoError(err, "shouldn't return any error")

	s.Require().NoError(post.UpdateAggregates(context.TODO(), "SKU-1", testSource, 100))
	s.Require().NoError(post.UpdateAggregates(context.TODO(), "SKU-1", testSource, 200))
	s.Require().NoError(post.UpdateAggregates(context.TODO(), "SKU-1", testSource, 0), "non-positive price should be skipped")
	s.Require().NoError(post.UpdateAggregates(context.TODO(), "SKU-1", testSource, -5), "non-positive price should be skipped")

	stored := storagetesting.GetProduct(s.T(), s.DB, "SKU-1", testSource)
	s.Require().NotNil(stored, "product should be stored")
	s.Equal(int32(2), stored.PriceHistoryCount, "only positive prices should count")
	s.InDelta(100, *stored.MinPrice, 0.0001, "min should be the lowest price")
	s.InDelta(200, *stored.MaxPrice, 0.0001, "max should be the highest price")
	s.InDelta(150, *stored.AvgPrice, 0.0001, "avg should be incremental")
	s.InDelta(200, *stored.LastPrice, 0.0001, "last should be the newest price")
	s.InDelta(1, *stored.PriceVolatility, 0.0001, "volatility should be |200-100|/100")

	err = post.UpdateAggregates(context.TODO(), "unknown", testSource, 100)
	s.Require().ErrorIs(err, platform.ErrProductNotFound, "should report unknown product")
}

func (s *PostgresTestSuite) TestIntegrationLatestSnapshotBefore() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	post := storage.NewPostgres(s.DB)

	older := modelstesting.FakeSnapshot(func(sn *models.Snapshot) {
		sn.ProductID = "SKU-1"
		sn.Source = testSource
		sn.Price = lo.ToPtr(100.0)
		sn.ScrapedAt = time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	})
	newest := modelstesting.FakeSnapshot(func(sn *models.Snapshot) {
		sn.ProductID = "SKU-1"
		sn.Source = testSource
		sn.Price = lo.ToPtr(90.0)
		sn.ScrapedAt = time.Date(2025, time.March, 2, 10, 0, 0, 0, time.UTC)
	})

	_, err := post.AppendSnapshot(context.TODO(), &older)
	s.Require().NoError(err, "shouldn't return any error")
	_, err = post.AppendSnapshot(context.TODO(), &newest)
	s.Require().NoError(err, "shouldn't return any error")

	previous, err := post.LatestSnapshotBefore(context.TODO(), "SKU-1", testSource, newest.ID)

	s.Require().NoError(err, "shouldn't return any error")
	s.Require().NotNil(previous, "should find the prior snapshot")
	s.Equal(older.ID, previous.ID, "should skip the excluded snapshot")
	s.InDelta(100.0, *previous.Price, 0.0001, "should return the prior price")

	previous, err = post.LatestSnapshotBefore(context.TODO(), "SKU-1", testSource, older.ID)
	s.Require().NoError(err, "shouldn't return any error")
	s.Require().NotNil(previous, "newest snapshot should still qualify")
	s.Equal(newest.ID, previous.ID, "should return the newest other snapshot")

	previous, err = post.LatestSnapshotBefore(context.TODO(), "SKU-2", testSource, 0)
	s.Require().NoError(err, "missing history is not an error")
	s.Nil(previous, "unknown product should have no prior snapshot")
}

func (s *PostgresTestSuite) TestIntegrationPriceHistory() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	post := storage.NewPostgres(s.DB)

	for day, price := range map[int]float64{1: 100, 2: 110, 3: 90} {
		snapshot := modelstesting.FakeSnapshot(func(sn *models.Snapshot) {
			sn.ProductID = "SKU-1"
			sn.Source = testSource
			sn.Price = lo.ToPtr(price)
			sn.ScrapedAt = time.Date(2025, time.March, day, 10, 0, 0, 0, time.UTC)
		})
		_, err := post.AppendSnapshot(context.TODO(), &snapshot)
		s.Require().NoError(err, "shouldn't return any error")
	}

	history, err := post.PriceHistory(context.TODO(), "SKU-1", testSource, 0)

	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(history, 3, "should return full history")
	s.InDelta(90, *history[0].Price, 0.0001, "newest snapshot should come first")
	s.InDelta(100, *history[2].Price, 0.0001, "oldest snapshot should come last")

	history, err = post.PriceHistory(context.TODO(), "SKU-1", testSource, 2)
	s.Require().NoError(err, "shouldn't return any error")
	s.Len(history, 2, "should honor the limit")

	history, err = post.PriceHistory(context.TODO(), "SKU-2", testSource, 0)
	s.Require().NoError(err, "missing history is not an error")
	s.Empty(history, "unknown product should have empty history")
}

func (s *PostgresTestSuite) TestIntegrationCurrentPrices() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	post := storage.NewPostgres(s.DB)

	phone := modelstesting.FakeProduct(func(p *models.Product) {
		p.ProductID = "SKU-1"
		p.Source = testSource
		p.Category = lo.ToPtr("Phones")
		p.Brand = lo.ToPtr("Samsung")
	})
	laptop := modelstesting.FakeProduct(func(p *models.Product) {
		p.ProductID = "SKU-2"
		p.Source = testSource
		p.Category = lo.ToPtr("Laptops")
		p.Brand = lo.ToPtr("Lenovo")
	})
	noHistory := modelstesting.FakeProduct(func(p *models.Product) {
		p.ProductID = "SKU-3"
		p.Source = testSource
	})
	for _, product := range []*models.Product{&phone, &laptop, &noHistory} {
		_, err := post.UpsertProduct(context.TODO(), product)
		s.Require().NoError(err, "shouldn't return any error")
	}

	for day, price := range map[int]float64{1: 100, 2: 95} {
		snapshot := modelstesting.FakeSnapshot(func(sn *models.Snapshot) {
			sn.ProductID = "SKU-1"
			sn.Source = testSource
			sn.Price = lo.ToPtr(price)
			sn.ScrapedAt = time.Date(2025, time.March, day, 10, 0, 0, 0, time.UTC)
		})
		_, err := post.AppendSnapshot(context.TODO(), &snapshot)
		s.Require().NoError(err, "shouldn't return any error")
	}
	laptopSnapshot := modelstesting.FakeSnapshot(func(sn *models.Snapshot) {
		sn.ProductID = "SKU-2"
		sn.Source = testSource
		sn.Price = lo.ToPtr(2500.0)
	})
	_, err := post.AppendSnapshot(context.TODO(), &laptopSnapshot)
	s.Require().NoError(err, "shouldn't return any error")

	prices, err := post.CurrentPrices(context.TODO(), storage.Filters{})

	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(prices, 2, "products without snapshots should be skipped")
	s.Equal("SKU-1", prices[0].Product.ProductID, "should be ordered by product id")
	s.InDelta(95, *prices[0].Snapshot.Price, 0.0001, "should flatten the latest snapshot in")

	prices, err = post.CurrentPrices(context.TODO(), storage.Filters{Category: "Laptops"})
	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(prices, 1, "category filter should narrow products")
	s.Equal("SKU-2", prices[0].Product.ProductID, "should return the matching product")

	prices, err = post.CurrentPrices(context.TODO(), storage.Filters{Brand: "Apple"})
	s.Require().NoError(err, "shouldn't return any error")
	s.Empty(prices, "unmatched filter should return empty result")
}

func (s *PostgresTestSuite) TestIntegrationPriceChanges() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	post := storage.NewPostgres(s.DB)

	now := time.Now().UTC().Truncate(time.Microsecond)
	changes := []models.Change{
		modelstesting.FakeChange(func(c *models.Change) {
			c.ProductID = "SKU-1"
			c.ChangeType = models.ChangeDecrease
			c.PercentageChange = -25
			c.ChangedAt = now.Add(-time.Hour)
		}),
		modelstesting.FakeChange(func(c *models.Change) {
			c.ProductID = "SKU-2"
			c.ChangeType = models.ChangeIncrease
			c.PercentageChange = 3
			c.ChangedAt = now.Add(-2 * time.Hour)
		}),
		modelstesting.FakeChange(func(c *models.Change) {
			c.ProductID = "SKU-3"
			c.ChangeType = models.ChangeDecrease
			c.PercentageChange = -2
			c.ChangedAt = now.Add(-72 * time.Hour)
		}),
	}
	for ix := range changes {
		s.Require().NoError(post.RecordChange(context.TODO(), &changes[ix]), "shouldn't return any error")
	}

	got, err := post.PriceChanges(context.TODO(), storage.ChangeFilters{})
	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(got, 3, "no filters should return everything")
	s.Equal("SKU-1", got[0].ProductID, "newest change should come first")

	got, err = post.PriceChanges(context.TODO(), storage.ChangeFilters{Type: models.ChangeDecrease})
	s.Require().NoError(err, "shouldn't return any error")
	s.Len(got, 2, "type filter should narrow changes")

	got, err = post.PriceChanges(context.TODO(), storage.ChangeFilters{Since: now.Add(-24 * time.Hour)})
	s.Require().NoError(err, "shouldn't return any error")
	s.Len(got, 2, "since filter should drop older changes")

	got, err = post.PriceChanges(context.TODO(), storage.ChangeFilters{MinAbsPercentage: 10})
	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(got, 1, "percentage filter should keep big moves only")
	s.Equal("SKU-1", got[0].ProductID, "should keep the deep drop")
}

func (s *PostgresTestSuite) TestIntegrationProductsWithPriceDrops() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	post := storage.NewPostgres(s.DB)

	now := time.Now().UTC().Truncate(time.Microsecond)
	for _, product := range []models.Product{
		modelstesting.FakeProduct(func(p *models.Product) {
			p.ProductID = "SKU-1"
			p.Source = testSource
			p.DisplayName = lo.ToPtr("Galaxy A16")
		}),
		modelstesting.FakeProduct(func(p *models.Product) {
			p.ProductID = "SKU-2"
			p.Source = testSource
			p.DisplayName = lo.ToPtr("ThinkPad T14")
		}),
	} {
		toUpsert := product
		_, err := post.UpsertProduct(context.TODO(), &toUpsert)
		s.Require().NoError(err, "shouldn't return any error")
	}

	changes := []models.Change{
		modelstesting.FakeChange(func(c *models.Change) {
			c.ProductID = "SKU-1"
			c.Source = testSource
			c.ChangeType = models.ChangeDecrease
			c.PreviousPrice = lo.ToPtr(200.0)
			c.CurrentPrice = lo.ToPtr(150.0)
			c.PriceDifference = -50
			c.PercentageChange = -25
			c.ChangedAt = now.Add(-time.Hour)
		}),
		modelstesting.FakeChange(func(c *models.Change) {
			c.ProductID = "SKU-2"
			c.Source = testSource
			c.ChangeType = models.ChangeDecrease
			c.PercentageChange = -12
			c.ChangedAt = now.Add(-2 * time.Hour)
		}),
		modelstesting.FakeChange(func(c *models.Change) {
			c.ProductID = "SKU-2"
			c.Source = testSource
			c.ChangeType = models.ChangeDecrease
			c.PercentageChange = -40
			c.ChangedAt = now.AddDate(0, 0, -30)
		}),
	}
	for ix := range changes {
		s.Require().NoError(post.RecordChange(context.TODO(), &changes[ix]), "shouldn't return any error")
	}

	drops, err := post.ProductsWithPriceDrops(context.TODO(), 10, 7)

	s.Require().NoError(err, "shouldn't return any error")
	s.Require().Len(drops, 2, "old drops should fall outside the window")
	s.Equal("SKU-1", drops[0].ProductID, "deepest drop should come first")
	s.Equal("Galaxy A16", *drops[0].ProductName, "should join product display fields")
	s.InDelta(50, drops[0].PriceDrop, 0.0001, "drop should be the absolute difference")
	s.InDelta(25, drops[0].PercentageDrop, 0.0001, "percentage drop should be positive")

	drops, err = post.ProductsWithPriceDrops(context.TODO(), 20, 7)
	s.Require().NoError(err, "shouldn't return any error")
	s.Len(drops, 1, "threshold should drop shallow changes")
}

func (s *PostgresTestSuite) TestIntegrationStatistics() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	post := storage.NewPostgres(s.DB)

	for _, product := range []models.Product{
		modelstesting.FakeProduct(func(p *models.Product) {
			p.ProductID = "SKU-1"
			p.Source = testSource
			p.Category = lo.ToPtr("Phones")
		}),
		modelstesting.FakeProduct(func(p *models.Product) {
			p.ProductID = "SKU-2"
			p.Source = "amazon.ae"
			p.Category = lo.ToPtr("Phones")
		}),
	} {
		toUpsert := product
		_, err := post.UpsertProduct(context.TODO(), &toUpsert)
		s.Require().NoError(err, "shouldn't return any error")
	}

	snapshot := modelstesting.FakeSnapshot(func(sn *models.Snapshot) {
		sn.ProductID = "SKU-1"
		sn.Source = testSource
	})
	_, err := post.AppendSnapshot(context.TODO(), &snapshot)
	s.Require().NoError(err, "shouldn't return any error")
	s.Require().NoError(post.UpdateAggregates(context.TODO(), "SKU-1", testSource, *snapshot.Price))

	change := modelstesting.FakeChange(func(c *models.Change) {
		c.ProductID = "SKU-1"
		c.Source = testSource
		c.ChangedAt = time.Now().UTC()
	})
	s.Require().NoError(post.RecordChange(context.TODO(), &change), "shouldn't return any error")

	user, err := post.CreateUser(context.TODO(), "buyer@example.com", "Buyer")
	s.Require().NoError(err, "shouldn't return any error")
	s.Require().NotNil(user, "user should be created")

	pref := modelstesting.FakePreference(func(p *models.AlertPreference) {
		p.UserEmail = user.Email
		p.ProductID = "SKU-1"
	})
	s.Require().NoError(post.SaveAlertPreference(context.TODO(), &pref), "shouldn't return any error")

	stats, err := post.Statistics(context.TODO())

	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(int64(2), stats.TotalProducts, "should count products")
	s.Equal(int64(2), stats.ActiveProducts, "should count active products")
	s.Equal(int64(1), stats.ProductsWithHistory, "should count products with history")
	s.Equal(int64(1), stats.ProductsBySource[testSource], "should count per source")
	s.Equal(int64(1), stats.ProductsBySource["amazon.ae"], "should count per source")
	s.Equal(int64(2), stats.ProductsByCategory["Phones"], "should count per category")
	s.Equal(int64(1), stats.TotalUsers, "should count users")
	s.Equal(int64(1), stats.ActiveUsers, "should count active users")
	s.Equal(int64(1), stats.ActivePreferences, "should count active preferences")
	s.Equal(int64(1), stats.TotalPriceRecords, "should count price records")
	s.Equal(int64(1), stats.TotalPriceChanges, "should count price changes")
	s.Equal(int64(1), stats.RecentPriceChanges, "should count recent price changes")
	s.NotZero(stats.GeneratedAt, "should stamp the report")
}

func (s *PostgresTestSuite) TestIntegrationUsers() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	post := storage.NewPostgres(s.DB)

	user, err := post.CreateUser(context.TODO(), "buyer@example.com", "Buyer")

	s.Require().NoError(err, "shouldn't return any error")
	s.Require().NotNil(user, "user should be created")
	s.NotZero(user.ID, "user should get an id")
	s.NotEmpty(user.UserID, "user should get a uuid")
	s.True(user.IsActive, "user should be active")

	again, err := post.CreateUser(context.TODO(), "Buyer@Example.com", "Someone Else")
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(user.ID, again.ID, "email should match case-insensitively")
	s.Equal("Buyer", again.Name, "existing user should not be overwritten")

	found, err := post.UserByEmail(context.TODO(), "buyer@example.com")
	s.Require().NoError(err, "shouldn't return any error")
	s.Require().NotNil(found, "user should be found")
	s.Equal(user.UserID, found.UserID, "should return the stored user")

	missing, err := post.UserByEmail(context.TODO(), "nobody@example.com")
	s.Require().NoError(err, "unknown email is not an error")
	s.Nil(missing, "unknown email should return nil")
}

func (s *PostgresTestSuite) TestIntegrationAlertPreferences() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	post := storage.NewPostgres(s.DB)

	pref := modelstesting.FakePreference(func(p *models.AlertPreference) {
		p.UserEmail = "buyer@example.com"
		p.ProductID = "SKU-1"
		p.PriceDropThreshold = 10
	})
	s.Require().NoError(post.SaveAlertPreference(context.TODO(), &pref), "shouldn't return any error")
	s.NotZero(pref.ID, "preference should get an id")

	stored := storagetesting.GetPreferences(s.T(), s.DB)
	s.Require().Len(stored, 1, "preference should be stored")
	createdAt := stored[0].CreatedAt

	update := modelstesting.FakePreference(func(p *models.AlertPreference) {
		p.UserEmail = "buyer@example.com"
		p.ProductID = "SKU-1"
		p.PriceDropThreshold = 25
		p.PriceBelowThreshold = lo.ToPtr(99.0)
	})
	s.Require().NoError(post.SaveAlertPreference(context.TODO(), &update), "shouldn't return any error")

	stored = storagetesting.GetPreferences(s.T(), s.DB)
	s.Require().Len(stored, 1, "saving twice should keep one row")
	s.Equal(pref.ID, stored[0].ID, "should update the existing row")
	s.InDelta(25, stored[0].PriceDropThreshold, 0.0001, "threshold should be updated")
	s.Require().NotNil(stored[0].PriceBelowThreshold, "absolute threshold should be updated")
	s.InDelta(99, *stored[0].PriceBelowThreshold, 0.0001, "absolute threshold should be updated")
	s.True(stored[0].CreatedAt.Equal(createdAt), "created at should be preserved")
	s.True(stored[0].IsActive, "preference should stay active")

	active, err := post.ActiveAlertPreferences(context.TODO())
	s.Require().NoError(err, "shouldn't return any error")
	s.Len(active, 1, "should list active preferences")

	s.Require().NoError(post.RemoveAlertPreference(context.TODO(), "buyer@example.com", "SKU-1"))
	s.Require().NoError(post.RemoveAlertPreference(context.TODO(), "buyer@example.com", "SKU-1"), "removing twice should be fine")

	active, err = post.ActiveAlertPreferences(context.TODO())
	s.Require().NoError(err, "shouldn't return any error")
	s.Empty(active, "removed preference should not be listed")

	stored = storagetesting.GetPreferences(s.T(), s.DB)
	s.Require().Len(stored, 1, "removal should be soft")
	s.False(stored[0].IsActive, "removed preference should be inactive")
}

func (s *PostgresTestSuite) TestIntegrationRecordSentAlert() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	post := storage.NewPostgres(s.DB)

	user, err := post.CreateUser(context.TODO(), "buyer@example.com", "Buyer")
	s.Require().NoError(err, "shouldn't return any error")

	pref := modelstesting.FakePreference(func(p *models.AlertPreference) {
		p.UserEmail = user.Email
		p.ProductID = "SKU-1"
	})
	s.Require().NoError(post.SaveAlertPreference(context.TODO(), &pref), "shouldn't return any error")

	sent := models.AlertSent{
		UserEmail: user.Email,
		ProductID: "SKU-1",
		AlertType: models.AlertPriceDrop,
		Details:   lo.ToPtr("price dropped 25%"),
	}

	s.Require().NoError(post.RecordSentAlert(context.TODO(), &sent), "shouldn't return any error")
	s.NotZero(sent.ID, "sent alert should get an id")
	s.NotZero(sent.SentAt, "sent alert should be stamped")

	history := storagetesting.GetAlertHistory(s.T(), s.DB)
	s.Require().Len(history, 1, "alert should be recorded")
	s.Equal(models.AlertPriceDrop, history[0].AlertType, "alert type should be stored")

	prefs := storagetesting.GetPreferences(s.T(), s.DB)
	s.Require().Len(prefs, 1, "preference should still exist")
	s.Equal(int32(1), prefs[0].AlertCount, "preference counter should be bumped")
	s.NotNil(prefs[0].LastTriggered, "preference should remember last trigger")

	stored, err := post.UserByEmail(context.TODO(), user.Email)
	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(int32(1), stored.AlertCount, "user counter should be bumped")
}

func (s *PostgresTestSuite) TestIntegrationDeactivateStaleProducts() {
	defer storagetesting.CleanupData(s.T(), s.DB)

	post := storage.NewPostgres(s.DB)

	cutoff := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	products := []pgmodels.Products{
		*storage.ToDBProduct(lo.ToPtr(modelstesting.FakeProduct(func(p *models.Product) {
			p.ProductID = "SKU-1"
			p.Source = testSource
			p.LastScrapedAt = cutoff.AddDate(0, 0, -5)
		}))),
		*storage.ToDBProduct(lo.ToPtr(modelstesting.FakeProduct(func(p *models.Product) {
			p.ProductID = "SKU-2"
			p.Source = testSource
			p.LastScrapedAt = cutoff.AddDate(0, 0, -1)
		}))),
		*storage.ToDBProduct(lo.ToPtr(modelstesting.FakeProduct(func(p *models.Product) {
			p.ProductID = "SKU-3"
			p.Source = testSource
			p.LastScrapedAt = cutoff.AddDate(0, 0, 1)
		}))),
		*storage.ToDBProduct(lo.ToPtr(modelstesting.FakeProduct(func(p *models.Product) {
			p.ProductID = "SKU-4"
			p.Source = "amazon.ae"
			p.LastScrapedAt = cutoff.AddDate(0, 0, -5)
		}))),
	}
	storagetesting.InsertProducts(s.T(), s.DB, products...)

	deactivated, err := post.DeactivateStaleProducts(context.TODO(), testSource, cutoff, 1)

	s.Require().NoError(err, "shouldn't return any error")
	s.Equal(int32(2), deactivated, "should deactivate stale products of the source only")

	state := storagetesting.GetProducts(s.T(), s.DB)
	s.Require().Len(state, 4, "products should never be deleted")
	for ix := range state {
		switch state[ix].ProductID {
		case "SKU-1", "SKU-2":
			s.False(state[ix].IsActive, "stale product %s should be inactive", state[ix].ProductID)
		default:
			s.True(state[ix].IsActive, "product %s should stay active", state[ix].ProductID)
		}
	}
}
