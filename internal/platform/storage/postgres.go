package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/soukwatch/pricetracker/internal/platform"
	"github.com/soukwatch/pricetracker/internal/platform/models"
	"github.com/soukwatch/pricetracker/internal/platform/storage/gen/postgres/public/table"
	"golang.org/x/sync/errgroup"

	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	pgmodels "github.com/soukwatch/pricetracker/internal/platform/storage/gen/postgres/public/model"
)

// Filters narrows CurrentPrices. Empty fields match everything.
type Filters struct {
	Category string
	Brand    string
	Source   string
}

// ChangeFilters narrows PriceChanges. Zero fields match everything.
type ChangeFilters struct {
	Type             models.ChangeType
	Since            time.Time
	MinAbsPercentage float64
	Limit            int64
}

// Postgres is the primary storage for products, price history, price
// changes, users and alert preferences.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// UpsertProduct inserts the product or merges it into the stored row
// keyed by (product_id, source). It returns true if a new row was
// created. On update a non-nil scraped field overrides the stored one
// and a nil field never blanks it; aggregates and first_seen_at are
// kept as stored.
func (p Postgres) UpsertProduct(ctx context.Context, product *models.Product) (bool, error) {
	created := false
	now := product.LastScrapedAt
	if now.IsZero() {
		now = time.Now().UTC()
	}

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		var stored pgmodels.Products
		err := table.Products.SELECT(table.Products.AllColumns).
			WHERE(pg.AND(
				table.Products.ProductID.EQ(pg.String(product.ProductID)),
				table.Products.Source.EQ(pg.String(product.Source)),
			)).
			QueryContext(ctx, tx, &stored)

		if errors.Is(err, qrm.ErrNoRows) {
			created = true
			return insertProduct(ctx, tx, product, now)
		}

		if err != nil {
			return fmt.Errorf("can't get stored product: %w", err)
		}

		merged := mergeProduct(&stored, product)
		merged.LastUpdatedAt = now
		merged.LastScrapedAt = now

		_, err = table.Products.UPDATE(table.Products.MutableColumns).
			MODEL(merged).
			WHERE(table.Products.ID.EQ(pg.Int(stored.ID))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't update product: %w", err)
		}

		product.ID = stored.ID
		product.FirstSeenAt = stored.FirstSeenAt

		return nil
	})
	if err != nil {
		return false, fmt.Errorf("can't upsert product: %w", err)
	}

	return created, nil
}

func insertProduct(ctx context.Context, db qrm.DB, product *models.Product, now time.Time) error {
	dbProduct := ToDBProduct(product)
	if dbProduct.FirstSeenAt.IsZero() {
		dbProduct.FirstSeenAt = now
	}
	if dbProduct.LastUpdatedAt.IsZero() {
		dbProduct.LastUpdatedAt = now
	}
	if dbProduct.LastScrapedAt.IsZero() {
		dbProduct.LastScrapedAt = now
	}
	dbProduct.IsActive = true

	err := table.Products.INSERT(table.Products.MutableColumns).
		MODEL(dbProduct).
		RETURNING(table.Products.ID).
		QueryContext(ctx, db, dbProduct)
	if err != nil {
		return fmt.Errorf("can't insert product: %w", err)
	}

	product.ID = dbProduct.ID
	product.FirstSeenAt = dbProduct.FirstSeenAt

	return nil
}

// AppendSnapshot inserts the snapshot into price history and returns
// the assigned id.
func (p Postgres) AppendSnapshot(ctx context.Context, snapshot *models.Snapshot) (int64, error) {
	dbSnapshot := ToDBSnapshot(snapshot)

	err := table.PriceHistory.INSERT(table.PriceHistory.MutableColumns).
		MODEL(dbSnapshot).
		RETURNING(table.PriceHistory.ID).
		QueryContext(ctx, p.db, dbSnapshot)
	if err != nil {
		return 0, fmt.Errorf("can't insert price snapshot: %w", err)
	}

	snapshot.ID = dbSnapshot.ID

	return dbSnapshot.ID, nil
}

// RecordChange inserts the price change.
func (p Postgres) RecordChange(ctx context.Context, change *models.Change) error {
	dbChange := ToDBChange(change)

	err := table.PriceChanges.INSERT(table.PriceChanges.MutableColumns).
		MODEL(dbChange).
		RETURNING(table.PriceChanges.ID).
		QueryContext(ctx, p.db, dbChange)
	if err != nil {
		return fmt.Errorf("can't insert price change: %w", err)
	}

	change.ID = dbChange.ID

	return nil
}

// UpdateAggregates folds newPrice into the product's price aggregates.
// Prices below or equal zero are ignored. The average is updated
// incrementally, without scanning price history.
func (p Postgres) UpdateAggregates(ctx context.Context, productID, source string, newPrice float64) error {
	if newPrice <= 0 {
		return nil
	}

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		var stored pgmodels.Products
		err := table.Products.SELECT(table.Products.AllColumns).
			WHERE(pg.AND(
				table.Products.ProductID.EQ(pg.String(productID)),
				table.Products.Source.EQ(pg.String(source)),
			)).
			QueryContext(ctx, tx, &stored)

		if errors.Is(err, qrm.ErrNoRows) {
			return platform.ErrProductNotFound
		}

		if err != nil {
			return fmt.Errorf("can't get product aggregates: %w", err)
		}

		count := stored.PriceHistoryCount + 1
		average := newPrice
		volatility := 0.0
		if stored.AvgPrice != nil && stored.PriceHistoryCount > 0 {
			oldAverage := *stored.AvgPrice
			average = (oldAverage*float64(stored.PriceHistoryCount) + newPrice) / float64(count)
			if oldAverage > 0 {
				volatility = math.Abs(newPrice-oldAverage) / oldAverage
			}
		}

		minPrice := newPrice
		if stored.MinPrice != nil && *stored.MinPrice < minPrice {
			minPrice = *stored.MinPrice
		}
		maxPrice := newPrice
		if stored.MaxPrice != nil && *stored.MaxPrice > maxPrice {
			maxPrice = *stored.MaxPrice
		}

		_, err = table.Products.UPDATE().
			SET(
				table.Products.MinPrice.SET(pg.Float(minPrice)),
				table.Products.MaxPrice.SET(pg.Float(maxPrice)),
				table.Products.AvgPrice.SET(pg.Float(average)),
				table.Products.LastPrice.SET(pg.Float(newPrice)),
				table.Products.PriceVolatility.SET(pg.Float(volatility)),
				table.Products.PriceHistoryCount.SET(pg.Int32(count)),
			).
			WHERE(table.Products.ID.EQ(pg.Int(stored.ID))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't update product aggregates: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("can't update price aggregates: %w", err)
	}

	return nil
}

// LatestSnapshotBefore returns the newest snapshot of the product other
// than excludeID, or nil if the product has no prior snapshots.
func (p Postgres) LatestSnapshotBefore(ctx context.Context, productID, source string, excludeID int64) (*models.Snapshot, error) {
	var stored pgmodels.PriceHistory
	err := table.PriceHistory.SELECT(table.PriceHistory.AllColumns).
		WHERE(pg.AND(
			table.PriceHistory.ProductID.EQ(pg.String(productID)),
			table.PriceHistory.Source.EQ(pg.String(source)),
			table.PriceHistory.ID.NOT_EQ(pg.Int(excludeID)),
		)).
		ORDER_BY(table.PriceHistory.ScrapedAt.DESC(), table.PriceHistory.ID.DESC()).
		LIMIT(1).
		QueryContext(ctx, p.db, &stored)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("can't get latest snapshot: %w", err)
	}

	snapshot := FromDBSnapshot(&stored)

	return &snapshot, nil
}

// PriceHistory returns the product's snapshots, newest first. Limit
// below or equal zero means no limit.
func (p Postgres) PriceHistory(ctx context.Context, productID, source string, limit int64) ([]models.Snapshot, error) {
	stmt := table.PriceHistory.SELECT(table.PriceHistory.AllColumns).
		WHERE(pg.AND(
			table.PriceHistory.ProductID.EQ(pg.String(productID)),
			table.PriceHistory.Source.EQ(pg.String(source)),
		)).
		ORDER_BY(table.PriceHistory.ScrapedAt.DESC(), table.PriceHistory.ID.DESC())
	if limit > 0 {
		stmt = stmt.LIMIT(limit)
	}

	var stored []pgmodels.PriceHistory
	if err := stmt.QueryContext(ctx, p.db, &stored); err != nil {
		return nil, fmt.Errorf("can't get price history: %w", err)
	}

	return lo.Map(stored, func(snapshot pgmodels.PriceHistory, _ int) models.Snapshot {
		return FromDBSnapshot(&snapshot)
	}), nil
}

// CurrentPrices returns one row per active product matching the
// filters, with the latest snapshot flattened in. Products without any
// snapshots are skipped.
func (p Postgres) CurrentPrices(ctx context.Context, filters Filters) ([]models.CurrentPrice, error) {
	conditions := []pg.BoolExpression{table.Products.IsActive.IS_TRUE()}
	if filters.Category != "" {
		conditions = append(conditions, table.Products.Category.EQ(pg.String(filters.Category)))
	}
	if filters.Brand != "" {
		conditions = append(conditions, table.Products.Brand.EQ(pg.String(filters.Brand)))
	}
	if filters.Source != "" {
		conditions = append(conditions, table.Products.Source.EQ(pg.String(filters.Source)))
	}

	var storedProducts []pgmodels.Products
	err := table.Products.SELECT(table.Products.AllColumns).
		WHERE(pg.AND(conditions...)).
		ORDER_BY(table.Products.ProductID.ASC(), table.Products.Source.ASC()).
		QueryContext(ctx, p.db, &storedProducts)
	if err != nil {
		return nil, fmt.Errorf("can't get products: %w", err)
	}

	if len(storedProducts) == 0 {
		return []models.CurrentPrice{}, nil
	}

	ids := lo.Map(storedProducts, func(product pgmodels.Products, _ int) pg.Expression {
		return pg.String(product.ProductID)
	})

	var latest []pgmodels.PriceHistory
	err = table.PriceHistory.SELECT(table.PriceHistory.AllColumns).
		DISTINCT(table.PriceHistory.ProductID, table.PriceHistory.Source).
		WHERE(table.PriceHistory.ProductID.IN(ids...)).
		ORDER_BY(
			table.PriceHistory.ProductID.ASC(),
			table.PriceHistory.Source.ASC(),
			table.PriceHistory.ScrapedAt.DESC(),
			table.PriceHistory.ID.DESC(),
		).
		QueryContext(ctx, p.db, &latest)
	if err != nil {
		return nil, fmt.Errorf("can't get latest snapshots: %w", err)
	}

	type productKey struct {
		productID string
		source    string
	}
	latestByProduct := make(map[productKey]pgmodels.PriceHistory, len(latest))
	for ix := range latest {
		latestByProduct[productKey{latest[ix].ProductID, latest[ix].Source}] = latest[ix]
	}

	prices := make([]models.CurrentPrice, 0, len(storedProducts))
	for ix := range storedProducts {
		snapshot, ok := latestByProduct[productKey{storedProducts[ix].ProductID, storedProducts[ix].Source}]
		if !ok {
			continue
		}
		prices = append(prices, models.CurrentPrice{
			Product:  FromDBProduct(&storedProducts[ix]),
			Snapshot: FromDBSnapshot(&snapshot),
		})
	}

	return prices, nil
}

// PriceChanges returns price changes matching the filters, newest first.
func (p Postgres) PriceChanges(ctx context.Context, filters ChangeFilters) ([]models.Change, error) {
	conditions := []pg.BoolExpression{}
	if filters.Type != "" {
		conditions = append(conditions, table.PriceChanges.ChangeType.EQ(pg.String(string(filters.Type))))
	}
	if !filters.Since.IsZero() {
		conditions = append(conditions, table.PriceChanges.ChangedAt.GT_EQ(pg.TimestampzT(filters.Since)))
	}
	if filters.MinAbsPercentage > 0 {
		conditions = append(conditions, pg.ABSf(table.PriceChanges.PercentageChange).GT_EQ(pg.Float(filters.MinAbsPercentage)))
	}

	stmt := table.PriceChanges.SELECT(table.PriceChanges.AllColumns)
	if len(conditions) > 0 {
		stmt = stmt.WHERE(pg.AND(conditions...))
	}
	stmt = stmt.ORDER_BY(table.PriceChanges.ChangedAt.DESC(), table.PriceChanges.ID.DESC())
	if filters.Limit > 0 {
		stmt = stmt.LIMIT(filters.Limit)
	}

	var stored []pgmodels.PriceChanges
	if err := stmt.QueryContext(ctx, p.db, &stored); err != nil {
		return nil, fmt.Errorf("can't get price changes: %w", err)
	}

	return lo.Map(stored, func(change pgmodels.PriceChanges, _ int) models.Change {
		return FromDBChange(&change)
	}), nil
}

// ProductsWithPriceDrops returns decrease changes from the last days
// with percentage drop of at least minPct, joined with product display
// fields, deepest drop first.
func (p Postgres) ProductsWithPriceDrops(ctx context.Context, minPct float64, days int) ([]models.PriceDrop, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)

	var rows []struct {
		pgmodels.PriceChanges
		pgmodels.Products
	}
	err := pg.SELECT(
		table.PriceChanges.AllColumns,
		table.Products.Name,
		table.Products.DisplayName,
		table.Products.Brand,
		table.Products.URL,
	).FROM(
		table.PriceChanges.INNER_JOIN(
			table.Products,
			table.PriceChanges.ProductID.EQ(table.Products.ProductID).
				AND(table.PriceChanges.Source.EQ(table.Products.Source)),
		),
	).WHERE(pg.AND(
		table.PriceChanges.ChangeType.EQ(pg.String(string(models.ChangeDecrease))),
		table.PriceChanges.ChangedAt.GT_EQ(pg.TimestampzT(since)),
		table.PriceChanges.PercentageChange.LT_EQ(pg.Float(-minPct)),
	)).
		ORDER_BY(table.PriceChanges.PercentageChange.ASC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil {
		return nil, fmt.Errorf("can't get price drops: %w", err)
	}

	drops := make([]models.PriceDrop, 0, len(rows))
	for ix := range rows {
		change := rows[ix].PriceChanges
		product := rows[ix].Products
		drops = append(drops, models.PriceDrop{
			ProductID:      change.ProductID,
			Source:         change.Source,
			ProductName:    coalesce(product.DisplayName, product.Name),
			Brand:          product.Brand,
			URL:            product.URL,
			PreviousPrice:  change.PreviousPrice,
			CurrentPrice:   change.CurrentPrice,
			PriceDrop:      math.Abs(change.PriceDifference),
			PercentageDrop: math.Abs(change.PercentageChange),
			ChangedAt:      change.ChangedAt,
		})
	}

	return drops, nil
}

// Statistics returns the aggregate view over products, users, alerts
// and price records.
func (p Postgres) Statistics(ctx context.Context) (*models.Statistics, error) {
	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	stats := &models.Statistics{
		ProductsBySource:   map[string]int64{},
		ProductsByCategory: map[string]int64{},
		GeneratedAt:        now,
	}

	counts := []struct {
		name string
		dest *int64
		stmt pg.SelectStatement
	}{
		{
			name: "products",
			dest: &stats.TotalProducts,
			stmt: pg.SELECT(pg.COUNT(table.Products.ID).AS("count")).
				FROM(table.Products),
		},
		{
			name: "active products",
			dest: &stats.ActiveProducts,
			stmt: pg.SELECT(pg.COUNT(table.Products.ID).AS("count")).
				FROM(table.Products).
				WHERE(table.Products.IsActive.IS_TRUE()),
		},
		{
			name: "products with history",
			dest: &stats.ProductsWithHistory,
			stmt: pg.SELECT(pg.COUNT(table.Products.ID).AS("count")).
				FROM(table.Products).
				WHERE(table.Products.PriceHistoryCount.GT(pg.Int32(0))),
		},
		{
			name: "users",
			dest: &stats.TotalUsers,
			stmt: pg.SELECT(pg.COUNT(table.Users.ID).AS("count")).
				FROM(table.Users),
		},
		{
			name: "active users",
			dest: &stats.ActiveUsers,
			stmt: pg.SELECT(pg.COUNT(table.Users.ID).AS("count")).
				FROM(table.Users).
				WHERE(table.Users.IsActive.IS_TRUE()),
		},
		{
			name: "active alert preferences",
			dest: &stats.ActivePreferences,
			stmt: pg.SELECT(pg.COUNT(table.AlertPreferences.ID).AS("count")).
				FROM(table.AlertPreferences).
				WHERE(table.AlertPreferences.IsActive.IS_TRUE()),
		},
		{
			name: "sent alerts",
			dest: &stats.AlertsSent,
			stmt: pg.SELECT(pg.COUNT(table.AlertHistory.ID).AS("count")).
				FROM(table.AlertHistory),
		},
		{
			name: "alerts sent today",
			dest: &stats.AlertsSentToday,
			stmt: pg.SELECT(pg.COUNT(table.AlertHistory.ID).AS("count")).
				FROM(table.AlertHistory).
				WHERE(table.AlertHistory.SentAt.GT_EQ(pg.TimestampzT(midnight))),
		},
		{
			name: "price records",
			dest: &stats.TotalPriceRecords,
			stmt: pg.SELECT(pg.COUNT(table.PriceHistory.ID).AS("count")).
				FROM(table.PriceHistory),
		},
		{
			name: "price changes",
			dest: &stats.TotalPriceChanges,
			stmt: pg.SELECT(pg.COUNT(table.PriceChanges.ID).AS("count")).
				FROM(table.PriceChanges),
		},
		{
			name: "recent price changes",
			dest: &stats.RecentPriceChanges,
			stmt: pg.SELECT(pg.COUNT(table.PriceChanges.ID).AS("count")).
				FROM(table.PriceChanges).
				WHERE(table.PriceChanges.ChangedAt.GT_EQ(pg.TimestampzT(now.Add(-24 * time.Hour)))),
		},
	}

	for _, count := range counts {
		total, err := countRows(ctx, p.db, count.stmt)
		if err != nil {
			return nil, fmt.Errorf("can't count %s: %w", count.name, err)
		}
		*count.dest = total
	}

	var perSource []struct {
		Source string
		Count  int64
	}
	err := pg.SELECT(
		table.Products.Source.AS("source"),
		pg.COUNT(table.Products.ID).AS("count"),
	).
		FROM(table.Products).
		GROUP_BY(table.Products.Source).
		QueryContext(ctx, p.db, &perSource)
	if err != nil {
		return nil, fmt.Errorf("can't count products by source: %w", err)
	}
	for ix := range perSource {
		stats.ProductsBySource[perSource[ix].Source] = perSource[ix].Count
	}

	var perCategory []struct {
		Category string
		Count    int64
	}
	err = pg.SELECT(
		table.Products.Category.AS("category"),
		pg.COUNT(table.Products.ID).AS("count"),
	).
		FROM(table.Products).
		WHERE(table.Products.Category.IS_NOT_NULL()).
		GROUP_BY(table.Products.Category).
		ORDER_BY(pg.COUNT(table.Products.ID).DESC()).
		LIMIT(10).
		QueryContext(ctx, p.db, &perCategory)
	if err != nil {
		return nil, fmt.Errorf("can't count products by category: %w", err)
	}
	for ix := range perCategory {
		stats.ProductsByCategory[perCategory[ix].Category] = perCategory[ix].Count
	}

	return stats, nil
}

// CreateUser creates an alert recipient, or returns the existing one
// when the email is already registered. Emails are unique case-insensitively.
func (p Postgres) CreateUser(ctx context.Context, email, name string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		var stored pgmodels.Users
		err := table.Users.SELECT(table.Users.AllColumns).
			WHERE(table.Users.Email.EQ(pg.String(email))).
			QueryContext(ctx, tx, &stored)
		if err == nil {
			user = fromDBUser(&stored)
			return nil
		}

		if !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get user: %w", err)
		}

		stored = pgmodels.Users{
			UserID:    uuid.NewString(),
			Email:     email,
			Name:      name,
			CreatedAt: time.Now().UTC(),
			IsActive:  true,
		}
		err = table.Users.INSERT(table.Users.MutableColumns).
			MODEL(&stored).
			RETURNING(table.Users.ID).
			QueryContext(ctx, tx, &stored)
		if err != nil {
			return fmt.Errorf("can't insert user: %w", err)
		}

		user = fromDBUser(&stored)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't create user: %w", err)
	}

	return &user, nil
}

// UserByEmail returns the user, or nil when the email is unknown.
func (p Postgres) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var stored pgmodels.Users
	err := table.Users.SELECT(table.Users.AllColumns).
		WHERE(table.Users.Email.EQ(pg.String(email))).
		QueryContext(ctx, p.db, &stored)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("can't get user: %w", err)
	}

	user := fromDBUser(&stored)

	return &user, nil
}

// SaveAlertPreference upserts the preference keyed by
// (user_email, product_id), reactivating it and preserving created_at
// when the row already exists.
func (p Postgres) SaveAlertPreference(ctx context.Context, pref *models.AlertPreference) error {
	now := time.Now().UTC()

	dbPref := &pgmodels.AlertPreferences{
		UserEmail:           pref.UserEmail,
		ProductID:           pref.ProductID,
		PriceDropThreshold:  pref.PriceDropThreshold,
		PriceBelowThreshold: pref.PriceBelowThreshold,
		AnomalyAlerts:       pref.AnomalyAlerts,
		CreatedAt:           now,
		UpdatedAt:           now,
		IsActive:            true,
		AlertCount:          pref.AlertCount,
		LastTriggered:       pref.LastTriggered,
	}

	err := table.AlertPreferences.INSERT(table.AlertPreferences.MutableColumns).
		MODEL(dbPref).
		ON_CONFLICT(table.AlertPreferences.UserEmail, table.AlertPreferences.ProductID).
		DO_UPDATE(pg.SET(
			table.AlertPreferences.PriceDropThreshold.SET(table.AlertPreferences.EXCLUDED.PriceDropThreshold),
			table.AlertPreferences.PriceBelowThreshold.SET(table.AlertPreferences.EXCLUDED.PriceBelowThreshold),
			table.AlertPreferences.AnomalyAlerts.SET(table.AlertPreferences.EXCLUDED.AnomalyAlerts),
			table.AlertPreferences.UpdatedAt.SET(pg.TimestampzT(now)),
			table.AlertPreferences.IsActive.SET(pg.Bool(true)),
		)).
		RETURNING(table.AlertPreferences.ID).
		QueryContext(ctx, p.db, dbPref)
	if err != nil {
		return fmt.Errorf("can't save alert preference: %w", err)
	}

	pref.ID = dbPref.ID
	pref.IsActive = true

	return nil
}

// RemoveAlertPreference deactivates the preference. Removing an unknown
// preference is not an error.
func (p Postgres) RemoveAlertPreference(ctx context.Context, userEmail, productID string) error {
	_, err := table.AlertPreferences.UPDATE().
		SET(
			table.AlertPreferences.IsActive.SET(pg.Bool(false)),
			table.AlertPreferences.UpdatedAt.SET(pg.TimestampzT(time.Now().UTC())),
		).
		WHERE(pg.AND(
			table.AlertPreferences.UserEmail.EQ(pg.String(userEmail)),
			table.AlertPreferences.ProductID.EQ(pg.String(productID)),
		)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't remove alert preference: %w", err)
	}

	return nil
}

// ActiveAlertPreferences returns all active alert preferences.
func (p Postgres) ActiveAlertPreferences(ctx context.Context) ([]models.AlertPreference, error) {
	var stored []pgmodels.AlertPreferences
	err := table.AlertPreferences.SELECT(table.AlertPreferences.AllColumns).
		WHERE(table.AlertPreferences.IsActive.IS_TRUE()).
		ORDER_BY(table.AlertPreferences.ID.ASC()).
		QueryContext(ctx, p.db, &stored)
	if err != nil {
		return nil, fmt.Errorf("can't get alert preferences: %w", err)
	}

	return lo.Map(stored, func(pref pgmodels.AlertPreferences, _ int) models.AlertPreference {
		return fromDBPreference(&pref)
	}), nil
}

// RecentSnapshots returns the product's newest snapshots across all
// sources, newest first.
func (p Postgres) RecentSnapshots(ctx context.Context, productID string, limit int) ([]models.Snapshot, error) {
	stmt := table.PriceHistory.SELECT(table.PriceHistory.AllColumns).
		WHERE(table.PriceHistory.ProductID.EQ(pg.String(productID))).
		ORDER_BY(table.PriceHistory.ScrapedAt.DESC(), table.PriceHistory.ID.DESC())
	if limit > 0 {
		stmt = stmt.LIMIT(int64(limit))
	}

	var stored []pgmodels.PriceHistory
	if err := stmt.QueryContext(ctx, p.db, &stored); err != nil {
		return nil, fmt.Errorf("can't get recent snapshots: %w", err)
	}

	return lo.Map(stored, func(snapshot pgmodels.PriceHistory, _ int) models.Snapshot {
		return FromDBSnapshot(&snapshot)
	}), nil
}

// RecordSentAlert appends the alert to history and bumps the matching
// preference's and user's counters.
func (p Postgres) RecordSentAlert(ctx context.Context, sent *models.AlertSent) error {
	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		now := sent.SentAt
		if now.IsZero() {
			now = time.Now().UTC()
		}

		dbSent := &pgmodels.AlertHistory{
			UserEmail: sent.UserEmail,
			ProductID: sent.ProductID,
			AlertType: sent.AlertType,
			SentAt:    now,
			Details:   sent.Details,
		}
		err := table.AlertHistory.INSERT(table.AlertHistory.MutableColumns).
			MODEL(dbSent).
			RETURNING(table.AlertHistory.ID).
			QueryContext(ctx, tx, dbSent)
		if err != nil {
			return fmt.Errorf("can't insert alert history: %w", err)
		}

		sent.ID = dbSent.ID
		sent.SentAt = now

		_, err = table.AlertPreferences.UPDATE().
			SET(
				table.AlertPreferences.AlertCount.SET(table.AlertPreferences.AlertCount.ADD(pg.Int32(1))),
				table.AlertPreferences.LastTriggered.SET(pg.TimestampzT(now)),
			).
			WHERE(pg.AND(
				table.AlertPreferences.UserEmail.EQ(pg.String(sent.UserEmail)),
				table.AlertPreferences.ProductID.EQ(pg.String(sent.ProductID)),
			)).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't update alert preference counters: %w", err)
		}

		_, err = table.Users.UPDATE().
			SET(table.Users.AlertCount.SET(table.Users.AlertCount.ADD(pg.Int32(1)))).
			WHERE(table.Users.Email.EQ(pg.String(sent.UserEmail))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't update user alert counter: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("can't record sent alert: %w", err)
	}

	return nil
}

// DeactivateStaleProducts marks products of the source not scraped
// since cutoff as inactive, in batches. Returns the number of
// deactivated products.
func (p Postgres) DeactivateStaleProducts(ctx context.Context, source string, cutoff time.Time, batchSize uint) (int32, error) {
	deactivatedNumber := int32(0)

	toDeactivate := make(chan []int64)

	errGroup, egCtx := errgroup.WithContext(ctx)

	errGroup.Go(func() error {
		return getStaleProductsAsync(egCtx, p.db, source, cutoff, batchSize, toDeactivate)
	})

	errGroup.Go(func() error {
		deactivatedCount, err := deactivateProductsAsync(egCtx, p.db, toDeactivate)
		if err == nil {
			atomic.AddInt32(&deactivatedNumber, int32(deactivatedCount))
		}
		return err
	})

	if err := errGroup.Wait(); err != nil {
		return 0, fmt.Errorf("can't deactivate stale products: %w", err)
	}

	return deactivatedNumber, nil
}

func getStaleProductsAsync(
	ctx context.Context,
	db qrm.DB,
	source string,
	cutoff time.Time,
	batchSize uint,
	toDeactivate chan []int64,
) error {
	defer close(toDeactivate)
	previousID := int64(0)
	for {
		var products []pgmodels.Products
		err := table.Products.SELECT(table.Products.ID).
			WHERE(pg.AND(
				table.Products.Source.EQ(pg.String(source)),
				table.Products.LastScrapedAt.LT(pg.TimestampzT(cutoff)),
				table.Products.IsActive.IS_TRUE(),
				table.Products.ID.GT(pg.Int(previousID)),
			)).
			ORDER_BY(table.Products.ID.ASC()).
			LIMIT(int64(batchSize)).
			QueryContext(ctx, db, &products)

		if errors.Is(err, qrm.ErrNoRows) || len(products) == 0 {
			return nil
		}

		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return err
		}

		ids := make([]int64, 0, len(products))
		for ix := range products {
			ids = append(ids, products[ix].ID)
		}

		previousID = products[len(products)-1].ID

		select {
		case <-ctx.Done():
			return ctx.Err()
		case toDeactivate <- ids:
		}
	}
}

func deactivateProductsAsync(ctx context.Context, db qrm.DB, toDeactivate chan []int64) (int, error) {
	deactivatedCount := 0
	now := time.Now().UTC()
	for batch := range toDeactivate {
		ids := make([]pg.Expression, 0, len(batch))
		for _, id := range batch {
			ids = append(ids, pg.Int(id))
		}

		_, err := table.Products.UPDATE().
			SET(
				table.Products.IsActive.SET(pg.Bool(false)),
				table.Products.LastUpdatedAt.SET(pg.TimestampzT(now)),
			).
			WHERE(table.Products.ID.IN(ids...)).
			ExecContext(ctx, db)
		if err != nil {
			return deactivatedCount, err
		}
		deactivatedCount += len(batch)
	}
	return deactivatedCount, nil
}

func countRows(ctx context.Context, db qrm.DB, stmt pg.SelectStatement) (int64, error) {
	var dest struct {
		Count int64
	}
	if err := stmt.QueryContext(ctx, db, &dest); err != nil {
		return 0, err
	}
	return dest.Count, nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
