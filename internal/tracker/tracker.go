package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/soukwatch/pricetracker/internal/normalizer"
	"github.com/soukwatch/pricetracker/internal/platform/models"
)

//go:generate mockery --name Detector --filename detector.go
//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Mirror --filename mirror.go

// DefaultItemTimeout bounds every per-record store interaction so a hung
// store call fails one item instead of the whole batch.
const DefaultItemTimeout = 10 * time.Second

// Detector classifies the transition between a new snapshot and the
// product's previous one.
type Detector interface {
	// Detect returns the change record for snapshot, or nil when the
	// transition doesn't qualify.
	Detect(ctx context.Context, snapshot models.Snapshot) (*models.Change, error)
}

// Storage is the primary products, snapshots and changes store.
type Storage interface {
	// UpsertProduct inserts the product or merges it into the existing row.
	// Returns true when a new product was created.
	UpsertProduct(ctx context.Context, product *models.Product) (created bool, err error)
	// AppendSnapshot inserts a new price snapshot and returns its identity.
	AppendSnapshot(ctx context.Context, snapshot *models.Snapshot) (id int64, err error)
	// RecordChange inserts a detected price change.
	RecordChange(ctx context.Context, change *models.Change) error
	// UpdateAggregates folds newPrice into the product's running min/max/avg.
	UpdateAggregates(ctx context.Context, productID, source string, newPrice float64) error
}

// Mirror is an independent best-effort secondary store. Mirror failures
// are logged, never propagated.
type Mirror interface {
	SaveProduct(ctx context.Context, product models.Product, snapshot models.Snapshot) error
}

// Option is custom configuration of Tracker.
type Option func(t *Tracker)

// Tracker runs scraped record batches through normalization, change
// detection and persistence. Records of one batch are processed
// sequentially so change detection always compares adjacent snapshots.
type Tracker struct {
	normalizer  normalizer.Normalizer
	detector    Detector
	storage     Storage
	mirror      Mirror
	logger      *zerolog.Logger
	itemTimeout time.Duration
}

// NewTracker returns new Tracker.
func NewTracker(nor normalizer.Normalizer, det Detector, storage Storage, logger *zerolog.Logger, ops ...Option) *Tracker {
	tra := &Tracker{
		normalizer:  nor,
		detector:    det,
		storage:     storage,
		logger:      logger,
		itemTimeout: DefaultItemTimeout,
	}

	for _, op := range ops {
		op(tra)
	}

	return tra
}

// WithMirror sets a secondary best-effort store.
func WithMirror(m Mirror) Option {
	return func(t *Tracker) {
		t.mirror = m
	}
}

// WithItemTimeout sets the per-record store timeout.
func WithItemTimeout(d time.Duration) Option {
	return func(t *Tracker) {
		t.itemTimeout = d
	}
}

// SaveBatch processes each record through normalize, upsert, snapshot
// append, change detection and aggregate update. A failing record
// increments Errors and the batch continues; the stats summary is always
// returned. Only context cancellation stops the batch early, and even
// then the partial stats are returned alongside the error.
func (t *Tracker) SaveBatch(ctx context.Context, source string, records []normalizer.Record) (models.BatchStats, error) {
	stats := models.BatchStats{}

	for ix := range records {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		if err := t.saveRecord(ctx, source, records[ix], &stats); err != nil {
			stats.Errors++
			t.logger.Error().
				Err(err).
				Str("productId", records[ix].ProductID).
				Str("source", source).
				Msg("can't save record")
		}
	}

	t.logger.Info().
		Str("source", source).
		Int("newProducts", stats.NewProducts).
		Int("updatedProducts", stats.UpdatedProducts).
		Int("newPriceRecords", stats.NewPriceRecords).
		Int("priceChangesDetected", stats.PriceChangesDetected).
		Int("errors", stats.Errors).
		Msg("batch saved")

	return stats, nil
}

func (t *Tracker) saveRecord(ctx context.Context, source string, record normalizer.Record, stats *models.BatchStats) error {
	ctx, cancel := context.WithTimeout(ctx, t.itemTimeout)
	defer cancel()

	product, snapshot, err := t.normalizer.Normalize(record, source)
	if err != nil {
		return fmt.Errorf("can't normalize record: %w", err)
	}

	created, err := t.storage.UpsertProduct(ctx, &product)
	if err != nil {
		return fmt.Errorf("can't upsert product: %w", err)
	}
	if created {
		stats.NewProducts++
	} else {
		stats.UpdatedProducts++
	}

	snapshotID, err := t.storage.AppendSnapshot(ctx, &snapshot)
	if err != nil {
		return fmt.Errorf("can't append snapshot: %w", err)
	}
	snapshot.ID = snapshotID
	stats.NewPriceRecords++

	change, err := t.detector.Detect(ctx, snapshot)
	if err != nil {
		return fmt.Errorf("can't detect price change: %w", err)
	}

	if change != nil {
		if err := t.storage.RecordChange(ctx, change); err != nil {
			return fmt.Errorf("can't record price change: %w", err)
		}
		stats.PriceChangesDetected++
	}

	if snapshot.Price != nil && *snapshot.Price > 0 {
		if err := t.storage.UpdateAggregates(ctx, snapshot.ProductID, snapshot.Source, *snapshot.Price); err != nil {
			return fmt.Errorf("can't update aggregates: %w", err)
		}
	}

	t.mirrorRecord(ctx, product, snapshot)

	return nil
}

// mirrorRecord copies the record into the secondary store. The stores are
// independently best-effort, a mirror failure never fails the record.
func (t *Tracker) mirrorRecord(ctx context.Context, product models.Product, snapshot models.Snapshot) {
	if t.mirror == nil {
		return
	}

	if err := t.mirror.SaveProduct(ctx, product, snapshot); err != nil {
		t.logger.Warn().
			Err(err).
			Str("productId", product.ProductID).
			Str("source", product.Source).
			Msg("can't mirror record")
	}
}
