package models

import "time"

// ChangeType classifies the transition between two consecutive snapshots.
type ChangeType string

// Change types.
const (
	ChangeNewProduct      ChangeType = "new_product"
	ChangeIncrease        ChangeType = "increase"
	ChangeDecrease        ChangeType = "decrease"
	ChangeDiscountAdded   ChangeType = "discount_added"
	ChangeDiscountRemoved ChangeType = "discount_removed"
)

// Significance is a coarse bucket derived from absolute percentage change.
type Significance string

// Significance tiers.
const (
	SignificanceLow    Significance = "low"
	SignificanceMedium Significance = "medium"
	SignificanceHigh   Significance = "high"
)

// DataQuality is a four-tier label for a single price observation.
type DataQuality string

// Data quality tiers.
const (
	QualityPoor      DataQuality = "poor"
	QualityFair      DataQuality = "fair"
	QualityGood      DataQuality = "good"
	QualityExcellent DataQuality = "excellent"
)

// Product is the canonical product document, keyed by (ProductID, Source).
type Product struct {
	ID                 int64
	ProductID          string
	Source             string
	Name               *string
	DisplayName        *string
	Brand              *string
	BrandKey           *string
	Category           *string
	Categories         *string // JSON-encoded list of category names
	CategoryKey        *string
	URL                *string
	ImageURL           *string
	ImageAlt           *string
	SellerID           *string
	Seller             *string
	IsOfficialStore    bool
	OfficialStoreName  *string
	IsSponsored        bool
	IsBuyable          bool
	IsSecondChance     bool
	ExpressDelivery    bool
	CampaignName       *string
	CampaignIdentifier *string
	QualityScore       float64
	MinPrice           *float64
	MaxPrice           *float64
	AvgPrice           *float64
	LastPrice          *float64
	PriceVolatility    *float64
	PriceHistoryCount  int32
	FirstSeenAt        time.Time
	LastUpdatedAt      time.Time
	LastScrapedAt      time.Time
	IsActive           bool
}

// Snapshot is one timestamped, append-only price observation for a product.
type Snapshot struct {
	ID              int64
	ProductID       string
	Source          string
	ScrapedAt       time.Time
	Price           *float64
	PriceText       *string
	OldPrice        *float64
	OldPriceText    *string
	Discount        *float64
	DiscountText    *string
	Rating          *float64
	ReviewCount     *int32
	IsAvailable     bool
	ScrapeSessionID *string
	DataQuality     DataQuality
}

// Change is a derived, append-only record of the delta between two
// consecutive snapshots of the same product. PreviousSnapshotID is nil
// only for new_product changes.
type Change struct {
	ID                 int64
	ProductID          string
	Source             string
	ChangeType         ChangeType
	PreviousPrice      *float64
	CurrentPrice       *float64
	PriceDifference    float64
	PercentageChange   float64
	PreviousDiscount   *float64
	CurrentDiscount    *float64
	PreviousSnapshotID *int64
	CurrentSnapshotID  int64
	ChangedAt          time.Time
	Significance       Significance
	DataQuality        DataQuality
}

// User is an alert recipient.
type User struct {
	ID         int64
	UserID     string
	Email      string
	Name       string
	CreatedAt  time.Time
	LastLogin  *time.Time
	IsActive   bool
	AlertCount int32
}

// AlertPreference holds one user's alert thresholds for one product,
// keyed by (UserEmail, ProductID).
type AlertPreference struct {
	ID                  int64
	UserEmail           string
	ProductID           string
	PriceDropThreshold  float64
	PriceBelowThreshold *float64
	AnomalyAlerts       bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
	IsActive            bool
	AlertCount          int32
	LastTriggered       *time.Time
}

// Alert candidate types.
const (
	AlertPriceDrop           = "price_drop"
	AlertPriceBelowThreshold = "price_below_threshold"
)

// AlertCandidate is an alert the evaluator decided should fire.
// Recording and delivery are separate steps.
type AlertCandidate struct {
	PreferenceID  int64
	UserEmail     string
	ProductID     string
	AlertType     string
	CurrentPrice  float64
	PreviousPrice *float64
	ChangePercent *float64
	Threshold     float64
}

// AlertSent is an append-only record of a delivered alert.
type AlertSent struct {
	ID        int64
	UserEmail string
	ProductID string
	AlertType string
	SentAt    time.Time
	Details   *string
}

// BatchStats summarizes one SaveBatch call. A failed record increments
// Errors and never aborts the rest of the batch.
type BatchStats struct {
	NewProducts          int
	UpdatedProducts      int
	NewPriceRecords      int
	PriceChangesDetected int
	Errors               int
}

// CurrentPrice is a product joined with its most recent snapshot.
type CurrentPrice struct {
	Product  Product
	Snapshot Snapshot
}

// PriceDrop is a decrease change joined with product display fields.
type PriceDrop struct {
	ProductID      string
	Source         string
	ProductName    *string
	Brand          *string
	URL            *string
	PreviousPrice  *float64
	CurrentPrice   *float64
	PriceDrop      float64
	PercentageDrop float64
	ChangedAt      time.Time
}

// Statistics is the aggregate view exposed to analytics consumers.
type Statistics struct {
	TotalProducts       int64
	ActiveProducts      int64
	ProductsBySource    map[string]int64
	ProductsByCategory  map[string]int64
	TotalUsers          int64
	ActiveUsers         int64
	ActivePreferences   int64
	AlertsSent          int64
	AlertsSentToday     int64
	TotalPriceRecords   int64
	TotalPriceChanges   int64
	RecentPriceChanges  int64
	ProductsWithHistory int64
	GeneratedAt         time.Time
}
