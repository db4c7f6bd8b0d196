package normalizer

import (
	"encoding/json"
	"time"

	"github.com/samber/lo"

	"github.com/soukwatch/pricetracker/internal/platform"
	"github.com/soukwatch/pricetracker/internal/platform/models"
)

// Quality score weights. Essential fields count full, bonus fields half.
const (
	essentialWeight = 1.0
	bonusWeight     = 0.5
	maxQualityScore = 5*essentialWeight + 4*bonusWeight
)

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Option is custom configuration of Normalizer.
type Option func(n *Normalizer)

// Normalizer converts scraped records into canonical product documents
// and price snapshots. Unparseable optional values default instead of
// failing the record.
type Normalizer struct {
	clock Clock
}

// NewNormalizer returns new Normalizer.
func NewNormalizer(ops ...Option) Normalizer {
	nor := Normalizer{
		clock: systemClock{},
	}

	for _, op := range ops {
		op(&nor)
	}

	return nor
}

// WithClock sets Normalizer's custom Clock.
func WithClock(c Clock) Option {
	return func(n *Normalizer) {
		n.clock = c
	}
}

// Normalize converts record into a product document and a price snapshot.
// The batch source is used when the record doesn't carry its own. The only
// error condition is a missing product_id; every other absent or
// unparseable field defaults.
func (n Normalizer) Normalize(record Record, source string) (models.Product, models.Snapshot, error) {
	if record.ProductID == "" {
		return models.Product{}, models.Snapshot{}, platform.ErrMissingProductID
	}

	if record.Source != "" {
		source = record.Source
	}

	now := n.clock.Now()

	product := models.Product{
		ProductID:          record.ProductID,
		Source:             source,
		Name:               record.Name,
		DisplayName:        firstText(record.DisplayName, record.Name),
		Brand:              record.Brand,
		BrandKey:           record.BrandKey,
		Category:           record.Category,
		Categories:         encodeCategories(record.Categories),
		CategoryKey:        record.CategoryKey,
		URL:                record.URL,
		ImageURL:           record.ImageURL,
		ImageAlt:           record.ImageAlt,
		SellerID:           record.SellerID,
		Seller:             record.Seller,
		IsOfficialStore:    boolOr(record.IsOfficialStore, false),
		OfficialStoreName:  record.OfficialStoreName,
		IsSponsored:        boolOr(record.IsSponsored, false),
		IsBuyable:          boolOr(record.IsBuyable, true),
		IsSecondChance:     boolOr(record.IsSecondChance, false),
		ExpressDelivery:    boolOr(record.ExpressDelivery, false),
		CampaignName:       record.CampaignName,
		CampaignIdentifier: record.CampaignIdentifier,
		QualityScore:       QualityScore(record),
		LastPrice:          priceValue(record.Price),
		LastUpdatedAt:      now,
		LastScrapedAt:      now,
		IsActive:           true,
	}

	snapshot := models.Snapshot{
		ProductID:       record.ProductID,
		Source:          source,
		ScrapedAt:       n.scrapedAt(record.ScrapedAt),
		Price:           priceValue(record.Price),
		PriceText:       firstText(record.PriceText, priceText(record.Price)),
		OldPrice:        priceValue(record.OldPrice),
		OldPriceText:    firstText(record.OldPriceText, priceText(record.OldPrice)),
		Discount:        priceValue(record.Discount),
		DiscountText:    firstText(record.DiscountText, priceText(record.Discount)),
		Rating:          record.Rating,
		ReviewCount:     record.ReviewCount,
		IsAvailable:     boolOr(record.IsAvailable, true),
		ScrapeSessionID: record.ScrapeSessionID,
		DataQuality:     AssessDataQuality(record),
	}

	return product, snapshot, nil
}

// QualityScore is a completeness heuristic in [0,1]: essential fields
// (name, price, category, brand, url) weigh 1, bonus fields (image_url,
// rating, review_count, discount) weigh 0.5.
func QualityScore(record Record) float64 {
	score := 0.0

	essential := []bool{
		record.Name != nil,
		priceValue(record.Price) != nil,
		record.Category != nil,
		record.Brand != nil,
		record.URL != nil,
	}
	for _, present := range essential {
		if present {
			score += essentialWeight
		}
	}

	bonus := []bool{
		record.ImageURL != nil,
		record.Rating != nil,
		record.ReviewCount != nil,
		priceValue(record.Discount) != nil,
	}
	for _, present := range bonus {
		if present {
			score += bonusWeight
		}
	}

	return min(score/maxQualityScore, 1.0)
}

// AssessDataQuality labels the price observation: poor when price is
// missing or non-positive, excellent when both price text and category
// are present, good when exactly one of them is, fair otherwise.
func AssessDataQuality(record Record) models.DataQuality {
	price := priceValue(record.Price)
	if price == nil || *price <= 0 {
		return models.QualityPoor
	}

	hasText := record.PriceText != nil || (record.Price != nil && record.Price.Text != nil)
	hasCategory := record.Category != nil

	switch {
	case hasText && hasCategory:
		return models.QualityExcellent
	case hasText || hasCategory:
		return models.QualityGood
	default:
		return models.QualityFair
	}
}

// scrapedAt parses an ISO-8601 timestamp (trailing Z allowed) into UTC,
// falling back to the current time.
func (n Normalizer) scrapedAt(raw *string) time.Time {
	if raw == nil {
		return n.clock.Now()
	}

	ts, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return n.clock.Now()
	}

	return ts.UTC()
}

func encodeCategories(categories []string) *string {
	if len(categories) == 0 {
		return nil
	}

	encoded, err := json.Marshal(categories)
	if err != nil {
		return nil
	}

	return lo.ToPtr(string(encoded))
}

func priceValue(price *FlexPrice) *float64 {
	if price == nil {
		return nil
	}
	return price.Value
}

func priceText(price *FlexPrice) *string {
	if price == nil {
		return nil
	}
	return price.Text
}

func firstText(values ...*string) *string {
	text, _ := lo.Coalesce(values...)
	return text
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
