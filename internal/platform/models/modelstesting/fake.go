package modelstesting

import (
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/samber/lo"
	"github.com/soukwatch/pricetracker/internal/platform/models"
)

// FakeProduct returns models.Product with fake data.
func FakeProduct(ops ...func(p *models.Product)) models.Product {
	now := time.Now().UTC().Truncate(time.Microsecond)

	product := models.Product{
		ProductID:         faker.UUIDDigit(),
		Source:            faker.DomainName(),
		Name:              lo.ToPtr(faker.Word()),
		DisplayName:       lo.ToPtr(faker.Word()),
		Brand:             lo.ToPtr(faker.Word()),
		BrandKey:          lo.ToPtr(faker.Word()),
		Category:          lo.ToPtr(faker.Word()),
		CategoryKey:       lo.ToPtr(faker.Word()),
		URL:               lo.ToPtr(faker.URL()),
		ImageURL:          lo.ToPtr(faker.URL()),
		Seller:            lo.ToPtr(faker.Word()),
		SellerID:          lo.ToPtr(faker.UUIDDigit()),
		IsBuyable:         true,
		QualityScore:      rand.Float64(),
		FirstSeenAt:       now,
		LastUpdatedAt:     now,
		LastScrapedAt:     now,
		IsActive:          true,
		PriceHistoryCount: 0,
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakeSnapshot returns models.Snapshot with fake data.
func FakeSnapshot(ops ...func(s *models.Snapshot)) models.Snapshot {
	price := 10 + rand.Float64()*990

	snapshot := models.Snapshot{
		ProductID:   faker.UUIDDigit(),
		Source:      faker.DomainName(),
		ScrapedAt:   time.Now().UTC().Truncate(time.Microsecond),
		Price:       lo.ToPtr(price),
		PriceText:   lo.ToPtr(faker.Word()),
		IsAvailable: true,
		DataQuality: models.QualityGood,
	}

	for _, op := range ops {
		op(&snapshot)
	}

	return snapshot
}

// FakeChange returns models.Change with fake data.
func FakeChange(ops ...func(c *models.Change)) models.Change {
	change := models.Change{
		ProductID:         faker.UUIDDigit(),
		Source:            faker.DomainName(),
		ChangeType:        models.ChangeDecrease,
		PreviousPrice:     lo.ToPtr(100.0),
		CurrentPrice:      lo.ToPtr(90.0),
		PriceDifference:   -10.0,
		PercentageChange:  -10.0,
		CurrentSnapshotID: rand.Int63n(1000) + 1,
		ChangedAt:         time.Now().UTC().Truncate(time.Microsecond),
		Significance:      models.SignificanceMedium,
		DataQuality:       models.QualityGood,
	}

	for _, op := range ops {
		op(&change)
	}

	return change
}

// FakePreference returns models.AlertPreference with fake data.
func FakePreference(ops ...func(p *models.AlertPreference)) models.AlertPreference {
	now := time.Now().UTC().Truncate(time.Microsecond)

	pref := models.AlertPreference{
		UserEmail:          faker.Email(),
		ProductID:          faker.UUIDDigit(),
		PriceDropThreshold: 10,
		AnomalyAlerts:      true,
		CreatedAt:          now,
		UpdatedAt:          now,
		IsActive:           true,
	}

	for _, op := range ops {
		op(&pref)
	}

	return pref
}
