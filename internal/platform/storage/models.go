package storage

import (
	"github.com/soukwatch/pricetracker/internal/platform/models"

	pgmodels "github.com/soukwatch/pricetracker/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

// ToDBProduct converts models.Product into postgres product model.
func ToDBProduct(product *models.Product) *pgmodels.Products {
	return &pgmodels.Products{
		ID:                 product.ID,
		ProductID:          product.ProductID,
		Source:             product.Source,
		Name:               product.Name,
		DisplayName:        product.DisplayName,
		Brand:              product.Brand,
		BrandKey:           product.BrandKey,
		Category:           product.Category,
		Categories:         product.Categories,
		CategoryKey:        product.CategoryKey,
		URL:                product.URL,
		ImageURL:           product.ImageURL,
		ImageAlt:           product.ImageAlt,
		SellerID:           product.SellerID,
		Seller:             product.Seller,
		IsOfficialStore:    product.IsOfficialStore,
		OfficialStoreName:  product.OfficialStoreName,
		IsSponsored:        product.IsSponsored,
		IsBuyable:          product.IsBuyable,
		IsSecondChance:     product.IsSecondChance,
		ExpressDelivery:    product.ExpressDelivery,
		CampaignName:       product.CampaignName,
		CampaignIdentifier: product.CampaignIdentifier,
		QualityScore:       product.QualityScore,
		MinPrice:           product.MinPrice,
		MaxPrice:           product.MaxPrice,
		AvgPrice:           product.AvgPrice,
		LastPrice:          product.LastPrice,
		PriceVolatility:    product.PriceVolatility,
		PriceHistoryCount:  product.PriceHistoryCount,
		FirstSeenAt:        product.FirstSeenAt,
		LastUpdatedAt:      product.LastUpdatedAt,
		LastScrapedAt:      product.LastScrapedAt,
		IsActive:           product.IsActive,
	}
}

// FromDBProduct converts postgres product model into models.Product.
func FromDBProduct(product *pgmodels.Products) models.Product {
	return models.Product{
		ID:                 product.ID,
		ProductID:          product.ProductID,
		Source:             product.Source,
		Name:               product.Name,
		DisplayName:        product.DisplayName,
		Brand:              product.Brand,
		BrandKey:           product.BrandKey,
		Category:           product.Category,
		Categories:         product.Categories,
		CategoryKey:        product.CategoryKey,
		URL:                product.URL,
		ImageURL:           product.ImageURL,
		ImageAlt:           product.ImageAlt,
		SellerID:           product.SellerID,
		Seller:             product.Seller,
		IsOfficialStore:    product.IsOfficialStore,
		OfficialStoreName:  product.OfficialStoreName,
		IsSponsored:        product.IsSponsored,
		IsBuyable:          product.IsBuyable,
		IsSecondChance:     product.IsSecondChance,
		ExpressDelivery:    product.ExpressDelivery,
		CampaignName:       product.CampaignName,
		CampaignIdentifier: product.CampaignIdentifier,
		QualityScore:       product.QualityScore,
		MinPrice:           product.MinPrice,
		MaxPrice:           product.MaxPrice,
		AvgPrice:           product.AvgPrice,
		LastPrice:          product.LastPrice,
		PriceVolatility:    product.PriceVolatility,
		PriceHistoryCount:  product.PriceHistoryCount,
		FirstSeenAt:        product.FirstSeenAt,
		LastUpdatedAt:      product.LastUpdatedAt,
		LastScrapedAt:      product.LastScrapedAt,
		IsActive:           product.IsActive,
	}
}

// ToDBSnapshot converts models.Snapshot into postgres price history model.
func ToDBSnapshot(snapshot *models.Snapshot) *pgmodels.PriceHistory {
	return &pgmodels.PriceHistory{
		ID:              snapshot.ID,
		ProductID:       snapshot.ProductID,
		Source:          snapshot.Source,
		ScrapedAt:       snapshot.ScrapedAt,
		Price:           snapshot.Price,
		PriceText:       snapshot.PriceText,
		OldPrice:        snapshot.OldPrice,
		OldPriceText:    snapshot.OldPriceText,
		Discount:        snapshot.Discount,
		DiscountText:    snapshot.DiscountText,
		Rating:          snapshot.Rating,
		ReviewCount:     snapshot.ReviewCount,
		IsAvailable:     snapshot.IsAvailable,
		ScrapeSessionID: snapshot.ScrapeSessionID,
		DataQuality:     string(snapshot.DataQuality),
	}
}

// FromDBSnapshot converts postgres price history model into models.Snapshot.
func FromDBSnapshot(snapshot *pgmodels.PriceHistory) models.Snapshot {
	return models.Snapshot{
		ID:              snapshot.ID,
		ProductID:       snapshot.ProductID,
		Source:          snapshot.Source,
		ScrapedAt:       snapshot.ScrapedAt,
		Price:           snapshot.Price,
		PriceText:       snapshot.PriceText,
		OldPrice:        snapshot.OldPrice,
		OldPriceText:    snapshot.OldPriceText,
		Discount:        snapshot.Discount,
		DiscountText:    snapshot.DiscountText,
		Rating:          snapshot.Rating,
		ReviewCount:     snapshot.ReviewCount,
		IsAvailable:     snapshot.IsAvailable,
		ScrapeSessionID: snapshot.ScrapeSessionID,
		DataQuality:     models.DataQuality(snapshot.DataQuality),
	}
}

// ToDBChange converts models.Change into postgres price change model.
func ToDBChange(change *models.Change) *pgmodels.PriceChanges {
	return &pgmodels.PriceChanges{
		ID:                 change.ID,
		ProductID:          change.ProductID,
		Source:             change.Source,
		ChangeType:         string(change.ChangeType),
		PreviousPrice:      change.PreviousPrice,
		CurrentPrice:       change.CurrentPrice,
		PriceDifference:    change.PriceDifference,
		PercentageChange:   change.PercentageChange,
		PreviousDiscount:   change.PreviousDiscount,
		CurrentDiscount:    change.CurrentDiscount,
		PreviousSnapshotID: change.PreviousSnapshotID,
		CurrentSnapshotID:  change.CurrentSnapshotID,
		ChangedAt:          change.ChangedAt,
		Significance:       string(change.Significance),
		DataQuality:        string(change.DataQuality),
	}
}

// FromDBChange converts postgres price change model into models.Change.
func FromDBChange(change *pgmodels.PriceChanges) models.Change {
	return models.Change{
		ID:                 change.ID,
		ProductID:          change.ProductID,
		Source:             change.Source,
		ChangeType:         models.ChangeType(change.ChangeType),
		PreviousPrice:      change.PreviousPrice,
		CurrentPrice:       change.CurrentPrice,
		PriceDifference:    change.PriceDifference,
		PercentageChange:   change.PercentageChange,
		PreviousDiscount:   change.PreviousDiscount,
		CurrentDiscount:    change.CurrentDiscount,
		PreviousSnapshotID: change.PreviousSnapshotID,
		CurrentSnapshotID:  change.CurrentSnapshotID,
		ChangedAt:          change.ChangedAt,
		Significance:       models.Significance(change.Significance),
		DataQuality:        models.DataQuality(change.DataQuality),
	}
}

func fromDBUser(user *pgmodels.Users) models.User {
	return models.User{
		ID:         user.ID,
		UserID:     user.UserID,
		Email:      user.Email,
		Name:       user.Name,
		CreatedAt:  user.CreatedAt,
		LastLogin:  user.LastLogin,
		IsActive:   user.IsActive,
		AlertCount: user.AlertCount,
	}
}

func fromDBPreference(pref *pgmodels.AlertPreferences) models.AlertPreference {
	return models.AlertPreference{
		ID:                  pref.ID,
		UserEmail:           pref.UserEmail,
		ProductID:           pref.ProductID,
		PriceDropThreshold:  pref.PriceDropThreshold,
		PriceBelowThreshold: pref.PriceBelowThreshold,
		AnomalyAlerts:       pref.AnomalyAlerts,
		CreatedAt:           pref.CreatedAt,
		UpdatedAt:           pref.UpdatedAt,
		IsActive:            pref.IsActive,
		AlertCount:          pref.AlertCount,
		LastTriggered:       pref.LastTriggered,
	}
}

// mergeProduct overlays scraped values on the stored row. A non-nil
// scraped field wins, a nil one never blanks a stored value. Aggregates
// and first_seen_at always stay as stored.
func mergeProduct(stored *pgmodels.Products, scraped *models.Product) *pgmodels.Products {
	merged := *stored
	merged.Name = coalesce(scraped.Name, stored.Name)
	merged.DisplayName = coalesce(scraped.DisplayName, stored.DisplayName)
	merged.Brand = coalesce(scraped.Brand, stored.Brand)
	merged.BrandKey = coalesce(scraped.BrandKey, stored.BrandKey)
	merged.Category = coalesce(scraped.Category, stored.Category)
	merged.Categories = coalesce(scraped.Categories, stored.Categories)
	merged.CategoryKey = coalesce(scraped.CategoryKey, stored.CategoryKey)
	merged.URL = coalesce(scraped.URL, stored.URL)
	merged.ImageURL = coalesce(scraped.ImageURL, stored.ImageURL)
	merged.ImageAlt = coalesce(scraped.ImageAlt, stored.ImageAlt)
	merged.SellerID = coalesce(scraped.SellerID, stored.SellerID)
	merged.Seller = coalesce(scraped.Seller, stored.Seller)
	merged.OfficialStoreName = coalesce(scraped.OfficialStoreName, stored.OfficialStoreName)
	merged.CampaignName = coalesce(scraped.CampaignName, stored.CampaignName)
	merged.CampaignIdentifier = coalesce(scraped.CampaignIdentifier, stored.CampaignIdentifier)
	merged.IsOfficialStore = scraped.IsOfficialStore
	merged.IsSponsored = scraped.IsSponsored
	merged.IsBuyable = scraped.IsBuyable
	merged.IsSecondChance = scraped.IsSecondChance
	merged.ExpressDelivery = scraped.ExpressDelivery
	merged.QualityScore = scraped.QualityScore
	merged.IsActive = true

	return &merged
}

func coalesce[T any](override, stored *T) *T {
	if override != nil {
		return override
	}
	return stored
}
