package normalizer

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Record is one loosely-typed scraped product record as published by the
// scrapers. Any subset of fields may be absent.
type Record struct {
	ProductID          string     `json:"product_id"`
	Source             string     `json:"source,omitempty"`
	Name               *string    `json:"name,omitempty"`
	DisplayName        *string    `json:"displayName,omitempty"`
	Brand              *string    `json:"brand,omitempty"`
	BrandKey           *string    `json:"brand_key,omitempty"`
	Category           *string    `json:"category,omitempty"`
	Categories         []string   `json:"categories,omitempty"`
	CategoryKey        *string    `json:"category_key,omitempty"`
	URL                *string    `json:"url,omitempty"`
	ImageURL           *string    `json:"image_url,omitempty"`
	ImageAlt           *string    `json:"image_alt,omitempty"`
	SellerID           *string    `json:"seller_id,omitempty"`
	Seller             *string    `json:"seller,omitempty"`
	IsOfficialStore    *bool      `json:"is_official_store,omitempty"`
	OfficialStoreName  *string    `json:"official_store_name,omitempty"`
	IsSponsored        *bool      `json:"is_sponsored,omitempty"`
	IsBuyable          *bool      `json:"is_buyable,omitempty"`
	IsSecondChance     *bool      `json:"is_second_chance,omitempty"`
	ExpressDelivery    *bool      `json:"express_delivery,omitempty"`
	CampaignName       *string    `json:"campaign_name,omitempty"`
	CampaignIdentifier *string    `json:"campaign_identifier,omitempty"`
	Price              *FlexPrice `json:"price,omitempty"`
	PriceText          *string    `json:"price_text,omitempty"`
	OldPrice           *FlexPrice `json:"old_price,omitempty"`
	OldPriceText       *string    `json:"old_price_text,omitempty"`
	Discount           *FlexPrice `json:"discount,omitempty"`
	DiscountText       *string    `json:"discount_text,omitempty"`
	Rating             *float64   `json:"rating,omitempty"`
	ReviewCount        *int32     `json:"review_count,omitempty"`
	IsAvailable        *bool      `json:"is_available,omitempty"`
	ScrapedAt          *string    `json:"scraped_at,omitempty"`
	ScrapeSessionID    *string    `json:"scrape_session_id,omitempty"`
}

// FlexPrice is a numeric value scrapers deliver either as a number or as
// locale-formatted text ("1,099.00 Dhs", "169.00 Dhs - 179.00 Dhs").
// Unparseable text yields a nil Value instead of a decoding error.
type FlexPrice struct {
	Value *float64
	Text  *string
}

var rangeSeparator = regexp.MustCompile(`\s*[-–—]\s*`)

// FlexPriceOf returns FlexPrice wrapping an already-parsed value.
func FlexPriceOf(value float64) *FlexPrice {
	return &FlexPrice{Value: &value}
}

// UnmarshalJSON accepts a JSON number, a JSON string or null.
func (p *FlexPrice) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = FlexPrice{}
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		p.Value = &num
		p.Text = nil
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}

	p.Text = &text
	p.Value = ParsePrice(text)

	return nil
}

// MarshalJSON writes the parsed value when present, the raw text otherwise.
func (p FlexPrice) MarshalJSON() ([]byte, error) {
	if p.Value != nil {
		return json.Marshal(*p.Value)
	}
	if p.Text != nil {
		return json.Marshal(*p.Text)
	}
	return []byte("null"), nil
}

// ParsePrice parses locale-formatted price text into a value.
// Ranges ("169.00 Dhs - 179.00 Dhs") resolve to the lower bound. A comma
// is a decimal separator when no dot is present, a thousands separator
// otherwise. Returns nil when no number can be extracted.
func ParsePrice(text string) *float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if parts := rangeSeparator.Split(text, 2); len(parts) > 1 {
		text = strings.TrimSpace(parts[0])
	}

	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == ',' {
			return r
		}
		return -1
	}, text)

	if strings.Contains(cleaned, ".") {
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	} else {
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}

	return &value
}
