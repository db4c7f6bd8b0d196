package platform

import (
	"errors"
)

// ErrMissingProductID is returned when a scraped record has no product_id and can't be stored.
var ErrMissingProductID = errors.New("scraped record has no product_id")

// ErrProductNotFound is returned when a product referenced by id and source does not exist.
var ErrProductNotFound = errors.New("product not found")
