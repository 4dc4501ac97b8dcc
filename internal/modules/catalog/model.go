package catalog

// Product is a catalog entry. Prices are stored in base currency units
// (USD); conversion happens at display time only, never in storage.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Image       string   `json:"image"`
	Images      []string `json:"images,omitempty"`
	Video       string   `json:"video,omitempty"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Stock       int      `json:"stock,omitempty"`
	SKU         string   `json:"sku,omitempty"`
}

// SortOrder selects how search results are ordered.
type SortOrder string

const (
	SortDefault   SortOrder = "default"
	SortPriceLow  SortOrder = "priceLow"
	SortPriceHigh SortOrder = "priceHigh"
	SortRating    SortOrder = "rating"
)

// SearchQuery filters and orders the catalog list.
type SearchQuery struct {
	Category string    // "All" or empty matches everything
	Query    string    // case-insensitive name substring
	Sort     SortOrder // SortDefault keeps stored order
}
