package service

import "context"

// StockPhoto is a single candidate image returned by the stock-photo
// search API.
type StockPhoto struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ThumbURL    string `json:"thumbUrl"`
	Credit      string `json:"credit"`
}

// StockPhotoService abstracts the stock-photo search API. Implementations
// cache results per query text; repeated searches for the same settled
// input must not re-issue network calls within the cache window.
type StockPhotoService interface {
	// Search returns candidate images for the query text.
	Search(ctx context.Context, query string) ([]StockPhoto, error)
}
