package entity

// Product is an offering embedded within a Business. It has no
// independent identity: its position in the owning business's products
// list is its only stable reference within a session, so concurrent
// edits to the same business from different sessions can race on the
// index. That fragility is inherited from the data model and is
// documented rather than fixed here.
type Product struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	InStock     bool   `json:"inStock"`
	Category    string `json:"category"` // Optional free-text tag, unrelated to the business Category enum.
}
