package catalog

// Product is a storefront catalog entry.
type Product struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	PriceCents         int64    `json:"price_cents"`
	OriginalPriceCents int64    `json:"original_price_cents"`
	Category           string   `json:"category"`
	ImageURL           string   `json:"image_url"`
	ImageURLs          []string `json:"image_urls,omitempty"`
	InStock            bool     `json:"in_stock"`
	Description        string   `json:"description"`
	Features           []string `json:"features,omitempty"`
	Colors             []string `json:"colors,omitempty"`
	Sizes              []string `json:"sizes,omitempty"`
	Rating             float64  `json:"rating"`
	ReviewCount        int      `json:"review_count"`
	Trending           bool     `json:"trending"`
	BestSeller         bool     `json:"best_seller"`
}

// Review is a single customer review for a product.
type Review struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Author    string `json:"author"`
	Rating    int    `json:"rating"`
	Date      string `json:"date"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}
