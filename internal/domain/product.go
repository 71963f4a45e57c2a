package domain

// Product is a catalog entry with an independent lifecycle. Orders reference
// products through line items only.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Published   bool   `json:"published"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"priceCents"`
	VariantSKU  string `json:"variantSku,omitempty"`
	ImageSrc    string `json:"imageSrc,omitempty"`
}
