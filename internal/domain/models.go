package domain

// Product is a catalog entry. The *KM fields carry the optional Khmer
// translations shown when the storefront language is switched.
type Product struct {
	ID            string
	Name          string
	NameKM        string
	Price         float64
	Description   string
	DescriptionKM string
	Image         string   // main display image
	Images        []string // gallery; empty means the main image is the gallery
	Scent         string
	ScentKM       string
	Ingredients   string
	IngredientsKM string
}

// Gallery returns the gallery images, falling back to the main image when no
// gallery was set.
func (p Product) Gallery() []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	return []string{p.Image}
}

// CartItem is a value copy of a product taken at add time plus a quantity.
// Later catalog edits do not change items already in a cart.
type CartItem struct {
	Product
	Quantity int
}

// CustomerDetails holds the checkout contact fields. Phone and address are
// required; name and note survive from an earlier form and stay optional.
type CustomerDetails struct {
	Phone   string
	Address string
	Name    string
	Note    string
}

// Order is the transient submission payload. It lives only for the duration
// of one checkout attempt and is never persisted.
type Order struct {
	Nonce    string
	Items    []CartItem
	Customer CustomerDetails
	Total    float64
}
