package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

// Product is a catalog entry as served by the catalog API. Price keeps the
// API's string encoding ("12.500" uses "." as a thousands separator).
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Img         string `json:"img"`
	Categories  []int  `json:"categories"`
	Available   bool   `json:"available"`
	BestSeller  bool   `json:"best_seller"`
}

func (p Product) InCategory(categoryID int) bool {
	for _, id := range p.Categories {
		if id == categoryID {
			return true
		}
	}
	return false
}

// FindProduct returns the first product with the given id.
func FindProduct(products []Product, id int) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
