package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"storefront/internal/domain"
	"storefront/internal/usecase"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// PageData is everything the storefront page shows for one request.
type PageData struct {
	Products     []domain.Product
	Categories   []domain.Category
	Criteria     usecase.Criteria
	Cart         domain.CartView
	ModalVisible bool
	Notices      []domain.Notice
}

type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Page writes the whole storefront page.
func (r *Renderer) Page(w io.Writer, data PageData) error {
	if data.Categories == nil {
		data.Categories = domain.Categories()
	}
	return r.tmpl.ExecuteTemplate(w, "page", data)
}

// Catalog writes only the product list, one card per product in order.
func (r *Renderer) Catalog(w io.Writer, products []domain.Product, c usecase.Criteria) error {
	return r.tmpl.ExecuteTemplate(w, "catalog", PageData{Products: products, Criteria: c})
}

// CartItems writes only the cart contents.
func (r *Renderer) CartItems(w io.Writer, view domain.CartView) error {
	return r.tmpl.ExecuteTemplate(w, "cart-items", view)
}
