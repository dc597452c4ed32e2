package domain

import "fmt"

const EmptyCartMessage = "Your cart is empty."

// CartLine is the cart view entry for one cart element, e.g. "Coke - $2.500".
func CartLine(p Product) string {
	return fmt.Sprintf("%s - $%s", p.Name, p.Price)
}

// CartLines renders the cart in order, one line per entry. Duplicates are
// listed separately.
func CartLines(cart []Product) []string {
	lines := make([]string, 0, len(cart))
	for _, p := range cart {
		lines = append(lines, CartLine(p))
	}
	return lines
}

// CartView is what the cart modal shows: either the empty-state message or
// one line per entry.
type CartView struct {
	Items        []Product `json:"items"`
	Lines        []string  `json:"lines"`
	Empty        bool      `json:"empty"`
	EmptyMessage string    `json:"empty_message,omitempty"`
}

func NewCartView(cart []Product) CartView {
	items := make([]Product, len(cart))
	copy(items, cart)
	view := CartView{Items: items, Lines: CartLines(cart), Empty: len(cart) == 0}
	if view.Empty {
		view.EmptyMessage = EmptyCartMessage
	}
	return view
}
