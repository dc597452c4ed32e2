package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Add          key.Binding
	Category     key.Binding
	Availability key.Binding
	Price        key.Binding
	Sort         key.Binding
	Search       key.Binding
	OpenCart     key.Binding
	CloseCart    key.Binding
	ClearCart    key.Binding
	Reload       key.Binding
	Quit         key.Binding
}

var keys = keyMap{
	Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Add:          key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add to cart")),
	Category:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
	Availability: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "availability")),
	Price:        key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "price")),
	Sort:         key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	OpenCart:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "cart")),
	CloseCart:    key.NewBinding(key.WithKeys("esc", "o"), key.WithHelp("esc", "close")),
	ClearCart:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear cart")),
	Reload:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) catalogHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Category, k.Availability, k.Price, k.Sort, k.Search, k.OpenCart, k.Reload, k.Quit}
}

func (k keyMap) modalHelp() []key.Binding {
	return []key.Binding{k.ClearCart, k.CloseCart, k.Quit}
}
