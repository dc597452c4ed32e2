package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain"
	"storefront/internal/usecase"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

const (
	cardWidth  = 44
	modalWidth = 48
	toastTTL   = 3 * time.Second
)

var (
	availabilityModes = []string{"", usecase.AvailabilityAvailable, usecase.AvailabilitySoldOut, usecase.AvailabilityBestSeller}
	priceModes        = []string{"", usecase.PriceBelow10000, usecase.PriceAbove30000}
	sortModes         = []string{"", usecase.SortByName, usecase.SortByPriceAsc, usecase.SortByPriceDesc}
)

type loadedMsg struct{ err error }

type toastExpiredMsg struct{ seq int }

// Model is the terminal storefront. All storefront state lives in the use
// case; the model keeps only what the screen needs.
type Model struct {
	storefront usecase.StorefrontUseCase
	log        *logrus.Logger
	timeout    time.Duration

	criteria usecase.Criteria
	products []domain.Product
	cursor   int

	search textinput.Model
	help   help.Model
	styles Styles

	loading  bool
	toast    string
	toastSeq int

	width  int
	height int
}

func New(sf usecase.StorefrontUseCase, timeout time.Duration, logger *logrus.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "search products"
	ti.Prompt = "/ "
	ti.CharLimit = 64

	styles := DefaultStyles()
	h := help.New()
	h.Styles.ShortKey = styles.Help.Bold(true)
	h.Styles.ShortDesc = styles.Help
	h.Styles.ShortSeparator = styles.Help

	return Model{
		storefront: sf,
		log:        logger,
		timeout:    timeout,
		search:     ti,
		help:       h,
		styles:     styles,
		loading:    true,
		width:      100,
		height:     30,
	}
}

func (m Model) Init() tea.Cmd {
	return m.load(m.storefront.LoadProducts)
}

func (m Model) load(fn func(context.Context) error) tea.Cmd {
	timeout := m.timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, 2*timeout)
			defer cancel()
		}
		return loadedMsg{err: fn(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.log.Errorf("TUI: Catalog load failed: %v", msg.err)
		}
		m.applyFilters()
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.MouseMsg:
		if m.modalVisible() && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !m.insideModal(msg.X, msg.Y) {
			m.storefront.HandleModal(domain.ModalBackdropClick)
		}
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		if m.modalVisible() {
			return m.updateModal(msg)
		}
		return m.updateCatalog(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.search.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.criteria.Search != m.search.Value() {
		m.criteria.Search = m.search.Value()
		m.applyFilters()
	}
	return m, cmd
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.CloseCart):
		m.storefront.HandleModal(domain.ModalClose)
	case key.Matches(msg, keys.ClearCart):
		m.storefront.ClearCart()
		cmd := m.showNotices()
		return m, cmd
	}
	return m, nil
}

func (m Model) updateCatalog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.products)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Add):
		if m.cursor < len(m.products) {
			m.storefront.AddToCart(m.products[m.cursor].ID)
			cmd := m.showNotices()
			return m, cmd
		}
	case key.Matches(msg, keys.Category):
		m.criteria.Category = next(categoryModes(), m.criteria.Category)
		m.applyFilters()
	case key.Matches(msg, keys.Availability):
		m.criteria.Availability = next(availabilityModes, m.criteria.Availability)
		m.applyFilters()
	case key.Matches(msg, keys.Price):
		m.criteria.Price = next(priceModes, m.criteria.Price)
		m.applyFilters()
	case key.Matches(msg, keys.Sort):
		m.criteria.Sort = next(sortModes, m.criteria.Sort)
		m.applyFilters()
	case key.Matches(msg, keys.Search):
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, keys.OpenCart):
		m.storefront.HandleModal(domain.ModalOpen)
	case key.Matches(msg, keys.Reload):
		m.loading = true
		return m, m.load(m.storefront.Reload)
	}
	return m, nil
}

func (m *Model) applyFilters() {
	m.products = m.storefront.Catalog(m.criteria)
	if m.cursor >= len(m.products) {
		m.cursor = max(len(m.products)-1, 0)
	}
}

// showNotices moves pending notices into the toast line and schedules its
// removal.
func (m *Model) showNotices() tea.Cmd {
	notices := m.storefront.Notices()
	if len(notices) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(notices))
	for _, n := range notices {
		msgs = append(msgs, n.Message)
	}
	m.toast = strings.Join(msgs, "  ")
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastTTL, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
}

func (m Model) modalVisible() bool {
	return m.storefront.Modal() == domain.ModalVisible
}

func (m Model) insideModal(x, y int) bool {
	box := m.renderModal()
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	left := (m.width - w) / 2
	top := (m.height - h) / 2
	return x >= left && x < left+w && y >= top && y < top+h
}

func (m Model) View() string {
	if m.modalVisible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderModal())
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render(fmt.Sprintf("Storefront  ·  cart (%d)", len(m.storefront.Cart()))))
	b.WriteString("\n")
	b.WriteString(m.renderControls())
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.styles.Muted.Render("Loading catalog..."))
	case len(m.products) == 0:
		b.WriteString(m.styles.Muted.Render("No products to show."))
	default:
		b.WriteString(m.renderCatalog())
	}
	b.WriteString("\n")

	if m.toast != "" {
		b.WriteString(m.styles.Toast.Render(m.toast))
		b.WriteString("\n")
	}
	b.WriteString(m.help.ShortHelpView(keys.catalogHelp()))
	return b.String()
}

func (m Model) renderControls() string {
	category := "all"
	if id, err := strconv.Atoi(m.criteria.Category); err == nil {
		if name, ok := domain.CategoryName(id); ok {
			category = name
		}
	}
	parts := []string{
		m.control("category", category),
		m.control("availability", orAll(m.criteria.Availability)),
		m.control("price", orAll(m.criteria.Price)),
		m.control("sort", orNone(m.criteria.Sort)),
	}
	return strings.Join(parts, "  ")
}

func (m Model) control(label, value string) string {
	style := m.styles.Control
	if value != "all" && value != "none" {
		style = m.styles.Active
	}
	return m.styles.Control.Render(label+": ") + style.Render(value)
}

// renderCatalog shows the cards around the cursor that fit on screen.
func (m Model) renderCatalog() string {
	visible := max((m.height-8)/5, 1)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(start+visible, len(m.products))

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, m.renderCard(m.products[i], i == m.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m Model) renderCard(p domain.Product, selected bool) string {
	style := m.styles.Card
	if selected {
		style = m.styles.Selected
	}
	status := "available"
	if !p.Available {
		status = "sold out"
	}
	if p.BestSeller {
		status += " · best seller"
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Name.Render(p.Name)+"  "+m.styles.Price.Render("Price: $"+p.Price),
		p.Description,
		m.styles.Muted.Render(status),
	)
	return style.Render(body)
}

func (m Model) renderModal() string {
	view := m.storefront.CartView()
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Your cart"))
	b.WriteString("\n\n")
	if view.Empty {
		b.WriteString(view.EmptyMessage)
	} else {
		b.WriteString(strings.Join(view.Lines, "\n"))
	}
	b.WriteString("\n\n")
	if m.toast != "" {
		b.WriteString(m.styles.Toast.Render(m.toast))
		b.WriteString("\n")
	}
	b.WriteString(m.help.ShortHelpView(keys.modalHelp()))
	return m.styles.Modal.Render(b.String())
}

func categoryModes() []string {
	modes := []string{""}
	for _, c := range domain.Categories() {
		modes = append(modes, strconv.Itoa(c.ID))
	}
	return modes
}

func next(modes []string, current string) string {
	for i, mode := range modes {
		if mode == current {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}

func orAll(s string) string {
	if s == "" {
		return "all"
	}
	return s
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
