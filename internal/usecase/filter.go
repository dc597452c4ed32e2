package usecase

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"storefront/internal/domain"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	AvailabilityAvailable  = "available"
	AvailabilitySoldOut    = "soldout"
	AvailabilityBestSeller = "bestseller"

	PriceBelow10000 = "lt10000"
	PriceAbove30000 = "gt30000"

	SortByName      = "name"
	SortByPriceAsc  = "price-asc"
	SortByPriceDesc = "price-desc"
)

var (
	priceLowerBound = decimal.NewFromInt(10000)
	priceUpperBound = decimal.NewFromInt(30000)
)

// Criteria holds the current value of every catalog control. Empty fields
// leave the catalog untouched.
type Criteria struct {
	Category     string `form:"category"     json:"category"`
	Availability string `form:"availability" json:"availability"`
	Price        string `form:"price"        json:"price"`
	Sort         string `form:"sort"         json:"sort"`
	Search       string `form:"q"            json:"q"`
}

// SortOptions controls how names are collated and how prices are read when
// sorting.
type SortOptions struct {
	Locale language.Tag
	// ThousandsPrices sorts by the same price reading as FilterByPrice.
	// When false the price string is read as a plain decimal.
	ThousandsPrices bool
}

func DefaultSortOptions() SortOptions {
	return SortOptions{Locale: language.Spanish}
}

// NewSortOptions builds sort options from a BCP 47 locale such as "es" or
// "en-US".
func NewSortOptions(locale string, thousandsPrices bool) (SortOptions, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return SortOptions{}, fmt.Errorf("invalid sort locale %q: %w", locale, err)
	}
	return SortOptions{Locale: tag, ThousandsPrices: thousandsPrices}, nil
}

func FilterByCategory(products []domain.Product, categoryID string) []domain.Product {
	if categoryID == "" {
		return products
	}
	id, ok := leadingInt(categoryID)
	if !ok {
		return []domain.Product{}
	}
	return filter(products, func(p domain.Product) bool {
		return p.InCategory(id)
	})
}

// leadingInt reads the integer at the start of s the way a select value is
// read by the page: "2abc" and "1.0" give 2 and 1, "drinks" gives nothing.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		end = 1
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func FilterByAvailability(products []domain.Product, mode string) []domain.Product {
	switch mode {
	case AvailabilityAvailable:
		return filter(products, func(p domain.Product) bool { return p.Available })
	case AvailabilitySoldOut:
		return filter(products, func(p domain.Product) bool { return !p.Available })
	case AvailabilityBestSeller:
		return filter(products, func(p domain.Product) bool { return p.BestSeller })
	}
	return products
}

func FilterByPrice(products []domain.Product, mode string) []domain.Product {
	var keep func(decimal.Decimal) bool
	switch mode {
	case PriceBelow10000:
		keep = func(d decimal.Decimal) bool { return d.LessThan(priceLowerBound) }
	case PriceAbove30000:
		keep = func(d decimal.Decimal) bool { return d.GreaterThan(priceUpperBound) }
	default:
		return products
	}
	return filter(products, func(p domain.Product) bool {
		price, ok := domain.ParsePriceThousands(p.Price)
		return ok && keep(price)
	})
}

// SearchProducts keeps products whose name contains query, ignoring case.
func SearchProducts(products []domain.Product, query string) []domain.Product {
	if query == "" {
		return products
	}
	q := strings.ToLower(query)
	return filter(products, func(p domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q)
	})
}

// SortProducts returns a sorted copy of products. The input slice is never
// reordered. Unknown sort keys return products as is.
func SortProducts(products []domain.Product, sortBy string, opts SortOptions) []domain.Product {
	var cmp func(a, b domain.Product) int
	switch sortBy {
	case SortByName:
		col := collate.New(opts.Locale)
		cmp = func(a, b domain.Product) int {
			return col.CompareString(a.Name, b.Name)
		}
	case SortByPriceAsc:
		cmp = func(a, b domain.Product) int {
			return comparePrices(a.Price, b.Price, opts.ThousandsPrices, false)
		}
	case SortByPriceDesc:
		cmp = func(a, b domain.Product) int {
			return comparePrices(a.Price, b.Price, opts.ThousandsPrices, true)
		}
	default:
		return products
	}

	sorted := slices.Clone(products)
	slices.SortStableFunc(sorted, cmp)
	return sorted
}

// comparePrices orders unparseable prices after every parseable one in both
// directions.
func comparePrices(a, b string, thousands, desc bool) int {
	parse := domain.ParsePriceRaw
	if thousands {
		parse = domain.ParsePriceThousands
	}
	da, okA := parse(a)
	db, okB := parse(b)
	switch {
	case okA && okB:
		if desc {
			return db.Cmp(da)
		}
		return da.Cmp(db)
	case okA:
		return -1
	case okB:
		return 1
	}
	return 0
}

// ApplyFilters runs category, availability, price, search and sort in that
// order over the full catalog.
func ApplyFilters(products []domain.Product, c Criteria, opts SortOptions) []domain.Product {
	filtered := products
	filtered = FilterByCategory(filtered, c.Category)
	filtered = FilterByAvailability(filtered, c.Availability)
	filtered = FilterByPrice(filtered, c.Price)
	filtered = SearchProducts(filtered, c.Search)
	filtered = SortProducts(filtered, c.Sort, opts)
	return filtered
}

func filter(products []domain.Product, keep func(domain.Product) bool) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
