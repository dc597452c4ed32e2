package usecase

import (
	"strconv"
	"testing"

	"storefront/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func sampleCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Coke", Price: "2.500", Categories: []int{1}, Available: true, BestSeller: true},
		{ID: 2, Name: "ceviche", Price: "12.500", Categories: []int{3, 4}, Available: false},
		{ID: 3, Name: "Álamo salad", Price: "8.900", Categories: []int{2, 3}, Available: true},
		{ID: 4, Name: "Lobster", Price: "45.000", Categories: []int{4}, Available: true, BestSeller: true},
		{ID: 5, Name: "Banana smoothie", Price: "3.200", Categories: []int{1}, Available: false, BestSeller: true},
		{ID: 6, Name: "Mystery box", Price: "ask", Categories: []int{}, Available: true},
	}
}

func ids(products []domain.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterByCategory_Subset(t *testing.T) {
	catalog := sampleCatalog()
	for _, cat := range domain.Categories() {
		got := FilterByCategory(catalog, strconv.Itoa(cat.ID))
		for _, p := range got {
			assert.True(t, p.InCategory(cat.ID), "product %d not in category %d", p.ID, cat.ID)
			_, ok := domain.FindProduct(catalog, p.ID)
			assert.True(t, ok)
		}
	}

	assert.Equal(t, []int{2, 3}, ids(FilterByCategory(catalog, "3")))
	assert.Equal(t, catalog, FilterByCategory(catalog, ""))
	assert.Empty(t, FilterByCategory(catalog, "drinks"))
	assert.Equal(t, []int{2, 3}, ids(FilterByCategory(catalog, "3abc")))
	assert.Equal(t, []int{2, 3}, ids(FilterByCategory(catalog, " 3.0")))
	assert.Empty(t, FilterByCategory(catalog, "-"))
}

func TestFilterByAvailability_Partition(t *testing.T) {
	catalog := sampleCatalog()
	available := FilterByAvailability(catalog, AvailabilityAvailable)
	soldOut := FilterByAvailability(catalog, AvailabilitySoldOut)

	assert.Equal(t, len(catalog), len(available)+len(soldOut))
	for _, p := range available {
		_, dup := domain.FindProduct(soldOut, p.ID)
		assert.False(t, dup, "product %d in both partitions", p.ID)
	}

	bestSellers := FilterByAvailability(catalog, AvailabilityBestSeller)
	assert.Equal(t, []int{1, 4, 5}, ids(bestSellers))
	// best sellers overlap both partitions
	assert.Contains(t, ids(available), 1)
	assert.Contains(t, ids(soldOut), 5)

	assert.Equal(t, catalog, FilterByAvailability(catalog, "everything"))
}

func TestFilterByPrice(t *testing.T) {
	catalog := sampleCatalog()

	assert.Equal(t, []int{1, 3, 5}, ids(FilterByPrice(catalog, PriceBelow10000)))
	assert.Equal(t, []int{4}, ids(FilterByPrice(catalog, PriceAbove30000)))
	assert.Equal(t, catalog, FilterByPrice(catalog, "cheap"))

	// applied one after the other the two brackets never overlap
	assert.Empty(t, FilterByPrice(FilterByPrice(catalog, PriceBelow10000), PriceAbove30000))
	assert.Empty(t, FilterByPrice(FilterByPrice(catalog, PriceAbove30000), PriceBelow10000))
}

func TestSearchProducts(t *testing.T) {
	catalog := []domain.Product{{ID: 1, Name: "Coke", Price: "2.500", Available: true, Categories: []int{1}}}

	assert.Equal(t, catalog, SearchProducts(catalog, "cok"))
	assert.Equal(t, catalog, SearchProducts(catalog, "COKE"))
	assert.Empty(t, SearchProducts(catalog, "pepsi"))
	assert.Equal(t, catalog, SearchProducts(catalog, ""))
}

func TestSortProducts_Name(t *testing.T) {
	catalog := sampleCatalog()
	opts := DefaultSortOptions()

	sorted := SortProducts(catalog, SortByName, opts)
	want := []string{"Álamo salad", "Banana smoothie", "ceviche", "Coke", "Lobster", "Mystery box"}
	got := make([]string, 0, len(sorted))
	for _, p := range sorted {
		got = append(got, p.Name)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("name order mismatch (-want +got):\n%s", diff)
	}

	again := SortProducts(sorted, SortByName, opts)
	assert.Equal(t, sorted, again)
}

func TestSortProducts_DoesNotMutateInput(t *testing.T) {
	catalog := sampleCatalog()
	before := ids(catalog)

	_ = SortProducts(catalog, SortByPriceDesc, DefaultSortOptions())
	_ = SortProducts(catalog, SortByName, DefaultSortOptions())

	assert.Equal(t, before, ids(catalog))
}

func TestSortProducts_PriceRaw(t *testing.T) {
	catalog := sampleCatalog()
	opts := DefaultSortOptions()

	// raw reading: 2.5, 12.5, 8.9, 45, 3.2; "ask" last
	assert.Equal(t, []int{1, 5, 3, 2, 4, 6}, ids(SortProducts(catalog, SortByPriceAsc, opts)))
	assert.Equal(t, []int{4, 2, 3, 5, 1, 6}, ids(SortProducts(catalog, SortByPriceDesc, opts)))
}

func TestSortProducts_PriceThousands(t *testing.T) {
	catalog := []domain.Product{
		{ID: 1, Price: "12.500"},
		{ID: 2, Price: "900"},
		{ID: 3, Price: "2.500"},
	}
	opts := SortOptions{Locale: language.Spanish, ThousandsPrices: true}

	assert.Equal(t, []int{2, 3, 1}, ids(SortProducts(catalog, SortByPriceAsc, opts)))

	opts.ThousandsPrices = false
	assert.Equal(t, []int{3, 1, 2}, ids(SortProducts(catalog, SortByPriceAsc, opts)))
}

func TestSortProducts_UnknownKeyIsNoop(t *testing.T) {
	catalog := sampleCatalog()
	assert.Equal(t, catalog, SortProducts(catalog, "popularity", DefaultSortOptions()))
	assert.Equal(t, catalog, SortProducts(catalog, "", DefaultSortOptions()))
}

func TestApplyFilters(t *testing.T) {
	catalog := sampleCatalog()

	t.Run("coke availability scenario", func(t *testing.T) {
		coke := []domain.Product{{ID: 1, Name: "Coke", Price: "2.500", Available: true, Categories: []int{1}}}

		assert.Equal(t, coke, ApplyFilters(coke, Criteria{Availability: AvailabilityAvailable}, DefaultSortOptions()))
		assert.Empty(t, ApplyFilters(coke, Criteria{Availability: AvailabilitySoldOut}, DefaultSortOptions()))
	})

	t.Run("all controls", func(t *testing.T) {
		got := ApplyFilters(catalog, Criteria{
			Category:     "1",
			Availability: AvailabilityBestSeller,
			Price:        PriceBelow10000,
			Search:       "O",
			Sort:         SortByName,
		}, DefaultSortOptions())
		require.Len(t, got, 2)
		assert.Equal(t, []int{5, 1}, ids(got))
	})

	t.Run("empty criteria keeps catalog order", func(t *testing.T) {
		assert.Equal(t, catalog, ApplyFilters(catalog, Criteria{}, DefaultSortOptions()))
	})
}

func TestNewSortOptions(t *testing.T) {
	opts, err := NewSortOptions("en-US", true)
	require.NoError(t, err)
	assert.Equal(t, "en-US", opts.Locale.String())
	assert.True(t, opts.ThousandsPrices)

	_, err = NewSortOptions("not a locale!", false)
	assert.ErrorContains(t, err, "invalid sort locale")
}
