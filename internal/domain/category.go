package domain

type Category struct {
	ID   int    `json:"categori_id"`
	Name string `json:"name"`
}

var categories = []Category{
	{ID: 1, Name: "drinks"},
	{ID: 2, Name: "lunch"},
	{ID: 3, Name: "food"},
	{ID: 4, Name: "sea"},
}

// Categories returns the fixed category list offered by the category filter.
// It is never fetched from the catalog API.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func CategoryName(id int) (string, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c.Name, true
		}
	}
	return "", false
}
