package catalog

// MenuItem is one entry of the fixed menu. Prices are integer currency
// units. The catalog is read-only; nothing in the application mutates it.
type MenuItem struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           int64   `json:"price"`
	Image           string  `json:"image"`
	Category        string  `json:"category"`
	Featured        bool    `json:"featured,omitempty"`
	Rating          float64 `json:"rating,omitempty"`
	PreparationTime string  `json:"preparationTime,omitempty"`
}

// Category groups menu items for browsing.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	ItemCount int    `json:"itemCount"`
}

// Catalog serves lookups over the immutable menu.
type Catalog struct {
	items      []MenuItem
	categories []Category
	byID       map[string]MenuItem
}

// New builds a catalog from the provided seed. Copies are taken so callers
// cannot alias the internal slices.
func New(items []MenuItem, categories []Category) *Catalog {
	c := &Catalog{
		items:      make([]MenuItem, len(items)),
		categories: make([]Category, len(categories)),
		byID:       make(map[string]MenuItem, len(items)),
	}
	copy(c.items, items)
	copy(c.categories, categories)
	for _, item := range c.items {
		c.byID[item.ID] = item
	}
	return c
}

// Default returns the catalog seeded with the FoodieExpress menu.
func Default() *Catalog {
	return New(menuItems, menuCategories)
}

// Items returns every menu item in catalog order.
func (c *Catalog) Items() []MenuItem {
	out := make([]MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// ItemByID returns the item and whether it exists.
func (c *Catalog) ItemByID(id string) (MenuItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// ItemsByCategory returns the items belonging to the given category id.
func (c *Catalog) ItemsByCategory(categoryID string) []MenuItem {
	var out []MenuItem
	for _, item := range c.items {
		if item.Category == categoryID {
			out = append(out, item)
		}
	}
	return out
}

// Featured returns the items flagged for the landing page.
func (c *Catalog) Featured() []MenuItem {
	var out []MenuItem
	for _, item := range c.items {
		if item.Featured {
			out = append(out, item)
		}
	}
	return out
}

// Categories returns every category.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}
