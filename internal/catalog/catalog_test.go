package catalog

import "testing"

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if got := len(c.Items()); got != 14 {
		t.Fatalf("expected 14 menu items, got %d", got)
	}
	if got := len(c.Categories()); got != 6 {
		t.Fatalf("expected 6 categories, got %d", got)
	}
}

func TestItemByID(t *testing.T) {
	c := Default()

	item, ok := c.ItemByID("1")
	if !ok {
		t.Fatal("expected item 1 to exist")
	}
	if item.Name != "Crispy Spring Rolls" {
		t.Fatalf("unexpected name %q", item.Name)
	}
	if item.Price != 299 {
		t.Fatalf("unexpected price %d", item.Price)
	}

	if _, ok := c.ItemByID("999"); ok {
		t.Fatal("expected item 999 to be missing")
	}
}

func TestItemsByCategory(t *testing.T) {
	c := Default()

	for _, item := range c.ItemsByCategory("pizza") {
		if item.Category != "pizza" {
			t.Fatalf("item %s has category %q", item.ID, item.Category)
		}
	}
	if got := len(c.ItemsByCategory("pizza")); got != 2 {
		t.Fatalf("expected 2 pizza items, got %d", got)
	}
	if got := c.ItemsByCategory("nope"); got != nil {
		t.Fatalf("expected nil for unknown category, got %v", got)
	}
}

func TestFeatured(t *testing.T) {
	c := Default()

	featured := c.Featured()
	if len(featured) == 0 {
		t.Fatal("expected featured items")
	}
	for _, item := range featured {
		if !item.Featured {
			t.Fatalf("item %s is not featured", item.ID)
		}
	}
}

func TestCopiesDoNotAlias(t *testing.T) {
	c := Default()

	items := c.Items()
	items[0].Name = "mutated"

	fresh, _ := c.ItemByID(items[0].ID)
	if fresh.Name == "mutated" {
		t.Fatal("catalog items aliased caller slice")
	}
}
