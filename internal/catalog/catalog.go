package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
)

//go:embed data/menu.json
var seedJSON []byte

// Catalog is the read-only menu supplied at startup. Items keep their
// seed order; categories are listed in order of first occurrence.
type Catalog struct {
	items      []MenuItem
	byID       map[int]MenuItem
	categories []string
}

func New(items []MenuItem) (*Catalog, error) {
	if err := ValidateItems(items); err != nil {
		return nil, err
	}

	c := &Catalog{
		items: items,
		byID:  make(map[int]MenuItem, len(items)),
	}

	seen := make(map[string]bool)
	for _, item := range items {
		c.byID[item.ID] = item
		if !seen[item.Category] {
			seen[item.Category] = true
			c.categories = append(c.categories, item.Category)
		}
	}

	return c, nil
}

// Default builds the catalog from the embedded menu seed.
func Default() (*Catalog, error) {
	var items []MenuItem
	if err := json.Unmarshal(seedJSON, &items); err != nil {
		return nil, fmt.Errorf("parse embedded menu: %w", err)
	}
	return New(items)
}

func ValidateItems(items []MenuItem) error {
	if len(items) == 0 {
		return errors.New("catalog is empty")
	}

	seen := make(map[int]bool, len(items))
	for _, item := range items {
		if item.Name == "" {
			return fmt.Errorf("item %d has no name", item.ID)
		}
		if item.Category == "" {
			return fmt.Errorf("item %d has no category", item.ID)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("item %d has negative price", item.ID)
		}
		if seen[item.ID] {
			return fmt.Errorf("duplicate item id %d", item.ID)
		}
		seen[item.ID] = true
	}

	return nil
}

// Item looks up a menu item by its catalog id.
func (c *Catalog) Item(id int) (MenuItem, bool) {
	item, ok := c.byID[id]
	return item, ok
}

func (c *Catalog) Items() []MenuItem {
	return c.items
}

func (c *Catalog) Categories() []string {
	return c.categories
}

func (c *Catalog) ItemsByCategory(category string) []MenuItem {
	var out []MenuItem
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}
