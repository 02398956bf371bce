package fixtures

import (
	"errors"
	"fmt"
)

// Item describes one catalog entry of the demo shop. Slug is the kebab-case
// fragment the target embeds in its add-to-cart and remove control
// identifiers, e.g. "add-to-cart-sauce-labs-backpack".
type Item struct {
	Name  string
	Slug  string
	Price float64
}

// The catalog items the suite shops with.
var (
	Backpack   = Item{Name: "Sauce Labs Backpack", Slug: "sauce-labs-backpack", Price: 29.99}
	BikeLight  = Item{Name: "Sauce Labs Bike Light", Slug: "sauce-labs-bike-light", Price: 9.99}
	BoltTShirt = Item{Name: "Sauce Labs Bolt T-Shirt", Slug: "sauce-labs-bolt-t-shirt", Price: 15.99}
)

// ErrUnknownItem reports a display name that is not part of the known
// catalog. Scenarios referencing such a name are broken and must fail fast.
var ErrUnknownItem = errors.New("unknown catalog item")

// catalog indexes the known items by display name.
var catalog = map[string]Item{
	Backpack.Name:   Backpack,
	BikeLight.Name:  BikeLight,
	BoltTShirt.Name: BoltTShirt,
}

// ItemByName resolves a display name against the known catalog.
func ItemByName(name string) (Item, error) {
	item, ok := catalog[name]
	if !ok {
		return Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, name)
	}
	return item, nil
}

// AllItems returns every known catalog item in listing order.
func AllItems() []Item {
	return []Item{Backpack, BikeLight, BoltTShirt}
}

// AllItemNames returns the display names of every known catalog item.
func AllItemNames() []string {
	items := AllItems()
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}
