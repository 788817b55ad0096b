package rose

// Inventory is the shop's stock.
type Inventory struct {
	Items []*Item
}

// New returns an inventory holding items. The slice is used directly.
func New(items ...*Item) *Inventory {
	return &Inventory{Items: items}
}

// UpdateQuality advances every item by one day and returns the same slice.
func (inv *Inventory) UpdateQuality() []*Item {
	return UpdateQuality(inv.Items)
}

// Update advances a single item by one day according to its family's rule.
func Update(it *Item) {
	RuleFor(it.Family()).Apply(it)
}

// UpdateQuality advances every item by one day in place and returns items.
// nil entries are skipped.
func UpdateQuality(items []*Item) []*Item {
	for _, it := range items {
		if it == nil {
			continue
		}
		Update(it)
	}
	return items
}
