package rose

import "fmt"

// Item is one stock line. The engine mutates SellIn and Quality in place and
// never writes Name.
type Item struct {
	Name    string `json:"name" yaml:"name"`
	SellIn  int    `json:"sell_in" yaml:"sell_in"`
	Quality int    `json:"quality" yaml:"quality"`
}

// NewItem returns an item with the given values, unmodified.
// Quality outside [MinQuality, MaxQuality] is accepted as is.
func NewItem(name string, sellIn, quality int) *Item {
	return &Item{Name: name, SellIn: sellIn, Quality: quality}
}

// Family returns the family selected by the item's name.
func (it *Item) Family() Family {
	return Classify(it.Name)
}

// String renders the item in the "name, sellIn, quality" form used by the
// daily listing.
func (it *Item) String() string {
	return fmt.Sprintf("%s, %d, %d", it.Name, it.SellIn, it.Quality)
}
