package cli

import "github.com/roach88/gildedrose/internal/rose"

// FixtureItems returns the shop's reference inventory, used when no
// inventory file is given.
func FixtureItems() []*rose.Item {
	return []*rose.Item{
		rose.NewItem("+5 Dexterity Vest", 10, 20),
		rose.NewItem(rose.NameAgedBrie, 2, 0),
		rose.NewItem("Elixir of the Mongoose", 5, 7),
		rose.NewItem(rose.NameSulfuras, 0, 80),
		rose.NewItem(rose.NameSulfuras, -1, 80),
		rose.NewItem(rose.NameBackstagePass, 15, 20),
		rose.NewItem(rose.NameBackstagePass, 10, 49),
		rose.NewItem(rose.NameBackstagePass, 5, 49),
		rose.NewItem(rose.NameConjured, 3, 6),
	}
}
