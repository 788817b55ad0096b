package rose

// Family identifies the rule set an item follows.
type Family int

const (
	// Normal is the default for any unrecognised name.
	Normal Family = iota
	AgedBrie
	BackstagePass
	Legendary
	Conjured
)

// Item names that select a non-normal family. Matching is exact and case sensitive.
const (
	NameAgedBrie      = "Aged Brie"
	NameBackstagePass = "Backstage passes to a TAFKAL80ETC concert"
	NameSulfuras      = "Sulfuras, Hand of Ragnaros"
	NameConjured      = "Conjured"
)

var familyByName = map[string]Family{
	NameAgedBrie:      AgedBrie,
	NameBackstagePass: BackstagePass,
	NameSulfuras:      Legendary,
	NameConjured:      Conjured,
}

var familySlugs = [...]string{
	Normal:        "normal",
	AgedBrie:      "aged_brie",
	BackstagePass: "backstage_pass",
	Legendary:     "legendary",
	Conjured:      "conjured",
}

// Classify maps an item name to its family. It has no side effects.
func Classify(name string) Family {
	if f, ok := familyByName[name]; ok {
		return f
	}
	return Normal
}

// String returns a stable lowercase slug, suitable for storage and JSON.
func (f Family) String() string {
	if f < 0 || int(f) >= len(familySlugs) {
		return familySlugs[Normal]
	}
	return familySlugs[f]
}

// ParseFamily is the inverse of Family.String.
func ParseFamily(slug string) (Family, bool) {
	for f, s := range familySlugs {
		if s == slug {
			return Family(f), true
		}
	}
	return Normal, false
}

// CanonicalName returns the item name that selects f, or "" for Normal,
// which has no single name.
func (f Family) CanonicalName() string {
	for name, fam := range familyByName {
		if fam == f {
			return name
		}
	}
	return ""
}

// Families returns every family in table order.
func Families() []Family {
	return []Family{Normal, AgedBrie, BackstagePass, Legendary, Conjured}
}
