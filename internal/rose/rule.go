package rose

// Quality bounds for every family except Legendary.
const (
	MinQuality = 0
	MaxQuality = 50
)

// Delta computes a quality change for an item. It reads the item and must
// not modify it.
type Delta func(it Item) int

// Rule is the behaviour of one family for one day.
type Rule struct {
	// Adjust is applied first, against the sellIn from before this day's decrement.
	Adjust Delta

	// Expired is applied after the decrement when sellIn has dropped below zero.
	Expired Delta

	// Ages reports whether sellIn decrements each day.
	Ages bool

	// Frozen items are left untouched: no adjustment and no decrement.
	Frozen bool

	// Summary is a short human-readable description for listings.
	Summary string
}

// constant returns a Delta that ignores the item.
func constant(n int) Delta {
	return func(Item) int { return n }
}

// backstage gains value as the concert approaches and is worthless once it has passed.
func backstage(it Item) int {
	switch {
	case it.SellIn <= 0:
		return -it.Quality
	case it.SellIn <= 5:
		return 3
	case it.SellIn <= 10:
		return 2
	default:
		return 1
	}
}

var rules = map[Family]Rule{
	Normal: {
		Adjust:  constant(-1),
		Expired: constant(-1),
		Ages:    true,
		Summary: "-1 per day, -2 once expired",
	},
	AgedBrie: {
		Adjust:  constant(1),
		Expired: constant(1),
		Ages:    true,
		Summary: "+1 per day, +2 once expired",
	},
	BackstagePass: {
		Adjust:  backstage,
		Expired: constant(0),
		Ages:    true,
		Summary: "+1, +2 at 10 days or less, +3 at 5 or less, 0 after the concert",
	},
	Legendary: {
		Adjust:  constant(0),
		Expired: constant(0),
		Frozen:  true,
		Summary: "never changes",
	},
	Conjured: {
		Adjust:  constant(-2),
		Expired: constant(-2),
		Ages:    true,
		Summary: "-2 per day, -4 once expired",
	},
}

// RuleFor returns the rule for f. Unknown tags get the Normal rule.
func RuleFor(f Family) Rule {
	if r, ok := rules[f]; ok {
		return r
	}
	return rules[Normal]
}

// Saturate adds d to q, saturating only in the direction of travel: a gain
// stops at MaxQuality and a loss stops at MinQuality. A value that is already
// out of range is not pulled back in by a move away from the violated bound,
// so quality 60 losing 1 is 59 and quality -5 gaining 1 is -4.
func Saturate(q, d int) int {
	switch {
	case d > 0:
		return min(q+d, MaxQuality)
	case d < 0:
		return max(q+d, MinQuality)
	default:
		return q
	}
}

// Apply advances it by one day under r.
func (r Rule) Apply(it *Item) {
	if r.Frozen {
		return
	}
	it.Quality = Saturate(it.Quality, r.Adjust(*it))
	if r.Ages {
		it.SellIn--
	}
	if it.SellIn < 0 {
		it.Quality = Saturate(it.Quality, r.Expired(*it))
	}
}
