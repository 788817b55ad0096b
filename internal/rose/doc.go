// Package rose implements the Gilded Rose inventory update rules.
//
// An Item carries a name, a sellIn countdown and a quality score. Each call to
// UpdateQuality advances every item by exactly one day.
//
// # Families
//
// The name of an item selects one of five fixed families by exact match:
//
//   - "Aged Brie" gains quality as it ages
//   - "Backstage passes to a TAFKAL80ETC concert" gains faster near the concert, then drops to 0
//   - "Sulfuras, Hand of Ragnaros" is legendary and never changes
//   - "Conjured" degrades twice as fast as a normal item
//   - anything else is a normal item
//
// The family is a tag (Family) mapped to a Rule value in a fixed table. There
// is no per-item behaviour object and no fallback hook: every Rule spells out
// its expired adjustment, even when that adjustment is zero.
//
// # Update Order
//
// For every item, in order:
//
//  1. quality = Saturate(quality, Rule.Adjust(item))
//  2. sellIn -= 1 when Rule.Ages
//  3. if sellIn < 0: quality = Saturate(quality, Rule.Expired(item))
//
// Adjust sees the sellIn value from before the decrement.
//
// Saturation only acts in the direction of travel: gains stop at MaxQuality,
// losses stop at MinQuality. Quality that starts out of range is never
// normalised. A normal item at 60 loses one point a day like any other and
// only Aged Brie at 70 snaps down to 50, because a gain is capped.
// Legendary items skip all three steps.
//
// The package is synchronous and has no error paths. Items are independent,
// so callers that want to shard a large inventory may do so freely, but a
// single Item must not be updated from two goroutines.
package rose
