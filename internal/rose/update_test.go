package rose

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// step advances items n days.
func step(items []*Item, n int) {
	for i := 0; i < n; i++ {
		UpdateQuality(items)
	}
}

func TestUpdateQuality_ReturnsSameItems(t *testing.T) {
	a := NewItem("foo", 1, 1)
	b := NewItem("Aged Brie", 1, 1)
	items := []*Item{a, b}

	got := UpdateQuality(items)
	require.Len(t, got, 2)
	assert.Same(t, a, got[0])
	assert.Same(t, b, got[1])
}

func TestUpdateQuality_SkipsNil(t *testing.T) {
	items := []*Item{nil, NewItem("foo", 1, 3), nil}
	assert.NotPanics(t, func() { UpdateQuality(items) })
	assert.Equal(t, 0, items[1].SellIn)
	assert.Equal(t, 2, items[1].Quality)
}

func TestInventory_UpdateQuality(t *testing.T) {
	inv := New(NewItem("foo", 0, 0))
	items := inv.UpdateQuality()
	assert.Equal(t, "foo", items[0].Name)
	assert.Equal(t, -1, items[0].SellIn)
	assert.Equal(t, 0, items[0].Quality)
}

func TestNormal_DegradesTwiceAsFastAfterExpiry(t *testing.T) {
	it := NewItem("+5 Dexterity Vest", 5, 10)
	items := []*Item{it}

	step(items, 1)
	assert.Equal(t, 4, it.SellIn)
	assert.Equal(t, 9, it.Quality)

	step(items, 4)
	assert.Equal(t, 0, it.SellIn)
	assert.Equal(t, 5, it.Quality)

	// sellIn goes from 0 to -1 on this step
	step(items, 1)
	assert.Equal(t, -1, it.SellIn)
	assert.Equal(t, 3, it.Quality)
}

func TestNormal_NeverBelowZero(t *testing.T) {
	it := NewItem("Elixir of the Mongoose", 5, 1)
	step([]*Item{it}, 2)
	assert.Equal(t, 3, it.SellIn)
	assert.Equal(t, 0, it.Quality)

	expired := NewItem("Elixir of the Mongoose", 0, 1)
	step([]*Item{expired}, 1)
	assert.Equal(t, 0, expired.Quality)
}

func TestAgedBrie_IncreasesIncludingAfterExpiry(t *testing.T) {
	it := NewItem("Aged Brie", 2, 0)
	var seen []int
	for i := 0; i < 3; i++ {
		UpdateQuality([]*Item{it})
		seen = append(seen, it.Quality)
	}
	assert.Equal(t, []int{1, 2, 4}, seen)
	assert.Equal(t, -1, it.SellIn)
}

func TestAgedBrie_CappedAtFifty(t *testing.T) {
	it := NewItem("Aged Brie", 5, 49)
	for i := 0; i < 30; i++ {
		UpdateQuality([]*Item{it})
		require.LessOrEqual(t, it.Quality, MaxQuality, "day %d", i+1)
	}
	assert.Equal(t, 50, it.Quality)
	assert.Equal(t, -25, it.SellIn)
}

func TestConjured_DegradesTwiceAsFast(t *testing.T) {
	it := NewItem("Conjured", 3, 6)
	step([]*Item{it}, 1)
	assert.Equal(t, 2, it.SellIn)
	assert.Equal(t, 4, it.Quality)

	step([]*Item{it}, 2)
	assert.Equal(t, 0, it.SellIn)
	assert.Equal(t, 0, it.Quality)

	fresh := NewItem("Conjured", 0, 20)
	step([]*Item{fresh}, 1)
	assert.Equal(t, -1, fresh.SellIn)
	assert.Equal(t, 16, fresh.Quality)
	step([]*Item{fresh}, 1)
	assert.Equal(t, 12, fresh.Quality)
}

func TestBackstagePass(t *testing.T) {
	tests := []struct {
		sellIn      int
		quality     int
		wantQuality int
	}{
		{15, 20, 21},
		{11, 20, 21},
		{10, 20, 22},
		{6, 20, 22},
		{5, 20, 23},
		{1, 20, 23},
		{0, 20, 0},
		{-1, 20, 0},
		{10, 49, 50},
		{5, 49, 50},
		{5, 48, 50},
		{0, 50, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("sellIn=%d,quality=%d", tt.sellIn, tt.quality), func(t *testing.T) {
			it := NewItem(NameBackstagePass, tt.sellIn, tt.quality)
			Update(it)
			assert.Equal(t, tt.sellIn-1, it.SellIn)
			assert.Equal(t, tt.wantQuality, it.Quality)
		})
	}
}

func TestBackstagePass_StrictlyIncreasesBeforeConcert(t *testing.T) {
	it := NewItem(NameBackstagePass, 15, 0)
	prev := it.Quality
	for it.SellIn > 0 {
		Update(it)
		assert.Greater(t, it.Quality, prev, "sellIn=%d", it.SellIn)
		prev = it.Quality
	}
	Update(it)
	assert.Equal(t, 0, it.Quality)
}

func TestLegendary_NeverChanges(t *testing.T) {
	tests := []struct {
		sellIn  int
		quality int
	}{
		{0, 80},
		{-1, 80},
		{10, 80},
		{3, -4},
		{-20, 0},
	}

	for _, tt := range tests {
		it := NewItem(NameSulfuras, tt.sellIn, tt.quality)
		step([]*Item{it}, 100)
		assert.Equal(t, tt.sellIn, it.SellIn)
		assert.Equal(t, tt.quality, it.Quality)
	}
}

func TestOutOfRangeInitialQuality(t *testing.T) {
	tests := []struct {
		name    string
		sellIn  int
		quality int
		want    []int // quality after each day
	}{
		{"foo", 5, 60, []int{59, 58}},
		{"foo", 1, 60, []int{59, 57}},
		{NameAgedBrie, 5, -5, []int{-4, -3}},
		{NameAgedBrie, 5, 70, []int{50, 50}},
		{"foo", 5, -5, []int{0, 0}},
		{NameConjured, 1, 70, []int{68, 64}},
		{NameConjured, 5, -3, []int{0, 0}},
		{NameBackstagePass, 12, 60, []int{50, 50}},
		{NameBackstagePass, 1, 75, []int{50, 0}},
		{NameBackstagePass, 0, -5, []int{0, 0}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d/%d", tt.name, tt.sellIn, tt.quality), func(t *testing.T) {
			it := NewItem(tt.name, tt.sellIn, tt.quality)
			assert.Equal(t, tt.quality, it.Quality, "construction keeps the value")
			for day, want := range tt.want {
				Update(it)
				assert.Equal(t, want, it.Quality, "day %d", day+1)
			}
		})
	}
}

func TestOutOfRangeMixedWithLegendary(t *testing.T) {
	sulfuras := NewItem(NameSulfuras, 0, 80)
	conjured := NewItem(NameConjured, 1, 70)
	vest := NewItem("+5 Dexterity Vest", 3, 55)
	brie := NewItem(NameAgedBrie, 0, -4)
	items := []*Item{sulfuras, conjured, vest, brie}

	step(items, 1)
	assert.Equal(t, Item{Name: NameSulfuras, SellIn: 0, Quality: 80}, *sulfuras)
	assert.Equal(t, Item{Name: NameConjured, SellIn: 0, Quality: 68}, *conjured)
	assert.Equal(t, Item{Name: "+5 Dexterity Vest", SellIn: 2, Quality: 54}, *vest)
	assert.Equal(t, Item{Name: NameAgedBrie, SellIn: -1, Quality: -2}, *brie)

	step(items, 1)
	assert.Equal(t, Item{Name: NameSulfuras, SellIn: 0, Quality: 80}, *sulfuras)
	assert.Equal(t, Item{Name: NameConjured, SellIn: -1, Quality: 64}, *conjured)
	assert.Equal(t, Item{Name: "+5 Dexterity Vest", SellIn: 1, Quality: 53}, *vest)
	assert.Equal(t, Item{Name: NameAgedBrie, SellIn: -2, Quality: 0}, *brie)
}

func TestUpdateQuality_QualityStaysBounded(t *testing.T) {
	names := []string{"foo", NameAgedBrie, NameBackstagePass, NameConjured}
	for _, name := range names {
		for sellIn := -3; sellIn <= 12; sellIn++ {
			for quality := 0; quality <= 50; quality++ {
				it := NewItem(name, sellIn, quality)
				Update(it)
				if it.Quality < MinQuality || it.Quality > MaxQuality {
					t.Fatalf("%s sellIn=%d quality=%d: got quality %d", name, sellIn, quality, it.Quality)
				}
				if it.SellIn != sellIn-1 {
					t.Fatalf("%s sellIn=%d: got sellIn %d", name, sellIn, it.SellIn)
				}
			}
		}
	}
}

func TestUpdateQuality_FixedDeltaFamilies(t *testing.T) {
	deltas := map[string][2]int{
		"foo":        {-1, -2},
		NameAgedBrie: {1, 2},
		NameConjured: {-2, -4},
	}
	for name, d := range deltas {
		for sellIn := -3; sellIn <= 8; sellIn++ {
			for quality := 0; quality <= 50; quality += 5 {
				it := NewItem(name, sellIn, quality)
				Update(it)
				delta := d[0]
				if sellIn-1 < 0 {
					delta = d[1]
				}
				assert.Equal(t, min(max(quality+delta, MinQuality), MaxQuality), it.Quality, "%s sellIn=%d quality=%d", name, sellIn, quality)
			}
		}
	}
}

func TestUpdateQuality_ItemsAreIndependent(t *testing.T) {
	a := []*Item{NewItem("foo", 3, 10), NewItem(NameAgedBrie, 3, 10), NewItem(NameConjured, 3, 10)}
	b := []*Item{NewItem(NameConjured, 3, 10), NewItem("foo", 3, 10), NewItem(NameAgedBrie, 3, 10)}
	UpdateQuality(a)
	UpdateQuality(b)

	assert.Equal(t, *a[0], *b[1])
	assert.Equal(t, *a[1], *b[2])
	assert.Equal(t, *a[2], *b[0])
}

func TestItemString(t *testing.T) {
	assert.Equal(t, "Aged Brie, 2, 0", NewItem("Aged Brie", 2, 0).String())
	assert.Equal(t, AgedBrie, NewItem("Aged Brie", 2, 0).Family())
}
