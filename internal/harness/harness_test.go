package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gildedrose/internal/sim"
)

func intPtr(n int) *int { return &n }

func TestRun_MinimalScenario(t *testing.T) {
	scenario := &Scenario{
		Name:        "minimal",
		Description: "Minimal test scenario",
		Days:        1,
		Items:       []ItemSpec{{Name: "foo", SellIn: 0, Quality: 0}},
		Assertions: []Assertion{
			{Type: AssertItemState, Day: 1, Item: 0, SellIn: intPtr(-1), Quality: intPtr(0)},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
	assert.Equal(t, DefaultRunID, result.Trace.RunID)
	assert.Len(t, result.Trace.Days, 2)
}

func TestRun_FailingAssertion(t *testing.T) {
	scenario := &Scenario{
		Name:        "failing",
		Description: "Expects the wrong quality",
		Days:        1,
		RunID:       "run-fail",
		Items:       []ItemSpec{{Name: "Aged Brie", SellIn: 3, Quality: 10}},
		Assertions: []Assertion{
			{Type: AssertItemState, Day: 1, Item: 0, Quality: intPtr(9)},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Expected: quality=9")
	assert.Contains(t, result.Errors[0], "Actual: quality=11")
}

func TestRun_Deterministic(t *testing.T) {
	scenario := &Scenario{
		Name:        "deterministic",
		Description: "Same input, same trace",
		Days:        4,
		Items: []ItemSpec{
			{Name: "Conjured", SellIn: 2, Quality: 30},
			{Name: "Backstage passes to a TAFKAL80ETC concert", SellIn: 3, Quality: 40},
		},
		Assertions: []Assertion{{Type: AssertQualityBounds}},
	}

	r1, err := Run(scenario)
	require.NoError(t, err)
	r2, err := Run(scenario)
	require.NoError(t, err)

	assert.Equal(t, r1.Trace, r2.Trace)
}

func TestRun_FreshStorePerScenario(t *testing.T) {
	scenario := &Scenario{
		Name:        "fresh",
		Description: "Same run id twice must not collide",
		Days:        2,
		RunID:       "same-id",
		Items:       []ItemSpec{{Name: "foo", SellIn: 5, Quality: 5}},
		Assertions:  []Assertion{{Type: AssertQualityBounds}},
	}

	for i := 0; i < 2; i++ {
		result, err := Run(scenario)
		require.NoError(t, err)
		assert.True(t, result.Pass)
		assert.Len(t, result.Trace.Days, 3)
	}
}

func TestRun_OutOfRangeStartIsNotNormalised(t *testing.T) {
	scenario := &Scenario{
		Name:        "out_of_range",
		Description: "Quality 60 is kept on day 0 and loses one point a day",
		Days:        2,
		Items: []ItemSpec{
			{Name: "foo", SellIn: 5, Quality: 60},
			{Name: "foo", SellIn: 5, Quality: 10},
		},
		Assertions: []Assertion{
			{Type: AssertItemState, Day: 0, Item: 0, Quality: intPtr(60)},
			{Type: AssertItemState, Day: 1, Item: 0, Quality: intPtr(59)},
			{Type: AssertQualityDelta, Day: 2, Item: 0, Delta: intPtr(-1)},
			{Type: AssertQualityBounds},
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestQualityBounds_InRangeStartLeavingRange(t *testing.T) {
	trace := &sim.Trace{Days: []sim.DaySnapshot{
		{Day: 0, Items: []sim.ItemState{{Name: "foo", Family: "normal", Quality: 60}, {Name: "bar", Family: "normal", Quality: 50}}},
		{Day: 1, Items: []sim.ItemState{{Name: "foo", Family: "normal", Quality: 59}, {Name: "bar", Family: "normal", Quality: 51}}},
	}}

	errs := EvaluateAssertions(trace, []Assertion{{Type: AssertQualityBounds}})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "(day 1, item 1)")
	assert.Contains(t, errs[0], "quality=51")
}

func TestResult_AddError(t *testing.T) {
	r := NewResult()
	assert.True(t, r.Pass)
	r.AddError("boom")
	assert.False(t, r.Pass)
	assert.Equal(t, []string{"boom"}, r.Errors)
}
