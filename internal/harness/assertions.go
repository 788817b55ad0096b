package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/gildedrose/internal/rose"
	"github.com/roach88/gildedrose/internal/sim"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string
	Day      int
	Item     int
	Expected string
	Actual   string
	Days     []sim.DaySnapshot // item history for context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s (day %d, item %d)\n", e.Type, e.Day, e.Item)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Days) > 0 {
		fmt.Fprintf(&buf, "\nItem history:\n")
		for _, d := range e.Days {
			if e.Item < len(d.Items) {
				it := d.Items[e.Item]
				fmt.Fprintf(&buf, "  day %d: %s, %d, %d\n", d.Day, it.Name, it.SellIn, it.Quality)
			}
		}
	}

	return buf.String()
}

// itemAt returns the item state on a given day.
func itemAt(trace *sim.Trace, day, item int) (sim.ItemState, error) {
	if day < 0 || day >= len(trace.Days) {
		return sim.ItemState{}, fmt.Errorf("day %d not in trace (have %d days)", day, len(trace.Days))
	}
	snap := trace.Days[day]
	if item < 0 || item >= len(snap.Items) {
		return sim.ItemState{}, fmt.Errorf("item %d not in day %d", item, day)
	}
	return snap.Items[item], nil
}

func assertItemState(trace *sim.Trace, a Assertion) error {
	got, err := itemAt(trace, a.Day, a.Item)
	if err != nil {
		return err
	}

	var want, actual []string
	if a.SellIn != nil && got.SellIn != *a.SellIn {
		want = append(want, fmt.Sprintf("sell_in=%d", *a.SellIn))
		actual = append(actual, fmt.Sprintf("sell_in=%d", got.SellIn))
	}
	if a.Quality != nil && got.Quality != *a.Quality {
		want = append(want, fmt.Sprintf("quality=%d", *a.Quality))
		actual = append(actual, fmt.Sprintf("quality=%d", got.Quality))
	}
	if len(want) == 0 {
		return nil
	}

	return &AssertionError{
		Type:     AssertItemState,
		Day:      a.Day,
		Item:     a.Item,
		Expected: strings.Join(want, " "),
		Actual:   strings.Join(actual, " "),
		Days:     trace.Days,
	}
}

func assertQualityDelta(trace *sim.Trace, a Assertion) error {
	prev, err := itemAt(trace, a.Day-1, a.Item)
	if err != nil {
		return err
	}
	cur, err := itemAt(trace, a.Day, a.Item)
	if err != nil {
		return err
	}

	if delta := cur.Quality - prev.Quality; delta != *a.Delta {
		return &AssertionError{
			Type:     AssertQualityDelta,
			Day:      a.Day,
			Item:     a.Item,
			Expected: fmt.Sprintf("delta %+d", *a.Delta),
			Actual:   fmt.Sprintf("delta %+d (%d -> %d)", delta, prev.Quality, cur.Quality),
			Days:     trace.Days,
		}
	}
	return nil
}

// assertQualityBounds checks every non-legendary item that started in range
// stays in range after day 0. Items supplied out of range are skipped: the
// rules never normalise them, only saturate in the direction they move.
func assertQualityBounds(trace *sim.Trace) error {
	if len(trace.Days) == 0 {
		return nil
	}
	legendary := rose.Legendary.String()
	start := trace.Days[0].Items
	for _, d := range trace.Days[1:] {
		for i, it := range d.Items {
			if it.Family == legendary {
				continue
			}
			if i < len(start) && !inRange(start[i].Quality) {
				continue
			}
			if !inRange(it.Quality) {
				return &AssertionError{
					Type:     AssertQualityBounds,
					Day:      d.Day,
					Item:     i,
					Expected: fmt.Sprintf("quality in [%d, %d]", rose.MinQuality, rose.MaxQuality),
					Actual:   fmt.Sprintf("quality=%d", it.Quality),
					Days:     trace.Days,
				}
			}
		}
	}
	return nil
}

func inRange(q int) bool {
	return q >= rose.MinQuality && q <= rose.MaxQuality
}

func assertFrozen(trace *sim.Trace, a Assertion) error {
	first, err := itemAt(trace, 0, a.Item)
	if err != nil {
		return err
	}
	for _, d := range trace.Days[1:] {
		got, err := itemAt(trace, d.Day, a.Item)
		if err != nil {
			return err
		}
		if got != first {
			return &AssertionError{
				Type:     AssertFrozen,
				Day:      d.Day,
				Item:     a.Item,
				Expected: fmt.Sprintf("sell_in=%d quality=%d", first.SellIn, first.Quality),
				Actual:   fmt.Sprintf("sell_in=%d quality=%d", got.SellIn, got.Quality),
				Days:     trace.Days,
			}
		}
	}
	return nil
}

// EvaluateAssertions evaluates every assertion against trace and returns
// one message per failure.
func EvaluateAssertions(trace *sim.Trace, assertions []Assertion) []string {
	var errs []string

	for i, a := range assertions {
		var err error

		switch a.Type {
		case AssertItemState:
			err = assertItemState(trace, a)
		case AssertQualityDelta:
			if a.Delta == nil {
				err = fmt.Errorf("assertion[%d]: quality_delta without delta", i)
			} else {
				err = assertQualityDelta(trace, a)
			}
		case AssertQualityBounds:
			err = assertQualityBounds(trace)
		case AssertFrozen:
			err = assertFrozen(trace, a)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, a.Type)
		}

		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	return errs
}
