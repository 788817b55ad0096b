package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/gildedrose/internal/rose"
)

// DefaultRunID is used when a scenario does not pin its own run id.
const DefaultRunID = "test-run-default"

// Scenario is an inventory, a number of days to simulate and the assertions
// that must hold over the resulting trace.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Days is how many times the inventory is advanced.
	Days int `yaml:"days"`

	// RunID pins the run id for golden comparison.
	RunID string `yaml:"run_id,omitempty"`

	// Items is the starting inventory, in order.
	Items []ItemSpec `yaml:"items"`

	// Assertions validate the trace.
	Assertions []Assertion `yaml:"assertions"`
}

// ItemSpec is a starting item.
type ItemSpec struct {
	Name    string `yaml:"name"`
	SellIn  int    `yaml:"sell_in"`
	Quality int    `yaml:"quality"`
}

// Assertion validates the trace. Fields are used per Type.
type Assertion struct {
	Type string `yaml:"type"`

	// Day selects the snapshot (item_state, quality_delta).
	Day int `yaml:"day,omitempty"`

	// Item is the index into Items (item_state, quality_delta, frozen).
	Item int `yaml:"item,omitempty"`

	// SellIn and Quality are the expected values for item_state; nil means unchecked.
	SellIn  *int `yaml:"sell_in,omitempty"`
	Quality *int `yaml:"quality,omitempty"`

	// Delta is the expected day-over-day quality change (quality_delta).
	Delta *int `yaml:"delta,omitempty"`
}

// Assertion type constants.
const (
	AssertItemState     = "item_state"
	AssertQualityDelta  = "quality_delta"
	AssertQualityBounds = "quality_bounds"
	AssertFrozen        = "frozen"
)

// NewItems builds fresh rose items from the scenario.
func (s *Scenario) NewItems() []*rose.Item {
	items := make([]*rose.Item, len(s.Items))
	for i, spec := range s.Items {
		items[i] = rose.NewItem(spec.Name, spec.SellIn, spec.Quality)
	}
	return items
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected so typos such as "assertion:" fail loudly.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Days < 0 {
		return fmt.Errorf("days must be non-negative")
	}

	if len(s.Items) == 0 {
		return fmt.Errorf("items list is required and must be non-empty")
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, it := range s.Items {
		if it.Name == "" {
			return fmt.Errorf("items[%d]: name is required", i)
		}
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i], s); err != nil {
			return err
		}
	}

	return nil
}

func validateAssertion(index int, a *Assertion, s *Scenario) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	checkItem := func() error {
		if a.Item < 0 || a.Item >= len(s.Items) {
			return fmt.Errorf("assertions[%d]: item %d out of range (have %d items)", index, a.Item, len(s.Items))
		}
		return nil
	}
	checkDay := func(first int) error {
		if a.Day < first || a.Day > s.Days {
			return fmt.Errorf("assertions[%d]: day %d out of range [%d, %d]", index, a.Day, first, s.Days)
		}
		return nil
	}

	switch a.Type {
	case AssertItemState:
		if err := checkItem(); err != nil {
			return err
		}
		if err := checkDay(0); err != nil {
			return err
		}
		if a.SellIn == nil && a.Quality == nil {
			return fmt.Errorf("assertions[%d]: item_state needs sell_in or quality", index)
		}
	case AssertQualityDelta:
		if err := checkItem(); err != nil {
			return err
		}
		if err := checkDay(1); err != nil {
			return err
		}
		if a.Delta == nil {
			return fmt.Errorf("assertions[%d]: delta is required for quality_delta", index)
		}
	case AssertFrozen:
		if err := checkItem(); err != nil {
			return err
		}
	case AssertQualityBounds:
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
