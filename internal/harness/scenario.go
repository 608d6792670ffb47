package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario.
// Scenarios validate the engine's ordering guarantees by executing a
// sequence of operations and asserting on the resulting group states.
type Scenario struct {
	// Name uniquely identifies this scenario. Also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Seed declares the initial records, created group by group in title
	// order, so the first title of each group gets position 1.
	Seed []SeedGroup `yaml:"seed,omitempty"`

	// Steps contains the operations to execute in order.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final group states.
	// Supported types: group_order, invariant, empty_group
	Assertions []Assertion `yaml:"assertions"`
}

// SeedGroup declares one group's initial records.
type SeedGroup struct {
	Group  string   `yaml:"group"`
	Titles []string `yaml:"titles"`
}

// Step is a single engine operation.
type Step struct {
	// Op is the operation: "promote", "demote", "add" or "remove".
	Op string `yaml:"op"`

	// Title names the acting record. Titles are unique per scenario.
	Title string `yaml:"title"`

	// Group is the target group. Required for "add", ignored otherwise
	// (the record's own group applies).
	Group string `yaml:"group,omitempty"`

	// ExpectNoop asserts that the step leaves the record's position
	// unchanged (boundary no-op).
	ExpectNoop bool `yaml:"expect_noop,omitempty"`
}

// Assertion validates a final group state.
type Assertion struct {
	// Type is the assertion kind: "group_order", "invariant" or
	// "empty_group".
	Type string `yaml:"type"`

	// Group is the asserted group.
	Group string `yaml:"group"`

	// Titles is the expected ordering for group_order, first = position 1.
	Titles []string `yaml:"titles,omitempty"`
}

// validOps are the operations a step may use.
var validOps = map[string]bool{
	"promote": true,
	"demote":  true,
	"add":     true,
	"remove":  true,
}

// validAssertionTypes are the supported assertion kinds.
var validAssertionTypes = map[string]bool{
	"group_order": true,
	"invariant":   true,
	"empty_group": true,
}

// LoadScenario reads and validates a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}

	return &scenario, nil
}

// LoadScenarios reads every *.yaml scenario in a directory, sorted by
// filename for deterministic test order.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("scan scenarios: %w", err)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		scenario, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, scenario)
	}
	return scenarios, nil
}

// Validate checks scenario structure: a name, known ops and assertion
// types, unique titles, and title references that resolve.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario has no name")
	}

	titles := make(map[string]bool)
	for _, seed := range s.Seed {
		if seed.Group == "" {
			return fmt.Errorf("seed group with empty key")
		}
		for _, title := range seed.Titles {
			if titles[title] {
				return fmt.Errorf("duplicate title %q", title)
			}
			titles[title] = true
		}
	}

	for i, step := range s.Steps {
		if !validOps[step.Op] {
			return fmt.Errorf("step %d: unknown op %q", i+1, step.Op)
		}
		if step.Title == "" {
			return fmt.Errorf("step %d: missing title", i+1)
		}
		switch step.Op {
		case "add":
			if step.Group == "" {
				return fmt.Errorf("step %d: add requires a group", i+1)
			}
			if titles[step.Title] {
				return fmt.Errorf("step %d: duplicate title %q", i+1, step.Title)
			}
			titles[step.Title] = true
		case "remove":
			if !titles[step.Title] {
				return fmt.Errorf("step %d: unknown title %q", i+1, step.Title)
			}
			delete(titles, step.Title)
		default:
			if !titles[step.Title] {
				return fmt.Errorf("step %d: unknown title %q", i+1, step.Title)
			}
		}
	}

	for i, assertion := range s.Assertions {
		if !validAssertionTypes[assertion.Type] {
			return fmt.Errorf("assertion %d: unknown type %q", i+1, assertion.Type)
		}
		if assertion.Group == "" {
			return fmt.Errorf("assertion %d: missing group", i+1)
		}
		if assertion.Type == "group_order" && len(assertion.Titles) == 0 {
			return fmt.Errorf("assertion %d: group_order requires titles", i+1)
		}
	}

	return nil
}

// label renders a step for snapshots and failure messages.
func (st Step) label() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "%s %s", st.Op, st.Title)
	if st.Op == "add" {
		fmt.Fprintf(&buf, " -> %s", st.Group)
	}
	if st.ExpectNoop {
		buf.WriteString(" (noop)")
	}
	return buf.String()
}
