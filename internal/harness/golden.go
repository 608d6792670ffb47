package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario and compares its rendered snapshots
// against the golden file testdata/golden/<scenario name>.golden.
//
// Regenerate golden files with: go test ./internal/harness -update
//
// A step or assertion failure fails the test before the golden comparison;
// golden files only ever capture passing runs.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return fmt.Errorf("run scenario %q: %w", scenario.Name, err)
	}
	if !result.Passed {
		msgs := make([]string, 0, len(result.Failures))
		for _, f := range result.Failures {
			msgs = append(msgs, f.Error())
		}
		t.Errorf("scenario %q failed:\n%s", scenario.Name, strings.Join(msgs, "\n"))
		return nil
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, []byte(result.Render(scenario.Name)))

	return nil
}
