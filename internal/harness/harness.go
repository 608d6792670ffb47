package harness

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/quillboard/ordinal/internal/ordinal"
	"github.com/quillboard/ordinal/internal/record"
	"github.com/quillboard/ordinal/internal/store"
	"github.com/quillboard/ordinal/internal/testutil"
)

// Result holds the outcome of a scenario run.
type Result struct {
	// Passed is true when every step and assertion succeeded.
	Passed bool

	// Failures lists step and assertion failures in execution order.
	Failures []error

	// Snapshots captures all group states after the seed and after each
	// step, in execution order.
	Snapshots []Snapshot
}

// Snapshot is the state of every group at one point of a scenario.
type Snapshot struct {
	// Label identifies the point: "seed" or "step N: <op> <title>".
	Label string

	// Groups maps each group to its titles in position order.
	Groups map[string][]string
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database with a deterministic
// ID sequence, so repeated runs produce identical snapshots. Step
// execution stops at the first failure (later steps would act on a state
// the scenario did not intend); assertions still run against whatever
// state was reached.
func Run(scenario *Scenario) (*Result, error) {
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("create in-memory store: %w", err)
	}
	defer st.Close()

	eng := ordinal.New(st, testutil.NewIDSequence("rec"))
	ctx := context.Background()

	// Title -> record ID. Scenario validation guarantees uniqueness.
	byTitle := make(map[string]string)

	for _, seed := range scenario.Seed {
		for _, title := range seed.Titles {
			rec, err := eng.Create(ctx, record.Record{Group: seed.Group, Title: title})
			if err != nil {
				return nil, fmt.Errorf("seed %q in group %q: %w", title, seed.Group, err)
			}
			byTitle[title] = rec.ID
		}
	}

	result := &Result{Passed: true}

	snap, err := capture(ctx, st, "seed")
	if err != nil {
		return nil, err
	}
	result.Snapshots = append(result.Snapshots, snap)

	for i, step := range scenario.Steps {
		if err := runStep(ctx, eng, st, step, byTitle); err != nil {
			result.Passed = false
			result.Failures = append(result.Failures, fmt.Errorf("step %d (%s): %w", i+1, step.label(), err))
			break
		}

		snap, err := capture(ctx, st, fmt.Sprintf("step %d: %s", i+1, step.label()))
		if err != nil {
			return nil, err
		}
		result.Snapshots = append(result.Snapshots, snap)
	}

	for i, assertion := range scenario.Assertions {
		if err := assertState(ctx, eng, st, assertion); err != nil {
			result.Passed = false
			result.Failures = append(result.Failures, fmt.Errorf("assertion %d: %w", i+1, err))
		}
	}

	return result, nil
}

// runStep executes one scenario step against the engine.
func runStep(ctx context.Context, eng *ordinal.Engine, st *store.Store, step Step, byTitle map[string]string) error {
	if step.Op == "add" {
		rec, err := eng.Create(ctx, record.Record{Group: step.Group, Title: step.Title})
		if err != nil {
			return err
		}
		byTitle[step.Title] = rec.ID
		return nil
	}

	id, ok := byTitle[step.Title]
	if !ok {
		return fmt.Errorf("no record titled %q", step.Title)
	}
	rec, err := st.GetRecord(ctx, id)
	if err != nil {
		return err
	}

	switch step.Op {
	case "promote":
		moved, err := eng.Promote(ctx, rec)
		if err != nil {
			return err
		}
		return checkNoop(step, rec, moved)
	case "demote":
		moved, err := eng.Demote(ctx, rec)
		if err != nil {
			return err
		}
		return checkNoop(step, rec, moved)
	case "remove":
		if err := eng.Delete(ctx, rec); err != nil {
			return err
		}
		delete(byTitle, step.Title)
		return nil
	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}
}

// checkNoop verifies the step's expect_noop clause against the move result.
func checkNoop(step Step, before, after record.Record) error {
	moved := after.Ordinal != before.Ordinal
	if step.ExpectNoop && moved {
		return fmt.Errorf("expected no-op, but %q moved from %d to %d", step.Title, before.Ordinal, after.Ordinal)
	}
	if !step.ExpectNoop && !moved {
		return fmt.Errorf("expected %q to move, but it stayed at %d", step.Title, before.Ordinal)
	}
	return nil
}

// capture records the current ordering of every group.
func capture(ctx context.Context, st *store.Store, label string) (Snapshot, error) {
	groups, err := st.Groups(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("capture %s: %w", label, err)
	}

	snap := Snapshot{Label: label, Groups: make(map[string][]string, len(groups))}
	for _, group := range groups {
		recs, err := st.ListGroup(ctx, group)
		if err != nil {
			return Snapshot{}, fmt.Errorf("capture %s: %w", label, err)
		}
		titles := make([]string, 0, len(recs))
		for _, rec := range recs {
			titles = append(titles, rec.Title)
		}
		snap.Groups[group] = titles
	}
	return snap, nil
}

// Render produces the stable text form of a result's snapshots, used for
// golden file comparison. Groups are sorted; titles appear in position
// order with their ordinal.
func (r *Result) Render(scenarioName string) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "scenario: %s\n", scenarioName)

	for _, snap := range r.Snapshots {
		fmt.Fprintf(&buf, "== %s\n", snap.Label)

		groups := make([]string, 0, len(snap.Groups))
		for group := range snap.Groups {
			groups = append(groups, group)
		}
		sort.Strings(groups)

		for _, group := range groups {
			parts := make([]string, 0, len(snap.Groups[group]))
			for i, title := range snap.Groups[group] {
				parts = append(parts, fmt.Sprintf("%s=%d", title, i+1))
			}
			fmt.Fprintf(&buf, "%s: %s\n", group, strings.Join(parts, " "))
		}
	}

	return buf.String()
}
