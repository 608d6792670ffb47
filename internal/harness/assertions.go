package harness

import (
	"context"
	"fmt"
	"strings"

	"github.com/quillboard/ordinal/internal/ordinal"
	"github.com/quillboard/ordinal/internal/record"
	"github.com/quillboard/ordinal/internal/store"
)

// AssertionError reports a scenario assertion that did not hold.
type AssertionError struct {
	Type     string
	Group    string
	Expected string
	Actual   string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s on group %q: expected %s, got %s", e.Type, e.Group, e.Expected, e.Actual)
}

// assertState evaluates one assertion against the current store state.
func assertState(ctx context.Context, eng *ordinal.Engine, st *store.Store, a Assertion) error {
	switch a.Type {
	case "group_order":
		return assertGroupOrder(ctx, st, a)
	case "invariant":
		return assertInvariant(ctx, eng, a)
	case "empty_group":
		return assertEmptyGroup(ctx, st, a)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

// assertGroupOrder checks that the group holds exactly the expected titles
// in position order.
func assertGroupOrder(ctx context.Context, st *store.Store, a Assertion) error {
	recs, err := st.ListGroup(ctx, a.Group)
	if err != nil {
		return fmt.Errorf("list group %q: %w", a.Group, err)
	}
	actual := titlesOf(recs)

	if len(actual) != len(a.Titles) {
		return orderError(a, actual)
	}
	for i := range actual {
		if actual[i] != a.Titles[i] {
			return orderError(a, actual)
		}
	}
	return nil
}

func orderError(a Assertion, actual []string) error {
	return &AssertionError{
		Type:     a.Type,
		Group:    a.Group,
		Expected: "[" + strings.Join(a.Titles, " ") + "]",
		Actual:   "[" + strings.Join(actual, " ") + "]",
	}
}

// assertInvariant checks the group's ordinals form a dense 1..N run.
func assertInvariant(ctx context.Context, eng *ordinal.Engine, a Assertion) error {
	problems, err := eng.Audit(ctx, a.Group)
	if err != nil {
		return fmt.Errorf("audit group %q: %w", a.Group, err)
	}
	if len(problems) > 0 {
		return &AssertionError{
			Type:     a.Type,
			Group:    a.Group,
			Expected: "dense ordinals",
			Actual:   strings.Join(problems, "; "),
		}
	}
	return nil
}

// assertEmptyGroup checks the group holds no records at all.
func assertEmptyGroup(ctx context.Context, st *store.Store, a Assertion) error {
	recs, err := st.ListGroup(ctx, a.Group)
	if err != nil {
		return fmt.Errorf("list group %q: %w", a.Group, err)
	}
	if len(recs) > 0 {
		return &AssertionError{
			Type:     a.Type,
			Group:    a.Group,
			Expected: "no records",
			Actual:   fmt.Sprintf("%d records [%s]", len(recs), strings.Join(titlesOf(recs), " ")),
		}
	}
	return nil
}

func titlesOf(recs []record.Record) []string {
	titles := make([]string, 0, len(recs))
	for _, rec := range recs {
		titles = append(titles, rec.Title)
	}
	return titles
}
