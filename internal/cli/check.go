package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// checkView is the JSON shape of one group's audit result.
type checkView struct {
	Group    string   `json:"group"`
	Healthy  bool     `json:"healthy"`
	Problems []string `json:"problems,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [group]",
		Short: "Verify that group positions are dense",
		Long: `Verify that each group's positions form exactly 1..N with no gaps or
duplicates. Checks one group, or every group when none is given.

Exits 1 if any group violates the invariant. The check never repairs
data - a violation means something bypassed the engine.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			group := ""
			if len(args) == 1 {
				group = args[0]
			}
			return runCheck(rootOpts, group, cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, group string, cmd *cobra.Command) error {
	eng, st, err := openEngine(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()

	groups := []string{group}
	if group == "" {
		groups, err = st.Groups(ctx)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to list groups", err)
		}
	}

	views := make([]checkView, 0, len(groups))
	unhealthy := 0
	for _, g := range groups {
		problems, err := eng.Audit(ctx, g)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to audit group %q", g), err)
		}
		views = append(views, checkView{Group: g, Healthy: len(problems) == 0, Problems: problems})
		if len(problems) > 0 {
			unhealthy++
		}
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		if err := out.Success(views); err != nil {
			return err
		}
	} else {
		if err := out.Success(formatChecks(views)); err != nil {
			return err
		}
	}

	if unhealthy > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d group(s) violate the position invariant", unhealthy))
	}
	return nil
}

// formatChecks renders audit results as text.
func formatChecks(views []checkView) string {
	var buf strings.Builder
	for _, view := range views {
		if view.Healthy {
			fmt.Fprintf(&buf, "%s: ok\n", view.Group)
			continue
		}
		fmt.Fprintf(&buf, "%s: CORRUPT\n", view.Group)
		for _, problem := range view.Problems {
			fmt.Fprintf(&buf, "  %s\n", problem)
		}
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
