package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// groupView is the JSON shape of one group listing.
type groupView struct {
	Group   string       `json:"group"`
	Records []recordView `json:"records"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [group]",
		Short: "List records in position order",
		Long: `List the records of one group in position order, or of every group
when no group is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			group := ""
			if len(args) == 1 {
				group = args[0]
			}
			return runList(rootOpts, group, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, group string, cmd *cobra.Command) error {
	_, st, err := openEngine(opts)
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

	views := make([]groupView, 0, len(groups))
	for _, g := range groups {
		recs, err := st.ListGroup(ctx, g)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to list group %q", g), err)
		}
		view := groupView{Group: g, Records: make([]recordView, 0, len(recs))}
		for _, rec := range recs {
			view.Records = append(view.Records, viewOf(rec))
		}
		views = append(views, view)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.Success(views)
	}
	return out.Success(formatGroups(views))
}

// formatGroups renders group listings as indented text.
func formatGroups(views []groupView) string {
	var buf strings.Builder
	for i, view := range views {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "%s:\n", view.Group)
		if len(view.Records) == 0 {
			buf.WriteString("  (empty)\n")
			continue
		}
		for _, rec := range view.Records {
			fmt.Fprintf(&buf, "  %d. %s  %s\n", rec.Ordinal, rec.Title, rec.ID)
		}
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
