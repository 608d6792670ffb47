package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/quillboard/ordinal/internal/record"
)

// recordView is the JSON shape of a record in CLI responses.
type recordView struct {
	ID      string `json:"id"`
	Group   string `json:"group"`
	Ordinal int    `json:"ordinal"`
	Title   string `json:"title"`
}

func viewOf(rec record.Record) recordView {
	return recordView{ID: rec.ID, Group: rec.Group, Ordinal: rec.Ordinal, Title: rec.Title}
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <group> <title>",
		Short: "Create a record at the end of a group",
		Long: `Create a record in a group. The new record takes the next free
position: 1 in an empty group, otherwise the current highest plus one.

Example:
  ordinal add backlog "write release notes"`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runAdd(opts *RootOptions, group, title string, cmd *cobra.Command) error {
	eng, st, err := openEngine(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	rec, err := eng.Create(cmd.Context(), record.Record{Group: group, Title: title})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to create record", err)
	}
	slog.Debug("record created", "id", rec.ID, "group", rec.Group, "ordinal", rec.Ordinal)

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.Success(viewOf(rec))
	}
	return out.Success(fmt.Sprintf("%s  %s (position %d in %s)", rec.ID, rec.Title, rec.Ordinal, rec.Group))
}
