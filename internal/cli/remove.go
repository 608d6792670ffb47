package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a record and close the gap it leaves",
		Long: `Delete a record. Every record behind it in the same group moves up
one position, so the group stays dense (1..N with no gaps).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runRemove(opts *RootOptions, id string, cmd *cobra.Command) error {
	eng, st, err := openEngine(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()

	rec, err := st.GetRecord(ctx, id)
	if err != nil {
		return WrapExitError(ExitCommandError, "record not found", err)
	}

	if err := eng.Delete(ctx, rec); err != nil {
		return WrapExitError(ExitCommandError, "failed to delete record", err)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.Success(viewOf(rec))
	}
	return out.Success(fmt.Sprintf("%s removed from %s", rec.ID, rec.Group))
}
