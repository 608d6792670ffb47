package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillboard/ordinal/internal/record"
)

// NewPromoteCommand creates the promote command.
func NewPromoteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promote <id>",
		Short: "Move a record one step toward position 1",
		Long: `Swap a record with its immediate lower-positioned neighbor.
Promoting the record already at position 1 is a no-op.

Example:
  ordinal promote 0190d1f0-5c2a-7a3e-9b1f-3d2a44c05c1e`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMove(rootOpts, args[0], cmd, func(ctx context.Context, eng mover, rec record.Record) (record.Record, error) {
				return eng.Promote(ctx, rec)
			})
		},
	}

	return cmd
}

// NewDemoteCommand creates the demote command.
func NewDemoteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demote <id>",
		Short: "Move a record one step toward the end of its group",
		Long: `Swap a record with its immediate higher-positioned neighbor.
Demoting the record already at the last position is a no-op.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMove(rootOpts, args[0], cmd, func(ctx context.Context, eng mover, rec record.Record) (record.Record, error) {
				return eng.Demote(ctx, rec)
			})
		},
	}

	return cmd
}

// mover is the slice of the engine the move commands need.
type mover interface {
	Promote(ctx context.Context, rec record.Record) (record.Record, error)
	Demote(ctx context.Context, rec record.Record) (record.Record, error)
}

func runMove(opts *RootOptions, id string, cmd *cobra.Command, move func(context.Context, mover, record.Record) (record.Record, error)) error {
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

	moved, err := move(ctx, eng, rec)
	if err != nil {
		return WrapExitError(ExitCommandError, "move failed", err)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.Success(viewOf(moved))
	}
	if moved.Ordinal == rec.Ordinal {
		return out.Success(fmt.Sprintf("%s already at position %d in %s", moved.ID, moved.Ordinal, moved.Group))
	}
	return out.Success(fmt.Sprintf("%s moved to position %d in %s", moved.ID, moved.Ordinal, moved.Group))
}
