package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/quillboard/ordinal/internal/record"
)

// seedView is the JSON shape of the seed summary.
type seedView struct {
	Files   int `json:"files"`
	Groups  int `json:"groups"`
	Records int `json:"records"`
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed <boards-dir>",
		Short: "Create records from CUE board files",
		Long: `Load CUE board files and create their records through the engine.

A board file declares groups and their titles in presentation order:

  boards: {
      backlog: ["write docs", "fix login"]
      doing:   ["ship v2"]
  }

The first title of each group takes position 1; records append after any
the group already holds.

Example:
  ordinal seed --db ./board.db ./boards`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runSeed(opts *RootOptions, dir string, cmd *cobra.Command) error {
	result, err := LoadBoards(dir)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load board files", err)
	}
	slog.Debug("boards loaded", "files", result.FileCount, "groups", len(result.Boards))

	eng, st, err := openEngine(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()

	created := 0
	for _, board := range result.Boards {
		for _, title := range board.Titles {
			rec, err := eng.Create(ctx, record.Record{Group: board.Group, Title: title})
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("failed to create %q in group %q", title, board.Group), err)
			}
			slog.Debug("record seeded", "id", rec.ID, "group", rec.Group, "ordinal", rec.Ordinal)
			created++
		}
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return out.Success(seedView{Files: result.FileCount, Groups: len(result.Boards), Records: created})
	}
	return out.Success(fmt.Sprintf("seeded %d record(s) across %d group(s) from %d file(s)", created, len(result.Boards), result.FileCount))
}
