package cli

import (
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/isfdb-awards/internal/format"
	"github.com/pfrederiksen/isfdb-awards/internal/storage"
)

type formatOptions struct {
	tags        bool
	description bool
	table       bool
}

func (o *formatOptions) mode() format.Mode {
	switch {
	case o.tags:
		return format.ModeTags
	case o.table:
		return format.ModeTable
	default:
		return format.ModeDescription
	}
}

// NewFormatCmd creates the formatter command
func NewFormatCmd() *cobra.Command {
	opts := &formatOptions{}

	cmd := &cobra.Command{
		Use:   "isfdb-format [flags] <works.json>",
		Short: "Render a crawled works artifact as text",
		Long: `Render the JSON artifact written by isfdb-crawl.

The first work in the file is the collection. Description mode (the default)
prints one line per member work with its awards grouped by category. Tags mode
prints every award, the collection's first, on a single comma-separated line.
Table mode prints every award of every work for review. Use - to read stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			works, err := storage.LoadWorks(args[0])
			if err != nil {
				return err
			}
			return format.Write(cmd.OutOrStdout(), opts.mode(), works)
		},
	}

	cmd.Flags().BoolVarP(&opts.tags, "tags", "t", false, "Print awards as tags")
	cmd.Flags().BoolVarP(&opts.description, "description", "d", false, "Print description lines (default)")
	cmd.Flags().BoolVar(&opts.table, "table", false, "Print a review table")
	cmd.MarkFlagsMutuallyExclusive("tags", "description", "table")

	return cmd
}
