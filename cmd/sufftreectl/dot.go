package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	dotOut                string
	dotIncludeSuffixLinks bool
)

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Write the built tree to a Graphviz DOT file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := buildTree()
		if err != nil {
			return err
		}
		if err := t.ToDot(dotOut, dotIncludeSuffixLinks); err != nil {
			return err
		}
		slog.Info("wrote dot file", "path", dotOut, "suffix_links", dotIncludeSuffixLinks)
		return nil
	},
}

func init() {
	dotCmd.Flags().StringVar(&dotOut, "out", "tree.dot", "output path for the DOT file")
	dotCmd.Flags().BoolVar(&dotIncludeSuffixLinks, "suffix-links", false, "also emit dashed suffix-link edges")
}
