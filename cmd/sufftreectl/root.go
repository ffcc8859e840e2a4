package main

import (
	"github.com/spf13/cobra"

	"github.com/benkalmus/sufftree"
)

var insertFlag []string

var rootCmd = &cobra.Command{
	Use:   "sufftreectl",
	Short: "Build a generalized suffix tree and query it",
	Long: `sufftreectl builds an in-memory generalized suffix tree from one or
more --insert strings and runs a single query or export against it.

Example:
  sufftreectl contains --insert banana ana
  sufftreectl occurrences --insert banana ana
  sufftreectl find-all --insert banan --insert ananas --insert aabbcc an
  sufftreectl dot --insert banana --out banana.dot`,
}

func init() {
	rootCmd.PersistentFlags().StringArrayVar(&insertFlag, "insert", nil, "string to insert into the tree (repeatable)")

	rootCmd.AddCommand(containsCmd)
	rootCmd.AddCommand(occurrencesCmd)
	rootCmd.AddCommand(findAllCmd)
	rootCmd.AddCommand(dotCmd)
}

// buildTree inserts every --insert value into a fresh tree, in the order
// given on the command line.
func buildTree() (*sufftree.Tree, error) {
	t := sufftree.New()
	for _, s := range insertFlag {
		if _, err := t.InsertString(s); err != nil {
			return nil, err
		}
	}
	return t, nil
}
