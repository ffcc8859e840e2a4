package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var containsCmd = &cobra.Command{
	Use:   "contains <query>",
	Short: "Report whether <query> is a substring of any --insert string",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := buildTree()
		if err != nil {
			return err
		}
		fmt.Println(t.Contains(args[0]))
		return nil
	},
}

var occurrencesCmd = &cobra.Command{
	Use:   "occurrences <query>",
	Short: "Count occurrences of <query> across every --insert string",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := buildTree()
		if err != nil {
			return err
		}
		fmt.Println(t.Occurrences(args[0]))
		return nil
	},
}

var findAllCmd = &cobra.Command{
	Use:   "find-all <query>",
	Short: "List every (string index, offset) occurrence of <query>",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := buildTree()
		if err != nil {
			return err
		}
		count := 0
		for id, offset := range t.FindAll(args[0]) {
			fmt.Printf("string=%d offset=%d\n", id, offset)
			count++
		}
		slog.Info("find-all complete", "query", args[0], "matches", count)
		return nil
	},
}
