package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func masteryPath() string {
	return fmt.Sprintf("/api/v1/learners/%s/mastery", cfg.Learner)
}

func newMasteryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mastery",
		Short: "Mastery progress commands",
	}

	cmd.AddCommand(newMasteryGetCmd())
	cmd.AddCommand(newMasteryClearCmd())

	return cmd
}

func newMasteryGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show how many people are currently mastered",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Mastery

			if err := client.Get(masteryPath(), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMasteryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Wipe all mastery progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(masteryPath()); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Mastery progress cleared")
			return nil
		},
	}
}
