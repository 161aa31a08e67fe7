package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func gamePath(suffix string) string {
	return fmt.Sprintf("/api/v1/learners/%s/game%s", cfg.Learner, suffix)
}

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameNextCmd())
	cmd.AddCommand(newGameAnswerCmd())
	cmd.AddCommand(newGameRestartCmd())
	cmd.AddCommand(newGameCloseCmd())

	return cmd
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a game, resuming a saved one if present",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameState

			if err := client.Post(gamePath(""), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Get current game state",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameState

			if err := client.Get(gamePath(""), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Draw the next card",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result NextCard

			if err := client.Post(gamePath("/next"), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameAnswerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "answer <person-id>",
		Short: "Answer the current card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"selected_id": args[0]}
			var result AnswerResult

			if err := client.Post(gamePath("/answer"), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameRestartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restart",
		Short: "Discard progress and start over with a fresh shuffle",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameState

			if err := client.Post(gamePath("/restart"), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close",
		Short: "Close the live game, keeping the saved snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(gamePath("")); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game closed")
			return nil
		},
	}
}
