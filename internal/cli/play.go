package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a full game interactively",
		Long: `play runs a complete game loop in the terminal: it starts (or resumes)
a game, draws cards one by one, reads your answer from stdin, and shows
the final summary when the deck is exhausted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay()
		},
	}
}

func runPlay() error {
	out := NewOutput(cfg.Output)
	reader := bufio.NewReader(os.Stdin)

	var state GameState
	if err := client.Post(gamePath(""), nil, &state); err != nil {
		return err
	}
	out.Print(state)

	for {
		var next NextCard
		if err := client.Post(gamePath("/next"), nil, &next); err != nil {
			return err
		}

		if next.Complete {
			out.Print(next)
			return nil
		}
		if next.Card == nil {
			return fmt.Errorf("server returned neither card nor summary")
		}

		out.printCard(*next.Card)

		choice, err := readChoice(reader, len(next.Card.Options))
		if err != nil {
			return err
		}
		selected := next.Card.Options[choice-1]

		req := map[string]string{"selected_id": selected.ID}
		var result AnswerResult
		if err := client.Post(gamePath("/answer"), req, &result); err != nil {
			return err
		}
		out.Print(result)

		// Pace card transitions the same way the server locks answers
		if result.DelayMs > 0 {
			time.Sleep(time.Duration(result.DelayMs) * time.Millisecond)
		}
	}
}

func readChoice(reader *bufio.Reader, max int) (int, error) {
	for {
		fmt.Printf("Your answer [1-%d]: ", max)

		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 1 || n > max {
			fmt.Println("Please enter a number from the list")
			continue
		}
		return n, nil
	}
}
