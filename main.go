package main

import (
	"fmt"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"stonegrid/agent"
	"stonegrid/engine"
	"stonegrid/game"
	"stonegrid/searcher"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	runHeadToHead(10)
}

// runHeadToHead plays minimax against MCTS for numGames and prints the
// tally plus the last final board.
func runHeadToHead(numGames int) {
	cfg := game.DefaultConfig()
	wins := map[game.Owner]int{}
	var last engine.Result

	for i := 0; i < numGames; i++ {
		seed := int64(i + 1)
		p1 := agent.NewMinimaxAgent(
			searcher.WithMaxDepth(2),
			searcher.WithTimeLimit(200*time.Millisecond),
			searcher.WithMinimaxSeed(seed),
		)
		p2 := agent.NewMCTSAgent(
			searcher.WithSimulations(400),
			searcher.WithRolloutSmartness(0.7),
			searcher.WithMCTSSeed(seed),
		)
		match, err := engine.NewMatch(cfg, p1, p2, seed)
		if err != nil {
			log.Fatal().Err(err).Msg("match setup failed")
		}
		result, err := match.Run()
		if err != nil {
			log.Fatal().Err(err).Msg("match failed")
		}
		wins[result.Winner]++
		last = result
	}

	fmt.Printf("minimax (Player1): %d wins\n", wins[game.Player1])
	fmt.Printf("mcts    (Player2): %d wins\n", wins[game.Player2])
	fmt.Printf("draws: %d\n", wins[game.Neutral])
	fmt.Println("\nfinal board of the last game:")
	renderBoard(last.Final.Board)
}

// renderBoard prints the board with one colored cell per territory:
// stone count on a player color, a dot for neutral.
func renderBoard(board game.Board) {
	out := termenv.NewOutput(os.Stdout)
	p1Style := out.String().Foreground(out.Color("1")).Bold()
	p2Style := out.String().Foreground(out.Color("4")).Bold()
	neutral := out.String().Foreground(out.Color("8"))

	for row := 0; row < board.Size(); row++ {
		for col := 0; col < board.Size(); col++ {
			t := board.At(game.Position{Row: row, Col: col})
			switch t.Owner {
			case game.Player1:
				fmt.Print(p1Style.Styled(fmt.Sprintf("%3d", t.Stones)))
			case game.Player2:
				fmt.Print(p2Style.Styled(fmt.Sprintf("%3d", t.Stones)))
			default:
				fmt.Print(neutral.Styled("  ."))
			}
		}
		fmt.Println()
	}
}
