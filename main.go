package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"nogo/agent"
	"nogo/engine"
	"nogo/experiments"
	"nogo/game"
)

func main() {
	blackArgs := flag.String("black", "name=mcts role=black search=MCTS thread=4", "black agent options")
	whiteArgs := flag.String("white", "name=random role=white search=Random", "white agent options")
	games := flag.Int("games", 1, "number of games to play")
	outDir := flag.String("out", "", "write CSV records under this directory")
	serve := flag.String("serve", "", "serve the black agent over HTTP on this address instead of playing")
	show := flag.Bool("show", false, "print the final board of each game")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	blackCfg, err := agent.ParseConfig(*blackArgs)
	if err != nil {
		log.Fatal().Err(err).Msg("black agent configuration")
	}
	whiteCfg, err := agent.ParseConfig(*whiteArgs)
	if err != nil {
		log.Fatal().Err(err).Msg("white agent configuration")
	}

	if *serve != "" {
		if err := agent.StartServer(*serve, agent.NewPlayer(blackCfg)); err != nil {
			log.Fatal().Err(err).Msg("agent server")
		}
		return
	}

	if *show {
		runShown(blackCfg, whiteCfg, *games)
		return
	}

	series := experiments.Series{Games: *games, Black: blackCfg, White: whiteCfg}
	gameRecords, moveRecords := series.Run()

	if *outDir != "" {
		writer, err := experiments.NewWriter(*outDir)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment writer")
		}
		if err := writer.WriteGames(gameRecords); err != nil {
			log.Fatal().Err(err).Msg("write games")
		}
		if err := writer.WriteMoves(moveRecords); err != nil {
			log.Fatal().Err(err).Msg("write moves")
		}
		log.Info().Msgf("records written to %s", writer.BaseDir())
	}
}

func runShown(blackCfg, whiteCfg agent.Config, games int) {
	out := termenv.NewOutput(os.Stdout)
	for i := 0; i < games; i++ {
		e := engine.NewLocal(agent.NewPlayer(blackCfg), agent.NewPlayer(whiteCfg))
		result := e.Run()
		fmt.Fprintf(out, "game %d: %s wins after %d moves\n", i+1, result.Winner, len(result.Moves))
		fmt.Fprint(out, renderBoard(out, &result.Board))
	}
}

// renderBoard draws the grid with colored stones when the terminal
// supports it.
func renderBoard(out *termenv.Output, b *game.Board) string {
	black := out.String("●").Foreground(out.Color("12")).String()
	white := out.String("●").Foreground(out.Color("15")).String()
	empty := out.String("·").Faint().String()

	var sb strings.Builder
	for r := 0; r < game.Size; r++ {
		fmt.Fprintf(&sb, "%d ", game.Size-r)
		for c := 0; c < game.Size; c++ {
			switch b.Stone(game.Pos(r, c)) {
			case game.Black:
				sb.WriteString(black)
			case game.White:
				sb.WriteString(white)
			default:
				sb.WriteString(empty)
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  A B C D E F G H I\n")
	return sb.String()
}
