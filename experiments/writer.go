package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"nogo/game"
)

// MoveRecord is one ply of a series, flattened for CSV output.
type MoveRecord struct {
	EpisodeID string
	Index     int
	Mover     game.Color
	Pos       int
	Playouts  int64
	Duration  time.Duration
}

// Writer writes series records as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, errors.Wrap(err, "create experiment directory")
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) BaseDir() string { return w.baseDir }

func (w *Writer) WriteGames(games []GameRecord) error {
	rows := make([][]string, 0, len(games)+1)
	rows = append(rows, []string{"episode", "winner", "moves"})
	for _, g := range games {
		rows = append(rows, []string{g.EpisodeID, g.Winner.String(), strconv.Itoa(g.Moves)})
	}
	return w.writeFile("games.csv", rows)
}

func (w *Writer) WriteMoves(moves []MoveRecord) error {
	rows := make([][]string, 0, len(moves)+1)
	rows = append(rows, []string{"episode", "index", "mover", "pos", "playouts", "duration_ms"})
	for _, m := range moves {
		rows = append(rows, []string{
			m.EpisodeID,
			strconv.Itoa(m.Index),
			m.Mover.String(),
			strconv.Itoa(m.Pos),
			strconv.FormatInt(m.Playouts, 10),
			strconv.FormatInt(m.Duration.Milliseconds(), 10),
		})
	}
	return w.writeFile("moves.csv", rows)
}

func (w *Writer) writeFile(name string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", name)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "write %s", name)
		}
	}
	return nil
}
