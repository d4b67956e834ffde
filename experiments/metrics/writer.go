package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type MatchupRecord struct {
	Name       string
	Strategies []string // one per seat
	Games      int
}

type GameRecord struct {
	Matchup string // MatchupRecord.Name
	GameMetric
}

type TurnRecord struct {
	Game string // GameMetric.ID
	TurnMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named after the experiment and the
// current timestamp.
func NewWriter(dir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteMatchups(records []MatchupRecord) error {
	header := []string{"name", "players", "strategies", "games"}
	return w.write("matchups.csv", header, len(records), func(i int) []string {
		r := records[i]
		return []string{
			r.Name,
			strconv.Itoa(len(r.Strategies)),
			strings.Join(r.Strategies, " "),
			strconv.Itoa(r.Games),
		}
	})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "matchup", "players", "starting_player", "winner", "status", "start_time", "end_time", "duration", "turns"}
	return w.write("game_records.csv", header, len(records), func(i int) []string {
		r := records[i]
		return []string{
			r.ID,
			r.Matchup,
			strconv.Itoa(r.Players),
			strconv.Itoa(r.StartingPlayer),
			r.Winner,
			r.Status,
			r.StartTime.Format(time.RFC3339),
			r.EndTime.Format(time.RFC3339),
			r.Duration.String(),
			strconv.Itoa(r.TotalTurns),
		}
	})
}

func (w *Writer) WriteTurnRecords(records []TurnRecord) error {
	header := []string{"game", "step", "player", "side", "strategy", "duration", "actions", "placed", "bridges"}
	return w.write("turn_records.csv", header, len(records), func(i int) []string {
		r := records[i]
		return []string{
			r.Game,
			strconv.Itoa(r.Step),
			strconv.Itoa(r.Player),
			r.Side,
			r.Strategy,
			r.Duration.String(),
			strconv.Itoa(r.Actions),
			strconv.FormatBool(r.Placed),
			strconv.Itoa(r.Bridges),
		}
	})
}

func (w *Writer) write(name string, header []string, n int, row func(int) []string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for i := 0; i < n; i++ {
		if err := writer.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}
