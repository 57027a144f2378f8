package metrics

import (
	"encoding/csv"
	"fmt"
	"isolation/config"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID          int
	FirstPlayer string
	Winner      string
	Loser       string
	Reason      string
	Moves       int
	Duration    time.Duration
}

type MoveRecord struct {
	Game     int // GameRecord.ID
	Step     int
	Player   string
	Move     string
	Duration time.Duration
	Depth    int // Deepest completed search iteration
	Nodes    int64
	Cutoffs  int64
	TimedOut bool
}

type Writer struct {
	baseDir string
}

// NewWriter stores records in a timestamped subfolder of dir
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WritePlayers(players []config.Player) error {
	rows := make([][]string, 0, len(players))
	for _, p := range players {
		rows = append(rows, []string{
			p.Name,
			p.Kind,
			p.Score,
			strconv.Itoa(p.Depth),
			strconv.Itoa(p.MaxDepth),
			p.Threshold.String(),
		})
	}
	return w.write("players.csv", []string{"name", "kind", "score", "depth", "max_depth", "threshold"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.FirstPlayer,
			record.Winner,
			record.Loser,
			record.Reason,
			strconv.Itoa(record.Moves),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", []string{"id", "first_player", "winner", "loser", "reason", "moves", "duration"}, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			record.Duration.String(),
			strconv.Itoa(record.Depth),
			strconv.FormatInt(record.Nodes, 10),
			strconv.FormatInt(record.Cutoffs, 10),
			strconv.FormatBool(record.TimedOut),
		})
	}
	return w.write("move_records.csv", []string{"game", "step", "player", "move", "duration", "depth", "nodes", "cutoffs", "timed_out"}, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
