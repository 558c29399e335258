package mazeio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/mazeforge/pkg/maze"
)

// document is the JSON wire form of a maze.
type document struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Cells  []string `json:"cells"`
	Links  []string `json:"links"`
	Start  string   `json:"start"`
	End    string   `json:"end"`
}

// WriteJSON encodes m as JSON and writes it to w.
// Cells appear in row-major order and links in canonical sorted order, so
// output is deterministic for a given maze. The result can be re-imported
// with [ReadJSON] for round-trip processing.
func WriteJSON(m *maze.Maze, w io.Writer) error {
	out := document{
		Width:  m.Width,
		Height: m.Height,
		Cells:  make([]string, 0, m.CellCount()),
		Links:  make([]string, 0, m.LinkCount()),
		Start:  m.Start.String(),
		End:    m.End.String(),
	}
	for _, c := range m.Cells() {
		out.Cells = append(out.Cells, c.String())
	}
	for _, l := range m.Links() {
		out.Links = append(out.Links, l.String())
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Marshal converts a maze to JSON bytes. See [WriteJSON].
func Marshal(m *maze.Maze) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(m, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportJSON writes a maze to a JSON file at path.
// The file is created with 0644 permissions.
func ExportJSON(m *maze.Maze, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(m, f)
}
