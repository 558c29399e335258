package mazeio

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/mazeforge/pkg/maze"
)

func buildSample(t *testing.T) *maze.Maze {
	t.Helper()
	m, err := maze.New(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	m.AddLink(maze.Cell{X: 0, Y: 0}, maze.Cell{X: 1, Y: 0})
	m.AddLink(maze.Cell{X: 1, Y: 0}, maze.Cell{X: 1, Y: 1})
	return m
}

func TestWriteJSONShape(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(buildSample(t), &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if raw["width"] != float64(2) || raw["height"] != float64(2) {
		t.Errorf("dimensions = %v x %v, want 2 x 2", raw["width"], raw["height"])
	}
	if raw["start"] != "0,0" || raw["end"] != "1,1" {
		t.Errorf("endpoints = %v..%v, want 0,0..1,1", raw["start"], raw["end"])
	}

	cells, ok := raw["cells"].([]any)
	if !ok || len(cells) != 4 {
		t.Fatalf("cells = %v, want 4 entries", raw["cells"])
	}
	if cells[0] != "0,0" || cells[3] != "1,1" {
		t.Errorf("cells order = %v, want row-major from 0,0", cells)
	}

	links, ok := raw["links"].([]any)
	if !ok || len(links) != 2 {
		t.Fatalf("links = %v, want 2 entries", raw["links"])
	}
}

func TestRoundTrip(t *testing.T) {
	m := buildSample(t)

	data, err := Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !m.Equal(got) {
		t.Error("round-trip changed the maze")
	}
}

func TestReadJSONAcceptsReversedLinks(t *testing.T) {
	in := `{"width": 2, "height": 1, "links": ["1,0-0,0"]}`
	m, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if !m.Linked(maze.Cell{X: 0, Y: 0}, maze.Cell{X: 1, Y: 0}) {
		t.Error("reversed link not normalized on import")
	}
}

func TestReadJSONDefaultsEndpoints(t *testing.T) {
	m, err := ReadJSON(strings.NewReader(`{"width": 3, "height": 4}`))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if m.Start != (maze.Cell{X: 0, Y: 0}) {
		t.Errorf("Start = %v, want 0,0", m.Start)
	}
	if m.End != (maze.Cell{X: 2, Y: 3}) {
		t.Errorf("End = %v, want 2,3", m.End)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "Malformed", in: `{"width": `},
		{name: "ZeroWidth", in: `{"width": 0, "height": 3}`},
		{name: "BadLink", in: `{"width": 2, "height": 2, "links": ["nope"]}`},
		{name: "LinkOutsideGrid", in: `{"width": 2, "height": 2, "links": ["0,0-0,5"]}`},
		{name: "StartOutsideGrid", in: `{"width": 2, "height": 2, "start": "5,5"}`},
		{name: "BadStart", in: `{"width": 2, "height": 2, "start": "zzz"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.in)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestFileRoundTrip(t *testing.T) {
	m := buildSample(t)
	path := filepath.Join(t.TempDir(), "maze.json")

	if err := ExportJSON(m, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if !m.Equal(got) {
		t.Error("file round-trip changed the maze")
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	if _, err := ImportJSON(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
