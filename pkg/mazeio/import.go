package mazeio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/mazeforge/pkg/maze"
)

// ReadJSON decodes a JSON maze from r.
//
// The input must carry positive "width" and "height" and may carry "links",
// "start", and "end" (defaulting to the grid corners). The "cells" array is
// accepted for round-trip compatibility but not required: the grid is
// always the full width×height rectangle.
//
// ReadJSON returns an error if:
//   - The JSON is malformed
//   - The dimensions are not positive
//   - A link fails to parse or references a cell outside the grid
//   - Start or end lies outside the grid
//
// Link endpoints may appear in either order; they are normalized on import.
// The returned maze is independent of r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*maze.Maze, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	m, err := maze.New(data.Width, data.Height)
	if err != nil {
		return nil, err
	}

	for _, s := range data.Links {
		l, err := maze.ParseLink(s)
		if err != nil {
			return nil, err
		}
		if !m.Contains(l.A) || !m.Contains(l.B) {
			return nil, fmt.Errorf("link %s: endpoint outside %dx%d grid", s, data.Width, data.Height)
		}
		m.AddLink(l.A, l.B)
	}

	if data.Start != "" {
		c, err := maze.ParseCell(data.Start)
		if err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
		m.Start = c
	}
	if data.End != "" {
		c, err := maze.ParseCell(data.End)
		if err != nil {
			return nil, fmt.Errorf("end: %w", err)
		}
		m.End = c
	}
	if !m.Contains(m.Start) || !m.Contains(m.End) {
		return nil, fmt.Errorf("start %s or end %s outside %dx%d grid",
			m.Start, m.End, data.Width, data.Height)
	}

	return m, nil
}

// Unmarshal decodes a maze from JSON bytes. See [ReadJSON].
func Unmarshal(data []byte) (*maze.Maze, error) {
	return ReadJSON(bytes.NewReader(data))
}

// ImportJSON reads a JSON file at path and returns the decoded maze.
// Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) (*maze.Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	m, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return m, nil
}
