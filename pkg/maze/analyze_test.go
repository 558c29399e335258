package maze

import (
	"testing"
)

func TestAnalyzeNoLinks(t *testing.T) {
	m, err := New(3, 1)
	if err != nil {
		t.Fatal(err)
	}

	a := Analyze(m)
	if got := len(a.Groups); got != 3 {
		t.Fatalf("groups = %d, want 3 singletons", got)
	}
	for i, g := range a.Groups {
		if len(g) != 1 {
			t.Errorf("group %d has %d members, want 1", i, len(g))
		}
	}
	// Two adjacent pairs on a 3x1 strip, both crossing components.
	if got := len(a.Boundaries); got != 2 {
		t.Errorf("boundaries = %d, want 2", got)
	}
}

func TestAnalyzeMergesLinkedCells(t *testing.T) {
	m, err := New(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	m.AddLink(Cell{0, 0}, Cell{1, 0})

	a := Analyze(m)
	if got := len(a.Groups); got != 3 {
		t.Fatalf("groups = %d, want 3", got)
	}
	if got := len(a.Groups[0]); got != 2 {
		t.Errorf("first group has %d members, want 2", got)
	}
	// The linked pair is no longer a boundary; the remaining three
	// adjacencies all cross components.
	if got := len(a.Boundaries); got != 3 {
		t.Errorf("boundaries = %d, want 3", got)
	}
	for _, b := range a.Boundaries {
		if b == NewLink(Cell{0, 0}, Cell{1, 0}) {
			t.Error("linked pair still reported as boundary")
		}
	}
}

func TestAnalyzeFullyConnected(t *testing.T) {
	m, err := New(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	m.AddLink(Cell{0, 0}, Cell{1, 0})
	m.AddLink(Cell{1, 0}, Cell{1, 1})
	m.AddLink(Cell{1, 1}, Cell{0, 1})

	a := Analyze(m)
	if got := len(a.Groups); got != 1 {
		t.Fatalf("groups = %d, want 1", got)
	}
	if got := len(a.Groups[0]); got != 4 {
		t.Errorf("group size = %d, want 4", got)
	}
	if got := len(a.Boundaries); got != 0 {
		t.Errorf("boundaries = %d, want 0", got)
	}
}

func TestAnalyzeGroupOrderIsInsertionOrder(t *testing.T) {
	m, err := New(3, 1)
	if err != nil {
		t.Fatal(err)
	}
	// Link the two outer cells' component last in row-major order: the
	// group containing 0,0 must still come first.
	m.AddLink(Cell{1, 0}, Cell{2, 0})

	a := Analyze(m)
	if got := len(a.Groups); got != 2 {
		t.Fatalf("groups = %d, want 2", got)
	}
	if a.Groups[0][0] != (Cell{0, 0}) {
		t.Errorf("first group starts at %v, want 0,0", a.Groups[0][0])
	}
	if len(a.Groups[1]) != 2 {
		t.Errorf("second group size = %d, want 2", len(a.Groups[1]))
	}
}

// Analyze must be a pure function: repeated calls on the same maze agree
// exactly, and the maze itself is untouched.
func TestAnalyzeIsPure(t *testing.T) {
	m, err := New(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	m.AddLink(Cell{0, 0}, Cell{1, 0})
	m.AddLink(Cell{2, 2}, Cell{2, 3})
	before := m.Clone()

	first := Analyze(m)
	second := Analyze(m)

	if !m.Equal(before) {
		t.Fatal("Analyze mutated the maze")
	}
	if len(first.Groups) != len(second.Groups) {
		t.Fatalf("group counts differ: %d vs %d", len(first.Groups), len(second.Groups))
	}
	for i := range first.Groups {
		if len(first.Groups[i]) != len(second.Groups[i]) {
			t.Errorf("group %d sizes differ", i)
		}
		for j := range first.Groups[i] {
			if first.Groups[i][j] != second.Groups[i][j] {
				t.Errorf("group %d member %d differs", i, j)
			}
		}
	}
	if len(first.Boundaries) != len(second.Boundaries) {
		t.Fatalf("boundary counts differ: %d vs %d", len(first.Boundaries), len(second.Boundaries))
	}
	for i := range first.Boundaries {
		if first.Boundaries[i] != second.Boundaries[i] {
			t.Errorf("boundary %d differs: %v vs %v", i, first.Boundaries[i], second.Boundaries[i])
		}
	}
}

func TestAnalyzeSingleCell(t *testing.T) {
	m, err := New(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	a := Analyze(m)
	if len(a.Groups) != 1 || len(a.Boundaries) != 0 {
		t.Errorf("1x1 maze: groups = %d, boundaries = %d, want 1 and 0",
			len(a.Groups), len(a.Boundaries))
	}
}

func TestAnalyzeDeepChainCompression(t *testing.T) {
	// A long corridor exercises path compression on a deep leader chain.
	m, err := New(500, 1)
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 499; x++ {
		m.AddLink(Cell{x, 0}, Cell{x + 1, 0})
	}

	a := Analyze(m)
	if len(a.Groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(a.Groups))
	}
	if len(a.Boundaries) != 0 {
		t.Errorf("boundaries = %d, want 0", len(a.Boundaries))
	}
}
