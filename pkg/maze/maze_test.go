package maze

import (
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		height    int
		wantErr   bool
		wantCells int
	}{
		{name: "Square", width: 4, height: 4, wantCells: 16},
		{name: "Wide", width: 10, height: 2, wantCells: 20},
		{name: "Single", width: 1, height: 1, wantCells: 1},
		{name: "ZeroWidth", width: 0, height: 5, wantErr: true},
		{name: "NegativeHeight", width: 5, height: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.width, tt.height)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := m.CellCount(); got != tt.wantCells {
				t.Errorf("CellCount = %d, want %d", got, tt.wantCells)
			}
			if m.LinkCount() != 0 {
				t.Errorf("LinkCount = %d, want 0", m.LinkCount())
			}
			if m.Start != (Cell{0, 0}) {
				t.Errorf("Start = %v, want 0,0", m.Start)
			}
			if m.End != (Cell{tt.width - 1, tt.height - 1}) {
				t.Errorf("End = %v, want %d,%d", m.End, tt.width-1, tt.height-1)
			}
		})
	}
}

func TestLinkedEitherOrder(t *testing.T) {
	m, err := New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	a, b := Cell{0, 0}, Cell{1, 0}
	m.AddLink(a, b)

	if !m.Linked(a, b) {
		t.Error("Linked(a, b) = false, want true")
	}
	if !m.Linked(b, a) {
		t.Error("Linked(b, a) = false, want true")
	}
	if m.Linked(a, Cell{0, 1}) {
		t.Error("Linked on absent pair = true, want false")
	}

	// Adding the reversed pair must not create a second link.
	m.AddLink(b, a)
	if got := m.LinkCount(); got != 1 {
		t.Errorf("LinkCount after reversed add = %d, want 1", got)
	}
}

func TestNewLinkCanonical(t *testing.T) {
	a, b := Cell{2, 1}, Cell{1, 1}
	if NewLink(a, b) != NewLink(b, a) {
		t.Error("NewLink is not order-insensitive")
	}
}

func TestCellsRowMajor(t *testing.T) {
	m, err := New(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []Cell{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	got := m.Cells()
	if len(got) != len(want) {
		t.Fatalf("len(Cells) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cells[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCellText(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Cell
		wantErr bool
	}{
		{name: "Origin", in: "0,0", want: Cell{0, 0}},
		{name: "Large", in: "12,34", want: Cell{12, 34}},
		{name: "MissingComma", in: "12", wantErr: true},
		{name: "NotANumber", in: "a,b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCell(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCell: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseCell = %v, want %v", got, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("round-trip = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestParseLinkEitherOrder(t *testing.T) {
	forward, err := ParseLink("0,0-1,0")
	if err != nil {
		t.Fatal(err)
	}
	reverse, err := ParseLink("1,0-0,0")
	if err != nil {
		t.Fatal(err)
	}
	if forward != reverse {
		t.Errorf("ParseLink order-sensitivity: %v != %v", forward, reverse)
	}
	if forward.String() != "0,0-1,0" {
		t.Errorf("String = %q, want %q", forward.String(), "0,0-1,0")
	}

	if _, err := ParseLink("0,0"); err == nil {
		t.Error("expected error for missing dash")
	}
	if _, err := ParseLink("x,0-1,0"); err == nil {
		t.Error("expected error for bad endpoint")
	}
}

func TestCloneIsDeep(t *testing.T) {
	m, err := New(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	m.AddLink(Cell{0, 0}, Cell{1, 0})

	c := m.Clone()
	if !m.Equal(c) {
		t.Fatal("clone differs from original")
	}

	c.AddLink(Cell{0, 0}, Cell{0, 1})
	if m.LinkCount() != 1 {
		t.Errorf("original LinkCount = %d after mutating clone, want 1", m.LinkCount())
	}
	if m.Equal(c) {
		t.Error("Equal = true after diverging link sets")
	}
}

func TestNeighbors(t *testing.T) {
	m, err := New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	center := Cell{1, 1}
	m.AddLink(center, Cell{2, 1})
	m.AddLink(center, Cell{1, 0})

	got := m.Neighbors(center)
	want := []Cell{{2, 1}, {1, 0}} // probe order: right, down, left, up
	if len(got) != len(want) {
		t.Fatalf("Neighbors = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLinksSorted(t *testing.T) {
	m, err := New(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	m.AddLink(Cell{1, 1}, Cell{1, 2})
	m.AddLink(Cell{0, 0}, Cell{1, 0})
	m.AddLink(Cell{2, 0}, Cell{2, 1})

	links := m.Links()
	for i := 1; i < len(links); i++ {
		if compareLinks(links[i-1], links[i]) >= 0 {
			t.Errorf("Links not sorted at %d: %v >= %v", i, links[i-1], links[i])
		}
	}
}
