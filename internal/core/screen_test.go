package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", got)
	}

	s.SetCell(4, 2, 'O', ColorGreen)
	cell := s.GetCell(4, 2)
	if cell.Rune != 'O' || cell.Color != ColorGreen {
		t.Errorf("GetCell(4, 2) = %+v, expected {O ColorGreen}", cell)
	}

	// Out of bounds writes are ignored, reads return spaces
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.FillRect(0, 0, 4, 3, '#', ColorRed)
	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("cell (%d,%d) = %+v after Clear", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText did not place characters, row = %q", s.Row(1))
	}

	// Clipped text does not panic and keeps in-bounds cells
	s.DrawText(8, 0, "long")
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Errorf("clipped DrawText wrong, row = %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc", ColorDefault)
	if s.Get(4, 1) != 'a' || s.Get(6, 1) != 'c' {
		t.Errorf("DrawTextCentered misplaced, row = %q", s.Row(1))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, 'A')
	s.Set(5, 3, 'B')

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("Resize dimensions = %dx%d, expected 4x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'A' {
		t.Error("Resize should preserve in-bounds content")
	}

	s.Resize(8, 5)
	if s.Get(1, 1) != 'A' {
		t.Error("growing Resize should preserve content")
	}
	if s.Get(7, 4) != ' ' {
		t.Error("new cells should be blank")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	out := s.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() has %d lines, expected 2", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", out)
	}
}

func TestViewportMapping(t *testing.T) {
	vp := NewViewport(80, 24)

	// World origin (bottom-left) maps to the last row, first column
	if col := vp.Col(0); col != 0 {
		t.Errorf("Col(0) = %d, expected 0", col)
	}
	if row := vp.Row(0); row != 24 {
		t.Errorf("Row(0) = %d, expected 24", row)
	}
	// Top of the world maps to row 0
	if row := vp.Row(WorldH); row != 0 {
		t.Errorf("Row(WorldH) = %d, expected 0", row)
	}
	// Midpoint
	if col := vp.Col(WorldW / 2); col != 40 {
		t.Errorf("Col(WorldW/2) = %d, expected 40", col)
	}
}

func TestViewportRectCells(t *testing.T) {
	vp := NewViewport(80, 24)

	// A tiny entity still covers at least one cell
	_, _, w, h := vp.RectCells(NewRect(400, 300, 2, 5))
	if w < 1 || h < 1 {
		t.Errorf("RectCells size = %dx%d, expected at least 1x1", w, h)
	}

	// The full world covers the full screen
	x, y, w, h := vp.RectCells(NewRect(WorldW/2, WorldH/2, WorldW, WorldH))
	if x != 0 || y != 0 || w != 80 || h != 24 {
		t.Errorf("full-world RectCells = (%d,%d,%d,%d), expected (0,0,80,24)", x, y, w, h)
	}
}

func TestStepDT(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 60}
	if dt := cfg.StepDT(); dt != 1.0/60.0 {
		t.Errorf("StepDT at 60 fps = %v, expected 1/60", dt)
	}

	// Low tick rates are capped to avoid large integration steps
	cfg.TickRate = 10
	if dt := cfg.StepDT(); dt != MaxStepDT {
		t.Errorf("StepDT at 10 fps = %v, expected cap %v", dt, MaxStepDT)
	}

	// Zero falls back to the default rate
	cfg.TickRate = 0
	if dt := cfg.StepDT(); dt != 1.0/60.0 {
		t.Errorf("StepDT at 0 fps = %v, expected 1/60", dt)
	}
}

func TestInputFrameAxis(t *testing.T) {
	f := NewInputFrame()
	if f.HorizontalAxis() != 0 {
		t.Error("empty frame axis should be 0")
	}

	f.Set(ActionLeft)
	if f.HorizontalAxis() != -1 {
		t.Error("left-only axis should be -1")
	}

	f.Set(ActionRight)
	if f.HorizontalAxis() != 0 {
		t.Error("left+right axis should cancel to 0")
	}

	f.Clear()
	f.Set(ActionRight)
	if f.HorizontalAxis() != 1 {
		t.Error("right-only axis should be 1")
	}
}
