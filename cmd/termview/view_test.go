package main

import (
	"testing"

	"github.com/automoto/boxcollide/hbox"
)

func TestCellOf(t *testing.T) {
	v := view{cell: 10, cols: 20, rows: 10}

	tests := []struct {
		name     string
		x, y     float64
		col, row int
	}{
		{"camera is the center", 0, 0, 10, 5},
		{"right", 25, 0, 12, 5},
		{"up is a smaller row", 0, 15, 10, 3},
		{"down is a larger row", 0, -15, 10, 6},
		{"left", -1, 0, 9, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := v.cellOf(tt.x, tt.y)
			if col != tt.col || row != tt.row {
				t.Errorf("cellOf(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, col, row, tt.col, tt.row)
			}
		})
	}
}

func TestCells(t *testing.T) {
	v := view{cell: 10, cols: 20, rows: 10}

	tests := []struct {
		name string
		box  hbox.HBox
		want int
	}{
		{"aligned with bottom edge on the camera", hbox.New(20, 10).WithOffset(10, 5), 2},
		{"aligned below and left of the camera", hbox.New(10, 10).WithOffset(-5, -5), 1},
		{"two rows", hbox.New(10, 20).WithOffset(5, 0), 2},
		{"smaller than a cell", hbox.New(2, 2).WithOffset(5, 5), 1},
		{"zero width on a cell border", hbox.New(0, 10).WithOffset(0, 5), 1},
		{"off screen", hbox.New(20, 10).WithOffset(1000, 0), 0},
		{"clipped to the screen edge", hbox.New(1000, 10).WithOffset(0, 5), 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := 0
			v.cells(tt.box, func(col, row int) { n++ })
			if n != tt.want {
				t.Errorf("box covers %d cells, want %d", n, tt.want)
			}
		})
	}
}
