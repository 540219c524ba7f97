package main

import (
	"math"

	"github.com/automoto/boxcollide/hbox"
)

// view maps world coordinates (y up) onto terminal cells (y down). The
// camera point sits in the middle of the screen.
type view struct {
	camX, camY float64
	cell       float64
	cols, rows int
}

func (v view) cellOf(x, y float64) (col, row int) {
	col = int(math.Floor((x-v.camX)/v.cell)) + v.cols/2
	row = int(math.Floor((v.camY-y)/v.cell)) + v.rows/2
	return col, row
}

// cells calls fn for every on-screen cell the box covers. Boxes smaller than
// a cell still cover the cell holding their center.
func (v view) cells(box hbox.HBox, fn func(col, row int)) {
	c0, r0 := v.cellOf(box.MinX(), box.MaxY())
	// Far edges are exclusive, so they round up in cell space.
	c1 := int(math.Ceil((box.MaxX()-v.camX)/v.cell)) - 1 + v.cols/2
	r1 := int(math.Ceil((v.camY-box.MinY())/v.cell)) - 1 + v.rows/2
	if c1 < c0 || r1 < r0 {
		center := box.Center()
		c0, r0 = v.cellOf(center.X, center.Y)
		c1, r1 = c0, r0
	}
	for row := max(r0, 0); row <= min(r1, v.rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, v.cols-1); col++ {
			fn(col, row)
		}
	}
}
