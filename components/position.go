package components

import (
	"image"
	"math"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PositionData is the authoritative world position of an entity. Only the
// physics pipeline writes it while a tick is running.
type PositionData struct {
	X, Y float64
}

func (p PositionData) Vec() dmath.Vec2 {
	return dmath.Vec2{X: p.X, Y: p.Y}
}

// Translated returns the position moved by offset.
func (p PositionData) Translated(offset dmath.Vec2) PositionData {
	return PositionData{X: p.X + offset.X, Y: p.Y + offset.Y}
}

// Rounded returns the position snapped to whole pixels.
func (p PositionData) Rounded() image.Point {
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}

var Position = donburi.NewComponentType[PositionData]()

// IPositionData is the whole-pixel view of Position. Cur is refreshed after
// every physics tick and Last keeps the previous tick's value, so renderers can
// move sprites by Diff without touching float positions.
type IPositionData struct {
	Cur  image.Point
	Last image.Point
}

func NewIPosition(p PositionData) IPositionData {
	r := p.Rounded()
	return IPositionData{Cur: r, Last: r}
}

func (ip IPositionData) Diff() image.Point {
	return ip.Cur.Sub(ip.Last)
}

var IPosition = donburi.NewComponentType[IPositionData]()
