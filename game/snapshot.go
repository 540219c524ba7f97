package game

import (
	"fmt"
	"sort"

	"github.com/automoto/boxcollide/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// BodyState is the saved physics state of one persistent entity.
type BodyState struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

// Snapshot is the saved state of every persistent body in a level.
type Snapshot struct {
	Level  string      `json:"level"`
	Bodies []BodyState `json:"bodies"`
}

var persistent = donburi.NewQuery(filter.Contains(components.Persistent, components.Position))

// TakeSnapshot records every persistent body, sorted by ID.
func TakeSnapshot(w donburi.World) Snapshot {
	var snap Snapshot
	if e, ok := components.Level.First(w); ok {
		if lvl := components.Level.Get(e).Level; lvl != nil {
			snap.Level = lvl.Name
		}
	}
	persistent.Each(w, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		vel := velocityOrZero(e)
		snap.Bodies = append(snap.Bodies, BodyState{
			ID: components.Persistent.Get(e).ID,
			X:  pos.X,
			Y:  pos.Y,
			VX: vel.X,
			VY: vel.Y,
		})
	})
	sort.Slice(snap.Bodies, func(i, j int) bool { return snap.Bodies[i].ID < snap.Bodies[j].ID })
	return snap
}

// Restore writes the snapshot back onto bodies with matching IDs and returns
// how many were restored. Bodies missing from either side are left alone.
// Restored bodies keep their whole-pixel position in sync so renderers do
// not see a jump as movement.
func (s Snapshot) Restore(w donburi.World) (int, error) {
	if e, ok := components.Level.First(w); ok && s.Level != "" {
		if lvl := components.Level.Get(e).Level; lvl != nil && lvl.Name != s.Level {
			return 0, fmt.Errorf("snapshot is for level %q, world has %q", s.Level, lvl.Name)
		}
	}

	byID := make(map[string]BodyState, len(s.Bodies))
	for _, b := range s.Bodies {
		byID[b.ID] = b
	}

	restored := 0
	persistent.Each(w, func(e *donburi.Entry) {
		b, ok := byID[components.Persistent.Get(e).ID]
		if !ok {
			return
		}
		pos := components.PositionData{X: b.X, Y: b.Y}
		*components.Position.Get(e) = pos
		if e.HasComponent(components.Velocity) {
			*components.Velocity.Get(e) = components.VelocityData{X: b.VX, Y: b.VY}
		}
		if e.HasComponent(components.IPosition) {
			*components.IPosition.Get(e) = components.NewIPosition(pos)
		}
		restored++
	})
	return restored, nil
}

func velocityOrZero(e *donburi.Entry) components.VelocityData {
	if !e.HasComponent(components.Velocity) {
		return components.VelocityData{}
	}
	return *components.Velocity.Get(e)
}
