package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/boxcollide/components"
	cfg "github.com/automoto/boxcollide/config"
	"github.com/automoto/boxcollide/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin      = 10
	hudLineSpacing = 15
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// DrawHUD prints the local player's state and the size of this tick's
// record stores in the top-left corner.
func (s *Sim) DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	var b strings.Builder
	if playerEntry, ok := tags.Player.First(e.World); ok {
		pos := components.Position.Get(playerEntry)
		vel := components.Velocity.Get(playerEntry)
		player := components.Player.Get(playerEntry)
		fmt.Fprintf(&b, "pos %7.1f %7.1f  vel %7.1f %7.1f\n", pos.X, pos.Y, vel.X, vel.Y)
		fmt.Fprintf(&b, "ground %-5v deaths %d\n", player.OnGround, player.Deaths)
	}
	fmt.Fprintf(&b, "statics %d  triggers %d\n", s.Physics.Statics.Len(), s.Physics.TriggerColls.Len())
	if s.Physics.Time.Active() > 0 {
		fmt.Fprintf(&b, "bullet time x%.2f\n", s.Physics.Time.Factor())
	}
	if cfg.Debug.DrawHitboxes {
		b.WriteString("hitboxes\n")
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(hudMargin, hudMargin)
	op.ColorScale.ScaleWithColor(cfg.White)
	op.LineSpacing = hudLineSpacing
	text.Draw(screen, b.String(), hudFace, op)
}
