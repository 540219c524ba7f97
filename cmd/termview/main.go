// Command termview runs a level in the terminal. Every cell covers a square of
// config.Term.CellSize world units.
//
// Controls: arrows or a/d to move, space or w to jump, b for bullet time,
// h to toggle hitboxes, q or Esc to quit.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/automoto/boxcollide/assets"
	"github.com/automoto/boxcollide/bullettime"
	"github.com/automoto/boxcollide/collisions"
	"github.com/automoto/boxcollide/components"
	cfg "github.com/automoto/boxcollide/config"
	"github.com/automoto/boxcollide/game"
	"github.com/automoto/boxcollide/systems/factory"
	"github.com/automoto/boxcollide/tags"
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"
)

// Terminals only report key presses, so a press holds the direction for a
// short while. Key repeat keeps it held.
const holdFor = 150 * time.Millisecond

var (
	solidStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	liftStyle    = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	spikesStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	playerStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	hitStyle     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	missStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	defaultStyle = tcell.StyleDefault
)

type viewer struct {
	screen  tcell.Screen
	world   donburi.World
	physics *game.Physics
	player  *donburi.Entry

	dir       float64
	dirUntil  time.Time
	jumpUntil time.Time
	hitboxes  bool
}

func main() {
	configPath := flag.String("config", "boxcollide.yaml", "YAML file overriding the built-in configuration")
	level := flag.String("level", assets.DemoLevel, "embedded level to play")
	flag.Parse()

	if err := cfg.LoadOverrides(*configPath); err != nil {
		log.Fatalf("[config] %v", err)
	}

	lvl, err := assets.LoadLevel(*level)
	if err != nil {
		log.Fatalf("[level] %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.SetStyle(defaultStyle)
	screen.Clear()

	v := &viewer{
		screen:   screen,
		world:    donburi.NewWorld(),
		physics:  game.NewPhysics(bullettime.New[components.TimeClass]()),
		hitboxes: cfg.Debug.DrawHitboxes,
	}
	factory.CreateLevel(v.world, lvl)
	if players := factory.SpawnPlayers(v.world, lvl, 1); len(players) > 0 {
		v.player = players[0]
	}

	// Route the standard logger away from the terminal while it is drawn.
	log.SetOutput(io.Discard)
	defer screen.Fini()
	v.run()
}

func (v *viewer) run() {
	rate := cfg.Physics.TickRate
	if rate <= 0 {
		rate = 60
	}
	frame := time.Second / time.Duration(rate)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}
		case <-ticker.C:
			v.applyInput(time.Now())
			game.Update(v.world, v.physics, frame)
			v.draw()
		}
	}
}

func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		now := time.Now()
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			v.dir, v.dirUntil = -1, now.Add(holdFor)
		case tcell.KeyRight:
			v.dir, v.dirUntil = 1, now.Add(holdFor)
		case tcell.KeyUp:
			v.jump(now)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'a':
				v.dir, v.dirUntil = -1, now.Add(holdFor)
			case 'd':
				v.dir, v.dirUntil = 1, now.Add(holdFor)
			case ' ', 'w':
				v.jump(now)
			case 'b':
				v.physics.Time.AddEffect(components.TimeSlow, cfg.BulletTime.Seconds)
			case 'h':
				v.hitboxes = !v.hitboxes
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) jump(now time.Time) {
	if v.player == nil || !v.player.Valid() {
		return
	}
	components.PlayerInput.Get(v.player).JumpPressed = true
	v.jumpUntil = now.Add(holdFor)
}

func (v *viewer) applyInput(now time.Time) {
	if v.player == nil || !v.player.Valid() {
		return
	}
	in := components.PlayerInput.Get(v.player)
	in.Direction = 0
	if now.Before(v.dirUntil) {
		in.Direction = v.dir
	}
	in.Jump = now.Before(v.jumpUntil)
	in.Sequence++
}

func (v *viewer) draw() {
	v.screen.Clear()
	cols, rows := v.screen.Size()

	vw := view{cell: cfg.Term.CellSize, cols: cols, rows: rows - 1}
	if vw.cell <= 0 {
		vw.cell = 12
	}
	if v.player != nil && v.player.Valid() {
		pos := components.Position.Get(v.player)
		vw.camX, vw.camY = pos.X, pos.Y
	}

	components.StaticTx.Each(v.world, func(e *donburi.Entry) {
		style := solidStyle
		if e.HasComponent(tags.Lift) {
			style = liftStyle
		}
		for _, box := range components.StaticTx.Get(e).THBoxes(*components.Position.Get(e)) {
			vw.cells(box, func(col, row int) { v.screen.SetContent(col, row, '█', nil, style) })
		}
	})

	components.Triggers.Tx.Each(v.world, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		for _, comp := range components.Triggers.Tx.Get(e).Comps {
			vw.cells(comp.HBox.Translated(pos.X, pos.Y), func(col, row int) {
				v.screen.SetContent(col, row, '^', nil, spikesStyle)
			})
		}
	})

	tags.Player.Each(v.world, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		rx := components.StaticRx.Get(e)
		byBox := collisions.ByRxHBox(v.physics.Statics.GetMany(rx.CollKeys))
		for _, comp := range rx.Comps {
			box := comp.HBox.Translated(pos.X, pos.Y)
			if comp.HBox.Marker() == components.MarkerBody {
				vw.cells(box, func(col, row int) { v.screen.SetContent(col, row, '@', nil, playerStyle) })
				continue
			}
			if !v.hitboxes {
				continue
			}
			style := missStyle
			if len(byBox[comp.HBox.Marker()]) > 0 {
				style = hitStyle
			}
			vw.cells(box, func(col, row int) { v.screen.SetContent(col, row, '-', nil, style) })
		}
	})

	v.drawStatus(rows - 1)
	v.screen.Show()
}

func (v *viewer) drawStatus(row int) {
	status := fmt.Sprintf("statics %d  triggers %d", v.physics.Statics.Len(), v.physics.TriggerColls.Len())
	if v.player != nil && v.player.Valid() {
		pos := components.Position.Get(v.player)
		player := components.Player.Get(v.player)
		status = fmt.Sprintf("pos %.0f,%.0f  ground %v  deaths %d  %s",
			pos.X, pos.Y, player.OnGround, player.Deaths, status)
	}
	if v.physics.Time.Active() > 0 {
		status += fmt.Sprintf("  bullet time x%.2f", v.physics.Time.Factor())
	}
	for i, r := range status {
		v.screen.SetContent(i, row, r, nil, statusStyle)
	}
}
