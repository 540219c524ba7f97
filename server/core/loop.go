package core

import (
	"log"
	"time"

	"github.com/automoto/boxcollide/game"
	"github.com/leap-fish/necs/esync/srvsync"
)

const (
	// maxCatchUp bounds how many simulation steps one wakeup may run after
	// the process stalled. Time beyond that is dropped.
	maxCatchUp = 5
	statsEvery = 30 * time.Second
)

// GameLoop steps the simulation at a fixed rate and syncs once per wakeup.
type GameLoop struct {
	server   *Server
	tickRate int
	step     time.Duration
	stopChan chan struct{}

	ticks    uint64
	busy     time.Duration // time spent simulating since the last stats line
	lastStat time.Time
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		step:     time.Second / time.Duration(tickRate),
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(g.step)
	defer ticker.Stop()

	log.Printf("[server] game loop started at %d ticks/second", g.tickRate)

	last := time.Now()
	g.lastStat = last
	var acc time.Duration
	for {
		select {
		case <-g.stopChan:
			log.Printf("[server] game loop stopped after %d ticks", g.ticks)
			return
		case now := <-ticker.C:
			acc += now.Sub(last)
			last = now

			steps := 0
			for acc >= g.step && steps < maxCatchUp {
				g.tick()
				acc -= g.step
				steps++
			}
			if acc >= g.step {
				log.Printf("[server] falling behind, dropping %v", acc)
				acc = 0
			}
			if steps == 0 {
				continue
			}

			if err := srvsync.DoSync(); err != nil {
				log.Printf("[server] sync error: %v", err)
			}
			g.logStats(now)
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

// tick advances the simulation by one fixed step and publishes the result
// into the net components. It does not touch the network.
func (g *GameLoop) tick() {
	start := time.Now()
	s := g.server
	s.ProcessCommands()
	game.Update(s.world, s.physics, g.step)
	s.syncNet()
	g.ticks++
	g.busy += time.Since(start)
}

func (g *GameLoop) logStats(now time.Time) {
	elapsed := now.Sub(g.lastStat)
	if elapsed < statsEvery {
		return
	}
	log.Printf("[server] %d players, %d ticks, %.1f%% of the tick budget used",
		g.server.PlayerCount(), g.ticks, 100*float64(g.busy)/float64(elapsed))
	g.busy = 0
	g.lastStat = now
}
