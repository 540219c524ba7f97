package core

import (
	"math"
	"os"
	"testing"
	"time"

	"github.com/automoto/boxcollide/components"
	"github.com/automoto/boxcollide/shared/leveldata"
	"github.com/automoto/boxcollide/shared/messages"
	"github.com/automoto/boxcollide/shared/netcomponents"
	"github.com/automoto/boxcollide/shared/protocol"
	"github.com/leap-fish/necs/router"
)

func TestMain(m *testing.M) {
	if err := protocol.RegisterComponents(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func testServer(opts Options) *Server {
	opts.TickRate = 60
	return NewServer(&leveldata.Level{
		Name:   "test",
		Solids: []leveldata.Rect{{X: -400, Y: 264, W: 800, H: 72}}, // top at y = -264
		Spawns: []leveldata.SpawnPoint{{X: -100, Y: 0, Index: 0}, {X: 100, Y: 0, Index: 1}},
	}, opts)
}

func ticks(s *Server, n int) {
	for i := 0; i < n; i++ {
		s.loop.tick()
	}
}

func TestPlayerLandsAndSyncs(t *testing.T) {
	s := testServer(Options{})
	player := s.addPlayer("ann")

	ticks(s, 120)

	pos := components.Position.Get(player)
	if math.Abs(pos.Y-(-246)) > 1e-6 {
		t.Fatalf("y = %v, want -246", pos.Y)
	}
	net := netcomponents.NetPosition.Get(player)
	if net.X != pos.X || net.Y != pos.Y {
		t.Errorf("net position %+v, want %+v", *net, *pos)
	}
	contacts := netcomponents.NetContacts.Get(player)
	if !contacts.OnGround {
		t.Error("contacts do not report ground")
	}
	if contacts.Statics == 0 {
		t.Error("resting body reports no static records")
	}
	if got := netcomponents.NetPlayer.Get(player); got.ID != "player-0" || got.Name != "ann" {
		t.Errorf("net player = %+v", *got)
	}
}

func TestSpawnPointsRoundRobin(t *testing.T) {
	s := testServer(Options{})
	want := []float64{-100, 100, -100}
	for i, x := range want {
		p := s.addPlayer("")
		if got := components.Position.Get(p).X; got != x {
			t.Errorf("player %d spawned at x = %v, want %v", i, got, x)
		}
	}
}

func TestApplyInput(t *testing.T) {
	s := testServer(Options{})
	player := s.addPlayer("")
	entity := player.Entity()

	s.applyInput(entity, messages.PlayerInput{Sequence: 5, Direction: 1, Jump: true})
	in := components.PlayerInput.Get(player)
	if in.Direction != 1 || !in.JumpPressed || in.Sequence != 5 {
		t.Fatalf("input after first message = %+v", *in)
	}

	// Out of order messages are dropped.
	s.applyInput(entity, messages.PlayerInput{Sequence: 3, Direction: -1})
	if in.Direction != 1 || in.Sequence != 5 {
		t.Errorf("stale input applied: %+v", *in)
	}

	// Holding jump does not press it again.
	in.JumpPressed = false
	s.applyInput(entity, messages.PlayerInput{Sequence: 6, Jump: true})
	if in.JumpPressed {
		t.Error("held jump pressed again")
	}
	s.applyInput(entity, messages.PlayerInput{Sequence: 7})
	s.applyInput(entity, messages.PlayerInput{Sequence: 8, Jump: true})
	if !in.JumpPressed {
		t.Error("new jump press not latched")
	}
}

func TestInputMovesPlayer(t *testing.T) {
	s := testServer(Options{})
	player := s.addPlayer("")
	ticks(s, 60)
	start := components.Position.Get(player).X

	s.queue(func(s *Server) {
		s.applyInput(player.Entity(), messages.PlayerInput{Sequence: 1, Direction: 1})
	})
	ticks(s, 30)

	if got := components.Position.Get(player).X; got <= start {
		t.Errorf("x = %v after moving right from %v", got, start)
	}
	if got := netcomponents.NetContacts.Get(player).InputSeq; got != 1 {
		t.Errorf("InputSeq = %d, want 1", got)
	}
}

func TestRemovePlayerLandsBetweenTicks(t *testing.T) {
	s := testServer(Options{})
	player := s.addPlayer("")
	entity := player.Entity()
	ticks(s, 1)

	s.removePlayer(entity)
	if !s.world.Valid(entity) {
		t.Fatal("player removed before the next tick")
	}
	ticks(s, 1)
	if s.world.Valid(entity) {
		t.Error("player still present after the tick")
	}
}

func TestCheckJoin(t *testing.T) {
	s := testServer(Options{Version: "1.0", MaxPlayers: 1})

	tests := []struct {
		name   string
		req    messages.JoinRequest
		fill   bool
		reject bool
	}{
		{"accepted", messages.JoinRequest{Version: "1.0"}, false, false},
		{"version mismatch", messages.JoinRequest{Version: "0.9"}, false, true},
		{"full", messages.JoinRequest{Version: "1.0"}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.fill {
				s.clientEntities[&router.NetworkClient{}] = s.addPlayer("").Entity()
			}
			reason := s.checkJoin(tt.req)
			if (reason != "") != tt.reject {
				t.Errorf("checkJoin = %q, reject = %v", reason, tt.reject)
			}
		})
	}
}

func TestProcessCommandsRunsInOrder(t *testing.T) {
	s := testServer(Options{})
	var got []int
	for i := 0; i < 3; i++ {
		s.queue(func(*Server) { got = append(got, i) })
	}
	s.ProcessCommands()
	if len(got) != 3 || got[0] != 0 || got[2] != 2 {
		t.Errorf("commands ran as %v", got)
	}
	s.ProcessCommands()
	if len(got) != 3 {
		t.Error("commands ran twice")
	}
}

func TestLoopCountsTicks(t *testing.T) {
	s := testServer(Options{})
	ticks(s, 3)
	if s.loop.ticks != 3 {
		t.Errorf("ticks = %d, want 3", s.loop.ticks)
	}
	if s.loop.step != time.Second/60 {
		t.Errorf("step = %v, want 1/60s", s.loop.step)
	}
}
