// Package core is the headless game server. One donburi world runs the same
// gameplay and collision pipeline as the desktop build; every connected
// client owns one player body whose state is synced with necs.
package core

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/boxcollide/bullettime"
	"github.com/automoto/boxcollide/components"
	"github.com/automoto/boxcollide/game"
	"github.com/automoto/boxcollide/shared/leveldata"
	"github.com/automoto/boxcollide/shared/messages"
	"github.com/automoto/boxcollide/shared/netcomponents"
	"github.com/automoto/boxcollide/systems/factory"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Options configures a Server.
type Options struct {
	Name       string
	Version    string // required client version, empty accepts any
	TickRate   int
	MaxPlayers int
}

// Server manages the game state and client connections
type Server struct {
	opts      Options
	world     donburi.World
	physics   *game.Physics
	level     *leveldata.Level
	loop      *GameLoop
	transport *transports.WsServerTransport

	// Router callbacks run on transport goroutines; they only queue
	// commands. The world is touched by the loop goroutine alone.
	commands []command
	cmdMu    sync.Mutex

	// Track which network client owns which entity
	clientEntities map[*router.NetworkClient]donburi.Entity
	joined         int
	mu             sync.RWMutex
}

type command func(s *Server)

// NewServer creates a new game server running lvl.
func NewServer(lvl *leveldata.Level, opts Options) *Server {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	world := donburi.NewWorld()

	s := &Server{
		opts:           opts,
		world:          world,
		physics:        game.NewPhysics(bullettime.New[components.TimeClass]()),
		level:          lvl,
		clientEntities: make(map[*router.NetworkClient]donburi.Entity),
	}
	s.loop = NewGameLoop(s, opts.TickRate)

	factory.CreateLevel(world, lvl)

	// Set up the world for esync
	srvsync.UseEsync(world)

	return s
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	s.setupRouterCallbacks()

	// Start game loop
	go s.loop.Run()

	// Create and start WebSocket transport
	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("[server] client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		if err != nil {
			log.Printf("[server] client %s disconnected with error: %v", client.Id(), err)
		} else {
			log.Printf("[server] client %s disconnected", client.Id())
		}
		s.queue(func(s *Server) { s.removeClient(client) })
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		s.queue(func(s *Server) { s.onJoin(client, req) })
	})

	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		s.queue(func(s *Server) { s.onPlayerInput(client, input) })
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[server] client error: %v", err)
	})
}

func (s *Server) queue(cmd command) {
	s.cmdMu.Lock()
	s.commands = append(s.commands, cmd)
	s.cmdMu.Unlock()
}

// ProcessCommands runs every queued command. Called by the loop at the start
// of each tick.
func (s *Server) ProcessCommands() {
	s.cmdMu.Lock()
	cmds := s.commands
	s.commands = nil
	s.cmdMu.Unlock()

	for _, cmd := range cmds {
		cmd(s)
	}
}

// checkJoin returns why a join must be refused, or "" to accept it.
func (s *Server) checkJoin(req messages.JoinRequest) string {
	if s.opts.Version != "" && req.Version != s.opts.Version {
		return fmt.Sprintf("version mismatch: server requires %q", s.opts.Version)
	}
	if s.opts.MaxPlayers > 0 && s.PlayerCount() >= s.opts.MaxPlayers {
		return "server is full"
	}
	return ""
}

func (s *Server) onJoin(client *router.NetworkClient, req messages.JoinRequest) {
	s.mu.RLock()
	_, already := s.clientEntities[client]
	s.mu.RUnlock()
	if already {
		return
	}

	if reason := s.checkJoin(req); reason != "" {
		log.Printf("[server] rejected %s: %s", client.Id(), reason)
		if err := client.SendMessage(messages.JoinRejected{Reason: reason}); err != nil {
			log.Printf("[server] send rejection: %v", err)
		}
		return
	}

	entry := s.addPlayer(req.PlayerName)

	s.mu.Lock()
	s.clientEntities[client] = entry.Entity()
	s.mu.Unlock()

	if err := client.SendMessage(messages.JoinAccepted{
		PlayerID:   components.Persistent.Get(entry).ID,
		ServerName: s.opts.Name,
		Level:      s.level.Name,
		TickRate:   s.opts.TickRate,
	}); err != nil {
		log.Printf("[server] send join accepted: %v", err)
	}
}

// addPlayer creates a synced player body at the next spawn point.
func (s *Server) addPlayer(name string) *donburi.Entry {
	s.mu.Lock()
	n := s.joined
	s.joined++
	s.mu.Unlock()

	var sp leveldata.SpawnPoint
	if len(s.level.Spawns) > 0 {
		sp = s.level.Spawns[n%len(s.level.Spawns)]
	}
	id := fmt.Sprintf("player-%d", n)
	entry := factory.CreatePlayer(s.world, id, sp.X, sp.Y,
		netcomponents.NetPosition,
		netcomponents.NetVelocity,
		netcomponents.NetContacts,
		netcomponents.NetPlayer,
	)
	if name == "" {
		name = id
	}
	netcomponents.NetPlayer.SetValue(entry, netcomponents.NetPlayerData{ID: id, Name: name})
	copyToNet(entry, s.physics)

	entity := entry.Entity()
	// Mark entity for network sync with interpolation for position
	if err := srvsync.NetworkSync(s.world, &entity,
		srvsync.WithInterp(netcomponents.NetPosition, netcomponents.NetVelocity),
		netcomponents.NetContacts,
		netcomponents.NetPlayer,
	); err != nil {
		log.Printf("[server] Failed to setup network sync for %s: %v", id, err)
	}

	log.Printf("[server] spawned %s (%s) at %.0f,%.0f", id, name, sp.X, sp.Y)
	return entry
}

func (s *Server) removeClient(client *router.NetworkClient) {
	s.mu.Lock()
	entity, exists := s.clientEntities[client]
	if exists {
		delete(s.clientEntities, client)
	}
	s.mu.Unlock()

	if exists {
		s.removePlayer(entity)
	}
}

// removePlayer despawns a body through the pipeline's command queue so the
// removal lands between ticks.
func (s *Server) removePlayer(entity donburi.Entity) {
	s.physics.Commands.Despawn(entity)
}

func (s *Server) onPlayerInput(client *router.NetworkClient, input messages.PlayerInput) {
	s.mu.RLock()
	entity, exists := s.clientEntities[client]
	s.mu.RUnlock()

	if !exists {
		return
	}
	s.applyInput(entity, input)
}

// applyInput stores the latest input on the body. Stale or duplicate
// sequences are dropped; the jump press is latched until the next tick
// consumes it.
func (s *Server) applyInput(entity donburi.Entity, input messages.PlayerInput) {
	if !s.world.Valid(entity) {
		return
	}
	entry := s.world.Entry(entity)
	in := components.PlayerInput.Get(entry)
	if input.Sequence != 0 && input.Sequence <= in.Sequence {
		return
	}

	if input.Jump && !in.Jump {
		in.JumpPressed = true
	}
	in.Direction = input.Direction
	in.Jump = input.Jump
	in.Sequence = input.Sequence
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of connected players
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clientEntities)
}
