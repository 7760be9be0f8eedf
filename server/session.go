package server

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-wireworld/model"
	"github.com/sheikhrachel/go-wireworld/utils"
)

const (
	CommandToggle = "toggle"
	CommandIgnite = "ignite"
	CommandPause  = "pause"
	CommandResume = "resume"
	CommandStep   = "step"

	commandBuffer = 64
)

// Command is an edit or playback request sent by a browser.
type Command struct {
	Type string `json:"type"`
	Row  int64  `json:"row"`
	Col  int64  `json:"col"`
}

// Hello is the first message a client receives. Every message after it is a
// binary frame of Width*Height cell bytes in row-major order.
type Hello struct {
	Type       string `json:"type"`
	Width      uint32 `json:"width"`
	Height     uint32 `json:"height"`
	Generation uint64 `json:"generation"`
	Paused     bool   `json:"paused"`
}

// Session owns a World and is the only goroutine that calls into it. Clients
// talk to it through Submit.
type Session struct {
	world    *model.World
	width    uint32
	height   uint32
	interval time.Duration
	commands chan Command
	hub      *Hub
	logger   *utils.Logger

	generation atomic.Uint64
	paused     atomic.Bool
}

// NewSession wraps world. The world must not be used by anything else once
// the session runs.
func NewSession(world *model.World, interval time.Duration, hub *Hub, log *utils.Logger) *Session {
	s := &Session{
		world:    world,
		width:    world.Width(),
		height:   world.Height(),
		interval: interval,
		commands: make(chan Command, commandBuffer),
		hub:      hub,
		logger:   log,
	}
	s.generation.Store(world.Generation())
	return s
}

// Hello describes the session to a newly connected client.
func (s *Session) Hello() Hello {
	return Hello{
		Type:       "hello",
		Width:      s.width,
		Height:     s.height,
		Generation: s.generation.Load(),
		Paused:     s.paused.Load(),
	}
}

// Generation returns the generation of the last published frame.
func (s *Session) Generation() uint64 {
	return s.generation.Load()
}

// Paused reports whether the session stopped ticking on its own.
func (s *Session) Paused() bool {
	return s.paused.Load()
}

// Validate rejects commands the engine must never see.
func (s *Session) Validate(cmd Command) error {
	switch cmd.Type {
	case CommandToggle, CommandIgnite:
		if cmd.Row < 0 || cmd.Col < 0 || cmd.Row >= int64(s.height) || cmd.Col >= int64(s.width) {
			return errors.Errorf("[Validate] cell (%d, %d) outside %dx%d grid", cmd.Row, cmd.Col, s.width, s.height)
		}
	case CommandPause, CommandResume, CommandStep:
	default:
		return errors.Errorf("[Validate] unknown command type %q", cmd.Type)
	}
	return nil
}

// Submit queues a command for the simulation loop.
func (s *Session) Submit(cmd Command) error {
	if err := s.Validate(cmd); err != nil {
		return err
	}
	select {
	case s.commands <- cmd:
		return nil
	default:
		return errors.Errorf("[Submit] command queue full, dropped %q", cmd.Type)
	}
}

// Run ticks the world every interval, applies queued commands in arrival
// order and broadcasts a frame whenever the grid changes.
func (s *Session) Run(ctx context.Context) {
	s.logger.Info("Session started: %dx%d grid, tick every %v", s.width, s.height, s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.publish(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Session stopped at generation %d", s.world.Generation())
			return
		case cmd := <-s.commands:
			if s.apply(cmd) {
				s.publish(ctx)
			}
		case <-ticker.C:
			if s.paused.Load() {
				continue
			}
			s.world.Tick()
			s.publish(ctx)
		}
	}
}

// apply runs a validated command and reports whether the grid changed.
func (s *Session) apply(cmd Command) bool {
	switch cmd.Type {
	case CommandToggle:
		s.world.ToggleCell(uint32(cmd.Row), uint32(cmd.Col))
		return true
	case CommandIgnite:
		s.world.SetElectronHead(uint32(cmd.Row), uint32(cmd.Col))
		return true
	case CommandStep:
		s.world.Tick()
		return true
	case CommandPause:
		s.paused.Store(true)
	case CommandResume:
		s.paused.Store(false)
	}
	return false
}

func (s *Session) publish(ctx context.Context) {
	s.generation.Store(s.world.Generation())
	frame := s.world.CopyBytes(make([]byte, 0, int(s.width)*int(s.height)))
	s.hub.Broadcast(ctx, frame)
}
