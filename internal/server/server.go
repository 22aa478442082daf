// Package server streams simulation state to websocket clients. Renderers
// that cannot share the engine's memory get the copy-out form instead:
// snappy-compressed full snapshots, one per simulation tick.
package server

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"lifegrid/internal/life"

	"github.com/golang/snappy"
	"github.com/gorilla/websocket"
)

// Config represents the command-line parameters for the server.
type Config struct {
	Addr   string
	Width  int
	Height int
	TPS    int
	Seed   int64
	Random bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Addr: ":8080", Width: 64, Height: 64, TPS: 10, Seed: 42, Random: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the starting board")
	fs.BoolVar(&c.Random, "random", c.Random, "start from a randomized board")
}

// hello is the first frame sent to every client, so renderers can size
// their buffers before the first snapshot arrives.
type hello struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	Generation int `json:"generation"`
}

// command is a client mutation request.
type command struct {
	Op  string `json:"op"`
	Row int    `json:"row"`
	Col int    `json:"col"`
}

// Server owns one Universe and serializes every access to it behind a
// single mutex; the engine itself does no locking.
type Server struct {
	tps int

	mu  sync.Mutex
	uni *life.Universe

	clientsMu sync.Mutex
	clients   map[*websocket.Conn]bool

	upgrader websocket.Upgrader
}

// New constructs a Server with a freshly built board.
func New(cfg *Config) (*Server, error) {
	uni, err := life.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if cfg.Random {
		uni.Randomize(cfg.Seed)
	}
	return &Server{
		tps:     cfg.TPS,
		uni:     uni,
		clients: map[*websocket.Conn]bool{},
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}, nil
}

// Handler returns the HTTP routes: /ws for rendering clients, / as a
// liveness probe.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "lifegrid server")
	})
	return mux
}

// Run steps the simulation on a fixed tick and broadcasts each new
// generation until the context is canceled. The board only advances
// while someone is connected.
func (s *Server) Run(ctx context.Context) {
	tps := s.tps
	if tps <= 0 {
		tps = 10
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.hasClients() {
				continue
			}
			s.mu.Lock()
			s.uni.Step()
			s.mu.Unlock()
			s.broadcastFrame()
		}
	}
}

// apply executes one client command against the engine.
func (s *Server) apply(cmd command) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch cmd.Op {
	case "toggle":
		s.uni.Toggle(cmd.Row, cmd.Col)
	case "glider":
		s.uni.InsertGlider(cmd.Row, cmd.Col)
	case "pulsar":
		s.uni.InsertPulsar(cmd.Row, cmd.Col)
	case "randomize":
		s.uni.Randomize(time.Now().UnixNano())
	case "clear":
		s.uni.Clear()
	default:
		return fmt.Errorf("unknown op %q", cmd.Op)
	}
	return nil
}

// frame returns the snappy-compressed snapshot of the current board.
func (s *Server) frame() []byte {
	s.mu.Lock()
	snap := s.uni.Snapshot()
	s.mu.Unlock()
	return snappy.Encode(nil, snap)
}

func (s *Server) hasClients() bool {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	return len(s.clients) > 0
}

// broadcastFrame sends the current board to every client, dropping the
// ones that fail.
func (s *Server) broadcastFrame() {
	frame := s.frame()
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			log.Println("dropping client:", err)
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("websocket upgrade:", err)
		return
	}
	defer conn.Close()

	s.mu.Lock()
	greeting := hello{
		Width:      s.uni.Width(),
		Height:     s.uni.Height(),
		Generation: s.uni.Generation(),
	}
	s.mu.Unlock()

	s.clientsMu.Lock()
	if err := conn.WriteJSON(greeting); err == nil {
		err = conn.WriteMessage(websocket.BinaryMessage, s.frame())
	}
	if err != nil {
		s.clientsMu.Unlock()
		log.Println("client handshake:", err)
		return
	}
	s.clients[conn] = true
	s.clientsMu.Unlock()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			s.clientsMu.Lock()
			delete(s.clients, conn)
			s.clientsMu.Unlock()
			return
		}
		var cmd command
		if err := json.Unmarshal(payload, &cmd); err != nil {
			log.Println("bad command:", err)
			continue
		}
		if err := s.apply(cmd); err != nil {
			log.Println("bad command:", err)
			continue
		}
		// Mutations can change an unbounded set of cells the diff does
		// not track, so everyone gets a full snapshot right away.
		s.broadcastFrame()
	}
}
