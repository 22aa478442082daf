package server

import (
	"net/http/httptest"
	"strings"
	"testing"

	"lifegrid/internal/life"

	"github.com/golang/snappy"
	"github.com/gorilla/websocket"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := NewConfig()
	cfg.Width, cfg.Height = 16, 16
	cfg.Random = false
	s, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestApplyCommands(t *testing.T) {
	s := newTestServer(t)

	if err := s.apply(command{Op: "toggle", Row: 2, Col: 3}); err != nil {
		t.Fatal(err)
	}
	if s.uni.Cells()[2*16+3] != life.Alive {
		t.Fatal("toggle did not set the cell")
	}

	if err := s.apply(command{Op: "glider", Row: 5, Col: 5}); err != nil {
		t.Fatal(err)
	}
	if s.uni.Population() != 6 {
		t.Fatalf("population %d after toggle+glider, want 6", s.uni.Population())
	}

	if err := s.apply(command{Op: "clear"}); err != nil {
		t.Fatal(err)
	}
	if s.uni.Population() != 0 {
		t.Fatal("clear left live cells behind")
	}

	if err := s.apply(command{Op: "pulsar", Row: 1, Col: 1}); err != nil {
		t.Fatal(err)
	}
	if s.uni.Population() != 48 {
		t.Fatalf("population %d after pulsar, want 48", s.uni.Population())
	}

	if err := s.apply(command{Op: "resize"}); err == nil {
		t.Fatal("unknown op accepted")
	}
}

func TestFrameRoundTrip(t *testing.T) {
	s := newTestServer(t)
	if err := s.apply(command{Op: "glider", Row: 0, Col: 0}); err != nil {
		t.Fatal(err)
	}

	decoded, err := snappy.Decode(nil, s.frame())
	if err != nil {
		t.Fatal(err)
	}
	want := s.uni.Snapshot()
	if len(decoded) != len(want) {
		t.Fatalf("frame length %d, want %d", len(decoded), len(want))
	}
	for i := range want {
		if decoded[i] != want[i] {
			t.Fatalf("frame diverges from snapshot at index %d", i)
		}
	}
}

func TestWebsocketHandshake(t *testing.T) {
	s := newTestServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	var greeting hello
	if err := conn.ReadJSON(&greeting); err != nil {
		t.Fatal(err)
	}
	if greeting.Width != 16 || greeting.Height != 16 || greeting.Generation != 1 {
		t.Fatalf("unexpected greeting %+v", greeting)
	}

	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	board, err := snappy.Decode(nil, payload)
	if err != nil {
		t.Fatal(err)
	}
	if len(board) != greeting.Width*greeting.Height {
		t.Fatalf("snapshot length %d, want %d", len(board), greeting.Width*greeting.Height)
	}

	// A mutation command comes back as a fresh full snapshot.
	if err := conn.WriteJSON(command{Op: "toggle", Row: 1, Col: 1}); err != nil {
		t.Fatal(err)
	}
	_, payload, err = conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	board, err = snappy.Decode(nil, payload)
	if err != nil {
		t.Fatal(err)
	}
	if board[1*16+1] != life.Alive {
		t.Fatal("toggled cell not visible in the rebroadcast snapshot")
	}
}
