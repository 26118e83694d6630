package actuator

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/teslashibe/go-headlink/pkg/stream"
	"github.com/teslashibe/go-headlink/pkg/wire"
)

// syncJoints is a thread-safe command recorder for cross-goroutine tests.
type syncJoints struct {
	mu    sync.Mutex
	calls []struct {
		joint   string
		degrees float64
	}
}

func (s *syncJoints) SetJointPosition(joint string, degrees float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, struct {
		joint   string
		degrees float64
	}{joint, degrees})
	return nil
}

func (s *syncJoints) snapshot() []struct {
	joint   string
	degrees float64
} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(s.calls[:0:0], s.calls...)
}

// TestEndToEnd_PoseDatagramToJointCommands sends a real UDP datagram
// through the blocking receive loop and verifies both joint commands come
// out the other side.
func TestEndToEnd_PoseDatagramToJointCommands(t *testing.T) {
	listener, err := stream.Open(stream.Config{Addr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	joints := &syncJoints{}
	adapter := NewAdapter(joints, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		listener.Run(ctx, adapter.HandleDatagram)
		close(done)
	}()

	conn, err := net.Dial("udp", listener.LocalAddr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	raw, _ := wire.PoseSample{Pan: 45.0, Tilt: -20.0}.MarshalBinary()
	if _, err := conn.Write(raw); err != nil {
		t.Fatalf("send: %v", err)
	}

	// Both commands should land well within one scheduling tick, but
	// give the loop generous slack on loaded CI machines.
	deadline := time.Now().Add(2 * time.Second)
	for {
		if calls := joints.snapshot(); len(calls) >= 2 {
			if calls[0].joint != "head_pan" || calls[0].degrees != 45.0 {
				t.Errorf("pan command: got %+v, want head_pan=45", calls[0])
			}
			if calls[1].joint != "head_tilt" || calls[1].degrees != -20.0 {
				t.Errorf("tilt command: got %+v, want head_tilt=-20", calls[1])
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("joint commands not observed: %+v", joints.snapshot())
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Error("receive loop did not stop after cancellation")
	}
}
