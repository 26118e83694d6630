package actuator

import (
	"errors"
	"testing"

	"github.com/teslashibe/go-headlink/pkg/wire"
)

// mockJoints records all commands for testing.
type mockJoints struct {
	calls []struct {
		joint   string
		degrees float64
	}
	failJoint string // commands to this joint return an error
}

func (m *mockJoints) SetJointPosition(joint string, degrees float64) error {
	m.calls = append(m.calls, struct {
		joint   string
		degrees float64
	}{joint, degrees})
	if joint == m.failJoint {
		return errors.New("servo fault")
	}
	return nil
}

func TestAdapter_IssuesTwoCommands(t *testing.T) {
	mock := &mockJoints{}
	a := NewAdapter(mock, DefaultConfig())

	raw, _ := wire.PoseSample{Pan: 45.0, Tilt: -20.0}.MarshalBinary()
	a.HandleDatagram(raw)

	if len(mock.calls) != 2 {
		t.Fatalf("commands: got %d, want 2", len(mock.calls))
	}
	if mock.calls[0].joint != "head_pan" || mock.calls[0].degrees != 45.0 {
		t.Errorf("pan command: got %+v, want head_pan=45", mock.calls[0])
	}
	if mock.calls[1].joint != "head_tilt" || mock.calls[1].degrees != -20.0 {
		t.Errorf("tilt command: got %+v, want head_tilt=-20", mock.calls[1])
	}
}

func TestAdapter_MalformedDatagramDropped(t *testing.T) {
	mock := &mockJoints{}
	a := NewAdapter(mock, DefaultConfig())

	raw, _ := wire.PoseSample{Pan: 10, Tilt: 5}.MarshalBinary()
	a.HandleDatagram(raw)

	// A short datagram must neither command joints nor disturb the
	// held state.
	a.HandleDatagram(raw[:7])

	if len(mock.calls) != 2 {
		t.Fatalf("commands after bad datagram: got %d, want 2", len(mock.calls))
	}
	cur, ok := a.Current()
	if !ok || cur.Pan != 10 || cur.Tilt != 5 {
		t.Errorf("state after bad datagram: got %+v ok=%v, want {10 5} true", cur, ok)
	}
}

func TestAdapter_FailedPanStillSendsTilt(t *testing.T) {
	mock := &mockJoints{failJoint: "head_pan"}
	a := NewAdapter(mock, DefaultConfig())

	a.Apply(wire.PoseSample{Pan: 1, Tilt: 2})

	if len(mock.calls) != 2 {
		t.Fatalf("commands: got %d, want 2 (tilt must follow failed pan)", len(mock.calls))
	}
	if mock.calls[1].joint != "head_tilt" {
		t.Errorf("second command: got %q, want head_tilt", mock.calls[1].joint)
	}
}

func TestAdapter_CustomJointNames(t *testing.T) {
	mock := &mockJoints{}
	a := NewAdapter(mock, Config{PanJoint: "head_0", TiltJoint: "head_1"})

	a.Apply(wire.PoseSample{Pan: 3, Tilt: 4})

	if mock.calls[0].joint != "head_0" || mock.calls[1].joint != "head_1" {
		t.Errorf("joints: got %q/%q, want head_0/head_1",
			mock.calls[0].joint, mock.calls[1].joint)
	}
}

func TestAdapter_Limits(t *testing.T) {
	mock := &mockJoints{}
	cfg := DefaultConfig()
	cfg.Limits = &Limits{MaxPan: 40, MaxTilt: 30}
	a := NewAdapter(mock, cfg)

	a.Apply(wire.PoseSample{Pan: 90, Tilt: -45})

	if mock.calls[0].degrees != 40 {
		t.Errorf("clamped pan: got %v, want 40", mock.calls[0].degrees)
	}
	if mock.calls[1].degrees != -30 {
		t.Errorf("clamped tilt: got %v, want -30", mock.calls[1].degrees)
	}
}

func TestLimits_PassThroughInsideRange(t *testing.T) {
	l := Limits{MaxPan: 90, MaxTilt: 90}
	s := l.Clamp(wire.PoseSample{Pan: 12.5, Tilt: -7.25})
	if s.Pan != 12.5 || s.Tilt != -7.25 {
		t.Errorf("got %+v, want unchanged", s)
	}
}
