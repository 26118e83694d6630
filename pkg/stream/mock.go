package stream

import (
	"net"
	"time"
)

// MockSocket implements Socket for testing receive loops without a network.
// When its packet queue is exhausted it simulates read timeouts, matching
// the behaviour of a deadline-polled idle socket.
type MockSocket struct {
	// Packets are returned from ReadFromUDP in order.
	Packets [][]byte
	// ReadErr, if set, is returned by the next ReadFromUDP call and then
	// cleared.
	ReadErr error
	// Closed reports whether Close was called.
	Closed bool

	readIndex int
}

// NewMockSocket queues the given packets for reading.
func NewMockSocket(packets ...[]byte) *MockSocket {
	return &MockSocket{Packets: packets}
}

func (m *MockSocket) ReadFromUDP(b []byte) (int, *net.UDPAddr, error) {
	if m.Closed {
		return 0, nil, net.ErrClosed
	}
	if m.ReadErr != nil {
		err := m.ReadErr
		m.ReadErr = nil
		return 0, nil, err
	}
	if m.readIndex >= len(m.Packets) {
		return 0, nil, &net.OpError{Op: "read", Net: "udp", Err: timeoutError{}}
	}
	pkt := m.Packets[m.readIndex]
	m.readIndex++
	return copy(b, pkt), &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)}, nil
}

func (m *MockSocket) SetReadBuffer(bytes int) error     { return nil }
func (m *MockSocket) SetReadDeadline(t time.Time) error { return nil }

func (m *MockSocket) Close() error {
	m.Closed = true
	return nil
}

func (m *MockSocket) LocalAddr() net.Addr {
	return &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 65432}
}

// timeoutError implements net.Error for timeout simulation.
type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }
