package stream

import (
	"net"
	"time"
)

// Socket is the subset of *net.UDPConn the receive loops need. The
// abstraction lets the loops run against a mock in unit tests without a
// real network.
type Socket interface {
	ReadFromUDP(b []byte) (n int, addr *net.UDPAddr, err error)
	SetReadBuffer(bytes int) error
	SetReadDeadline(t time.Time) error
	Close() error
	LocalAddr() net.Addr
}

// udpSocket wraps *net.UDPConn to implement Socket.
type udpSocket struct {
	conn *net.UDPConn
}

func (s *udpSocket) ReadFromUDP(b []byte) (int, *net.UDPAddr, error) {
	return s.conn.ReadFromUDP(b)
}

func (s *udpSocket) SetReadBuffer(bytes int) error {
	return s.conn.SetReadBuffer(bytes)
}

func (s *udpSocket) SetReadDeadline(t time.Time) error {
	return s.conn.SetReadDeadline(t)
}

func (s *udpSocket) Close() error {
	return s.conn.Close()
}

func (s *udpSocket) LocalAddr() net.Addr {
	return s.conn.LocalAddr()
}
