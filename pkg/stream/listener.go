// Package stream receives headlink datagrams over UDP.
//
// It offers two receive disciplines matching the two consumer roles: a
// blocking loop for the actuator path and a non-blocking poll for the
// render path, where an empty socket is a normal outcome rather than an
// error.
package stream

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/teslashibe/go-headlink/internal/log"
)

// pollInterval bounds how long a blocking read waits before re-checking
// context cancellation.
const pollInterval = 100 * time.Millisecond

// maxDatagram is larger than any headlink datagram; oversized payloads are
// surfaced whole so the decoder can reject them by length.
const maxDatagram = 64

// Config holds listener configuration.
type Config struct {
	// Addr is the UDP bind address, e.g. "0.0.0.0:65432".
	Addr string

	// ReadBuffer is the OS receive buffer size in bytes. Zero keeps the
	// OS default.
	ReadBuffer int
}

// DefaultConfig returns a Config bound to all interfaces on the given port.
func DefaultConfig(port int) Config {
	return Config{Addr: fmt.Sprintf("0.0.0.0:%d", port)}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if _, err := net.ResolveUDPAddr("udp", c.Addr); err != nil {
		return fmt.Errorf("invalid addr %q: %w", c.Addr, err)
	}
	return nil
}

// Listener owns one bound UDP socket. Each consumer role opens its own
// listener; sockets are never shared between roles.
type Listener struct {
	sock Socket
	buf  []byte
}

// Open binds a UDP socket for the given config. A bind failure is fatal to
// the role: it is returned here, before any receive loop starts.
func Open(cfg Config) (*Listener, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	addr, err := net.ResolveUDPAddr("udp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", cfg.Addr, err)
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("bind %q: %w", cfg.Addr, err)
	}
	if cfg.ReadBuffer > 0 {
		if err := conn.SetReadBuffer(cfg.ReadBuffer); err != nil {
			log.Warn("failed to set receive buffer", "bytes", cfg.ReadBuffer, "error", err)
		}
	}
	log.Info("listening", "addr", conn.LocalAddr().String())
	return NewListener(&udpSocket{conn: conn}), nil
}

// NewListener wraps an already-open socket. Used by tests to inject mocks.
func NewListener(sock Socket) *Listener {
	return &Listener{
		sock: sock,
		buf:  make([]byte, maxDatagram),
	}
}

// Run receives datagrams until ctx is cancelled, invoking handle for each.
// The payload passed to handle is only valid for the duration of the call.
//
// Read timeouts are used purely to keep cancellation responsive. Mid-loop
// read errors are logged and the loop continues best-effort; only
// cancellation ends it. The socket is closed on every exit path.
func (l *Listener) Run(ctx context.Context, handle func(data []byte)) error {
	defer l.sock.Close()

	for {
		select {
		case <-ctx.Done():
			log.Info("listener stopping", "addr", l.sock.LocalAddr().String())
			return ctx.Err()
		default:
		}

		l.sock.SetReadDeadline(time.Now().Add(pollInterval))
		n, _, err := l.sock.ReadFromUDP(l.buf)
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Warn("udp read error", "error", err)
			continue
		}
		handle(l.buf[:n])
	}
}

// TryReceive polls the socket once without blocking. An empty socket
// returns ok=false with no error; it is the normal idle outcome for
// tick-driven consumers.
//
// The deadline must sit slightly in the future: an already-expired
// deadline makes the poller fail the read without ever draining the OS
// receive buffer. A queued datagram still returns immediately; an empty
// socket returns within a millisecond.
func (l *Listener) TryReceive() (data []byte, ok bool, err error) {
	l.sock.SetReadDeadline(time.Now().Add(time.Millisecond))
	n, _, err := l.sock.ReadFromUDP(l.buf)
	if err != nil {
		if netErr, isNet := err.(net.Error); isNet && netErr.Timeout() {
			return nil, false, nil
		}
		return nil, false, err
	}
	out := make([]byte, n)
	copy(out, l.buf[:n])
	return out, true, nil
}

// LocalAddr returns the bound address. Useful when binding port 0.
func (l *Listener) LocalAddr() net.Addr {
	return l.sock.LocalAddr()
}

// Close releases the socket. Safe to call after Run has returned.
func (l *Listener) Close() error {
	return l.sock.Close()
}
