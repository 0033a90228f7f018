package netx

import (
	"context"
	"fmt"
	"io"
	"net"
	"sync"
)

// Handler serves one accepted connection. The connection is closed when the
// handler returns; ctx is done when the server is shutting down.
type Handler func(ctx context.Context, conn net.Conn)

// Echo copies every byte a connection sends back to it until the peer
// closes or the server shuts down.
func Echo(ctx context.Context, conn net.Conn) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		io.Copy(conn, conn)
	}()
	select {
	case <-ctx.Done():
	case <-done:
	}
}

// Discard drains and drops everything a connection sends.
func Discard(ctx context.Context, conn net.Conn) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		io.Copy(io.Discard, conn)
	}()
	select {
	case <-ctx.Done():
	case <-done:
	}
}

// Server is a TCP listener that runs a Handler per accepted connection,
// intended as test scaffolding for client code. Construct with NewServer,
// start with Start, and Close when done; Close waits for in-flight handlers.
type Server struct {
	handler Handler

	mu       sync.Mutex
	listener net.Listener
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewServer returns an unstarted server. A nil handler serves Discard.
func NewServer(handler Handler) *Server {
	if handler == nil {
		handler = Discard
	}
	return &Server{handler: handler}
}

// Start binds a localhost listener on an OS-assigned port and begins
// accepting connections. Starting an already started server is an error.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return fmt.Errorf("netx: server already started")
	}
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("netx: start server: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.listener = l
	s.cancel = cancel

	s.wg.Add(1)
	go s.acceptLoop(ctx, l)
	return nil
}

func (s *Server) acceptLoop(ctx context.Context, l net.Listener) {
	defer s.wg.Done()
	for {
		conn, err := l.Accept()
		if err != nil {
			// Accept fails permanently once the listener closes.
			return
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer conn.Close()
			s.handler(ctx, conn)
		}()
	}
}

// Addr returns the listener's address ("127.0.0.1:port"), or "" before
// Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Port returns the bound port, or 0 before Start.
func (s *Server) Port() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return 0
	}
	return s.listener.Addr().(*net.TCPAddr).Port
}

// Close stops accepting, signals running handlers via their context, and
// waits for them to finish. Close is idempotent.
func (s *Server) Close() error {
	s.mu.Lock()
	l := s.listener
	cancel := s.cancel
	s.listener = nil
	s.cancel = nil
	s.mu.Unlock()

	if l == nil {
		return nil
	}
	cancel()
	err := l.Close()
	s.wg.Wait()
	return err
}
