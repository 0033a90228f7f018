// Package netx carries small networking helpers: free-port discovery,
// port-reachability probes, local address lookup, and a TCP test server for
// exercising client code against a real listener.
package netx

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"
)

// FreePort asks the kernel for a currently unused TCP port on localhost.
// The port is released before returning, so another process can in principle
// grab it first; treat it as a strong hint, not a reservation.
func FreePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("netx: find free port: %w", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}

// IsPortOpen reports whether a TCP connection to host:port succeeds within
// timeout. A non-positive timeout uses one second.
func IsPortOpen(host string, port int, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = time.Second
	}
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, strconv.Itoa(port)), timeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// WaitForPort polls addr ("host:port") until a TCP connection succeeds or
// ctx is done. It retries every 50ms; the error on timeout wraps the
// context's cause.
func WaitForPort(ctx context.Context, addr string) error {
	var d net.Dialer
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err == nil {
			conn.Close()
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("netx: waiting for %s: %w", addr, ctx.Err())
		case <-ticker.C:
		}
	}
}

// LocalIP returns the IPv4 address the host would use to reach the outside
// world. No packets are sent; the UDP "dial" only makes the kernel pick a
// route and a source address.
func LocalIP() (net.IP, error) {
	conn, err := net.Dial("udp4", "8.8.8.8:80")
	if err != nil {
		return nil, fmt.Errorf("netx: determine local address: %w", err)
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP, nil
}
