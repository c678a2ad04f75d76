package probe

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/go-ping/ping"
)

type pinger interface {
	Ping(ctx context.Context, host string, timeout time.Duration) (bool, time.Duration, error)
}

// icmpPinger performs ICMP echo checks
type icmpPinger struct {
	privileged bool
}

func newICMPPinger() *icmpPinger {
	// Check if we're running as root or have appropriate permissions
	return &icmpPinger{privileged: os.Geteuid() == 0 || canUseRawSocket()}
}

// Ping sends one echo request and reports whether a reply arrived and its round-trip time.
func (p *icmpPinger) Ping(ctx context.Context, host string, timeout time.Duration) (bool, time.Duration, error) {
	// Without raw socket access the pinger blocks; the caller falls back to TCP
	if !p.privileged {
		return false, 0, nil
	}

	pinger, err := ping.NewPinger(host)
	if err != nil {
		return false, 0, fmt.Errorf("creating pinger: %w", err)
	}
	pinger.Count = 1
	pinger.Timeout = timeout
	pinger.SetPrivileged(true)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pinger.Stop()
		case <-done:
		}
	}()

	if err := pinger.Run(); err != nil {
		return false, 0, fmt.Errorf("ping %s: %w", host, err)
	}
	stats := pinger.Statistics()
	return stats.PacketsRecv > 0, stats.AvgRtt, nil
}

// canUseRawSocket checks if we can use raw sockets
func canUseRawSocket() bool {
	conn, err := net.ListenPacket("ip4:icmp", "0.0.0.0")
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
