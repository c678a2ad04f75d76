package probe

import (
	"context"
	"net"
	"strconv"
	"strings"
	"time"
)

type dialer interface {
	Dial(ctx context.Context, host string, port int, timeout time.Duration) (bool, time.Duration)
}

// tcpDialer checks reachability by opening a TCP connection to the management port
type tcpDialer struct{}

func (tcpDialer) Dial(ctx context.Context, host string, port int, timeout time.Duration) (bool, time.Duration) {
	d := net.Dialer{Timeout: timeout}
	start := time.Now()
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return false, 0
	}
	rtt := time.Since(start)
	conn.Close()
	return true, rtt
}

// DefaultPorts maps management protocols to their well-known ports
var DefaultPorts = map[string]int{
	"ssh":     22,
	"telnet":  23,
	"http":    80,
	"https":   443,
	"netconf": 830,
	"gnmi":    9339,
}

// managementPort returns the configured port, else the protocol's well-known port, else SSH.
func managementPort(protocol string, port int) int {
	if port > 0 {
		return port
	}
	if p, ok := DefaultPorts[strings.ToLower(protocol)]; ok {
		return p
	}
	return DefaultPorts["ssh"]
}
