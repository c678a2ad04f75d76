package probe

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/j-keck/arping"
)

type macResolver interface {
	MAC(ctx context.Context, host string) (string, error)
}

// arpResolver learns MAC addresses with ARP requests. Only hosts on a
// directly attached IPv4 network answer.
type arpResolver struct{}

func newARPResolver(timeout time.Duration) *arpResolver {
	arping.SetTimeout(timeout)
	return &arpResolver{}
}

func (arpResolver) MAC(ctx context.Context, host string) (string, error) {
	ip, err := resolveIPv4(ctx, host)
	if err != nil {
		return "", err
	}
	mac, _, err := arping.Ping(ip)
	if err != nil {
		return "", fmt.Errorf("arping failed: %w", err)
	}
	return mac.String(), nil
}

func resolveIPv4(ctx context.Context, host string) (net.IP, error) {
	if ip := net.ParseIP(host); ip != nil {
		if v4 := ip.To4(); v4 != nil {
			return v4, nil
		}
		return nil, fmt.Errorf("%s is not an IPv4 address", host)
	}
	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", host, err)
	}
	for _, a := range addrs {
		if v4 := a.IP.To4(); v4 != nil {
			return v4, nil
		}
	}
	return nil, fmt.Errorf("%s has no IPv4 address", host)
}
