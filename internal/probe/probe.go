// Package probe periodically checks the reachability of managed elements
// and feeds the outcome back into the inventory.
package probe

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/martinsuchenak/netinv/internal/config"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/model"
)

// Inventory is the subset of the element manager the prober works with
type Inventory interface {
	ListElements(ctx context.Context, filter *model.ElementFilter) ([]model.Element, error)
	UpdateOperationalState(ctx context.Context, ref string, state model.OperationalState) error
	FillManagementMAC(ctx context.Context, id, mac string) (bool, error)
}

// Prober runs reachability checks against element management interfaces
type Prober struct {
	inv     Inventory
	cfg     config.ProbeConfig
	results *ResultStore

	ping pinger
	dial dialer
	arp  macResolver // nil unless ARP lookups are enabled
}

// New creates a prober. ICMP falls back to a TCP connect on the management port.
func New(inv Inventory, cfg config.ProbeConfig) (*Prober, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	results, err := NewResultStore()
	if err != nil {
		return nil, err
	}
	p := &Prober{
		inv:     inv,
		cfg:     cfg,
		results: results,
		ping:    newICMPPinger(),
		dial:    tcpDialer{},
	}
	if cfg.ARP {
		p.arp = newARPResolver(cfg.Timeout)
	}
	return p, nil
}

// Results returns the latest probe results.
func (p *Prober) Results(reachable *bool) ([]Result, error) {
	return p.results.Results(reachable)
}

// Run probes all elements every interval until ctx is cancelled.
func (p *Prober) Run(ctx context.Context) {
	log.Info("Starting element probe", "interval", p.cfg.Interval, "concurrency", p.cfg.Concurrency, "arp", p.cfg.ARP)
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		if err := p.RunOnce(ctx); err != nil && ctx.Err() == nil {
			log.Error("Element probe failed", "error", err)
		}
		select {
		case <-ctx.Done():
			log.Info("Element probe stopped")
			return
		case <-ticker.C:
		}
	}
}

type target struct {
	element  model.Element
	hostname string
	protocol string
	port     int
}

// targetOf returns the first management interface with a hostname.
func targetOf(e model.Element) (target, bool) {
	for _, mi := range e.ManagementInterfaces {
		if strings.TrimSpace(mi.Hostname) == "" {
			continue
		}
		return target{
			element:  e,
			hostname: mi.Hostname,
			protocol: mi.Protocol,
			port:     managementPort(mi.Protocol, mi.Port),
		}, true
	}
	return target{}, false
}

// RunOnce probes every element that is not retired and has a management
// hostname, then records the results.
func (p *Prober) RunOnce(ctx context.Context) error {
	ctx, span := otel.Tracer("github.com/martinsuchenak/netinv/internal/probe").Start(ctx, "probe.run")
	defer span.End()

	elements, err := p.inv.ListElements(ctx, &model.ElementFilter{})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list elements")
		return err
	}
	var targets []target
	for _, e := range elements {
		if e.AdministrativeState == model.AdmRetired {
			continue
		}
		if t, ok := targetOf(e); ok {
			targets = append(targets, t)
		}
	}
	span.SetAttributes(attribute.Int("probe.targets", len(targets)))
	log.Debug("Probing elements", "targets", len(targets))

	results := make([]Result, len(targets))
	sem := make(chan struct{}, p.cfg.Concurrency)
	var wg sync.WaitGroup
	for i, t := range targets {
		wg.Add(1)
		go func(i int, t target) {
			defer wg.Done()

			// Acquire semaphore slot
			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = p.check(ctx, t)
		}(i, t)
	}
	wg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err := p.results.Put(results); err != nil {
		return err
	}

	reachable := 0
	for i, r := range results {
		if r.Reachable {
			reachable++
		}
		p.apply(ctx, targets[i].element, r)
	}
	span.SetAttributes(attribute.Int("probe.reachable", reachable))
	log.Info("Element probe completed", "targets", len(targets), "reachable", reachable)
	return nil
}

// check probes one target: ICMP first, then TCP, then an optional ARP lookup.
func (p *Prober) check(ctx context.Context, t target) Result {
	r := Result{
		ElementID:   t.element.ID,
		ElementName: t.element.Name,
		Hostname:    t.hostname,
	}

	alive, rtt, err := p.ping.Ping(ctx, t.hostname, p.cfg.Timeout)
	if err != nil {
		log.Debug("Ping failed", "element_name", t.element.Name, "hostname", t.hostname, "error", err)
		r.Error = err.Error()
	}
	if alive {
		r.Reachable, r.Method, r.RTT = true, "icmp", rtt
	} else if ok, rtt := p.dial.Dial(ctx, t.hostname, t.port, p.cfg.Timeout); ok {
		r.Reachable, r.Method, r.RTT = true, "tcp", rtt
		r.Error = ""
	}

	if r.Reachable && p.arp != nil {
		if mac, err := p.arp.MAC(ctx, t.hostname); err == nil {
			r.MAC = mac
		} else {
			log.Debug("ARP lookup failed", "element_name", t.element.Name, "hostname", t.hostname, "error", err)
		}
	}
	r.CheckedAt = time.Now().UTC()
	return r
}

// apply updates the operational state of elements not under maintenance and
// fills an unknown management MAC.
func (p *Prober) apply(ctx context.Context, e model.Element, r Result) {
	state := model.OpDown
	if r.Reachable {
		state = model.OpUp
	}
	if e.OperationalState != model.OpMaintenance && e.OperationalState != state {
		if err := p.inv.UpdateOperationalState(ctx, e.ID, state); err != nil {
			log.Warn("Failed to update operational state", "element_id", e.ID, "state", state, "error", err)
		}
	}
	if r.MAC != "" && e.ManagementMAC == "" {
		if _, err := p.inv.FillManagementMAC(ctx, e.ID, r.MAC); err != nil {
			log.Warn("Failed to record management MAC", "element_id", e.ID, "mac", r.MAC, "error", err)
		}
	}
}
