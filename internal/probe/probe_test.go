package probe

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinsuchenak/netinv/internal/config"
	"github.com/martinsuchenak/netinv/internal/model"
)

type fakeInventory struct {
	mu       sync.Mutex
	elements []model.Element
	states   map[string]model.OperationalState
	macs     map[string]string
}

func (f *fakeInventory) ListElements(ctx context.Context, filter *model.ElementFilter) ([]model.Element, error) {
	return f.elements, nil
}

func (f *fakeInventory) UpdateOperationalState(ctx context.Context, ref string, state model.OperationalState) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states[ref] = state
	return nil
}

func (f *fakeInventory) FillManagementMAC(ctx context.Context, id, mac string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.macs[id] = mac
	return true, nil
}

// fakeNet answers for the hosts in the maps and fails for all others.
type fakeNet struct {
	icmp map[string]bool
	tcp  map[string]bool
	mac  map[string]string
}

func (n fakeNet) Ping(ctx context.Context, host string, timeout time.Duration) (bool, time.Duration, error) {
	if n.icmp[host] {
		return true, time.Millisecond, nil
	}
	return false, 0, nil
}

func (n fakeNet) Dial(ctx context.Context, host string, port int, timeout time.Duration) (bool, time.Duration) {
	return n.tcp[host], 2 * time.Millisecond
}

func (n fakeNet) MAC(ctx context.Context, host string) (string, error) {
	if mac, ok := n.mac[host]; ok {
		return mac, nil
	}
	return "", errors.New("no reply")
}

func element(id, name, host string, adm model.AdministrativeState, op model.OperationalState) model.Element {
	e := model.Element{ID: id, Name: name, AdministrativeState: adm, OperationalState: op}
	if host != "" {
		e.ManagementInterfaces = []model.ManagementInterface{{Name: "SSH", Protocol: "ssh", Hostname: host}}
	}
	return e
}

func newTestProber(t *testing.T, inv Inventory, n fakeNet) *Prober {
	t.Helper()
	p, err := New(inv, config.ProbeConfig{Interval: time.Minute, Timeout: time.Second, Concurrency: 2})
	require.NoError(t, err)
	p.ping, p.dial, p.arp = n, n, n
	return p
}

func TestRunOnce(t *testing.T) {
	inv := &fakeInventory{
		elements: []model.Element{
			element("e1", "leaf1", "10.0.0.1", model.AdmActive, model.OpDown),
			element("e2", "leaf2", "10.0.0.2", model.AdmActive, model.OpDown),
			element("e3", "leaf3", "10.0.0.3", model.AdmActive, model.OpUp),
			element("e4", "leaf4", "10.0.0.4", model.AdmActive, model.OpMaintenance),
			element("e5", "leaf5", "10.0.0.5", model.AdmRetired, model.OpDown),
			element("e6", "leaf6", "", model.AdmActive, model.OpDown),
		},
		states: map[string]model.OperationalState{},
		macs:   map[string]string{},
	}
	n := fakeNet{
		icmp: map[string]bool{"10.0.0.1": true},
		tcp:  map[string]bool{"10.0.0.2": true},
		mac:  map[string]string{"10.0.0.1": "00:11:22:33:44:55"},
	}
	p := newTestProber(t, inv, n)

	require.NoError(t, p.RunOnce(context.Background()))

	assert.Equal(t, map[string]model.OperationalState{
		"e1": model.OpUp,
		"e2": model.OpUp,
		"e3": model.OpDown,
	}, inv.states)
	assert.Equal(t, map[string]string{"e1": "00:11:22:33:44:55"}, inv.macs)

	results, err := p.Results(nil)
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, "leaf1", results[0].ElementName)
	assert.Equal(t, "icmp", results[0].Method)
	assert.Equal(t, "tcp", results[1].Method)
	assert.False(t, results[2].Reachable)

	up := true
	reachable, err := p.Results(&up)
	require.NoError(t, err)
	assert.Len(t, reachable, 2)
}

func TestRunOnceKeepsKnownMAC(t *testing.T) {
	e := element("e1", "leaf1", "10.0.0.1", model.AdmNew, model.OpUp)
	e.ManagementMAC = "aa:bb:cc:dd:ee:ff"
	inv := &fakeInventory{
		elements: []model.Element{e},
		states:   map[string]model.OperationalState{},
		macs:     map[string]string{},
	}
	p := newTestProber(t, inv, fakeNet{
		icmp: map[string]bool{"10.0.0.1": true},
		mac:  map[string]string{"10.0.0.1": "00:11:22:33:44:55"},
	})

	require.NoError(t, p.RunOnce(context.Background()))
	assert.Empty(t, inv.states)
	assert.Empty(t, inv.macs)
}

func TestResultsDropRemovedElements(t *testing.T) {
	inv := &fakeInventory{
		elements: []model.Element{
			element("e1", "leaf1", "10.0.0.1", model.AdmNew, model.OpDown),
			element("e2", "leaf2", "10.0.0.2", model.AdmNew, model.OpDown),
		},
		states: map[string]model.OperationalState{},
		macs:   map[string]string{},
	}
	p := newTestProber(t, inv, fakeNet{})
	require.NoError(t, p.RunOnce(context.Background()))

	inv.elements = inv.elements[:1]
	require.NoError(t, p.RunOnce(context.Background()))

	results, err := p.Results(nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	r, err := p.results.Get("e2")
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestManagementPort(t *testing.T) {
	assert.Equal(t, 2222, managementPort("ssh", 2222))
	assert.Equal(t, 830, managementPort("NETCONF", 0))
	assert.Equal(t, 22, managementPort("", 0))
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(&fakeInventory{}, config.ProbeConfig{Interval: time.Minute, Timeout: time.Second})
	assert.Error(t, err)
}
