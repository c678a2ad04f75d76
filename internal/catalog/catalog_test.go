package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinsuchenak/netinv/internal/model"
)

type fakeStore struct {
	mu        sync.Mutex
	platforms map[string]model.Platform
}

func newFakeStore() *fakeStore {
	return &fakeStore{platforms: map[string]model.Platform{}}
}

func (s *fakeStore) StorePlatform(ctx context.Context, p *model.Platform) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.platforms[p.Name]
	s.platforms[p.Name] = *p
	return !exists, nil
}

func (s *fakeStore) get(name string) (model.Platform, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.platforms[name]
	return p, ok
}

const catalogYAML = `
platforms:
  - name: AS7712
    chipset: tomahawk
    vendor: Edgecore
    model: AS7712-32X
    rack_units: 1
  - name: S5248F
    chipset: trident3
`

func TestParse(t *testing.T) {
	platforms, err := Parse([]byte(catalogYAML))
	require.NoError(t, err)
	require.Len(t, platforms, 2)
	assert.Equal(t, model.Platform{
		Name:       "AS7712",
		Chipset:    "tomahawk",
		VendorName: "Edgecore",
		ModelName:  "AS7712-32X",
		RackUnits:  1,
	}, platforms[0])
}

func TestParseRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing name", "platforms:\n  - chipset: tomahawk\n"},
		{"duplicate", "platforms:\n  - name: a\n  - name: a\n"},
		{"bad id", "platforms:\n  - name: a\n    id: nope\n"},
		{"not yaml", "platforms: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platforms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o644))
	store := newFakeStore()
	c := New(path, store)

	created, updated, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, 0, updated)

	created, updated, err = c.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Equal(t, 2, updated)
}

func TestWatchReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platforms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o644))
	store := newFakeStore()
	c := New(path, store)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.watch(ctx, 10*time.Millisecond) }()

	// Give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("platforms:\n  - name: Z9264\n    chipset: tomahawk2\n"), 0o644))

	assert.Eventually(t, func() bool {
		p, ok := store.get("Z9264")
		return ok && p.Chipset == "tomahawk2"
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
