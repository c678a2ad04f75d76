package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBandwidth(t *testing.T) {
	bw, err := ParseBandwidth("10 Gbps")
	require.NoError(t, err)
	assert.Equal(t, Bandwidth{Value: 10, Unit: Gbps}, bw)
	assert.Equal(t, "10.000 Gbps", bw.String())
	assert.Equal(t, 1e10, bw.BitsPerSecond())

	bw, err = ParseBandwidth("100.5 mbps")
	require.NoError(t, err)
	assert.Equal(t, Mbps, bw.Unit)

	for _, in := range []string{"", "10", "ten Gbps", "10 Pbps", "-1 Gbps"} {
		_, err := ParseBandwidth(in)
		assert.Error(t, err, in)
	}
}

func TestBandwidthValid(t *testing.T) {
	assert.True(t, Bandwidth{}.Valid())
	assert.True(t, Bandwidth{Value: 1, Unit: Tbps}.Valid())
	assert.False(t, Bandwidth{Value: 1}.Valid())
	assert.False(t, Bandwidth{Value: 1, Unit: "bps"}.Valid())
}

func TestLinkTo(t *testing.T) {
	ifp := &PhysicalInterface{Name: "ifp-0/0/1"}
	assert.True(t, ifp.LinkTo("e2", "ifp-0/0/2"))
	assert.False(t, ifp.LinkTo("e2", "ifp-0/0/2"))
	assert.True(t, ifp.LinkedTo("e2", "ifp-0/0/2"))
	assert.True(t, ifp.LinkTo("e3", "ifp-0/0/2"))
	assert.False(t, ifp.LinkedTo("e2", "ifp-0/0/2"))
}

func TestVersions(t *testing.T) {
	assert.True(t, ValidVersion("1.0.0"))
	assert.True(t, ValidVersion("v2.1.3-rc1"))
	assert.False(t, ValidVersion(""))
	assert.False(t, ValidVersion("latest"))

	assert.Equal(t, -1, CompareVersions("1.0.0", "1.0.1"))
	assert.Equal(t, 1, CompareVersions("2.0.0", "1.10.0"))
	assert.Equal(t, 0, CompareVersions("v1.0.0", "1.0.0"))
	assert.Equal(t, -1, CompareVersions("1.0.0-rc1", "1.0.0"))
}

func TestImageRoles(t *testing.T) {
	a := &Image{ElementRoles: []string{"spine", "leaf"}}
	b := &Image{ElementRoles: []string{"leaf"}}
	c := &Image{ElementRoles: []string{"border"}}
	assert.True(t, a.HasRole("spine"))
	assert.True(t, a.SharesRole(b))
	assert.False(t, a.SharesRole(c))
}

func TestDnsNames(t *testing.T) {
	assert.True(t, ValidDnsName("leaf1.pod1.example.com."))
	assert.False(t, ValidDnsName("-bad.example.com"))
	assert.False(t, ValidDnsName(""))
	assert.Equal(t, "leaf1.example.com", NormalizeDnsName("Leaf1.Example.com."))
	assert.True(t, InZone("leaf1.example.com", "example.com."))
	assert.True(t, InZone("example.com", "example.com"))
	assert.False(t, InZone("leaf1.badexample.com", "example.com"))
}

func TestStates(t *testing.T) {
	assert.True(t, AdmActive.Valid())
	assert.False(t, AdministrativeState("BROKEN").Valid())
	assert.True(t, OpMaintenance.Valid())
	assert.True(t, ImageSuperseded.Valid())
	assert.False(t, ImageState("").Valid())
	assert.True(t, ElementImageCached.Valid())
	assert.True(t, PlaneControl.Valid())
	assert.True(t, DnsAAAA.Valid())
}

func TestIDs(t *testing.T) {
	id := NewID()
	assert.True(t, ValidID(id))
	assert.NotEqual(t, id, NewID())
	assert.False(t, ValidID("not-an-id"))
	assert.False(t, ValidID(" "))
}
