package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinsuchenak/netinv/internal/fault"
	"github.com/martinsuchenak/netinv/internal/model"
)

func TestDnsRecordSets(t *testing.T) {
	inv := newTestInventory(t)
	g := fixture(t, inv)
	ctx := context.Background()
	e := storeElement(t, inv, g, "leaf1", "")

	zone := &model.DnsZone{Name: "Example.COM."}
	_, err := inv.Dns.StoreZone(ctx, zone)
	require.NoError(t, err)
	assert.Equal(t, "example.com", zone.Name)

	rs := &model.DnsRecordSet{ZoneName: "example.com", Name: "leaf1.example.com", Type: "a",
		Records: []model.DnsRecord{{Value: "10.0.0.1", SetPTR: true}}}
	created, err := inv.Dns.StoreRecordSet(ctx, e.ID, rs)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, model.DefaultDnsTTL, rs.TTL)
	assert.Equal(t, model.DnsA, rs.Type)
	assert.Equal(t, zone.ID, rs.ZoneID)

	dup := &model.DnsRecordSet{ZoneID: zone.ID, Name: "leaf1.example.com", Type: model.DnsA}
	_, err = inv.Dns.StoreRecordSet(ctx, e.ID, dup)
	requireReason(t, err, fault.IVT0955E_DNS_RECORDSET_ALREADY_EXISTS)

	outside := &model.DnsRecordSet{ZoneID: zone.ID, Name: "leaf1.example.net", Type: model.DnsA}
	_, err = inv.Dns.StoreRecordSet(ctx, e.ID, outside)
	requireReason(t, err, fault.IVT0954E_DNS_NAME_OUTSIDE_ZONE)

	_, err = inv.Dns.StoreRecordSet(ctx, e.ID, &model.DnsRecordSet{ZoneID: zone.ID, Name: "x.example.com", Type: model.DnsA, TTL: -5})
	requireReason(t, err, fault.VAL0001E_INVALID_VALUE)

	requireReason(t, inv.Dns.RemoveZone(ctx, zone.ID), fault.IVT0952E_DNS_ZONE_NOT_EMPTY)

	sets, err := inv.Dns.ListRecordSets(ctx, "leaf1")
	require.NoError(t, err)
	require.Len(t, sets, 1)

	require.NoError(t, inv.Dns.RemoveRecordSet(ctx, rs.ID))
	require.NoError(t, inv.Dns.RemoveZone(ctx, "example.com"))
	_, err = inv.Dns.GetZone(ctx, zone.ID)
	requireReason(t, err, fault.IVT0950E_DNS_ZONE_NOT_FOUND)
}

func TestRemoveElementRemovesRecordSets(t *testing.T) {
	inv := newTestInventory(t)
	g := fixture(t, inv)
	ctx := context.Background()
	e := storeElement(t, inv, g, "leaf1", "")

	_, err := inv.Dns.StoreZone(ctx, &model.DnsZone{Name: "example.com"})
	require.NoError(t, err)
	rs := &model.DnsRecordSet{ZoneName: "example.com", Name: "leaf1.example.com", Type: model.DnsA}
	_, err = inv.Dns.StoreRecordSet(ctx, e.ID, rs)
	require.NoError(t, err)

	require.NoError(t, inv.Elements.RemoveElement(ctx, e.ID))
	_, err = inv.Dns.GetRecordSet(ctx, rs.ID)
	requireReason(t, err, fault.IVT0953E_DNS_RECORDSET_NOT_FOUND)
}

func TestStoreRecordSetKeepsOwner(t *testing.T) {
	inv := newTestInventory(t)
	g := fixture(t, inv)
	ctx := context.Background()
	leaf1 := storeElement(t, inv, g, "leaf1", "")
	leaf2 := storeElement(t, inv, g, "leaf2", "")
	_, err := inv.Dns.StoreZone(ctx, &model.DnsZone{Name: "example.com"})
	require.NoError(t, err)

	rs := &model.DnsRecordSet{ZoneName: "example.com", Name: "leaf1.example.com", Type: model.DnsA,
		Records: []model.DnsRecord{{Value: "10.0.0.1"}}}
	_, err = inv.Dns.StoreRecordSet(ctx, leaf1.ID, rs)
	require.NoError(t, err)

	takeover := &model.DnsRecordSet{ID: rs.ID, ZoneName: "example.com", Name: "leaf1.example.com", Type: model.DnsA,
		Records: []model.DnsRecord{{Value: "10.0.0.2"}}}
	created, err := inv.Dns.StoreRecordSet(ctx, leaf2.ID, takeover)
	requireReason(t, err, fault.IVT0956E_DNS_RECORDSET_OTHER_ELEMENT)
	assert.False(t, created)

	sets, err := inv.Dns.ListRecordSets(ctx, leaf1.ID)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	require.Len(t, sets[0].Records, 1)
	assert.Equal(t, "10.0.0.1", sets[0].Records[0].Value)
	sets, err = inv.Dns.ListRecordSets(ctx, leaf2.ID)
	require.NoError(t, err)
	assert.Empty(t, sets)

	// The owner can still update it.
	rs.TTL = 600
	created, err = inv.Dns.StoreRecordSet(ctx, "leaf1", rs)
	require.NoError(t, err)
	assert.False(t, created)
}
