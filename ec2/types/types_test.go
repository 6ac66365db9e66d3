package types

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yairfalse/ec2model/pkg/enum"
	"github.com/yairfalse/ec2model/pkg/shape"
)

func TestParseTransitGatewayRouteState(t *testing.T) {
	want := []TransitGatewayRouteState{
		TransitGatewayRouteStatePending,
		TransitGatewayRouteStateActive,
		TransitGatewayRouteStateBlackhole,
		TransitGatewayRouteStateDeleting,
		TransitGatewayRouteStateDeleted,
	}
	assert.Equal(t, want, TransitGatewayRouteState("").Values())

	for _, v := range want {
		t.Run(v.String(), func(t *testing.T) {
			got, err := ParseTransitGatewayRouteState(v.String())
			require.NoError(t, err)
			assert.Equal(t, v, got)
		})
	}

	tests := []struct {
		name  string
		input string
	}{
		{"wrong case", "ACTIVE"},
		{"empty", ""},
		{"unknown", "available"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTransitGatewayRouteState(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, enum.ErrUnrecognizedValue))
		})
	}
}

func TestEnumWireValues(t *testing.T) {
	assert.Equal(t, "client-vpn-endpoint", ResourceTypeClientVpnEndpoint.String())
	assert.Equal(t, "shutting-down", string(InstanceStateNameShuttingDown))
	assert.Equal(t, "VMDK", string(DiskImageFormatVmdk))
	assert.Equal(t, "gp3", string(VolumeTypeGp3))
}

func TestEnumsRegistry(t *testing.T) {
	names := Enums().Names()
	assert.Contains(t, names, "ResourceType")
	assert.Contains(t, names, "VolumeType")

	for _, name := range names {
		l, ok := Enums().Get(name)
		require.True(t, ok, name)
		require.NotEmpty(t, l.Strings(), name)
		for _, s := range l.Strings() {
			got, err := Enums().Parse(name, s)
			require.NoError(t, err, "%s %q", name, s)
			assert.Equal(t, s, got)
		}
	}

	_, err := Enums().Parse("VolumeType", "GP3")
	assert.ErrorIs(t, err, enum.ErrUnrecognizedValue)

	var unknown *enum.UnknownEnumError
	_, err = Enums().Parse("NoSuchEnum", "x")
	assert.ErrorAs(t, err, &unknown)
}

func TestShapeRegistry(t *testing.T) {
	s, ok := shape.New("Volume")
	require.True(t, ok)
	assert.Equal(t, "Volume", s.ShapeName())
	assert.IsType(t, &Volume{}, s)

	_, ok = shape.New("Nope")
	assert.False(t, ok)
}

func TestTag_Hash(t *testing.T) {
	// 31*(31*1 + 'k') + 0
	assert.Equal(t, int32(4278), new(Tag).WithKey("k").Hash())
	assert.Equal(t, int32(0), (*Tag)(nil).Hash())
	assert.Equal(t, int32(31*31), new(Tag).Hash())
}

func TestFilter_String(t *testing.T) {
	tests := []struct {
		name   string
		filter *Filter
		want   string
	}{
		{"empty", &Filter{}, "{}"},
		{"name only", new(Filter).WithName("tag:env"), "{Name: tag:env}"},
		{"values", NewFilter("volume-type", "gp2", "gp3"), "{Name: volume-type,Values: [gp2, gp3]}"},
		{"empty values", new(Filter).WithValues(), "{Values: []}"},
		{"nil", nil, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.String())
		})
	}
}

func TestFilter_UnsetListDiffersFromEmpty(t *testing.T) {
	unset := new(Filter).WithName("a")
	empty := new(Filter).WithName("a")
	empty.SetValues([]string{})

	assert.False(t, unset.HasValues())
	assert.True(t, empty.HasValues())
	assert.False(t, unset.Equal(empty))
	assert.NotEqual(t, unset.Hash(), empty.Hash())

	empty.SetValues(nil)
	assert.True(t, unset.Equal(empty))
}

func TestVolume_EqualHashClone(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	v := new(Volume).
		WithVolumeId("vol-1234").
		WithSize(100).
		WithEncrypted(true).
		WithCreateTime(created).
		WithState(VolumeStateInUse).
		WithVolumeType(VolumeTypeGp3).
		WithTags(NewTag("env", "prod")).
		WithAttachments(new(VolumeAttachment).WithInstanceId("i-1").WithState(VolumeAttachmentStateAttached))

	c := v.Clone()
	assert.True(t, v.Equal(c))
	assert.True(t, c.Equal(v))
	assert.Equal(t, v.Hash(), c.Hash())
	assert.Equal(t, v.String(), c.String())

	c.WithTags(NewTag("team", "storage"))
	assert.Len(t, v.Tags(), 1)
	assert.False(t, v.Equal(c))

	other := v.Clone().WithSize(200)
	assert.False(t, v.Equal(other))

	sameInstant := v.Clone().WithCreateTime(created.In(time.FixedZone("CET", 3600)))
	assert.True(t, v.Equal(sameInstant))
	assert.Equal(t, v.Hash(), sameInstant.Hash())
}

func TestVolume_String(t *testing.T) {
	v := new(Volume).
		WithVolumeId("vol-1234").
		WithCreateTime(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)).
		WithState(VolumeStateAvailable).
		WithTags(NewTag("env", "prod"))

	assert.Equal(t,
		"{CreateTime: 2024-03-01T12:00:00Z,State: available,Tags: [{Key: env,Value: prod}],VolumeId: vol-1234}",
		v.String())
}

func TestClientVpnEndpoint_NestedStatus(t *testing.T) {
	a := new(ClientVpnEndpoint).
		WithClientVpnEndpointId("cvpn-endpoint-1").
		WithStatus(new(ClientVpnEndpointStatus).WithCode(ClientVpnEndpointStatusCodeAvailable)).
		WithDnsServers("10.0.0.2").
		WithVpnPort(443)
	b := a.Clone()

	assert.True(t, a.Equal(b))
	assert.Contains(t, a.String(), "Status: {Code: available}")
	assert.Contains(t, a.String(), "DnsServers: [10.0.0.2]")

	b.SetStatus(new(ClientVpnEndpointStatus).WithCode(ClientVpnEndpointStatusCodeDeleting))
	assert.False(t, a.Equal(b))

	b.SetStatus(nil)
	assert.False(t, a.Equal(b))
	assert.NotContains(t, b.String(), "Status")
}

func TestSetters_CopyLists(t *testing.T) {
	ids := []string{"sg-1", "sg-2"}
	e := new(ClientVpnEndpoint)
	e.SetSecurityGroupIds(ids)
	ids[0] = "mutated"

	assert.Equal(t, []string{"sg-1", "sg-2"}, e.SecurityGroupIds())
}

func TestHelpers(t *testing.T) {
	tag := NewTag("Name", "web")
	assert.Equal(t, "Name", *tag.Key())
	assert.Equal(t, "web", *tag.Value())

	spec := NewTagSpecification(ResourceTypeVolume, tag)
	assert.Equal(t, ResourceTypeVolume, spec.ResourceType())
	assert.Equal(t, "{ResourceType: volume,Tags: [{Key: Name,Value: web}]}", spec.String())

	m := TagsToMap([]*Tag{
		NewTag("a", "1"),
		new(Tag).WithValue("no key"),
		new(Tag).WithKey("b"),
		nil,
		NewTag("a", "2"),
	})
	assert.Equal(t, map[string]string{"a": "2", "b": ""}, m)
}
