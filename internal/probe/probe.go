// Package probe builds dry-run capable EC2 inputs from flat Key=Value
// parameters, as given on the command line or in the watch config.
//
// Scalar members use their own name (VolumeId=vol-1, Size=100). String
// lists take a comma-separated value (InstanceIds=i-1,i-2). Tags are given
// one per key as Tag.<key>=<value> and filters as
// Filter.<name>=<v1>,<v2>.
package probe

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yairfalse/ec2model/ec2"
	"github.com/yairfalse/ec2model/ec2/types"
	"github.com/yairfalse/ec2model/pkg/request"
)

const (
	tagPrefix    = "Tag."
	filterPrefix = "Filter."
)

type buildFunc func(p *params) request.DryRunSupported

var builders = map[string]buildFunc{
	"AttachVolume": func(p *params) request.DryRunSupported {
		in := new(ec2.AttachVolumeInput)
		p.str("Device", in.SetDevice)
		p.str("InstanceId", in.SetInstanceId)
		p.str("VolumeId", in.SetVolumeId)
		return in
	},
	"CreateRoute": func(p *params) request.DryRunSupported {
		in := new(ec2.CreateRouteInput)
		p.str("DestinationCidrBlock", in.SetDestinationCidrBlock)
		p.str("DestinationIpv6CidrBlock", in.SetDestinationIpv6CidrBlock)
		p.str("DestinationPrefixListId", in.SetDestinationPrefixListId)
		p.str("EgressOnlyInternetGatewayId", in.SetEgressOnlyInternetGatewayId)
		p.str("GatewayId", in.SetGatewayId)
		p.str("InstanceId", in.SetInstanceId)
		p.str("NatGatewayId", in.SetNatGatewayId)
		p.str("NetworkInterfaceId", in.SetNetworkInterfaceId)
		p.str("RouteTableId", in.SetRouteTableId)
		p.str("TransitGatewayId", in.SetTransitGatewayId)
		p.str("VpcPeeringConnectionId", in.SetVpcPeeringConnectionId)
		return in
	},
	"CreateTags": func(p *params) request.DryRunSupported {
		in := new(ec2.CreateTagsInput)
		p.strings("Resources", in.SetResources)
		p.tags(in.SetTags)
		return in
	},
	"CreateVolume": func(p *params) request.DryRunSupported {
		in := new(ec2.CreateVolumeInput)
		p.str("AvailabilityZone", in.SetAvailabilityZone)
		p.str("ClientToken", in.SetClientToken)
		p.bool("Encrypted", in.SetEncrypted)
		p.int32("Iops", in.SetIops)
		p.str("KmsKeyId", in.SetKmsKeyId)
		p.bool("MultiAttachEnabled", in.SetMultiAttachEnabled)
		p.int32("Size", in.SetSize)
		p.str("SnapshotId", in.SetSnapshotId)
		p.int32("Throughput", in.SetThroughput)
		p.volumeType(in.SetVolumeType)
		p.tagSpecifications(types.ResourceTypeVolume, in.SetTagSpecifications)
		return in
	},
	"DeleteRoute": func(p *params) request.DryRunSupported {
		in := new(ec2.DeleteRouteInput)
		p.str("DestinationCidrBlock", in.SetDestinationCidrBlock)
		p.str("DestinationIpv6CidrBlock", in.SetDestinationIpv6CidrBlock)
		p.str("DestinationPrefixListId", in.SetDestinationPrefixListId)
		p.str("RouteTableId", in.SetRouteTableId)
		return in
	},
	"DeleteVolume": func(p *params) request.DryRunSupported {
		in := new(ec2.DeleteVolumeInput)
		p.str("VolumeId", in.SetVolumeId)
		return in
	},
	"DescribeVolumes": func(p *params) request.DryRunSupported {
		in := new(ec2.DescribeVolumesInput)
		p.filters(in.SetFilters)
		p.int32("MaxResults", in.SetMaxResults)
		p.str("NextToken", in.SetNextToken)
		p.strings("VolumeIds", in.SetVolumeIds)
		return in
	},
	"ImportKeyPair": func(p *params) request.DryRunSupported {
		in := new(ec2.ImportKeyPairInput)
		p.str("KeyName", in.SetKeyName)
		p.str("PublicKeyMaterial", func(v *string) { in.SetPublicKeyMaterial([]byte(*v)) })
		p.tagSpecifications(types.ResourceTypeKeyPair, in.SetTagSpecifications)
		return in
	},
	"StopInstances": func(p *params) request.DryRunSupported {
		in := new(ec2.StopInstancesInput)
		p.bool("Force", in.SetForce)
		p.bool("Hibernate", in.SetHibernate)
		p.strings("InstanceIds", in.SetInstanceIds)
		return in
	},
}

// Operations returns the operations Build accepts, sorted.
func Operations() []string {
	ops := make([]string, 0, len(builders))
	for op := range builders {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// members returns the input members op's builder accepts, sorted.
func members(op string) []string {
	build, ok := builders[op]
	if !ok {
		return nil
	}
	p := newParams(nil)
	build(p)
	sort.Strings(p.bound)
	return p.bound
}

// Build returns the input for op populated from params. Unknown
// operations, unknown parameters and malformed values are errors.
func Build(op string, params map[string]string) (request.DryRunSupported, error) {
	build, ok := builders[op]
	if !ok {
		return nil, fmt.Errorf("operation %q does not support dry run (supported: %s)",
			op, strings.Join(Operations(), ", "))
	}

	p := newParams(params)
	in := build(p)
	if err := p.finish(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return in, nil
}

// ParseArgs turns Key=Value arguments into a parameter map. A repeated
// key keeps its last value.
func ParseArgs(args []string) (map[string]string, error) {
	params := make(map[string]string, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid parameter %q, want Key=Value", arg)
		}
		params[k] = v
	}
	return params, nil
}

type params struct {
	values map[string]string
	used   map[string]bool
	err    error

	// bound lists the input members the builder reads, in call order.
	bound []string
}

func newParams(values map[string]string) *params {
	return &params{values: values, used: make(map[string]bool, len(values))}
}

func (p *params) take(name string) (string, bool) {
	p.bound = append(p.bound, name)
	v, ok := p.values[name]
	if ok {
		p.used[name] = true
	}
	return v, ok
}

func (p *params) fail(name string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("parameter %s: %w", name, err)
	}
}

func (p *params) str(name string, set func(*string)) {
	if v, ok := p.take(name); ok {
		set(&v)
	}
}

func (p *params) int32(name string, set func(*int32)) {
	v, ok := p.take(name)
	if !ok {
		return
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		p.fail(name, err)
		return
	}
	i := int32(n)
	set(&i)
}

func (p *params) bool(name string, set func(*bool)) {
	v, ok := p.take(name)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(name, err)
		return
	}
	set(&b)
}

// strings splits a comma-separated value. An empty value sets an empty,
// but present, list.
func (p *params) strings(name string, set func([]string)) {
	v, ok := p.take(name)
	if !ok {
		return
	}
	set(splitList(v))
}

func (p *params) volumeType(set func(types.VolumeType)) {
	v, ok := p.take("VolumeType")
	if !ok {
		return
	}
	vt, err := types.ParseVolumeType(v)
	if err != nil {
		p.fail("VolumeType", err)
		return
	}
	set(vt)
}

func (p *params) prefixed(prefix string) []string {
	var keys []string
	for k := range p.values {
		if strings.HasPrefix(k, prefix) && len(k) > len(prefix) {
			keys = append(keys, k)
			p.used[k] = true
		}
	}
	sort.Strings(keys)
	return keys
}

func (p *params) collectTags() []*types.Tag {
	keys := p.prefixed(tagPrefix)
	if len(keys) == 0 {
		return nil
	}
	tags := make([]*types.Tag, 0, len(keys))
	for _, k := range keys {
		tags = append(tags, types.NewTag(strings.TrimPrefix(k, tagPrefix), p.values[k]))
	}
	return tags
}

func (p *params) tags(set func([]*types.Tag)) {
	p.bound = append(p.bound, "Tags")
	if tags := p.collectTags(); tags != nil {
		set(tags)
	}
}

func (p *params) tagSpecifications(rt types.ResourceType, set func([]*types.TagSpecification)) {
	p.bound = append(p.bound, "TagSpecifications")
	if tags := p.collectTags(); tags != nil {
		set([]*types.TagSpecification{types.NewTagSpecification(rt, tags...)})
	}
}

func (p *params) filters(set func([]*types.Filter)) {
	p.bound = append(p.bound, "Filters")
	keys := p.prefixed(filterPrefix)
	if len(keys) == 0 {
		return
	}
	filters := make([]*types.Filter, 0, len(keys))
	for _, k := range keys {
		filters = append(filters, types.NewFilter(strings.TrimPrefix(k, filterPrefix), splitList(p.values[k])...))
	}
	set(filters)
}

func (p *params) finish() error {
	if p.err != nil {
		return p.err
	}
	var unknown []string
	for k := range p.values {
		if !p.used[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown parameters: %s", strings.Join(unknown, ", "))
	}
	return nil
}

func splitList(v string) []string {
	if v == "" {
		return []string{}
	}
	parts := strings.Split(v, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
