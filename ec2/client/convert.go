package client

import (
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/yairfalse/ec2model/ec2"
	"github.com/yairfalse/ec2model/ec2/types"
)

// mapSlice converts each element with fn. A nil slice stays nil so that
// list presence survives the round trip.
func mapSlice[A, B any](in []A, fn func(A) B) []B {
	if in == nil {
		return nil
	}
	out := make([]B, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// Model to SDK.

func toSDKTag(t *types.Tag) ec2types.Tag {
	if t == nil {
		return ec2types.Tag{}
	}
	return ec2types.Tag{Key: t.Key(), Value: t.Value()}
}

func toSDKTagSpecification(s *types.TagSpecification) ec2types.TagSpecification {
	if s == nil {
		return ec2types.TagSpecification{}
	}
	return ec2types.TagSpecification{
		ResourceType: ec2types.ResourceType(s.ResourceType()),
		Tags:         mapSlice(s.Tags(), toSDKTag),
	}
}

func toSDKFilter(f *types.Filter) ec2types.Filter {
	if f == nil {
		return ec2types.Filter{}
	}
	return ec2types.Filter{Name: f.Name(), Values: f.Values()}
}

func toSDKExportToS3TaskSpecification(s *types.ExportToS3TaskSpecification) *ec2types.ExportToS3TaskSpecification {
	if s == nil {
		return nil
	}
	return &ec2types.ExportToS3TaskSpecification{
		ContainerFormat: ec2types.ContainerFormat(s.ContainerFormat()),
		DiskImageFormat: ec2types.DiskImageFormat(s.DiskImageFormat()),
		S3Bucket:        s.S3Bucket(),
		S3Prefix:        s.S3Prefix(),
	}
}

func toSDKAttachVolumeInput(in *ec2.AttachVolumeInput) *awsec2.AttachVolumeInput {
	return &awsec2.AttachVolumeInput{
		Device:     in.Device(),
		InstanceId: in.InstanceId(),
		VolumeId:   in.VolumeId(),
	}
}

func toSDKCreateInstanceExportTaskInput(in *ec2.CreateInstanceExportTaskInput) *awsec2.CreateInstanceExportTaskInput {
	return &awsec2.CreateInstanceExportTaskInput{
		Description:       in.Description(),
		ExportToS3Task:    toSDKExportToS3TaskSpecification(in.ExportToS3Task()),
		InstanceId:        in.InstanceId(),
		TagSpecifications: mapSlice(in.TagSpecifications(), toSDKTagSpecification),
		TargetEnvironment: ec2types.ExportEnvironment(in.TargetEnvironment()),
	}
}

func toSDKCreateKeyPairInput(in *ec2.CreateKeyPairInput) *awsec2.CreateKeyPairInput {
	return &awsec2.CreateKeyPairInput{
		KeyFormat:         ec2types.KeyFormat(in.KeyFormat()),
		KeyName:           in.KeyName(),
		KeyType:           ec2types.KeyType(in.KeyType()),
		TagSpecifications: mapSlice(in.TagSpecifications(), toSDKTagSpecification),
	}
}

func toSDKCreateRouteInput(in *ec2.CreateRouteInput) *awsec2.CreateRouteInput {
	return &awsec2.CreateRouteInput{
		DestinationCidrBlock:        in.DestinationCidrBlock(),
		DestinationIpv6CidrBlock:    in.DestinationIpv6CidrBlock(),
		DestinationPrefixListId:     in.DestinationPrefixListId(),
		EgressOnlyInternetGatewayId: in.EgressOnlyInternetGatewayId(),
		GatewayId:                   in.GatewayId(),
		InstanceId:                  in.InstanceId(),
		NatGatewayId:                in.NatGatewayId(),
		NetworkInterfaceId:          in.NetworkInterfaceId(),
		RouteTableId:                in.RouteTableId(),
		TransitGatewayId:            in.TransitGatewayId(),
		VpcPeeringConnectionId:      in.VpcPeeringConnectionId(),
	}
}

func toSDKCreateTagsInput(in *ec2.CreateTagsInput) *awsec2.CreateTagsInput {
	return &awsec2.CreateTagsInput{
		Resources: in.Resources(),
		Tags:      mapSlice(in.Tags(), toSDKTag),
	}
}

func toSDKCreateVolumeInput(in *ec2.CreateVolumeInput) *awsec2.CreateVolumeInput {
	return &awsec2.CreateVolumeInput{
		AvailabilityZone:   in.AvailabilityZone(),
		ClientToken:        in.ClientToken(),
		Encrypted:          in.Encrypted(),
		Iops:               in.Iops(),
		KmsKeyId:           in.KmsKeyId(),
		MultiAttachEnabled: in.MultiAttachEnabled(),
		Size:               in.Size(),
		SnapshotId:         in.SnapshotId(),
		TagSpecifications:  mapSlice(in.TagSpecifications(), toSDKTagSpecification),
		Throughput:         in.Throughput(),
		VolumeType:         ec2types.VolumeType(in.VolumeType()),
	}
}

func toSDKDeleteRouteInput(in *ec2.DeleteRouteInput) *awsec2.DeleteRouteInput {
	return &awsec2.DeleteRouteInput{
		DestinationCidrBlock:     in.DestinationCidrBlock(),
		DestinationIpv6CidrBlock: in.DestinationIpv6CidrBlock(),
		DestinationPrefixListId:  in.DestinationPrefixListId(),
		RouteTableId:             in.RouteTableId(),
	}
}

func toSDKDeleteVolumeInput(in *ec2.DeleteVolumeInput) *awsec2.DeleteVolumeInput {
	return &awsec2.DeleteVolumeInput{VolumeId: in.VolumeId()}
}

func toSDKDescribeClientVpnEndpointsInput(in *ec2.DescribeClientVpnEndpointsInput) *awsec2.DescribeClientVpnEndpointsInput {
	return &awsec2.DescribeClientVpnEndpointsInput{
		ClientVpnEndpointIds: in.ClientVpnEndpointIds(),
		Filters:              mapSlice(in.Filters(), toSDKFilter),
		MaxResults:           in.MaxResults(),
		NextToken:            in.NextToken(),
	}
}

func toSDKDescribeVolumesInput(in *ec2.DescribeVolumesInput) *awsec2.DescribeVolumesInput {
	return &awsec2.DescribeVolumesInput{
		Filters:    mapSlice(in.Filters(), toSDKFilter),
		MaxResults: in.MaxResults(),
		NextToken:  in.NextToken(),
		VolumeIds:  in.VolumeIds(),
	}
}

func toSDKImportKeyPairInput(in *ec2.ImportKeyPairInput) *awsec2.ImportKeyPairInput {
	return &awsec2.ImportKeyPairInput{
		KeyName:           in.KeyName(),
		PublicKeyMaterial: in.PublicKeyMaterial(),
		TagSpecifications: mapSlice(in.TagSpecifications(), toSDKTagSpecification),
	}
}

func toSDKSearchTransitGatewayRoutesInput(in *ec2.SearchTransitGatewayRoutesInput) *awsec2.SearchTransitGatewayRoutesInput {
	return &awsec2.SearchTransitGatewayRoutesInput{
		Filters:                    mapSlice(in.Filters(), toSDKFilter),
		MaxResults:                 in.MaxResults(),
		TransitGatewayRouteTableId: in.TransitGatewayRouteTableId(),
	}
}

func toSDKStopInstancesInput(in *ec2.StopInstancesInput) *awsec2.StopInstancesInput {
	return &awsec2.StopInstancesInput{
		Force:       in.Force(),
		Hibernate:   in.Hibernate(),
		InstanceIds: in.InstanceIds(),
	}
}

// SDK to model.

func fromSDKTag(t ec2types.Tag) *types.Tag {
	out := new(types.Tag)
	out.SetKey(t.Key)
	out.SetValue(t.Value)
	return out
}

func fromSDKVolumeAttachment(a ec2types.VolumeAttachment) *types.VolumeAttachment {
	out := new(types.VolumeAttachment)
	out.SetAttachTime(a.AttachTime)
	out.SetDeleteOnTermination(a.DeleteOnTermination)
	out.SetDevice(a.Device)
	out.SetInstanceId(a.InstanceId)
	out.SetState(types.VolumeAttachmentState(a.State))
	out.SetVolumeId(a.VolumeId)
	return out
}

func fromSDKVolume(v ec2types.Volume) *types.Volume {
	out := new(types.Volume)
	out.SetAttachments(mapSlice(v.Attachments, fromSDKVolumeAttachment))
	out.SetAvailabilityZone(v.AvailabilityZone)
	out.SetCreateTime(v.CreateTime)
	out.SetEncrypted(v.Encrypted)
	out.SetIops(v.Iops)
	out.SetKmsKeyId(v.KmsKeyId)
	out.SetMultiAttachEnabled(v.MultiAttachEnabled)
	out.SetSize(v.Size)
	out.SetSnapshotId(v.SnapshotId)
	out.SetState(types.VolumeState(v.State))
	out.SetTags(mapSlice(v.Tags, fromSDKTag))
	out.SetThroughput(v.Throughput)
	out.SetVolumeId(v.VolumeId)
	out.SetVolumeType(types.VolumeType(v.VolumeType))
	return out
}

func fromSDKClientVpnEndpointStatus(s *ec2types.ClientVpnEndpointStatus) *types.ClientVpnEndpointStatus {
	if s == nil {
		return nil
	}
	out := new(types.ClientVpnEndpointStatus)
	out.SetCode(types.ClientVpnEndpointStatusCode(s.Code))
	out.SetMessage(s.Message)
	return out
}

func fromSDKClientVpnEndpoint(e ec2types.ClientVpnEndpoint) *types.ClientVpnEndpoint {
	out := new(types.ClientVpnEndpoint)
	out.SetClientCidrBlock(e.ClientCidrBlock)
	out.SetClientVpnEndpointId(e.ClientVpnEndpointId)
	out.SetCreationTime(e.CreationTime)
	out.SetDeletionTime(e.DeletionTime)
	out.SetDescription(e.Description)
	out.SetDnsName(e.DnsName)
	out.SetDnsServers(e.DnsServers)
	out.SetSecurityGroupIds(e.SecurityGroupIds)
	out.SetSplitTunnel(e.SplitTunnel)
	out.SetStatus(fromSDKClientVpnEndpointStatus(e.Status))
	out.SetTags(mapSlice(e.Tags, fromSDKTag))
	out.SetTransportProtocol(types.TransportProtocol(e.TransportProtocol))
	out.SetVpcId(e.VpcId)
	out.SetVpnPort(e.VpnPort)
	out.SetVpnProtocol(types.VpnProtocol(e.VpnProtocol))
	return out
}

func fromSDKExportToS3Task(t *ec2types.ExportToS3Task) *types.ExportToS3Task {
	if t == nil {
		return nil
	}
	out := new(types.ExportToS3Task)
	out.SetContainerFormat(types.ContainerFormat(t.ContainerFormat))
	out.SetDiskImageFormat(types.DiskImageFormat(t.DiskImageFormat))
	out.SetS3Bucket(t.S3Bucket)
	out.SetS3Key(t.S3Key)
	return out
}

func fromSDKInstanceExportDetails(d *ec2types.InstanceExportDetails) *types.InstanceExportDetails {
	if d == nil {
		return nil
	}
	out := new(types.InstanceExportDetails)
	out.SetInstanceId(d.InstanceId)
	out.SetTargetEnvironment(types.ExportEnvironment(d.TargetEnvironment))
	return out
}

func fromSDKExportTask(t *ec2types.ExportTask) *types.ExportTask {
	if t == nil {
		return nil
	}
	out := new(types.ExportTask)
	out.SetDescription(t.Description)
	out.SetExportTaskId(t.ExportTaskId)
	out.SetExportToS3Task(fromSDKExportToS3Task(t.ExportToS3Task))
	out.SetInstanceExportDetails(fromSDKInstanceExportDetails(t.InstanceExportDetails))
	out.SetState(types.ExportTaskState(t.State))
	out.SetStatusMessage(t.StatusMessage)
	out.SetTags(mapSlice(t.Tags, fromSDKTag))
	return out
}

func fromSDKTransitGatewayRouteAttachment(a ec2types.TransitGatewayRouteAttachment) *types.TransitGatewayRouteAttachment {
	out := new(types.TransitGatewayRouteAttachment)
	out.SetResourceId(a.ResourceId)
	out.SetResourceType(types.TransitGatewayAttachmentResourceType(a.ResourceType))
	out.SetTransitGatewayAttachmentId(a.TransitGatewayAttachmentId)
	return out
}

func fromSDKTransitGatewayRoute(r ec2types.TransitGatewayRoute) *types.TransitGatewayRoute {
	out := new(types.TransitGatewayRoute)
	out.SetDestinationCidrBlock(r.DestinationCidrBlock)
	out.SetPrefixListId(r.PrefixListId)
	out.SetState(types.TransitGatewayRouteState(r.State))
	out.SetTransitGatewayAttachments(mapSlice(r.TransitGatewayAttachments, fromSDKTransitGatewayRouteAttachment))
	out.SetType(types.TransitGatewayRouteType(r.Type))
	return out
}

func fromSDKInstanceState(s *ec2types.InstanceState) *types.InstanceState {
	if s == nil {
		return nil
	}
	out := new(types.InstanceState)
	out.SetCode(s.Code)
	out.SetName(types.InstanceStateName(s.Name))
	return out
}

func fromSDKInstanceStateChange(c ec2types.InstanceStateChange) *types.InstanceStateChange {
	out := new(types.InstanceStateChange)
	out.SetCurrentState(fromSDKInstanceState(c.CurrentState))
	out.SetInstanceId(c.InstanceId)
	out.SetPreviousState(fromSDKInstanceState(c.PreviousState))
	return out
}

func fromSDKAttachVolumeOutput(o *awsec2.AttachVolumeOutput) *ec2.AttachVolumeOutput {
	out := new(ec2.AttachVolumeOutput)
	out.SetAttachTime(o.AttachTime)
	out.SetDeleteOnTermination(o.DeleteOnTermination)
	out.SetDevice(o.Device)
	out.SetInstanceId(o.InstanceId)
	out.SetState(types.VolumeAttachmentState(o.State))
	out.SetVolumeId(o.VolumeId)
	return out
}

func fromSDKCreateInstanceExportTaskOutput(o *awsec2.CreateInstanceExportTaskOutput) *ec2.CreateInstanceExportTaskOutput {
	out := new(ec2.CreateInstanceExportTaskOutput)
	out.SetExportTask(fromSDKExportTask(o.ExportTask))
	return out
}

func fromSDKCreateKeyPairOutput(o *awsec2.CreateKeyPairOutput) *ec2.CreateKeyPairOutput {
	out := new(ec2.CreateKeyPairOutput)
	out.SetKeyFingerprint(o.KeyFingerprint)
	out.SetKeyMaterial(o.KeyMaterial)
	out.SetKeyName(o.KeyName)
	out.SetKeyPairId(o.KeyPairId)
	out.SetTags(mapSlice(o.Tags, fromSDKTag))
	return out
}

func fromSDKCreateRouteOutput(o *awsec2.CreateRouteOutput) *ec2.CreateRouteOutput {
	out := new(ec2.CreateRouteOutput)
	out.SetReturn(o.Return)
	return out
}

func fromSDKCreateVolumeOutput(o *awsec2.CreateVolumeOutput) *ec2.CreateVolumeOutput {
	out := new(ec2.CreateVolumeOutput)
	out.SetAttachments(mapSlice(o.Attachments, fromSDKVolumeAttachment))
	out.SetAvailabilityZone(o.AvailabilityZone)
	out.SetCreateTime(o.CreateTime)
	out.SetEncrypted(o.Encrypted)
	out.SetIops(o.Iops)
	out.SetKmsKeyId(o.KmsKeyId)
	out.SetMultiAttachEnabled(o.MultiAttachEnabled)
	out.SetSize(o.Size)
	out.SetSnapshotId(o.SnapshotId)
	out.SetState(types.VolumeState(o.State))
	out.SetTags(mapSlice(o.Tags, fromSDKTag))
	out.SetThroughput(o.Throughput)
	out.SetVolumeId(o.VolumeId)
	out.SetVolumeType(types.VolumeType(o.VolumeType))
	return out
}

func fromSDKDescribeClientVpnEndpointsOutput(o *awsec2.DescribeClientVpnEndpointsOutput) *ec2.DescribeClientVpnEndpointsOutput {
	out := new(ec2.DescribeClientVpnEndpointsOutput)
	out.SetClientVpnEndpoints(mapSlice(o.ClientVpnEndpoints, fromSDKClientVpnEndpoint))
	out.SetNextToken(o.NextToken)
	return out
}

func fromSDKDescribeVolumesOutput(o *awsec2.DescribeVolumesOutput) *ec2.DescribeVolumesOutput {
	out := new(ec2.DescribeVolumesOutput)
	out.SetNextToken(o.NextToken)
	out.SetVolumes(mapSlice(o.Volumes, fromSDKVolume))
	return out
}

func fromSDKImportKeyPairOutput(o *awsec2.ImportKeyPairOutput) *ec2.ImportKeyPairOutput {
	out := new(ec2.ImportKeyPairOutput)
	out.SetKeyFingerprint(o.KeyFingerprint)
	out.SetKeyName(o.KeyName)
	out.SetKeyPairId(o.KeyPairId)
	out.SetTags(mapSlice(o.Tags, fromSDKTag))
	return out
}

func fromSDKSearchTransitGatewayRoutesOutput(o *awsec2.SearchTransitGatewayRoutesOutput) *ec2.SearchTransitGatewayRoutesOutput {
	out := new(ec2.SearchTransitGatewayRoutesOutput)
	out.SetAdditionalRoutesAvailable(o.AdditionalRoutesAvailable)
	out.SetRoutes(mapSlice(o.Routes, fromSDKTransitGatewayRoute))
	return out
}

func fromSDKStopInstancesOutput(o *awsec2.StopInstancesOutput) *ec2.StopInstancesOutput {
	out := new(ec2.StopInstancesOutput)
	out.SetStoppingInstances(mapSlice(o.StoppingInstances, fromSDKInstanceStateChange))
	return out
}
