package client

import (
	"context"
	"fmt"

	"github.com/yairfalse/ec2model/ec2"
)

// AttachVolume attaches an EBS volume to a running or stopped instance.
func (c *Client) AttachVolume(ctx context.Context, in *ec2.AttachVolumeInput) (*ec2.AttachVolumeOutput, error) {
	if in == nil {
		in = new(ec2.AttachVolumeInput)
	}
	out, err := invoke(ctx, c, in, toSDKAttachVolumeInput(in), c.api.AttachVolume)
	if err != nil {
		return nil, fmt.Errorf("attach volume: %w", err)
	}
	return fromSDKAttachVolumeOutput(out), nil
}

// CreateInstanceExportTask starts exporting a running or stopped instance to an S3 bucket.
func (c *Client) CreateInstanceExportTask(ctx context.Context, in *ec2.CreateInstanceExportTaskInput) (*ec2.CreateInstanceExportTaskOutput, error) {
	if in == nil {
		in = new(ec2.CreateInstanceExportTaskInput)
	}
	out, err := invoke(ctx, c, in, toSDKCreateInstanceExportTaskInput(in), c.api.CreateInstanceExportTask)
	if err != nil {
		return nil, fmt.Errorf("create instance export task: %w", err)
	}
	return fromSDKCreateInstanceExportTaskOutput(out), nil
}

// CreateKeyPair creates an RSA or ED25519 key pair. The output carries the private key.
func (c *Client) CreateKeyPair(ctx context.Context, in *ec2.CreateKeyPairInput) (*ec2.CreateKeyPairOutput, error) {
	if in == nil {
		in = new(ec2.CreateKeyPairInput)
	}
	out, err := invoke(ctx, c, in, toSDKCreateKeyPairInput(in), c.api.CreateKeyPair)
	if err != nil {
		return nil, fmt.Errorf("create key pair: %w", err)
	}
	return fromSDKCreateKeyPairOutput(out), nil
}

// CreateRoute adds a route to a route table.
func (c *Client) CreateRoute(ctx context.Context, in *ec2.CreateRouteInput) (*ec2.CreateRouteOutput, error) {
	if in == nil {
		in = new(ec2.CreateRouteInput)
	}
	out, err := invoke(ctx, c, in, toSDKCreateRouteInput(in), c.api.CreateRoute)
	if err != nil {
		return nil, fmt.Errorf("create route: %w", err)
	}
	return fromSDKCreateRouteOutput(out), nil
}

// CreateTags adds or overwrites tags on one or more resources.
func (c *Client) CreateTags(ctx context.Context, in *ec2.CreateTagsInput) (*ec2.CreateTagsOutput, error) {
	if in == nil {
		in = new(ec2.CreateTagsInput)
	}
	_, err := invoke(ctx, c, in, toSDKCreateTagsInput(in), c.api.CreateTags)
	if err != nil {
		return nil, fmt.Errorf("create tags: %w", err)
	}
	return new(ec2.CreateTagsOutput), nil
}

// CreateVolume creates an EBS volume.
func (c *Client) CreateVolume(ctx context.Context, in *ec2.CreateVolumeInput) (*ec2.CreateVolumeOutput, error) {
	if in == nil {
		in = new(ec2.CreateVolumeInput)
	}
	out, err := invoke(ctx, c, in, toSDKCreateVolumeInput(in), c.api.CreateVolume)
	if err != nil {
		return nil, fmt.Errorf("create volume: %w", err)
	}
	return fromSDKCreateVolumeOutput(out), nil
}

// DeleteRoute removes a route from a route table.
func (c *Client) DeleteRoute(ctx context.Context, in *ec2.DeleteRouteInput) (*ec2.DeleteRouteOutput, error) {
	if in == nil {
		in = new(ec2.DeleteRouteInput)
	}
	_, err := invoke(ctx, c, in, toSDKDeleteRouteInput(in), c.api.DeleteRoute)
	if err != nil {
		return nil, fmt.Errorf("delete route: %w", err)
	}
	return new(ec2.DeleteRouteOutput), nil
}

// DeleteVolume deletes an EBS volume.
func (c *Client) DeleteVolume(ctx context.Context, in *ec2.DeleteVolumeInput) (*ec2.DeleteVolumeOutput, error) {
	if in == nil {
		in = new(ec2.DeleteVolumeInput)
	}
	_, err := invoke(ctx, c, in, toSDKDeleteVolumeInput(in), c.api.DeleteVolume)
	if err != nil {
		return nil, fmt.Errorf("delete volume: %w", err)
	}
	return new(ec2.DeleteVolumeOutput), nil
}

// DescribeClientVpnEndpoints returns one page of Client VPN endpoints.
func (c *Client) DescribeClientVpnEndpoints(ctx context.Context, in *ec2.DescribeClientVpnEndpointsInput) (*ec2.DescribeClientVpnEndpointsOutput, error) {
	if in == nil {
		in = new(ec2.DescribeClientVpnEndpointsInput)
	}
	out, err := invoke(ctx, c, in, toSDKDescribeClientVpnEndpointsInput(in), c.api.DescribeClientVpnEndpoints)
	if err != nil {
		return nil, fmt.Errorf("describe client vpn endpoints: %w", err)
	}
	return fromSDKDescribeClientVpnEndpointsOutput(out), nil
}

// DescribeVolumes returns one page of EBS volumes.
func (c *Client) DescribeVolumes(ctx context.Context, in *ec2.DescribeVolumesInput) (*ec2.DescribeVolumesOutput, error) {
	if in == nil {
		in = new(ec2.DescribeVolumesInput)
	}
	out, err := invoke(ctx, c, in, toSDKDescribeVolumesInput(in), c.api.DescribeVolumes)
	if err != nil {
		return nil, fmt.Errorf("describe volumes: %w", err)
	}
	return fromSDKDescribeVolumesOutput(out), nil
}

// ImportKeyPair imports the public key of an existing key pair.
func (c *Client) ImportKeyPair(ctx context.Context, in *ec2.ImportKeyPairInput) (*ec2.ImportKeyPairOutput, error) {
	if in == nil {
		in = new(ec2.ImportKeyPairInput)
	}
	out, err := invoke(ctx, c, in, toSDKImportKeyPairInput(in), c.api.ImportKeyPair)
	if err != nil {
		return nil, fmt.Errorf("import key pair: %w", err)
	}
	return fromSDKImportKeyPairOutput(out), nil
}

// SearchTransitGatewayRoutes returns the routes of a transit gateway route table that match the filters.
func (c *Client) SearchTransitGatewayRoutes(ctx context.Context, in *ec2.SearchTransitGatewayRoutesInput) (*ec2.SearchTransitGatewayRoutesOutput, error) {
	if in == nil {
		in = new(ec2.SearchTransitGatewayRoutesInput)
	}
	out, err := invoke(ctx, c, in, toSDKSearchTransitGatewayRoutesInput(in), c.api.SearchTransitGatewayRoutes)
	if err != nil {
		return nil, fmt.Errorf("search transit gateway routes: %w", err)
	}
	return fromSDKSearchTransitGatewayRoutesOutput(out), nil
}

// StopInstances stops EBS-backed instances.
func (c *Client) StopInstances(ctx context.Context, in *ec2.StopInstancesInput) (*ec2.StopInstancesOutput, error) {
	if in == nil {
		in = new(ec2.StopInstancesInput)
	}
	out, err := invoke(ctx, c, in, toSDKStopInstancesInput(in), c.api.StopInstances)
	if err != nil {
		return nil, fmt.Errorf("stop instances: %w", err)
	}
	return fromSDKStopInstancesOutput(out), nil
}
