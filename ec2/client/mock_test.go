package client

import (
	"context"

	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
)

// mockEC2Client implements EC2API for testing.
type mockEC2Client struct {
	attachVolumeFunc               func(ctx context.Context, params *awsec2.AttachVolumeInput, optFns ...func(*awsec2.Options)) (*awsec2.AttachVolumeOutput, error)
	createInstanceExportTaskFunc   func(ctx context.Context, params *awsec2.CreateInstanceExportTaskInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateInstanceExportTaskOutput, error)
	createKeyPairFunc              func(ctx context.Context, params *awsec2.CreateKeyPairInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateKeyPairOutput, error)
	createRouteFunc                func(ctx context.Context, params *awsec2.CreateRouteInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateRouteOutput, error)
	createTagsFunc                 func(ctx context.Context, params *awsec2.CreateTagsInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateTagsOutput, error)
	createVolumeFunc               func(ctx context.Context, params *awsec2.CreateVolumeInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateVolumeOutput, error)
	deleteRouteFunc                func(ctx context.Context, params *awsec2.DeleteRouteInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteRouteOutput, error)
	deleteVolumeFunc               func(ctx context.Context, params *awsec2.DeleteVolumeInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteVolumeOutput, error)
	describeClientVpnEndpointsFunc func(ctx context.Context, params *awsec2.DescribeClientVpnEndpointsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeClientVpnEndpointsOutput, error)
	describeVolumesFunc            func(ctx context.Context, params *awsec2.DescribeVolumesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVolumesOutput, error)
	importKeyPairFunc              func(ctx context.Context, params *awsec2.ImportKeyPairInput, optFns ...func(*awsec2.Options)) (*awsec2.ImportKeyPairOutput, error)
	searchTransitGatewayRoutesFunc func(ctx context.Context, params *awsec2.SearchTransitGatewayRoutesInput, optFns ...func(*awsec2.Options)) (*awsec2.SearchTransitGatewayRoutesOutput, error)
	stopInstancesFunc              func(ctx context.Context, params *awsec2.StopInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.StopInstancesOutput, error)
}

func (m *mockEC2Client) AttachVolume(ctx context.Context, params *awsec2.AttachVolumeInput, optFns ...func(*awsec2.Options)) (*awsec2.AttachVolumeOutput, error) {
	if m.attachVolumeFunc != nil {
		return m.attachVolumeFunc(ctx, params, optFns...)
	}
	return &awsec2.AttachVolumeOutput{}, nil
}

func (m *mockEC2Client) CreateInstanceExportTask(ctx context.Context, params *awsec2.CreateInstanceExportTaskInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateInstanceExportTaskOutput, error) {
	if m.createInstanceExportTaskFunc != nil {
		return m.createInstanceExportTaskFunc(ctx, params, optFns...)
	}
	return &awsec2.CreateInstanceExportTaskOutput{}, nil
}

func (m *mockEC2Client) CreateKeyPair(ctx context.Context, params *awsec2.CreateKeyPairInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateKeyPairOutput, error) {
	if m.createKeyPairFunc != nil {
		return m.createKeyPairFunc(ctx, params, optFns...)
	}
	return &awsec2.CreateKeyPairOutput{}, nil
}

func (m *mockEC2Client) CreateRoute(ctx context.Context, params *awsec2.CreateRouteInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateRouteOutput, error) {
	if m.createRouteFunc != nil {
		return m.createRouteFunc(ctx, params, optFns...)
	}
	return &awsec2.CreateRouteOutput{}, nil
}

func (m *mockEC2Client) CreateTags(ctx context.Context, params *awsec2.CreateTagsInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateTagsOutput, error) {
	if m.createTagsFunc != nil {
		return m.createTagsFunc(ctx, params, optFns...)
	}
	return &awsec2.CreateTagsOutput{}, nil
}

func (m *mockEC2Client) CreateVolume(ctx context.Context, params *awsec2.CreateVolumeInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateVolumeOutput, error) {
	if m.createVolumeFunc != nil {
		return m.createVolumeFunc(ctx, params, optFns...)
	}
	return &awsec2.CreateVolumeOutput{}, nil
}

func (m *mockEC2Client) DeleteRoute(ctx context.Context, params *awsec2.DeleteRouteInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteRouteOutput, error) {
	if m.deleteRouteFunc != nil {
		return m.deleteRouteFunc(ctx, params, optFns...)
	}
	return &awsec2.DeleteRouteOutput{}, nil
}

func (m *mockEC2Client) DeleteVolume(ctx context.Context, params *awsec2.DeleteVolumeInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteVolumeOutput, error) {
	if m.deleteVolumeFunc != nil {
		return m.deleteVolumeFunc(ctx, params, optFns...)
	}
	return &awsec2.DeleteVolumeOutput{}, nil
}

func (m *mockEC2Client) DescribeClientVpnEndpoints(ctx context.Context, params *awsec2.DescribeClientVpnEndpointsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeClientVpnEndpointsOutput, error) {
	if m.describeClientVpnEndpointsFunc != nil {
		return m.describeClientVpnEndpointsFunc(ctx, params, optFns...)
	}
	return &awsec2.DescribeClientVpnEndpointsOutput{}, nil
}

func (m *mockEC2Client) DescribeVolumes(ctx context.Context, params *awsec2.DescribeVolumesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVolumesOutput, error) {
	if m.describeVolumesFunc != nil {
		return m.describeVolumesFunc(ctx, params, optFns...)
	}
	return &awsec2.DescribeVolumesOutput{}, nil
}

func (m *mockEC2Client) ImportKeyPair(ctx context.Context, params *awsec2.ImportKeyPairInput, optFns ...func(*awsec2.Options)) (*awsec2.ImportKeyPairOutput, error) {
	if m.importKeyPairFunc != nil {
		return m.importKeyPairFunc(ctx, params, optFns...)
	}
	return &awsec2.ImportKeyPairOutput{}, nil
}

func (m *mockEC2Client) SearchTransitGatewayRoutes(ctx context.Context, params *awsec2.SearchTransitGatewayRoutesInput, optFns ...func(*awsec2.Options)) (*awsec2.SearchTransitGatewayRoutesOutput, error) {
	if m.searchTransitGatewayRoutesFunc != nil {
		return m.searchTransitGatewayRoutesFunc(ctx, params, optFns...)
	}
	return &awsec2.SearchTransitGatewayRoutesOutput{}, nil
}

func (m *mockEC2Client) StopInstances(ctx context.Context, params *awsec2.StopInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.StopInstancesOutput, error) {
	if m.stopInstancesFunc != nil {
		return m.stopInstancesFunc(ctx, params, optFns...)
	}
	return &awsec2.StopInstancesOutput{}, nil
}
