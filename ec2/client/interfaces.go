package client

import (
	"context"

	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
)

// EC2API defines the EC2 operations the client forwards to.
type EC2API interface {
	AttachVolume(ctx context.Context, params *awsec2.AttachVolumeInput, optFns ...func(*awsec2.Options)) (*awsec2.AttachVolumeOutput, error)
	CreateInstanceExportTask(ctx context.Context, params *awsec2.CreateInstanceExportTaskInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateInstanceExportTaskOutput, error)
	CreateKeyPair(ctx context.Context, params *awsec2.CreateKeyPairInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateKeyPairOutput, error)
	CreateRoute(ctx context.Context, params *awsec2.CreateRouteInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateRouteOutput, error)
	CreateTags(ctx context.Context, params *awsec2.CreateTagsInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateTagsOutput, error)
	CreateVolume(ctx context.Context, params *awsec2.CreateVolumeInput, optFns ...func(*awsec2.Options)) (*awsec2.CreateVolumeOutput, error)
	DeleteRoute(ctx context.Context, params *awsec2.DeleteRouteInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteRouteOutput, error)
	DeleteVolume(ctx context.Context, params *awsec2.DeleteVolumeInput, optFns ...func(*awsec2.Options)) (*awsec2.DeleteVolumeOutput, error)
	DescribeClientVpnEndpoints(ctx context.Context, params *awsec2.DescribeClientVpnEndpointsInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeClientVpnEndpointsOutput, error)
	DescribeVolumes(ctx context.Context, params *awsec2.DescribeVolumesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeVolumesOutput, error)
	ImportKeyPair(ctx context.Context, params *awsec2.ImportKeyPairInput, optFns ...func(*awsec2.Options)) (*awsec2.ImportKeyPairOutput, error)
	SearchTransitGatewayRoutes(ctx context.Context, params *awsec2.SearchTransitGatewayRoutesInput, optFns ...func(*awsec2.Options)) (*awsec2.SearchTransitGatewayRoutesOutput, error)
	StopInstances(ctx context.Context, params *awsec2.StopInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.StopInstancesOutput, error)
}

var _ EC2API = (*awsec2.Client)(nil)
