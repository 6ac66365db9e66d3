package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go"

	"github.com/yairfalse/ec2model/ec2"
	"github.com/yairfalse/ec2model/pkg/request"
)

// Error codes EC2 answers a dry run with.
const (
	codeDryRunOperation       = "DryRunOperation"
	codeUnauthorizedOperation = "UnauthorizedOperation"
)

// ErrDryRunIgnored is returned when the service executed a dry-run request
// instead of only checking permissions.
var ErrDryRunIgnored = errors.New("dry run was not honored")

// Permission is the result of a dry-run permission check.
type Permission int

// Permission values.
const (
	PermissionUnknown Permission = iota
	PermissionGranted
	PermissionDenied
)

func (p Permission) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// CheckPermission sends in with DryRun set and reports whether the caller
// is allowed to perform the operation. Nothing is changed on the service.
func (c *Client) CheckPermission(ctx context.Context, in request.DryRunSupported) (Permission, error) {
	if in == nil {
		return PermissionUnknown, errors.New("check permission: nil input")
	}

	var err error
	switch in := in.(type) {
	case *ec2.AttachVolumeInput:
		if in == nil {
			return PermissionUnknown, errNilInput(in)
		}
		params := toSDKAttachVolumeInput(in)
		params.DryRun = aws.Bool(true)
		_, err = invoke(ctx, c, in, params, c.api.AttachVolume)
	case *ec2.CreateRouteInput:
		if in == nil {
			return PermissionUnknown, errNilInput(in)
		}
		params := toSDKCreateRouteInput(in)
		params.DryRun = aws.Bool(true)
		_, err = invoke(ctx, c, in, params, c.api.CreateRoute)
	case *ec2.CreateTagsInput:
		if in == nil {
			return PermissionUnknown, errNilInput(in)
		}
		params := toSDKCreateTagsInput(in)
		params.DryRun = aws.Bool(true)
		_, err = invoke(ctx, c, in, params, c.api.CreateTags)
	case *ec2.CreateVolumeInput:
		if in == nil {
			return PermissionUnknown, errNilInput(in)
		}
		params := toSDKCreateVolumeInput(in)
		params.DryRun = aws.Bool(true)
		_, err = invoke(ctx, c, in, params, c.api.CreateVolume)
	case *ec2.DeleteRouteInput:
		if in == nil {
			return PermissionUnknown, errNilInput(in)
		}
		params := toSDKDeleteRouteInput(in)
		params.DryRun = aws.Bool(true)
		_, err = invoke(ctx, c, in, params, c.api.DeleteRoute)
	case *ec2.DeleteVolumeInput:
		if in == nil {
			return PermissionUnknown, errNilInput(in)
		}
		params := toSDKDeleteVolumeInput(in)
		params.DryRun = aws.Bool(true)
		_, err = invoke(ctx, c, in, params, c.api.DeleteVolume)
	case *ec2.DescribeVolumesInput:
		if in == nil {
			return PermissionUnknown, errNilInput(in)
		}
		params := toSDKDescribeVolumesInput(in)
		params.DryRun = aws.Bool(true)
		_, err = invoke(ctx, c, in, params, c.api.DescribeVolumes)
	case *ec2.ImportKeyPairInput:
		if in == nil {
			return PermissionUnknown, errNilInput(in)
		}
		params := toSDKImportKeyPairInput(in)
		params.DryRun = aws.Bool(true)
		_, err = invoke(ctx, c, in, params, c.api.ImportKeyPair)
	case *ec2.StopInstancesInput:
		if in == nil {
			return PermissionUnknown, errNilInput(in)
		}
		params := toSDKStopInstancesInput(in)
		params.DryRun = aws.Bool(true)
		_, err = invoke(ctx, c, in, params, c.api.StopInstances)
	default:
		return PermissionUnknown, fmt.Errorf("check permission: unsupported input %T", in)
	}

	return classifyDryRun(in.OperationName(), err)
}

// errNilInput reports a typed nil input. OperationName does not read the
// receiver, so it is safe to call here.
func errNilInput(in request.Request) error {
	return fmt.Errorf("check permission %s: nil input", in.OperationName())
}

func classifyDryRun(op string, err error) (Permission, error) {
	if err == nil {
		return PermissionUnknown, fmt.Errorf("check permission %s: %w", op, ErrDryRunIgnored)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case codeDryRunOperation:
			return PermissionGranted, nil
		case codeUnauthorizedOperation:
			return PermissionDenied, nil
		}
	}
	return PermissionUnknown, fmt.Errorf("check permission %s: %w", op, err)
}
