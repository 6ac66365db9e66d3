package probe

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yairfalse/ec2model/ec2"
	"github.com/yairfalse/ec2model/ec2/types"
	"github.com/yairfalse/ec2model/internal/codegen"
	"github.com/yairfalse/ec2model/pkg/enum"
)

func TestOperations(t *testing.T) {
	assert.Equal(t, []string{
		"AttachVolume", "CreateRoute", "CreateTags", "CreateVolume", "DeleteRoute",
		"DeleteVolume", "DescribeVolumes", "ImportKeyPair", "StopInstances",
	}, Operations())
}

// The builders are written by hand; keep them in step with the service
// definition the inputs are generated from.
func TestBuilders_MatchDefinition(t *testing.T) {
	def, err := codegen.Load("../../api/ec2.yaml")
	require.NoError(t, err)

	var dryRunOps []string
	for _, op := range def.Operations {
		if !op.DryRun {
			assert.Nil(t, members(op.Name), "%s has no dry run but has a builder", op.Name)
			continue
		}
		dryRunOps = append(dryRunOps, op.Name)

		want := make([]string, 0, len(op.Input))
		for _, m := range op.Input {
			want = append(want, m.Name)
		}
		assert.ElementsMatch(t, want, members(op.Name), "%s input members", op.Name)
	}
	assert.ElementsMatch(t, dryRunOps, Operations())
}

func TestMembers_UnknownOperation(t *testing.T) {
	assert.Nil(t, members("RunInstances"))
}

func TestBuild_AllOperationsEmpty(t *testing.T) {
	for _, op := range Operations() {
		t.Run(op, func(t *testing.T) {
			in, err := Build(op, nil)
			require.NoError(t, err)
			assert.Equal(t, op, in.OperationName())

			wire, err := in.DryRunRequest()
			require.NoError(t, err)
			assert.Equal(t, "true", wire.Params.Get("DryRun"))
		})
	}
}

func TestBuild_DeleteVolume(t *testing.T) {
	in, err := Build("DeleteVolume", map[string]string{"VolumeId": "vol-1234"})
	require.NoError(t, err)

	del, ok := in.(*ec2.DeleteVolumeInput)
	require.True(t, ok)
	assert.Equal(t, "vol-1234", aws.ToString(del.VolumeId()))
}

func TestBuild_CreateVolume(t *testing.T) {
	in, err := Build("CreateVolume", map[string]string{
		"AvailabilityZone": "us-east-1a",
		"Encrypted":        "true",
		"Size":             "100",
		"VolumeType":       "gp3",
		"Tag.Name":         "scratch",
		"Tag.Team":         "infra",
	})
	require.NoError(t, err)

	cv := in.(*ec2.CreateVolumeInput)
	assert.Equal(t, "us-east-1a", aws.ToString(cv.AvailabilityZone()))
	assert.True(t, aws.ToBool(cv.Encrypted()))
	assert.Equal(t, int32(100), aws.ToInt32(cv.Size()))
	assert.Equal(t, types.VolumeTypeGp3, cv.VolumeType())

	require.Len(t, cv.TagSpecifications(), 1)
	spec := cv.TagSpecifications()[0]
	assert.Equal(t, types.ResourceTypeVolume, spec.ResourceType())
	assert.Equal(t, map[string]string{"Name": "scratch", "Team": "infra"}, types.TagsToMap(spec.Tags()))
}

func TestBuild_Lists(t *testing.T) {
	in, err := Build("DescribeVolumes", map[string]string{
		"VolumeIds":     "vol-1, vol-2",
		"Filter.status": "available,in-use",
		"MaxResults":    "5",
	})
	require.NoError(t, err)

	dv := in.(*ec2.DescribeVolumesInput)
	assert.Equal(t, []string{"vol-1", "vol-2"}, dv.VolumeIds())
	assert.Equal(t, int32(5), aws.ToInt32(dv.MaxResults()))
	require.Len(t, dv.Filters(), 1)
	assert.Equal(t, "status", aws.ToString(dv.Filters()[0].Name()))
	assert.Equal(t, []string{"available", "in-use"}, dv.Filters()[0].Values())

	empty, err := Build("StopInstances", map[string]string{"InstanceIds": ""})
	require.NoError(t, err)
	stop := empty.(*ec2.StopInstancesInput)
	assert.True(t, stop.HasInstanceIds())
	assert.Empty(t, stop.InstanceIds())

	unset, err := Build("StopInstances", nil)
	require.NoError(t, err)
	assert.False(t, unset.(*ec2.StopInstancesInput).HasInstanceIds())
}

func TestBuild_CreateTagsAndKeyPair(t *testing.T) {
	in, err := Build("CreateTags", map[string]string{"Resources": "i-1", "Tag.Env": "prod"})
	require.NoError(t, err)
	ct := in.(*ec2.CreateTagsInput)
	assert.Equal(t, []string{"i-1"}, ct.Resources())
	assert.Equal(t, map[string]string{"Env": "prod"}, types.TagsToMap(ct.Tags()))

	in, err = Build("ImportKeyPair", map[string]string{"KeyName": "deploy", "PublicKeyMaterial": "ssh-ed25519 AAAA"})
	require.NoError(t, err)
	kp := in.(*ec2.ImportKeyPairInput)
	assert.Equal(t, "deploy", aws.ToString(kp.KeyName()))
	assert.Equal(t, []byte("ssh-ed25519 AAAA"), kp.PublicKeyMaterial())
	assert.False(t, kp.HasTagSpecifications())
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		params  map[string]string
		wantErr string
	}{
		{"unknown operation", "DescribeClientVpnEndpoints", nil, `operation "DescribeClientVpnEndpoints" does not support dry run`},
		{"unknown parameter", "DeleteVolume", map[string]string{"VolumeId": "v", "Size": "1", "Bogus": "x"}, "DeleteVolume: unknown parameters: Bogus, Size"},
		{"bad integer", "CreateVolume", map[string]string{"Size": "big"}, "parameter Size"},
		{"bad bool", "StopInstances", map[string]string{"Force": "maybe"}, "parameter Force"},
		{"bad enum", "CreateVolume", map[string]string{"VolumeType": "floppy"}, "parameter VolumeType"},
		{"bare tag prefix", "CreateTags", map[string]string{"Tag.": "x"}, "unknown parameters: Tag."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.op, tt.params)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	_, err := Build("CreateVolume", map[string]string{"VolumeType": "floppy"})
	assert.ErrorIs(t, err, enum.ErrUnrecognizedValue)
}

func TestParseArgs(t *testing.T) {
	got, err := ParseArgs([]string{"VolumeId=vol-1", "Tag.Name=a=b", "VolumeId=vol-2", "Empty="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"VolumeId": "vol-2", "Tag.Name": "a=b", "Empty": ""}, got)

	_, err = ParseArgs([]string{"novalue"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid parameter "novalue"`)

	_, err = ParseArgs([]string{"=x"})
	require.Error(t, err)
}
