// Package ec2 holds the EC2 operation inputs and outputs.
//
// Inputs embed request.Metadata for per-request headers, query parameters,
// credentials and timeout. Inputs of operations that accept the DryRun
// parameter implement request.DryRunSupported and can be marshalled into a
// permission-check request without calling the service.
package ec2

//go:generate go run ../cmd/ec2gen --definition ../api/ec2.yaml --out ..
