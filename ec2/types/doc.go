// Package types holds the enums and nested structures shared by EC2
// operation inputs and outputs.
package types
