package shape

import (
	"strconv"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
)

func TestPrinter_Empty(t *testing.T) {
	assert.Equal(t, "{}", NewPrinter().String())
}

func TestPrinter_SkipsAbsentMembers(t *testing.T) {
	var unset List[string]

	p := NewPrinter()
	p.Str("VolumeId", aws.String("vol-1234"))
	p.Str("SnapshotId", nil)
	p.Bool("Encrypted", aws.Bool(true))
	p.Int32("Size", nil)
	p.Int64("Bytes", aws.Int64(10))
	p.Enum("VolumeType", "")
	p.Enum("State", "available")
	p.Strings("Missing", unset)
	p.Strings("VolumeIds", NewList("a", "b"))
	p.Sensitive("KeyMaterial", false)
	p.Sensitive("Secret", true)

	assert.Equal(t,
		"{VolumeId: vol-1234,Encrypted: true,Bytes: 10,State: available,VolumeIds: [a, b],Secret: ***Sensitive Data Redacted***}",
		p.String())
}

func TestPrinter_TimeAndBytes(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	p := NewPrinter()
	p.Time("CreateTime", &ts)
	p.Bytes("Blob", []byte("hi"))
	p.Bytes("Nothing", nil)

	assert.Equal(t, "{CreateTime: 2024-03-01T12:00:00Z,Blob: aGk=}", p.String())
}

func TestPrintList_EmptyButSet(t *testing.T) {
	p := NewPrinter()
	PrintList(p, "Codes", NewList[int](), strconv.Itoa)

	assert.Equal(t, "{Codes: []}", p.String())
}

func TestFormatList(t *testing.T) {
	assert.Equal(t, "[1, 2, 3]", FormatList(NewList(1, 2, 3), strconv.Itoa))
}
