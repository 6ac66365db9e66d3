package shape

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
)

func TestStringHash(t *testing.T) {
	tests := []struct {
		in   string
		want int32
	}{
		{"", 0},
		{"a", 97},
		{"ab", 3105},
		{"pending", -682587753},
		{"vol-1234", -1938100996},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StringHash(tt.in))
		})
	}
}

func TestStringHash_SupplementaryRune(t *testing.T) {
	// U+1F600 encodes as the surrogate pair D83D DE00.
	want := int32(0xD83D)*31 + int32(0xDE00)
	assert.Equal(t, want, StringHash("\U0001F600"))
}

func TestScalarHashes(t *testing.T) {
	assert.Equal(t, int32(0), HashString(nil))
	assert.Equal(t, int32(0), HashBool(nil))
	assert.Equal(t, int32(1231), HashBool(aws.Bool(true)))
	assert.Equal(t, int32(1237), HashBool(aws.Bool(false)))
	assert.Equal(t, int32(42), HashInt32(aws.Int32(42)))
	assert.Equal(t, int32(0), HashInt32(nil))
	assert.Equal(t, int32(7), HashInt64(aws.Int64(7)))
	assert.Equal(t, int32(1), Int64Hash(1<<32))
	assert.Equal(t, int32(0), Int64Hash(-1))
	assert.Equal(t, int32(0), HashTime(nil))

	ts := time.UnixMilli(1500)
	assert.Equal(t, int32(1500), HashTime(&ts))
}

func TestHashBytes(t *testing.T) {
	assert.Equal(t, int32(0), HashBytes(nil))
	assert.Equal(t, int32(1), HashBytes([]byte{}))
	// h = 31*(31*1 + 2) + 1, folding from the last byte.
	assert.Equal(t, int32(31*(31+2)+1), HashBytes([]byte{1, 2}))
	assert.Equal(t, int32(31-1), HashBytes([]byte{0xff}))
}

func TestHashEnum(t *testing.T) {
	type state string
	assert.Equal(t, int32(0), HashEnum(state("")))
	assert.Equal(t, StringHash("active"), HashEnum(state("active")))
}

func TestHashList(t *testing.T) {
	var unset List[string]
	assert.Equal(t, int32(0), HashList(unset, StringHash))
	assert.Equal(t, int32(1), HashList(NewList[string](), StringHash))
	assert.Equal(t, int32(31*(31+97)+98), HashList(NewList("a", "b"), StringHash))
}

func TestHasher(t *testing.T) {
	h := NewHasher()
	assert.Equal(t, int32(1), h.Sum())

	h.Add(0)
	h.Add(5)
	assert.Equal(t, int32(31*31+5), h.Sum())
}
