package shape

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
)

func TestEqualPtr(t *testing.T) {
	tests := []struct {
		name string
		a, b *string
		want bool
	}{
		{"both nil", nil, nil, true},
		{"left nil", nil, aws.String("x"), false},
		{"right nil", aws.String("x"), nil, false},
		{"same value", aws.String("x"), aws.String("x"), true},
		{"different value", aws.String("x"), aws.String("y"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EqualPtr(tt.a, tt.b))
			assert.Equal(t, tt.want, EqualPtr(tt.b, tt.a))
		})
	}
}

func TestEqualTime_ComparesInstants(t *testing.T) {
	utc := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	local := utc.In(time.FixedZone("plus2", 2*60*60))

	assert.True(t, EqualTime(&utc, &local))
	assert.False(t, EqualTime(&utc, nil))
	assert.True(t, EqualTime(nil, nil))
}

func TestEqualBytes(t *testing.T) {
	assert.True(t, EqualBytes(nil, nil))
	assert.False(t, EqualBytes(nil, []byte{}))
	assert.True(t, EqualBytes([]byte{}, []byte{}))
	assert.True(t, EqualBytes([]byte("k"), []byte("k")))
	assert.False(t, EqualBytes([]byte("k"), []byte("j")))
}

func TestEqualList(t *testing.T) {
	var unset List[string]
	eq := EqualValue[string]

	assert.True(t, EqualList(unset, List[string]{}, eq))
	assert.False(t, EqualList(unset, NewList[string](), eq), "unset differs from explicitly empty")
	assert.True(t, EqualList(NewList("a", "b"), NewList("a", "b"), eq))
	assert.False(t, EqualList(NewList("a", "b"), NewList("b", "a"), eq))
	assert.False(t, EqualList(NewList("a"), NewList("a", "a"), eq))
}
