package shape

import (
	"bytes"
	"net/url"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws/protocol/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	key   string
	value string
}

func (p *pair) String() string    { return "{Key: " + p.key + "}" }
func (p *pair) ShapeName() string { return "Pair" }
func (p *pair) Hash() int32       { return StringHash(p.key) }

func (p *pair) MarshalQuery(value query.Value) error {
	object := value.Object()
	object.Key("Key").String(p.key)
	object.Key("Value").String(p.value)
	return nil
}

func TestRegistry(t *testing.T) {
	Clear()
	defer Clear()

	Register("Pair", func() Shape { return &pair{} })
	Register("Another", func() Shape { return &pair{key: "x"} })

	s, ok := New("Pair")
	require.True(t, ok)
	assert.Equal(t, "Pair", s.ShapeName())

	_, ok = New("Missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"Another", "Pair"}, Names())
}

func encodeQuery(t *testing.T, fn func(*query.Object)) url.Values {
	t.Helper()
	var buf bytes.Buffer
	enc := query.NewEncoder(&buf)
	fn(enc.Object())
	require.NoError(t, enc.Encode())
	values, err := url.ParseQuery(buf.String())
	require.NoError(t, err)
	return values
}

func TestMarshalQueryList_Flattened(t *testing.T) {
	values := encodeQuery(t, func(o *query.Object) {
		l := NewList(&pair{"Name", "a"}, &pair{"Env", "prod"})
		require.NoError(t, MarshalQueryList(l, o.FlatKey("Tag")))
		MarshalQueryStrings(NewList("i-1", "i-2"), o.FlatKey("InstanceId"))
	})

	assert.Equal(t, "Name", values.Get("Tag.1.Key"))
	assert.Equal(t, "a", values.Get("Tag.1.Value"))
	assert.Equal(t, "Env", values.Get("Tag.2.Key"))
	assert.Equal(t, "i-1", values.Get("InstanceId.1"))
	assert.Equal(t, "i-2", values.Get("InstanceId.2"))
}

func TestMarshalQueryList_EmptyWritesNothing(t *testing.T) {
	values := encodeQuery(t, func(o *query.Object) {
		require.NoError(t, MarshalQueryList(NewList[*pair](), o.FlatKey("Tag")))
		MarshalQueryStrings(NewList[string](), o.FlatKey("InstanceId"))
	})

	assert.Empty(t, values)
}

func TestMarshalQueryList_SkipsNilElements(t *testing.T) {
	values := encodeQuery(t, func(o *query.Object) {
		l := NewList[*pair](nil, &pair{"Name", "a"}, nil, &pair{"Env", "prod"})
		require.NoError(t, MarshalQueryList(l, o.FlatKey("Tag")))
	})

	assert.Equal(t, url.Values{
		"Tag.1.Key":   {"Name"},
		"Tag.1.Value": {"a"},
		"Tag.2.Key":   {"Env"},
		"Tag.2.Value": {"prod"},
	}, values)
}

func TestMarshalQueryList_OnlyNilWritesNothing(t *testing.T) {
	values := encodeQuery(t, func(o *query.Object) {
		require.NoError(t, MarshalQueryList(NewList[*pair](nil, nil), o.FlatKey("Tag")))
	})

	assert.Empty(t, values)
}
