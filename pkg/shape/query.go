package shape

import "github.com/aws/aws-sdk-go-v2/aws/protocol/query"

// QueryMarshaler is implemented by shapes that write themselves as EC2
// query members.
type QueryMarshaler interface {
	MarshalQuery(value query.Value) error
}

// MarshalQueryList writes each element under value as Name.N. EC2 lists
// are flattened, so value should come from Object.FlatKey. Nil elements are
// dropped and N stays contiguous over the rest; a list with nothing to
// write writes nothing.
func MarshalQueryList[T any, P interface {
	*T
	QueryMarshaler
}](l List[P], value query.Value) error {
	items := make([]P, 0, len(l.items))
	for _, v := range l.items {
		if v != nil {
			items = append(items, v)
		}
	}
	if len(items) == 0 {
		return nil
	}
	array := value.Array("item")
	for _, v := range items {
		if err := v.MarshalQuery(array.Value()); err != nil {
			return err
		}
	}
	return nil
}

// MarshalQueryStrings writes a string list under value as Name.N.
func MarshalQueryStrings(l List[string], value query.Value) {
	if len(l.items) == 0 {
		return
	}
	array := value.Array("item")
	for _, v := range l.items {
		array.Value().String(v)
	}
}

// MarshalQueryEnums writes an enum list under value as Name.N.
func MarshalQueryEnums[E ~string](l List[E], value query.Value) {
	if len(l.items) == 0 {
		return
	}
	array := value.Array("item")
	for _, v := range l.items {
		array.Value().String(string(v))
	}
}
