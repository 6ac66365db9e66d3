package shape

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"
)

// Redacted replaces the value of sensitive members.
const Redacted = "***Sensitive Data Redacted***"

// Printer renders a shape as {Key: value,Key: value}, skipping absent
// members. Callers add members in declaration order.
type Printer struct {
	b strings.Builder
	n int
}

// NewPrinter returns an empty Printer.
func NewPrinter() *Printer {
	return &Printer{}
}

// Field appends an already rendered member.
func (p *Printer) Field(key, value string) {
	if p.n > 0 {
		p.b.WriteByte(',')
	}
	p.b.WriteString(key)
	p.b.WriteString(": ")
	p.b.WriteString(value)
	p.n++
}

// Str appends an optional string.
func (p *Printer) Str(key string, v *string) {
	if v != nil {
		p.Field(key, *v)
	}
}

// Bool appends an optional bool.
func (p *Printer) Bool(key string, v *bool) {
	if v != nil {
		p.Field(key, strconv.FormatBool(*v))
	}
}

// Int32 appends an optional int32.
func (p *Printer) Int32(key string, v *int32) {
	if v != nil {
		p.Field(key, strconv.FormatInt(int64(*v), 10))
	}
}

// Int64 appends an optional int64.
func (p *Printer) Int64(key string, v *int64) {
	if v != nil {
		p.Field(key, strconv.FormatInt(*v, 10))
	}
}

// Time appends an optional timestamp in RFC 3339.
func (p *Printer) Time(key string, v *time.Time) {
	if v != nil {
		p.Field(key, v.Format(time.RFC3339))
	}
}

// Bytes appends an optional blob as standard base64.
func (p *Printer) Bytes(key string, v []byte) {
	if v != nil {
		p.Field(key, base64.StdEncoding.EncodeToString(v))
	}
}

// Enum appends an enum wire string unless it is empty.
func (p *Printer) Enum(key, v string) {
	if v != "" {
		p.Field(key, v)
	}
}

// Sensitive appends the redaction marker when the member is present.
func (p *Printer) Sensitive(key string, present bool) {
	if present {
		p.Field(key, Redacted)
	}
}

// Strings appends a string list as [a, b].
func (p *Printer) Strings(key string, l List[string]) {
	PrintList(p, key, l, func(v string) string { return v })
}

// String returns the rendered shape.
func (p *Printer) String() string {
	return "{" + p.b.String() + "}"
}

// PrintList appends a set list, rendering each element with elem.
func PrintList[T any](p *Printer, key string, l List[T], elem func(T) string) {
	if !l.set {
		return
	}
	p.Field(key, FormatList(l, elem))
}

// FormatList renders list elements as [a, b].
func FormatList[T any](l List[T], elem func(T) string) string {
	parts := make([]string, len(l.items))
	for i, v := range l.items {
		parts[i] = elem(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
