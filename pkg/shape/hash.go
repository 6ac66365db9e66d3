package shape

import (
	"time"
	"unicode/utf16"
)

const (
	hashSeed  int32 = 1
	hashPrime int32 = 31

	hashTrue  int32 = 1231
	hashFalse int32 = 1237
)

// Hasher folds field hashes in declaration order: h = 31*h + field.
type Hasher struct {
	sum int32
}

// NewHasher returns a Hasher seeded at 1.
func NewHasher() Hasher {
	return Hasher{sum: hashSeed}
}

// Add folds one field hash into the running sum. Absent fields add 0.
func (h *Hasher) Add(v int32) {
	h.sum = hashPrime*h.sum + v
}

// Sum returns the accumulated hash.
func (h Hasher) Sum() int32 {
	return h.sum
}

// StringHash is the polynomial string hash over UTF-16 code units.
func StringHash(s string) int32 {
	var h int32
	for _, r := range s {
		if r < 0x10000 {
			h = hashPrime*h + int32(r)
			continue
		}
		r1, r2 := utf16.EncodeRune(r)
		h = hashPrime*h + int32(r1)
		h = hashPrime*h + int32(r2)
	}
	return h
}

// HashString hashes an optional string.
func HashString(v *string) int32 {
	if v == nil {
		return 0
	}
	return StringHash(*v)
}

// HashBool hashes an optional bool.
func HashBool(v *bool) int32 {
	if v == nil {
		return 0
	}
	if *v {
		return hashTrue
	}
	return hashFalse
}

// HashInt32 hashes an optional int32 as its own value.
func HashInt32(v *int32) int32 {
	if v == nil {
		return 0
	}
	return *v
}

// Int64Hash folds the high and low words of v.
func Int64Hash(v int64) int32 {
	return int32(v ^ int64(uint64(v)>>32))
}

// HashInt64 hashes an optional int64.
func HashInt64(v *int64) int32 {
	if v == nil {
		return 0
	}
	return Int64Hash(*v)
}

// HashTime hashes an optional timestamp by its Unix milliseconds.
func HashTime(v *time.Time) int32 {
	if v == nil {
		return 0
	}
	return Int64Hash(v.UnixMilli())
}

// HashBytes hashes a blob from the last byte to the first, bytes signed.
func HashBytes(v []byte) int32 {
	if v == nil {
		return 0
	}
	h := hashSeed
	for i := len(v) - 1; i >= 0; i-- {
		h = hashPrime*h + int32(int8(v[i]))
	}
	return h
}

// HashEnum hashes an enum by its wire string. The empty value is absent.
func HashEnum[E ~string](v E) int32 {
	if v == "" {
		return 0
	}
	return StringHash(string(v))
}

// HashList hashes a list element by element; an unset list hashes to 0.
func HashList[T any](l List[T], elem func(T) int32) int32 {
	if !l.set {
		return 0
	}
	h := hashSeed
	for _, v := range l.items {
		h = hashPrime*h + elem(v)
	}
	return h
}
