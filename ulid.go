// Package ulid implements Universally Unique Lexicographically Sortable
// Identifiers.
//
// A ULID is 16 bytes, big-endian: a 48-bit count of milliseconds since the
// Unix epoch followed by 80 bits of entropy. Byte-wise comparison orders
// identifiers by time first and entropy second, and the 26-symbol Crockford
// base32 text form preserves that order.
//
//	id := ulid.MustParse("01CZTXD6GCDF4E9GK67BP55XTQ")
//	fmt.Println(id)         // 01cztxd6gcdf4e9gk67bp55xtq
//	fmt.Println(id.Upper()) // 01CZTXD6GCDF4E9GK67BP55XTQ
//	fmt.Println(id.Time())  // 2018-12-28 17:22:21.324 +0000 UTC
//
// ULID values are immutable and safe to share. Generators are not: see
// Monotonic and Locked.
package ulid

import (
	"bytes"
	"encoding/binary"
	"slices"

	"github.com/vitalvas/ulid/crockford"
)

const (
	// BinarySize is the size of a ULID in bytes.
	BinarySize = 16

	// EncodedSize is the length of the text form of a ULID.
	EncodedSize = crockford.EncodedLen

	// EntropySize is the size of the entropy component in bytes.
	EntropySize = 10

	// MaxTimestamp is the largest millisecond count a ULID can hold.
	MaxTimestamp uint64 = 1<<48 - 1
)

// ULID is a 128-bit identifier. The zero value is Min.
type ULID [BinarySize]byte

var (
	// Min is the smallest ULID, all bits zero.
	Min = ULID{}

	// Max is the largest ULID, all bits one.
	Max = ULID{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	}
)

// FromBytes returns the ULID holding b.
func FromBytes(b [BinarySize]byte) ULID {
	return ULID(b)
}

// FromSlice copies b into a ULID. b must be exactly BinarySize bytes long.
func FromSlice(b []byte) (ULID, error) {
	var id ULID
	if len(b) != BinarySize {
		return id, bufferSizeError(len(b))
	}

	copy(id[:], b)

	return id, nil
}

// FromUint128 builds a ULID from the high and low halves of a 128-bit integer.
func FromUint128(hi, lo uint64) ULID {
	var id ULID
	binary.BigEndian.PutUint64(id[:8], hi)
	binary.BigEndian.PutUint64(id[8:], lo)

	return id
}

// FromFields builds a ULID from five big-endian fields: the high 32 and low
// 16 bits of the timestamp, then 16, 32 and 32 bits of entropy.
func FromFields(f1 uint32, f2, f3 uint16, f4, f5 uint32) ULID {
	var id ULID
	binary.BigEndian.PutUint32(id[0:4], f1)
	binary.BigEndian.PutUint16(id[4:6], f2)
	binary.BigEndian.PutUint16(id[6:8], f3)
	binary.BigEndian.PutUint32(id[8:12], f4)
	binary.BigEndian.PutUint32(id[12:16], f5)

	return id
}

// Parse decodes the 26-symbol text form of a ULID in any letter case.
func Parse(s string) (ULID, error) {
	b, err := crockford.Decode(s)
	if err != nil {
		return ULID{}, err
	}

	return ULID(b), nil
}

// ParseBytes is Parse for a byte slice.
func ParseBytes(b []byte) (ULID, error) {
	out, err := crockford.DecodeBytes(b)
	if err != nil {
		return ULID{}, err
	}

	return ULID(out), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) ULID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return id
}

// String returns the lowercase text form.
func (id ULID) String() string {
	return crockford.Encode(id, crockford.Lower)
}

// Upper returns the uppercase text form.
func (id ULID) Upper() string {
	return crockford.Encode(id, crockford.Upper)
}

// Lower returns the lowercase text form.
func (id ULID) Lower() string {
	return crockford.Encode(id, crockford.Lower)
}

// AppendFormat appends the text form in case c to dst.
func (id ULID) AppendFormat(dst []byte, c crockford.Case) []byte {
	return crockford.AppendEncode(dst, id, c)
}

// Bytes returns a copy of the binary form.
func (id ULID) Bytes() []byte {
	b := make([]byte, BinarySize)
	copy(b, id[:])

	return b
}

// Uint128 returns the high and low halves of the ULID as a 128-bit integer.
func (id ULID) Uint128() (hi, lo uint64) {
	return binary.BigEndian.Uint64(id[:8]), binary.BigEndian.Uint64(id[8:])
}

// Fields returns the five fields accepted by FromFields.
func (id ULID) Fields() (f1 uint32, f2, f3 uint16, f4, f5 uint32) {
	return binary.BigEndian.Uint32(id[0:4]),
		binary.BigEndian.Uint16(id[4:6]),
		binary.BigEndian.Uint16(id[6:8]),
		binary.BigEndian.Uint32(id[8:12]),
		binary.BigEndian.Uint32(id[12:16])
}

// Compare returns -1, 0 or +1 as id sorts before, equal to or after other.
func (id ULID) Compare(other ULID) int {
	return bytes.Compare(id[:], other[:])
}

func (id ULID) Less(other ULID) bool {
	return id.Compare(other) < 0
}

func (id ULID) IsZero() bool {
	return id == Min
}

// Sort orders ids in place, oldest first.
func Sort(ids []ULID) {
	slices.SortFunc(ids, ULID.Compare)
}
