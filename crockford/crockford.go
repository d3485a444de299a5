// Package crockford encodes 128-bit values as fixed-width, 26-symbol strings
// in Crockford's base32 alphabet.
//
// The alphabet excludes I, L, O and U. The 128 bits are right-aligned in the
// 130 bits carried by 26 symbols, so the first symbol is always in the range
// 0-7 and lexicographic order of encoded strings (in one case) matches the
// unsigned order of the encoded values.
//
// Decoding is case-insensitive and strict: letters outside the alphabet are
// rejected instead of being mapped to look-alike digits.
package crockford

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	// EncodedLen is the length of every encoded value.
	EncodedLen = 26

	// DecodedLen is the size of every decoded value.
	DecodedLen = 16

	upperDict = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
	lowerDict = "0123456789abcdefghjkmnpqrstvwxyz"

	invalid = 0xFF
)

// Case selects the letter case of encoded output.
type Case int

const (
	Upper Case = iota
	Lower
)

func (c Case) String() string {
	switch c {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return fmt.Sprintf("Case(%d)", int(c))
	}
}

func (c Case) dict() string {
	if c == Lower {
		return lowerDict
	}

	return upperDict
}

var (
	// ErrInvalidLength is returned when the input is not exactly EncodedLen symbols.
	ErrInvalidLength = errors.New("crockford: invalid length")

	// ErrInvalidCharacter is returned when the input holds a symbol outside the alphabet.
	ErrInvalidCharacter = errors.New("crockford: invalid character")

	// ErrOverflow is returned when the input encodes a value wider than 128 bits.
	ErrOverflow = errors.New("crockford: value overflows 128 bits")
)

// DecodeError describes why an input could not be decoded.
// It unwraps to one of ErrInvalidLength, ErrInvalidCharacter or ErrOverflow.
type DecodeError struct {
	Err error

	// Char and Index locate the offending symbol for ErrInvalidCharacter
	// and ErrOverflow. Index is a byte offset into the input.
	Char  rune
	Index int

	// Length is the input length in bytes.
	Length int
}

func (e *DecodeError) Error() string {
	switch e.Err {
	case ErrInvalidLength:
		return fmt.Sprintf("%s: expected %d, found %d", e.Err, EncodedLen, e.Length)
	case ErrInvalidCharacter, ErrOverflow:
		return fmt.Sprintf("%s: %q at index %d", e.Err, e.Char, e.Index)
	default:
		return e.Err.Error()
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

var decodeDict [256]byte

func init() {
	for i := range decodeDict {
		decodeDict[i] = invalid
	}

	for i := 0; i < len(upperDict); i++ {
		decodeDict[upperDict[i]] = byte(i)
		decodeDict[lowerDict[i]] = byte(i)
	}
}

// Encode returns the 26-symbol encoding of src in the requested case.
func Encode(src [DecodedLen]byte, c Case) string {
	var dst [EncodedLen]byte
	encode(dst[:], &src, c.dict())

	return string(dst[:])
}

// AppendEncode appends the 26-symbol encoding of src to dst and returns the
// extended buffer.
func AppendEncode(dst []byte, src [DecodedLen]byte, c Case) []byte {
	n := len(dst)
	dst = append(dst, make([]byte, EncodedLen)...)
	encode(dst[n:], &src, c.dict())

	return dst
}

// encode walks src from the least significant byte, emitting one symbol for
// every five accumulated bits. The three bits left over form the first symbol.
func encode(dst []byte, src *[DecodedLen]byte, dict string) {
	var (
		acc  uint16
		bits uint
	)

	pos := EncodedLen - 1

	for i := DecodedLen - 1; i >= 0; i-- {
		acc |= uint16(src[i]) << bits
		bits += 8

		for bits >= 5 {
			dst[pos] = dict[acc&0x1f]
			pos--
			acc >>= 5
			bits -= 5
		}
	}

	dst[0] = dict[acc&0x1f]
}

// Decode parses a 26-symbol string in any letter case.
func Decode(s string) ([DecodedLen]byte, error) {
	var out [DecodedLen]byte

	for i := 0; i < len(s); i++ {
		if decodeDict[s[i]] == invalid {
			r, _ := utf8.DecodeRuneInString(s[i:])
			return out, &DecodeError{Err: ErrInvalidCharacter, Char: r, Index: i, Length: len(s)}
		}
	}

	if len(s) != EncodedLen {
		return out, &DecodeError{Err: ErrInvalidLength, Length: len(s)}
	}

	if decodeDict[s[0]] > 7 {
		return out, &DecodeError{Err: ErrOverflow, Char: rune(s[0]), Index: 0, Length: len(s)}
	}

	var (
		acc  uint16
		bits uint
	)

	pos := DecodedLen - 1

	for i := EncodedLen - 1; i > 0; i-- {
		acc |= uint16(decodeDict[s[i]]) << bits
		bits += 5

		if bits >= 8 {
			out[pos] = byte(acc)
			pos--
			acc >>= 8
			bits -= 8
		}
	}

	acc |= uint16(decodeDict[s[0]]) << bits
	out[0] = byte(acc)

	return out, nil
}

// DecodeBytes is Decode for a byte slice.
func DecodeBytes(b []byte) ([DecodedLen]byte, error) {
	return Decode(string(b))
}

// Valid reports whether s decodes without error.
func Valid(s string) bool {
	_, err := Decode(s)
	return err == nil
}
