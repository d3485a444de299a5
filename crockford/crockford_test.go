package crockford

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sampleBytes = [DecodedLen]byte{
		0x01, 0x67, 0xf5, 0xd6, 0x9a, 0x0c,
		0x6b, 0xc8, 0xe4, 0xc2, 0x66, 0x3a, 0xec, 0x52, 0xf7, 0x57,
	}
	sampleUpper = "01CZTXD6GCDF4E9GK67BP55XTQ"
	sampleLower = "01cztxd6gcdf4e9gk67bp55xtq"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		src      [DecodedLen]byte
		c        Case
		expected string
	}{
		{
			name:     "zero value",
			src:      [DecodedLen]byte{},
			c:        Upper,
			expected: strings.Repeat("0", EncodedLen),
		},
		{
			name:     "all ones",
			src:      [DecodedLen]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			c:        Upper,
			expected: "7" + strings.Repeat("Z", EncodedLen-1),
		},
		{
			name:     "all ones lowercase",
			src:      [DecodedLen]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			c:        Lower,
			expected: "7" + strings.Repeat("z", EncodedLen-1),
		},
		{
			name:     "lowest bit",
			src:      [DecodedLen]byte{15: 0x01},
			c:        Upper,
			expected: strings.Repeat("0", EncodedLen-1) + "1",
		},
		{
			name:     "highest bit",
			src:      [DecodedLen]byte{0: 0x80},
			c:        Upper,
			expected: "4" + strings.Repeat("0", EncodedLen-1),
		},
		{
			name:     "sample uppercase",
			src:      sampleBytes,
			c:        Upper,
			expected: sampleUpper,
		},
		{
			name:     "sample lowercase",
			src:      sampleBytes,
			c:        Lower,
			expected: sampleLower,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Encode(tt.src, tt.c))
		})
	}
}

func TestAppendEncode(t *testing.T) {
	t.Run("appends to existing prefix", func(t *testing.T) {
		buf := []byte("id=")
		buf = AppendEncode(buf, sampleBytes, Lower)
		assert.Equal(t, "id="+sampleLower, string(buf))
	})

	t.Run("appends to nil", func(t *testing.T) {
		assert.Equal(t, sampleUpper, string(AppendEncode(nil, sampleBytes, Upper)))
	})
}

func TestEncodeAlphabet(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for range 1000 {
		var src [DecodedLen]byte
		for i := range src {
			src[i] = byte(rng.Uint32())
		}

		s := Encode(src, Upper)
		require.Len(t, s, EncodedLen)
		assert.LessOrEqual(t, s[0], byte('7'))

		for _, c := range s {
			assert.Contains(t, upperDict, string(c))
		}
	}
}

func TestDecode(t *testing.T) {
	t.Run("uppercase", func(t *testing.T) {
		out, err := Decode(sampleUpper)
		require.NoError(t, err)
		assert.Equal(t, sampleBytes, out)
	})

	t.Run("lowercase", func(t *testing.T) {
		out, err := Decode(sampleLower)
		require.NoError(t, err)
		assert.Equal(t, sampleBytes, out)
	})

	t.Run("mixed case", func(t *testing.T) {
		out, err := Decode("01CztXD6gcDF4E9gk67bP55xTq")
		require.NoError(t, err)
		assert.Equal(t, sampleBytes, out)
	})

	t.Run("maximum value", func(t *testing.T) {
		out, err := Decode("7" + strings.Repeat("Z", EncodedLen-1))
		require.NoError(t, err)
		for _, b := range out {
			assert.Equal(t, byte(0xff), b)
		}
	})

	t.Run("bytes input", func(t *testing.T) {
		out, err := DecodeBytes([]byte(sampleLower))
		require.NoError(t, err)
		assert.Equal(t, sampleBytes, out)
	})
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
		index    int
		char     rune
	}{
		{
			name:     "empty",
			input:    "",
			expected: ErrInvalidLength,
		},
		{
			name:     "too short",
			input:    sampleUpper[:25],
			expected: ErrInvalidLength,
		},
		{
			name:     "too long",
			input:    sampleUpper + "0",
			expected: ErrInvalidLength,
		},
		{
			name:     "illegal letters and punctuation",
			input:    "ILLEGAL-CHAR-STRING-HERE!",
			expected: ErrInvalidCharacter,
			index:    0,
			char:     'I',
		},
		{
			name:     "letter U",
			input:    "01CZTXD6GCDF4E9GK67BP55XTU",
			expected: ErrInvalidCharacter,
			index:    25,
			char:     'U',
		},
		{
			name:     "lowercase o",
			input:    "o1CZTXD6GCDF4E9GK67BP55XTQ",
			expected: ErrInvalidCharacter,
			index:    0,
			char:     'o',
		},
		{
			name:     "non ascii",
			input:    "01CZTXD6GCDF4E9GK67BP55Xé",
			expected: ErrInvalidCharacter,
			index:    24,
			char:     'é',
		},
		{
			name:     "first symbol 8",
			input:    "8" + strings.Repeat("0", EncodedLen-1),
			expected: ErrOverflow,
			index:    0,
			char:     '8',
		},
		{
			name:     "all Z",
			input:    strings.Repeat("Z", EncodedLen),
			expected: ErrOverflow,
			index:    0,
			char:     'Z',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)

			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, len(tt.input), decodeErr.Length)

			if tt.expected != ErrInvalidLength {
				assert.Equal(t, tt.index, decodeErr.Index)
				assert.Equal(t, tt.char, decodeErr.Char)
			}
		})
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	_, err := Decode("abc")
	assert.EqualError(t, err, "crockford: invalid length: expected 26, found 3")

	_, err = Decode("0000000000000000000000000!")
	assert.EqualError(t, err, `crockford: invalid character: '!' at index 25`)
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))

	for range 1000 {
		var src [DecodedLen]byte
		for i := range src {
			src[i] = byte(rng.Uint32())
		}

		for _, c := range []Case{Upper, Lower} {
			out, err := Decode(Encode(src, c))
			require.NoError(t, err)
			assert.Equal(t, src, out)
		}
	}
}

func TestOrderPreserved(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	for range 500 {
		var a, b [DecodedLen]byte
		for i := range a {
			a[i] = byte(rng.Uint32())
			b[i] = byte(rng.Uint32())
		}

		bytesLess := string(a[:]) < string(b[:])
		textLess := Encode(a, Upper) < Encode(b, Upper)
		assert.Equal(t, bytesLess, textLess)
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(sampleLower))
	assert.False(t, Valid("not-a-ulid"))
}

func TestCaseString(t *testing.T) {
	assert.Equal(t, "upper", Upper.String())
	assert.Equal(t, "lower", Lower.String())
	assert.Equal(t, "Case(9)", Case(9).String())
}

func BenchmarkEncode(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = Encode(sampleBytes, Upper)
	}
}

func BenchmarkDecode(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Decode(sampleUpper)
	}
}

func FuzzDecode(f *testing.F) {
	f.Add(sampleUpper)
	f.Add(sampleLower)
	f.Add("")
	f.Add(strings.Repeat("Z", EncodedLen))

	f.Fuzz(func(t *testing.T, s string) {
		out, err := Decode(s)
		if err != nil {
			return
		}

		back, err := Decode(Encode(out, Lower))
		if err != nil {
			t.Fatalf("re-decode failed: %v", err)
		}
		if back != out {
			t.Errorf("round trip mismatch for %q", s)
		}
	})
}
