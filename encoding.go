package ulid

import (
	"database/sql/driver"
	"fmt"

	"github.com/vitalvas/ulid/crockford"
	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler using the lowercase form.
func (id ULID) MarshalText() ([]byte, error) {
	return id.AppendFormat(make([]byte, 0, EncodedSize), crockford.Lower), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Both letter cases are accepted.
func (id *ULID) UnmarshalText(text []byte) error {
	parsed, err := ParseBytes(text)
	if err != nil {
		return err
	}

	*id = parsed

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (id ULID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ULID) UnmarshalBinary(data []byte) error {
	parsed, err := FromSlice(data)
	if err != nil {
		return err
	}

	*id = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (id ULID) MarshalYAML() (any, error) {
	return id.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The node must be a scalar
// holding the text form.
func (id *ULID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("ulid: yaml line %d: expected scalar, got kind %d", value.Line, value.Kind)
	}

	parsed, err := Parse(value.Value)
	if err != nil {
		return fmt.Errorf("ulid: yaml line %d: %w", value.Line, err)
	}

	*id = parsed

	return nil
}

// Scan implements sql.Scanner. It accepts the 16-byte binary form, the
// text form as string or bytes, and NULL, which scans to Min.
func (id *ULID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = Min
		return nil

	case string:
		return id.UnmarshalText([]byte(v))

	case []byte:
		if len(v) == BinarySize {
			return id.UnmarshalBinary(v)
		}

		return id.UnmarshalText(v)

	default:
		return fmt.Errorf("%w: %T", ErrScanType, src)
	}
}

// Value implements driver.Valuer, storing the 16-byte binary form.
func (id ULID) Value() (driver.Value, error) {
	return id.MarshalBinary()
}
