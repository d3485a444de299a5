package ulid

import "github.com/google/uuid"

// UUID returns the ULID's bits as a UUID. No version or variant bits are
// set, so the result round-trips through FromUUID unchanged.
func (id ULID) UUID() uuid.UUID {
	return uuid.UUID(id)
}

// FromUUID reinterprets the 128 bits of u as a ULID.
func FromUUID(u uuid.UUID) ULID {
	return ULID(u)
}

// UUIDBytes returns the bytes in standard UUID layout, which is the ULID
// layout itself.
func (id ULID) UUIDBytes() [BinarySize]byte {
	return id
}

// FromUUIDBytes is the inverse of UUIDBytes.
func FromUUIDBytes(b [BinarySize]byte) ULID {
	return ULID(b)
}
