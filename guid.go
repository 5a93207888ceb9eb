package dataformat

import (
	"github.com/google/uuid"
)

// GUID is a UUID in the in-memory layout used by Microsoft COM and .NET.
// The first three fields (4, 2 and 2 bytes) are stored little-endian and
// the trailing 8 bytes are stored as-is.
//
// Text forms produced from a GUID are always the canonical big-endian
// ones, so a GUID and the equivalent uuid.UUID encode identically.
type GUID [16]byte

// swapFields converts between the GUID layout and canonical order.
// It is its own inverse.
func swapFields(b [16]byte) [16]byte {
	b[0], b[1], b[2], b[3] = b[3], b[2], b[1], b[0]
	b[4], b[5] = b[5], b[4]
	b[6], b[7] = b[7], b[6]

	return b
}

// GUIDFromUUID returns u in GUID layout.
func GUIDFromUUID(u uuid.UUID) GUID {
	return GUID(swapFields(u))
}

// UUID returns g in canonical big-endian order.
func (g GUID) UUID() uuid.UUID {
	return uuid.UUID(swapFields(g))
}

// String returns the dashed canonical form, for example
// 1c0fcf80-5b4e-4fc9-944a-7aa4549d7cf7.
func (g GUID) String() string {
	return g.UUID().String()
}

// Hex returns the 32 character hex form of g.
func (g GUID) Hex() string {
	return ToHexUUID(g.UUID())
}

// Base32 returns the 26 character base32 form of g.
func (g GUID) Base32() string {
	return ToBase32UUID(g.UUID())
}

// GUIDFromHex decodes a 32 character hex string into GUID layout.
func GUIDFromHex(src string) (GUID, error) {
	u, err := FromHexUUID(src)
	if err != nil {
		return GUID{}, err
	}

	return GUIDFromUUID(u), nil
}

// GUIDFromBase32 decodes a 26 character base32 string into GUID layout.
func GUIDFromBase32(src string) (GUID, error) {
	u, err := FromBase32UUID(src)
	if err != nil {
		return GUID{}, err
	}

	return GUIDFromUUID(u), nil
}
