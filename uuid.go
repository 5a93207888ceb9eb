package dataformat

import (
	"github.com/google/uuid"
)

const (
	// HexUUIDLength is the length of every hex encoded UUID.
	HexUUIDLength = 32

	// Base32UUIDLength is the length of every base32 encoded UUID.
	Base32UUIDLength = 26
)

// uuid.UUID already holds the RFC 4122 big-endian byte order, so its
// bytes feed the codecs directly.

// ToHexUUID returns the 32 character lowercase hex form of u.
func ToHexUUID(u uuid.UUID) string {
	var dst [HexUUIDLength]byte

	encodeHex(dst[:], u[:])

	return string(dst[:])
}

// ToBase32UUID returns the 26 character lowercase base32 form of u.
func ToBase32UUID(u uuid.UUID) string {
	var dst [Base32UUIDLength]byte

	encodeBase32(dst[:], u[:])

	return string(dst[:])
}

// FromHexUUID decodes a 32 character hex string in either case.
func FromHexUUID(src string) (uuid.UUID, error) {
	if len(src) != HexUUIDLength {
		return uuid.Nil, ErrInvalidHexUUIDLength
	}

	var u uuid.UUID
	if err := decodeHex(u[:], src); err != nil {
		return uuid.Nil, err
	}

	return u, nil
}

// FromBase32UUID decodes a 26 character base32 string in either case.
func FromBase32UUID(src string) (uuid.UUID, error) {
	if len(src) != Base32UUIDLength {
		return uuid.Nil, ErrInvalidBase32UUIDLength
	}

	var u uuid.UUID
	if err := decodeBase32(u[:], src); err != nil {
		return uuid.Nil, err
	}

	return u, nil
}
