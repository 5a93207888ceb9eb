// Case insensitive hex and Crockford style base32 codecs with fixed width
// UUID adapters.
//
// Both codecs share one lowercase alphabet. Encoders always emit lowercase
// symbols and never pad. Decoders accept either case and reject everything
// outside the alphabet, including the ambiguous base32 letters i, l, o and u.
//
// Base32 decoding is permissive about the tail: bits left over after the
// last whole byte are dropped without checking that they are zero. A string
// such as "zz" therefore decodes to the same single byte as the canonical
// "zw". Callers needing canonical input can compare against a re-encode.
//
// A nil byte slice and an empty byte slice are the same value everywhere in
// this package. Decoding an empty string yields a nil slice.

package dataformat

import (
	"errors"
	"math"
)

const (
	// MaxHexEncodeLength is the largest source length ToHex accepts. The
	// encoded length of anything larger would not fit a signed 32-bit length.
	MaxHexEncodeLength = math.MaxInt32 / 2

	// MaxBase32EncodeLength is the largest source length ToBase32 accepts.
	MaxBase32EncodeLength = math.MaxInt32 * 5 / 8
)

// Error classes. Every error returned by this package matches exactly one of
// these via errors.Is.
var (
	ErrInvalidLength    = errors.New("invalid length")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrOutOfRange       = errors.New("length out of range")
)

var (
	ErrInvalidHexLength = &codecError{ErrInvalidLength, "invalid hex length"}
	ErrInvalidHexChar   = &codecError{ErrInvalidCharacter, "invalid hex character"}
	ErrHexSourceTooLong = &codecError{ErrOutOfRange, "hex encode source too long"}

	ErrInvalidBase32Length = &codecError{ErrInvalidLength, "invalid base32 length"}
	ErrInvalidBase32Char   = &codecError{ErrInvalidCharacter, "invalid base32 character"}
	ErrBase32SourceTooLong = &codecError{ErrOutOfRange, "base32 encode source too long"}

	ErrInvalidHexUUIDLength    = &codecError{ErrInvalidLength, "invalid hex uuid length: must be 32 characters"}
	ErrInvalidBase32UUIDLength = &codecError{ErrInvalidLength, "invalid base32 uuid length: must be 26 characters"}
)

type codecError struct {
	class error
	msg   string
}

func (e *codecError) Error() string {
	return e.msg
}

func (e *codecError) Unwrap() error {
	return e.class
}
