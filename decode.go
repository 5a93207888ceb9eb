package dataformat

import (
	"slices"
)

const (

	// Only these remainders are possible for valid un-padded base32:
	// 0, 2, 4, 5, 7. Others imply bad input.

	validDecodeRemainder = uint8((1 << 0) | (1 << 2) | (1 << 4) | (1 << 5) | (1 << 7))
)

type encoded interface {
	~string | ~[]byte
}

// HexDecodedLength returns the number of bytes n hex symbols decode
// to. It returns -1 if n is negative or odd.
func HexDecodedLength(n int) int {
	if n < 0 || n%2 != 0 {
		return -1
	}

	return n / 2
}

// Base32DecodedLength returns the number of bytes n base32 symbols
// decode to. It returns -1 if n is negative or if no byte length
// encodes to n symbols.
//
// If the input is zero the output will be zero.
func Base32DecodedLength(n int) int {
	if n < 0 {
		return -1
	}

	rem := n % 8

	if (validDecodeRemainder & (uint8(1) << rem)) == 0 {
		return -1
	}

	return (n/8)*5 + (rem*5)/8
}

// invariants:
//
// - len(src) is even
//
// - len(dst) >= len(src)/2
func decodeHex[T encoded](dst []byte, src T) error {
	for i := 0; i < len(src); i += 2 {
		hi := hexDecodeTab[src[i]]
		lo := hexDecodeTab[src[i+1]]

		if (hi | lo) == invalidSymbol {
			return ErrInvalidHexChar
		}

		dst[i/2] = hi<<4 | lo
	}

	return nil
}

// decodeBase32 unpacks 5 bit symbols into bytes most significant bit
// first. Bits remaining after the last whole byte are dropped without
// inspection.
//
// invariants:
//
// - len(src) is a valid base32 encoded value length
//
// - len(dst) >= Base32DecodedLength(len(src))
func decodeBase32[T encoded](dst []byte, src T) error {
	var buf uint
	bits := 0
	j := 0

	for i := 0; i < len(src); i++ {
		v := base32DecodeTab[src[i]]
		if v == invalidSymbol {
			return ErrInvalidBase32Char
		}

		buf = buf<<5 | uint(v)
		bits += 5

		if bits >= 8 {
			bits -= 8
			dst[j] = byte(buf >> bits)
			j++
		}
	}

	return nil
}

func validSymbols[T encoded](tab *[256]byte, src T) bool {
	for i := 0; i < len(src); i++ {
		if tab[src[i]] == invalidSymbol {
			return false
		}
	}

	return true
}

// IsHex reports whether src would decode successfully with FromHex.
// The empty string is valid hex.
func IsHex(src string) bool {
	return HexDecodedLength(len(src)) >= 0 && validSymbols(&hexDecodeTab, src)
}

// IsBase32 reports whether src would decode successfully with
// FromBase32. The empty string is valid base32.
func IsBase32(src string) bool {
	return Base32DecodedLength(len(src)) >= 0 && validSymbols(&base32DecodeTab, src)
}

// DecodeHex decodes src into dst and returns the number of bytes
// written.
//
// This function panics if src has a valid length and dst does not
// have enough space for the decoded form of src. Size dst with
// HexDecodedLength.
//
// If an error is returned dst is left cleared of anything this call
// wrote to it.
func DecodeHex(dst, src []byte) (int, error) {
	n := HexDecodedLength(len(src))
	if n < 0 {
		return 0, ErrInvalidHexLength
	}

	if len(dst) < n {
		panic("dataformat: hex decode destination too short")
	}

	if err := decodeHex(dst, src); err != nil {
		clear(dst[:n])
		return 0, err
	}

	return n, nil
}

// AppendDecodeHex returns the decoded form of src appended to dst. If
// src is empty dst is returned as-is.
//
// If an error is returned so is the original dst, without any
// partially decoded bytes.
func AppendDecodeHex(dst []byte, src string) ([]byte, error) {
	n := HexDecodedLength(len(src))
	if n < 0 {
		return dst, ErrInvalidHexLength
	}

	return appendDecode(dst, src, n, decodeHex[string])
}

// FromHex returns the decoded form of a hex string in either case. If
// src is empty nil is returned.
func FromHex(src string) ([]byte, error) {
	n := HexDecodedLength(len(src))
	if n < 0 {
		return nil, ErrInvalidHexLength
	}

	dst, err := appendDecode(nil, src, n, decodeHex[string])
	if err != nil {
		return nil, err
	}

	return dst, nil
}

// DecodeBase32 decodes src into dst and returns the number of bytes
// written.
//
// This function panics if src has a valid length and dst does not
// have enough space for the decoded form of src. Size dst with
// Base32DecodedLength.
//
// If an error is returned dst is left cleared of anything this call
// wrote to it.
func DecodeBase32(dst, src []byte) (int, error) {
	n := Base32DecodedLength(len(src))
	if n < 0 {
		return 0, ErrInvalidBase32Length
	}

	if len(dst) < n {
		panic("dataformat: base32 decode destination too short")
	}

	if err := decodeBase32(dst, src); err != nil {
		clear(dst[:n])
		return 0, err
	}

	return n, nil
}

// AppendDecodeBase32 returns the decoded form of src appended to dst.
// If src is empty dst is returned as-is.
//
// If an error is returned so is the original dst, without any
// partially decoded bytes.
func AppendDecodeBase32(dst []byte, src string) ([]byte, error) {
	n := Base32DecodedLength(len(src))
	if n < 0 {
		return dst, ErrInvalidBase32Length
	}

	return appendDecode(dst, src, n, decodeBase32[string])
}

// FromBase32 returns the decoded form of a base32 string in either
// case. If src is empty nil is returned.
func FromBase32(src string) ([]byte, error) {
	n := Base32DecodedLength(len(src))
	if n < 0 {
		return nil, ErrInvalidBase32Length
	}

	dst, err := appendDecode(nil, src, n, decodeBase32[string])
	if err != nil {
		return nil, err
	}

	return dst, nil
}

// appendDecode grows dst by exactly n bytes and decodes into them.
// On failure the grown region is cleared and dst is returned at its
// original length.
func appendDecode(dst []byte, src string, n int, decode func([]byte, string) error) ([]byte, error) {
	if n == 0 {
		return dst, nil
	}

	base := dst
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	if err := decode(dst[orig:], src); err != nil {
		clear(dst[orig:])
		return base, err
	}

	return dst, nil
}
