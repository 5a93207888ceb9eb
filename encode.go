package dataformat

import (
	"slices"
)

// HexEncodedLength returns the number of bytes required to
// hex encode n bytes. It returns -1 if n is negative or
// larger than MaxHexEncodeLength.
func HexEncodedLength(n int) int {
	if n < 0 || n > MaxHexEncodeLength {
		return -1
	}

	return n * 2
}

// Base32EncodedLength returns the number of bytes required to
// base32 encode n bytes without padding. It returns -1 if n is
// negative or larger than MaxBase32EncodeLength.
//
// If the input is zero, zero will be returned.
func Base32EncodedLength(n int) int {
	if n < 0 || n > MaxBase32EncodeLength {
		return -1
	}

	// ceil(n*8/5) without the intermediate product
	return (n/5)*8 + ((n%5)*8+4)/5
}

func encodeHex(dst, src []byte) {
	for i, b := range src {
		dst[i*2] = hexEncodeTab[b>>4]
		dst[i*2+1] = hexEncodeTab[b&0x0F]
	}
}

// encodeBase32 packs src most significant bit first into 5 bit
// symbols. The final symbol is zero filled on the right when the
// source bit count is not a multiple of 5.
//
// invariants:
//
// - len(dst) >= Base32EncodedLength(len(src))
func encodeBase32(dst, src []byte) {
	n := len(src)
	if n == 0 {
		return
	}

	buf := uint(src[0])
	bitsLeft := 8
	next := 1
	i := 0

	for bitsLeft > 0 || next < n {
		if bitsLeft < 5 {
			if next < n {
				buf = buf<<8 | uint(src[next])
				next++
				bitsLeft += 8
			} else {
				pad := 5 - bitsLeft
				buf <<= pad
				bitsLeft += pad
			}
		}

		dst[i] = base32EncodeTab[(buf>>(bitsLeft-5))&0x1F]
		bitsLeft -= 5
		i++
	}
}

// EncodeHex writes the hex form of src into dst and returns the
// number of bytes written.
//
// This function panics if dst does not have enough space for the
// encoded form of src. Size dst with HexEncodedLength.
func EncodeHex(dst, src []byte) (int, error) {
	n := HexEncodedLength(len(src))
	if n < 0 {
		return 0, ErrHexSourceTooLong
	}

	if len(dst) < n {
		panic("dataformat: hex encode destination too short")
	}

	encodeHex(dst, src)

	return n, nil
}

// AppendHex returns the hex form of src appended to dst. If src is
// empty dst is returned as-is.
func AppendHex(dst, src []byte) ([]byte, error) {
	n := HexEncodedLength(len(src))
	if n < 0 {
		return dst, ErrHexSourceTooLong
	}
	if n == 0 {
		return dst, nil
	}

	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	encodeHex(dst[orig:], src)

	return dst, nil
}

// ToHex returns the lowercase hex form of src. An empty src gives "".
func ToHex(src []byte) (string, error) {
	n := HexEncodedLength(len(src))
	if n < 0 {
		return "", ErrHexSourceTooLong
	}
	if n == 0 {
		return "", nil
	}

	dst := make([]byte, n)

	encodeHex(dst, src)

	return string(dst), nil
}

// EncodeBase32 writes the base32 form of src into dst and returns the
// number of bytes written.
//
// This function panics if dst does not have enough space for the
// encoded form of src. Size dst with Base32EncodedLength.
func EncodeBase32(dst, src []byte) (int, error) {
	n := Base32EncodedLength(len(src))
	if n < 0 {
		return 0, ErrBase32SourceTooLong
	}

	if len(dst) < n {
		panic("dataformat: base32 encode destination too short")
	}

	encodeBase32(dst, src)

	return n, nil
}

// AppendBase32 returns the base32 form of src appended to dst. If src
// is empty dst is returned as-is.
func AppendBase32(dst, src []byte) ([]byte, error) {
	n := Base32EncodedLength(len(src))
	if n < 0 {
		return dst, ErrBase32SourceTooLong
	}
	if n == 0 {
		return dst, nil
	}

	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	encodeBase32(dst[orig:], src)

	return dst, nil
}

// ToBase32 returns the unpadded lowercase base32 form of src. An empty
// src gives "".
func ToBase32(src []byte) (string, error) {
	n := Base32EncodedLength(len(src))
	if n < 0 {
		return "", ErrBase32SourceTooLong
	}
	if n == 0 {
		return "", nil
	}

	dst := make([]byte, n)

	encodeBase32(dst, src)

	return string(dst), nil
}
