package dataformat

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var uuidVectors = []struct {
	uuid   string
	hex    string
	base32 string
}{
	{
		uuid:   "00000000-0000-0000-0000-000000000000",
		hex:    "00000000000000000000000000000000",
		base32: "00000000000000000000000000",
	},
	{
		uuid:   "FFFFFFFF-FFFF-FFFF-FFFF-FFFFFFFFFFFF",
		hex:    "ffffffffffffffffffffffffffffffff",
		base32: "zzzzzzzzzzzzzzzzzzzzzzzzzw",
	},
	{
		uuid:   "1C0FCF80-5B4E-4FC9-944A-7AA4549D7CF7",
		hex:    "1c0fcf805b4e4fc9944a7aa4549d7cf7",
		base32: "3g7wz02v9s7wk52afaj597bwyw",
	},
}

func TestUUIDVectors(t *testing.T) {
	t.Parallel()

	for _, v := range uuidVectors {
		t.Run(v.uuid, func(t *testing.T) {
			t.Parallel()

			is := assert.New(t)

			u := uuid.MustParse(v.uuid)

			is.Equal(v.hex, ToHexUUID(u))
			is.Equal(v.base32, ToBase32UUID(u))

			for _, s := range []string{v.hex, strings.ToUpper(v.hex)} {
				resp, err := FromHexUUID(s)
				is.Nil(err)
				is.Equal(u, resp)
			}

			for _, s := range []string{v.base32, strings.ToUpper(v.base32)} {
				resp, err := FromBase32UUID(s)
				is.Nil(err)
				is.Equal(u, resp)
			}

			// the adapters agree with the general purpose codecs
			s, err := ToHex(u[:])
			is.Nil(err)
			is.Equal(v.hex, s)

			s, err = ToBase32(u[:])
			is.Nil(err)
			is.Equal(v.base32, s)
		})
	}
}

func TestUUIDLengths(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	u := uuid.New()

	is.Len(ToHexUUID(u), HexUUIDLength)
	is.Len(ToBase32UUID(u), Base32UUIDLength)
	is.Equal(HexUUIDLength, HexEncodedLength(16))
	is.Equal(Base32UUIDLength, Base32EncodedLength(16))
}

func TestFromHexUUIDErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		when   string
		src    string
		expErr error
	}{
		{"empty", "", ErrInvalidHexUUIDLength},
		{"one short", strings.Repeat("0", 31), ErrInvalidHexUUIDLength},
		{"one long", strings.Repeat("0", 33), ErrInvalidHexUUIDLength},
		{"base32 length", strings.Repeat("0", 26), ErrInvalidHexUUIDLength},
		{"dashed form", "1c0fcf80-5b4e-4fc9-944a-7aa4549d7cf7", ErrInvalidHexUUIDLength},
		{"invalid char", "1c0fcf805b4e4fc9944a7aa4549d7cfg", ErrInvalidHexChar},
		{"leading space", " c0fcf805b4e4fc9944a7aa4549d7cf7", ErrInvalidHexChar},
	} {
		t.Run("when "+tc.when, func(t *testing.T) {
			is := assert.New(t)

			resp, err := FromHexUUID(tc.src)
			is.Equal(tc.expErr, err)
			is.Equal(uuid.Nil, resp)
		})
	}

	is := assert.New(t)

	_, err := FromHexUUID("")
	is.ErrorIs(err, ErrInvalidLength)
	is.NotEqual(ErrInvalidHexLength.Error(), err.Error())
}

func TestFromBase32UUIDErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		when   string
		src    string
		expErr error
	}{
		{"empty", "", ErrInvalidBase32UUIDLength},
		{"one short", strings.Repeat("0", 25), ErrInvalidBase32UUIDLength},
		{"one long", strings.Repeat("0", 27), ErrInvalidBase32UUIDLength},
		{"hex length", strings.Repeat("0", 32), ErrInvalidBase32UUIDLength},
		{"excluded letter", "3g7wz02v9s7wk52afaj597bwyu", ErrInvalidBase32Char},
		{"excluded letter upper", "3G7WZ02V9S7WK52AFAJ597BWYO", ErrInvalidBase32Char},
		{"punctuation", "3g7wz02v9s7wk52afaj597bw-w", ErrInvalidBase32Char},
	} {
		t.Run("when "+tc.when, func(t *testing.T) {
			is := assert.New(t)

			resp, err := FromBase32UUID(tc.src)
			is.Equal(tc.expErr, err)
			is.Equal(uuid.Nil, resp)
		})
	}

	is := assert.New(t)

	_, err := FromBase32UUID("0")
	is.ErrorIs(err, ErrInvalidLength)
	is.NotEqual(ErrInvalidBase32Length.Error(), err.Error())
}

func TestUUIDRoundTrip(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	for range 64 {
		u := uuid.New()

		resp, err := FromBase32UUID(ToBase32UUID(u))
		is.Nil(err)
		is.Equal(u, resp)

		resp, err = FromHexUUID(ToHexUUID(u))
		is.Nil(err)
		is.Equal(u, resp)
	}
}
