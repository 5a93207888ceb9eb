package dataformat

const (
	invalidSymbol = 0xFF

	// hex is the first 16 symbols of the base32 alphabet
	symbols = "0123456789abcdefghjkmnpqrstvwxyz"
)

//
// encode tables are lowercase, decode tables are case insensitive
//

var (
	base32EncodeTab = [32]byte([]byte(symbols))
	hexEncodeTab    = [16]byte([]byte(symbols[:16]))

	base32DecodeTab = newDecodeTab(base32EncodeTab[:])
	hexDecodeTab    = newDecodeTab(hexEncodeTab[:])
)

func newDecodeTab(alphabet []byte) [256]byte {
	const lowToUp = ('a' - 'A')

	var dec [256]byte

	for i := range dec {
		dec[i] = invalidSymbol
	}

	for i, v := range alphabet {
		dec[v] = byte(i)
		if v > '9' {
			dec[v-lowToUp] = byte(i)
		}
	}

	return dec
}
