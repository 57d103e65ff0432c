package parser

import (
	"io"
	"math/big"
)

// fieldCodec normalizes raw little-endian coefficient bytes into canonical
// residues modulo the circuit prime.
//
// The file format allows non-minimal encodings: a value may carry any number
// of most-significant zero bytes up to the fixed field size. The codec strips
// the padding and reduces, so every raw encoding of the same residue decodes
// to the identical element.
type fieldCodec struct {
	prime *big.Int
	buf   []byte // scratch for one serialized coefficient
}

func newFieldCodec(h *Header) *fieldCodec {
	return &fieldCodec{
		prime: h.Prime(),
		buf:   make([]byte, h.FieldSize),
	}
}

// read consumes one fixed-size coefficient from r and decodes it.
func (c *fieldCodec) read(r io.Reader) (*big.Int, error) {
	if _, err := io.ReadFull(r, c.buf); err != nil {
		return nil, &FieldDecodeError{Err: err}
	}
	return c.decode(c.buf), nil
}

// decode converts little-endian raw bytes into the canonical residue. It is
// total for fixed-length input: all-zero bytes yield the additive identity,
// anything else is reduced into [0, prime).
func (c *fieldCodec) decode(raw []byte) *big.Int {
	// The most significant byte is last in little-endian order.
	msb := len(raw) - 1
	for msb >= 0 && raw[msb] == 0 {
		msb--
	}
	if msb < 0 {
		return new(big.Int)
	}

	be := make([]byte, msb+1)
	for i := 0; i <= msb; i++ {
		be[i] = raw[msb-i]
	}
	v := new(big.Int).SetBytes(be)
	if v.Cmp(c.prime) >= 0 {
		v.Mod(v, c.prime)
	}
	return v
}
