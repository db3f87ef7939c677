package mersenne

import "math/big"

// Int is a value modulo M. The zero value is ready to use and represents 0.
// An Int must not be copied after first use; pass pointers.
type Int struct {
	n  big.Int
	hi big.Int // scratch for SquareMod
}

// FromBytes decodes a big-endian byte slice. Shorter inputs behave as if
// left-padded with zeros.
func FromBytes(b []byte) *Int {
	return new(Int).SetBytes(b)
}

func (x *Int) SetBytes(b []byte) *Int {
	x.n.SetBytes(b)
	return x
}

// Bytes returns the minimal big-endian encoding of x. Zero encodes as an
// empty slice.
func (x *Int) Bytes() []byte {
	b := x.n.Bytes()
	if b == nil {
		return []byte{}
	}
	return b
}

// SquareMod sets x to x^2 mod M and returns x.
//
// The product is folded with 2^1279 ≡ 1 (mod M): the bits above position
// 1279 are shifted down and added to the low bits. The sum is below 2^1280,
// so a single carry correction is enough. The result lies in [0, M]; M is
// left as is.
func (x *Int) SquareMod() *Int {
	n := &x.n
	n.Mul(n, n)
	x.hi.Rsh(n, Bits)
	n.And(n, params.Modulus)
	n.Add(n, &x.hi)
	if n.Bit(Bits) == 1 {
		n.SetBit(n, Bits, 0)
		n.Add(n, bigOne)
	}
	return x
}

// XorOne toggles the lowest bit of x and returns x.
func (x *Int) XorOne() *Int {
	x.n.SetBit(&x.n, 0, x.n.Bit(0)^1)
	return x
}

// NegateMod returns M - x as a new Int.
func (x *Int) NegateMod() *Int {
	r := new(Int)
	r.n.Sub(params.Modulus, &x.n)
	return r
}

func (x *Int) Clone() *Int {
	r := new(Int)
	r.n.Set(&x.n)
	return r
}

func (x *Int) Equal(y *Int) bool {
	if x == nil || y == nil {
		return x == y
	}
	return x.n.Cmp(&y.n) == 0
}

func (x *Int) BitLen() int { return x.n.BitLen() }

func (x *Int) IsZero() bool { return x.n.Sign() == 0 }

var bigOne = big.NewInt(1)
