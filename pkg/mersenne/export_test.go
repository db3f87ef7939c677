package mersenne

import "math/big"

// Sqrt computes x^((M+1)/4) mod M with general modular exponentiation, the
// slow reference for the iterated-squaring path. The result is canonical.
func (p *Params) Sqrt(x *Int) *Int {
	r := new(Int)
	r.n.Exp(&x.n, p.SqrtExponent, p.Modulus)
	return r
}

// Canonical returns x reduced to [0, M-1].
func (p *Params) Canonical(x *Int) *Int {
	r := new(Int)
	r.n.Mod(&x.n, p.Modulus)
	return r
}

func FromBig(v *big.Int) *Int {
	x := new(Int)
	x.n.Set(v)
	return x
}

func (x *Int) Big() *big.Int { return new(big.Int).Set(&x.n) }

func (x *Int) String() string { return x.n.String() }
