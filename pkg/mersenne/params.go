// Package mersenne implements the fixed-modulus arithmetic used by the sloth
// proof-of-work: squaring, negation and parity toggling modulo the Mersenne
// prime M = 2^1279 - 1.
package mersenne

import "math/big"

const (
	// Bits is the exponent p of the Mersenne prime M = 2^p - 1.
	Bits = 1279

	// SqrtSquarings is the number of squarings that compute a modular square
	// root: since M ≡ 3 (mod 4), sqrt(x) = x^((M+1)/4) = x^(2^1277).
	SqrtSquarings = Bits - 2

	// ByteLen is the width of a fully populated value in bytes.
	ByteLen = (Bits + 7) / 8
)

// Params holds the precomputed constants of the field. Build it once with
// NewParams and share it freely; nothing mutates it afterwards.
type Params struct {
	// Modulus is M = 2^1279 - 1. It doubles as the mask of the low 1279 bits.
	Modulus *big.Int
	// SqrtExponent is (M+1)/4 = 2^1277.
	SqrtExponent *big.Int
}

func NewParams() *Params {
	one := big.NewInt(1)
	m := new(big.Int).Lsh(one, Bits)
	m.Sub(m, one)
	return &Params{
		Modulus:      m,
		SqrtExponent: new(big.Int).Lsh(one, SqrtSquarings),
	}
}

// params is the constants holder built once at package init. SquareMod and
// NegateMod read it directly; nothing writes to it after initialization.
var params = NewParams()

// Default returns the process-wide constants.
func Default() *Params { return params }
