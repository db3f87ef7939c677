// Package pow implements the kCTF "sloth" proof-of-work: a verifiable delay
// function built on modular square roots modulo 2^1279 - 1.
//
// Solving a round extracts a square root (1277 sequential squarings) and
// toggles the low bit. Checking a round undoes the toggle and squares once,
// so verification is roughly 1277 times cheaper than solving.
//
//	c, _ := pow.Decode("s.AAAAMg==.H+fPiuL32DPbfN97cpd0nA==")
//	sol := c.Solve()
//	ok, err := c.Check(sol)
package pow

import (
	"context"

	"github.com/dayanaadylkhanova/kctf-pow/pkg/mersenne"
)

// Challenge is a decoded or generated puzzle. It is not modified by Solve
// or Check.
type Challenge struct {
	Difficulty uint32
	Val        *mersenne.Int
}

// Solve runs all rounds and returns the encoded solution.
func (c Challenge) Solve() string {
	v := c.start()
	for i := uint32(0); i < c.Difficulty; i++ {
		solveRound(v)
	}
	return EncodeSolution(v)
}

// SolveContext is Solve with cancellation. ctx is polled between rounds; a
// round, once started, always runs to completion.
func (c Challenge) SolveContext(ctx context.Context) (string, error) {
	v := c.start()
	for i := uint32(0); i < c.Difficulty; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		solveRound(v)
	}
	return EncodeSolution(v), nil
}

// Check reports whether sol solves c. A malformed sol returns a decoding
// error; a well-formed but wrong one returns false and a nil error.
func (c Challenge) Check(sol string) (bool, error) {
	v, err := DecodeSolution(sol)
	if err != nil {
		return false, err
	}
	return c.Verify(v), nil
}

// Verify is Check on an already decoded solution value. Either square root
// of the starting value is accepted.
func (c Challenge) Verify(sol *mersenne.Int) bool {
	v := sol.Clone()
	for i := uint32(0); i < c.Difficulty; i++ {
		v.XorOne().SquareMod()
	}
	want := c.start()
	return v.Equal(want) || v.Equal(want.NegateMod())
}

// Equal reports whether both challenges have the same difficulty and value.
func (c Challenge) Equal(o Challenge) bool {
	return c.Difficulty == o.Difficulty && c.start().Equal(o.start())
}

func (c Challenge) start() *mersenne.Int {
	if c.Val == nil {
		return new(mersenne.Int)
	}
	return c.Val.Clone()
}

func solveRound(v *mersenne.Int) {
	for j := 0; j < mersenne.SqrtSquarings; j++ {
		v.SquareMod()
	}
	v.XorOne()
}
