package mersenne

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randInt(t *testing.T, bytes int) *Int {
	t.Helper()
	b := make([]byte, bytes)
	_, err := rand.Read(b)
	require.NoError(t, err)
	// keep it below 2^1279
	if bytes >= ByteLen {
		b[0] &= 0x7f
	}
	return FromBytes(b)
}

func TestSquareMod_MatchesBigMod(t *testing.T) {
	t.Parallel()

	p := Default()
	for i := 0; i < 50; i++ {
		x := randInt(t, ByteLen)
		want := new(big.Int).Mul(x.Big(), x.Big())
		want.Mod(want, p.Modulus)

		got := x.Clone().SquareMod()
		assert.Equal(t, 0, p.Canonical(got).Big().Cmp(want), "x=%s", x)
	}
}

func TestSquareMod_Range(t *testing.T) {
	t.Parallel()

	limit := new(big.Int).Lsh(big.NewInt(1), Bits)
	for i := 0; i < 50; i++ {
		got := randInt(t, ByteLen).SquareMod()
		require.Equal(t, -1, got.Big().Cmp(limit))
		require.GreaterOrEqual(t, got.Big().Sign(), 0)
	}
}

func TestSquareMod_SmallValues(t *testing.T) {
	t.Parallel()

	for _, in := range []int64{0, 1, 2, 3, 1 << 40, 1<<62 + 7} {
		got := FromBig(big.NewInt(in)).SquareMod()
		want := new(big.Int).Mul(big.NewInt(in), big.NewInt(in))
		assert.Equal(t, want.String(), got.String(), "in=%d", in)
	}
}

func TestSquareMod_ModulusIsNotNormalized(t *testing.T) {
	t.Parallel()

	m := FromBig(Default().Modulus)
	got := m.Clone().SquareMod()

	assert.True(t, got.Equal(m), "M^2 folds back to M, got %s", got)
	assert.True(t, Default().Canonical(got).IsZero())
}

func TestSquareMod_TopBitCarry(t *testing.T) {
	t.Parallel()

	// (2^1278 + 1)^2 = 2^2556 + 2^1279 + 1 ≡ 2^1277 + 2 (mod M)
	one := big.NewInt(1)
	x := new(big.Int).Lsh(one, Bits-1)
	x.Add(x, one)

	want := new(big.Int).Lsh(one, Bits-2)
	want.Add(want, big.NewInt(2))

	got := FromBig(x).SquareMod()
	assert.Equal(t, 0, got.Big().Cmp(want))
}

func TestIteratedSquaring_MatchesModExp(t *testing.T) {
	t.Parallel()

	p := Default()
	for i := 0; i < 3; i++ {
		x := randInt(t, 16)
		v := x.Clone()
		for j := 0; j < SqrtSquarings; j++ {
			v.SquareMod()
		}
		assert.True(t, p.Canonical(v).Equal(p.Sqrt(x)))
	}
}

func TestSqrt_SquaresBackUpToSign(t *testing.T) {
	t.Parallel()

	p := Default()
	x := randInt(t, 16)
	r := p.Sqrt(x)
	sq := p.Canonical(r.Clone().SquareMod())

	assert.True(t, sq.Equal(x) || sq.Equal(p.Canonical(x.NegateMod())))
}

func TestNegateMod_Involution(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		x := randInt(t, ByteLen)
		if x.IsZero() {
			continue
		}
		assert.True(t, x.NegateMod().NegateMod().Equal(x))
	}

	one := FromBig(big.NewInt(1))
	assert.Equal(t, new(big.Int).Sub(Default().Modulus, big.NewInt(1)).String(), one.NegateMod().String())
	assert.True(t, new(Int).NegateMod().Equal(FromBig(Default().Modulus)))
}

func TestXorOne(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want int64 }{
		{0, 1}, {1, 0}, {4, 5}, {5, 4}, {255, 254},
	}
	for _, tc := range cases {
		got := FromBig(big.NewInt(tc.in)).XorOne()
		assert.Equal(t, big.NewInt(tc.want).String(), got.String())
	}
}

func TestBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte{}, new(Int).Bytes())
	assert.Equal(t, []byte{0x01}, FromBytes([]byte{0, 0, 0, 1}).Bytes())
	assert.Equal(t, []byte{0x01, 0x00}, FromBytes([]byte{0x01, 0x00}).Bytes())
	assert.True(t, FromBytes(nil).IsZero())

	x := randInt(t, ByteLen)
	assert.True(t, FromBytes(x.Bytes()).Equal(x))
	assert.LessOrEqual(t, len(x.Bytes()), ByteLen)
}

func TestEqual_Nil(t *testing.T) {
	t.Parallel()

	var a, b *Int
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(new(Int)))
}

func BenchmarkSquareMod(b *testing.B) {
	buf := make([]byte, ByteLen)
	_, _ = rand.Read(buf)
	buf[0] &= 0x7f
	x := FromBytes(buf)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.SquareMod()
	}
}

func BenchmarkSqrt_ModExp(b *testing.B) {
	p := Default()
	x := FromBig(new(big.Int).SetUint64(0xdeadbeefcafe))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Sqrt(x)
	}
}
