package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayanaadylkhanova/kctf-pow/internal/entity"
	"github.com/dayanaadylkhanova/kctf-pow/pkg/pow"
)

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestNewChallenge_BasicFields(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	s := NewSlothWithClock(fixedClock(now))

	ch, err := s.NewChallenge(3, 90)
	require.NoError(t, err)

	assert.Equal(t, entity.AlgoSloth, ch.Algo)
	assert.Equal(t, entity.ChallengeVersion, ch.Version)
	assert.Equal(t, uint32(3), ch.Difficulty)
	assert.Equal(t, now.Add(90*time.Second).Unix(), ch.Expires)

	_, err = uuid.Parse(ch.ID)
	assert.NoError(t, err)

	c, err := pow.Decode(ch.Challenge)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), c.Difficulty)
	assert.LessOrEqual(t, len(ch.Challenge), 35)
}

func TestNewChallenge_UniqueIDs(t *testing.T) {
	t.Parallel()

	s := NewSloth()
	a, err := s.NewChallenge(1, 60)
	require.NoError(t, err)
	b, err := s.NewChallenge(1, 60)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.Challenge, b.Challenge)
}

func TestVerify_Table(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	s := NewSlothWithClock(fixedClock(now))

	base, err := s.NewChallenge(2, 60)
	require.NoError(t, err)
	c, err := pow.Decode(base.Challenge)
	require.NoError(t, err)
	valid := c.Solve()

	with := func(mut func(*entity.Challenge)) entity.Challenge {
		ch := base
		mut(&ch)
		return ch
	}

	cases := []struct {
		name string
		ch   entity.Challenge
		sol  string
		want error
	}{
		{"ok", base, valid, nil},
		{"wrong_solution", base, "s.asdf", entity.ErrInvalidSolution},
		{"malformed_solution", base, "not-a-solution", entity.ErrMalformed},
		{"solution_bad_base64", base, "s.@@@@", entity.ErrMalformed},
		{"expired", with(func(c *entity.Challenge) { c.Expires = now.Add(-time.Second).Unix() }), valid, entity.ErrExpired},
		{"unsupported_algo", with(func(c *entity.Challenge) { c.Algo = "sha256-leading-zero-bits" }), valid, entity.ErrUnsupported},
		{"unsupported_version", with(func(c *entity.Challenge) { c.Version = 2 }), valid, entity.ErrUnsupported},
		{"bad_challenge", with(func(c *entity.Challenge) { c.Challenge = "s.AAAA" }), valid, entity.ErrMalformed},
		{"difficulty_mismatch", with(func(c *entity.Challenge) { c.Difficulty = 1 }), valid, entity.ErrMalformed},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := s.Verify(tc.ch, entity.Solution{Solution: tc.sol})
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	ch, err := NewSlothWithClock(fixedClock(now)).NewChallenge(0, 10)
	require.NoError(t, err)
	c, err := pow.Decode(ch.Challenge)
	require.NoError(t, err)
	sol := entity.Solution{Solution: c.Solve()}

	atExpiry := NewSlothWithClock(fixedClock(now.Add(10 * time.Second)))
	assert.NoError(t, atExpiry.Verify(ch, sol))

	after := NewSlothWithClock(fixedClock(now.Add(11 * time.Second)))
	assert.ErrorIs(t, after.Verify(ch, sol), entity.ErrExpired)
}
