package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dayanaadylkhanova/kctf-pow/internal/entity"
	"github.com/dayanaadylkhanova/kctf-pow/pkg/pow"
)

// Sloth issues and verifies kCTF sloth challenges.
type Sloth struct {
	now func() time.Time
}

func NewSloth() *Sloth { return &Sloth{now: time.Now} }

// NewSlothWithClock is for tests and DI.
func NewSlothWithClock(now func() time.Time) *Sloth { return &Sloth{now: now} }

func (s *Sloth) NewChallenge(difficulty uint32, ttlSeconds int64) (entity.Challenge, error) {
	c, err := pow.Generate(difficulty)
	if err != nil {
		return entity.Challenge{}, fmt.Errorf("generate challenge: %w", err)
	}
	return entity.Challenge{
		Version:    entity.ChallengeVersion,
		Algo:       entity.AlgoSloth,
		ID:         uuid.NewString(),
		Difficulty: difficulty,
		Challenge:  c.String(),
		Expires:    s.now().Add(time.Duration(ttlSeconds) * time.Second).Unix(),
	}, nil
}

func (s *Sloth) Verify(ch entity.Challenge, sol entity.Solution) error {
	if ch.Algo != entity.AlgoSloth || ch.Version != entity.ChallengeVersion {
		return entity.ErrUnsupported
	}
	if s.now().Unix() > ch.Expires {
		return entity.ErrExpired
	}
	c, err := pow.Decode(ch.Challenge)
	if err != nil {
		return fmt.Errorf("%w: challenge: %w", entity.ErrMalformed, err)
	}
	if c.Difficulty != ch.Difficulty {
		return fmt.Errorf("%w: difficulty %d does not match challenge %d", entity.ErrMalformed, ch.Difficulty, c.Difficulty)
	}
	ok, err := c.Check(sol.Solution)
	if err != nil {
		return fmt.Errorf("%w: solution: %w", entity.ErrMalformed, err)
	}
	if !ok {
		return entity.ErrInvalidSolution
	}
	return nil
}
