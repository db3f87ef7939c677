package entity

import "errors"

// AlgoSloth tags challenges produced by the sloth VDF over 2^1279-1.
const (
	ChallengeVersion = 1
	AlgoSloth        = "kctf-sloth-m1279"
)

type Challenge struct {
	Version    int    `json:"version"`
	Algo       string `json:"algo"`
	ID         string `json:"id"`
	Difficulty uint32 `json:"difficulty"`
	Challenge  string `json:"challenge"`
	Expires    int64  `json:"expires"`
}

type Solution struct {
	Solution string `json:"solution"`
}

// Verification outcomes. Transport maps them onto a single reply but keeps
// them apart in logs and metrics.
var (
	ErrUnsupported     = errors.New("unsupported challenge")
	ErrExpired         = errors.New("challenge expired")
	ErrMalformed       = errors.New("malformed pow data")
	ErrInvalidSolution = errors.New("pow invalid")
)
