package pow

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/dayanaadylkhanova/kctf-pow/pkg/mersenne"
)

// Version is the tag that prefixes every challenge and solution.
const Version = "s"

// SeedBytes is the size of a generated starting value. It is far below the
// modulus width on purpose: enough entropy, short challenges.
const SeedBytes = 16

var b64 = base64.StdEncoding.Strict()

// Decode parses a challenge of the form "s.<difficulty-b64>.<value-b64>".
func Decode(s string) (Challenge, error) {
	parts, err := splitVersioned(s, 2)
	if err != nil {
		return Challenge{}, err
	}
	raw := make([][]byte, len(parts))
	for i, p := range parts {
		if raw[i], err = decodeField(p); err != nil {
			return Challenge{}, err
		}
	}
	difficulty, err := parseDifficulty(raw[0])
	if err != nil {
		return Challenge{}, err
	}
	return Challenge{
		Difficulty: difficulty,
		Val:        mersenne.FromBytes(raw[1]),
	}, nil
}

// DecodeSolution parses a solution of the form "s.<value-b64>".
func DecodeSolution(s string) (*mersenne.Int, error) {
	parts, err := splitVersioned(s, 1)
	if err != nil {
		return nil, err
	}
	b, err := decodeField(parts[0])
	if err != nil {
		return nil, err
	}
	return mersenne.FromBytes(b), nil
}

// EncodeSolution renders v as "s.<value-b64>" with leading zero bytes stripped.
func EncodeSolution(v *mersenne.Int) string {
	return Version + "." + b64.EncodeToString(v.Bytes())
}

// Generate returns a challenge with the given difficulty and a random
// 128-bit starting value.
func Generate(difficulty uint32) (Challenge, error) {
	seed := make([]byte, SeedBytes)
	if _, err := rand.Read(seed); err != nil {
		return Challenge{}, fmt.Errorf("read seed: %w", err)
	}
	return Challenge{Difficulty: difficulty, Val: mersenne.FromBytes(seed)}, nil
}

// String encodes the challenge. The difficulty always takes four bytes.
func (c Challenge) String() string {
	var d [4]byte
	binary.BigEndian.PutUint32(d[:], c.Difficulty)
	var val []byte
	if c.Val != nil {
		val = c.Val.Bytes()
	}
	return Version + "." + b64.EncodeToString(d[:]) + "." + b64.EncodeToString(val)
}

func splitVersioned(s string, want int) ([]string, error) {
	parts := strings.Split(s, ".")
	if parts[0] != Version {
		return nil, ErrVersionMismatch
	}
	if len(parts)-1 != want {
		return nil, ErrPartCountMismatch
	}
	return parts[1:], nil
}

// decodeField rejects line breaks itself: the base64 decoder skips them even
// in strict mode.
func decodeField(p string) ([]byte, error) {
	if strings.ContainsAny(p, "\r\n") {
		return nil, fmt.Errorf("%w: line break in field", ErrInvalidEncoding)
	}
	b, err := b64.DecodeString(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return b, nil
}

// parseDifficulty reads a big-endian uint32. Longer inputs are accepted as
// long as everything before the last four bytes is zero.
func parseDifficulty(b []byte) (uint32, error) {
	if len(b) > 4 {
		head := b[:len(b)-4]
		for _, x := range head {
			if x != 0 {
				return 0, ErrDifficultyOverflow
			}
		}
		b = b[len(b)-4:]
	}
	var buf [4]byte
	copy(buf[4-len(b):], b)
	return binary.BigEndian.Uint32(buf[:]), nil
}
