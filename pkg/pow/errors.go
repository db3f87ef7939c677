package pow

import "errors"

// Decoding errors. They are deterministic: the same input always fails the
// same way. A solution that decodes but does not verify is not an error.
var (
	ErrVersionMismatch    = errors.New("incorrect version")
	ErrPartCountMismatch  = errors.New("incorrect number of parts")
	ErrInvalidEncoding    = errors.New("parts aren't valid base64")
	ErrDifficultyOverflow = errors.New("difficulty is too large")
)
