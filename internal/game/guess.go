package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/thruflo/guess/internal/config"
)

// Outcome is the result of comparing a guess with the secret.
type Outcome int

const (
	Less Outcome = iota
	Greater
	Equal
)

func (o Outcome) String() string {
	switch o {
	case Less:
		return "less"
	case Greater:
		return "greater"
	case Equal:
		return "equal"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Feedback is the line printed for the outcome.
func (o Outcome) Feedback() string {
	switch o {
	case Less:
		return "Too small!"
	case Greater:
		return "Too big!"
	default:
		return "You win!"
	}
}

// Compare orders guess against secret.
func Compare(guess, secret uint32) Outcome {
	switch {
	case guess < secret:
		return Less
	case guess > secret:
		return Greater
	default:
		return Equal
	}
}

// NewSecret draws uniformly from the closed range r.
func NewSecret(rng *rand.Rand, r config.Range) uint32 {
	span := int64(r.Max-r.Min) + 1
	return r.Min + uint32(rng.Int63n(span))
}

// ParseError reports a line that is not a valid guess. It is recoverable:
// the loop discards the line and prompts again.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid guess %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError checks if an error is a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// ParseGuess trims surrounding whitespace and line terminators from raw
// and parses the rest as a base-10 unsigned 32-bit integer. One leading
// '+' is allowed.
func ParseGuess(raw string) (uint32, error) {
	s := strings.TrimSpace(raw)
	digits := strings.TrimPrefix(s, "+")

	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	return uint32(n), nil
}
