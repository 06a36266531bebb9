package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// OutputLines splits captured output into lines, dropping the empty
// element after a trailing newline.
func OutputLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// AssertTranscript asserts that out consists of exactly the expected lines.
func AssertTranscript(t *testing.T, out string, expected ...string) {
	t.Helper()

	actual := OutputLines(out)
	if len(expected) == 0 {
		expected = nil
	}
	assert.Equal(t, expected, actual, "transcript mismatch")
}
