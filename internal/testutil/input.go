package testutil

import (
	"io"
	"strings"
)

// Script returns a reader that yields each line terminated by '\n', then EOF.
func Script(lines ...string) io.Reader {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return strings.NewReader(sb.String())
}

// FailingReader yields Prefix and then returns Err on every later read.
type FailingReader struct {
	Prefix string
	Err    error

	pos int
}

func (r *FailingReader) Read(p []byte) (int, error) {
	if r.pos < len(r.Prefix) {
		n := copy(p, r.Prefix[r.pos:])
		r.pos += n
		return n, nil
	}
	return 0, r.Err
}
