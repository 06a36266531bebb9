// Package testutil provides shared test helpers for guess.
//
// # Input
//
//   - Script(lines...) - an io.Reader yielding each line followed by '\n'
//   - FailingReader - yields a prefix, then a fixed error
//
// # Output
//
//   - OutputLines(s) - splits captured output into lines
//   - AssertTranscript(t, out, want...) - compares captured output line by line
//
// # Usage
//
//	func TestSomething(t *testing.T) {
//	    var out bytes.Buffer
//	    g := game.New(42, testutil.Script("7", "42"), &out)
//	    require.NoError(t, g.Run())
//	    testutil.AssertTranscript(t, out.String(), "Guess the number!", ...)
//	}
package testutil
