package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/thruflo/guess/internal/config"
	"github.com/thruflo/guess/internal/logging"
)

// Literal lines written to the output stream.
const (
	Invitation = "Guess the number!"
	Prompt     = "Please enter your guess:"
)

// ErrInputClosed is wrapped by the InputError returned when the input
// stream ends before the secret is guessed.
var ErrInputClosed = errors.New("input closed before the number was guessed")

// InputError reports a failure to read from the input stream. It is fatal
// to the game.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("failed to read guess: %v", e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// IsInputError checks if an error is an InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// State is the position of a Game in its loop.
type State int

const (
	AwaitingInput State = iota
	Comparing
	Won
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting_input"
	case Comparing:
		return "comparing"
	case Won:
		return "won"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Game is one session of guess-the-number.
type Game struct {
	secret   uint32
	in       *bufio.Reader
	out      io.Writer
	log      *logging.Logger
	bounds   config.Range
	state    State
	attempts int
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for diagnostics.
func WithLogger(l *logging.Logger) Option {
	return func(g *Game) {
		g.log = l
	}
}

// WithRange records the range the secret was drawn from. Guesses outside
// it are still compared; they are only noted in the debug log.
func WithRange(r config.Range) Option {
	return func(g *Game) {
		g.bounds = r
	}
}

// New creates a Game for secret reading guesses from in and writing
// feedback to out.
func New(secret uint32, in io.Reader, out io.Writer, opts ...Option) *Game {
	g := &Game{
		secret: secret,
		in:     bufio.NewReader(in),
		out:    out,
		log:    logging.Default(),
		bounds: config.DefaultRange(),
		state:  AwaitingInput,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// State returns the current loop state.
func (g *Game) State() State {
	return g.state
}

// Attempts returns the number of guesses that parsed.
func (g *Game) Attempts() int {
	return g.attempts
}

// Run plays until the secret is guessed, returning nil, or the input
// fails, returning an *InputError.
func (g *Game) Run() error {
	g.println(Invitation)
	g.log.Debug("secret chosen", "secret", g.secret, "min", g.bounds.Min, "max", g.bounds.Max)

	for g.state != Won {
		g.println(Prompt)

		line, err := g.readLine()
		if err != nil {
			g.log.Debug("input failed", "error", err, "attempts", g.attempts)
			return err
		}

		guess, err := ParseGuess(line)
		if err != nil {
			g.log.Debug("discarding malformed guess", "error", err)
			continue
		}

		g.step(guess)
	}

	g.log.Info("player won", "attempts", g.attempts)
	return nil
}

// step handles one parsed guess, moving the game back to AwaitingInput
// or on to Won.
func (g *Game) step(guess uint32) Outcome {
	g.state = Comparing
	g.attempts++

	if !g.bounds.Contains(guess) {
		g.log.Debug("guess outside secret range", "guess", guess)
	}

	g.println(fmt.Sprintf("You guessed: %d", guess))

	outcome := Compare(guess, g.secret)
	g.println(outcome.Feedback())

	if outcome == Equal {
		g.state = Won
	} else {
		g.state = AwaitingInput
	}
	return outcome
}

// readLine returns the next line. A final line with no trailing newline
// is returned on its own; the following call reports the end of input.
func (g *Game) readLine() (string, error) {
	line, err := g.in.ReadString('\n')
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) {
		if line != "" {
			return line, nil
		}
		return "", &InputError{Err: ErrInputClosed}
	}
	return "", &InputError{Err: err}
}

// Output write errors are ignored.
func (g *Game) println(s string) {
	fmt.Fprintln(g.out, s)
}
