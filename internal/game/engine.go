// internal/game/engine.go
//
// Core game engine for a single guessing session.
// Responsibilities:
//   - Create new games with a secret drawn uniformly from [1,100].
//   - Parse raw input lines into guesses.
//   - Classify guesses (low/high/correct) without touching state.
//   - Count accepted guesses and detect the winning one.
//
// Notes:
//   - Evaluate is pure; Record is the only mutation.
//   - The secret is drawn with crypto/rand, like the answer picker in words.
package game

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const (
	MinSecret = 1
	MaxSecret = 100
)

// ErrInvalidGuess is returned by ParseGuess for any line that is not a base-10 integer.
var ErrInvalidGuess = errors.New("invalid guess")

// New constructs a new game.
// If secret is 0, a random secret is drawn from [MinSecret, MaxSecret].
func New(secret int) *State {
	if secret == 0 {
		secret = randomSecret()
	}
	return &State{Secret: secret}
}

// Evaluate classifies guess against the secret.
// Total over all integers; never mutates the state.
func (s *State) Evaluate(guess int) Result {
	switch {
	case guess < s.Secret:
		return ResultLow
	case guess > s.Secret:
		return ResultHigh
	default:
		return ResultCorrect
	}
}

// Record counts one accepted guess and reports whether the game is over.
func (s *State) Record(r Result) bool {
	s.Attempts++
	return r == ResultCorrect
}

// ParseGuess converts an input line to a guess.
// Surrounding whitespace is ignored; an optional leading sign is accepted.
// Empty lines, non-digits and out-of-range values all fail with ErrInvalidGuess.
func ParseGuess(line string) (int, error) {
	s := strings.TrimSpace(line)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGuess, s)
	}
	return n, nil
}

// randomSecret returns a uniformly distributed integer in [MinSecret, MaxSecret].
func randomSecret() int {
	span := big.NewInt(int64(MaxSecret - MinSecret + 1))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		// crypto/rand does not fail on supported platforms
		panic(fmt.Sprintf("game: read random secret: %v", err))
	}
	return MinSecret + int(n.Int64())
}
