// internal/game/types.go
//
// Core type definitions for the guessing game engine.
// Defines:
//   - Result: classification of a single guess (low/high/correct).
//   - State: the secret number and the attempt counter for one game.

package game

// Result represents the evaluation of a guess against the secret.
// Possible values:
//   - "low":     guess is below the secret.
//   - "high":    guess is above the secret.
//   - "correct": guess equals the secret.
type Result string

const (
	ResultLow     Result = "low"
	ResultHigh    Result = "high"
	ResultCorrect Result = "correct"
)

// Results lists every variant in presentation order.
var Results = []Result{ResultLow, ResultHigh, ResultCorrect}

// State holds the state of a single game.
// It is owned by the input loop and never shared.
type State struct {
	Secret   int // Target number, always within [MinSecret, MaxSecret].
	Attempts int // Count of syntactically valid guesses so far.
}
