// internal/console/loop.go
//
// Read-evaluate-print loop for one game.
//
// States:
//   AwaitingInput → Validating → Reporting → AwaitingInput
//                              ↘ Terminal (on a correct guess)
//
// Malformed lines are reported and discarded without counting as an attempt.
// There is no retry limit.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/secretnumber/internal/game"
)

const (
	promptText  = "Enter your guess: "
	invalidText = "Invalid input. Please enter a valid number."
	closingText = "Thanks for playing! Exiting..."
)

// ErrInputClosed is returned by Run when input ends before the secret is found.
var ErrInputClosed = errors.New("input closed before the secret was guessed")

// Run drives st until a correct guess is read from in.
// Prompts and notices go to out; outcomes go through rep.
// Returns nil after printing the closing message.
func Run(in io.Reader, out io.Writer, st *game.State, rep Reporter) error {
	br := bufio.NewReader(in)
	for {
		fmt.Fprint(out, promptText)

		line, err := br.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				return ErrInputClosed
			}
			return fmt.Errorf("read guess: %w", err)
		}

		guess, perr := game.ParseGuess(line)
		if perr != nil {
			log.Debug().Err(perr).Int("attempts", st.Attempts).Msg("guess rejected")
			fmt.Fprintln(out, invalidText)
			continue
		}

		res := st.Evaluate(guess)
		rep.Report(res)
		done := st.Record(res)
		log.Debug().Int("guess", guess).Str("result", string(res)).Int("attempts", st.Attempts).Msg("guess evaluated")

		if done {
			fmt.Fprintln(out, closingText)
			return nil
		}
	}
}
