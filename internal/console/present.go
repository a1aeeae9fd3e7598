// internal/console/present.go
//
// Terminal presentation for the guessing game.
// Responsibilities:
//   - Print the welcome banner and greeting.
//   - Report each guess outcome with a random flavor phrase.
//   - Animate output one character at a time with a fixed delay.
//
// Notes:
//   - Everything here is synchronous; Animate blocks the caller until the
//     whole message is written.
//   - Sleep and Pick are injectable so tests run without real delays.

package console

import (
	"fmt"
	"io"
	"time"

	"github.com/robalobadob/secretnumber/internal/game"
	"github.com/robalobadob/secretnumber/internal/phrases"
)

// DefaultDelay is the pause after each animated character.
const DefaultDelay = 50 * time.Millisecond

// Reporter renders the outcome of an accepted guess.
type Reporter interface {
	Report(r game.Result)
}

// Presenter writes banners and animated outcome phrases to Out.
type Presenter struct {
	Out   io.Writer
	Delay time.Duration
	Sleep func(time.Duration) // defaults to time.Sleep
	Pick  phrases.Intn        // defaults to phrases.RandomIndex
}

// NewPresenter returns a Presenter with real sleeping and random picks.
func NewPresenter(out io.Writer, delay time.Duration) *Presenter {
	return &Presenter{Out: out, Delay: delay, Sleep: time.Sleep, Pick: phrases.RandomIndex}
}

// Welcome prints the banner, the welcome line and the start line.
func (p *Presenter) Welcome() {
	fmt.Fprintln(p.Out, phrases.Banner())
	fmt.Fprint(p.Out, "\nWelcome to the Secret Number Guessing Game!\n\n")
	fmt.Fprint(p.Out, "Let's get started!\n\n")
}

// Report animates one phrase from the pool of r.
func (p *Presenter) Report(r game.Result) {
	Animate(p.Out, phrases.Pick(r, p.Pick), p.Delay, p.Sleep)
}

// Animate writes msg one rune at a time, pausing delay after each, then a newline.
// A nil sleep uses time.Sleep; a non-positive delay skips pausing.
func Animate(w io.Writer, msg string, delay time.Duration, sleep func(time.Duration)) {
	if sleep == nil {
		sleep = time.Sleep
	}
	for _, r := range msg {
		fmt.Fprint(w, string(r))
		if delay > 0 {
			sleep(delay)
		}
	}
	fmt.Fprintln(w)
}
