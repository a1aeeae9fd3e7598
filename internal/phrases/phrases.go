// internal/phrases/phrases.go
//
// Provides the flavor-text pools used to report guess outcomes.
//
// Responsibilities:
//   - Load the per-outcome phrase pools and the welcome banner from the embedded assets.
//   - Map each game.Result to its fixed pool.
//   - Pick one phrase uniformly at random (crypto/rand by default).
//
// Pools:
//   - low:     3 phrases
//   - high:    4 phrases
//   - correct: 3 phrases
//
// Constraints:
//   • Every pool must be non-empty.
//   • Initialization is run once (sync.Once).

package phrases

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"

	"github.com/robalobadob/secretnumber/assets"
	"github.com/robalobadob/secretnumber/internal/game"
)

// Intn returns an index in [0, n). Injected by tests for deterministic picks.
type Intn func(n int) int

var (
	initOnce   sync.Once
	pools      map[game.Result][]string
	banner     string
	initialErr error
)

// Init loads the phrase pools and banner exactly once.
// Returns an error if any pool ends up empty.
func Init() error {
	initOnce.Do(func() {
		loaders := map[game.Result]func() ([]string, error){
			game.ResultLow:     assets.LowList,
			game.ResultHigh:    assets.HighList,
			game.ResultCorrect: assets.CorrectList,
		}
		loaded := make(map[game.Result][]string, len(loaders))
		for r, load := range loaders {
			list, err := load()
			if err != nil {
				initialErr = fmt.Errorf("phrases: load %s pool: %w", r, err)
				return
			}
			if len(list) == 0 {
				initialErr = fmt.Errorf("phrases: %s pool is empty", r)
				return
			}
			loaded[r] = list
		}

		b, err := assets.Banner()
		if err != nil {
			initialErr = fmt.Errorf("phrases: load banner: %w", err)
			return
		}
		pools, banner = loaded, b
	})
	return initialErr
}

// Pool returns a copy of the phrases associated with r.
// Nil if Init has not succeeded or r is unknown.
func Pool(r game.Result) []string {
	return append([]string(nil), pools[r]...)
}

// Pick returns one phrase for r chosen by n.
// A nil n falls back to RandomIndex.
func Pick(r game.Result, n Intn) string {
	list := pools[r]
	if len(list) == 0 {
		return ""
	}
	if n == nil {
		n = RandomIndex
	}
	return list[n(len(list))]
}

// Banner returns the ASCII welcome art.
func Banner() string { return banner }

// RandomIndex returns a cryptographically random index in [0, n).
func RandomIndex(n int) int {
	if n <= 1 {
		return 0
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(nBig.Int64())
}
