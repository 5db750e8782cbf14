package profile

import (
	"math/rand"
	"time"
)

// Pacing between page load and scraping keeps navigation patterns
// closer to a human reading the page.
var (
	settleMin = 2 * time.Second
	settleMax = 5 * time.Second
)

// settleDelay returns a randomized pause applied after a profile page
// finishes loading.
func settleDelay() time.Duration {
	spread := settleMax - settleMin
	return settleMin + time.Duration(rand.Int63n(int64(spread)))
}
