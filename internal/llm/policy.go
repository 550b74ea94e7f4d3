package llm

import (
	"math/rand"
	"time"
)

// backoffPolicy computes the delay before a retry: base doubled per
// attempt, plus up to a second of jitter to spread concurrent retries.
type backoffPolicy struct {
	base   time.Duration
	jitter func() time.Duration
}

func defaultJitter() time.Duration {
	return time.Duration(rand.Int63n(int64(time.Second)))
}

// delay returns the wait applied after failed attempt i.
func (p backoffPolicy) delay(attempt int) time.Duration {
	d := p.base << uint(attempt)
	if p.jitter != nil {
		d += p.jitter()
	}
	return d
}

// modelForAttempt rotates through the candidate models, primary first,
// wrapping around once the list is exhausted.
func modelForAttempt(models []string, attempt int) string {
	return models[attempt%len(models)]
}
