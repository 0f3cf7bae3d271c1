// Package scoring implements one session state machine per mini-game type.
// A session records player actions, keeps the interim score, and produces the
// finalized integer score plus elapsed play time once the game is over. All
// time and randomness is injected so every scoring rule is testable without
// wall-clock waits.
package scoring

import "time"

// Clock provides the current time for play-time measurement.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func RealClock() Clock {
	return realClock{}
}

// Result is the finalized outcome of a scoring session. Score is always the
// rounded integer value handed to the progress store; interim displays may
// show fractional values, but never this.
type Result struct {
	Score           int
	PlayTimeSeconds int
}

func playTimeSince(clock Clock, startedAt time.Time) int {
	elapsed := int(clock.Now().Sub(startedAt).Seconds())
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
