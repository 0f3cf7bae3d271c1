package scoring

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
)

const timelineMaxScore = 100

// TimelineSession plays the event-ordering game. The player rearranges a
// shuffled list and checks the order: all correct gives full score, and an
// incorrect arrangement can either be retried after a reshuffle (unlimited,
// unpenalized) or abandoned with an explicit skip for zero points.
type TimelineSession struct {
	clock     Clock
	startedAt time.Time
	rng       *rand.Rand
	order     []domain.TimelineEvent
	solved    bool
	skipped   bool
}

func NewTimelineSession(payload domain.TimelineSortPayload, clock Clock, rng *rand.Rand) (*TimelineSession, error) {
	if len(payload.Events) < 2 {
		return nil, fmt.Errorf("timeline sort needs at least two events")
	}
	seen := make([]bool, len(payload.Events))
	for _, event := range payload.Events {
		if event.CorrectOrder < 0 || event.CorrectOrder >= len(payload.Events) || seen[event.CorrectOrder] {
			return nil, fmt.Errorf("event order values must form a permutation")
		}
		seen[event.CorrectOrder] = true
	}

	session := &TimelineSession{
		clock:     clock,
		startedAt: clock.Now(),
		rng:       rng,
		order:     append([]domain.TimelineEvent(nil), payload.Events...),
	}
	session.shuffle()
	return session, nil
}

func (s *TimelineSession) shuffle() {
	s.rng.Shuffle(len(s.order), func(i, j int) {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	})
}

// Events returns the current arrangement.
func (s *TimelineSession) Events() []domain.TimelineEvent {
	return append([]domain.TimelineEvent(nil), s.order...)
}

// Move applies the drag gesture: the event at position from is removed and
// reinserted at position to, shifting the events in between.
func (s *TimelineSession) Move(from, to int) error {
	if s.done() {
		return domain.ErrGameOver
	}
	if from < 0 || from >= len(s.order) || to < 0 || to >= len(s.order) {
		return fmt.Errorf("position out of range")
	}
	if from == to {
		return nil
	}

	event := s.order[from]
	rest := append(s.order[:from:from], s.order[from+1:]...)
	s.order = append(rest[:to:to], append([]domain.TimelineEvent{event}, rest[to:]...)...)
	return nil
}

// Check compares the current arrangement against the canonical order. An
// all-correct arrangement finishes the session with full score.
func (s *TimelineSession) Check() (bool, error) {
	if s.done() {
		return false, domain.ErrGameOver
	}

	for position, event := range s.order {
		if event.CorrectOrder != position {
			return false, nil
		}
	}
	s.solved = true
	return true, nil
}

// Reshuffle restarts the arrangement for another attempt.
func (s *TimelineSession) Reshuffle() error {
	if s.done() {
		return domain.ErrGameOver
	}
	s.shuffle()
	return nil
}

// Skip abandons the game for a score of zero.
func (s *TimelineSession) Skip() error {
	if s.done() {
		return domain.ErrGameOver
	}
	s.skipped = true
	return nil
}

func (s *TimelineSession) done() bool {
	return s.solved || s.skipped
}

func (s *TimelineSession) Finalize() (Result, error) {
	if !s.done() {
		return Result{}, domain.ErrGameInProgress
	}

	score := 0
	if s.solved {
		score = timelineMaxScore
	}
	return Result{
		Score:           score,
		PlayTimeSeconds: playTimeSince(s.clock, s.startedAt),
	}, nil
}
