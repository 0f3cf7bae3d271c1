package scoring

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
)

const (
	memoryBaseScore   = 120
	memoryFloorScore  = 60
	memoryMovePenalty = 2
)

// FlipOutcome reports what happened after a card flip.
type FlipOutcome int

const (
	// FlipPending means the first card of a pair attempt is face up and the
	// session is waiting for the second flip.
	FlipPending FlipOutcome = iota
	// FlipMatched means the two flipped cards belong together and stay face up.
	FlipMatched
	// FlipMismatched means the two flipped cards do not belong together and
	// turn face down again.
	FlipMismatched
)

// MemorySession plays the card-matching game. A move is a completed attempt
// of two flips. The score starts at the base and loses two points for every
// move beyond the minimum (one per pair), never dropping below the floor.
type MemorySession struct {
	clock     Clock
	startedAt time.Time
	cards     []domain.MemoryCard
	matched   map[string]bool
	pairs     int
	moves     int
	firstFlip int
}

func NewMemorySession(payload domain.MemoryPayload, clock Clock, rng *rand.Rand) (*MemorySession, error) {
	if len(payload.Cards) < 2 || len(payload.Cards)%2 != 0 {
		return nil, fmt.Errorf("memory needs an even number of cards, at least one pair")
	}

	pairCounts := make(map[string]int)
	cardIDs := make(map[string]bool, len(payload.Cards))
	for _, card := range payload.Cards {
		if cardIDs[card.ID] {
			return nil, fmt.Errorf("duplicate card id %q", card.ID)
		}
		cardIDs[card.ID] = true
		pairCounts[card.PairID]++
	}
	for pairID, count := range pairCounts {
		if count != 2 {
			return nil, fmt.Errorf("pair %q has %d cards, want 2", pairID, count)
		}
	}

	cards := append([]domain.MemoryCard(nil), payload.Cards...)
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return &MemorySession{
		clock:     clock,
		startedAt: clock.Now(),
		cards:     cards,
		matched:   make(map[string]bool, len(pairCounts)),
		pairs:     len(pairCounts),
		firstFlip: -1,
	}, nil
}

// Cards returns the shuffled board.
func (s *MemorySession) Cards() []domain.MemoryCard {
	return append([]domain.MemoryCard(nil), s.cards...)
}

// Flip turns the card at the given board position face up. The second flip of
// an attempt resolves the move as matched or mismatched.
func (s *MemorySession) Flip(position int) (FlipOutcome, error) {
	if s.Completed() {
		return FlipPending, domain.ErrGameOver
	}
	if position < 0 || position >= len(s.cards) {
		return FlipPending, fmt.Errorf("position out of range")
	}

	card := s.cards[position]
	if s.matched[card.PairID] {
		return FlipPending, fmt.Errorf("card already matched")
	}

	if s.firstFlip == -1 {
		s.firstFlip = position
		return FlipPending, nil
	}
	if s.firstFlip == position {
		return FlipPending, fmt.Errorf("card already face up")
	}

	first := s.cards[s.firstFlip]
	s.firstFlip = -1
	s.moves++

	if first.PairID == card.PairID {
		s.matched[card.PairID] = true
		return FlipMatched, nil
	}
	return FlipMismatched, nil
}

// Moves returns the number of completed two-flip attempts.
func (s *MemorySession) Moves() int {
	return s.moves
}

func (s *MemorySession) MatchedPairs() int {
	return len(s.matched)
}

func (s *MemorySession) Completed() bool {
	return len(s.matched) == s.pairs
}

func (s *MemorySession) Finalize() (Result, error) {
	if !s.Completed() {
		return Result{}, domain.ErrGameInProgress
	}

	excess := s.moves - s.pairs
	if excess < 0 {
		excess = 0
	}
	score := memoryBaseScore - memoryMovePenalty*excess
	if score < memoryFloorScore {
		score = memoryFloorScore
	}

	return Result{
		Score:           score,
		PlayTimeSeconds: playTimeSince(s.clock, s.startedAt),
	}, nil
}
