package scoring

import (
	"fmt"
	"time"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
)

const imageMatchMaxScore = 80

// ImageMatchSession plays the image/text pairing game. A mismatch simply
// reverts the selection with no penalty, so the only possible outcome of a
// finished session is full credit; partial attempts never reach the progress
// store.
type ImageMatchSession struct {
	clock     Clock
	startedAt time.Time
	pairs     map[string]domain.ImagePair
	solved    map[string]bool
	attempts  int
}

func NewImageMatchSession(payload domain.ImageMatchPayload, clock Clock) (*ImageMatchSession, error) {
	if len(payload.Pairs) == 0 {
		return nil, fmt.Errorf("image match needs at least one pair")
	}

	pairs := make(map[string]domain.ImagePair, len(payload.Pairs))
	for _, pair := range payload.Pairs {
		if _, exists := pairs[pair.ID]; exists {
			return nil, fmt.Errorf("duplicate pair id: %s", pair.ID)
		}
		pairs[pair.ID] = pair
	}

	return &ImageMatchSession{
		clock:     clock,
		startedAt: clock.Now(),
		pairs:     pairs,
		solved:    make(map[string]bool, len(pairs)),
	}, nil
}

// Match attempts to pair the selected image with the selected text, each
// identified by the pair id they belong to. A match locks the pair as solved;
// a mismatch reverts both selections and may be retried without penalty.
func (s *ImageMatchSession) Match(imagePairID, textPairID string) (bool, error) {
	if s.Completed() {
		return false, domain.ErrGameOver
	}
	if _, exists := s.pairs[imagePairID]; !exists {
		return false, fmt.Errorf("unknown image pair id: %s", imagePairID)
	}
	if _, exists := s.pairs[textPairID]; !exists {
		return false, fmt.Errorf("unknown text pair id: %s", textPairID)
	}
	if s.solved[imagePairID] {
		return false, fmt.Errorf("pair %s is already solved", imagePairID)
	}

	s.attempts++
	if imagePairID != textPairID {
		return false, nil
	}

	s.solved[imagePairID] = true
	return true, nil
}

func (s *ImageMatchSession) SolvedCount() int {
	return len(s.solved)
}

func (s *ImageMatchSession) Attempts() int {
	return s.attempts
}

func (s *ImageMatchSession) Completed() bool {
	return len(s.solved) == len(s.pairs)
}

func (s *ImageMatchSession) Finalize() (Result, error) {
	if !s.Completed() {
		return Result{}, domain.ErrGameInProgress
	}
	return Result{
		Score:           imageMatchMaxScore,
		PlayTimeSeconds: playTimeSince(s.clock, s.startedAt),
	}, nil
}
