package scoring

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
)

const fillBlankMaxScore = 150

// FillBlankSession plays the cloze game. Words from the bank are dragged into
// blanks, each word occupying at most one blank at a time, and the answer is
// checked exactly once. The score is the correct fraction of the maximum,
// rounded to the nearest point.
type FillBlankSession struct {
	clock     Clock
	startedAt time.Time
	blanks    []string
	bank      []string
	placed    []string
	checked   bool
	correct   int
}

func NewFillBlankSession(payload domain.FillBlankPayload, clock Clock) (*FillBlankSession, error) {
	if len(payload.Blanks) == 0 {
		return nil, fmt.Errorf("fill-blank needs at least one blank")
	}
	bank := make(map[string]int, len(payload.WordBank))
	for _, word := range payload.WordBank {
		bank[word]++
	}
	for _, answer := range payload.Blanks {
		if bank[answer] == 0 {
			return nil, fmt.Errorf("answer %q missing from word bank", answer)
		}
		bank[answer]--
	}

	return &FillBlankSession{
		clock:     clock,
		startedAt: clock.Now(),
		blanks:    append([]string(nil), payload.Blanks...),
		bank:      append([]string(nil), payload.WordBank...),
		placed:    make([]string, len(payload.Blanks)),
	}, nil
}

// Place puts a bank word into the blank at the given index. A word already
// sitting in another blank moves to the new one; a word already in the target
// blank is replaced and returns to the bank.
func (s *FillBlankSession) Place(word string, blankIndex int) error {
	if s.checked {
		return domain.ErrGameOver
	}
	if blankIndex < 0 || blankIndex >= len(s.placed) {
		return fmt.Errorf("blank index out of range")
	}
	if !s.inBank(word) {
		return fmt.Errorf("word %q is not in the bank", word)
	}

	for i, placed := range s.placed {
		if placed == word {
			s.placed[i] = ""
		}
	}
	s.placed[blankIndex] = word
	return nil
}

// Clear empties the blank at the given index, returning its word to the bank.
func (s *FillBlankSession) Clear(blankIndex int) error {
	if s.checked {
		return domain.ErrGameOver
	}
	if blankIndex < 0 || blankIndex >= len(s.placed) {
		return fmt.Errorf("blank index out of range")
	}
	s.placed[blankIndex] = ""
	return nil
}

// Placements returns the current contents of the blanks, empty strings for
// unfilled positions.
func (s *FillBlankSession) Placements() []string {
	return append([]string(nil), s.placed...)
}

func (s *FillBlankSession) inBank(word string) bool {
	for _, bankWord := range s.bank {
		if bankWord == word {
			return true
		}
	}
	return false
}

// Check grades the current placements. It can only be called once; the
// session is finished afterwards regardless of the outcome.
func (s *FillBlankSession) Check() (int, error) {
	if s.checked {
		return 0, domain.ErrGameOver
	}
	s.checked = true

	for i, answer := range s.blanks {
		if s.placed[i] == answer {
			s.correct++
		}
	}
	return s.correct, nil
}

func (s *FillBlankSession) Done() bool {
	return s.checked
}

func (s *FillBlankSession) Finalize() (Result, error) {
	if !s.checked {
		return Result{}, domain.ErrGameInProgress
	}

	score := decimal.NewFromInt(int64(s.correct)).
		Div(decimal.NewFromInt(int64(len(s.blanks)))).
		Mul(decimal.NewFromInt(fillBlankMaxScore)).
		Round(0)

	return Result{
		Score:           int(score.IntPart()),
		PlayTimeSeconds: playTimeSince(s.clock, s.startedAt),
	}, nil
}
