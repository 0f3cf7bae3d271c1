package scoring

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
)

const (
	wheelStartScore        = 100
	wheelWrongGuessPenalty = 5
)

// WheelHintID identifies a purchasable hint.
type WheelHintID string

const (
	WheelHintRevealLetter WheelHintID = "reveal-letter"
	WheelHintRevealVowel  WheelHintID = "reveal-vowel"
	WheelHintRemoveWrong  WheelHintID = "remove-wrong"
	WheelHintRevealWord   WheelHintID = "reveal-word"
)

// WheelHint is a hint the player can buy with score points.
type WheelHint struct {
	ID   WheelHintID
	Name string
	Cost int
}

// WheelHints lists the available hints in display order.
var WheelHints = []WheelHint{
	{ID: WheelHintRevealLetter, Name: "Lật một chữ cái", Cost: 10},
	{ID: WheelHintRevealVowel, Name: "Lật một nguyên âm", Cost: 15},
	{ID: WheelHintRemoveWrong, Name: "Loại chữ cái sai", Cost: 20},
	{ID: WheelHintRevealWord, Name: "Lật một từ", Cost: 25},
}

func wheelHintByID(id WheelHintID) (WheelHint, bool) {
	for _, hint := range WheelHints {
		if hint.ID == id {
			return hint, true
		}
	}
	return WheelHint{}, false
}

// WheelSession plays the phrase-guessing game. Letters are matched with
// diacritics folded away, so guessing D reveals every Đ in the phrase. The
// score starts full, loses points on wrong guesses and hint purchases, and
// never goes below zero.
type WheelSession struct {
	clock     Clock
	startedAt time.Time
	rng       *rand.Rand
	phrase    []rune
	folded    []rune
	guessed   map[rune]bool
	removed   map[rune]bool
	score     int
	solved    bool
}

func NewWheelSession(payload domain.WheelFortunePayload, clock Clock, rng *rand.Rand) (*WheelSession, error) {
	phrase := []rune(payload.Phrase)
	folded := []rune(foldLetters(payload.Phrase))
	if len(folded) != len(phrase) {
		return nil, fmt.Errorf("phrase does not fold rune for rune")
	}

	hasLetter := false
	for _, r := range folded {
		if isWheelLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return nil, fmt.Errorf("phrase has no guessable letters")
	}

	return &WheelSession{
		clock:     clock,
		startedAt: clock.Now(),
		rng:       rng,
		phrase:    phrase,
		folded:    folded,
		guessed:   make(map[rune]bool),
		removed:   make(map[rune]bool),
		score:     wheelStartScore,
	}, nil
}

// RemainingLetters returns the letters still available on the keyboard.
func (s *WheelSession) RemainingLetters() []rune {
	var remaining []rune
	for _, r := range wheelAlphabet {
		if !s.guessed[r] && !s.removed[r] {
			remaining = append(remaining, r)
		}
	}
	return remaining
}

// RevealedPhrase returns the phrase with unguessed letters masked as
// underscores. Spaces and punctuation are always visible, and revealed
// letters keep their diacritics.
func (s *WheelSession) RevealedPhrase() string {
	var builder strings.Builder
	for i, r := range s.phrase {
		folded := s.folded[i]
		switch {
		case !isWheelLetter(folded):
			builder.WriteRune(r)
		case s.guessed[folded]:
			builder.WriteRune(r)
		default:
			builder.WriteRune('_')
		}
	}
	return builder.String()
}

// GuessLetter tries a keyboard letter. The guess is folded first, so both 'd'
// and 'đ' count as guessing D. A letter absent from the phrase costs points.
func (s *WheelSession) GuessLetter(letter rune) (bool, error) {
	if s.solved {
		return false, domain.ErrGameOver
	}

	folded := []rune(foldLetters(string(letter)))
	if len(folded) != 1 || !isWheelLetter(folded[0]) {
		return false, fmt.Errorf("%q is not a guessable letter", letter)
	}
	guess := folded[0]
	if s.guessed[guess] || s.removed[guess] {
		return false, fmt.Errorf("letter %c already used", guess)
	}

	s.guessed[guess] = true
	if !s.phraseContains(guess) {
		s.deduct(wheelWrongGuessPenalty)
		return false, nil
	}

	s.updateSolved()
	return true, nil
}

// GuessPhrase attempts to solve the whole phrase at once. The comparison
// folds diacritics and collapses whitespace, so a close-enough typed answer
// still counts. A wrong attempt costs the same as a wrong letter.
func (s *WheelSession) GuessPhrase(attempt string) (bool, error) {
	if s.solved {
		return false, domain.ErrGameOver
	}

	if foldPhraseForComparison(attempt) != foldPhraseForComparison(string(s.phrase)) {
		s.deduct(wheelWrongGuessPenalty)
		return false, nil
	}

	for _, r := range s.folded {
		if isWheelLetter(r) {
			s.guessed[r] = true
		}
	}
	s.solved = true
	return true, nil
}

func foldPhraseForComparison(s string) string {
	return strings.Join(strings.Fields(foldLetters(s)), " ")
}

// UseHint spends score points on the given hint. The purchase fails when the
// current score cannot cover the cost.
func (s *WheelSession) UseHint(id WheelHintID) error {
	if s.solved {
		return domain.ErrGameOver
	}

	hint, ok := wheelHintByID(id)
	if !ok {
		return fmt.Errorf("unknown hint %q", id)
	}
	if s.score < hint.Cost {
		return fmt.Errorf("not enough points for hint %q", id)
	}

	switch hint.ID {
	case WheelHintRevealLetter:
		if !s.revealRandom(func(r rune) bool { return true }) {
			return fmt.Errorf("no letters left to reveal")
		}
	case WheelHintRevealVowel:
		if !s.revealRandom(isWheelVowel) {
			return fmt.Errorf("no vowels left to reveal")
		}
	case WheelHintRemoveWrong:
		if !s.removeWrongLetters() {
			return fmt.Errorf("no wrong letters left to remove")
		}
	case WheelHintRevealWord:
		if !s.revealWord() {
			return fmt.Errorf("no words left to reveal")
		}
	}

	s.deduct(hint.Cost)
	s.updateSolved()
	return nil
}

func (s *WheelSession) revealRandom(eligible func(rune) bool) bool {
	var candidates []rune
	seen := make(map[rune]bool)
	for _, r := range s.folded {
		if isWheelLetter(r) && eligible(r) && !s.guessed[r] && !seen[r] {
			candidates = append(candidates, r)
			seen[r] = true
		}
	}
	if len(candidates) == 0 {
		return false
	}
	s.guessed[candidates[s.rng.Intn(len(candidates))]] = true
	return true
}

// removeWrongLetters takes half of the still-available letters that are not
// in the phrase off the keyboard, rounded up.
func (s *WheelSession) removeWrongLetters() bool {
	var candidates []rune
	for _, r := range wheelAlphabet {
		if !s.guessed[r] && !s.removed[r] && !s.phraseContains(r) {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return false
	}
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, r := range candidates[:(len(candidates)+1)/2] {
		s.removed[r] = true
	}
	return true
}

func (s *WheelSession) revealWord() bool {
	var hidden [][]rune
	for _, word := range strings.Fields(string(s.folded)) {
		runes := []rune(word)
		for _, r := range runes {
			if isWheelLetter(r) && !s.guessed[r] {
				hidden = append(hidden, runes)
				break
			}
		}
	}
	if len(hidden) == 0 {
		return false
	}
	for _, r := range hidden[s.rng.Intn(len(hidden))] {
		if isWheelLetter(r) {
			s.guessed[r] = true
		}
	}
	return true
}

func (s *WheelSession) phraseContains(letter rune) bool {
	for _, r := range s.folded {
		if r == letter {
			return true
		}
	}
	return false
}

func (s *WheelSession) deduct(points int) {
	s.score -= points
	if s.score < 0 {
		s.score = 0
	}
}

func (s *WheelSession) updateSolved() {
	for _, r := range s.folded {
		if isWheelLetter(r) && !s.guessed[r] {
			return
		}
	}
	s.solved = true
}

func (s *WheelSession) CurrentScore() int {
	return s.score
}

func (s *WheelSession) Solved() bool {
	return s.solved
}

func (s *WheelSession) Finalize() (Result, error) {
	if !s.solved {
		return Result{}, domain.ErrGameInProgress
	}
	return Result{
		Score:           s.score,
		PlayTimeSeconds: playTimeSince(s.clock, s.startedAt),
	}, nil
}
