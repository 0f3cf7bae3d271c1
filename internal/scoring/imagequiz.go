package scoring

import (
	"fmt"
	"time"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
)

// ImageQuizSession plays the "đuổi hình bắt chữ" mode: image-backed
// multiple-choice questions with the same lock-on-select and
// round-at-the-end scoring as the plain quiz, but no countdown.
type ImageQuizSession struct {
	clock     Clock
	startedAt time.Time
	questions []domain.ImageQuizQuestion
	sheet     answerSheet
}

func NewImageQuizSession(payload domain.ImageQuizPayload, clock Clock) (*ImageQuizSession, error) {
	optionCounts := make([]int, len(payload.Questions))
	correctAnswers := make([]int, len(payload.Questions))
	for i, question := range payload.Questions {
		optionCounts[i] = len(question.Options)
		correctAnswers[i] = question.CorrectAnswer
	}

	sheet, err := newAnswerSheet(optionCounts, correctAnswers)
	if err != nil {
		return nil, fmt.Errorf("invalid image quiz: %w", err)
	}

	return &ImageQuizSession{
		clock:     clock,
		startedAt: clock.Now(),
		questions: payload.Questions,
		sheet:     sheet,
	}, nil
}

func (s *ImageQuizSession) CurrentQuestion() (int, domain.ImageQuizQuestion) {
	return s.sheet.current, s.questions[s.sheet.current]
}

func (s *ImageQuizSession) Answer(choice int) (bool, error) {
	return s.sheet.answer(choice)
}

func (s *ImageQuizSession) Next() error {
	return s.sheet.next()
}

func (s *ImageQuizSession) CurrentScore() int {
	return s.sheet.roundedScore()
}

func (s *ImageQuizSession) Done() bool {
	return s.sheet.done
}

func (s *ImageQuizSession) Finalize() (Result, error) {
	if !s.sheet.done {
		return Result{}, domain.ErrGameInProgress
	}
	return Result{
		Score:           s.sheet.roundedScore(),
		PlayTimeSeconds: playTimeSince(s.clock, s.startedAt),
	}, nil
}
