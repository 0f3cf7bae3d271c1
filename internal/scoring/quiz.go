package scoring

import (
	"fmt"
	"time"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
	"github.com/shopspring/decimal"
)

const quizMaxScore = 100

// NoAnswer is recorded as the choice when a question times out. It never
// matches a correct answer index.
const NoAnswer = -1

const unanswered = -2

// answerSheet drives the shared multiple-choice flow of the quiz and image
// quiz games: questions are answered strictly in order, each answer locks on
// selection, and each correct answer is worth maxScore/N with the fractional
// points accumulated exactly and rounded only at the very end.
type answerSheet struct {
	optionCounts   []int
	correctAnswers []int
	perQuestion    decimal.Decimal
	current        int
	choices        []int
	score          decimal.Decimal
	done           bool
}

func newAnswerSheet(optionCounts []int, correctAnswers []int) (answerSheet, error) {
	if len(correctAnswers) == 0 {
		return answerSheet{}, fmt.Errorf("need at least one question")
	}
	for i, answer := range correctAnswers {
		if optionCounts[i] < 2 {
			return answerSheet{}, fmt.Errorf("question %d needs at least two options", i+1)
		}
		if answer < 0 || answer >= optionCounts[i] {
			return answerSheet{}, fmt.Errorf("question %d has correct answer index out of range", i+1)
		}
	}

	n := int64(len(correctAnswers))
	choices := make([]int, n)
	for i := range choices {
		choices[i] = unanswered
	}
	return answerSheet{
		optionCounts:   optionCounts,
		correctAnswers: correctAnswers,
		perQuestion:    decimal.NewFromInt(quizMaxScore).Div(decimal.NewFromInt(n)),
		choices:        choices,
	}, nil
}

func (a *answerSheet) answer(choice int) (bool, error) {
	if a.done {
		return false, domain.ErrGameOver
	}
	if a.choices[a.current] != unanswered {
		return false, fmt.Errorf("question %d is already answered", a.current+1)
	}
	if choice < 0 || choice >= a.optionCounts[a.current] {
		return false, fmt.Errorf("invalid answer index %d", choice)
	}

	a.choices[a.current] = choice
	correct := choice == a.correctAnswers[a.current]
	if correct {
		a.score = a.score.Add(a.perQuestion)
	}
	return correct, nil
}

// timeout records the current question as unanswered. It is a no-op if the
// question is already answered, so a stale countdown firing after a selection
// cannot score the question twice.
func (a *answerSheet) timeout() {
	if a.done || a.choices[a.current] != unanswered {
		return
	}
	a.choices[a.current] = NoAnswer
}

func (a *answerSheet) next() error {
	if a.done {
		return domain.ErrGameOver
	}
	if a.choices[a.current] == unanswered {
		return fmt.Errorf("question %d is not answered", a.current+1)
	}
	if a.current == len(a.correctAnswers)-1 {
		a.done = true
		return nil
	}
	a.current++
	return nil
}

func (a *answerSheet) answeredCurrent() bool {
	return a.choices[a.current] != unanswered
}

func (a *answerSheet) roundedScore() int {
	return int(a.score.Round(0).IntPart())
}

// QuizSession plays a timed multiple-choice quiz. The per-question countdown
// itself runs in the UI layer; the session only derives its duration and
// accepts the resulting timeout events.
type QuizSession struct {
	clock     Clock
	startedAt time.Time
	questions []domain.QuizQuestion
	countdown *int
	sheet     answerSheet
}

func NewQuizSession(payload domain.QuizPayload, timeLimitSeconds *int, clock Clock) (*QuizSession, error) {
	optionCounts := make([]int, len(payload.Questions))
	correctAnswers := make([]int, len(payload.Questions))
	for i, question := range payload.Questions {
		optionCounts[i] = len(question.Options)
		correctAnswers[i] = question.CorrectAnswer
	}

	sheet, err := newAnswerSheet(optionCounts, correctAnswers)
	if err != nil {
		return nil, fmt.Errorf("invalid quiz: %w", err)
	}

	var countdown *int
	if timeLimitSeconds != nil {
		perQuestion := *timeLimitSeconds / len(payload.Questions)
		countdown = &perQuestion
	}

	return &QuizSession{
		clock:     clock,
		startedAt: clock.Now(),
		questions: payload.Questions,
		countdown: countdown,
		sheet:     sheet,
	}, nil
}

// QuestionCountdownSeconds returns the per-question time budget (the overall
// limit split evenly), or false for untimed quizzes.
func (s *QuizSession) QuestionCountdownSeconds() (int, bool) {
	if s.countdown == nil {
		return 0, false
	}
	return *s.countdown, true
}

// CurrentQuestion returns the 0-based index and content of the question being
// played.
func (s *QuizSession) CurrentQuestion() (int, domain.QuizQuestion) {
	return s.sheet.current, s.questions[s.sheet.current]
}

// Answer locks in a choice for the current question and reports whether it
// was correct. A question can only be answered once.
func (s *QuizSession) Answer(choice int) (bool, error) {
	return s.sheet.answer(choice)
}

// Timeout records the current question as unanswered. Calling it after the
// question was answered is harmless.
func (s *QuizSession) Timeout() {
	s.sheet.timeout()
}

// Next advances past the current (answered or timed-out) question. Advancing
// past the last question finishes the session.
func (s *QuizSession) Next() error {
	return s.sheet.next()
}

func (s *QuizSession) Answered() bool {
	return s.sheet.answeredCurrent()
}

// CurrentScore is the interim display score, rounded for presentation.
func (s *QuizSession) CurrentScore() int {
	return s.sheet.roundedScore()
}

func (s *QuizSession) Done() bool {
	return s.sheet.done
}

func (s *QuizSession) Finalize() (Result, error) {
	if !s.sheet.done {
		return Result{}, domain.ErrGameInProgress
	}
	return Result{
		Score:           s.sheet.roundedScore(),
		PlayTimeSeconds: playTimeSince(s.clock, s.startedAt),
	}, nil
}
