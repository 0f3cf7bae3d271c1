package scoring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
	"github.com/ltnguyen/hanhtrinh/internal/scoring"
)

func quizWithQuestions(count int) domain.QuizPayload {
	questions := make([]domain.QuizQuestion, count)
	for i := range questions {
		questions[i] = domain.QuizQuestion{
			Question:      "Câu hỏi",
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: i % 4,
		}
	}
	return domain.QuizPayload{Questions: questions}
}

func intPtr(v int) *int {
	return &v
}

func TestQuizSession(t *testing.T) {
	t.Parallel()

	t.Run("all correct scores the full hundred", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		session, err := scoring.NewQuizSession(quizWithQuestions(5), nil, clock)
		require.NoError(t, err)

		for !session.Done() {
			index, question := session.CurrentQuestion()
			correct, err := session.Answer(question.CorrectAnswer)
			require.NoError(t, err)
			require.True(t, correct, "question %d", index)
			require.NoError(t, session.Next())
		}

		clock.advance(42 * time.Second)
		result, err := session.Finalize()
		require.NoError(t, err)
		require.Equal(t, 100, result.Score)
		require.Equal(t, 42, result.PlayTimeSeconds)
	})

	t.Run("three of five correct scores sixty", func(t *testing.T) {
		t.Parallel()
		session, err := scoring.NewQuizSession(quizWithQuestions(5), nil, newFakeClock())
		require.NoError(t, err)

		for i := 0; i < 5; i++ {
			_, question := session.CurrentQuestion()
			choice := question.CorrectAnswer
			if i >= 3 {
				choice = (question.CorrectAnswer + 1) % len(question.Options)
			}
			_, err := session.Answer(choice)
			require.NoError(t, err)
			require.NoError(t, session.Next())
		}

		result, err := session.Finalize()
		require.NoError(t, err)
		require.Equal(t, 60, result.Score)
	})

	t.Run("fractional per-question points round only at the end", func(t *testing.T) {
		t.Parallel()
		session, err := scoring.NewQuizSession(quizWithQuestions(3), nil, newFakeClock())
		require.NoError(t, err)

		// Two of three at 33.33... points each must come out as 67, not 66.
		for i := 0; i < 3; i++ {
			_, question := session.CurrentQuestion()
			choice := question.CorrectAnswer
			if i == 2 {
				choice = (question.CorrectAnswer + 1) % len(question.Options)
			}
			_, err := session.Answer(choice)
			require.NoError(t, err)
			require.NoError(t, session.Next())
		}

		result, err := session.Finalize()
		require.NoError(t, err)
		require.Equal(t, 67, result.Score)
	})

	t.Run("answer locks on selection", func(t *testing.T) {
		t.Parallel()
		session, err := scoring.NewQuizSession(quizWithQuestions(2), nil, newFakeClock())
		require.NoError(t, err)

		_, question := session.CurrentQuestion()
		wrong := (question.CorrectAnswer + 1) % len(question.Options)
		correct, err := session.Answer(wrong)
		require.NoError(t, err)
		require.False(t, correct)

		_, err = session.Answer(question.CorrectAnswer)
		require.Error(t, err)
		require.Equal(t, 0, session.CurrentScore())
	})

	t.Run("timeout scores nothing and unblocks next", func(t *testing.T) {
		t.Parallel()
		session, err := scoring.NewQuizSession(quizWithQuestions(2), nil, newFakeClock())
		require.NoError(t, err)

		require.Error(t, session.Next(), "must not advance an unanswered question")
		session.Timeout()
		require.True(t, session.Answered())
		require.NoError(t, session.Next())

		index, _ := session.CurrentQuestion()
		require.Equal(t, 1, index)
		require.Equal(t, 0, session.CurrentScore())
	})

	t.Run("stale timeout after an answer does not overwrite it", func(t *testing.T) {
		t.Parallel()
		session, err := scoring.NewQuizSession(quizWithQuestions(1), nil, newFakeClock())
		require.NoError(t, err)

		_, question := session.CurrentQuestion()
		correct, err := session.Answer(question.CorrectAnswer)
		require.NoError(t, err)
		require.True(t, correct)

		session.Timeout()
		require.NoError(t, session.Next())

		result, err := session.Finalize()
		require.NoError(t, err)
		require.Equal(t, 100, result.Score)
	})

	t.Run("countdown splits the time limit evenly", func(t *testing.T) {
		t.Parallel()
		session, err := scoring.NewQuizSession(quizWithQuestions(5), intPtr(300), newFakeClock())
		require.NoError(t, err)

		countdown, ok := session.QuestionCountdownSeconds()
		require.True(t, ok)
		require.Equal(t, 60, countdown)
	})

	t.Run("untimed quiz has no countdown", func(t *testing.T) {
		t.Parallel()
		session, err := scoring.NewQuizSession(quizWithQuestions(2), nil, newFakeClock())
		require.NoError(t, err)

		_, ok := session.QuestionCountdownSeconds()
		require.False(t, ok)
	})

	t.Run("finalize before the last question fails", func(t *testing.T) {
		t.Parallel()
		session, err := scoring.NewQuizSession(quizWithQuestions(2), nil, newFakeClock())
		require.NoError(t, err)

		_, err = session.Finalize()
		require.ErrorIs(t, err, domain.ErrGameInProgress)
	})

	t.Run("answering after the end fails", func(t *testing.T) {
		t.Parallel()
		session, err := scoring.NewQuizSession(quizWithQuestions(1), nil, newFakeClock())
		require.NoError(t, err)

		_, question := session.CurrentQuestion()
		_, err = session.Answer(question.CorrectAnswer)
		require.NoError(t, err)
		require.NoError(t, session.Next())
		require.True(t, session.Done())

		_, err = session.Answer(question.CorrectAnswer)
		require.ErrorIs(t, err, domain.ErrGameOver)
		require.ErrorIs(t, session.Next(), domain.ErrGameOver)
	})

	t.Run("rejects invalid content", func(t *testing.T) {
		t.Parallel()
		_, err := scoring.NewQuizSession(domain.QuizPayload{}, nil, newFakeClock())
		require.Error(t, err)

		_, err = scoring.NewQuizSession(domain.QuizPayload{
			Questions: []domain.QuizQuestion{{Options: []string{"A", "B"}, CorrectAnswer: 2}},
		}, nil, newFakeClock())
		require.Error(t, err)

		_, err = scoring.NewQuizSession(domain.QuizPayload{
			Questions: []domain.QuizQuestion{{Options: []string{"A"}, CorrectAnswer: 0}},
		}, nil, newFakeClock())
		require.Error(t, err)
	})
}

func TestImageQuizSession(t *testing.T) {
	t.Parallel()

	payload := domain.ImageQuizPayload{
		Questions: []domain.ImageQuizQuestion{
			{ImageURL: "/images/a.jpg", Question: "Ảnh nào?", Options: []string{"A", "B", "C"}, CorrectAnswer: 1},
			{ImageURL: "/images/b.jpg", Question: "Ảnh nào?", Options: []string{"A", "B", "C"}, CorrectAnswer: 0},
		},
	}

	t.Run("scores like a quiz", func(t *testing.T) {
		t.Parallel()
		clock := newFakeClock()
		session, err := scoring.NewImageQuizSession(payload, clock)
		require.NoError(t, err)

		correct, err := session.Answer(1)
		require.NoError(t, err)
		require.True(t, correct)
		require.NoError(t, session.Next())

		correct, err = session.Answer(2)
		require.NoError(t, err)
		require.False(t, correct)
		require.NoError(t, session.Next())

		clock.advance(9 * time.Second)
		result, err := session.Finalize()
		require.NoError(t, err)
		require.Equal(t, 50, result.Score)
		require.Equal(t, 9, result.PlayTimeSeconds)
	})

	t.Run("finalize requires finishing", func(t *testing.T) {
		t.Parallel()
		session, err := scoring.NewImageQuizSession(payload, newFakeClock())
		require.NoError(t, err)

		_, err = session.Finalize()
		require.ErrorIs(t, err, domain.ErrGameInProgress)
	})
}
