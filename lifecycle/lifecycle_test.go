package lifecycle

import (
	"testing"
	"time"

	"wst/models/training"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func gormModel(id uint) gorm.Model {
	return gorm.Model{ID: id}
}

func TestEnrollmentState(t *testing.T) {
	e := &training.Enrollment{}
	assert.Equal(t, StateEnrolled, EnrollmentState(e))

	e.CurrentSlide = 2
	e.Progress = 32
	assert.Equal(t, StateInProgress, EnrollmentState(e))

	e.Attempts = 1
	e.Score = 50
	assert.Equal(t, StateFailed, EnrollmentState(e))

	e.IsPassed = true
	assert.Equal(t, StateCompleted, EnrollmentState(e))
}

func TestSlideProgressCapsAtSlideShare(t *testing.T) {
	// 5 slides: each slide is worth 16% of the 80% slide share
	assert.Equal(t, 16, SlideProgress(0, 5))
	assert.Equal(t, 48, SlideProgress(2, 5))
	assert.Equal(t, 80, SlideProgress(4, 5))

	// index past the end still caps at 80
	assert.Equal(t, 80, SlideProgress(9, 5))

	// degenerate deck
	assert.Equal(t, 0, SlideProgress(0, 0))
}

func TestScoreQuizPassFail(t *testing.T) {
	questions := []training.TrainingQuestion{
		{
			Model: gormModel(1),
			Options: []training.QuestionOption{
				{Model: gormModel(10), IsCorrect: true},
				{Model: gormModel(11)},
			},
		},
		{
			Model: gormModel(2),
			Options: []training.QuestionOption{
				{Model: gormModel(20)},
				{Model: gormModel(21), IsCorrect: true},
			},
		},
	}

	// 1 of 2 correct, threshold 70 -> 50%, fail
	res := ScoreQuiz(questions, map[uint]uint{1: 10, 2: 20}, 70)
	assert.Equal(t, 50, res.Score)
	assert.Equal(t, 1, res.CorrectCount)
	assert.False(t, res.Passed)

	// 2 of 2 correct -> 100%, pass
	res = ScoreQuiz(questions, map[uint]uint{1: 10, 2: 21}, 70)
	assert.Equal(t, 100, res.Score)
	assert.True(t, res.Passed)
}

func TestScoreQuizMissingAnswerCountsIncorrect(t *testing.T) {
	questions := []training.TrainingQuestion{
		{
			Model: gormModel(1),
			Options: []training.QuestionOption{
				{Model: gormModel(10), IsCorrect: true},
			},
		},
	}

	res := ScoreQuiz(questions, map[uint]uint{}, 50)
	assert.Equal(t, 0, res.Score)
	assert.False(t, res.Passed)
}

func TestScoreQuizZeroQuestions(t *testing.T) {
	res := ScoreQuiz(nil, nil, 70)
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 0, res.TotalCount)
	assert.False(t, res.Passed)
}

func TestComputeExpiry(t *testing.T) {
	issued := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	exp := ComputeExpiry(issued, 6)
	assert.NotNil(t, exp)
	assert.Equal(t, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), *exp)

	assert.Nil(t, ComputeExpiry(issued, 0))
}

func TestCertificateStatus(t *testing.T) {
	now := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	past := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	future := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	cert := &training.Certificate{ExpiresAt: &future}
	assert.Equal(t, CertValid, CertificateStatus(cert, now))

	cert.ExpiresAt = &past
	assert.Equal(t, CertExpired, CertificateStatus(cert, now))

	// revocation wins over expiry
	cert.IsRevoked = true
	assert.Equal(t, CertRevoked, CertificateStatus(cert, now))

	// no expiry date: never expires
	cert = &training.Certificate{}
	assert.Equal(t, CertValid, CertificateStatus(cert, now))
}

func TestCanReEnroll(t *testing.T) {
	now := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	past := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	future := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.False(t, CanReEnroll(nil, now))
	assert.False(t, CanReEnroll(&training.Certificate{ExpiresAt: &future}, now))
	assert.False(t, CanReEnroll(&training.Certificate{ExpiresAt: &past, IsRevoked: true}, now))
	assert.True(t, CanReEnroll(&training.Certificate{ExpiresAt: &past}, now))
}

func TestResetEnrollmentClearsProgress(t *testing.T) {
	completed := time.Now()
	e := &training.Enrollment{
		Progress:     100,
		CurrentSlide: 4,
		IsPassed:     true,
		Score:        90,
		Attempts:     2,
		CompletedAt:  &completed,
	}

	ResetEnrollment(e)

	assert.Equal(t, 0, e.Progress)
	assert.Equal(t, 0, e.CurrentSlide)
	assert.False(t, e.IsPassed)
	assert.Equal(t, 0, e.Score)
	assert.Equal(t, 0, e.Attempts)
	assert.Nil(t, e.CompletedAt)
	assert.Equal(t, StateEnrolled, EnrollmentState(e))
}
