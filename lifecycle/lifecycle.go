package lifecycle

import (
	"math"
	"time"

	"wst/models/training"
)

// Enrollment states, derived from an enrollment's fields on every read.
const (
	StateEnrolled   = "ENROLLED"
	StateInProgress = "IN_PROGRESS"
	StateCompleted  = "COMPLETED"
	StateFailed     = "FAILED"
)

// Certificate statuses, derived, never persisted.
const (
	CertValid   = "VALID"
	CertExpired = "EXPIRED"
	CertRevoked = "REVOKED"
)

// SlideShare is the share of total progress the slide deck can contribute;
// the remaining 20% is reserved for the quiz outcome.
const SlideShare = 80

// EnrollmentState derives the lifecycle state from an enrollment's fields.
func EnrollmentState(e *training.Enrollment) string {
	if e.IsPassed {
		return StateCompleted
	}
	if e.Attempts > 0 {
		return StateFailed
	}
	if e.Progress > 0 || e.CurrentSlide > 0 {
		return StateInProgress
	}
	return StateEnrolled
}

// SlideProgress computes the progress percentage after viewing the slide
// at slideIndex. Slides contribute at most SlideShare percent.
func SlideProgress(slideIndex, totalSlides int) int {
	if totalSlides <= 0 {
		return 0
	}
	p := int(math.Round(float64(slideIndex+1) / float64(totalSlides) * SlideShare))
	if p > SlideShare {
		p = SlideShare
	}
	return p
}

// QuizResult is the outcome of scoring a quiz submission.
type QuizResult struct {
	Score        int
	CorrectCount int
	TotalCount   int
	Passed       bool
}

// ScoreQuiz grades a submission against a training's questions. Answers
// maps question ID to the selected option ID; a missing key never matches
// and counts as incorrect. Zero questions yields a zero score.
func ScoreQuiz(questions []training.TrainingQuestion, answers map[uint]uint, passingScore int) QuizResult {
	res := QuizResult{TotalCount: len(questions)}
	if len(questions) == 0 {
		return res
	}

	for _, q := range questions {
		selected, ok := answers[q.ID]
		if !ok {
			continue
		}
		for _, opt := range q.Options {
			if opt.ID == selected && opt.IsCorrect {
				res.CorrectCount++
				break
			}
		}
	}

	res.Score = int(math.Round(float64(res.CorrectCount) / float64(res.TotalCount) * 100))
	res.Passed = res.Score >= passingScore
	return res
}

// ComputeExpiry returns the expiry timestamp for a certificate issued at
// issuedAt under the given validity period. Nil means never expires.
func ComputeExpiry(issuedAt time.Time, validityMonths int) *time.Time {
	if validityMonths <= 0 {
		return nil
	}
	exp := issuedAt.AddDate(0, validityMonths, 0)
	return &exp
}

// CertificateStatus derives a certificate's current status. Revocation
// wins over expiry; a certificate without ExpiresAt never expires.
func CertificateStatus(cert *training.Certificate, now time.Time) string {
	if cert.IsRevoked {
		return CertRevoked
	}
	if cert.ExpiresAt != nil && now.After(*cert.ExpiresAt) {
		return CertExpired
	}
	return CertValid
}

// CanReEnroll reports whether a worker may re-enroll given the pair's
// certificate: only once an unrevoked certificate has expired.
func CanReEnroll(cert *training.Certificate, now time.Time) bool {
	if cert == nil {
		return false
	}
	return CertificateStatus(cert, now) == CertExpired
}

// ResetEnrollment clears all progress fields in place. The enrollment row
// survives; its certificate is revoked separately.
func ResetEnrollment(e *training.Enrollment) {
	e.Progress = 0
	e.CurrentSlide = 0
	e.ViewedSlides = nil
	e.IsPassed = false
	e.Score = 0
	e.Attempts = 0
	e.CompletedAt = nil
}
