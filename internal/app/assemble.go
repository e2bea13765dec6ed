package app

import (
	"time"

	"tecno-eval-service/internal/domain"
	"tecno-eval-service/internal/quiz"
)

// BuildSubmission folds accumulated answers and view times into the wire
// payload. Pure: correctness and totalCorrect are derived here and only
// here on the client side; an absent answer counts as incorrect.
func BuildSubmission(
	participant domain.ParticipantInfo,
	answers map[int]string,
	seconds map[int]int,
	answered map[int]bool,
	totalTime int,
	completedAt time.Time,
	catalog quiz.Catalog,
) domain.Submission {
	size := catalog.Size()

	correctness := make(map[int]int, size)
	totalCorrect := 0
	for i := 0; i < size; i++ {
		if answer, ok := answers[i]; ok && answer == catalog.CorrectOption(i) {
			correctness[i] = 1
			totalCorrect++
		} else {
			correctness[i] = 0
		}
	}

	times := make(map[int]domain.QuestionTiming, size)
	for i := 0; i < size; i++ {
		times[i] = domain.QuestionTiming{
			TimeSpent: seconds[i],
			Answered:  answered[i],
		}
	}

	return domain.Submission{
		Participant:   participant,
		Answers:       copyAnswers(answers),
		QuestionTimes: times,
		TotalTime:     totalTime,
		CompletedAt:   completedAt.UTC().Format(time.RFC3339),
		TotalCorrect:  totalCorrect,
		Correctness:   correctness,
		Questions:     catalog.Metadata(),
	}
}

func copyAnswers(answers map[int]string) map[int]string {
	out := make(map[int]string, len(answers))
	for i, a := range answers {
		out[i] = a
	}
	return out
}
