package domain

// ScoreIncrement is added to the cumulative dataset score for each
// correctly answered question.
const ScoreIncrement = 0.05

// defaultSkillMeta replaces missing or zero question metadata.
const (
	defaultSkillID    = 1
	defaultDifficulty = 1
)

// BuildDatasetRows projects a validated submission into dataset rows, one
// per question index in order 0..N-1. The projection is pure: it reads
// only its arguments and allocates the result.
//
// Invariants:
//   - Score is non-decreasing in item order: it is the correct-so-far
//     count times ScoreIncrement, recomputed per row to avoid float drift.
//   - Next is 1 on every row except the last, where it is 0.
//   - Timestamp is the 1-based question order; ItemID is questionIndex+1.
func BuildDatasetRows(participantID int64, sub Submission) []DatasetRecord {
	total := len(sub.Answers)
	rows := make([]DatasetRecord, 0, total)

	correct := 0
	for i := 0; i < total; i++ {
		if sub.Correctness[i] == 1 {
			correct++
		}

		next := 1
		if i == total-1 {
			next = 0
		}

		skillID, difficulty := defaultSkillID, defaultDifficulty
		if i < len(sub.Questions) {
			if sub.Questions[i].SkillID != 0 {
				skillID = sub.Questions[i].SkillID
			}
			if sub.Questions[i].Difficulty != 0 {
				difficulty = sub.Questions[i].Difficulty
			}
		}

		rows = append(rows, DatasetRecord{
			UserID:       participantID,
			ItemID:       i + 1,
			Score:        float64(correct) * ScoreIncrement,
			Current:      1,
			Next:         next,
			Timestamp:    i + 1,
			SkillID:      skillID,
			Difficulty:   difficulty,
			ResponseTime: sub.QuestionTimes[i].TimeSpent,
		})
	}
	return rows
}
