package domain

import "sort"

// SubjectClarity is one entry of the weak-subject ranking.
type SubjectClarity struct {
	Subject      Subject // The subject
	AvgClarity   float64 // Arithmetic mean of clarity across sessions
	SessionCount int     // Number of sessions that contributed
}

// WeakSubjects ranks subjects by average clarity, weakest first.
// Only subjects with at least one session appear. Equal averages are
// ordered alphabetically by subject so the ranking is deterministic.
// An empty input yields an empty ranking.
func WeakSubjects(sessions []*StudySession) []SubjectClarity {
	type acc struct {
		sum   int
		count int
	}
	totals := make(map[Subject]*acc)
	for _, s := range sessions {
		a, ok := totals[s.Subject]
		if !ok {
			a = &acc{}
			totals[s.Subject] = a
		}
		a.sum += s.Clarity
		a.count++
	}

	ranking := make([]SubjectClarity, 0, len(totals))
	for subject, a := range totals {
		ranking = append(ranking, SubjectClarity{
			Subject:      subject,
			AvgClarity:   float64(a.sum) / float64(a.count),
			SessionCount: a.count,
		})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].AvgClarity != ranking[j].AvgClarity {
			return ranking[i].AvgClarity < ranking[j].AvgClarity
		}
		return ranking[i].Subject < ranking[j].Subject
	})
	return ranking
}

// TotalStudyHours sums hours across the given sessions. 0 for an empty
// input.
func TotalStudyHours(sessions []*StudySession) float64 {
	var total float64
	for _, s := range sessions {
		total += s.Hours
	}
	return total
}

// HoursBySubject sums hours grouped by subject.
func HoursBySubject(sessions []*StudySession) map[Subject]float64 {
	hours := make(map[Subject]float64, len(sessions))
	for _, s := range sessions {
		hours[s.Subject] += s.Hours
	}
	return hours
}

// ScorePercentage returns score/total*100. A non-positive total is
// defined as 0 instead of a divide-by-zero fault. Values above 100 are
// not clamped.
func ScorePercentage(score, totalPoints int) float64 {
	if totalPoints <= 0 {
		return 0
	}
	return float64(score) / float64(totalPoints) * 100
}

// CompletedTaskCount counts tasks in the completed status within the
// given snapshot.
func CompletedTaskCount(tasks []*Task) int {
	n := 0
	for _, t := range tasks {
		if t.IsCompleted() {
			n++
		}
	}
	return n
}
