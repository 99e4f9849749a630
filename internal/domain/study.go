package domain

import "time"

// Subject is one of the bar exam subjects a study session can cover.
type Subject string

const (
	SubjectCivilProcedure    Subject = "Civil Procedure"
	SubjectConLaw            Subject = "Constitutional Law"
	SubjectContracts         Subject = "Contracts"
	SubjectCriminalLaw       Subject = "Criminal Law"
	SubjectCriminalProcedure Subject = "Criminal Procedure"
	SubjectTorts             Subject = "Torts"
	SubjectProperty          Subject = "Property"
	SubjectEvidence          Subject = "Evidence"
	SubjectBusinessOrgs      Subject = "Business Organizations"
	SubjectCommunityProperty Subject = "Community Property"
	SubjectWillsTrusts       Subject = "Wills & Trusts"
	SubjectRemedies          Subject = "Remedies"
)

// AllSubjects returns the fixed list of bar exam subjects.
func AllSubjects() []Subject {
	return []Subject{
		SubjectCivilProcedure,
		SubjectConLaw,
		SubjectContracts,
		SubjectCriminalLaw,
		SubjectCriminalProcedure,
		SubjectTorts,
		SubjectProperty,
		SubjectEvidence,
		SubjectBusinessOrgs,
		SubjectCommunityProperty,
		SubjectWillsTrusts,
		SubjectRemedies,
	}
}

// IsValid returns true if the subject is part of the enumeration.
func (s Subject) IsValid() bool {
	for _, v := range AllSubjects() {
		if s == v {
			return true
		}
	}
	return false
}

// Clarity rating bounds and the hours ceiling for a single session.
const (
	MinClarity      = 1
	MaxClarity      = 5
	MaxSessionHours = 24.0
)

// StudySession is an immutable record of time spent on one subject.
// Fields are ordered to minimize memory padding.
type StudySession struct {
	LoggedAt time.Time // Set when the session is logged
	Subject  Subject   // One of the fixed subject list
	Notes    string    // Free-form notes (optional)
	Hours    float64   // Positive, at most MaxSessionHours
	Clarity  int       // Self-rated concept clarity, MinClarity..MaxClarity
	ID       int64     // Assigned by the store
}

// MockScore is an immutable record of one practice-exam result.
// Fields are ordered to minimize memory padding.
type MockScore struct {
	LoggedAt    time.Time // Set when the score is logged
	ExamType    string    // e.g. "Full MBE (200q)", "Essay (Single)"
	Notes       string    // Free-form notes (optional)
	Score       int       // Points earned, non-negative
	TotalPoints int       // Points possible, positive
	ID          int64     // Assigned by the store
}

// Percentage returns the score as a percentage of total points.
// A non-positive total resolves to 0 rather than faulting; scores above
// the total are not clamped.
func (m *MockScore) Percentage() float64 {
	return ScorePercentage(m.Score, m.TotalPoints)
}
