package valueobjects

import "fmt"

type CaseStatus string

const (
	StatusActive   CaseStatus = "ACTIVE"
	StatusArchived CaseStatus = "ARCHIVED"
)

var validCaseStatuses = map[CaseStatus]bool{
	StatusActive:   true,
	StatusArchived: true,
}

var caseStatusTransitions = map[CaseStatus][]CaseStatus{
	StatusActive: {
		StatusArchived,
	},
	StatusArchived: {},
}

func (s CaseStatus) String() string {
	return string(s)
}

func (s CaseStatus) IsValid() bool {
	return validCaseStatuses[s]
}

func (s CaseStatus) IsArchived() bool {
	return s == StatusArchived
}

func (s CaseStatus) CanTransitionTo(newStatus CaseStatus) bool {
	for _, allowed := range caseStatusTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func NewCaseStatus(s string) (CaseStatus, error) {
	status := CaseStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid case status: %s", s)
	}
	return status, nil
}
