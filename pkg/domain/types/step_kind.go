package types

// StepKind is the kind of questionnaire step a session is positioned on
type StepKind string

const (
	StepKindContact  StepKind = "CONTACT"
	StepKindRole     StepKind = "ROLE"
	StepKindQuestion StepKind = "QUESTION"
	StepKindResults  StepKind = "RESULTS"
)

// IsValid checks if the step kind is valid
func (k StepKind) IsValid() bool {
	switch k {
	case StepKindContact, StepKindRole, StepKindQuestion, StepKindResults:
		return true
	default:
		return false
	}
}

// String returns the string representation of the step kind
func (k StepKind) String() string {
	return string(k)
}
