// Package classifier implements the rule that labels a job posting Real or
// Fake from eight questionnaire answers.
package classifier

import (
	"alfredoptarigan/job-posting-classifier/internal/apperrors"
)

type Result string

const (
	ResultReal Result = "Real"
	ResultFake Result = "Fake"
)

// FakeThreshold is the inclusive number of negative answers that makes a
// posting Fake.
const FakeThreshold = 2

// Input holds the eight answers, each an exact, case-sensitive option literal.
type Input struct {
	Telecommuting      string `json:"telecommuting"`
	HasCompanyLogo     string `json:"has_company_logo"`
	HasQuestions       string `json:"has_questions"`
	EmploymentType     string `json:"employment_type"`
	RequiredExperience string `json:"required_experience"`
	RequiredEducation  string `json:"required_education"`
	Industry           string `json:"industry"`
	Function           string `json:"function"`
}

// Value returns the answer given for field.
func (in Input) Value(field Field) string {
	switch field {
	case FieldTelecommuting:
		return in.Telecommuting
	case FieldHasCompanyLogo:
		return in.HasCompanyLogo
	case FieldHasQuestions:
		return in.HasQuestions
	case FieldEmploymentType:
		return in.EmploymentType
	case FieldRequiredExperience:
		return in.RequiredExperience
	case FieldRequiredEducation:
		return in.RequiredEducation
	case FieldIndustry:
		return in.Industry
	case FieldFunction:
		return in.Function
	}
	return ""
}

// NegativeCount validates every answer against its domain and counts the
// answers equal to their field's negative value. The first out-of-domain
// answer, in questionnaire order, fails with an INVALID_INPUT error.
func NegativeCount(in Input) (int, error) {
	count := 0
	for _, q := range Questionnaire {
		value := in.Value(q.Field)
		if !q.Allows(value) {
			return 0, apperrors.InvalidInput(string(q.Field), value)
		}
		if value == q.Negative {
			count++
		}
	}
	return count, nil
}

// ResultFor maps a negative count to Fake at FakeThreshold or above, else Real.
func ResultFor(negativeCount int) Result {
	if negativeCount >= FakeThreshold {
		return ResultFake
	}
	return ResultReal
}

// Classify labels the posting described by in.
func Classify(in Input) (Result, error) {
	count, err := NegativeCount(in)
	if err != nil {
		return "", err
	}
	return ResultFor(count), nil
}
