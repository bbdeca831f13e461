package classifier

// Field names one of the eight questionnaire answers.
type Field string

const (
	FieldTelecommuting      Field = "telecommuting"
	FieldHasCompanyLogo     Field = "has_company_logo"
	FieldHasQuestions       Field = "has_questions"
	FieldEmploymentType     Field = "employment_type"
	FieldRequiredExperience Field = "required_experience"
	FieldRequiredEducation  Field = "required_education"
	FieldIndustry           Field = "industry"
	FieldFunction           Field = "function"
)

// Control is the widget a form surface should render for a question.
type Control string

const (
	ControlRadio  Control = "radio"
	ControlSelect Control = "select"
)

// Question describes one field: its prompt, its enumerated domain and the
// option counted as negative.
type Question struct {
	Field    Field    `json:"field"`
	Prompt   string   `json:"prompt"`
	Control  Control  `json:"control"`
	Options  []string `json:"options"`
	Negative string   `json:"negative"`
}

var yesNo = []string{"Yes", "No"}

// Questionnaire lists the questions in the order they are asked and validated.
var Questionnaire = []Question{
	{
		Field:    FieldTelecommuting,
		Prompt:   "Is work from home or remote work allowed?",
		Control:  ControlRadio,
		Options:  yesNo,
		Negative: "No",
	},
	{
		Field:    FieldHasCompanyLogo,
		Prompt:   "Does the job posting have a company logo?",
		Control:  ControlRadio,
		Options:  yesNo,
		Negative: "No",
	},
	{
		Field:    FieldHasQuestions,
		Prompt:   "Does the job posting have questions?",
		Control:  ControlRadio,
		Options:  yesNo,
		Negative: "No",
	},
	{
		Field:   FieldEmploymentType,
		Prompt:  "What is the employment type?",
		Control: ControlSelect,
		Options: []string{
			"Not Specified", "Other", "Part-time", "Contract", "Temporary", "Full-time",
		},
		Negative: "Not Specified",
	},
	{
		Field:   FieldRequiredExperience,
		Prompt:  "What is the required experience?",
		Control: ControlSelect,
		Options: []string{
			"Not Applicable", "Internship", "Entry level", "Mid-Senior level",
			"Associate", "Executive", "Director",
		},
		Negative: "Not Applicable",
	},
	{
		Field:   FieldRequiredEducation,
		Prompt:  "What is the required education?",
		Control: ControlSelect,
		Options: []string{
			"Unspecified",
			"Vocational - HS Diploma",
			"Some High School Coursework",
			"High School or equivalent",
			"Some College Coursework Completed",
			"Certification",
			"Vocational",
			"Vocational - Degree",
			"Bachelor's Degree",
			"Master's Degree",
			"Associate Degree",
			"Professional",
			"Doctorate",
		},
		Negative: "Unspecified",
	},
	{
		Field:   FieldIndustry,
		Prompt:  "Please choose which industry the job posting is relevant to",
		Control: ControlSelect,
		Options: []string{
			"Not Specified",
			"Marketing and Advertising",
			"Computer Software",
			"Hospital & Health Care",
			"Online Media",
			"Information Technology and Services",
			"Financial Services",
			"Management Consulting",
			"Internet",
			"Telecommunications",
			"Consumer Services",
			"Construction",
			"Oil & Energy",
			"Education Management",
			"Health, Wellness and Fitness",
			"Insurance",
			"E-Learning",
			"Staffing and Recruiting",
			"Human Resources",
			"Real Estate",
			"Automotive",
			"Logistics and Supply Chain",
			"Design",
			"Accounting",
			"Retail",
			"Others",
		},
		Negative: "Not Specified",
	},
	{
		Field:   FieldFunction,
		Prompt:  "Please choose which umbrella term matches job's functionality?",
		Control: ControlSelect,
		Options: []string{
			"Not Specified",
			"Marketing",
			"Customer Service",
			"Sales",
			"Health Care Provider",
			"Management",
			"Information Technology",
			"Engineering",
			"Administrative",
			"Design",
			"Production",
			"Education",
			"Business Development",
			"Product Management",
			"Consulting",
			"Human Resources",
			"Project Management",
			"Finance",
			"Accounting/Auditing",
			"Art/Creative",
			"Quality Assurance",
			"Writing/Editing",
			"Other",
		},
		Negative: "Not Specified",
	},
}

// Allows reports whether value is a member of the question's domain.
func (q Question) Allows(value string) bool {
	for _, option := range q.Options {
		if option == value {
			return true
		}
	}
	return false
}
