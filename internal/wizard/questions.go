package wizard

// QuestionID identifies a profile question.
type QuestionID string

// Profile question identifiers, in asking order.
const (
	QuestionName      QuestionID = "name"
	QuestionEmail     QuestionID = "email"
	QuestionLinkedIn  QuestionID = "linkedin"
	QuestionEducation QuestionID = "education"
	QuestionWork      QuestionID = "work"
	QuestionSkills    QuestionID = "skills"
)

// QuestionKind describes which input a question is answered with.
type QuestionKind string

// Question kinds.
const (
	KindText      QuestionKind = "text"
	KindEmail     QuestionKind = "email"
	KindURL       QuestionKind = "url"
	KindEducation QuestionKind = "education"
	KindWork      QuestionKind = "work"
	KindSkills    QuestionKind = "skills"
)

// Question is the metadata for one profile question.
type Question struct {
	ID          QuestionID
	Kind        QuestionKind
	Prompt      string
	Placeholder string
	Required    bool
}

// Questions is the fixed, ordered list of profile questions asked in step 1.
var Questions = []Question{
	{
		ID:          QuestionName,
		Kind:        KindText,
		Prompt:      "What's your full name?",
		Placeholder: "John Doe",
		Required:    true,
	},
	{
		ID:          QuestionEmail,
		Kind:        KindEmail,
		Prompt:      "What's your email address?",
		Placeholder: "john@example.com",
		Required:    true,
	},
	{
		ID:          QuestionLinkedIn,
		Kind:        KindURL,
		Prompt:      "What's your LinkedIn profile URL? (Optional)",
		Placeholder: "https://linkedin.com/in/johndoe",
	},
	{
		ID:          QuestionEducation,
		Kind:        KindEducation,
		Prompt:      "Tell us about your education",
		Placeholder: "Add your degrees, schools, and graduation years",
	},
	{
		ID:          QuestionWork,
		Kind:        KindWork,
		Prompt:      "What's your work experience?",
		Placeholder: "Add your job titles, companies, and descriptions",
	},
	{
		ID:          QuestionSkills,
		Kind:        KindSkills,
		Prompt:      "What are your key skills?",
		Placeholder: "Select from popular skills or add your own",
	},
}

// QuestionCount is the number of profile questions.
var QuestionCount = len(Questions)

// QuestionIndex returns the position of id in Questions, or -1.
func QuestionIndex(id QuestionID) int {
	for i, q := range Questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}
