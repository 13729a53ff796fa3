package wizard

// BasicInfo holds the contact details collected by the first three questions.
type BasicInfo struct {
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
}

// BasicInfoField names a single BasicInfo field.
type BasicInfoField string

// BasicInfo fields.
const (
	FieldName     BasicInfoField = "name"
	FieldEmail    BasicInfoField = "email"
	FieldLinkedIn BasicInfoField = "linkedin"
)

// Get returns the value of field, or "" for an unknown field.
func (b BasicInfo) Get(field BasicInfoField) string {
	switch field {
	case FieldName:
		return b.Name
	case FieldEmail:
		return b.Email
	case FieldLinkedIn:
		return b.LinkedIn
	default:
		return ""
	}
}

// EducationEntry is one degree on the profile.
type EducationEntry struct {
	ID             string `json:"id" yaml:"id"`
	Degree         string `json:"degree" yaml:"degree"`
	School         string `json:"school" yaml:"school"`
	GraduationYear string `json:"graduationYear" yaml:"graduation_year"`
}

// EducationField names a single editable EducationEntry field.
type EducationField string

// EducationEntry fields.
const (
	FieldDegree         EducationField = "degree"
	FieldSchool         EducationField = "school"
	FieldGraduationYear EducationField = "graduationYear"
)

// EducationFields lists the editable education fields in display order.
var EducationFields = []EducationField{FieldDegree, FieldSchool, FieldGraduationYear}

// set overwrites one field. Unknown fields are ignored.
func (e *EducationEntry) set(field EducationField, value string) {
	switch field {
	case FieldDegree:
		e.Degree = value
	case FieldSchool:
		e.School = value
	case FieldGraduationYear:
		e.GraduationYear = value
	}
}

// Get returns the value of one field, or "" for an unknown field.
func (e EducationEntry) Get(field EducationField) string {
	switch field {
	case FieldDegree:
		return e.Degree
	case FieldSchool:
		return e.School
	case FieldGraduationYear:
		return e.GraduationYear
	}
	return ""
}

// WorkEntry is one position in the work history.
type WorkEntry struct {
	ID          string `json:"id" yaml:"id"`
	JobTitle    string `json:"jobTitle" yaml:"job_title"`
	Company     string `json:"company" yaml:"company"`
	Duration    string `json:"duration" yaml:"duration"`
	Description string `json:"description" yaml:"description"`
}

// WorkField names a single editable WorkEntry field.
type WorkField string

// WorkEntry fields.
const (
	FieldJobTitle    WorkField = "jobTitle"
	FieldCompany     WorkField = "company"
	FieldDuration    WorkField = "duration"
	FieldDescription WorkField = "description"
)

// WorkFields lists the editable work fields in display order.
var WorkFields = []WorkField{FieldJobTitle, FieldCompany, FieldDuration, FieldDescription}

func (w *WorkEntry) set(field WorkField, value string) {
	switch field {
	case FieldJobTitle:
		w.JobTitle = value
	case FieldCompany:
		w.Company = value
	case FieldDuration:
		w.Duration = value
	case FieldDescription:
		w.Description = value
	}
}

// Get returns the value of one field, or "" for an unknown field.
func (w WorkEntry) Get(field WorkField) string {
	switch field {
	case FieldJobTitle:
		return w.JobTitle
	case FieldCompany:
		return w.Company
	case FieldDuration:
		return w.Duration
	case FieldDescription:
		return w.Description
	}
	return ""
}

// ProfileData aggregates everything collected during the profile step.
// Certifications and Languages are carried for downstream consumers but are
// never populated by the current question flow.
type ProfileData struct {
	BasicInfo      BasicInfo        `json:"basicInfo" yaml:"basic_info"`
	Education      []EducationEntry `json:"education" yaml:"education"`
	WorkExperience []WorkEntry      `json:"workExperience" yaml:"work_experience"`
	Skills         []string         `json:"skills" yaml:"skills"`
	Certifications []string         `json:"certifications" yaml:"certifications"`
	Languages      []string         `json:"languages" yaml:"languages"`
}

// newProfileData returns an empty profile with non-nil lists so that
// exported snapshots always carry arrays rather than nulls.
func newProfileData() ProfileData {
	return ProfileData{
		Education:      []EducationEntry{},
		WorkExperience: []WorkEntry{},
		Skills:         []string{},
		Certifications: []string{},
		Languages:      []string{},
	}
}

// clone returns a deep copy.
func (p ProfileData) clone() ProfileData {
	return ProfileData{
		BasicInfo:      p.BasicInfo,
		Education:      append([]EducationEntry{}, p.Education...),
		WorkExperience: append([]WorkEntry{}, p.WorkExperience...),
		Skills:         append([]string{}, p.Skills...),
		Certifications: append([]string{}, p.Certifications...),
		Languages:      append([]string{}, p.Languages...),
	}
}

// TargetRole is the job the résumé is being tailored for.
type TargetRole struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}
