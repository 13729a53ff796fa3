package wizard

// TemplateID identifies a résumé template. The zero value means no template
// has been selected yet.
type TemplateID string

// Template identifiers.
const (
	TemplateClean    TemplateID = "clean"
	TemplateModern   TemplateID = "modern"
	TemplateElegant  TemplateID = "elegant"
	TemplateCreative TemplateID = "creative"
	TemplateTech     TemplateID = "tech"
)

// Template describes a résumé template offered in step 3.
type Template struct {
	ID          TemplateID
	Name        string
	Description string
	Icon        string
}

// Templates contains the full template catalog in display order.
var Templates = []Template{
	{ID: TemplateClean, Name: "Clean", Description: "Minimalist design with clean lines", Icon: "📄"},
	{ID: TemplateModern, Name: "Modern", Description: "Contemporary layout with bold headers", Icon: "🎨"},
	{ID: TemplateElegant, Name: "Elegant", Description: "Sophisticated design with classic typography", Icon: "✨"},
	{ID: TemplateCreative, Name: "Creative", Description: "Unique layout for creative professionals", Icon: "🎭"},
	{ID: TemplateTech, Name: "Tech", Description: "Developer-focused with technical sections", Icon: "💻"},
}

// LookupTemplate returns the catalog entry for id.
func LookupTemplate(id TemplateID) (Template, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// TemplateIDs returns the catalog ids in display order.
func TemplateIDs() []string {
	ids := make([]string, len(Templates))
	for i, t := range Templates {
		ids[i] = string(t.ID)
	}
	return ids
}

// SuggestedSkills are offered as one-keystroke picks on the skills question.
var SuggestedSkills = []string{
	"JavaScript",
	"TypeScript",
	"React",
	"Node.js",
	"Python",
	"Java",
	"C++",
	"HTML",
	"CSS",
	"Git",
	"Docker",
	"AWS",
	"MongoDB",
	"PostgreSQL",
	"Express.js",
	"Angular",
	"Vue.js",
}

// PopularRoles are offered as quick picks in the role targeting step.
var PopularRoles = []string{
	"Frontend Developer",
	"Backend Developer",
	"Full Stack Developer",
	"Data Scientist",
	"Product Manager",
	"UX Designer",
}
