package wizard

// Snapshot is a point-in-time copy of everything the wizard collected. It
// shares no memory with the Controller that produced it.
type Snapshot struct {
	Profile    ProfileData `json:"userMetadata" yaml:"user_metadata"`
	TargetRole TargetRole  `json:"targetRole" yaml:"target_role"`
	Template   TemplateID  `json:"selectedTemplate" yaml:"selected_template"`
}

func (s Snapshot) clone() Snapshot {
	s.Profile = s.Profile.clone()
	return s
}

// TemplateInfo returns the catalog entry for the selected template.
// ok is false when no template was selected.
func (s Snapshot) TemplateInfo() (Template, bool) {
	return LookupTemplate(s.Template)
}
