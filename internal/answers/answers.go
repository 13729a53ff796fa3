package answers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Answers is the YAML document accepted by `roleready build --answers`.
// Profile keys match the user_metadata section of the YAML export.
type Answers struct {
	BasicInfo      BasicInfo   `yaml:"basic_info"`
	Education      []Education `yaml:"education"`
	WorkExperience []Work      `yaml:"work_experience"`
	Skills         []string    `yaml:"skills"`
	TargetRole     TargetRole  `yaml:"target_role"`
	Template       string      `yaml:"template" validate:"omitempty,template"`
}

// BasicInfo answers the contact questions.
type BasicInfo struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	LinkedIn string `yaml:"linkedin"`
}

// Education is one education entry.
type Education struct {
	Degree         string `yaml:"degree"`
	School         string `yaml:"school"`
	GraduationYear string `yaml:"graduation_year"`
}

// Work is one work experience entry.
type Work struct {
	JobTitle    string `yaml:"job_title"`
	Company     string `yaml:"company"`
	Duration    string `yaml:"duration"`
	Description string `yaml:"description"`
}

// TargetRole answers the role step.
type TargetRole struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Load reads and validates an answers file.
func Load(path string) (*Answers, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates an answers document. Unknown keys are
// rejected so typos do not silently drop answers.
func Parse(data []byte) (*Answers, error) {
	var a Answers
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&a); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}
