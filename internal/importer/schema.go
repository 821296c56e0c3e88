package importer

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RosterSchema is the top-level YAML structure of a roster file.
type RosterSchema struct {
	Users   []UserImport   `yaml:"users"`
	Clients []ClientImport `yaml:"clients"`
}

// UserImport defines a staff member.
type UserImport struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email,omitempty"`
	Role  string `yaml:"role"`
}

// ClientImport defines a client, the services it has signed up for, and the
// documents already collected from it.
type ClientImport struct {
	Name      string           `yaml:"name"`
	PAN       string           `yaml:"pan,omitempty"`
	Services  []string         `yaml:"services"`
	Documents []DocumentImport `yaml:"documents,omitempty"`
}

type DocumentImport struct {
	Name       string  `yaml:"name"`
	Category   string  `yaml:"category"`
	Status     string  `yaml:"status,omitempty"`
	UploadedAt *string `yaml:"uploaded_at,omitempty"`
}

// LoadRoster reads and parses a roster YAML file.
func LoadRoster(path string) (*RosterSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRoster(data)
}

// ParseRoster decodes roster YAML. Unknown keys are rejected so typos in a
// hand-written file do not pass silently.
func ParseRoster(data []byte) (*RosterSchema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var schema RosterSchema
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing roster file: %w", err)
	}
	return &schema, nil
}
