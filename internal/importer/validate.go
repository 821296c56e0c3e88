package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/filingdesk/internal/domain"
)

var validVerificationStatuses = map[string]bool{"pending": true, "verified": true, "rejected": true}

// ValidateRoster checks the roster for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateRoster(schema *RosterSchema) []error {
	var errs []error

	if len(schema.Users) == 0 && len(schema.Clients) == 0 {
		errs = append(errs, fmt.Errorf("roster has no users and no clients"))
	}

	emails := make(map[string]bool)
	for i, u := range schema.Users {
		errs = append(errs, validateUser(fmt.Sprintf("users[%d]", i), u, emails)...)
	}

	names := make(map[string]bool)
	pans := make(map[string]bool)
	for i, c := range schema.Clients {
		errs = append(errs, validateClient(fmt.Sprintf("clients[%d]", i), c, names, pans)...)
	}

	return errs
}

func validateUser(path string, u UserImport, emails map[string]bool) []error {
	var errs []error
	if strings.TrimSpace(u.Name) == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", path))
	}
	if u.Role == "" {
		errs = append(errs, fmt.Errorf("%s.role is required", path))
	} else if !domain.ValidRoles[domain.Role(u.Role)] {
		errs = append(errs, fmt.Errorf("%s.role: invalid value %q", path, u.Role))
	}
	if u.Email != "" {
		key := strings.ToLower(u.Email)
		if emails[key] {
			errs = append(errs, fmt.Errorf("%s.email: duplicate %q", path, u.Email))
		}
		emails[key] = true
	}
	return errs
}

func validateClient(path string, c ClientImport, names, pans map[string]bool) []error {
	var errs []error
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", path))
	} else {
		if names[c.Name] {
			errs = append(errs, fmt.Errorf("%s.name: duplicate %q", path, c.Name))
		}
		names[c.Name] = true
	}
	if c.PAN != "" {
		key := strings.ToUpper(c.PAN)
		if pans[key] {
			errs = append(errs, fmt.Errorf("%s.pan: duplicate %q", path, c.PAN))
		}
		pans[key] = true
	}

	seen := make(map[string]bool)
	for j, svc := range c.Services {
		if !domain.ValidServices[domain.Service(svc)] {
			errs = append(errs, fmt.Errorf("%s.services[%d]: invalid value %q", path, j, svc))
			continue
		}
		if seen[svc] {
			errs = append(errs, fmt.Errorf("%s.services[%d]: duplicate %q", path, j, svc))
		}
		seen[svc] = true
	}

	for j, d := range c.Documents {
		dpath := fmt.Sprintf("%s.documents[%d]", path, j)
		if strings.TrimSpace(d.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", dpath))
		}
		if !domain.ValidDocumentCategories[domain.DocumentCategory(d.Category)] {
			errs = append(errs, fmt.Errorf("%s.category: invalid value %q", dpath, d.Category))
		}
		if d.Status != "" && !validVerificationStatuses[d.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", dpath, d.Status))
		}
		if d.UploadedAt != nil {
			if _, err := time.Parse("2006-01-02", *d.UploadedAt); err != nil {
				errs = append(errs, fmt.Errorf("%s.uploaded_at: invalid date format %q (expected YYYY-MM-DD)", dpath, *d.UploadedAt))
			}
		}
	}
	return errs
}
