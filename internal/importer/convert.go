package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/google/uuid"
)

// Roster holds the domain objects produced from a RosterSchema.
type Roster struct {
	Users     []*domain.User
	Clients   []*domain.Client
	Documents []*domain.Document
}

// Convert transforms a validated RosterSchema into domain objects ready for
// persistence. Call ValidateRoster first; Convert assumes the schema is valid.
func Convert(schema *RosterSchema, now time.Time) (*Roster, error) {
	now = now.UTC().Truncate(time.Second)
	out := &Roster{}

	for _, u := range schema.Users {
		out.Users = append(out.Users, &domain.User{
			ID:        uuid.New().String(),
			Name:      strings.TrimSpace(u.Name),
			Email:     strings.ToLower(u.Email),
			Role:      domain.Role(u.Role),
			CreatedAt: now,
		})
	}

	for _, c := range schema.Clients {
		client := &domain.Client{
			ID:        uuid.New().String(),
			Name:      strings.TrimSpace(c.Name),
			PAN:       strings.ToUpper(c.PAN),
			CreatedAt: now,
		}
		for _, svc := range c.Services {
			client.Services = append(client.Services, domain.Service(svc))
		}
		out.Clients = append(out.Clients, client)

		for _, d := range c.Documents {
			uploaded := now
			if d.UploadedAt != nil {
				t, err := time.Parse("2006-01-02", *d.UploadedAt)
				if err != nil {
					return nil, fmt.Errorf("parsing uploaded_at for %q: %w", d.Name, err)
				}
				uploaded = t
			}
			status := domain.VerificationStatus(domain.CoalesceStr(d.Status, string(domain.VerificationPending)))
			out.Documents = append(out.Documents, &domain.Document{
				ID:                 uuid.New().String(),
				ClientID:           client.ID,
				Name:               d.Name,
				Category:           domain.DocumentCategory(d.Category),
				VerificationStatus: status,
				UploadedAt:         uploaded,
			})
		}
	}

	return out, nil
}
