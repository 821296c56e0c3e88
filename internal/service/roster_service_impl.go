package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/filingdesk/internal/app"
	"github.com/alexanderramin/filingdesk/internal/db"
	"github.com/alexanderramin/filingdesk/internal/importer"
	"github.com/alexanderramin/filingdesk/internal/repository"
)

type rosterService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewRosterService imports roster files. Each import runs in one transaction.
func NewRosterService(uow db.UnitOfWork, observers ...UseCaseObserver) RosterService {
	return &rosterService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *rosterService) ImportFile(ctx context.Context, path string) (*app.RosterImportResult, error) {
	schema, err := importer.LoadRoster(path)
	if err != nil {
		return nil, fmt.Errorf("loading roster file: %w", err)
	}
	return s.Import(ctx, schema)
}

func (s *rosterService) Import(ctx context.Context, schema *importer.RosterSchema) (result *app.RosterImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "import-roster", startedAt, fields, &err) }()

	if errs := importer.ValidateRoster(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	var roster *importer.Roster
	roster, err = importer.Convert(schema, startedAt)
	if err != nil {
		return nil, fmt.Errorf("converting roster: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		users := repository.NewSQLiteUserRepo(tx)
		clients := repository.NewSQLiteClientRepo(tx)
		documents := repository.NewSQLiteDocumentRepo(tx)

		for _, u := range roster.Users {
			if err := users.Create(ctx, u); err != nil {
				return fmt.Errorf("creating user %q: %w", u.Name, err)
			}
		}
		for _, c := range roster.Clients {
			if err := clients.Create(ctx, c); err != nil {
				return fmt.Errorf("creating client %q: %w", c.Name, err)
			}
		}
		for _, d := range roster.Documents {
			if err := documents.Create(ctx, d); err != nil {
				return fmt.Errorf("creating document %q: %w", d.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result = &app.RosterImportResult{
		UserCount:     len(roster.Users),
		ClientCount:   len(roster.Clients),
		DocumentCount: len(roster.Documents),
	}
	fields["users"] = result.UserCount
	fields["clients"] = result.ClientCount
	fields["documents"] = result.DocumentCount
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("roster validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
