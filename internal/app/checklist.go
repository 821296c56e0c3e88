package app

import (
	"github.com/alexanderramin/filingdesk/internal/checklist"
	"github.com/alexanderramin/filingdesk/internal/domain"
)

type ChecklistReport struct {
	Client *domain.Client
	checklist.Result
}
