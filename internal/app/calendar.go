package app

import (
	"time"

	"github.com/alexanderramin/filingdesk/internal/domain"
)

type DeadlineQuery struct {
	FiscalYear string
	Month      time.Month
	Service    domain.Service
}

type PublishResult struct {
	FiscalYear string
	Created    int
	Updated    int
	Unchanged  int
}
