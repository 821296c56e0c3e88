package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/spf13/pflag"
)

// monthFlag parses --month while flags are read, so a bad value fails before
// any work starts. Zero means every month.
type monthFlag time.Month

var _ pflag.Value = (*monthFlag)(nil)

func (f *monthFlag) Set(s string) error {
	m, err := parseMonth(s)
	if err != nil {
		return err
	}
	*f = monthFlag(m)
	return nil
}

func (f *monthFlag) String() string {
	if *f == 0 {
		return ""
	}
	return time.Month(*f).String()
}

func (f *monthFlag) Type() string { return "month" }

func (f *monthFlag) Month() time.Month { return time.Month(*f) }

// parseMonth accepts "", 1-12, or an English month name or its first three
// letters. Empty means no month filter.
func parseMonth(s string) (time.Month, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month must be 1-12, got %d", n)
		}
		return time.Month(n), nil
	}
	for m := time.January; m <= time.December; m++ {
		name := m.String()
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown month %q", s)
}

// parseService matches a service by its full name or, case-insensitively, by
// a unique prefix such as "gst" or "roc".
func parseService(s string) (domain.Service, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	var match domain.Service
	for svc := range domain.ValidServices {
		name := string(svc)
		if strings.EqualFold(name, s) {
			return svc, nil
		}
		if strings.HasPrefix(strings.ToLower(name), strings.ToLower(s)) {
			if match != "" {
				return "", fmt.Errorf("service %q is ambiguous", s)
			}
			match = svc
		}
	}
	if match == "" {
		return "", fmt.Errorf("unknown service %q", s)
	}
	return match, nil
}

// fiscalYearOrCurrent returns fy, or the fiscal year containing now.
func fiscalYearOrCurrent(fy string, now time.Time) string {
	if fy = normalizeFiscalYear(fy); fy != "" {
		return fy
	}
	return domain.CurrentFiscalYear(now).String()
}

// normalizeFiscalYear expands the short form "2025-26" to "2025-2026".
// Anything else is returned trimmed and left for the core to validate.
func normalizeFiscalYear(fy string) string {
	fy = strings.TrimSpace(fy)
	start, end, ok := strings.Cut(fy, "-")
	if !ok || len(start) != 4 || len(end) != 2 {
		return fy
	}
	y, err := strconv.Atoi(start)
	if err != nil {
		return fy
	}
	if short, err := strconv.Atoi(end); err != nil || short != (y+1)%100 {
		return fy
	}
	return fmt.Sprintf("%d-%d", y, y+1)
}
