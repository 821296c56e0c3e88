package checklist

import (
	"strings"

	"github.com/alexanderramin/filingdesk/internal/domain"
)

// Strategy decides whether an uploaded document satisfies a checklist item.
type Strategy interface {
	Matches(item domain.ChecklistItem, doc domain.Document) bool
}

// prefixLen is how much of an item name the category heuristic compares.
const prefixLen = 8

// FuzzyStrategy matches on name fragments. It is a best-effort heuristic: a
// document named "Form 26AS" also satisfies "Form 16 (Salary Certificate)"
// because both share the first word. Such false positives are accepted.
//
// A document matches when its name contains the item's first word, or when
// the categories agree and its name contains the first eight characters of
// the item name with any parenthetical suffix removed. Both comparisons
// ignore case.
type FuzzyStrategy struct{}

func (FuzzyStrategy) Matches(item domain.ChecklistItem, doc domain.Document) bool {
	docName := strings.ToLower(doc.Name)

	if fields := strings.Fields(item.Name); len(fields) > 0 {
		if strings.Contains(docName, strings.ToLower(fields[0])) {
			return true
		}
	}

	if doc.Category != item.Category {
		return false
	}
	prefix := strings.ToLower(namePrefix(item.Name))
	return prefix != "" && strings.Contains(docName, prefix)
}

// namePrefix strips a parenthetical suffix and returns at most prefixLen
// characters of what is left.
func namePrefix(name string) string {
	if i := strings.Index(name, "("); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSpace(name)
	runes := []rune(name)
	if len(runes) > prefixLen {
		runes = runes[:prefixLen]
	}
	return string(runes)
}

// DocumentRef identifies the document that satisfied an item.
type DocumentRef struct {
	ID                 string
	Name               string
	VerificationStatus domain.VerificationStatus
}

type ItemStatus struct {
	Item     domain.ChecklistItem
	Uploaded bool
	Document *DocumentRef
}

// Result is a checklist reconciled against uploaded documents.
type Result struct {
	TaskType  domain.TaskType
	Items     []ItemStatus
	Total     int
	Collected int
}

// RequiredMissing lists required items with no matching document.
func (r Result) RequiredMissing() []domain.ChecklistItem {
	var out []domain.ChecklistItem
	for _, s := range r.Items {
		if s.Item.Required && !s.Uploaded {
			out = append(out, s.Item)
		}
	}
	return out
}

// Percent is the share of collected items, 0 for an empty checklist.
func (r Result) Percent() int {
	if r.Total == 0 {
		return 0
	}
	return r.Collected * 100 / r.Total
}

type Matcher struct {
	catalog  Catalog
	strategy Strategy
}

func NewMatcher(catalog Catalog, strategy Strategy) *Matcher {
	if strategy == nil {
		strategy = FuzzyStrategy{}
	}
	return &Matcher{catalog: catalog, strategy: strategy}
}

// DefaultMatcher uses DefaultCatalog with FuzzyStrategy.
func DefaultMatcher() *Matcher {
	return NewMatcher(DefaultCatalog, FuzzyStrategy{})
}

// Match reconciles docs against the checklist for taskType. Each item takes
// the first matching document in docs order. An unknown task type yields an
// empty result.
func (m *Matcher) Match(taskType domain.TaskType, docs []domain.Document) Result {
	items := m.catalog.Items(taskType)
	res := Result{TaskType: taskType, Items: make([]ItemStatus, 0, len(items)), Total: len(items)}
	for _, it := range items {
		status := ItemStatus{Item: it}
		for _, d := range docs {
			if m.strategy.Matches(it, d) {
				status.Uploaded = true
				status.Document = &DocumentRef{ID: d.ID, Name: d.Name, VerificationStatus: d.VerificationStatus}
				break
			}
		}
		if status.Uploaded {
			res.Collected++
		}
		res.Items = append(res.Items, status)
	}
	return res
}

// Summaries lists the matcher's catalog.
func (m *Matcher) Summaries() []Summary {
	return m.catalog.Summaries()
}
