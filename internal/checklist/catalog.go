// Package checklist holds the required-document catalog per filing type and
// reconciles a client's uploaded documents against it.
package checklist

import (
	"sort"

	"github.com/alexanderramin/filingdesk/internal/domain"
)

// Catalog maps a task type to the documents its filing needs.
type Catalog map[domain.TaskType][]domain.ChecklistItem

func item(name string, category domain.DocumentCategory, required bool) domain.ChecklistItem {
	return domain.ChecklistItem{Name: name, Category: category, Required: required}
}

// DefaultCatalog is the firm's standard document checklist.
var DefaultCatalog = Catalog{
	domain.TaskITRFiling: {
		item("PAN Card", domain.CategoryIdentity, true),
		item("Aadhaar Card", domain.CategoryIdentity, true),
		item("Form 16 (Salary Certificate)", domain.CategoryIncome, true),
		item("Form 26AS", domain.CategoryTDS, true),
		item("Bank Statements", domain.CategoryBank, true),
		item("Investment Proofs (80C/80D)", domain.CategoryInvestment, false),
		item("Capital Gains Statement", domain.CategoryIncome, false),
		item("Rent Receipts", domain.CategoryOther, false),
	},
	domain.TaskAdvanceTax: {
		item("Income Estimate", domain.CategoryIncome, true),
		item("Previous Year ITR", domain.CategoryIncome, true),
		item("Form 26AS", domain.CategoryTDS, false),
	},
	domain.TaskGSTReturn: {
		item("Sales Register", domain.CategoryGST, true),
		item("Purchase Register", domain.CategoryGST, true),
		item("GSTR-2B Statement", domain.CategoryGST, true),
		item("E-way Bills", domain.CategoryGST, false),
	},
	domain.TaskGSTAnnual: {
		item("GSTR-1 Returns (All Months)", domain.CategoryGST, true),
		item("GSTR-3B Returns (All Months)", domain.CategoryGST, true),
		item("Audited Financial Statements", domain.CategoryFinancialStatement, true),
		item("Input Tax Credit Reconciliation", domain.CategoryGST, true),
	},
	domain.TaskTDSDeposit: {
		item("TDS Computation Sheet", domain.CategoryTDS, true),
		item("Challan 281", domain.CategoryTDS, false),
	},
	domain.TaskTDSReturn: {
		item("TDS Challans", domain.CategoryTDS, true),
		item("Deductee Details", domain.CategoryTDS, true),
		item("Form 16A Issued", domain.CategoryTDS, false),
	},
	domain.TaskTaxAudit: {
		item("Audited Financial Statements", domain.CategoryFinancialStatement, true),
		item("Trial Balance", domain.CategoryFinancialStatement, true),
		item("Fixed Asset Register", domain.CategoryFinancialStatement, true),
		item("Stock Register", domain.CategoryOther, false),
		item("Loan Confirmations", domain.CategoryBank, false),
	},
	domain.TaskROCFiling: {
		item("Board Resolution", domain.CategoryCorporate, true),
		item("Audited Financial Statements", domain.CategoryFinancialStatement, true),
		item("Directors' Report", domain.CategoryCorporate, true),
		item("Shareholding Pattern", domain.CategoryCorporate, true),
		item("Auditor's Report", domain.CategoryFinancialStatement, true),
	},
}

// Items returns a copy of the checklist for taskType, or nil when the type is
// not in the catalog.
func (c Catalog) Items(taskType domain.TaskType) []domain.ChecklistItem {
	items, ok := c[taskType]
	if !ok {
		return nil
	}
	out := make([]domain.ChecklistItem, len(items))
	copy(out, items)
	return out
}

// Summary is one catalog listing row.
type Summary struct {
	TaskType      domain.TaskType
	ItemCount     int
	RequiredCount int
}

// Summaries lists every task type in the catalog, ordered by task type.
func (c Catalog) Summaries() []Summary {
	out := make([]Summary, 0, len(c))
	for tt, items := range c {
		s := Summary{TaskType: tt, ItemCount: len(items)}
		for _, it := range items {
			if it.Required {
				s.RequiredCount++
			}
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TaskType < out[j].TaskType })
	return out
}
