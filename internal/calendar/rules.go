package calendar

import (
	"time"

	"github.com/alexanderramin/filingdesk/internal/domain"
)

// Anchor selects which calendar year of a fiscal year a fixed rule falls in.
type Anchor int

const (
	StartYear Anchor = iota
	EndYear
)

// Repeat controls how many deadlines a rule expands into.
type Repeat int

const (
	// Once produces a single deadline on Month/Day of the anchored year.
	Once Repeat = iota
	// MonthlyFollowing produces one deadline for each of the twelve fiscal
	// months, due on Day of the month after it. Month and Anchor are ignored.
	MonthlyFollowing
)

// periodToken in Title or Description is replaced with the filed-for month,
// e.g. "April 2025".
const periodToken = "{period}"

// Rule is one row of the statutory deadline table.
type Rule struct {
	Title       string
	Description string
	TaskType    domain.TaskType
	Service     domain.Service
	Priority    domain.Priority
	Repeat      Repeat
	Anchor      Anchor
	Month       time.Month
	Day         int
}

// Rules is the canonical statutory deadline table.
var Rules = []Rule{
	// Income-tax returns
	{
		Title: "ITR Filing (Non-Audit)", TaskType: domain.TaskITRFiling, Service: domain.ServiceIncomeTax,
		Priority: domain.PriorityHigh, Anchor: EndYear, Month: time.July, Day: 31,
		Description: "Income tax return for assessees not liable to tax audit",
	},
	{
		Title: "ITR Filing (Audit)", TaskType: domain.TaskITRFiling, Service: domain.ServiceTaxAudit,
		Priority: domain.PriorityHigh, Anchor: EndYear, Month: time.October, Day: 31,
		Description: "Income tax return for assessees liable to tax audit",
	},
	{
		Title: "ITR Filing (Transfer Pricing)", TaskType: domain.TaskITRFiling, Service: domain.ServiceTransferPricing,
		Priority: domain.PriorityHigh, Anchor: EndYear, Month: time.November, Day: 30,
		Description: "Income tax return for assessees with international or specified domestic transactions",
	},

	// Advance tax installments
	{
		Title: "Advance Tax - 1st Installment (15%)", TaskType: domain.TaskAdvanceTax, Service: domain.ServiceIncomeTax,
		Priority: domain.PriorityHigh, Anchor: StartYear, Month: time.June, Day: 15,
		Description: "Pay at least 15% of estimated tax liability",
	},
	{
		Title: "Advance Tax - 2nd Installment (45%)", TaskType: domain.TaskAdvanceTax, Service: domain.ServiceIncomeTax,
		Priority: domain.PriorityHigh, Anchor: StartYear, Month: time.September, Day: 15,
		Description: "Pay at least 45% of estimated tax liability, cumulative",
	},
	{
		Title: "Advance Tax - 3rd Installment (75%)", TaskType: domain.TaskAdvanceTax, Service: domain.ServiceIncomeTax,
		Priority: domain.PriorityHigh, Anchor: StartYear, Month: time.December, Day: 15,
		Description: "Pay at least 75% of estimated tax liability, cumulative",
	},
	{
		Title: "Advance Tax - 4th Installment (100%)", TaskType: domain.TaskAdvanceTax, Service: domain.ServiceIncomeTax,
		Priority: domain.PriorityHigh, Anchor: EndYear, Month: time.March, Day: 15,
		Description: "Pay the full estimated tax liability",
	},

	// Monthly GST
	{
		Title: "GSTR-1 - " + periodToken, TaskType: domain.TaskGSTReturn, Service: domain.ServiceGST,
		Priority: domain.PriorityMedium, Repeat: MonthlyFollowing, Day: 11,
		Description: "Statement of outward supplies for " + periodToken,
	},
	{
		Title: "IFF - " + periodToken, TaskType: domain.TaskGSTReturn, Service: domain.ServiceGST,
		Priority: domain.PriorityLow, Repeat: MonthlyFollowing, Day: 13,
		Description: "Invoice furnishing facility upload for " + periodToken,
	},
	{
		Title: "GSTR-3B - " + periodToken, TaskType: domain.TaskGSTReturn, Service: domain.ServiceGST,
		Priority: domain.PriorityHigh, Repeat: MonthlyFollowing, Day: 20,
		Description: "Summary return and tax payment for " + periodToken,
	},

	// Annual GST
	{
		Title: "GSTR-9 Annual Return", TaskType: domain.TaskGSTAnnual, Service: domain.ServiceGST,
		Priority: domain.PriorityHigh, Anchor: EndYear, Month: time.December, Day: 31,
		Description: "Annual GST return",
	},
	{
		Title: "GSTR-9C Reconciliation Statement", TaskType: domain.TaskGSTAnnual, Service: domain.ServiceGST,
		Priority: domain.PriorityHigh, Anchor: EndYear, Month: time.December, Day: 31,
		Description: "Reconciliation of annual return with audited financial statements",
	},

	// Monthly TDS deposit
	{
		Title: "TDS Deposit - " + periodToken, TaskType: domain.TaskTDSDeposit, Service: domain.ServiceTDS,
		Priority: domain.PriorityHigh, Repeat: MonthlyFollowing, Day: 7,
		Description: "Deposit tax deducted at source during " + periodToken,
	},

	// Quarterly TDS returns
	{
		Title: "TDS Return Q1 (Apr-Jun)", TaskType: domain.TaskTDSReturn, Service: domain.ServiceTDS,
		Priority: domain.PriorityMedium, Anchor: StartYear, Month: time.July, Day: 31,
		Description: "Quarterly TDS statement, Forms 24Q/26Q",
	},
	{
		Title: "TDS Return Q2 (Jul-Sep)", TaskType: domain.TaskTDSReturn, Service: domain.ServiceTDS,
		Priority: domain.PriorityMedium, Anchor: StartYear, Month: time.October, Day: 31,
		Description: "Quarterly TDS statement, Forms 24Q/26Q",
	},
	{
		Title: "TDS Return Q3 (Oct-Dec)", TaskType: domain.TaskTDSReturn, Service: domain.ServiceTDS,
		Priority: domain.PriorityMedium, Anchor: EndYear, Month: time.January, Day: 31,
		Description: "Quarterly TDS statement, Forms 24Q/26Q",
	},
	{
		Title: "TDS Return Q4 (Jan-Mar)", TaskType: domain.TaskTDSReturn, Service: domain.ServiceTDS,
		Priority: domain.PriorityMedium, Anchor: EndYear, Month: time.May, Day: 31,
		Description: "Quarterly TDS statement, Forms 24Q/26Q",
	},

	// Tax audit
	{
		Title: "Tax Audit Report (Form 3CA/3CB-3CD)", TaskType: domain.TaskTaxAudit, Service: domain.ServiceTaxAudit,
		Priority: domain.PriorityUrgent, Anchor: EndYear, Month: time.September, Day: 30,
		Description: "Tax audit report under section 44AB",
	},

	// Company law
	{
		Title: "AOC-4 Financial Statements", TaskType: domain.TaskROCFiling, Service: domain.ServiceROC,
		Priority: domain.PriorityHigh, Anchor: EndYear, Month: time.October, Day: 30,
		Description: "File financial statements with the Registrar of Companies",
	},
	{
		Title: "MGT-7 Annual Return", TaskType: domain.TaskROCFiling, Service: domain.ServiceROC,
		Priority: domain.PriorityHigh, Anchor: EndYear, Month: time.October, Day: 30,
		Description: "File the company annual return with the Registrar of Companies",
	},
}
