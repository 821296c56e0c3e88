package domain

// Service is a compliance service a client subscribes to. Deadlines are tagged
// with the service that makes them applicable.
type Service string

const (
	ServiceIncomeTax       Service = "Income Tax Filing"
	ServiceTaxAudit        Service = "Tax Audit"
	ServiceTransferPricing Service = "Transfer Pricing"
	ServiceGST             Service = "GST Filing"
	ServiceTDS             Service = "TDS Filing"
	ServiceROC             Service = "ROC Compliance"
)

// ValidServices is the canonical set of accepted service names.
var ValidServices = map[Service]bool{
	ServiceIncomeTax:       true,
	ServiceTaxAudit:        true,
	ServiceTransferPricing: true,
	ServiceGST:             true,
	ServiceTDS:             true,
	ServiceROC:             true,
}

type TaskType string

const (
	TaskITRFiling  TaskType = "itr_filing"
	TaskAdvanceTax TaskType = "advance_tax"
	TaskGSTReturn  TaskType = "gst_return"
	TaskGSTAnnual  TaskType = "gst_annual"
	TaskTDSDeposit TaskType = "tds_deposit"
	TaskTDSReturn  TaskType = "tds_return"
	TaskTaxAudit   TaskType = "tax_audit"
	TaskROCFiling  TaskType = "roc_filing"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskReview     TaskStatus = "review"
	TaskCompleted  TaskStatus = "completed"
	TaskOverdue    TaskStatus = "overdue"
)

// TaskSource records whether a task came from the deadline synchronizer or
// was entered by hand.
type TaskSource string

const (
	SourceSync   TaskSource = "sync"
	SourceManual TaskSource = "manual"
)

type Role string

const (
	RolePartner  Role = "partner"
	RoleSeniorCA Role = "senior_ca"
	RoleJuniorCA Role = "junior_ca"
	RoleArticle  Role = "article"
)

// ManagerRoles are the roles that receive every deadline alert.
var ManagerRoles = []Role{RolePartner, RoleSeniorCA}

// ValidRoles is the canonical set of accepted role strings.
var ValidRoles = map[Role]bool{
	RolePartner:  true,
	RoleSeniorCA: true,
	RoleJuniorCA: true,
	RoleArticle:  true,
}

type DocumentCategory string

const (
	CategoryIdentity           DocumentCategory = "identity"
	CategoryIncome             DocumentCategory = "income"
	CategoryBank               DocumentCategory = "bank"
	CategoryInvestment         DocumentCategory = "investment"
	CategoryGST                DocumentCategory = "gst"
	CategoryTDS                DocumentCategory = "tds"
	CategoryFinancialStatement DocumentCategory = "financial_statement"
	CategoryCorporate          DocumentCategory = "corporate"
	CategoryOther              DocumentCategory = "other"
)

// ValidDocumentCategories is the canonical set of accepted document categories.
var ValidDocumentCategories = map[DocumentCategory]bool{
	CategoryIdentity:           true,
	CategoryIncome:             true,
	CategoryBank:               true,
	CategoryInvestment:         true,
	CategoryGST:                true,
	CategoryTDS:                true,
	CategoryFinancialStatement: true,
	CategoryCorporate:          true,
	CategoryOther:              true,
}

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// NotificationTaskDue is the notification type emitted by deadline alerts.
const NotificationTaskDue = "task:due"
