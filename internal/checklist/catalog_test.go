package checklist

import (
	"testing"

	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_CoversEveryTaskType(t *testing.T) {
	types := []domain.TaskType{
		domain.TaskITRFiling, domain.TaskAdvanceTax, domain.TaskGSTReturn, domain.TaskGSTAnnual,
		domain.TaskTDSDeposit, domain.TaskTDSReturn, domain.TaskTaxAudit, domain.TaskROCFiling,
	}
	for _, tt := range types {
		items := DefaultCatalog.Items(tt)
		require.NotEmpty(t, items, tt)
		for _, it := range items {
			assert.True(t, domain.ValidDocumentCategories[it.Category], "%s: %s", tt, it.Name)
		}
	}
}

func TestCatalog_ItemsReturnsCopy(t *testing.T) {
	items := DefaultCatalog.Items(domain.TaskITRFiling)
	items[0].Name = "changed"
	assert.Equal(t, "PAN Card", DefaultCatalog[domain.TaskITRFiling][0].Name)

	assert.Nil(t, DefaultCatalog.Items("unknown"))
}

func TestCatalog_Summaries(t *testing.T) {
	sums := DefaultCatalog.Summaries()
	require.Len(t, sums, 8)

	assert.Equal(t, domain.TaskAdvanceTax, sums[0].TaskType)
	for i := 1; i < len(sums); i++ {
		assert.Less(t, string(sums[i-1].TaskType), string(sums[i].TaskType))
	}

	byType := make(map[domain.TaskType]Summary)
	for _, s := range sums {
		byType[s.TaskType] = s
	}
	assert.Equal(t, Summary{TaskType: domain.TaskITRFiling, ItemCount: 8, RequiredCount: 5}, byType[domain.TaskITRFiling])
	assert.Equal(t, Summary{TaskType: domain.TaskROCFiling, ItemCount: 5, RequiredCount: 5}, byType[domain.TaskROCFiling])
	assert.Equal(t, Summary{TaskType: domain.TaskTDSDeposit, ItemCount: 2, RequiredCount: 1}, byType[domain.TaskTDSDeposit])
}

func TestCatalog_CustomCatalogSummaries(t *testing.T) {
	c := Catalog{"custom": {item("Only", domain.CategoryOther, false)}}
	assert.Equal(t, []Summary{{TaskType: "custom", ItemCount: 1, RequiredCount: 0}}, NewMatcher(c, nil).Summaries())
}
