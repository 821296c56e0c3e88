package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/filingdesk/internal/domain"
	"github.com/alexanderramin/filingdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRepo_CreateAndListByClient(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	clients := NewSQLiteClientRepo(database)
	repo := NewSQLiteDocumentRepo(database)

	a := testutil.NewTestClient("A")
	b := testutil.NewTestClient("B")
	require.NoError(t, clients.Create(ctx, a))
	require.NoError(t, clients.Create(ctx, b))

	base := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	second := testutil.NewTestDocument(a.ID, "Bank statement.pdf", domain.CategoryBank, testutil.WithUploadedAt(base.Add(time.Hour)))
	first := testutil.NewTestDocument(a.ID, "PAN.pdf", domain.CategoryIdentity,
		testutil.WithUploadedAt(base), testutil.WithVerification(domain.VerificationVerified))
	otherClient := testutil.NewTestDocument(b.ID, "GST.pdf", domain.CategoryGST)
	for _, d := range []*domain.Document{second, first, otherClient} {
		require.NoError(t, repo.Create(ctx, d))
	}

	docs, err := repo.ListByClient(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, first.ID, docs[0].ID)
	assert.Equal(t, domain.VerificationVerified, docs[0].VerificationStatus)
	assert.Equal(t, domain.CategoryIdentity, docs[0].Category)
	assert.Equal(t, base, docs[0].UploadedAt)
	assert.Equal(t, second.ID, docs[1].ID)

	none, err := repo.ListByClient(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDocumentRepo_RejectsUnknownClient(t *testing.T) {
	repo := NewSQLiteDocumentRepo(testutil.NewTestDB(t))

	err := repo.Create(context.Background(), testutil.NewTestDocument("ghost", "x.pdf", domain.CategoryOther))
	assert.Error(t, err)
}
