package services

import (
	"context"
	"testing"
	"time"

	"portalchat/internal/models"
	"portalchat/internal/repositories"
	"portalchat/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileRewritesLegacyParticipantIDs(t *testing.T) {
	db := newTestDB(t)
	conversationRepo := repositories.NewConversationRepository(db)
	resolver := NewIdentityResolver(repositories.NewEmployeeRepository(db), nil, 0)
	service := NewReconcileService(conversationRepo, resolver)
	seedEmployee(t, db, &models.Employee{EmployeeCode: "09876543", Phone: "21612345678", FirstName: "Amine", LastName: "Trabelsi"})

	// A legacy row that addressed the employee by phone number.
	legacy := &models.Conversation{
		ParticipantA:       "admin-1",
		ParticipantB:       "21612345678",
		PairKey:            utils.PairKey("admin-1", "21612345678"),
		LastMessageContent: "old scheme",
		LastMessageAt:      time.Now(),
	}
	require.NoError(t, db.Create(legacy).Error)

	report, err := service.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Scanned)
	assert.Equal(t, 1, report.Rewritten)
	assert.Equal(t, 0, report.Merged)

	canonical, errs := conversationRepo.FindByPair("admin-1", "09876543")
	require.Empty(t, errs)
	assert.Equal(t, "old scheme", canonical.LastMessageContent)
	assert.True(t, canonical.HasParticipant("09876543"))
	assert.False(t, canonical.HasParticipant("21612345678"))
}

func TestReconcileMergesDuplicatePairs(t *testing.T) {
	db := newTestDB(t)
	conversationRepo := repositories.NewConversationRepository(db)
	resolver := NewIdentityResolver(repositories.NewEmployeeRepository(db), nil, 0)
	service := NewReconcileService(conversationRepo, resolver)
	seedEmployee(t, db, &models.Employee{EmployeeCode: "09876543", StorageKey: hexKey, FirstName: "Amine", LastName: "Trabelsi"})

	base := time.Now()

	// Same pair written under two identifier schemes across revisions.
	older := &models.Conversation{
		ParticipantA:       "admin-1",
		ParticipantB:       hexKey,
		PairKey:            utils.PairKey("admin-1", hexKey),
		LastMessageContent: "from storage-key era",
		LastMessageAt:      base,
		EmployeeSnapshot:   &models.EmployeeSnapshot{EmployeeCode: "09876543", FirstName: "Amine", LastName: "Trabelsi"},
	}
	older.CreatedAt = base.Add(-2 * time.Hour)
	require.NoError(t, db.Create(older).Error)

	newer := &models.Conversation{
		ParticipantA:       "09876543",
		ParticipantB:       "admin-1",
		PairKey:            utils.PairKey("09876543", "admin-1"),
		LastMessageContent: "from business-code era",
		LastMessageAt:      base.Add(time.Hour),
	}
	newer.CreatedAt = base.Add(-time.Hour)
	require.NoError(t, db.Create(newer).Error)

	report, err := service.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Scanned)
	assert.Equal(t, 1, report.Merged)

	count, err := conversationRepo.CountConversations()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	merged, errs := conversationRepo.FindByPair("admin-1", "09876543")
	require.Empty(t, errs)
	// Oldest row survives, newest last message wins, snapshot kept.
	assert.Equal(t, older.ID, merged.ID)
	assert.Equal(t, "from business-code era", merged.LastMessageContent)
	require.NotNil(t, merged.EmployeeSnapshot)
	assert.Equal(t, "Amine", merged.EmployeeSnapshot.FirstName)
}

func TestReconcileLeavesCanonicalRowsAlone(t *testing.T) {
	db := newTestDB(t)
	conversationRepo := repositories.NewConversationRepository(db)
	resolver := NewIdentityResolver(repositories.NewEmployeeRepository(db), nil, 0)
	service := NewReconcileService(conversationRepo, resolver)
	seedEmployee(t, db, &models.Employee{EmployeeCode: "09876543", FirstName: "Amine", LastName: "Trabelsi"})

	clean := &models.Conversation{
		ParticipantA:       "admin-1",
		ParticipantB:       "09876543",
		PairKey:            utils.PairKey("admin-1", "09876543"),
		LastMessageContent: "already canonical",
		LastMessageAt:      time.Now(),
	}
	require.NoError(t, db.Create(clean).Error)

	report, err := service.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Scanned)
	assert.Equal(t, 0, report.Rewritten)
	assert.Equal(t, 0, report.Merged)
}
