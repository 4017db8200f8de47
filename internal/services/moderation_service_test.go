package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/inkleapp/inkle-backend/internal/dto"
	"github.com/inkleapp/inkle-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReport(t *testing.T) {
	db := setupTestDB(t)
	moderation := NewModerationService(db)
	alice := createTestUser(t, db, "alice", models.RoleUser)

	report, err := moderation.CreateReport(alice.ID, &dto.CreateReportRequest{
		ContentType: "post",
		ContentID:   uuid.NewString(),
		Reason:      "spam",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", report.Status)
	assert.Equal(t, alice.ID, report.ReporterID)
}

func TestCreateReportValidation(t *testing.T) {
	db := setupTestDB(t)
	moderation := NewModerationService(db)
	alice := createTestUser(t, db, "alice", models.RoleUser)

	_, err := moderation.CreateReport(alice.ID, &dto.CreateReportRequest{
		ContentType: "comment",
		ContentID:   uuid.NewString(),
		Reason:      "spam",
	})
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = moderation.CreateReport(alice.ID, &dto.CreateReportRequest{
		ContentType: "post",
		ContentID:   uuid.NewString(),
		Reason:      "  ",
	})
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestListReportsByStatus(t *testing.T) {
	db := setupTestDB(t)
	moderation := NewModerationService(db)
	alice := createTestUser(t, db, "alice", models.RoleUser)

	first, err := moderation.CreateReport(alice.ID, &dto.CreateReportRequest{
		ContentType: "post", ContentID: uuid.NewString(), Reason: "spam",
	})
	require.NoError(t, err)
	_, err = moderation.CreateReport(alice.ID, &dto.CreateReportRequest{
		ContentType: "user", ContentID: uuid.NewString(), Reason: "abuse",
	})
	require.NoError(t, err)

	require.NoError(t, moderation.ActionReport(first.ID, &dto.ActionReportRequest{Status: "dismissed"}))

	pending, total, err := moderation.ListReports("pending", 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, pending, 1)
	assert.Equal(t, "abuse", pending[0].Reason)

	all, total, err := moderation.ListReports("", 50, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)
}

func TestActionReport(t *testing.T) {
	db := setupTestDB(t)
	moderation := NewModerationService(db)
	alice := createTestUser(t, db, "alice", models.RoleUser)

	report, err := moderation.CreateReport(alice.ID, &dto.CreateReportRequest{
		ContentType: "post", ContentID: uuid.NewString(), Reason: "spam",
	})
	require.NoError(t, err)

	require.NoError(t, moderation.ActionReport(report.ID, &dto.ActionReportRequest{
		Status:    "actioned",
		AdminNote: "post removed",
	}))

	var stored models.Report
	require.NoError(t, db.First(&stored, "id = ?", report.ID).Error)
	assert.Equal(t, "actioned", stored.Status)
	assert.Equal(t, "post removed", stored.AdminNote)

	assert.ErrorIs(t, moderation.ActionReport(report.ID, &dto.ActionReportRequest{Status: "bogus"}), ErrPrecondition)
	assert.ErrorIs(t, moderation.ActionReport(uuid.New(), &dto.ActionReportRequest{Status: "dismissed"}), ErrNotFound)
}
