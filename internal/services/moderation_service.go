package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/inkleapp/inkle-backend/internal/dto"
	"github.com/inkleapp/inkle-backend/internal/models"
	"gorm.io/gorm"
)

// ModerationService handles user-filed content reports and the admin
// review queue.
type ModerationService struct {
	db *gorm.DB
}

func NewModerationService(db *gorm.DB) *ModerationService {
	return &ModerationService{db: db}
}

func (s *ModerationService) CreateReport(reporterID uuid.UUID, req *dto.CreateReportRequest) (*models.Report, error) {
	validTypes := map[string]bool{"user": true, "post": true}
	if !validTypes[req.ContentType] {
		return nil, fmt.Errorf("%w: content_type must be user or post", ErrPrecondition)
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, fmt.Errorf("%w: reason is required", ErrPrecondition)
	}

	report := models.Report{
		ID:          uuid.New(),
		ReporterID:  reporterID,
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
		Reason:      req.Reason,
		Status:      "pending",
	}

	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return &report, nil
}

func (s *ModerationService) ListReports(status string, limit, offset int) ([]models.Report, int64, error) {
	var reports []models.Report
	var total int64

	query := s.db.Model(&models.Report{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Count(&total)

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reports).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, total, nil
}

func (s *ModerationService) ActionReport(reportID uuid.UUID, req *dto.ActionReportRequest) error {
	validStatuses := map[string]bool{"reviewed": true, "actioned": true, "dismissed": true}
	if !validStatuses[req.Status] {
		return fmt.Errorf("%w: status must be reviewed, actioned, or dismissed", ErrPrecondition)
	}

	result := s.db.Model(&models.Report{}).
		Where("id = ?", reportID).
		Updates(map[string]interface{}{
			"status":     req.Status,
			"admin_note": req.AdminNote,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update report: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
