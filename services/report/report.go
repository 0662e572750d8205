package report

import (
	"context"

	reportRepo "locallink/database/repository/report"
	serviceRepo "locallink/database/repository/service"
	"locallink/models"
	"locallink/services/notification"
	"locallink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReportInput carries a new complaint.
type ReportInput struct {
	ReportedServiceID string `json:"reportedServiceId"`
	ReportedUserID    string `json:"reportedUserId"`
	Reason            string `json:"reason" binding:"required"`
	Details           string `json:"details"`
}

// ReportService files and resolves user reports.
type ReportService interface {
	Create(ctx context.Context, principal models.Principal, input ReportInput) (*models.Report, error)
	MyReports(ctx context.Context, principal models.Principal) ([]models.Report, error)
	Get(ctx context.Context, principal models.Principal, id string) (*models.Report, error)
	ListByStatus(ctx context.Context, status string) ([]models.Report, error)
	Resolve(ctx context.Context, principal models.Principal, id, adminResponse string) (*models.Report, error)
}

// DefaultReportService is the production implementation.
type DefaultReportService struct {
	Reports  reportRepo.ReportRepository
	Services serviceRepo.ServiceRepository
	Notifier notification.NotificationService
}

// Create files a report. A reporter may file at most one report per service.
func (s *DefaultReportService) Create(ctx context.Context, principal models.Principal, input ReportInput) (*models.Report, error) {
	if input.Reason == "" {
		return nil, utils.NewValidationError("a reason is required")
	}
	if input.ReportedServiceID == "" && input.ReportedUserID == "" {
		return nil, utils.NewValidationError("a reported service or user is required")
	}

	if input.ReportedServiceID != "" {
		svc, err := s.Services.GetByID(input.ReportedServiceID)
		if err != nil {
			return nil, err
		}
		if svc == nil {
			return nil, utils.NewNotFoundError("reported service not found")
		}
		exists, err := s.Reports.ExistsForReporterService(principal.ID, input.ReportedServiceID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, utils.NewConflictError("you have already reported this service")
		}
	}

	rep := &models.Report{
		ID:                uuid.New().String(),
		ReporterID:        principal.ID,
		ReportedServiceID: input.ReportedServiceID,
		ReportedUserID:    input.ReportedUserID,
		Reason:            input.Reason,
		Details:           input.Details,
		Status:            models.ReportPendingReview,
	}
	if err := s.Reports.Create(rep); err != nil {
		return nil, err
	}
	return rep, nil
}

// MyReports lists the caller's own reports.
func (s *DefaultReportService) MyReports(ctx context.Context, principal models.Principal) ([]models.Report, error) {
	return s.Reports.ListByReporter(principal.ID)
}

// Get returns a report visible to its reporter or an admin.
func (s *DefaultReportService) Get(ctx context.Context, principal models.Principal, id string) (*models.Report, error) {
	rep, err := s.Reports.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, utils.NewNotFoundError("report not found")
	}
	if rep.ReporterID != principal.ID && !principal.IsAdmin() {
		return nil, utils.NewForbiddenError("not the reporter of this report")
	}
	return rep, nil
}

// ListByStatus lists reports for the admin screens; empty status means all.
func (s *DefaultReportService) ListByStatus(ctx context.Context, status string) ([]models.Report, error) {
	return s.Reports.ListByStatus(status)
}

// Resolve transitions a pending report to resolved and notifies the
// reporter. Resolution is admin-only and conditional on the report still
// being pending.
func (s *DefaultReportService) Resolve(ctx context.Context, principal models.Principal, id, adminResponse string) (*models.Report, error) {
	if !principal.IsAdmin() {
		return nil, utils.NewForbiddenError("only admins can resolve reports")
	}

	rep, err := s.Reports.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, utils.NewNotFoundError("report not found")
	}

	matched, err := s.Reports.Resolve(id, adminResponse)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, utils.NewConflictError("report is no longer pending")
	}
	rep.Status = models.ReportResolved
	rep.AdminResponse = adminResponse

	if s.Notifier != nil {
		err := s.Notifier.Emit(ctx, models.Notification{
			RecipientID:    rep.ReporterID,
			Type:           models.NotificationReportResolved,
			Title:          "Your report has been resolved",
			Message:        adminResponse,
			RelatedService: rep.ReportedServiceID,
		})
		if err != nil {
			utils.GetLogger().Warn("report resolution notification failed",
				zap.String("reportId", rep.ID), zap.Error(err))
		}
	}
	return rep, nil
}
