package announcement

import (
	"context"
	"log/slog"

	"github.com/rudratic/hr-backend-go/internal/domain/announcement"
	"github.com/rudratic/hr-backend-go/internal/domain/notification"
	"github.com/rudratic/hr-backend-go/internal/domain/user"
)

type AnnouncementServiceImpl struct {
	announcement.Repository
	userRepo        user.UserRepository
	notificationSvc notification.Service
}

func NewAnnouncementService(
	repository announcement.Repository,
	userRepo user.UserRepository,
	notificationSvc notification.Service,
) announcement.Service {
	return &AnnouncementServiceImpl{
		Repository:      repository,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
	}
}

// Create implements announcement.Service. Every active user gets an INFO
// notification; notification failures never fail the announcement.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, req announcement.CreateRequest) (announcement.Response, error) {
	if err := req.Validate(); err != nil {
		return announcement.Response{}, err
	}

	created, err := s.Repository.Create(ctx, announcement.Announcement{
		Title:     req.Title,
		Content:   req.Content,
		Type:      req.Type,
		Priority:  req.Priority,
		EventDate: req.ParsedEventDate,
		AuthorID:  req.AuthorID,
	})
	if err != nil {
		return announcement.Response{}, err
	}

	s.notifyActiveUsers(ctx, created)

	return announcement.ToResponse(created), nil
}

func (s *AnnouncementServiceImpl) notifyActiveUsers(ctx context.Context, a announcement.Announcement) {
	if s.notificationSvc == nil {
		return
	}

	active, err := s.userRepo.ListByStatus(ctx, user.StatusActive)
	if err != nil {
		slog.Error("Failed to list users for announcement fan-out", "announcement_id", a.ID, "error", err)
		return
	}

	reqs := make([]notification.CreateRequest, 0, len(active))
	for _, u := range active {
		reqs = append(reqs, notification.CreateRequest{
			UserID:  u.ID,
			Title:   "New Announcement: " + a.Title,
			Message: a.Content,
			Type:    notification.TypeInfo,
			ActionData: map[string]interface{}{
				"announcement_id": a.ID,
			},
		})
	}

	if err := s.notificationSvc.QueueBulk(ctx, reqs); err != nil {
		slog.Error("Failed to queue announcement notifications", "announcement_id", a.ID, "error", err)
	}
}

// List implements announcement.Service.
func (s *AnnouncementServiceImpl) List(ctx context.Context) ([]announcement.Response, error) {
	all, err := s.Repository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]announcement.Response, 0, len(all))
	for _, a := range all {
		responses = append(responses, announcement.ToResponse(a))
	}

	return responses, nil
}
