package kudos

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rudratic/hr-backend-go/internal/domain/kudos"
	"github.com/rudratic/hr-backend-go/internal/domain/notification"
	"github.com/rudratic/hr-backend-go/internal/domain/user"
)

type KudosServiceImpl struct {
	kudos.Repository
	userRepo        user.UserRepository
	notificationSvc notification.Service
}

func NewKudosService(
	repository kudos.Repository,
	userRepo user.UserRepository,
	notificationSvc notification.Service,
) kudos.Service {
	return &KudosServiceImpl{
		Repository:      repository,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
	}
}

// Create implements kudos.Service. Self-kudos are rejected and the
// recipient must be a real account.
func (s *KudosServiceImpl) Create(ctx context.Context, req kudos.CreateRequest) (kudos.Response, error) {
	if err := req.Validate(); err != nil {
		return kudos.Response{}, err
	}

	if req.FromUserID == req.ToUserID {
		return kudos.Response{}, kudos.ErrSelfKudos
	}

	sender, err := s.userRepo.GetByID(ctx, req.FromUserID)
	if err != nil {
		return kudos.Response{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.ToUserID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return kudos.Response{}, kudos.ErrRecipientNotFound
		}
		return kudos.Response{}, err
	}

	created, err := s.Repository.Create(ctx, kudos.Kudos{
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		Category:   req.Category,
		Message:    req.Message,
	})
	if err != nil {
		return kudos.Response{}, err
	}

	if s.notificationSvc != nil {
		err := s.notificationSvc.Queue(ctx, notification.CreateRequest{
			UserID:  req.ToUserID,
			Title:   "You received kudos!",
			Message: sender.Name + " sent you kudos: " + req.Message,
			Type:    notification.TypeSuccess,
			ActionData: map[string]interface{}{
				"kudos_id": created.ID,
			},
		})
		if err != nil {
			slog.Error("Failed to queue kudos notification", "kudos_id", created.ID, "error", err)
		}
	}

	return kudos.ToResponse(created), nil
}

// List implements kudos.Service.
func (s *KudosServiceImpl) List(ctx context.Context) ([]kudos.Response, error) {
	all, err := s.Repository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]kudos.Response, 0, len(all))
	for _, k := range all {
		responses = append(responses, kudos.ToResponse(k))
	}

	return responses, nil
}

// Received implements kudos.Service.
func (s *KudosServiceImpl) Received(ctx context.Context, userID string) ([]kudos.Response, error) {
	received, err := s.Repository.ListByRecipient(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]kudos.Response, 0, len(received))
	for _, k := range received {
		responses = append(responses, kudos.ToResponse(k))
	}

	return responses, nil
}
