package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rudratic/hr-backend-go/internal/domain/notification"
	"github.com/rudratic/hr-backend-go/internal/pkg/sse"
)

// Config holds notification service configuration
type Config struct {
	BatchSize     int           // default: 100
	FlushInterval time.Duration // default: 5 seconds
	WorkerCount   int           // default: 2
	QueueSize     int           // default: 1000
}

type service struct {
	repo   notification.Repository
	hub    *sse.Hub
	config Config

	queue  chan notification.CreateRequest
	wg     sync.WaitGroup
	stopCh chan struct{}
}

// NewNotificationService creates a notification service with background
// workers that batch writes and push stored rows over SSE.
func NewNotificationService(repo notification.Repository, hub *sse.Hub, cfg Config) notification.Service {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 1000
	}

	s := &service{
		repo:   repo,
		hub:    hub,
		config: cfg,
		queue:  make(chan notification.CreateRequest, cfg.QueueSize),
		stopCh: make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	slog.Info("Notification service started",
		"workers", cfg.WorkerCount,
		"batch_size", cfg.BatchSize,
		"flush_interval", cfg.FlushInterval,
	)

	return s
}

// worker drains the queue into batched inserts.
func (s *service) worker(id int) {
	defer s.wg.Done()

	batch := make([]notification.CreateRequest, 0, s.config.BatchSize)
	ticker := time.NewTicker(s.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		entities := make([]notification.Notification, len(batch))
		for i, req := range batch {
			entities[i] = notification.Notification{
				UserID:     req.UserID,
				Title:      req.Title,
				Message:    req.Message,
				Type:       req.Type,
				ActionData: req.ActionData,
			}
		}

		created, err := s.repo.CreateBatch(ctx, entities)
		if err != nil {
			slog.Error("Notification batch insert failed", "worker", id, "count", len(entities), "error", err)
		} else {
			for _, n := range created {
				s.publish(n)
			}
		}

		batch = batch[:0]
	}

	for {
		select {
		case req := <-s.queue:
			batch = append(batch, req)
			if len(batch) >= s.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.stopCh:
			flush()
			return
		}
	}
}

func (s *service) publish(n notification.Notification) {
	s.hub.Publish(n.UserID, sse.Event{
		UserID: n.UserID,
		Event:  "notification",
		Data:   notification.ToResponse(n),
	})
}

// Queue implements notification.Service.
func (s *service) Queue(ctx context.Context, req notification.CreateRequest) error {
	select {
	case s.queue <- req:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		// Queue full, fall back to a direct insert
		return s.directInsert(ctx, req)
	}
}

// QueueBulk implements notification.Service.
func (s *service) QueueBulk(ctx context.Context, reqs []notification.CreateRequest) error {
	for _, req := range reqs {
		if err := s.Queue(ctx, req); err != nil {
			slog.Error("Failed to queue notification", "user_id", req.UserID, "error", err)
		}
	}
	return nil
}

func (s *service) directInsert(ctx context.Context, req notification.CreateRequest) error {
	created, err := s.repo.Create(ctx, notification.Notification{
		UserID:     req.UserID,
		Title:      req.Title,
		Message:    req.Message,
		Type:       req.Type,
		ActionData: req.ActionData,
	})
	if err != nil {
		return err
	}

	s.publish(created)
	return nil
}

// List implements notification.Service. Newest rows first, capped at the
// list limit; poll fallback for clients without an SSE connection.
func (s *service) List(ctx context.Context, userID string) (notification.ListResponse, error) {
	notifications, err := s.repo.ListByUserID(ctx, userID, notification.ListLimit)
	if err != nil {
		return notification.ListResponse{}, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return notification.ListResponse{}, err
	}

	responses := make([]notification.Response, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, notification.ToResponse(n))
	}

	return notification.ListResponse{
		Notifications: responses,
		UnreadCount:   unread,
	}, nil
}

// MarkRead implements notification.Service.
func (s *service) MarkRead(ctx context.Context, userID, id string) error {
	return s.repo.MarkRead(ctx, userID, id)
}

// MarkAllRead implements notification.Service.
func (s *service) MarkAllRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllRead(ctx, userID)
}

// Subscribe implements notification.Service.
func (s *service) Subscribe(ctx context.Context, userID string) (<-chan sse.Event, func()) {
	ch, cleanup := s.hub.Subscribe(userID)

	out := make(chan sse.Event, 10)
	go func() {
		defer close(out)
		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}
				out <- event
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cleanup
}

// Stop implements notification.Service.
func (s *service) Stop() {
	close(s.stopCh)
	s.wg.Wait()
	slog.Info("Notification service stopped")
}
