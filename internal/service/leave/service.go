package leave

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/rudratic/hr-backend-go/internal/domain/leave"
	"github.com/rudratic/hr-backend-go/internal/domain/notification"
	"github.com/rudratic/hr-backend-go/internal/pkg/database"
	"github.com/rudratic/hr-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.RequestRepository
	leave.BalanceRepository
	notificationSvc notification.Service
}

func NewLeaveService(db *database.DB, requestRepository leave.RequestRepository, balanceRepository leave.BalanceRepository, notificationSvc notification.Service) leave.Service {
	return &LeaveServiceImpl{
		db:                db,
		RequestRepository: requestRepository,
		BalanceRepository: balanceRepository,
		notificationSvc:   notificationSvc,
	}
}

// Submit implements leave.Service. Balance is checked optimistically here;
// the authoritative deduction happens at approval time.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitRequest) (leave.RequestResponse, error) {
	overlap, err := s.RequestRepository.HasOverlap(ctx, req.UserID, req.Start, req.End)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to check overlap: %w", err)
	}
	if overlap {
		return leave.RequestResponse{}, leave.ErrOverlappingRequest
	}

	request := leave.Request{
		UserID:    req.UserID,
		Type:      leave.Type(req.Type),
		StartDate: req.Start,
		EndDate:   req.End,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	}

	balance, err := s.BalanceRepository.GetOrCreate(ctx, req.UserID, req.Start.Year())
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to load balance: %w", err)
	}
	if remaining, tracked := balance.BucketFor(request.Type); tracked && remaining < request.Days() {
		return leave.RequestResponse{}, leave.ErrInsufficientBalance
	}

	created, err := s.RequestRepository.Create(ctx, request)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.ToRequestResponse(created), nil
}

// List implements leave.Service.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.RequestResponse, int64, error) {
	requests, total, err := s.RequestRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.ToRequestResponse(req))
	}

	return responses, total, nil
}

// Balance implements leave.Service. The row is created lazily with the
// default allocation on first read for a year.
func (s *LeaveServiceImpl) Balance(ctx context.Context, userID string, year int) (leave.BalanceResponse, error) {
	if year <= 0 {
		year = time.Now().Year()
	}

	balance, err := s.BalanceRepository.GetOrCreate(ctx, userID, year)
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	return leave.ToBalanceResponse(balance), nil
}

// Approve implements leave.Service. The status transition and the balance
// deduction commit or fail together.
func (s *LeaveServiceImpl) Approve(ctx context.Context, requestID, approverID string) (leave.RequestResponse, error) {
	request, err := s.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if request.Status.IsTerminal() {
		return leave.RequestResponse{}, leave.ErrAlreadyProcessed
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.BalanceRepository.GetOrCreate(txCtx, request.UserID, request.StartDate.Year()); err != nil {
			return fmt.Errorf("failed to ensure balance: %w", err)
		}
		if err := s.BalanceRepository.Deduct(txCtx, request.UserID, request.StartDate.Year(), request.Type, request.Days()); err != nil {
			return err
		}
		return s.RequestRepository.UpdateStatus(txCtx, requestID, leave.StatusApproved, &approverID, nil)
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	updated, err := s.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	s.notifyDecision(ctx, updated)
	return leave.ToRequestResponse(updated), nil
}

// Reject implements leave.Service. A rejection always carries a reason.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.RejectRequest) (leave.RequestResponse, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return leave.RequestResponse{}, leave.ErrRejectReasonNeeded
	}

	request, err := s.RequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if request.Status.IsTerminal() {
		return leave.RequestResponse{}, leave.ErrAlreadyProcessed
	}

	if err := s.RequestRepository.UpdateStatus(ctx, req.RequestID, leave.StatusRejected, &req.ApproverID, &req.Reason); err != nil {
		return leave.RequestResponse{}, err
	}

	updated, err := s.RequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	s.notifyDecision(ctx, updated)
	return leave.ToRequestResponse(updated), nil
}

func (s *LeaveServiceImpl) notifyDecision(ctx context.Context, request leave.Request) {
	if s.notificationSvc == nil {
		return
	}

	notifType := notification.TypeSuccess
	message := fmt.Sprintf("Your %s leave from %s to %s was approved",
		request.Type, request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02"))
	if request.Status == leave.StatusRejected {
		notifType = notification.TypeWarning
		message = fmt.Sprintf("Your %s leave from %s to %s was rejected",
			request.Type, request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02"))
	}

	_ = s.notificationSvc.Queue(ctx, notification.CreateRequest{
		UserID:  request.UserID,
		Title:   "Leave request " + string(request.Status),
		Message: message,
		Type:    notifType,
		ActionData: map[string]interface{}{
			"leave_request_id": request.ID,
			"status":           string(request.Status),
		},
	})
}
