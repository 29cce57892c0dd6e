package leave

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudratic/hr-backend-go/internal/domain/leave"
)

// fakeRequestRepo is an in-memory leave.RequestRepository.
type fakeRequestRepo struct {
	requests map[string]leave.Request
	nextID   int
	overlap  bool
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]leave.Request)}
}

func (f *fakeRequestRepo) Create(_ context.Context, request leave.Request) (leave.Request, error) {
	f.nextID++
	request.ID = "req-" + strconv.Itoa(f.nextID)
	request.CreatedAt = time.Now()
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id string) (leave.Request, error) {
	request, ok := f.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrRequestNotFound
	}
	return request, nil
}

func (f *fakeRequestRepo) List(_ context.Context, filter leave.ListFilter) ([]leave.Request, int64, error) {
	var out []leave.Request
	for _, request := range f.requests {
		if filter.UserID != nil && request.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && string(request.Status) != *filter.Status {
			continue
		}
		out = append(out, request)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRequestRepo) UpdateStatus(_ context.Context, id string, status leave.Status, approvedBy *string, rejectionReason *string) error {
	request, ok := f.requests[id]
	if !ok {
		return leave.ErrRequestNotFound
	}
	request.Status = status
	request.ApprovedBy = approvedBy
	request.RejectionReason = rejectionReason
	f.requests[id] = request
	return nil
}

func (f *fakeRequestRepo) HasOverlap(_ context.Context, _ string, _, _ time.Time) (bool, error) {
	return f.overlap, nil
}

func (f *fakeRequestRepo) ListApprovedInWindow(_ context.Context, _, _ time.Time) ([]leave.Request, error) {
	return nil, nil
}

// fakeBalanceRepo is an in-memory leave.BalanceRepository.
type fakeBalanceRepo struct {
	balance leave.Balance
}

func (f *fakeBalanceRepo) GetOrCreate(_ context.Context, userID string, year int) (leave.Balance, error) {
	b := f.balance
	b.UserID = userID
	b.Year = year
	return b, nil
}

func (f *fakeBalanceRepo) Deduct(_ context.Context, _ string, _ int, _ leave.Type, _ int) error {
	return nil
}

func newTestLeaveService(requestRepo *fakeRequestRepo, balanceRepo *fakeBalanceRepo) leave.Service {
	return NewLeaveService(nil, requestRepo, balanceRepo, nil)
}

func submitRequest(userID, leaveType, start, end string) leave.SubmitRequest {
	req := leave.SubmitRequest{
		UserID:    userID,
		Type:      leaveType,
		StartDate: start,
		EndDate:   end,
		Reason:    "family matters",
	}
	if err := req.Validate(); err != nil {
		panic(err)
	}
	return req
}

func TestLeaveService_Submit_Success(t *testing.T) {
	ctx := context.Background()
	requestRepo := newFakeRequestRepo()
	balanceRepo := &fakeBalanceRepo{balance: leave.Balance{Sick: 12, Casual: 12, Earned: 15}}
	svc := newTestLeaveService(requestRepo, balanceRepo)

	resp, err := svc.Submit(ctx, submitRequest("user-1", "CASUAL", "2026-03-02", "2026-03-04"))

	require.NoError(t, err)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, 3, resp.Days)
	assert.Equal(t, "CASUAL", resp.Type)
	assert.Len(t, requestRepo.requests, 1)
}

func TestLeaveService_Submit_WithoutReason(t *testing.T) {
	ctx := context.Background()
	requestRepo := newFakeRequestRepo()
	balanceRepo := &fakeBalanceRepo{balance: leave.Balance{Sick: 12, Casual: 12, Earned: 15}}
	svc := newTestLeaveService(requestRepo, balanceRepo)

	// The reason is optional on submission.
	req := leave.SubmitRequest{UserID: "user-1", Type: "SICK", StartDate: "2026-01-10", EndDate: "2026-01-12"}
	require.NoError(t, req.Validate())

	resp, err := svc.Submit(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Empty(t, resp.Reason)
}

func TestLeaveService_Submit_Overlap(t *testing.T) {
	ctx := context.Background()
	requestRepo := newFakeRequestRepo()
	requestRepo.overlap = true
	balanceRepo := &fakeBalanceRepo{balance: leave.Balance{Sick: 12, Casual: 12, Earned: 15}}
	svc := newTestLeaveService(requestRepo, balanceRepo)

	_, err := svc.Submit(ctx, submitRequest("user-1", "SICK", "2026-03-02", "2026-03-03"))

	assert.ErrorIs(t, err, leave.ErrOverlappingRequest)
	assert.Empty(t, requestRepo.requests)
}

func TestLeaveService_Submit_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	requestRepo := newFakeRequestRepo()
	balanceRepo := &fakeBalanceRepo{balance: leave.Balance{Sick: 1, Casual: 12, Earned: 15}}
	svc := newTestLeaveService(requestRepo, balanceRepo)

	// Three sick days against a balance of one.
	_, err := svc.Submit(ctx, submitRequest("user-1", "SICK", "2026-03-02", "2026-03-04"))

	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
}

func TestLeaveService_Submit_UntrackedTypeIgnoresBalance(t *testing.T) {
	ctx := context.Background()
	requestRepo := newFakeRequestRepo()
	balanceRepo := &fakeBalanceRepo{balance: leave.Balance{}}
	svc := newTestLeaveService(requestRepo, balanceRepo)

	// UNPAID leave draws from no bucket, so a zero balance never blocks it.
	resp, err := svc.Submit(ctx, submitRequest("user-1", "UNPAID", "2026-03-02", "2026-03-20"))

	require.NoError(t, err)
	assert.Equal(t, "PENDING", resp.Status)
}

func TestLeaveService_Reject_Success(t *testing.T) {
	ctx := context.Background()
	requestRepo := newFakeRequestRepo()
	balanceRepo := &fakeBalanceRepo{balance: leave.Balance{Sick: 12, Casual: 12, Earned: 15}}
	svc := newTestLeaveService(requestRepo, balanceRepo)

	created, err := svc.Submit(ctx, submitRequest("user-1", "CASUAL", "2026-03-02", "2026-03-03"))
	require.NoError(t, err)

	resp, err := svc.Reject(ctx, leave.RejectRequest{
		RequestID:  created.ID,
		ApproverID: "admin-1",
		Reason:     "team is short-staffed that week",
	})

	require.NoError(t, err)
	assert.Equal(t, "REJECTED", resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "team is short-staffed that week", *resp.RejectionReason)
}

func TestLeaveService_Reject_EmptyReason(t *testing.T) {
	ctx := context.Background()
	requestRepo := newFakeRequestRepo()
	balanceRepo := &fakeBalanceRepo{balance: leave.Balance{Sick: 12, Casual: 12, Earned: 15}}
	svc := newTestLeaveService(requestRepo, balanceRepo)

	_, err := svc.Reject(ctx, leave.RejectRequest{RequestID: "req-1", ApproverID: "admin-1", Reason: "   "})

	assert.ErrorIs(t, err, leave.ErrRejectReasonNeeded)
}

func TestLeaveService_Approve_AlreadyProcessed(t *testing.T) {
	ctx := context.Background()
	requestRepo := newFakeRequestRepo()
	balanceRepo := &fakeBalanceRepo{balance: leave.Balance{Sick: 12, Casual: 12, Earned: 15}}
	svc := newTestLeaveService(requestRepo, balanceRepo)

	created, err := svc.Submit(ctx, submitRequest("user-1", "CASUAL", "2026-03-02", "2026-03-03"))
	require.NoError(t, err)

	_, err = svc.Reject(ctx, leave.RejectRequest{RequestID: created.ID, ApproverID: "admin-1", Reason: "coverage gap"})
	require.NoError(t, err)

	// Approving a terminal request must bounce before any balance work.
	_, err = svc.Approve(ctx, created.ID, "admin-2")
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestLeaveService_Approve_RequestNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestLeaveService(newFakeRequestRepo(), &fakeBalanceRepo{})

	_, err := svc.Approve(ctx, "ghost", "admin-1")
	assert.ErrorIs(t, err, leave.ErrRequestNotFound)
}

func TestLeaveService_Reject_AlreadyProcessed(t *testing.T) {
	ctx := context.Background()
	requestRepo := newFakeRequestRepo()
	balanceRepo := &fakeBalanceRepo{balance: leave.Balance{Sick: 12, Casual: 12, Earned: 15}}
	svc := newTestLeaveService(requestRepo, balanceRepo)

	created, err := svc.Submit(ctx, submitRequest("user-1", "CASUAL", "2026-03-02", "2026-03-03"))
	require.NoError(t, err)

	_, err = svc.Reject(ctx, leave.RejectRequest{RequestID: created.ID, ApproverID: "admin-1", Reason: "no"})
	require.NoError(t, err)

	// The second decision must bounce off the terminal state.
	_, err = svc.Reject(ctx, leave.RejectRequest{RequestID: created.ID, ApproverID: "admin-2", Reason: "again"})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestLeaveService_Balance_DefaultsYear(t *testing.T) {
	ctx := context.Background()
	requestRepo := newFakeRequestRepo()
	balanceRepo := &fakeBalanceRepo{balance: leave.Balance{Sick: 12, Casual: 10, Earned: 15}}
	svc := newTestLeaveService(requestRepo, balanceRepo)

	resp, err := svc.Balance(ctx, "user-1", 0)

	require.NoError(t, err)
	assert.Equal(t, time.Now().Year(), resp.Year)
	assert.Equal(t, 12, resp.Sick)
	assert.Equal(t, 10, resp.Casual)
	assert.Equal(t, 15, resp.Earned)
}

func TestLeaveService_List_FiltersByUser(t *testing.T) {
	ctx := context.Background()
	requestRepo := newFakeRequestRepo()
	balanceRepo := &fakeBalanceRepo{balance: leave.Balance{Sick: 12, Casual: 12, Earned: 15}}
	svc := newTestLeaveService(requestRepo, balanceRepo)

	_, err := svc.Submit(ctx, submitRequest("user-1", "CASUAL", "2026-03-02", "2026-03-03"))
	require.NoError(t, err)
	_, err = svc.Submit(ctx, submitRequest("user-2", "SICK", "2026-04-06", "2026-04-07"))
	require.NoError(t, err)

	userID := "user-1"
	responses, total, err := svc.List(ctx, leave.ListFilter{UserID: &userID})

	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, responses, 1)
	assert.Equal(t, "user-1", responses[0].UserID)
}
