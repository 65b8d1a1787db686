package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"freightsite/internal/domain"
	"freightsite/internal/mailer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMessageRepo struct{ mock.Mock }

func (m *mockMessageRepo) Create(ctx context.Context, msg *domain.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *mockMessageRepo) GetAll(ctx context.Context) ([]domain.ContactMessage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ContactMessage), args.Error(1)
}

func (m *mockMessageRepo) GetUnread(ctx context.Context) ([]domain.ContactMessage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ContactMessage), args.Error(1)
}

func (m *mockMessageRepo) GetByID(ctx context.Context, id string) (*domain.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}

func (m *mockMessageRepo) UpdateReadStatus(ctx context.Context, id string, isRead bool) (*domain.ContactMessage, error) {
	args := m.Called(ctx, id, isRead)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}

func (m *mockMessageRepo) UpdateStatus(ctx context.Context, id string, status domain.MessageStatus) (*domain.ContactMessage, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}

func (m *mockMessageRepo) Delete(ctx context.Context, id string) (*domain.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}

func (m *mockMessageRepo) Stats(ctx context.Context) (*domain.MessageStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MessageStats), args.Error(1)
}

// signalSender records deliveries on channels so tests can wait for the
// background goroutine without sleeping.
type signalSender struct {
	notified  chan mailer.ContactNotification
	replied   chan mailer.ContactNotification
	notifyErr error
}

func newSignalSender() *signalSender {
	return &signalSender{
		notified: make(chan mailer.ContactNotification, 1),
		replied:  make(chan mailer.ContactNotification, 1),
	}
}

func (s *signalSender) SendContactNotification(_ context.Context, n mailer.ContactNotification) error {
	s.notified <- n
	return s.notifyErr
}

func (s *signalSender) SendAutoReply(_ context.Context, n mailer.ContactNotification) error {
	s.replied <- n
	return nil
}

func waitFor(t *testing.T, ch chan mailer.ContactNotification) mailer.ContactNotification {
	t.Helper()
	select {
	case n := <-ch:
		return n
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for mail delivery")
		return mailer.ContactNotification{}
	}
}

func TestSubmit_RejectsEmptyMessageBeforeStoring(t *testing.T) {
	repo := new(mockMessageRepo)
	svc := NewService(repo, nil)

	_, err := svc.Submit(context.Background(), SubmitRequest{
		Name:    "Ahmed Hassan",
		Email:   "ahmed@example.com",
		Message: "   ",
	})

	assert.True(t, errors.Is(err, ErrValidation))
	repo.AssertNotCalled(t, "Create")
}

func TestSubmit_SplitsNameAndNormalizesEmail(t *testing.T) {
	repo := new(mockMessageRepo)
	svc := NewService(repo, nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(msg *domain.ContactMessage) bool {
		return msg.FirstName == "Ahmed" &&
			msg.LastName == "Al Rashid Hassan" &&
			msg.Email == "ahmed@example.com" &&
			msg.Status == domain.MessageNew &&
			!msg.IsRead
	})).Return(nil)

	_, err := svc.Submit(context.Background(), SubmitRequest{
		Name:    "  Ahmed Al Rashid Hassan ",
		Email:   "  Ahmed@Example.COM ",
		Message: "Looking for customs clearance in Aqaba.",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSubmit_SingleWordNameHasEmptyLastName(t *testing.T) {
	repo := new(mockMessageRepo)
	svc := NewService(repo, nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(msg *domain.ContactMessage) bool {
		return msg.FirstName == "Madonna" && msg.LastName == ""
	})).Return(nil)

	_, err := svc.Submit(context.Background(), SubmitRequest{
		Name:    "Madonna",
		Email:   "m@example.com",
		Message: "Hello",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSubmit_SubjectFallsBackToServiceType(t *testing.T) {
	repo := new(mockMessageRepo)
	svc := NewService(repo, nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(msg *domain.ContactMessage) bool {
		return msg.ServiceType == "General enquiry"
	})).Return(nil)

	_, err := svc.Submit(context.Background(), SubmitRequest{
		Name:    "Dana Pop",
		Email:   "dana@example.com",
		Subject: "General enquiry",
		Message: "Do you cover the Black Sea routes?",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSubmit_DeliversBothEmailsInBackground(t *testing.T) {
	repo := new(mockMessageRepo)
	sender := newSignalSender()
	svc := NewService(repo, sender)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	msg, err := svc.Submit(context.Background(), SubmitRequest{
		Name:    "Dana Pop",
		Email:   "dana@example.com",
		Phone:   "+40 721 000 111",
		Message: "Quote request",
	})
	require.NoError(t, err)
	require.NotNil(t, msg)

	notification := waitFor(t, sender.notified)
	assert.Equal(t, "Dana Pop", notification.Name)
	assert.Equal(t, "dana@example.com", notification.Email)

	reply := waitFor(t, sender.replied)
	assert.Equal(t, "dana@example.com", reply.Email)
}

func TestSubmit_NotificationFailureStillSendsAutoReply(t *testing.T) {
	repo := new(mockMessageRepo)
	sender := newSignalSender()
	sender.notifyErr = errors.New("smtp down")
	svc := NewService(repo, sender)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Submit(context.Background(), SubmitRequest{
		Name:    "Dana Pop",
		Email:   "dana@example.com",
		Message: "Quote request",
	})
	require.NoError(t, err)

	waitFor(t, sender.notified)
	waitFor(t, sender.replied)
}

func TestSetStatus_RejectsUnknownStatus(t *testing.T) {
	repo := new(mockMessageRepo)
	svc := NewService(repo, nil)

	_, err := svc.SetStatus(context.Background(), "some-id", "spam")

	assert.True(t, errors.Is(err, ErrInvalidStatus))
	repo.AssertNotCalled(t, "UpdateStatus")
}

func TestSetStatus_AcceptsKnownStatuses(t *testing.T) {
	for _, status := range []string{"new", "replied", "archived"} {
		repo := new(mockMessageRepo)
		svc := NewService(repo, nil)

		want := &domain.ContactMessage{ID: "abc", Status: domain.MessageStatus(status)}
		repo.On("UpdateStatus", mock.Anything, "abc", domain.MessageStatus(status)).Return(want, nil)

		got, err := svc.SetStatus(context.Background(), "abc", status)
		require.NoError(t, err, status)
		assert.Equal(t, want, got)
		repo.AssertExpectations(t)
	}
}
