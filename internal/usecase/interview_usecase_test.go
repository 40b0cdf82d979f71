package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-jobtracker-backend/internal/domain"
	"go-jobtracker-backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) FetchByUser(ctx context.Context, userID uuid.UUID) ([]domain.Interview, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interview), args.Error(1)
}

func (m *MockInterviewRepo) GetByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*domain.Interview, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interview), args.Error(1)
}

func (m *MockInterviewRepo) ExistsByIDAndUser(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInterviewRepo) Create(ctx context.Context, interview *domain.Interview) error {
	return m.Called(ctx, interview).Error(0)
}

func (m *MockInterviewRepo) Update(ctx context.Context, interview *domain.Interview) error {
	return m.Called(ctx, interview).Error(0)
}

func (m *MockInterviewRepo) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *MockInterviewRepo) FetchByFilters(ctx context.Context, userID uuid.UUID, filter domain.InterviewFilter) ([]domain.Interview, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Interview), args.Error(1)
}

func interviewCaller(userID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, userID.String())
}

func interviewAppCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T", err)
	}
	return appErr.Code
}

func TestUpcomingInterviews(t *testing.T) {
	userID := uuid.New()
	ctx := interviewCaller(userID)

	mockRepo := new(MockInterviewRepo)
	uc := &interviewUsecase{
		interviewRepo: mockRepo,
		now: func() time.Time {
			return time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
		},
	}

	mockRepo.On("FetchByUser", mock.Anything, userID).Return([]domain.Interview{
		{ID: uuid.New(), UserID: userID, Format: "Video", Date: "2026-03-11"},
		{ID: uuid.New(), UserID: userID, Format: "Onsite", Date: "2026-03-10"}, // today, not upcoming
		{ID: uuid.New(), UserID: userID, Format: "Phone", Date: "2026-03-09"},
		{ID: uuid.New(), UserID: userID, Format: "Video", Date: "next tuesday"}, // skipped, not fatal
		{ID: uuid.New(), UserID: userID, Format: "Onsite", Date: "2026-04-01"},
	}, nil)

	upcoming, err := uc.UpcomingInterviews(ctx)
	assert.NoError(t, err)
	assert.Len(t, upcoming, 2)
	assert.Equal(t, "2026-03-11", upcoming[0].Date)
	assert.Equal(t, "2026-04-01", upcoming[1].Date)
}

func TestCreateInterview(t *testing.T) {
	userID := uuid.New()
	ctx := interviewCaller(userID)

	t.Run("Should generate an id and force the owner", func(t *testing.T) {
		mockRepo := new(MockInterviewRepo)
		uc := NewInterviewUsecase(mockRepo)

		interview := &domain.Interview{Format: "Video", Date: "2026-05-01", UserID: uuid.New()}
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Interview")).Return(nil).Run(func(args mock.Arguments) {
			iv := args.Get(1).(*domain.Interview)
			assert.NotEqual(t, uuid.Nil, iv.ID)
			assert.Equal(t, userID, iv.UserID)
		})

		assert.NoError(t, uc.CreateInterview(ctx, interview))
		mockRepo.AssertNotCalled(t, "ExistsByIDAndUser")
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject a duplicate client-supplied id", func(t *testing.T) {
		mockRepo := new(MockInterviewRepo)
		uc := NewInterviewUsecase(mockRepo)

		interviewID := uuid.New()
		mockRepo.On("ExistsByIDAndUser", mock.Anything, interviewID, userID).Return(true, nil)

		err := uc.CreateInterview(ctx, &domain.Interview{ID: interviewID, Format: "Video", Date: "2026-05-01"})
		assert.Equal(t, http.StatusConflict, interviewAppCode(t, err))
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestUpdateInterviewIDMismatch(t *testing.T) {
	userID := uuid.New()
	ctx := interviewCaller(userID)

	mockRepo := new(MockInterviewRepo)
	uc := NewInterviewUsecase(mockRepo)

	pathID := uuid.New()
	patch := &domain.Interview{ID: uuid.New(), Format: "Video", Date: "2026-05-01"}

	_, err := uc.UpdateInterview(ctx, pathID, patch)
	assert.Equal(t, http.StatusBadRequest, interviewAppCode(t, err))
	mockRepo.AssertNotCalled(t, "GetByIDAndUser")
	mockRepo.AssertNotCalled(t, "Update")
}

func TestGetInterviewNotOwned(t *testing.T) {
	userID := uuid.New()
	ctx := interviewCaller(userID)
	interviewID := uuid.New()

	mockRepo := new(MockInterviewRepo)
	uc := NewInterviewUsecase(mockRepo)

	mockRepo.On("GetByIDAndUser", mock.Anything, interviewID, userID).Return(nil, domain.ErrNotFound)

	_, err := uc.GetInterview(ctx, interviewID)
	assert.Equal(t, http.StatusNotFound, interviewAppCode(t, err))
}
