package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-jobtracker-backend/internal/domain"
	"go-jobtracker-backend/internal/usecase"
	"go-jobtracker-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func newProfileUsecase(repo *MockProfileRepo) domain.ProfileUsecase {
	validate := validator.New()
	validation.RegisterValidators(validate)
	return usecase.NewProfileUsecase(repo, validate)
}

func validProfile() *domain.Profile {
	return &domain.Profile{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Title: "Backend Engineer",
	}
}

func TestCreateProfile(t *testing.T) {
	userID := uuid.New()
	ctx := callerContext(userID)

	t.Run("Should force the account id from context", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := newProfileUsecase(mockRepo)

		profile := validProfile()
		profile.ID = uuid.New() // body claims another account's slot

		mockRepo.On("ExistsByID", mock.Anything, userID).Return(false, nil)
		mockRepo.On("ExistsByEmail", mock.Anything, profile.Email).Return(false, nil)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil).Run(func(args mock.Arguments) {
			assert.Equal(t, userID, args.Get(1).(*domain.Profile).ID)
		})

		assert.NoError(t, uc.CreateProfile(ctx, profile))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should conflict when the account already has a profile", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := newProfileUsecase(mockRepo)

		mockRepo.On("ExistsByID", mock.Anything, userID).Return(true, nil)

		err := uc.CreateProfile(ctx, validProfile())
		assert.Equal(t, http.StatusConflict, appCode(t, err))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should conflict when the email is already taken", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := newProfileUsecase(mockRepo)

		mockRepo.On("ExistsByID", mock.Anything, userID).Return(false, nil)
		mockRepo.On("ExistsByEmail", mock.Anything, "jane@example.com").Return(true, nil)

		err := uc.CreateProfile(ctx, validProfile())
		assert.Equal(t, http.StatusConflict, appCode(t, err))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject an invalid email", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := newProfileUsecase(mockRepo)

		profile := validProfile()
		profile.Email = "not-an-email"

		err := uc.CreateProfile(ctx, profile)
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject an emoji bio", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := newProfileUsecase(mockRepo)

		profile := validProfile()
		profile.Bio = "Go enthusiast \U0001F680"

		err := uc.CreateProfile(ctx, profile)
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestProfileByIDGuard(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()

	t.Run("Should forbid reading someone else's profile", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := newProfileUsecase(mockRepo)

		_, err := uc.GetProfileByID(callerContext(strangerID), ownerID)
		assert.Equal(t, http.StatusForbidden, appCode(t, err))
		mockRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("Should let an admin read any profile", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := newProfileUsecase(mockRepo)

		stored := validProfile()
		stored.ID = ownerID
		mockRepo.On("GetByID", mock.Anything, ownerID).Return(stored, nil)

		profile, err := uc.GetProfileByID(callerContext(strangerID, "admin"), ownerID)
		assert.NoError(t, err)
		assert.Equal(t, ownerID, profile.ID)
	})

	t.Run("Should let the owner use the id route", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := newProfileUsecase(mockRepo)

		stored := validProfile()
		stored.ID = ownerID
		mockRepo.On("GetByID", mock.Anything, ownerID).Return(stored, nil)

		_, err := uc.GetProfileByID(callerContext(ownerID), ownerID)
		assert.NoError(t, err)
	})

	t.Run("Should forbid updating someone else's profile", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := newProfileUsecase(mockRepo)

		_, err := uc.UpdateProfileByID(callerContext(strangerID), ownerID, validProfile())
		assert.Equal(t, http.StatusForbidden, appCode(t, err))
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestUpdateCurrentProfile(t *testing.T) {
	userID := uuid.New()
	ctx := callerContext(userID)

	t.Run("Should keep the stored email when the patch leaves it blank", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := newProfileUsecase(mockRepo)

		stored := validProfile()
		stored.ID = userID
		mockRepo.On("GetByID", mock.Anything, userID).Return(stored, nil)

		patch := &domain.Profile{Name: "Jane A. Doe", Title: "Staff Engineer"}
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.Equal(t, "jane@example.com", p.Email)
			assert.Equal(t, "Jane A. Doe", p.Name)
			assert.Equal(t, userID, p.ID)
		})

		updated, err := uc.UpdateCurrentProfile(ctx, patch)
		assert.NoError(t, err)
		assert.Equal(t, "Staff Engineer", updated.Title)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should report not found when no profile exists yet", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		uc := newProfileUsecase(mockRepo)

		mockRepo.On("GetByID", mock.Anything, userID).Return(nil, domain.ErrNotFound)

		_, err := uc.UpdateCurrentProfile(ctx, validProfile())
		assert.Equal(t, http.StatusNotFound, appCode(t, err))
	})
}
