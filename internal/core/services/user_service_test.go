package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/fin_tracker_app/internal/apperrors"
	"github.com/SscSPs/fin_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/fin_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/fin_tracker_app/internal/core/services"
	"github.com/SscSPs/fin_tracker_app/internal/dto"
	"github.com/SscSPs/fin_tracker_app/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	userService  portssvc.UserSvcFacade
	ctx          context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.userService = services.NewUserService(suite.mockUserRepo)
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	req := dto.RegisterUserRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	}

	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	var saved domain.User
	suite.mockUserRepo.SaveUserFn = func(ctx context.Context, user domain.User) error {
		saved = user
		return nil
	}

	user, err := suite.userService.RegisterUser(suite.ctx, req)

	suite.NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Equal(req.Email, user.Email)
	suite.Equal(domain.RoleUser, user.Role)
	suite.True(user.Balance.Equal(decimal.Zero))
	suite.NotEqual(req.Password, user.PasswordHash)
	suite.True(utils.CheckPasswordHash(req.Password, saved.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	req := dto.RegisterUserRequest{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "password123",
	}
	existing := &domain.User{UserID: uuid.NewString(), Email: req.Email}

	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, req.Email).Return(existing, nil).Once()

	user, err := suite.userService.RegisterUser(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(user)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "test@example.com",
		PasswordHash: hash,
	}

	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, stored.Email).Return(stored, nil).Once()

	user, err := suite.userService.AuthenticateUser(suite.ctx, stored.Email, "password123")

	suite.NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "test@example.com",
		PasswordHash: hash,
	}

	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, stored.Email).Return(stored, nil).Once()

	user, err := suite.userService.AuthenticateUser(suite.ctx, stored.Email, "wrong-password")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmailSameError() {
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.userService.AuthenticateUser(suite.ctx, "nobody@example.com", "password123")

	// Same error as a wrong password so callers cannot probe for accounts.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_PasswordlessGoogleAccount() {
	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "google-only@example.com",
		AuthProvider: "google",
	}

	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, stored.Email).Return(stored, nil).Once()

	user, err := suite.userService.AuthenticateUser(suite.ctx, stored.Email, "anything")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestDeleteUser_SelfDelete() {
	userID := uuid.NewString()

	suite.mockUserRepo.On("MarkUserDeleted", suite.ctx, userID, mock.Anything, userID).Return(nil).Once()

	err := suite.userService.DeleteUser(suite.ctx, userID, userID)

	suite.NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_NonAdminDeletingOtherForbidden() {
	targetID := uuid.NewString()
	deleter := &domain.User{UserID: uuid.NewString(), Role: domain.RoleUser}

	suite.mockUserRepo.On("FindUserByID", suite.ctx, deleter.UserID).Return(deleter, nil).Once()

	err := suite.userService.DeleteUser(suite.ctx, targetID, deleter.UserID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_AdminDeletingOther() {
	targetID := uuid.NewString()
	admin := &domain.User{UserID: uuid.NewString(), Role: domain.RoleAdmin}

	suite.mockUserRepo.On("FindUserByID", suite.ctx, admin.UserID).Return(admin, nil).Once()
	suite.mockUserRepo.On("MarkUserDeleted", suite.ctx, targetID, mock.Anything, admin.UserID).Return(nil).Once()

	err := suite.userService.DeleteUser(suite.ctx, targetID, admin.UserID)

	suite.NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_ExistingProviderLink() {
	stored := &domain.User{UserID: uuid.NewString(), Email: "g@example.com", AuthProvider: "google", ProviderUserID: "g-123"}

	suite.mockUserRepo.On("FindUserByProviderDetails", suite.ctx, "google", "g-123").Return(stored, nil).Once()

	user, err := suite.userService.FindOrCreateGoogleUser(suite.ctx, "g-123", "g@example.com", "G User")

	suite.NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByEmail", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_LinksExistingEmailAccount() {
	stored := &domain.User{UserID: uuid.NewString(), Email: "g@example.com", PasswordHash: "some-hash"}

	suite.mockUserRepo.On("FindUserByProviderDetails", suite.ctx, "google", "g-123").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, "g@example.com").Return(stored, nil).Once()
	var linked domain.User
	suite.mockUserRepo.UpdateUserFn = func(ctx context.Context, user domain.User) error {
		linked = user
		return nil
	}

	user, err := suite.userService.FindOrCreateGoogleUser(suite.ctx, "g-123", "g@example.com", "G User")

	suite.NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.Equal("google", linked.AuthProvider)
	suite.Equal("g-123", linked.ProviderUserID)
	suite.True(linked.Verified)
	// Password login stays available after linking.
	suite.Equal("some-hash", linked.PasswordHash)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_CreatesFreshVerifiedUser() {
	suite.mockUserRepo.On("FindUserByProviderDetails", suite.ctx, "google", "g-123").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	var saved domain.User
	suite.mockUserRepo.SaveUserFn = func(ctx context.Context, user domain.User) error {
		saved = user
		return nil
	}

	user, err := suite.userService.FindOrCreateGoogleUser(suite.ctx, "g-123", "new@example.com", "New User")

	suite.NoError(err)
	suite.NotEmpty(user.UserID)
	suite.True(user.Verified)
	suite.Empty(user.PasswordHash)
	suite.Equal(user.UserID, saved.UserID)
	suite.True(saved.Balance.Equal(decimal.Zero))
}

func (suite *UserServiceTestSuite) TestUpdateUser_PartialUpdate() {
	stored := &domain.User{UserID: uuid.NewString(), Email: "test@example.com", Name: "Old Name"}
	newName := "New Name"

	suite.mockUserRepo.On("FindUserByID", suite.ctx, stored.UserID).Return(stored, nil).Once()
	suite.mockUserRepo.UpdateUserFn = func(ctx context.Context, user domain.User) error {
		return nil
	}

	user, err := suite.userService.UpdateUser(suite.ctx, stored.UserID, dto.UpdateUserRequest{Name: &newName})

	suite.NoError(err)
	suite.Equal(newName, user.Name)
	suite.Equal(stored.Email, user.Email)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
