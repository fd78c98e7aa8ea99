package service

import (
	"context"
	"noteblog/internal/config"
	"noteblog/internal/models"
	"noteblog/internal/repository"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:         "test-secret",
		AccessTokenDuration:  2 * time.Hour,
		RefreshTokenDuration: 168 * time.Hour,
	}
}

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Email:           "new@example.com",
		FirstName:       "Ivan",
		Password:        "password123",
		PasswordConfirm: "password123",
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешная регистрация", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		s := NewAuthService(userRepo, testConfig())

		userRepo.On("GetUserByEmail", ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
		userRepo.On("CreateUser", ctx, mock.AnythingOfType("*models.User"), "password123").Return(nil)

		user, err := s.Register(ctx, validRegisterRequest())

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		assert.Equal(t, "Ivan", user.FirstName)
		userRepo.AssertExpectations(t)
	})

	t.Run("Email уже зарегистрирован - новый пользователь не создается", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		s := NewAuthService(userRepo, testConfig())

		existing := &models.User{UserID: "existing-id", Email: "new@example.com"}
		userRepo.On("GetUserByEmail", ctx, "new@example.com").Return(existing, nil)

		user, err := s.Register(ctx, validRegisterRequest())

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrEmailExists)
		userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Гонка на уникальном индексе тоже дает ErrEmailExists", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		s := NewAuthService(userRepo, testConfig())

		userRepo.On("GetUserByEmail", ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
		userRepo.On("CreateUser", ctx, mock.AnythingOfType("*models.User"), "password123").Return(repository.ErrEmailExists)

		user, err := s.Register(ctx, validRegisterRequest())

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	// порядок проверок: каждая срабатывает первой при своем наборе полей
	validationTests := []struct {
		name        string
		mutate      func(req *RegisterRequest)
		expectedErr error
	}{
		{
			name:        "Пустой email",
			mutate:      func(req *RegisterRequest) { req.Email = "" },
			expectedErr: ErrEmailEmpty,
		},
		{
			name:        "Неверный формат email",
			mutate:      func(req *RegisterRequest) { req.Email = "not-an-email" },
			expectedErr: ErrEmailFormat,
		},
		{
			name:        "Email без домена",
			mutate:      func(req *RegisterRequest) { req.Email = "user@" },
			expectedErr: ErrEmailFormat,
		},
		{
			name: "Пустое имя",
			mutate: func(req *RegisterRequest) {
				req.FirstName = ""
			},
			expectedErr: ErrFirstNameEmpty,
		},
		{
			name: "Имя из одного символа",
			mutate: func(req *RegisterRequest) {
				req.FirstName = "И"
			},
			expectedErr: ErrFirstNameShort,
		},
		{
			name: "Пароли не совпадают",
			mutate: func(req *RegisterRequest) {
				req.PasswordConfirm = "different"
			},
			expectedErr: ErrPasswordMismatch,
		},
		{
			name: "Короткий пароль",
			mutate: func(req *RegisterRequest) {
				req.Password = "short"
				req.PasswordConfirm = "short"
			},
			expectedErr: ErrPasswordShort,
		},
		{
			name: "Несовпадение паролей проверяется раньше длины",
			mutate: func(req *RegisterRequest) {
				req.Password = "short"
				req.PasswordConfirm = "other"
			},
			expectedErr: ErrPasswordMismatch,
		},
	}

	for _, tt := range validationTests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			s := NewAuthService(userRepo, testConfig())

			userRepo.On("GetUserByEmail", ctx, mock.Anything).Return(nil, repository.ErrUserNotFound)

			req := validRegisterRequest()
			tt.mutate(&req)

			user, err := s.Register(ctx, req)

			assert.Nil(t, user)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.ErrorIs(t, err, ErrValidation)
			userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешный вход", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		s := NewAuthService(userRepo, testConfig())

		user := &models.User{UserID: "user-id", Email: "test@example.com"}
		userRepo.On("VerifyPassword", ctx, "test@example.com", "password123").Return(user, nil)
		userRepo.On("UpdateRefreshToken", ctx, "user-id", mock.Anything, mock.Anything).Return(nil)

		loggedIn, accessToken, refreshToken, err := s.Login(ctx, "test@example.com", "password123")

		require.NoError(t, err)
		assert.Equal(t, "user-id", loggedIn.UserID)
		assert.NotEmpty(t, accessToken)
		assert.NotEmpty(t, refreshToken)
	})

	t.Run("Несуществующий email и неверный пароль дают одинаковую ошибку", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		s := NewAuthService(userRepo, testConfig())

		userRepo.On("VerifyPassword", ctx, "missing@example.com", "password123").
			Return(nil, repository.ErrUserNotFound)
		userRepo.On("VerifyPassword", ctx, "test@example.com", "wrong").
			Return(nil, assert.AnError)

		_, _, _, errMissing := s.Login(ctx, "missing@example.com", "password123")
		_, _, _, errWrong := s.Login(ctx, "test@example.com", "wrong")

		assert.ErrorIs(t, errMissing, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
		assert.Equal(t, errMissing.Error(), errWrong.Error())
	})
}

func TestAuthService_PrincipalFromToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Из токена достается userId", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		s := NewAuthService(userRepo, testConfig())

		user := &models.User{UserID: "user-id", Email: "test@example.com"}
		userRepo.On("VerifyPassword", ctx, "test@example.com", "password123").Return(user, nil)
		userRepo.On("UpdateRefreshToken", ctx, "user-id", mock.Anything, mock.Anything).Return(nil)

		_, accessToken, _, err := s.Login(ctx, "test@example.com", "password123")
		require.NoError(t, err)

		userID, err := s.PrincipalFromToken(accessToken)

		require.NoError(t, err)
		assert.Equal(t, "user-id", userID)
	})

	t.Run("Мусор вместо токена", func(t *testing.T) {
		s := NewAuthService(new(MockUserRepository), testConfig())

		_, err := s.PrincipalFromToken("garbage")

		assert.Error(t, err)
	})
}
