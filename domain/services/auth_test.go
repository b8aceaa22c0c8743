package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shortlink/domain/models"
	"shortlink/mocks"
)

func newTestTokens(t *testing.T) *Tokens {
	t.Helper()
	tokens, err := NewTokens("test-secret-key", time.Hour)
	require.NoError(t, err)
	return tokens
}

func TestAuthentication_Register(t *testing.T) {
	tests := []struct {
		name        string
		inputName   string
		inputEmail  string
		inputPass   string
		mockSetup   func(m *mocks.MockUserStorage)
		wantErr     bool
		expectedErr error
	}{
		{
			name:       "successful registration",
			inputName:  "  Alice  ",
			inputEmail: " Alice@Example.COM ",
			inputPass:  "secret1",
			mockSetup: func(m *mocks.MockUserStorage) {
				m.EXPECT().
					UserGetByEmail(gomock.Any(), "alice@example.com").
					Return(models.User{}, models.ErrUnfound)
				m.EXPECT().
					UserCreate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, u models.User) (models.User, error) {
						assert.Equal(t, "Alice", u.Name)
						assert.Equal(t, "alice@example.com", u.Email)
						assert.NotEqual(t, "secret1", u.PasswordHash)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
						assert.NotEqual(t, uuid.Nil, u.ID)
						assert.False(t, u.CreatedAt.IsZero())
						return u, nil
					})
			},
		},
		{
			name:       "name too short",
			inputName:  "A",
			inputEmail: "a@example.com",
			inputPass:  "secret1",
			mockSetup:  func(m *mocks.MockUserStorage) {},

			wantErr:     true,
			expectedErr: models.ErrInvalidData,
		},
		{
			name:       "password too short",
			inputName:  "Alice",
			inputEmail: "a@example.com",
			inputPass:  "abc",
			mockSetup:  func(m *mocks.MockUserStorage) {},

			wantErr:     true,
			expectedErr: models.ErrInvalidData,
		},
		{
			name:       "invalid email",
			inputName:  "Alice",
			inputEmail: "not-an-email",
			inputPass:  "secret1",
			mockSetup:  func(m *mocks.MockUserStorage) {},

			wantErr:     true,
			expectedErr: models.ErrInvalidData,
		},
		{
			name:       "duplicate email caught by pre-check",
			inputName:  "Alice",
			inputEmail: "taken@example.com",
			inputPass:  "secret1",
			mockSetup: func(m *mocks.MockUserStorage) {
				m.EXPECT().
					UserGetByEmail(gomock.Any(), "taken@example.com").
					Return(models.User{ID: uuid.New()}, nil)
			},
			wantErr:     true,
			expectedErr: models.ErrConflict,
		},
		{
			name:       "duplicate email caught by the store",
			inputName:  "Alice",
			inputEmail: "race@example.com",
			inputPass:  "secret1",
			mockSetup: func(m *mocks.MockUserStorage) {
				m.EXPECT().
					UserGetByEmail(gomock.Any(), "race@example.com").
					Return(models.User{}, models.ErrUnfound)
				m.EXPECT().
					UserCreate(gomock.Any(), gomock.Any()).
					Return(models.User{}, models.ErrConflict)
			},
			wantErr:     true,
			expectedErr: models.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := mocks.NewMockUserStorage(ctrl)
			tt.mockSetup(mockStorage)

			auth := NewAuthentication(mockStorage, newTestTokens(t))

			user, token, err := auth.Register(context.Background(), tt.inputName, tt.inputEmail, tt.inputPass)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.NotEmpty(t, user.Avatar)
		})
	}
}

func TestAuthentication_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	stored := models.User{
		ID:           uuid.New(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}

	tests := []struct {
		name        string
		email       string
		password    string
		mockSetup   func(m *mocks.MockUserStorage)
		wantErr     bool
		expectedErr error
	}{
		{
			name:     "successful login",
			email:    "Alice@Example.com",
			password: "secret1",
			mockSetup: func(m *mocks.MockUserStorage) {
				m.EXPECT().
					UserGetByEmail(gomock.Any(), "alice@example.com").
					Return(stored, nil)
			},
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "wrong-pass",
			mockSetup: func(m *mocks.MockUserStorage) {
				m.EXPECT().
					UserGetByEmail(gomock.Any(), "alice@example.com").
					Return(stored, nil)
			},
			wantErr:     true,
			expectedErr: models.ErrUnauthorized,
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: "secret1",
			mockSetup: func(m *mocks.MockUserStorage) {
				m.EXPECT().
					UserGetByEmail(gomock.Any(), "ghost@example.com").
					Return(models.User{}, models.ErrUnfound)
			},
			wantErr:     true,
			expectedErr: models.ErrUnauthorized,
		},
		{
			name:        "missing credentials",
			email:       "",
			password:    "",
			mockSetup:   func(m *mocks.MockUserStorage) {},
			wantErr:     true,
			expectedErr: models.ErrInvalidData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := mocks.NewMockUserStorage(ctrl)
			tt.mockSetup(mockStorage)

			auth := NewAuthentication(mockStorage, newTestTokens(t))

			user, token, err := auth.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, stored.ID, user.ID)
		})
	}
}

// Wrong password and unknown email must be indistinguishable to the caller.
func TestAuthentication_Login_NoAccountEnumeration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	mockStorage := mocks.NewMockUserStorage(ctrl)
	mockStorage.EXPECT().
		UserGetByEmail(gomock.Any(), "alice@example.com").
		Return(models.User{ID: uuid.New(), PasswordHash: string(hash)}, nil)
	mockStorage.EXPECT().
		UserGetByEmail(gomock.Any(), "ghost@example.com").
		Return(models.User{}, models.ErrUnfound)

	auth := NewAuthentication(mockStorage, newTestTokens(t))

	_, _, errWrongPass := auth.Login(context.Background(), "alice@example.com", "wrong")
	_, _, errNoUser := auth.Login(context.Background(), "ghost@example.com", "wrong")

	require.Error(t, errWrongPass)
	require.Error(t, errNoUser)
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestAuthentication_ValidateAndGetUser(t *testing.T) {
	tokens := newTestTokens(t)
	userID := uuid.New()

	signed, err := tokens.Issue(userID)
	require.NoError(t, err)

	tests := []struct {
		name        string
		token       string
		mockSetup   func(m *mocks.MockUserStorage)
		wantErr     bool
		expectedErr error
	}{
		{
			name:  "valid token resolves the user",
			token: signed,
			mockSetup: func(m *mocks.MockUserStorage) {
				m.EXPECT().
					UserGetByID(gomock.Any(), userID).
					Return(models.User{ID: userID, Name: "Alice"}, nil)
			},
		},
		{
			name:        "invalid token",
			token:       "garbage",
			mockSetup:   func(m *mocks.MockUserStorage) {},
			wantErr:     true,
			expectedErr: models.ErrUnauthorized,
		},
		{
			name:  "user no longer exists",
			token: signed,
			mockSetup: func(m *mocks.MockUserStorage) {
				m.EXPECT().
					UserGetByID(gomock.Any(), userID).
					Return(models.User{}, models.ErrUnfound)
			},
			wantErr:     true,
			expectedErr: models.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := mocks.NewMockUserStorage(ctrl)
			tt.mockSetup(mockStorage)

			auth := NewAuthentication(mockStorage, tokens)

			user, err := auth.ValidateAndGetUser(context.Background(), tt.token)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, userID, user.ID)
		})
	}
}
