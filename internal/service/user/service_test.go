package service

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/you-humble/shape-shop/internal/model"
	"github.com/you-humble/shape-shop/internal/service/mocks"
)

func newTestSvc(t *testing.T, admins ...string) (*service, *mocks.MockUserRepository, *mocks.MockSessionIssuer) {
	repo := mocks.NewMockUserRepository(t)
	sessions := mocks.NewMockSessionIssuer(t)

	svc := NewUserService(repo, sessions, admins, time.Second, time.Second)
	svc.hashCost = bcrypt.MinCost

	return svc, repo, sessions
}

func TestServiceRegister(t *testing.T) {
	t.Parallel()

	t.Run("admin email is promoted", func(t *testing.T) {
		t.Parallel()

		svc, repo, _ := newTestSvc(t, "boss@shop.test")
		repo.
			On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
				return u.Email == "boss@shop.test" && u.IsAdmin &&
					bcrypt.CompareHashAndPassword(u.PasswordHash, []byte("correct horse")) == nil
			})).
			Run(func(args mock.Arguments) { args.Get(1).(*model.User).ID = 1 }).
			Return(int64(1), nil).
			Once()

		u, err := svc.Register(context.Background(), model.Credentials{
			Email:    "  Boss@Shop.test ",
			Password: "correct horse",
		})
		require.NoError(t, err)
		assert.True(t, u.IsAdmin)
		assert.Equal(t, int64(1), u.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		svc, repo, _ := newTestSvc(t)
		repo.On("Create", mock.Anything, mock.Anything).Return(int64(0), model.ErrUserExists).Once()

		_, err := svc.Register(context.Background(), model.Credentials{
			Email:    gofakeit.Email(),
			Password: gofakeit.Password(true, true, true, false, false, 12),
		})
		assert.ErrorIs(t, err, model.ErrUserExists)
	})

	t.Run("short password", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestSvc(t)
		_, err := svc.Register(context.Background(), model.Credentials{Email: gofakeit.Email(), Password: "short"})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func TestServiceLogin(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &model.User{ID: 9, Email: "jane@shop.test", PasswordHash: hash}
	exp := time.Now().Add(time.Hour)

	type testCase struct {
		name   string
		creds  model.Credentials
		setup  func(repo *mocks.MockUserRepository, sessions *mocks.MockSessionIssuer)
		assert func(t *testing.T, s *model.Session, err error)
	}

	tests := []testCase{
		{
			name:  "success",
			creds: model.Credentials{Email: "JANE@shop.test", Password: "s3cret-pass"},
			setup: func(repo *mocks.MockUserRepository, sessions *mocks.MockSessionIssuer) {
				repo.On("UserByEmail", mock.Anything, "jane@shop.test").Return(stored, nil).Once()
				sessions.On("Issue", stored).Return("token", exp, nil).Once()
			},
			assert: func(t *testing.T, s *model.Session, err error) {
				require.NoError(t, err)
				assert.Equal(t, "token", s.Token)
				assert.Equal(t, exp, s.ExpiresAt)
				assert.Equal(t, int64(9), s.User.ID)
			},
		},
		{
			name:  "wrong password",
			creds: model.Credentials{Email: "jane@shop.test", Password: "nope-nope"},
			setup: func(repo *mocks.MockUserRepository, sessions *mocks.MockSessionIssuer) {
				repo.On("UserByEmail", mock.Anything, "jane@shop.test").Return(stored, nil).Once()
			},
			assert: func(t *testing.T, s *model.Session, err error) {
				assert.ErrorIs(t, err, model.ErrInvalidCredentials)
				assert.Nil(t, s)
			},
		},
		{
			name:  "unknown email",
			creds: model.Credentials{Email: "ghost@shop.test", Password: "whatever1"},
			setup: func(repo *mocks.MockUserRepository, sessions *mocks.MockSessionIssuer) {
				repo.On("UserByEmail", mock.Anything, "ghost@shop.test").Return(nil, model.ErrUserNotFound).Once()
			},
			assert: func(t *testing.T, s *model.Session, err error) {
				assert.ErrorIs(t, err, model.ErrInvalidCredentials)
			},
		},
		{
			name:  "empty credentials",
			creds: model.Credentials{},
			assert: func(t *testing.T, s *model.Session, err error) {
				assert.ErrorIs(t, err, model.ErrInvalidCredentials)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, repo, sessions := newTestSvc(t)
			if tt.setup != nil {
				tt.setup(repo, sessions)
			}

			s, err := svc.Login(context.Background(), tt.creds)
			tt.assert(t, s, err)
		})
	}
}
