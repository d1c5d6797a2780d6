package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/you-humble/shape-shop/internal/model"
	"github.com/you-humble/shape-shop/platform/logger"
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) (int64, error)
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type SessionIssuer interface {
	Issue(u *model.User) (string, time.Time, error)
}

type service struct {
	repo           UserRepository
	sessions       SessionIssuer
	admins         map[string]struct{}
	hashCost       int
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewUserService(
	repository UserRepository,
	sessions SessionIssuer,
	adminEmails []string,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		admins[e] = struct{}{}
	}

	return &service{
		repo:           repository,
		sessions:       sessions,
		admins:         admins,
		hashCost:       bcrypt.DefaultCost,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) Register(ctx context.Context, creds model.Credentials) (*model.User, error) {
	const op string = "user.service.Register"

	creds = creds.Normalize()
	log := logger.With(logger.String("email", creds.Email))

	if err := creds.Validate(); err != nil {
		log.Warn(ctx, "invalid credentials", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), svc.hashCost)
	if err != nil {
		log.Error(ctx, "hash password", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	_, admin := svc.admins[creds.Email]
	u := &model.User{
		Email:        creds.Email,
		PasswordHash: hash,
		IsAdmin:      admin,
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if _, err := svc.repo.Create(ctx, u); err != nil {
		log.Warn(ctx, "repository create user", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "user registered",
		logger.Int64("user_id", u.ID),
		logger.Bool("is_admin", u.IsAdmin),
	)
	return u, nil
}

// Login checks the password and issues a session token. Unknown emails and
// wrong passwords produce the same error.
func (svc *service) Login(ctx context.Context, creds model.Credentials) (*model.Session, error) {
	const op string = "user.service.Login"

	creds = creds.Normalize()
	log := logger.With(logger.String("email", creds.Email))

	if creds.Email == "" || creds.Password == "" {
		return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidCredentials)
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	u, err := svc.repo.UserByEmail(rdbCtx, creds.Email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			log.Warn(ctx, "login for unknown email")
			return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidCredentials)
		}
		log.Error(ctx, "repository user by email", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(creds.Password)); err != nil {
		log.Warn(ctx, "wrong password", logger.Int64("user_id", u.ID))
		return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidCredentials)
	}

	token, exp, err := svc.sessions.Issue(u)
	if err != nil {
		log.Error(ctx, "issue session", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.Session{Token: token, ExpiresAt: exp, User: u}, nil
}

func (svc *service) Users(ctx context.Context) ([]model.User, error) {
	const op string = "user.service.Users"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	users, err := svc.repo.List(ctx)
	if err != nil {
		logger.Error(ctx, "repository list users", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}
