// Package services contains the server-side business logic: account and
// session handling, owner-scoped catalog management and the public welcome
// page.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/catalogkeeper/internal/common"
	"github.com/dmitrijs2005/catalogkeeper/internal/dbx"
	"github.com/dmitrijs2005/catalogkeeper/internal/logging"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/auth"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/config"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/images"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/repositories/repomanager"
)

const avatarPrefix = "avatar"

// UserService provides the account operations: signup, login, session
// resolution, password change and the profile page.
type UserService struct {
	db                      *sql.DB
	repomanager             repomanager.RepositoryManager
	images                  images.Store
	logger                  logging.Logger
	jwtSecret               []byte
	sessionValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, img images.Store, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		db:                      db,
		repomanager:             m,
		images:                  img,
		logger:                  logger.With("module", "users"),
		jwtSecret:               []byte(cfg.SecretKey),
		sessionValidityDuration: cfg.SessionValidityDuration,
	}
}

// Signup creates the user together with its empty profile and returns a
// session token. A taken username yields common.ErrorAlreadyExists.
func (s *UserService) Signup(ctx context.Context, username, email, password string) (*models.User, string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{Username: username, Email: email, PasswordHash: hash}
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Users(tx).Create(ctx, user); err != nil {
			return err
		}
		_, err := s.repomanager.Profiles(tx).Create(ctx, user.ID)
		return err
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	s.logger.Info(ctx, "user signed up", "user_id", user.ID)
	return user, token, nil
}

// Login checks the credentials and returns a session token. Unknown users
// and wrong passwords both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate resolves a session token to its user.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	id, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}
	return user, nil
}

// ChangePassword replaces the password of userID after checking the current
// one; a mismatch yields common.ErrorInvalidPassword.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.PasswordHash, oldPassword) {
		return common.ErrorInvalidPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return repo.UpdatePassword(ctx, userID, hash)
}

func (s *UserService) Profile(ctx context.Context, userID int64) (*models.Profile, error) {
	return s.repomanager.Profiles(s.db).GetByUserID(ctx, userID)
}

// UpdateProfile saves profile and then, when account is non-nil, the
// account fields of the user. The two writes are independent: a rejected
// account update does not undo the profile and is not an error. The result
// reports whether the account was saved.
func (s *UserService) UpdateProfile(ctx context.Context, profile *models.Profile, picture io.Reader, account *models.User) (bool, error) {
	if picture != nil {
		data, err := images.Process(picture)
		if err != nil {
			return false, err
		}
		key := images.NewKey(avatarPrefix)
		if err := s.images.Put(ctx, key, data); err != nil {
			return false, fmt.Errorf("store image: %w", err)
		}
		profile.Picture = key
	}

	if err := s.repomanager.Profiles(s.db).Update(ctx, profile); err != nil {
		if picture != nil {
			s.logger.Error(ctx, "image stored but profile not saved", "key", profile.Picture, "user_id", profile.UserID, "error", err)
		}
		return false, err
	}

	if account == nil {
		return false, nil
	}
	account.ID = profile.UserID
	if err := s.repomanager.Users(s.db).UpdateAccount(ctx, account); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			s.logger.Info(ctx, "account update skipped, username taken", "user_id", account.ID)
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *UserService) generateToken(userID int64) (string, error) {
	token, err := auth.GenerateToken(userID, s.jwtSecret, s.sessionValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
