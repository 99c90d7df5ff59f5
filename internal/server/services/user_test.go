package services

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/catalogkeeper/internal/common"
	"github.com/dmitrijs2005/catalogkeeper/internal/logging"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/auth"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/config"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T, rm *fakeRepoManager) (*UserService, *memImages) {
	t.Helper()
	db, mock := newSQLMockDB(t)
	mock.MatchExpectationsInOrder(false)
	for i := 0; i < 4; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
	}
	cfg := &config.Config{SecretKey: "k", SessionValidityDuration: time.Hour}
	img := newMemImages()
	return NewUserService(db, rm, img, cfg, logging.Discard()), img
}

func newAccountsFakes() *fakeRepoManager {
	return &fakeRepoManager{users: newFakeUsers(), profiles: newFakeProfiles()}
}

func TestSignup_CreatesUserAndProfile(t *testing.T) {
	rm := newAccountsFakes()
	s, _ := newUserService(t, rm)

	user, token, err := s.Signup(context.Background(), "alice", "a@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "secret123"))

	profile, err := s.Profile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, common.DefaultAvatar, profile.Picture)

	id, err := auth.GetUserIDFromToken(token, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
}

func TestSignup_DuplicateUsername(t *testing.T) {
	rm := newAccountsFakes()
	s, _ := newUserService(t, rm)

	_, _, err := s.Signup(context.Background(), "alice", "", "secret123")
	require.NoError(t, err)
	_, _, err = s.Signup(context.Background(), "alice", "", "secret123")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestSignup_ProfileErrorRollsBack(t *testing.T) {
	rm := newAccountsFakes()
	rm.profiles.createErr = errBoom{}

	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()
	s := NewUserService(db, rm, newMemImages(), &config.Config{SecretKey: "k", SessionValidityDuration: time.Hour}, logging.Discard())

	_, _, err := s.Signup(context.Background(), "alice", "", "secret123")
	assert.ErrorIs(t, err, errBoom{})
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin(t *testing.T) {
	rm := newAccountsFakes()
	s, _ := newUserService(t, rm)
	_, _, err := s.Signup(context.Background(), "alice", "", "secret123")
	require.NoError(t, err)

	tests := []struct {
		name, username, password string
		wantErr                  error
	}{
		{"ok", "alice", "secret123", nil},
		{"wrong password", "alice", "nope", common.ErrorUnauthorized},
		{"unknown user", "bob", "secret123", common.ErrorUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, token, err := s.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice", u.Username)

			authed, err := s.Authenticate(context.Background(), token)
			require.NoError(t, err)
			assert.Equal(t, u.ID, authed.ID)
		})
	}
}

func TestAuthenticate_BadToken(t *testing.T) {
	s, _ := newUserService(t, newAccountsFakes())

	_, err := s.Authenticate(context.Background(), "garbage")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	token, err := auth.GenerateToken(42, []byte("k"), time.Hour)
	require.NoError(t, err)
	_, err = s.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, common.ErrorUnauthorized, "token of a deleted user")
}

func TestChangePassword(t *testing.T) {
	rm := newAccountsFakes()
	s, _ := newUserService(t, rm)
	u, _, err := s.Signup(context.Background(), "alice", "", "secret123")
	require.NoError(t, err)

	err = s.ChangePassword(context.Background(), u.ID, "wrong", "newsecret1")
	assert.ErrorIs(t, err, common.ErrorInvalidPassword)
	assert.Nil(t, rm.users.password)

	require.NoError(t, s.ChangePassword(context.Background(), u.ID, "secret123", "newsecret1"))
	assert.True(t, auth.CheckPassword(rm.users.password, "newsecret1"))
}

func TestUpdateProfile_AccountRejectedProfileStillSaved(t *testing.T) {
	rm := newAccountsFakes()
	s, _ := newUserService(t, rm)
	u, _, err := s.Signup(context.Background(), "alice", "", "secret123")
	require.NoError(t, err)

	profile, err := s.Profile(context.Background(), u.ID)
	require.NoError(t, err)
	profile.JobTitle = "CEO"

	saved, err := s.UpdateProfile(context.Background(), profile, nil, nil)
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Equal(t, 1, rm.profiles.updates)
	assert.Equal(t, "CEO", rm.profiles.byUser[u.ID].JobTitle)

	rm.users.updateErr = common.ErrorAlreadyExists
	saved, err = s.UpdateProfile(context.Background(), profile, nil, &models.User{Username: "taken"})
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Equal(t, 2, rm.profiles.updates)
}

func TestUpdateProfile_SavesAccountAndPicture(t *testing.T) {
	rm := newAccountsFakes()
	s, img := newUserService(t, rm)
	u, _, err := s.Signup(context.Background(), "alice", "", "secret123")
	require.NoError(t, err)
	profile, err := s.Profile(context.Background(), u.ID)
	require.NoError(t, err)

	saved, err := s.UpdateProfile(context.Background(), profile, bytes.NewReader(pngBytes(t)), &models.User{Username: "alice2", Email: "a@b.co"})
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, u.ID, rm.users.updated.ID)
	assert.True(t, strings.HasPrefix(profile.Picture, "avatar/"))
	assert.Contains(t, img.data, profile.Picture)
}

func TestUpdateProfile_ProfileErrorStops(t *testing.T) {
	rm := newAccountsFakes()
	rm.profiles.updateErr = errBoom{}
	s, _ := newUserService(t, rm)

	_, err := s.UpdateProfile(context.Background(), &models.Profile{UserID: 1}, nil, &models.User{Username: "x"})
	assert.ErrorIs(t, err, errBoom{})
	assert.Nil(t, rm.users.updated)
}

func TestUpdateProfile_ProfileErrorLogsStoredPicture(t *testing.T) {
	rm := newAccountsFakes()
	rm.profiles.updateErr = errBoom{}
	db, _ := newSQLMockDB(t)
	img := newMemImages()
	var logs bytes.Buffer
	cfg := &config.Config{SecretKey: "k", SessionValidityDuration: time.Hour}
	s := NewUserService(db, rm, img, cfg, logging.New(&logs, "debug"))

	profile := &models.Profile{ID: 10, UserID: 1}
	_, err := s.UpdateProfile(context.Background(), profile, bytes.NewReader(pngBytes(t)), nil)
	assert.ErrorIs(t, err, errBoom{})

	require.Contains(t, img.data, profile.Picture)
	assert.Contains(t, logs.String(), "image stored but profile not saved")
	assert.Contains(t, logs.String(), profile.Picture)
}
