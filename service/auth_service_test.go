package service

import (
	"testing"

	"blogapi/api/v1/request"
	"blogapi/dao"
	"blogapi/internal/auth"
	"blogapi/internal/errcode"
	"blogapi/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	db := newTestDB(t)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewAuthService(dao.NewUserDAO(db), rdb), db
}

func register(t *testing.T, svc *AuthService, username, email string) {
	t.Helper()
	_, err := svc.Register(&request.RegisterRequest{
		Username: username,
		Password: "secret123",
		Email:    email,
	})
	require.NoError(t, err)
}

func TestRegisterIssuesToken(t *testing.T) {
	svc, _ := newAuthService(t)

	resp, err := svc.Register(&request.RegisterRequest{
		Username: "alice",
		Password: "secret123",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "alice", resp.User.Username)
	// nickname falls back to the username
	assert.Equal(t, "alice", resp.User.Nickname)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newAuthService(t)
	register(t, svc, "alice", "alice@example.com")

	_, err := svc.Register(&request.RegisterRequest{
		Username: "alice",
		Password: "secret123",
		Email:    "other@example.com",
	})
	assertCode(t, err, errcode.UsernameExists)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	register(t, svc, "alice", "alice@example.com")

	_, err := svc.Register(&request.RegisterRequest{
		Username: "bob",
		Password: "secret123",
		Email:    "alice@example.com",
	})
	assertCode(t, err, errcode.EmailExists)
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	register(t, svc, "alice", "alice@example.com")

	resp, err := svc.Login(&request.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newAuthService(t)
	register(t, svc, "alice", "alice@example.com")

	_, wrongPassword := svc.Login(&request.LoginRequest{Username: "alice", Password: "wrong"})
	assertCode(t, wrongPassword, errcode.InvalidCredentials)

	_, unknownUser := svc.Login(&request.LoginRequest{Username: "nobody", Password: "wrong"})
	assertCode(t, unknownUser, errcode.InvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, db := newAuthService(t)
	register(t, svc, "alice", "alice@example.com")

	require.NoError(t, db.Model(&model.User{}).
		Where("username = ?", "alice").
		Update("status", model.UserStatusDisabled).Error)

	_, err := svc.Login(&request.LoginRequest{Username: "alice", Password: "secret123"})
	assertCode(t, err, errcode.UserNotFound)
}

func TestLogoutBlacklistsToken(t *testing.T) {
	svc, _ := newAuthService(t)
	register(t, svc, "alice", "alice@example.com")

	resp, err := svc.Login(&request.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	in, err := svc.Session.InBlackList(resp.Token)
	require.NoError(t, err)
	assert.False(t, in)

	require.NoError(t, svc.Logout(resp.Token))

	in, err = svc.Session.InBlackList(resp.Token)
	require.NoError(t, err)
	assert.True(t, in)
}

func TestLogoutGarbageToken(t *testing.T) {
	svc, _ := newAuthService(t)
	assertCode(t, svc.Logout("not-a-jwt"), errcode.TokenInvalid)
}

func TestGetCurrentUser(t *testing.T) {
	svc, _ := newAuthService(t)
	register(t, svc, "alice", "alice@example.com")

	user, err := svc.GetCurrentUser("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = svc.GetCurrentUser("ghost")
	assertCode(t, err, errcode.UserNotFound)
}
