package service

import (
	"errors"

	"blogapi/api/v1/request"
	"blogapi/api/v1/response"
	"blogapi/config"
	"blogapi/dao"
	"blogapi/internal/auth"
	"blogapi/internal/errcode"
	"blogapi/model"
	"blogapi/utils"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// AuthService bundles the user DAO, the token blacklist and the password
// helpers behind the register/login/logout flows.
type AuthService struct {
	userDAO *dao.UserDAO
	Session *auth.SessionManager
}

func NewAuthService(userDAO *dao.UserDAO, rdb *redis.Client) *AuthService {
	return &AuthService{
		userDAO: userDAO,
		Session: auth.NewSessionManager(rdb),
	}
}

// Register creates an account after two independent uniqueness checks.
// Username and email each fail with their own error kind. On success it
// issues a token straight away.
func (s *AuthService) Register(req *request.RegisterRequest) (*response.AuthResponse, error) {
	if _, err := s.userDAO.GetByUsername(req.Username); err == nil {
		return nil, errcode.New(errcode.UsernameExists)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.userDAO.GetByEmail(req.Email); err == nil {
		return nil, errcode.New(errcode.EmailExists)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	nickname := req.Nickname
	if nickname == "" {
		nickname = req.Username
	}
	user := &model.User{
		Username: req.Username,
		Password: hashed,
		Email:    req.Email,
		Nickname: nickname,
		Status:   model.UserStatusActive,
	}
	if err := s.userDAO.Create(user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// Login authenticates username/password. Unknown usernames and wrong
// passwords both yield the same InvalidCredentials kind so nothing leaks.
func (s *AuthService) Login(req *request.LoginRequest) (*response.AuthResponse, error) {
	user, err := s.userDAO.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.New(errcode.InvalidCredentials)
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return nil, errcode.New(errcode.InvalidCredentials)
	}
	if user.Status != model.UserStatusActive {
		return nil, errcode.Newf(errcode.UserNotFound, "User account is disabled")
	}
	return s.issueToken(user)
}

// Logout shadow-lists the raw token for whatever lifetime it has left. An
// already-expired token is accepted and simply a no-op.
func (s *AuthService) Logout(token string) error {
	claims, err := auth.ParseTokenAllowExpired(token)
	if err != nil {
		return errcode.New(errcode.TokenInvalid)
	}
	return s.Session.AddBlackList(token, claims.RemainingTTL())
}

// GetCurrentUser resolves the authenticated principal to its user row,
// failing when the account was deleted after the token was issued.
func (s *AuthService) GetCurrentUser(username string) (*model.User, error) {
	user, err := s.userDAO.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.New(errcode.UserNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issueToken(user *model.User) (*response.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	resp := response.NewAuthResponse(token, config.GlobalConfig.JWT.Expire, user)
	return &resp, nil
}
