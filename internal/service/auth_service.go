package service

import (
	"errors"

	"error_book_backend/internal/config"
	"error_book_backend/internal/model"
	"error_book_backend/internal/repository"
	"error_book_backend/internal/util"
	"error_book_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenPair 登录与刷新接口返回的令牌对
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"` // access token 有效期（秒）
}

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// Register 创建新用户。唯一性由数据库约束保证，
// 冲突在仓储层翻译为 AlreadyExists。
func (s *AuthService) Register(username, email, password string) (*model.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         model.RoleStudent,
		IsActive:     true,
	}

	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 支持用户名或邮箱登录，失败时不区分用户不存在与密码错误
func (s *AuthService) Login(usernameOrEmail, password string) (*TokenPair, error) {
	user, err := s.UserRepo.FindByUsernameOrEmail(usernameOrEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewAuthenticationError("用户名或密码错误")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, util.NewAuthenticationError("用户名或密码错误")
	}

	if !user.IsActive {
		return nil, util.NewAuthenticationError("用户已被禁用")
	}

	pair, err := s.issueTokenPair(user)
	if err != nil {
		return nil, err
	}

	// 登录时间仅作记录，写入失败不影响登录结果
	if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
		logger.Log.Warn("failed to record last login",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
	}
	return pair, nil
}

// Refresh 校验刷新令牌并重新签发令牌对。令牌类型必须为 refresh。
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := util.ParseToken(refreshToken, s.Cfg.JWT.Secret)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != util.TokenTypeRefresh {
		return nil, util.NewInvalidToken()
	}

	user, err := s.UserRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewAuthenticationError("用户不存在或已被禁用")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, util.NewAuthenticationError("用户不存在或已被禁用")
	}

	return s.issueTokenPair(user)
}

func (s *AuthService) issueTokenPair(user *model.User) (*TokenPair, error) {
	accessToken, err := util.GenerateAccessToken(user, s.Cfg.JWT.Secret, s.Cfg.JWT.AccessExpireTime)
	if err != nil {
		return nil, err
	}

	refreshToken, err := util.GenerateRefreshToken(user, s.Cfg.JWT.Secret, s.Cfg.JWT.RefreshExpireTime)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    int(s.Cfg.JWT.AccessExpireTime.Seconds()),
	}, nil
}

// UpdateProfileInput 个人资料部分更新，nil 字段不修改
type UpdateProfileInput struct {
	Nickname  *string `json:"nickname"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

func (s *AuthService) UpdateProfile(user *model.User, input UpdateProfileInput) (*model.User, error) {
	if input.Nickname != nil {
		user.Nickname = *input.Nickname
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
