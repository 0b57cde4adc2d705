package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mall_admin_server/internal/model"
	"mall_admin_server/internal/repository"
	"mall_admin_server/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ==================== AuthService 后台认证服务 ====================

// AuthService 管理后台登录与令牌服务
type AuthService struct {
	userRepo repository.SysUserRepository
	cfg      config.JWTConfig
}

// NewAuthService 创建认证服务
func NewAuthService(userRepo repository.SysUserRepository, cfg config.JWTConfig) *AuthService {
	return &AuthService{userRepo: userRepo, cfg: cfg}
}

// Claims 管理端令牌载荷
type Claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// LoginResult 登录结果
type LoginResult struct {
	Token    string `json:"token"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

// Login 账号密码登录，签发访问令牌
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewBusinessError(400, "账号或密码错误")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, NewBusinessError(400, "账号或密码错误")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("签发令牌失败: %w", err)
	}

	if err := s.userRepo.TouchLogin(ctx, user.ID); err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Nickname: user.Nickname,
		Role:     user.Role,
	}, nil
}

// CreateUser 创建后台账号
func (s *AuthService) CreateUser(ctx context.Context, username, password, nickname, role string) (*model.SysUser, error) {
	if username == "" || password == "" {
		return nil, NewValidationError("username", "账号和密码不能为空")
	}
	if len(password) < 6 {
		return nil, NewValidationError("password", "密码长度不能小于6位")
	}
	if exist, err := s.userRepo.GetByUsername(ctx, username); err == nil && exist != nil {
		return nil, NewBusinessError(400, "账号已存在")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %w", err)
	}

	user := &model.SysUser{
		Username: username,
		Password: string(hash),
		Nickname: nickname,
		Role:     role,
	}
	if user.Role == "" {
		user.Role = "admin"
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("创建账号失败: %w", err)
	}
	return user, nil
}

// issueToken 签发 HS256 访问令牌
func (s *AuthService) issueToken(user *model.SysUser) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.AccessTTLHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

// ParseToken 解析并校验访问令牌
func (s *AuthService) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("不支持的签名算法: %v", t.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("令牌无效")
	}
	return claims, nil
}
