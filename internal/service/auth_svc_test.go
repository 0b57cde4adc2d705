package service

import (
	"context"
	"testing"

	"mall_admin_server/internal/model"
	"mall_admin_server/internal/repository"
	"mall_admin_server/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ==================== 测试辅助 ====================

func setupAuthSvcTest(t *testing.T) *AuthService {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "连接测试数据库失败")
	require.NoError(t, db.AutoMigrate(&model.SysUser{}), "建表失败")

	return NewAuthService(repository.NewSysUserRepository(db), config.JWTConfig{
		SecretKey:      "test-secret",
		AccessTTLHours: 2,
		Issuer:         "mall-admin",
	})
}

// ==================== 登录与令牌 ====================

func TestLoginIssuesParsableToken(t *testing.T) {
	svc := setupAuthSvcTest(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "admin", "secret-pass", "管理员", "")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role, "缺省角色应为 admin")
	assert.NotEqual(t, "secret-pass", user.Password, "密码必须散列存储")

	result, err := svc.Login(ctx, "admin", "secret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	claims, err := svc.ParseToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "mall-admin", claims.Issuer)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := setupAuthSvcTest(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "admin", "secret-pass", "管理员", "")
	require.NoError(t, err)

	// 账号不存在与密码错误返回同一提示，不泄露账号是否存在
	_, errNoUser := svc.Login(ctx, "ghost", "secret-pass")
	_, errBadPass := svc.Login(ctx, "admin", "wrong-pass")
	require.Error(t, errNoUser)
	require.Error(t, errBadPass)
	assert.Equal(t, errNoUser.Error(), errBadPass.Error())
}

func TestCreateUserValidation(t *testing.T) {
	svc := setupAuthSvcTest(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "admin", "12345", "", "")
	assert.True(t, IsValidationError(err), "过短密码应报参数校验错误")

	_, err = svc.CreateUser(ctx, "admin", "secret-pass", "", "")
	require.NoError(t, err)
	_, err = svc.CreateUser(ctx, "admin", "another-pass", "", "")
	assert.Error(t, err, "重复账号应被拒绝")
}

func TestParseTokenRejectsForgedSignature(t *testing.T) {
	svc := setupAuthSvcTest(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "admin", "secret-pass", "", "")
	require.NoError(t, err)
	result, err := svc.Login(ctx, "admin", "secret-pass")
	require.NoError(t, err)

	other := NewAuthService(nil, config.JWTConfig{SecretKey: "other-secret", AccessTTLHours: 2})
	_, err = other.ParseToken(result.Token)
	assert.Error(t, err, "异钥签名的令牌应被拒绝")
}
