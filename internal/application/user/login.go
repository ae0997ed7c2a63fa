package user

import (
	"context"
	"time"

	"github.com/xiebiao/perpustakaan/internal/domain/user"
	"github.com/xiebiao/perpustakaan/pkg/jwt"
	"github.com/xiebiao/perpustakaan/pkg/logger"
)

// SessionStore 会话存储接口（消费方定义，redis实现）
// 抽出接口是为了让用例在单元测试中不依赖真实Redis
type SessionStore interface {
	SaveSession(ctx context.Context, userID uint, token string, expire time.Duration) error
}

// LoginUseCase 用户登录用例
// 设计说明：
// 1. 验证用户名密码
// 2. 生成JWT Token对（服务端可验证签名，替代无法校验的随机Token）
// 3. 会话写入Redis，供登出/强制下线使用
type LoginUseCase struct {
	userService user.Service
	jwtManager  *jwt.Manager
	sessions    SessionStore
	sessionTTL  time.Duration
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(userService user.Service, jwtManager *jwt.Manager, sessions SessionStore, sessionTTL time.Duration) *LoginUseCase {
	return &LoginUseCase{
		userService: userService,
		jwtManager:  jwtManager,
		sessions:    sessions,
		sessionTTL:  sessionTTL,
	}
}

// LoginRequest 登录请求DTO
type LoginRequest struct {
	Username string
	Password string
}

// LoginResponse 登录响应DTO
type LoginResponse struct {
	IDUser       uint   `json:"id_user"`
	Username     string `json:"username"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	u, err := uc.userService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	pair, err := uc.jwtManager.GenerateToken(u.ID, u.Username)
	if err != nil {
		return nil, err
	}

	// 会话记录失败不阻断登录：Token本身自带签名可独立验证
	if err := uc.sessions.SaveSession(ctx, u.ID, pair.AccessToken, uc.sessionTTL); err != nil {
		log := logger.Get()
		log.Warn().Err(err).Uint("user_id", u.ID).Msg("failed to save session")
	}

	return &LoginResponse{
		IDUser:       u.ID,
		Username:     u.Username,
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
