package user

import (
	"context"
	"time"

	"github.com/xiebiao/perpustakaan/internal/domain/user"
)

// RegisterUseCase 用户注册用例
type RegisterUseCase struct {
	userService user.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service) *RegisterUseCase {
	return &RegisterUseCase{userService: userService}
}

// RegisterRequest 注册请求DTO
type RegisterRequest struct {
	Username string
	Password string
}

// RegisterResponse 注册响应DTO
// 只回传id和username，密码哈希永远不出站
type RegisterResponse struct {
	IDUser    uint      `json:"id_user"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"-"`
}

// Execute 执行注册
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	u, err := uc.userService.Register(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	return &RegisterResponse{
		IDUser:    u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}, nil
}
