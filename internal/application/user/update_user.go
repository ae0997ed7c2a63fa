package user

import (
	"context"

	"github.com/xiebiao/perpustakaan/internal/domain/user"
)

// UpdateUserUseCase 更新用户用例（改用户名/密码）
type UpdateUserUseCase struct {
	userService user.Service
}

// NewUpdateUserUseCase 创建更新用户用例
func NewUpdateUserUseCase(userService user.Service) *UpdateUserUseCase {
	return &UpdateUserUseCase{userService: userService}
}

// UpdateUserRequest 更新请求DTO
// 指针字段区分"未提交"与"提交了空值"
type UpdateUserRequest struct {
	IDUser   uint
	Username *string
	Password *string
}

// UpdateUserResponse 更新响应DTO
type UpdateUserResponse struct {
	IDUser   uint   `json:"id_user"`
	Username string `json:"username"`
}

// Execute 执行更新
func (uc *UpdateUserUseCase) Execute(ctx context.Context, req UpdateUserRequest) (*UpdateUserResponse, error) {
	u, err := uc.userService.UpdateUser(ctx, req.IDUser, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	return &UpdateUserResponse{
		IDUser:   u.ID,
		Username: u.Username,
	}, nil
}
