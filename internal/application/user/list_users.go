package user

import (
	"context"
	"time"

	"github.com/xiebiao/perpustakaan/internal/domain/user"
)

// ListUsersUseCase 用户列表用例（诊断用途）
type ListUsersUseCase struct {
	userService user.Service
}

// NewListUsersUseCase 创建用户列表用例
func NewListUsersUseCase(userService user.Service) *ListUsersUseCase {
	return &ListUsersUseCase{userService: userService}
}

// UserSummary 列表项：只暴露id、username、创建时间，密码哈希不出站
type UserSummary struct {
	IDUser    uint      `json:"id_user"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Execute 执行查询
func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]UserSummary, error) {
	users, err := uc.userService.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]UserSummary, len(users))
	for i, u := range users {
		summaries[i] = UserSummary{
			IDUser:    u.ID,
			Username:  u.Username,
			CreatedAt: u.CreatedAt,
		}
	}
	return summaries, nil
}
