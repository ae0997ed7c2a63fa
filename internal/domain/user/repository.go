package user

import (
	"context"
)

// Repository 用户仓储接口
// 设计说明：
// 1. 接口定义在domain层（依赖倒置原则）
// 2. 具体实现在infrastructure/persistence/mysql层
// 3. 便于单元测试（Mock此接口）
type Repository interface {
	// Create 创建用户
	// 如果用户名已存在，返回ErrUsernameDuplicate
	Create(ctx context.Context, user *User) error

	// FindByID 根据ID查找用户
	// 如果不存在，返回ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByUsername 根据用户名查找用户
	// 如果不存在，返回ErrUsernameNotFound
	FindByUsername(ctx context.Context, username string) (*User, error)

	// ExistsByUsername 检查用户名是否被excludeID以外的用户占用
	// 用于更新场景（排除自己）；excludeID为0时检查全表
	ExistsByUsername(ctx context.Context, username string, excludeID uint) (bool, error)

	// Update 更新用户信息
	Update(ctx context.Context, user *User) error

	// List 返回全部用户（诊断用途，调用方负责剔除密码字段）
	List(ctx context.Context) ([]*User, error)
}
