package user

import (
	"time"
)

// User 用户实体（聚合根）
// 设计说明：
// 1. Password保存bcrypt哈希值，任何出站DTO都不得携带该字段
// 2. 领域实体不依赖GORM tag（infrastructure层的Repository实现时会处理映射）
type User struct {
	ID        uint
	Username  string
	Password  string // bcrypt哈希值
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(username, hashedPassword string) *User {
	now := time.Now()
	return &User{
		Username:  username,
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ChangeUsername 更新用户名（领域行为）
func (u *User) ChangeUsername(username string) {
	u.Username = username
	u.UpdatedAt = time.Now()
}

// ChangePassword 更新密码哈希（领域行为）
func (u *User) ChangePassword(hashedPassword string) {
	u.Password = hashedPassword
	u.UpdatedAt = time.Now()
}
