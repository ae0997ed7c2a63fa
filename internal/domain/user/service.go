package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/perpustakaan/pkg/errors"
)

// Service 用户领域服务
// 设计说明：
// 1. Service包含不属于单个实体的业务逻辑（密码加密、唯一性校验）
// 2. Service依赖Repository接口，不依赖具体实现（依赖倒置）
// 3. Service不处理HTTP请求，只处理业务逻辑
type Service interface {
	// Register 用户注册
	// 业务规则：username≥3字符，password≥6字符，用户名全局唯一
	Register(ctx context.Context, username, password string) (*User, error)

	// Authenticate 验证用户名密码，成功返回用户
	Authenticate(ctx context.Context, username, password string) (*User, error)

	// UpdateUser 部分更新用户名/密码
	// newUsername、newPassword为nil表示不更新该字段
	UpdateUser(ctx context.Context, id uint, newUsername, newPassword *string) (*User, error)

	// ListUsers 返回全部用户
	ListUsers(ctx context.Context) ([]*User, error)
}

type service struct {
	repo Repository
}

// NewService 创建用户服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register 用户注册
// 1. 长度校验
// 2. 用户名唯一性预检（最终由数据库UNIQUE索引兜底）
// 3. 密码bcrypt加密（自动加盐，相同密码每次结果不同）
func (s *service) Register(ctx context.Context, username, password string) (*User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	if len(username) < 3 {
		return nil, ErrUsernameTooShort
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	exists, err := s.repo.ExistsByUsername(ctx, username, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameDuplicate
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(err, "Gagal mengenkripsi password")
	}

	u := NewUser(username, string(hashedPassword))
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err // Repository已转换为业务错误
	}

	return u, nil
}

// Authenticate 验证用户名密码
// 用户名不存在→ErrUsernameNotFound(404)，密码错误→ErrInvalidPassword(401)
func (s *service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return nil, apperrors.ErrInvalidPassword
		}
		return nil, apperrors.Wrap(err, "Gagal memverifikasi password")
	}

	return u, nil
}

// UpdateUser 部分更新
// 提供哪个字段就校验并更新哪个字段；一个都不给返回ErrNothingToUpdate
func (s *service) UpdateUser(ctx context.Context, id uint, newUsername, newPassword *string) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if newUsername == nil && newPassword == nil {
		return nil, ErrNothingToUpdate
	}

	if newUsername != nil {
		if len(*newUsername) < 3 {
			return nil, ErrUsernameTooShort
		}
		// 唯一性检查要排除自己，否则提交原用户名也会报冲突
		exists, err := s.repo.ExistsByUsername(ctx, *newUsername, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrUsernameDuplicate
		}
		u.ChangeUsername(*newUsername)
	}

	if newPassword != nil {
		if len(*newPassword) < 6 {
			return nil, ErrPasswordTooShort
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*newPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperrors.Wrap(err, "Gagal mengenkripsi password")
		}
		u.ChangePassword(string(hashedPassword))
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// ListUsers 返回全部用户
func (s *service) ListUsers(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}
