package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/xiebiao/perpustakaan/internal/domain/user"
	apperrors "github.com/xiebiao/perpustakaan/pkg/errors"
	"github.com/xiebiao/perpustakaan/pkg/jwt"
)

// fakeUserService 固定一个已注册用户budi/rahasia123
type fakeUserService struct{}

func (fakeUserService) Register(_ context.Context, _, _ string) (*user.User, error) {
	return nil, nil
}

func (fakeUserService) Authenticate(_ context.Context, username, password string) (*user.User, error) {
	if username != "budi" {
		return nil, user.ErrUsernameNotFound
	}
	hashed, _ := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	if bcrypt.CompareHashAndPassword(hashed, []byte(password)) != nil {
		return nil, apperrors.ErrInvalidPassword
	}
	return &user.User{ID: 42, Username: "budi", Password: string(hashed)}, nil
}

func (fakeUserService) UpdateUser(_ context.Context, _ uint, _, _ *string) (*user.User, error) {
	return nil, nil
}

func (fakeUserService) ListUsers(_ context.Context) ([]*user.User, error) {
	return nil, nil
}

// fakeSessionStore 记录调用，可注入失败
type fakeSessionStore struct {
	saved int
	err   error
}

func (f *fakeSessionStore) SaveSession(_ context.Context, _ uint, _ string, _ time.Duration) error {
	f.saved++
	return f.err
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	jwtManager := jwt.NewManager("test-secret", time.Hour, 24*time.Hour)

	t.Run("登录成功返回可验证的Token", func(t *testing.T) {
		sessions := &fakeSessionStore{}
		uc := NewLoginUseCase(fakeUserService{}, jwtManager, sessions, time.Hour)

		resp, err := uc.Execute(ctx, LoginRequest{Username: "budi", Password: "rahasia123"})
		require.NoError(t, err)

		assert.Equal(t, uint(42), resp.IDUser)
		assert.Equal(t, 1, sessions.saved)

		claims, err := jwtManager.ParseToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, "budi", claims.Username)
	})

	t.Run("会话写入失败不阻断登录", func(t *testing.T) {
		sessions := &fakeSessionStore{err: errors.New("redis down")}
		uc := NewLoginUseCase(fakeUserService{}, jwtManager, sessions, time.Hour)

		resp, err := uc.Execute(ctx, LoginRequest{Username: "budi", Password: "rahasia123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("密码错误", func(t *testing.T) {
		uc := NewLoginUseCase(fakeUserService{}, jwtManager, &fakeSessionStore{}, time.Hour)

		_, err := uc.Execute(ctx, LoginRequest{Username: "budi", Password: "salah"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("用户名不存在", func(t *testing.T) {
		uc := NewLoginUseCase(fakeUserService{}, jwtManager, &fakeSessionStore{}, time.Hour)

		_, err := uc.Execute(ctx, LoginRequest{Username: "siti", Password: "rahasia123"})
		assert.ErrorIs(t, err, user.ErrUsernameNotFound)
	})
}
