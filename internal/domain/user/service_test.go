package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/perpustakaan/pkg/errors"
)

// fakeRepository 内存用户仓储
type fakeRepository struct {
	users  map[uint]*User
	nextID uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: make(map[uint]*User), nextID: 1}
}

func (f *fakeRepository) Create(_ context.Context, u *User) error {
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return ErrUsernameDuplicate
		}
	}
	u.ID = f.nextID
	f.nextID++
	clone := *u
	f.users[u.ID] = &clone
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id uint) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeRepository) FindByUsername(_ context.Context, username string) (*User, error) {
	for _, u := range f.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrUsernameNotFound
}

func (f *fakeRepository) ExistsByUsername(_ context.Context, username string, excludeID uint) (bool, error) {
	for _, u := range f.users {
		if u.Username == username && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) Update(_ context.Context, u *User) error {
	if _, ok := f.users[u.ID]; !ok {
		return ErrUserNotFound
	}
	clone := *u
	f.users[u.ID] = &clone
	return nil
}

func (f *fakeRepository) List(_ context.Context) ([]*User, error) {
	out := make([]*User, 0, len(f.users))
	for _, u := range f.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("正常注册且密码被加密", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		u, err := svc.Register(ctx, "budi", "rahasia123")
		require.NoError(t, err)
		assert.NotEqual(t, "rahasia123", u.Password, "密码不能以明文入库")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("rahasia123")))
	})

	t.Run("用户名重复", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		_, err := svc.Register(ctx, "budi", "rahasia123")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "budi", "lainlain456")
		assert.ErrorIs(t, err, ErrUsernameDuplicate)
	})

	t.Run("用户名太短", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		_, err := svc.Register(ctx, "ab", "rahasia123")
		assert.ErrorIs(t, err, ErrUsernameTooShort)
	})

	t.Run("密码太短", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		_, err := svc.Register(ctx, "budi", "12345")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("缺少凭证", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		_, err := svc.Register(ctx, "", "")
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository())
	_, err := svc.Register(ctx, "budi", "rahasia123")
	require.NoError(t, err)

	t.Run("正确的用户名密码", func(t *testing.T) {
		u, err := svc.Authenticate(ctx, "budi", "rahasia123")
		require.NoError(t, err)
		assert.Equal(t, "budi", u.Username)
	})

	t.Run("密码错误返回401类错误", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "budi", "salah")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("用户名不存在返回404类错误", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "siti", "rahasia123")
		assert.ErrorIs(t, err, ErrUsernameNotFound)
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (Service, *User) {
		t.Helper()
		svc := NewService(newFakeRepository())
		u, err := svc.Register(ctx, "budi", "rahasia123")
		require.NoError(t, err)
		return svc, u
	}

	strptr := func(s string) *string { return &s }

	t.Run("只改用户名", func(t *testing.T) {
		svc, u := seed(t)
		updated, err := svc.UpdateUser(ctx, u.ID, strptr("budiman"), nil)
		require.NoError(t, err)
		assert.Equal(t, "budiman", updated.Username)
	})

	t.Run("只改密码", func(t *testing.T) {
		svc, u := seed(t)
		_, err := svc.UpdateUser(ctx, u.ID, nil, strptr("barubaru"))
		require.NoError(t, err)

		_, err = svc.Authenticate(ctx, "budi", "barubaru")
		assert.NoError(t, err)
	})

	t.Run("一个字段都不提交", func(t *testing.T) {
		svc, u := seed(t)
		_, err := svc.UpdateUser(ctx, u.ID, nil, nil)
		assert.ErrorIs(t, err, ErrNothingToUpdate)
	})

	t.Run("提交原用户名不算冲突", func(t *testing.T) {
		svc, u := seed(t)
		_, err := svc.UpdateUser(ctx, u.ID, strptr("budi"), nil)
		assert.NoError(t, err)
	})

	t.Run("改成别人的用户名报冲突", func(t *testing.T) {
		svc, u := seed(t)
		_, err := svc.Register(ctx, "siti", "rahasia123")
		require.NoError(t, err)

		_, err = svc.UpdateUser(ctx, u.ID, strptr("siti"), nil)
		assert.ErrorIs(t, err, ErrUsernameDuplicate)
	})

	t.Run("不存在的用户", func(t *testing.T) {
		svc, _ := seed(t)
		_, err := svc.UpdateUser(ctx, 999, strptr("abc"), nil)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
