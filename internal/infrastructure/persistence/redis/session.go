package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/xiebiao/perpustakaan/pkg/errors"
)

// SessionStore 会话存储
// 设计说明：
// 1. 登录成功后记录用户会话，key: session:{user_id}
// 2. 支持Token黑名单（登出、强制下线），key: blacklist:{token}
// 3. 过期时间与Refresh Token一致，到期自动清理
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore 创建会话存储
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// SaveSession 保存用户会话
func (s *SessionStore) SaveSession(ctx context.Context, userID uint, token string, expire time.Duration) error {
	key := fmt.Sprintf("session:%d", userID)
	if err := s.client.Set(ctx, key, token, expire).Err(); err != nil {
		return apperrors.Wrap(err, "Gagal menyimpan sesi")
	}
	return nil
}

// DeleteSession 删除用户会话（登出）
func (s *SessionStore) DeleteSession(ctx context.Context, userID uint) error {
	key := fmt.Sprintf("session:%d", userID)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return apperrors.Wrap(err, "Gagal menghapus sesi")
	}
	return nil
}

// AddToBlacklist 把Token加入黑名单，ttl为Token剩余有效期
func (s *SessionStore) AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	key := fmt.Sprintf("blacklist:%s", token)
	if err := s.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return apperrors.Wrap(err, "Gagal memasukkan token ke blacklist")
	}
	return nil
}

// IsInBlacklist 检查Token是否已被拉黑
func (s *SessionStore) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	key := fmt.Sprintf("blacklist:%s", token)
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, apperrors.Wrap(err, "Gagal memeriksa blacklist token")
	}
	return n > 0, nil
}
