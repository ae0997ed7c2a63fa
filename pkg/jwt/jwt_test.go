package jwt

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/xiebiao/perpustakaan/pkg/errors"
)

const testSecret = "test-secret-key"

// TestGenerateAndParse 测试Token生成与解析的完整往返
func TestGenerateAndParse(t *testing.T) {
	m := NewManager(testSecret, time.Hour, 24*time.Hour)

	pair, err := m.GenerateToken(42, "budi")
	if err != nil {
		t.Fatalf("GenerateToken失败: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("Token对不应为空")
	}
	if pair.ExpiresIn != 3600 {
		t.Errorf("ExpiresIn = %d, 期望 3600", pair.ExpiresIn)
	}

	claims, err := m.ParseToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("ParseToken失败: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, 期望 42", claims.UserID)
	}
	if claims.Username != "budi" {
		t.Errorf("Username = %q, 期望 %q", claims.Username, "budi")
	}
}

// TestParseToken_WrongSecret 密钥不匹配的Token必须拒绝
func TestParseToken_WrongSecret(t *testing.T) {
	m1 := NewManager(testSecret, time.Hour, 24*time.Hour)
	m2 := NewManager("another-secret", time.Hour, 24*time.Hour)

	pair, err := m1.GenerateToken(1, "budi")
	if err != nil {
		t.Fatalf("GenerateToken失败: %v", err)
	}

	_, err = m2.ParseToken(pair.AccessToken)
	if !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Errorf("err = %v, 期望 ErrInvalidToken", err)
	}
}

// TestParseToken_Expired 过期Token返回专门的过期错误（401）
func TestParseToken_Expired(t *testing.T) {
	m := NewManager(testSecret, -time.Minute, 24*time.Hour)

	pair, err := m.GenerateToken(1, "budi")
	if err != nil {
		t.Fatalf("GenerateToken失败: %v", err)
	}

	_, err = m.ParseToken(pair.AccessToken)
	if !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("err = %v, 期望 ErrTokenExpired", err)
	}
}

// TestParseToken_Garbage 乱写的字符串不是合法Token
func TestParseToken_Garbage(t *testing.T) {
	m := NewManager(testSecret, time.Hour, 24*time.Hour)

	_, err := m.ParseToken("not-a-jwt")
	if !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Errorf("err = %v, 期望 ErrInvalidToken", err)
	}
}

// TestRefreshAccessToken 用Refresh Token换取新的Access Token
func TestRefreshAccessToken(t *testing.T) {
	m := NewManager(testSecret, time.Hour, 24*time.Hour)

	pair, err := m.GenerateToken(7, "siti")
	if err != nil {
		t.Fatalf("GenerateToken失败: %v", err)
	}

	newToken, err := m.RefreshAccessToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshAccessToken失败: %v", err)
	}

	claims, err := m.ParseToken(newToken)
	if err != nil {
		t.Fatalf("新Token解析失败: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, 期望 7", claims.UserID)
	}
}
