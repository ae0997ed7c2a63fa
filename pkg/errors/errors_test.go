package errors

import (
	stderrors "errors"
	"testing"
)

// TestHTTPStatus 测试错误码到HTTP状态码的推导
func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		code int
		want int
	}{
		{"用户不存在", ErrCodeUserNotFound, 404},
		{"图书不存在", ErrCodeBookNotFound, 404},
		{"库存不足", ErrCodeInsufficientStock, 409},
		{"用户名重复", ErrCodeUsernameDuplicate, 409},
		{"参数错误", ErrCodeInvalidParams, 400},
		{"未登录", ErrCodeUnauthorized, 401},
		{"内部错误", ErrCodeInternal, 500},
		{"事务超时", ErrCodeServiceUnavailable, 503},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := New(c.code, "x").HTTPStatus()
			if got != c.want {
				t.Errorf("code %d: HTTPStatus() = %d, 期望 %d", c.code, got, c.want)
			}
		})
	}
}

// TestHTTPStatus_OutOfRange 非法错误码一律按500处理
func TestHTTPStatus_OutOfRange(t *testing.T) {
	if got := New(12345, "x").HTTPStatus(); got != 500 {
		t.Errorf("HTTPStatus() = %d, 期望 500", got)
	}
	if got := New(0, "x").HTTPStatus(); got != 500 {
		t.Errorf("HTTPStatus() = %d, 期望 500", got)
	}
}

// TestGetAppError 测试错误提取与兜底包装
func TestGetAppError(t *testing.T) {
	t.Run("AppError原样返回", func(t *testing.T) {
		err := New(ErrCodeBookNotFound, "Buku tidak ditemukan")
		got := GetAppError(err)
		if got.Code != ErrCodeBookNotFound {
			t.Errorf("Code = %d, 期望 %d", got.Code, ErrCodeBookNotFound)
		}
	})

	t.Run("包装后的AppError可以提取", func(t *testing.T) {
		inner := New(ErrCodeInsufficientStock, "Stok tidak mencukupi")
		wrapped := stderrors.Join(inner)
		got := GetAppError(wrapped)
		if got.Code != ErrCodeInsufficientStock {
			t.Errorf("Code = %d, 期望 %d", got.Code, ErrCodeInsufficientStock)
		}
	})

	t.Run("未知错误包装为内部错误", func(t *testing.T) {
		got := GetAppError(stderrors.New("driver: bad connection"))
		if got.Code != ErrCodeInternal {
			t.Errorf("Code = %d, 期望 %d", got.Code, ErrCodeInternal)
		}
		if got.Err == nil {
			t.Error("原始错误应保留在Err字段用于日志")
		}
	})
}

// TestWrap 包装系统错误后errors.Is仍可命中原始错误
func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(cause, "Kesalahan database")
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is应能找到被包装的原始错误")
	}
	if err.HTTPStatus() != 500 {
		t.Errorf("HTTPStatus() = %d, 期望 500", err.HTTPStatus())
	}
}
