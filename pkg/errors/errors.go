package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型，编码规则：HTTP状态码*100+两位业务序号
// 2. Message是用户友好的提示信息（面向印尼语前端）
// 3. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus 从业务错误码推导HTTP状态码
// 编码规则保证 Code/100 就是对应的HTTP状态码
// 例如 40401(用户不存在) → 404，40902(库存不足) → 409
func (e *AppError) HTTPStatus() int {
	status := e.Code / 100
	if status < 400 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf 格式化创建AppError
func Newf(code int, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：Code = HTTP状态码*100 + 两位业务序号
// - 400xx: 参数/业务规则校验失败
// - 401xx: 认证失败
// - 404xx: 资源不存在
// - 409xx: 冲突（重复记录、库存不足）
// - 503xx: 服务暂时不可用（事务超时）
// - 500xx: 服务端错误

const (
	// 参数错误（40000-40099）
	ErrCodeInvalidParams = 40000 // 参数错误(通用)
	ErrCodeBindError     = 40001 // 参数绑定失败

	// 认证授权错误（40100-40199）
	ErrCodeUnauthorized    = 40100 // 未登录
	ErrCodeInvalidToken    = 40101 // Token无效
	ErrCodeTokenExpired    = 40102 // Token过期
	ErrCodeInvalidPassword = 40103 // 密码错误

	// 资源错误（40400-40499）
	ErrCodeNotFound     = 40400 // 资源不存在(通用)
	ErrCodeUserNotFound = 40401 // 用户不存在
	ErrCodeBookNotFound = 40402 // 图书不存在
	ErrCodeLoanNotFound = 40403 // 借阅记录不存在

	// 冲突错误（40900-40999）
	ErrCodeDuplicateEntry    = 40900 // 重复记录(通用)
	ErrCodeUsernameDuplicate = 40901 // 用户名已存在
	ErrCodeInsufficientStock = 40902 // 库存不足

	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误

	// 服务暂时不可用（50300-50399）
	ErrCodeServiceUnavailable = 50300 // 事务超时等临时故障
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal      = New(ErrCodeInternal, "Terjadi kesalahan pada server")
	ErrDatabaseError = New(ErrCodeDatabaseError, "Kesalahan database")
	ErrRedisError    = New(ErrCodeRedisError, "Kesalahan layanan cache")

	// 认证授权
	ErrUnauthorized    = New(ErrCodeUnauthorized, "Silakan login terlebih dahulu")
	ErrInvalidToken    = New(ErrCodeInvalidToken, "Token tidak valid")
	ErrTokenExpired    = New(ErrCodeTokenExpired, "Token sudah kadaluarsa")
	ErrInvalidPassword = New(ErrCodeInvalidPassword, "Password salah")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "Parameter tidak valid")
	ErrBindError     = New(ErrCodeBindError, "Format data tidak valid")

	// 服务暂时不可用
	ErrServiceUnavailable = New(ErrCodeServiceUnavailable, "Layanan sedang sibuk, silakan coba lagi")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
// 借阅事务回滚后AppError原样传出，保证错误类别不被压扁成500
// 只有真正未知的错误才落到这里的Wrap分支
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, fmt.Sprintf("Gagal: %v", err))
}
