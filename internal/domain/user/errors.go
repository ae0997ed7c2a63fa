package user

import (
	apperrors "github.com/xiebiao/perpustakaan/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeUserNotFound, "User tidak ditemukan")

	// ErrUsernameNotFound 用户名不存在（登录场景的提示）
	ErrUsernameNotFound = apperrors.New(apperrors.ErrCodeUserNotFound, "Username tidak ditemukan")

	// ErrUsernameDuplicate 用户名已被占用
	ErrUsernameDuplicate = apperrors.New(apperrors.ErrCodeUsernameDuplicate, "Username sudah digunakan")

	// ErrUsernameTooShort 用户名太短
	ErrUsernameTooShort = apperrors.New(apperrors.ErrCodeInvalidParams, "Username minimal 3 karakter")

	// ErrPasswordTooShort 密码太短
	ErrPasswordTooShort = apperrors.New(apperrors.ErrCodeInvalidParams, "Password minimal 6 karakter")

	// ErrMissingCredentials 用户名或密码缺失
	ErrMissingCredentials = apperrors.New(apperrors.ErrCodeInvalidParams, "Username dan password harus diisi")

	// ErrNothingToUpdate 没有提供任何要更新的字段
	ErrNothingToUpdate = apperrors.New(apperrors.ErrCodeInvalidParams, "Tidak ada data yang diupdate")
)
