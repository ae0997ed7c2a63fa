package loan

import (
	apperrors "github.com/xiebiao/perpustakaan/pkg/errors"
)

// 借阅领域错误定义
var (
	// ErrLoanNotFound 借阅记录不存在
	ErrLoanNotFound = apperrors.New(apperrors.ErrCodeLoanNotFound, "Peminjaman tidak ditemukan")

	// ErrMissingItems 借阅请求必须带用户和图书列表
	ErrMissingItems = apperrors.New(apperrors.ErrCodeInvalidParams, "Data user dan buku harus diisi")

	// ErrInvalidJumlah 借出册数必须大于0
	ErrInvalidJumlah = apperrors.New(apperrors.ErrCodeInvalidParams, "Jumlah buku harus lebih dari 0")

	// ErrMissingReturnItems 归还请求必须选择图书
	ErrMissingReturnItems = apperrors.New(apperrors.ErrCodeInvalidParams, "Pilih buku yang dikembalikan")

	// ErrLineAlreadyReturned 明细行已归还，不能重复流转
	ErrLineAlreadyReturned = apperrors.New(apperrors.ErrCodeInvalidParams, "Buku sudah dikembalikan")
)
