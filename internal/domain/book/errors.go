package book

import (
	apperrors "github.com/xiebiao/perpustakaan/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "Buku tidak ditemukan")

	// ErrMissingFields 必填字段缺失
	ErrMissingFields = apperrors.New(apperrors.ErrCodeInvalidParams, "Nama buku, tahun terbit, dan penerbit wajib diisi")

	// ErrInvalidTahunTerbit 出版年份越界
	ErrInvalidTahunTerbit = apperrors.New(apperrors.ErrCodeInvalidParams, "Tahun terbit tidak valid (harus antara 1900-2100)")

	// ErrInvalidStok 库存不能为负数
	ErrInvalidStok = apperrors.New(apperrors.ErrCodeInvalidParams, "Stok tidak boleh negatif")

	// ErrInsufficientStock 库存不足（通用，借阅流程会生成带书名的具体消息）
	ErrInsufficientStock = apperrors.New(apperrors.ErrCodeInsufficientStock, "Stok buku tidak mencukupi")
)
