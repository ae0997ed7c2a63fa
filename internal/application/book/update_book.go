package book

import (
	"context"

	"github.com/xiebiao/perpustakaan/internal/domain/book"
)

// UpdateBookUseCase 图书更新用例
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建图书更新用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookService: bookService}
}

// UpdateBookRequest 更新请求DTO
// Stok为nil时保留现有库存
type UpdateBookRequest struct {
	IDBuku      uint
	NamaBuku    string
	TahunTerbit int
	Penerbit    string
	Stok        *int
}

// Execute 执行更新
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*BookResult, error) {
	b, err := uc.bookService.UpdateBook(ctx, req.IDBuku, req.NamaBuku, req.TahunTerbit, req.Penerbit, req.Stok)
	if err != nil {
		return nil, err
	}
	return toBookResult(b), nil
}
