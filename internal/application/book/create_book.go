package book

import (
	"context"

	"github.com/xiebiao/perpustakaan/internal/domain/book"
)

// CreateBookUseCase 图书入库用例
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建图书入库用例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{bookService: bookService}
}

// CreateBookRequest 入库请求DTO
// Stok为nil时走默认库存1
type CreateBookRequest struct {
	NamaBuku    string
	TahunTerbit int
	Penerbit    string
	Stok        *int
}

// Execute 执行入库
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookResult, error) {
	b, err := uc.bookService.CreateBook(ctx, req.NamaBuku, req.TahunTerbit, req.Penerbit, req.Stok)
	if err != nil {
		return nil, err
	}
	return toBookResult(b), nil
}
