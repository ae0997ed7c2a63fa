package book

import (
	"context"

	"github.com/xiebiao/perpustakaan/internal/domain/book"
)

// DeleteBookUseCase 图书删除用例
type DeleteBookUseCase struct {
	bookService book.Service
}

// NewDeleteBookUseCase 创建图书删除用例
func NewDeleteBookUseCase(bookService book.Service) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookService: bookService}
}

// DeleteBookResponse 删除响应DTO：回显被删图书的书名作为确认
type DeleteBookResponse struct {
	IDBuku   uint   `json:"id_buku"`
	NamaBuku string `json:"nama_buku"`
}

// Execute 执行删除
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) (*DeleteBookResponse, error) {
	b, err := uc.bookService.DeleteBook(ctx, id)
	if err != nil {
		return nil, err
	}

	return &DeleteBookResponse{
		IDBuku:   b.ID,
		NamaBuku: b.NamaBuku,
	}, nil
}
