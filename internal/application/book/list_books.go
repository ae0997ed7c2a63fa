package book

import (
	"context"

	"github.com/xiebiao/perpustakaan/internal/domain/book"
)

// ListBooksUseCase 图书列表用例
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建图书列表用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{bookService: bookService}
}

// Execute 执行查询，按id_buku降序
func (uc *ListBooksUseCase) Execute(ctx context.Context) ([]*BookResult, error) {
	books, err := uc.bookService.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*BookResult, len(books))
	for i, b := range books {
		results[i] = toBookResult(b)
	}
	return results, nil
}
