package book

import (
	"github.com/xiebiao/perpustakaan/internal/domain/book"
)

// BookResult 图书用例的共用响应DTO
type BookResult struct {
	IDBuku      uint   `json:"id_buku"`
	NamaBuku    string `json:"nama_buku"`
	TahunTerbit int    `json:"tahun_terbit"`
	Penerbit    string `json:"penerbit"`
	Stok        int    `json:"stok"`
}

// toBookResult 领域实体 → 响应DTO
func toBookResult(b *book.Book) *BookResult {
	return &BookResult{
		IDBuku:      b.ID,
		NamaBuku:    b.NamaBuku,
		TahunTerbit: b.TahunTerbit,
		Penerbit:    b.Penerbit,
		Stok:        b.Stok,
	}
}
