package book

import (
	"time"
)

// 出版年份的合法区间
const (
	MinTahunTerbit = 1900
	MaxTahunTerbit = 2100
)

// DefaultStok 创建图书时未指定库存的默认值
const DefaultStok = 1

// Book 图书实体（聚合根）
// 设计说明：
// 1. 字段沿用馆藏系统的印尼语命名（nama_buku、tahun_terbit、penerbit、stok）
// 2. Stok是可借出的在馆册数，借出扣减、归还加回，任何时刻不允许为负
type Book struct {
	ID          uint
	NamaBuku    string // 书名
	TahunTerbit int    // 出版年份（1900-2100）
	Penerbit    string // 出版社
	Stok        int    // 在馆库存
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBook 创建新图书（工厂方法）
// 调用方负责先通过Service校验字段合法性
func NewBook(namaBuku string, tahunTerbit int, penerbit string, stok int) *Book {
	now := time.Now()
	return &Book{
		NamaBuku:    namaBuku,
		TahunTerbit: tahunTerbit,
		Penerbit:    penerbit,
		Stok:        stok,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateInfo 更新图书基本信息（领域行为）
func (b *Book) UpdateInfo(namaBuku string, tahunTerbit int, penerbit string, stok int) {
	b.NamaBuku = namaBuku
	b.TahunTerbit = tahunTerbit
	b.Penerbit = penerbit
	b.Stok = stok
	b.UpdatedAt = time.Now()
}

// HasStock 库存是否足够借出jumlah本
func (b *Book) HasStock(jumlah int) bool {
	return b.Stok >= jumlah
}
