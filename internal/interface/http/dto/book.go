package dto

// CreateBookRequest 新增图书请求
// 字段缺失/年份越界的具体提示由领域层产出，这里只挡掉非法JSON
type CreateBookRequest struct {
	NamaBuku    string `json:"nama_buku"`
	TahunTerbit int    `json:"tahun_terbit"`
	Penerbit    string `json:"penerbit"`
	Stok        *int   `json:"stok" binding:"omitempty,min=0"` // 省略时默认1
}

// UpdateBookRequest 修改图书请求
type UpdateBookRequest struct {
	NamaBuku    string `json:"nama_buku"`
	TahunTerbit int    `json:"tahun_terbit"`
	Penerbit    string `json:"penerbit"`
	Stok        *int   `json:"stok" binding:"omitempty,min=0"` // 省略时保留原库存
}

// BookResponse 图书响应
type BookResponse struct {
	IDBuku      uint   `json:"id_buku"`
	NamaBuku    string `json:"nama_buku"`
	TahunTerbit int    `json:"tahun_terbit"`
	Penerbit    string `json:"penerbit"`
	Stok        int    `json:"stok"`
}
