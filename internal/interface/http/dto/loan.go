package dto

// LoanItemRequest 借阅明细项
type LoanItemRequest struct {
	IDBuku uint `json:"id_buku" binding:"required"`
	Jumlah int  `json:"jumlah" binding:"omitempty,min=1"` // 省略时默认1
}

// CreateLoanRequest 借阅请求
type CreateLoanRequest struct {
	IDUser uint              `json:"id_user" binding:"required"`
	Buku   []LoanItemRequest `json:"buku" binding:"required,min=1,dive"`
}

// ReturnBooksRequest 归还请求
// buku_dikembalikan是本次归还的图书ID列表，可以只还借阅单中的一部分
type ReturnBooksRequest struct {
	BukuDikembalikan []uint `json:"buku_dikembalikan" binding:"required,min=1"`
}

// CreateLoanResponse 借阅响应
type CreateLoanResponse struct {
	IDPeminjaman    uint   `json:"id_peminjaman"`
	TotalBuku       int    `json:"total_buku"`
	TanggalPinjam   string `json:"tanggal_pinjam"`
	TanggalDeadline string `json:"tanggal_deadline"`
}

// LoanSummaryResponse 借阅列表项
type LoanSummaryResponse struct {
	IDPeminjaman       uint    `json:"id_peminjaman"`
	IDUser             uint    `json:"id_user"`
	Username           string  `json:"username"`
	TanggalPinjam      string  `json:"tanggal_pinjam"`
	TanggalDeadline    string  `json:"tanggal_deadline"`
	Status             string  `json:"status"`
	TotalBuku          int     `json:"total_buku"`
	TanggalKembali     *string `json:"tanggal_kembali"`
	JumlahBukuDipinjam int64   `json:"jumlah_buku_dipinjam"`
	JumlahDikembalikan int64   `json:"jumlah_dikembalikan"`
}

// LoanLineResponse 借阅详情的明细行
type LoanLineResponse struct {
	IDDetail            uint    `json:"id_detail"`
	IDBuku              uint    `json:"id_buku"`
	NamaBuku            string  `json:"nama_buku"`
	Penerbit            string  `json:"penerbit"`
	TahunTerbit         int     `json:"tahun_terbit"`
	Jumlah              int     `json:"jumlah"`
	Status              string  `json:"status"`
	TanggalDikembalikan *string `json:"tanggal_dikembalikan"`
}

// LoanDetailResponse 借阅详情：头 + 明细
type LoanDetailResponse struct {
	IDPeminjaman    uint               `json:"id_peminjaman"`
	IDUser          uint               `json:"id_user"`
	Username        string             `json:"username"`
	TanggalPinjam   string             `json:"tanggal_pinjam"`
	TanggalDeadline string             `json:"tanggal_deadline"`
	Status          string             `json:"status"`
	TotalBuku       int                `json:"total_buku"`
	TanggalKembali  *string            `json:"tanggal_kembali"`
	Buku            []LoanLineResponse `json:"buku"`
}

// ReturnBooksResponse 归还响应
type ReturnBooksResponse struct {
	IDPeminjaman       uint    `json:"id_peminjaman"`
	Status             string  `json:"status"`
	JumlahDikembalikan int     `json:"jumlah_dikembalikan"`
	TanggalKembali     *string `json:"tanggal_kembali,omitempty"`
}
