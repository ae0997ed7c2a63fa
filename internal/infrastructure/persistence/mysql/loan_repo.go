package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/perpustakaan/internal/domain/loan"
	apperrors "github.com/xiebiao/perpustakaan/pkg/errors"
)

// loanRepository 借阅仓储实现（MySQL）
// 设计说明：
// 1. 写操作全部通过dbFromContext参与borrow/return事务
// 2. 列表与详情的联表查询在这里实现，用例层不出现SQL
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository 创建借阅仓储
func NewLoanRepository(db *gorm.DB) loan.Repository {
	return &loanRepository{db: db}
}

// CreateHeader 插入借阅头并回填自增ID
func (r *loanRepository) CreateHeader(ctx context.Context, l *loan.Loan) error {
	model := &LoanModel{
		IDUser:          l.UserID,
		TanggalPinjam:   l.TanggalPinjam,
		TanggalDeadline: l.TanggalDeadline,
		Status:          string(l.Status),
		TotalBuku:       l.TotalBuku,
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return apperrors.Wrap(err, "Gagal membuat peminjaman")
	}

	l.ID = model.IDPeminjaman
	return nil
}

// AddLine 插入明细行
func (r *loanRepository) AddLine(ctx context.Context, line *loan.LoanLine) error {
	model := &LoanLineModel{
		IDPeminjaman: line.LoanID,
		IDBuku:       line.BookID,
		Jumlah:       line.Jumlah,
		Status:       string(line.Status),
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return apperrors.Wrap(err, "Gagal menambahkan detail peminjaman")
	}

	line.ID = model.IDDetail
	return nil
}

// UpdateTotal 回填借阅头的总册数
func (r *loanRepository) UpdateTotal(ctx context.Context, loanID uint, totalBuku int) error {
	db := dbFromContext(ctx, r.db)
	err := db.Model(&LoanModel{}).
		Where("id_peminjaman = ?", loanID).
		Update("total_buku", totalBuku).Error
	if err != nil {
		return apperrors.Wrap(err, "Gagal mengupdate total buku")
	}
	return nil
}

// headerRow 借阅头联用户名的扫描结构
type headerRow struct {
	IDPeminjaman    uint       `gorm:"column:id_peminjaman"`
	IDUser          uint       `gorm:"column:id_user"`
	Username        string     `gorm:"column:username"`
	TanggalPinjam   time.Time  `gorm:"column:tanggal_pinjam"`
	TanggalDeadline time.Time  `gorm:"column:tanggal_deadline"`
	Status          string     `gorm:"column:status"`
	TotalBuku       int        `gorm:"column:total_buku"`
	TanggalKembali  *time.Time `gorm:"column:tanggal_kembali"`
}

// FindHeaderByID 查询借阅头（联用户名）
func (r *loanRepository) FindHeaderByID(ctx context.Context, loanID uint) (*loan.HeaderView, error) {
	var row headerRow
	err := r.db.WithContext(ctx).
		Table("peminjaman p").
		Select("p.id_peminjaman, p.id_user, u.username, p.tanggal_pinjam, p.tanggal_deadline, p.status, p.total_buku, p.tanggal_kembali").
		Joins("JOIN users u ON u.id_user = p.id_user").
		Where("p.id_peminjaman = ?", loanID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loan.ErrLoanNotFound
		}
		return nil, apperrors.Wrap(err, "Gagal mengambil data peminjaman")
	}

	return &loan.HeaderView{
		ID:              row.IDPeminjaman,
		UserID:          row.IDUser,
		Username:        row.Username,
		TanggalPinjam:   row.TanggalPinjam,
		TanggalDeadline: row.TanggalDeadline,
		Status:          loan.Status(row.Status),
		TotalBuku:       row.TotalBuku,
		TanggalKembali:  row.TanggalKembali,
	}, nil
}

// lineRow 明细行联图书信息的扫描结构
type lineRow struct {
	IDDetail            uint       `gorm:"column:id_detail"`
	IDBuku              uint       `gorm:"column:id_buku"`
	NamaBuku            string     `gorm:"column:nama_buku"`
	Penerbit            string     `gorm:"column:penerbit"`
	TahunTerbit         int        `gorm:"column:tahun_terbit"`
	Jumlah              int        `gorm:"column:jumlah"`
	Status              string     `gorm:"column:status"`
	TanggalDikembalikan *time.Time `gorm:"column:tanggal_dikembalikan"`
}

// FindLines 查询某借阅的全部明细行（联图书信息）
func (r *loanRepository) FindLines(ctx context.Context, loanID uint) ([]loan.LineView, error) {
	var rows []lineRow
	err := r.db.WithContext(ctx).
		Table("detail_peminjaman d").
		Select("d.id_detail, d.id_buku, b.nama_buku, b.penerbit, b.tahun_terbit, d.jumlah, d.status, d.tanggal_dikembalikan").
		Joins("JOIN buku b ON b.id_buku = d.id_buku").
		Where("d.id_peminjaman = ?", loanID).
		Order("d.id_detail ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "Gagal mengambil detail peminjaman")
	}

	lines := make([]loan.LineView, len(rows))
	for i, row := range rows {
		lines[i] = loan.LineView{
			ID:                  row.IDDetail,
			BookID:              row.IDBuku,
			NamaBuku:            row.NamaBuku,
			Penerbit:            row.Penerbit,
			TahunTerbit:         row.TahunTerbit,
			Jumlah:              row.Jumlah,
			Status:              loan.Status(row.Status),
			TanggalDikembalikan: row.TanggalDikembalikan,
		}
	}
	return lines, nil
}

// summaryRow 列表查询的扫描结构
type summaryRow struct {
	headerRow
	JumlahBukuDipinjam int64 `gorm:"column:jumlah_buku_dipinjam"`
	JumlahDikembalikan int64 `gorm:"column:jumlah_dikembalikan"`
}

// ListSummaries 借阅列表：头联用户名，带明细行统计，按借出日期降序
// GROUP BY列出全部非聚合列，兼容only_full_group_by模式
func (r *loanRepository) ListSummaries(ctx context.Context) ([]loan.Summary, error) {
	var rows []summaryRow
	err := r.db.WithContext(ctx).
		Table("peminjaman p").
		Select(`p.id_peminjaman, p.id_user, u.username, p.tanggal_pinjam, p.tanggal_deadline,
			p.status, p.total_buku, p.tanggal_kembali,
			COUNT(d.id_detail) AS jumlah_buku_dipinjam,
			COALESCE(SUM(CASE WHEN d.status = 'dikembalikan' THEN 1 ELSE 0 END), 0) AS jumlah_dikembalikan`).
		Joins("JOIN users u ON u.id_user = p.id_user").
		Joins("LEFT JOIN detail_peminjaman d ON d.id_peminjaman = p.id_peminjaman").
		Group("p.id_peminjaman, p.id_user, u.username, p.tanggal_pinjam, p.tanggal_deadline, p.status, p.total_buku, p.tanggal_kembali").
		Order("p.tanggal_pinjam DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "Gagal mengambil daftar peminjaman")
	}

	summaries := make([]loan.Summary, len(rows))
	for i, row := range rows {
		summaries[i] = loan.Summary{
			ID:                 row.IDPeminjaman,
			UserID:             row.IDUser,
			Username:           row.Username,
			TanggalPinjam:      row.TanggalPinjam,
			TanggalDeadline:    row.TanggalDeadline,
			Status:             loan.Status(row.Status),
			TotalBuku:          row.TotalBuku,
			TanggalKembali:     row.TanggalKembali,
			JumlahBukuDipinjam: row.JumlahBukuDipinjam,
			JumlahDikembalikan: row.JumlahDikembalikan,
		}
	}
	return summaries, nil
}

// MarkReturned 归还(loanID, bookID)下所有仍在借的明细行
// 先求仍在借各行的jumlah总和再统一更新，同一本书的多条明细行一起归还；
// 只统计实际流转的行，重复归还时返回0，调用方不会再次加回库存
func (r *loanRepository) MarkReturned(ctx context.Context, loanID, bookID uint, tanggal time.Time) (int, error) {
	db := dbFromContext(ctx, r.db)

	var total int64
	err := db.Model(&LoanLineModel{}).
		Where("id_peminjaman = ? AND id_buku = ? AND status = ?", loanID, bookID, string(loan.StatusDipinjam)).
		Select("COALESCE(SUM(jumlah), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "Gagal mengambil jumlah buku dipinjam")
	}
	if total == 0 {
		return 0, nil
	}

	result := db.Model(&LoanLineModel{}).
		Where("id_peminjaman = ? AND id_buku = ? AND status = ?", loanID, bookID, string(loan.StatusDipinjam)).
		Updates(map[string]interface{}{
			"status":               string(loan.StatusDikembalikan),
			"tanggal_dikembalikan": tanggal,
		})
	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, "Gagal mengupdate status pengembalian")
	}

	return int(total), nil
}

// CountOutstanding 统计某借阅仍在借的明细行数
func (r *loanRepository) CountOutstanding(ctx context.Context, loanID uint) (int64, error) {
	db := dbFromContext(ctx, r.db)
	var count int64
	err := db.Model(&LoanLineModel{}).
		Where("id_peminjaman = ? AND status = ?", loanID, string(loan.StatusDipinjam)).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "Gagal menghitung buku yang belum kembali")
	}
	return count, nil
}

// CloseHeader 关闭借阅头（所有明细已归还）
func (r *loanRepository) CloseHeader(ctx context.Context, loanID uint, tanggalKembali time.Time) error {
	db := dbFromContext(ctx, r.db)
	err := db.Model(&LoanModel{}).
		Where("id_peminjaman = ?", loanID).
		Updates(map[string]interface{}{
			"status":          string(loan.StatusDikembalikan),
			"tanggal_kembali": tanggalKembali,
		}).Error
	if err != nil {
		return apperrors.Wrap(err, "Gagal menutup peminjaman")
	}
	return nil
}
