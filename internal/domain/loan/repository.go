package loan

import (
	"context"
	"time"
)

// Repository 借阅仓储接口（依赖倒置原则）
// 设计说明：
// 1. 写操作全部参与事务：实现方必须从context提取事务句柄
// 2. 读模型（Summary/Detail）的联表查询也在这里实现，保持用例层无SQL
type Repository interface {
	// CreateHeader 插入借阅头并回填自增ID
	CreateHeader(ctx context.Context, loan *Loan) error

	// AddLine 插入一条明细行并回填自增ID
	AddLine(ctx context.Context, line *LoanLine) error

	// UpdateTotal 回填借阅头的总册数
	UpdateTotal(ctx context.Context, loanID uint, totalBuku int) error

	// FindHeaderByID 查询借阅头（联用户名）
	// 不存在时返回ErrLoanNotFound
	FindHeaderByID(ctx context.Context, loanID uint) (*HeaderView, error)

	// FindLines 查询某借阅的全部明细行（联图书信息）
	FindLines(ctx context.Context, loanID uint) ([]LineView, error)

	// ListSummaries 借阅列表：头联用户名，带明细行统计
	// 按tanggal_pinjam降序
	ListSummaries(ctx context.Context) ([]Summary, error)

	// MarkReturned 将(loanID, bookID)下所有仍在借的明细行置为已归还
	// 返回实际流转行的jumlah之和（0表示没有行被更新，例如重复归还）
	// 同一本书的多条明细行一起归还，库存按总和加回
	MarkReturned(ctx context.Context, loanID, bookID uint, tanggal time.Time) (int, error)

	// CountOutstanding 统计某借阅仍在借的明细行数
	CountOutstanding(ctx context.Context, loanID uint) (int64, error)

	// CloseHeader 所有明细归还后关闭借阅头
	CloseHeader(ctx context.Context, loanID uint, tanggalKembali time.Time) error
}
