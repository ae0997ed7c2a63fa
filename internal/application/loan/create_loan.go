package loan

import (
	"context"
	"time"

	"github.com/xiebiao/perpustakaan/internal/domain/book"
	"github.com/xiebiao/perpustakaan/internal/domain/loan"
	"github.com/xiebiao/perpustakaan/internal/domain/user"
	apperrors "github.com/xiebiao/perpustakaan/pkg/errors"
)

// CreateLoanUseCase 创建借阅用例
// 这是整个系统唯一的多表状态变更流程，必须原子执行
//
// 防超借流程（与下单防超卖同构）：
//  1. SELECT FOR UPDATE 锁定每本书的库存行
//  2. 全部书先检查存在性与库存，有一本不满足整单失败，什么都不写
//  3. 插入借阅头（总册数先置0占位）
//  4. 逐行插入明细并条件扣减库存
//  5. 回填借阅头总册数
//  6. COMMIT；任何一步出错整体ROLLBACK，原始错误类别原样传出
type CreateLoanUseCase struct {
	loanRepo  loan.Repository
	bookRepo  book.Repository
	userRepo  user.Repository
	txManager Transactor
}

// NewCreateLoanUseCase 创建借阅用例
func NewCreateLoanUseCase(
	loanRepo loan.Repository,
	bookRepo book.Repository,
	userRepo user.Repository,
	txManager Transactor,
) *CreateLoanUseCase {
	return &CreateLoanUseCase{
		loanRepo:  loanRepo,
		bookRepo:  bookRepo,
		userRepo:  userRepo,
		txManager: txManager,
	}
}

// LoanItem 借阅明细项
type LoanItem struct {
	BookID uint // 图书ID
	Jumlah int  // 借出册数，0按1处理
}

// CreateLoanRequest 借阅请求DTO
type CreateLoanRequest struct {
	UserID uint
	Items  []LoanItem
}

// CreateLoanResponse 借阅响应DTO
type CreateLoanResponse struct {
	IDPeminjaman    uint      `json:"id_peminjaman"`
	TotalBuku       int       `json:"total_buku"`
	TanggalPinjam   time.Time `json:"tanggal_pinjam"`
	TanggalDeadline time.Time `json:"tanggal_deadline"`
}

// Execute 执行创建借阅
func (uc *CreateLoanUseCase) Execute(ctx context.Context, req CreateLoanRequest) (*CreateLoanResponse, error) {
	// 1. 参数校验
	if req.UserID == 0 || len(req.Items) == 0 {
		return nil, loan.ErrMissingItems
	}

	items := make([]LoanItem, len(req.Items))
	for i, item := range req.Items {
		if item.Jumlah == 0 {
			item.Jumlah = 1 // 未填写册数默认借1本
		}
		if item.Jumlah < 0 {
			return nil, loan.ErrInvalidJumlah
		}
		items[i] = item
	}

	// 2. 借阅人必须存在（外键错误不应该以500的形式暴露出去）
	if _, err := uc.userRepo.FindByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	var result *loan.Loan
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 3. 锁定并预检所有图书：一本不满足则整单失败，尚未发生任何写入
		for _, item := range items {
			b, err := uc.bookRepo.LockByID(txCtx, item.BookID)
			if err != nil {
				return err
			}
			if !b.HasStock(item.Jumlah) {
				return apperrors.Newf(apperrors.ErrCodeInsufficientStock,
					"Stok buku %q tidak mencukupi. Stok tersedia: %d", b.NamaBuku, b.Stok)
			}
		}

		// 4. 插入借阅头：今天借出，7天后到期，总册数先置0
		l := loan.NewLoan(req.UserID, today())
		if err := uc.loanRepo.CreateHeader(txCtx, l); err != nil {
			return err
		}

		// 5. 逐行写明细并扣减库存
		// 扣减是条件更新（stok+delta>=0），行锁之外的第二道防线
		totalBuku := 0
		for _, item := range items {
			line := loan.NewLoanLine(l.ID, item.BookID, item.Jumlah)
			if err := uc.loanRepo.AddLine(txCtx, line); err != nil {
				return err
			}
			if err := uc.bookRepo.UpdateStock(txCtx, item.BookID, -item.Jumlah); err != nil {
				return err
			}
			totalBuku += item.Jumlah
		}

		// 6. 回填总册数
		if err := uc.loanRepo.UpdateTotal(txCtx, l.ID, totalBuku); err != nil {
			return err
		}
		l.TotalBuku = totalBuku

		result = l
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateLoanResponse{
		IDPeminjaman:    result.ID,
		TotalBuku:       result.TotalBuku,
		TanggalPinjam:   result.TanggalPinjam,
		TanggalDeadline: result.TanggalDeadline,
	}, nil
}
