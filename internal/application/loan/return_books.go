package loan

import (
	"context"
	"time"

	"github.com/xiebiao/perpustakaan/internal/domain/book"
	"github.com/xiebiao/perpustakaan/internal/domain/loan"
)

// ReturnBooksUseCase 归还用例
//
// 归还与借出是镜像事务：明细行状态翻转 + 库存回补 + 头状态联动。
// 关键语义：只有仍处于"dipinjam"的行会被翻转，重复归还同一本书
// 第二次是无操作，不会二次回补库存
type ReturnBooksUseCase struct {
	loanRepo  loan.Repository
	bookRepo  book.Repository
	txManager Transactor
}

// NewReturnBooksUseCase 创建归还用例
func NewReturnBooksUseCase(
	loanRepo loan.Repository,
	bookRepo book.Repository,
	txManager Transactor,
) *ReturnBooksUseCase {
	return &ReturnBooksUseCase{
		loanRepo:  loanRepo,
		bookRepo:  bookRepo,
		txManager: txManager,
	}
}

// ReturnBooksRequest 归还请求DTO
type ReturnBooksRequest struct {
	LoanID  uint
	BookIDs []uint // 本次归还的图书ID列表
}

// ReturnBooksResponse 归还响应DTO
type ReturnBooksResponse struct {
	IDPeminjaman   uint        `json:"id_peminjaman"`
	Status         loan.Status `json:"status"`
	JumlahKembali  int         `json:"jumlah_dikembalikan"`
	TanggalKembali *time.Time  `json:"tanggal_kembali,omitempty"`
}

// Execute 执行归还
func (uc *ReturnBooksUseCase) Execute(ctx context.Context, req ReturnBooksRequest) (*ReturnBooksResponse, error) {
	if len(req.BookIDs) == 0 {
		return nil, loan.ErrMissingReturnItems
	}

	// 借阅单必须存在，不存在返回404而不是静默成功
	header, err := uc.loanRepo.FindHeaderByID(ctx, req.LoanID)
	if err != nil {
		return nil, err
	}

	resp := &ReturnBooksResponse{
		IDPeminjaman: header.ID,
		Status:       header.Status,
	}

	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		tanggal := today()

		// 逐书翻转明细并按实际翻转的册数回补库存
		// MarkReturned返回本次真正从dipinjam变为dikembalikan的册数，
		// 重复归还时返回0，库存不会被二次加回
		for _, bookID := range req.BookIDs {
			qty, err := uc.loanRepo.MarkReturned(txCtx, req.LoanID, bookID, tanggal)
			if err != nil {
				return err
			}
			if qty == 0 {
				continue
			}
			if err := uc.bookRepo.UpdateStock(txCtx, bookID, qty); err != nil {
				return err
			}
			resp.JumlahKembali += qty
		}

		// 所有明细都还清后关闭借阅头
		outstanding, err := uc.loanRepo.CountOutstanding(txCtx, req.LoanID)
		if err != nil {
			return err
		}
		if outstanding == 0 {
			if err := uc.loanRepo.CloseHeader(txCtx, req.LoanID, tanggal); err != nil {
				return err
			}
			resp.Status = loan.StatusDikembalikan
			resp.TanggalKembali = &tanggal
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}
