package loan

import (
	"context"

	"github.com/xiebiao/perpustakaan/internal/domain/loan"
)

// LoanDetailUseCase 借阅详情用例
type LoanDetailUseCase struct {
	loanRepo loan.Repository
}

// NewLoanDetailUseCase 创建借阅详情用例
func NewLoanDetailUseCase(loanRepo loan.Repository) *LoanDetailUseCase {
	return &LoanDetailUseCase{loanRepo: loanRepo}
}

// Execute 查询单个借阅单：头信息 + 每本书的明细行
func (uc *LoanDetailUseCase) Execute(ctx context.Context, loanID uint) (*loan.Detail, error) {
	header, err := uc.loanRepo.FindHeaderByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	lines, err := uc.loanRepo.FindLines(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return &loan.Detail{Header: *header, Lines: lines}, nil
}
