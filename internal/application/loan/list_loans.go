package loan

import (
	"context"

	"github.com/xiebiao/perpustakaan/internal/domain/loan"
)

// ListLoansUseCase 借阅列表用例
type ListLoansUseCase struct {
	loanRepo loan.Repository
}

// NewListLoansUseCase 创建借阅列表用例
func NewListLoansUseCase(loanRepo loan.Repository) *ListLoansUseCase {
	return &ListLoansUseCase{loanRepo: loanRepo}
}

// Execute 列出全部借阅单（含借阅人、册数统计），按借出日期倒序
func (uc *ListLoansUseCase) Execute(ctx context.Context) ([]loan.Summary, error) {
	return uc.loanRepo.ListSummaries(ctx)
}
