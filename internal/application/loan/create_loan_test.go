package loan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/perpustakaan/internal/domain/book"
	"github.com/xiebiao/perpustakaan/internal/domain/loan"
	"github.com/xiebiao/perpustakaan/internal/domain/user"
	apperrors "github.com/xiebiao/perpustakaan/pkg/errors"
)

func TestCreateLoan(t *testing.T) {
	ctx := context.Background()

	newBook := func(id uint, nama string, stok int) *book.Book {
		return &book.Book{ID: id, NamaBuku: nama, TahunTerbit: 2005, Penerbit: "Bentang Pustaka", Stok: stok}
	}

	t.Run("借出多本书并扣减库存", func(t *testing.T) {
		bookRepo := newFakeBookRepo(newBook(1, "Laskar Pelangi", 5), newBook(2, "Bumi Manusia", 2))
		loanRepo := newFakeLoanRepo()
		tx := &passthroughTx{}
		uc := NewCreateLoanUseCase(loanRepo, bookRepo, newFakeUserRepo(9), tx)

		resp, err := uc.Execute(ctx, CreateLoanRequest{
			UserID: 9,
			Items: []LoanItem{
				{BookID: 1, Jumlah: 2},
				{BookID: 2, Jumlah: 1},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, 3, resp.TotalBuku)
		assert.Equal(t, resp.TanggalPinjam.Add(loan.LoanPeriod), resp.TanggalDeadline)
		assert.Equal(t, 3, bookRepo.stok(1))
		assert.Equal(t, 1, bookRepo.stok(2))
		assert.Equal(t, 1, tx.calls)

		header, err := loanRepo.FindHeaderByID(ctx, resp.IDPeminjaman)
		require.NoError(t, err)
		assert.Equal(t, loan.StatusDipinjam, header.Status)
		assert.Equal(t, 3, header.TotalBuku)

		lines, err := loanRepo.FindLines(ctx, resp.IDPeminjaman)
		require.NoError(t, err)
		assert.Len(t, lines, 2)
	})

	t.Run("省略册数默认借1本", func(t *testing.T) {
		bookRepo := newFakeBookRepo(newBook(1, "Laskar Pelangi", 5))
		uc := NewCreateLoanUseCase(newFakeLoanRepo(), bookRepo, newFakeUserRepo(9), &passthroughTx{})

		resp, err := uc.Execute(ctx, CreateLoanRequest{
			UserID: 9,
			Items:  []LoanItem{{BookID: 1}},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.TotalBuku)
		assert.Equal(t, 4, bookRepo.stok(1))
	})

	t.Run("库存不足时整单失败且不留半截数据", func(t *testing.T) {
		bookRepo := newFakeBookRepo(newBook(1, "Laskar Pelangi", 5), newBook(2, "Bumi Manusia", 1))
		loanRepo := newFakeLoanRepo()
		uc := NewCreateLoanUseCase(loanRepo, bookRepo, newFakeUserRepo(9), &passthroughTx{})

		_, err := uc.Execute(ctx, CreateLoanRequest{
			UserID: 9,
			Items: []LoanItem{
				{BookID: 1, Jumlah: 2},
				{BookID: 2, Jumlah: 3}, // 库存只有1
			},
		})
		require.Error(t, err)

		appErr := apperrors.GetAppError(err)
		assert.Equal(t, apperrors.ErrCodeInsufficientStock, appErr.Code)
		assert.Contains(t, appErr.Message, "Bumi Manusia")
		assert.Contains(t, appErr.Message, "Stok tersedia: 1")

		// 预检先于任何写入：两本书的库存原样，没有借阅头产生
		assert.Equal(t, 5, bookRepo.stok(1))
		assert.Equal(t, 1, bookRepo.stok(2))
		assert.Empty(t, loanRepo.headers)
	})

	t.Run("图书不存在", func(t *testing.T) {
		uc := NewCreateLoanUseCase(newFakeLoanRepo(), newFakeBookRepo(), newFakeUserRepo(9), &passthroughTx{})

		_, err := uc.Execute(ctx, CreateLoanRequest{
			UserID: 9,
			Items:  []LoanItem{{BookID: 404, Jumlah: 1}},
		})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("借阅人不存在", func(t *testing.T) {
		bookRepo := newFakeBookRepo(newBook(1, "Laskar Pelangi", 5))
		uc := NewCreateLoanUseCase(newFakeLoanRepo(), bookRepo, newFakeUserRepo(), &passthroughTx{})

		_, err := uc.Execute(ctx, CreateLoanRequest{
			UserID: 9,
			Items:  []LoanItem{{BookID: 1, Jumlah: 1}},
		})
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("缺少用户或图书列表", func(t *testing.T) {
		uc := NewCreateLoanUseCase(newFakeLoanRepo(), newFakeBookRepo(), newFakeUserRepo(9), &passthroughTx{})

		_, err := uc.Execute(ctx, CreateLoanRequest{UserID: 0, Items: []LoanItem{{BookID: 1}}})
		assert.ErrorIs(t, err, loan.ErrMissingItems)

		_, err = uc.Execute(ctx, CreateLoanRequest{UserID: 9, Items: nil})
		assert.ErrorIs(t, err, loan.ErrMissingItems)
	})

	t.Run("负数册数拒绝", func(t *testing.T) {
		bookRepo := newFakeBookRepo(newBook(1, "Laskar Pelangi", 5))
		uc := NewCreateLoanUseCase(newFakeLoanRepo(), bookRepo, newFakeUserRepo(9), &passthroughTx{})

		_, err := uc.Execute(ctx, CreateLoanRequest{
			UserID: 9,
			Items:  []LoanItem{{BookID: 1, Jumlah: -2}},
		})
		assert.ErrorIs(t, err, loan.ErrInvalidJumlah)
	})
}
