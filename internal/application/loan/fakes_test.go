package loan

import (
	"context"
	"time"

	"github.com/xiebiao/perpustakaan/internal/domain/book"
	"github.com/xiebiao/perpustakaan/internal/domain/loan"
	"github.com/xiebiao/perpustakaan/internal/domain/user"
)

// 用例层测试用的内存假件：行为对齐MySQL实现的约定
// （错误类别、MarkReturned只翻转在借行、条件扣减库存）

// passthroughTx 直通事务：原样执行回调，不提供回滚
// 用例的失败路径断言"预检在写入之前"，所以直通已经够用
type passthroughTx struct {
	calls int
}

func (p *passthroughTx) Transaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

// fakeBookRepo 内存图书仓储
type fakeBookRepo struct {
	books map[uint]*book.Book
}

func newFakeBookRepo(books ...*book.Book) *fakeBookRepo {
	f := &fakeBookRepo{books: make(map[uint]*book.Book)}
	for _, b := range books {
		clone := *b
		f.books[b.ID] = &clone
	}
	return f
}

func (f *fakeBookRepo) Create(_ context.Context, b *book.Book) error {
	f.books[b.ID] = b
	return nil
}

func (f *fakeBookRepo) FindByID(_ context.Context, id uint) (*book.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBookRepo) Update(_ context.Context, b *book.Book) error {
	f.books[b.ID] = b
	return nil
}

func (f *fakeBookRepo) Delete(_ context.Context, id uint) error {
	delete(f.books, id)
	return nil
}

func (f *fakeBookRepo) List(_ context.Context) ([]*book.Book, error) {
	out := make([]*book.Book, 0, len(f.books))
	for _, b := range f.books {
		clone := *b
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeBookRepo) UpdateStock(_ context.Context, id uint, delta int) error {
	b, ok := f.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	if b.Stok+delta < 0 {
		return book.ErrInsufficientStock
	}
	b.Stok += delta
	return nil
}

func (f *fakeBookRepo) stok(id uint) int {
	return f.books[id].Stok
}

// fakeUserRepo 内存用户仓储（借阅用例只用FindByID）
type fakeUserRepo struct {
	users map[uint]*user.User
}

func newFakeUserRepo(ids ...uint) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[uint]*user.User)}
	for _, id := range ids {
		f.users[id] = &user.User{ID: id, Username: "user"}
	}
	return f
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, _ string) (*user.User, error) {
	return nil, user.ErrUsernameNotFound
}

func (f *fakeUserRepo) ExistsByUsername(_ context.Context, _ string, _ uint) (bool, error) {
	return false, nil
}

func (f *fakeUserRepo) Update(_ context.Context, _ *user.User) error { return nil }

func (f *fakeUserRepo) List(_ context.Context) ([]*user.User, error) { return nil, nil }

// fakeLoanRepo 内存借阅仓储
type fakeLoanRepo struct {
	headers map[uint]*loan.Loan
	lines   []*loan.LoanLine
	nextID  uint
	lineID  uint
}

func newFakeLoanRepo() *fakeLoanRepo {
	return &fakeLoanRepo{headers: make(map[uint]*loan.Loan), nextID: 1, lineID: 1}
}

func (f *fakeLoanRepo) CreateHeader(_ context.Context, l *loan.Loan) error {
	l.ID = f.nextID
	f.nextID++
	clone := *l
	f.headers[l.ID] = &clone
	return nil
}

func (f *fakeLoanRepo) AddLine(_ context.Context, line *loan.LoanLine) error {
	line.ID = f.lineID
	f.lineID++
	clone := *line
	f.lines = append(f.lines, &clone)
	return nil
}

func (f *fakeLoanRepo) UpdateTotal(_ context.Context, loanID uint, totalBuku int) error {
	h, ok := f.headers[loanID]
	if !ok {
		return loan.ErrLoanNotFound
	}
	h.TotalBuku = totalBuku
	return nil
}

func (f *fakeLoanRepo) FindHeaderByID(_ context.Context, loanID uint) (*loan.HeaderView, error) {
	h, ok := f.headers[loanID]
	if !ok {
		return nil, loan.ErrLoanNotFound
	}
	return &loan.HeaderView{
		ID:              h.ID,
		UserID:          h.UserID,
		Username:        "user",
		TanggalPinjam:   h.TanggalPinjam,
		TanggalDeadline: h.TanggalDeadline,
		Status:          h.Status,
		TotalBuku:       h.TotalBuku,
		TanggalKembali:  h.TanggalKembali,
	}, nil
}

func (f *fakeLoanRepo) FindLines(_ context.Context, loanID uint) ([]loan.LineView, error) {
	out := make([]loan.LineView, 0)
	for _, l := range f.lines {
		if l.LoanID != loanID {
			continue
		}
		out = append(out, loan.LineView{
			ID:                  l.ID,
			BookID:              l.BookID,
			Jumlah:              l.Jumlah,
			Status:              l.Status,
			TanggalDikembalikan: l.TanggalDikembalikan,
		})
	}
	return out, nil
}

func (f *fakeLoanRepo) ListSummaries(_ context.Context) ([]loan.Summary, error) {
	out := make([]loan.Summary, 0, len(f.headers))
	for _, h := range f.headers {
		out = append(out, loan.Summary{
			ID:        h.ID,
			UserID:    h.UserID,
			Status:    h.Status,
			TotalBuku: h.TotalBuku,
		})
	}
	return out, nil
}

func (f *fakeLoanRepo) MarkReturned(_ context.Context, loanID, bookID uint, tanggal time.Time) (int, error) {
	total := 0
	for _, l := range f.lines {
		if l.LoanID != loanID || l.BookID != bookID || l.IsReturned() {
			continue
		}
		if err := l.MarkReturned(tanggal); err != nil {
			return 0, err
		}
		total += l.Jumlah
	}
	return total, nil
}

func (f *fakeLoanRepo) CountOutstanding(_ context.Context, loanID uint) (int64, error) {
	var n int64
	for _, l := range f.lines {
		if l.LoanID == loanID && !l.IsReturned() {
			n++
		}
	}
	return n, nil
}

func (f *fakeLoanRepo) CloseHeader(_ context.Context, loanID uint, tanggalKembali time.Time) error {
	h, ok := f.headers[loanID]
	if !ok {
		return loan.ErrLoanNotFound
	}
	h.Close(tanggalKembali)
	return nil
}
