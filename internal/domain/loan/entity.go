package loan

import (
	"time"
)

// Status 借阅状态
// 设计说明：
// 1. 存储印尼语状态值，与前端和历史数据保持一致
// 2. 借阅头和明细行共用同一组状态
// 3. dipinjam → dikembalikan 单向流转，dikembalikan是终态
type Status string

const (
	StatusDipinjam     Status = "dipinjam"     // 在借
	StatusDikembalikan Status = "dikembalikan" // 已归还
)

// Valid 状态值是否合法
func (s Status) Valid() bool {
	return s == StatusDipinjam || s == StatusDikembalikan
}

// LoanPeriod 借期：归还期限 = 借出日 + 7天
const LoanPeriod = 7 * 24 * time.Hour

// Loan 借阅头实体（聚合根）
// 一次借阅覆盖一个用户的一本或多本书，每本书一条明细行
type Loan struct {
	ID              uint
	UserID          uint       // 借阅人
	TanggalPinjam   time.Time  // 借出日期
	TanggalDeadline time.Time  // 归还期限（借出日+7天）
	Status          Status     // 整单状态
	TotalBuku       int        // 借出总册数（明细行jumlah之和）
	TanggalKembali  *time.Time // 整单归还日期，未全部归还时为nil
	Lines           []LoanLine // 明细行
}

// LoanLine 借阅明细行
// 每行对应一本书及其借出册数，可独立归还
type LoanLine struct {
	ID                  uint
	LoanID              uint
	BookID              uint
	Jumlah              int // 借出册数
	Status              Status
	TanggalDikembalikan *time.Time // 该行归还日期
}

// NewLoan 创建新借阅（工厂方法）
// 初始状态dipinjam，总册数由用例在写入明细后回填
func NewLoan(userID uint, tanggalPinjam time.Time) *Loan {
	return &Loan{
		UserID:          userID,
		TanggalPinjam:   tanggalPinjam,
		TanggalDeadline: tanggalPinjam.Add(LoanPeriod),
		Status:          StatusDipinjam,
	}
}

// NewLoanLine 创建借阅明细行
func NewLoanLine(loanID, bookID uint, jumlah int) *LoanLine {
	return &LoanLine{
		LoanID: loanID,
		BookID: bookID,
		Jumlah: jumlah,
		Status: StatusDipinjam,
	}
}

// IsReturned 整单是否已归还（终态）
func (l *Loan) IsReturned() bool {
	return l.Status == StatusDikembalikan
}

// Close 关闭借阅单：所有明细行归还后才允许调用
// dikembalikan是终态，重复关闭是无害的幂等操作
func (l *Loan) Close(tanggalKembali time.Time) {
	l.Status = StatusDikembalikan
	l.TanggalKembali = &tanggalKembali
}

// IsReturned 明细行是否已归还
func (ll *LoanLine) IsReturned() bool {
	return ll.Status == StatusDikembalikan
}

// MarkReturned 归还明细行
// 已归还的行不允许再次流转（防止重复加回库存）
func (ll *LoanLine) MarkReturned(tanggal time.Time) error {
	if ll.IsReturned() {
		return ErrLineAlreadyReturned
	}
	ll.Status = StatusDikembalikan
	ll.TanggalDikembalikan = &tanggal
	return nil
}

// =========================================
// 读模型：列表与详情的联表查询结果
// =========================================

// Summary 借阅列表项：头信息联用户名，加上明细行统计
type Summary struct {
	ID                 uint
	UserID             uint
	Username           string
	TanggalPinjam      time.Time
	TanggalDeadline    time.Time
	Status             Status
	TotalBuku          int
	TanggalKembali     *time.Time
	JumlahBukuDipinjam int64 // 明细行数
	JumlahDikembalikan int64 // 已归还的明细行数
}

// HeaderView 借阅详情的头部分（联用户名）
type HeaderView struct {
	ID              uint
	UserID          uint
	Username        string
	TanggalPinjam   time.Time
	TanggalDeadline time.Time
	Status          Status
	TotalBuku       int
	TanggalKembali  *time.Time
}

// LineView 借阅详情的明细行（联图书信息）
type LineView struct {
	ID                  uint
	BookID              uint
	NamaBuku            string
	Penerbit            string
	TahunTerbit         int
	Jumlah              int
	Status              Status
	TanggalDikembalikan *time.Time
}

// Detail 单笔借阅的完整视图
type Detail struct {
	Header HeaderView
	Lines  []LineView
}
