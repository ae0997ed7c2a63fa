package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apploan "github.com/xiebiao/perpustakaan/internal/application/loan"
	"github.com/xiebiao/perpustakaan/internal/domain/loan"
	"github.com/xiebiao/perpustakaan/internal/interface/http/dto"
	"github.com/xiebiao/perpustakaan/pkg/response"
)

// dateLayout 对外展示的日期格式
const dateLayout = "2006-01-02"

// LoanHandler 借阅HTTP处理器
type LoanHandler struct {
	createLoanUseCase  *apploan.CreateLoanUseCase
	listLoansUseCase   *apploan.ListLoansUseCase
	loanDetailUseCase  *apploan.LoanDetailUseCase
	returnBooksUseCase *apploan.ReturnBooksUseCase
}

// NewLoanHandler 创建借阅处理器
func NewLoanHandler(
	createLoanUseCase *apploan.CreateLoanUseCase,
	listLoansUseCase *apploan.ListLoansUseCase,
	loanDetailUseCase *apploan.LoanDetailUseCase,
	returnBooksUseCase *apploan.ReturnBooksUseCase,
) *LoanHandler {
	return &LoanHandler{
		createLoanUseCase:  createLoanUseCase,
		listLoansUseCase:   listLoansUseCase,
		loanDetailUseCase:  loanDetailUseCase,
		returnBooksUseCase: returnBooksUseCase,
	}
}

// loanID 解析路径中的借阅单ID
func loanID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID peminjaman tidak valid")
		return 0, false
	}
	return uint(id), true
}

// Create 创建借阅
// @Summary      创建借阅
// @Description  一次借出一本或多本书，原子扣减库存，归还期限为借出日+7天
// @Tags         借阅
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateLoanRequest true "借阅信息"
// @Success      201 {object} response.Response{data=dto.CreateLoanResponse} "借阅成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "用户或图书不存在"
// @Failure      409 {object} response.Response "库存不足"
// @Router       /api/peminjaman [post]
func (h *LoanHandler) Create(c *gin.Context) {
	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Data user dan buku harus diisi")
		return
	}

	items := make([]apploan.LoanItem, len(req.Buku))
	for i, b := range req.Buku {
		items[i] = apploan.LoanItem{BookID: b.IDBuku, Jumlah: b.Jumlah}
	}

	result, err := h.createLoanUseCase.Execute(c.Request.Context(), apploan.CreateLoanRequest{
		UserID: req.IDUser,
		Items:  items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Peminjaman berhasil", &dto.CreateLoanResponse{
		IDPeminjaman:    result.IDPeminjaman,
		TotalBuku:       result.TotalBuku,
		TanggalPinjam:   result.TanggalPinjam.Format(dateLayout),
		TanggalDeadline: result.TanggalDeadline.Format(dateLayout),
	})
}

// List 借阅列表
// @Summary      借阅列表
// @Description  按借出日期倒序列出所有借阅单，附借阅人和归还进度
// @Tags         借阅
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.LoanSummaryResponse}
// @Router       /api/peminjaman [get]
func (h *LoanHandler) List(c *gin.Context) {
	summaries, err := h.listLoansUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.LoanSummaryResponse, len(summaries))
	for i, s := range summaries {
		items[i] = dto.LoanSummaryResponse{
			IDPeminjaman:       s.ID,
			IDUser:             s.UserID,
			Username:           s.Username,
			TanggalPinjam:      s.TanggalPinjam.Format(dateLayout),
			TanggalDeadline:    s.TanggalDeadline.Format(dateLayout),
			Status:             string(s.Status),
			TotalBuku:          s.TotalBuku,
			TanggalKembali:     formatDatePtr(s.TanggalKembali),
			JumlahBukuDipinjam: s.JumlahBukuDipinjam,
			JumlahDikembalikan: s.JumlahDikembalikan,
		}
	}
	response.Success(c, "", items)
}

// Detail 借阅详情
// @Summary      借阅详情
// @Description  单笔借阅的头信息和每本书的明细
// @Tags         借阅
// @Produce      json
// @Param        id path int true "借阅单ID"
// @Success      200 {object} response.Response{data=dto.LoanDetailResponse}
// @Failure      404 {object} response.Response "借阅单不存在"
// @Router       /api/peminjaman/{id} [get]
func (h *LoanHandler) Detail(c *gin.Context) {
	id, ok := loanID(c)
	if !ok {
		return
	}

	detail, err := h.loanDetailUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	lines := make([]dto.LoanLineResponse, len(detail.Lines))
	for i, l := range detail.Lines {
		lines[i] = dto.LoanLineResponse{
			IDDetail:            l.ID,
			IDBuku:              l.BookID,
			NamaBuku:            l.NamaBuku,
			Penerbit:            l.Penerbit,
			TahunTerbit:         l.TahunTerbit,
			Jumlah:              l.Jumlah,
			Status:              string(l.Status),
			TanggalDikembalikan: formatDatePtr(l.TanggalDikembalikan),
		}
	}

	h2 := detail.Header
	response.Success(c, "", &dto.LoanDetailResponse{
		IDPeminjaman:    h2.ID,
		IDUser:          h2.UserID,
		Username:        h2.Username,
		TanggalPinjam:   h2.TanggalPinjam.Format(dateLayout),
		TanggalDeadline: h2.TanggalDeadline.Format(dateLayout),
		Status:          string(h2.Status),
		TotalBuku:       h2.TotalBuku,
		TanggalKembali:  formatDatePtr(h2.TanggalKembali),
		Buku:            lines,
	})
}

// Return 归还图书
// @Summary      归还图书
// @Description  归还借阅单中的部分或全部图书并回补库存，全部还清后借阅单关闭
// @Tags         借阅
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "借阅单ID"
// @Param        request body dto.ReturnBooksRequest true "归还的图书ID列表"
// @Success      200 {object} response.Response{data=dto.ReturnBooksResponse} "归还成功"
// @Failure      400 {object} response.Response "未选择归还的图书"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "借阅单不存在"
// @Router       /api/peminjaman/{id}/pengembalian [put]
func (h *LoanHandler) Return(c *gin.Context) {
	id, ok := loanID(c)
	if !ok {
		return
	}

	var req dto.ReturnBooksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, loan.ErrMissingReturnItems)
		return
	}

	result, err := h.returnBooksUseCase.Execute(c.Request.Context(), apploan.ReturnBooksRequest{
		LoanID:  id,
		BookIDs: req.BukuDikembalikan,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "Pengembalian berhasil"
	if result.JumlahKembali == 0 {
		message = "Tidak ada data yang diupdate"
	}
	response.Success(c, message, &dto.ReturnBooksResponse{
		IDPeminjaman:       result.IDPeminjaman,
		Status:             string(result.Status),
		JumlahDikembalikan: result.JumlahKembali,
		TanggalKembali:     formatDatePtr(result.TanggalKembali),
	})
}

// formatDatePtr 可空日期 → 可空字符串
func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
