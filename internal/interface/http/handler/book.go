package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/perpustakaan/internal/application/book"
	"github.com/xiebiao/perpustakaan/internal/interface/http/dto"
	"github.com/xiebiao/perpustakaan/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	createBookUseCase *appbook.CreateBookUseCase
	listBooksUseCase  *appbook.ListBooksUseCase
	getBookUseCase    *appbook.GetBookUseCase
	updateBookUseCase *appbook.UpdateBookUseCase
	deleteBookUseCase *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createBookUseCase *appbook.CreateBookUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		createBookUseCase: createBookUseCase,
		listBooksUseCase:  listBooksUseCase,
		getBookUseCase:    getBookUseCase,
		updateBookUseCase: updateBookUseCase,
		deleteBookUseCase: deleteBookUseCase,
	}
}

// bookID 解析路径中的图书ID
func bookID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID buku tidak valid")
		return 0, false
	}
	return uint(id), true
}

// Create 新增图书
// @Summary      新增图书
// @Description  图书入馆登记，库存省略时默认1
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} response.Response{data=dto.BookResponse} "入库成功"
// @Failure      400 {object} response.Response "字段缺失或年份非法"
// @Router       /api/buku [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Format data tidak valid")
		return
	}

	result, err := h.createBookUseCase.Execute(c.Request.Context(), appbook.CreateBookRequest{
		NamaBuku:    req.NamaBuku,
		TahunTerbit: req.TahunTerbit,
		Penerbit:    req.Penerbit,
		Stok:        req.Stok,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Buku berhasil ditambahkan", toBookResponse(result))
}

// List 图书列表
// @Summary      图书列表
// @Description  按ID倒序列出馆藏图书（最新入库的在前）
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Router       /api/buku [get]
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.listBooksUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]*dto.BookResponse, len(books))
	for i, b := range books {
		items[i] = toBookResponse(b)
	}
	response.Success(c, "", items)
}

// Get 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/buku/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	result, err := h.getBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "", toBookResponse(result))
}

// Update 修改图书
// @Summary      修改图书
// @Description  修改图书信息，stok省略时保留原库存
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.BookResponse} "修改成功"
// @Failure      400 {object} response.Response "字段缺失或年份非法"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/buku/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Format data tidak valid")
		return
	}

	result, err := h.updateBookUseCase.Execute(c.Request.Context(), appbook.UpdateBookRequest{
		IDBuku:      id,
		NamaBuku:    req.NamaBuku,
		TahunTerbit: req.TahunTerbit,
		Penerbit:    req.Penerbit,
		Stok:        req.Stok,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Buku berhasil diupdate", toBookResponse(result))
}

// Delete 删除图书
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response "删除成功"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/buku/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	result, err := h.deleteBookUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, fmt.Sprintf("Buku %q berhasil dihapus", result.NamaBuku), nil)
}

// toBookResponse 应用层DTO → HTTP层DTO
func toBookResponse(b *appbook.BookResult) *dto.BookResponse {
	return &dto.BookResponse{
		IDBuku:      b.IDBuku,
		NamaBuku:    b.NamaBuku,
		TahunTerbit: b.TahunTerbit,
		Penerbit:    b.Penerbit,
		Stok:        b.Stok,
	}
}
