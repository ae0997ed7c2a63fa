package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/perpustakaan/internal/application/book"
	"github.com/xiebiao/perpustakaan/internal/domain/book"
	"github.com/xiebiao/perpustakaan/pkg/response"
)

// fakeBookService 内存图书服务：handler测试关注HTTP边界，不重测业务规则
type fakeBookService struct {
	books  map[uint]*book.Book
	nextID uint
}

func newFakeBookService() *fakeBookService {
	return &fakeBookService{books: make(map[uint]*book.Book), nextID: 1}
}

func (f *fakeBookService) CreateBook(_ context.Context, namaBuku string, tahunTerbit int, penerbit string, stok *int) (*book.Book, error) {
	if namaBuku == "" || penerbit == "" || tahunTerbit == 0 {
		return nil, book.ErrMissingFields
	}
	stokValue := book.DefaultStok
	if stok != nil {
		stokValue = *stok
	}
	b := &book.Book{ID: f.nextID, NamaBuku: namaBuku, TahunTerbit: tahunTerbit, Penerbit: penerbit, Stok: stokValue}
	f.books[f.nextID] = b
	f.nextID++
	return b, nil
}

func (f *fakeBookService) GetBookByID(_ context.Context, id uint) (*book.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (f *fakeBookService) UpdateBook(_ context.Context, id uint, namaBuku string, tahunTerbit int, penerbit string, stok *int) (*book.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	b.NamaBuku = namaBuku
	b.TahunTerbit = tahunTerbit
	b.Penerbit = penerbit
	if stok != nil {
		b.Stok = *stok
	}
	return b, nil
}

func (f *fakeBookService) DeleteBook(_ context.Context, id uint) (*book.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	delete(f.books, id)
	return b, nil
}

func (f *fakeBookService) ListBooks(_ context.Context) ([]*book.Book, error) {
	out := make([]*book.Book, 0, len(f.books))
	for _, b := range f.books {
		out = append(out, b)
	}
	return out, nil
}

func newBookRouter(svc book.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookHandler(
		appbook.NewCreateBookUseCase(svc),
		appbook.NewListBooksUseCase(svc),
		appbook.NewGetBookUseCase(svc),
		appbook.NewUpdateBookUseCase(svc),
		appbook.NewDeleteBookUseCase(svc),
	)
	r := gin.New()
	buku := r.Group("/api/buku")
	{
		buku.GET("", h.List)
		buku.POST("", h.Create)
		buku.GET("/:id", h.Get)
		buku.PUT("/:id", h.Update)
		buku.DELETE("/:id", h.Delete)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBookHandler_Create(t *testing.T) {
	t.Run("入库成功返回201", func(t *testing.T) {
		r := newBookRouter(newFakeBookService())
		w := doJSON(t, r, http.MethodPost, "/api/buku", gin.H{
			"nama_buku":    "Laskar Pelangi",
			"tahun_terbit": 2005,
			"penerbit":     "Bentang Pustaka",
			"stok":         5,
		})

		require.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, "Buku berhasil ditambahkan", resp.Message)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, float64(1), data["id_buku"])
		assert.Equal(t, float64(5), data["stok"])
	})

	t.Run("缺少字段返回400", func(t *testing.T) {
		r := newBookRouter(newFakeBookService())
		w := doJSON(t, r, http.MethodPost, "/api/buku", gin.H{"nama_buku": "Laskar Pelangi"})

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, "error", resp.Status)
	})
}

func TestBookHandler_Get(t *testing.T) {
	svc := newFakeBookService()
	_, err := svc.CreateBook(context.Background(), "Laskar Pelangi", 2005, "Bentang Pustaka", nil)
	require.NoError(t, err)
	r := newBookRouter(svc)

	t.Run("存在的图书", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/buku/1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeResponse(t, w)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "Laskar Pelangi", data["nama_buku"])
	})

	t.Run("不存在的图书返回404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/buku/999", nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		resp := decodeResponse(t, w)
		assert.Equal(t, "Buku tidak ditemukan", resp.Message)
	})

	t.Run("非数字ID返回400", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/buku/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookHandler_Delete(t *testing.T) {
	svc := newFakeBookService()
	_, err := svc.CreateBook(context.Background(), "Laskar Pelangi", 2005, "Bentang Pustaka", nil)
	require.NoError(t, err)
	r := newBookRouter(svc)

	w := doJSON(t, r, http.MethodDelete, "/api/buku/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	assert.Contains(t, resp.Message, "Laskar Pelangi")

	// 再删一次应报404
	w = doJSON(t, r, http.MethodDelete, "/api/buku/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
