package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/perpustakaan/internal/domain/book"
	apperrors "github.com/xiebiao/perpustakaan/pkg/errors"
)

// bookRepository 图书仓储实现（MySQL）
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		NamaBuku:    b.NamaBuku,
		TahunTerbit: b.TahunTerbit,
		Penerbit:    b.Penerbit,
		Stok:        b.Stok,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "Gagal menambahkan buku")
	}

	b.ID = model.IDBuku
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).First(&model, "id_buku = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "Gagal mengambil data buku")
	}

	return toBookEntity(&model), nil
}

// Update 更新图书信息
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	result := r.db.WithContext(ctx).Model(&BookModel{}).
		Where("id_buku = ?", b.ID).
		Updates(map[string]interface{}{
			"nama_buku":    b.NamaBuku,
			"tahun_terbit": b.TahunTerbit,
			"penerbit":     b.Penerbit,
			"stok":         b.Stok,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Gagal mengupdate buku")
	}

	return nil
}

// Delete 删除图书
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&BookModel{}, "id_buku = ?", id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Gagal menghapus buku")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// List 返回全部图书，按id_buku降序（新书在前）
func (r *bookRepository) List(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	if err := r.db.WithContext(ctx).Order("id_buku DESC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "Gagal mengambil daftar buku")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// LockByID 悲观锁查询图书（借阅创建时使用）
// SELECT ... FOR UPDATE锁定行，事务提交或回滚前其他事务无法修改该行库存
func (r *bookRepository) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	db := dbFromContext(ctx, r.db)
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "id_buku = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "Gagal mengunci data buku")
	}

	return toBookEntity(&model), nil
}

// UpdateStock 原子更新库存
// UPDATE buku SET stok = stok + delta WHERE id_buku = ? AND stok + delta >= 0
// 条件更新在扣减路径上消除了check-then-act竞态：零行受影响即库存不足
func (r *bookRepository) UpdateStock(ctx context.Context, id uint, delta int) error {
	db := dbFromContext(ctx, r.db)
	result := db.Model(&BookModel{}).
		Where("id_buku = ?", id).
		Where("stok + ? >= 0", delta).
		Update("stok", gorm.Expr("stok + ?", delta))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Gagal mengupdate stok")
	}

	if result.RowsAffected == 0 {
		// 可能是图书不存在，也可能是库存不足，再查一次区分
		var model BookModel
		if err := db.First(&model, "id_buku = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.ErrBookNotFound
			}
			return apperrors.Wrap(err, "Gagal mengambil data buku")
		}
		return book.ErrInsufficientStock
	}

	return nil
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:          model.IDBuku,
		NamaBuku:    model.NamaBuku,
		TahunTerbit: model.TahunTerbit,
		Penerbit:    model.Penerbit,
		Stok:        model.Stok,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
