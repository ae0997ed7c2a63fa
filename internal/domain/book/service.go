package book

import (
	"context"
	"strings"
)

// Service 图书领域服务接口
// 封装目录CRUD的业务规则校验，校验通过后委托Repository
type Service interface {
	// CreateBook 新增图书
	// 业务规则：
	// - 书名、出版社非空
	// - 1900 ≤ 出版年份 ≤ 2100
	// - stok为nil时默认1
	CreateBook(ctx context.Context, namaBuku string, tahunTerbit int, penerbit string, stok *int) (*Book, error)

	// GetBookByID 根据ID获取图书详情
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// UpdateBook 更新图书
	// 同样的字段校验；stok为nil时保留原库存
	UpdateBook(ctx context.Context, id uint, namaBuku string, tahunTerbit int, penerbit string, stok *int) (*Book, error)

	// DeleteBook 删除图书，返回被删图书（用于响应中回显书名）
	DeleteBook(ctx context.Context, id uint) (*Book, error)

	// ListBooks 返回全部图书
	ListBooks(ctx context.Context) ([]*Book, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 新增图书
func (s *service) CreateBook(ctx context.Context, namaBuku string, tahunTerbit int, penerbit string, stok *int) (*Book, error) {
	namaBuku = strings.TrimSpace(namaBuku)
	penerbit = strings.TrimSpace(penerbit)

	if err := validateFields(namaBuku, tahunTerbit, penerbit); err != nil {
		return nil, err
	}

	stokValue := DefaultStok
	if stok != nil {
		if *stok < 0 {
			return nil, ErrInvalidStok
		}
		stokValue = *stok
	}

	b := NewBook(namaBuku, tahunTerbit, penerbit, stokValue)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateBook 更新图书
func (s *service) UpdateBook(ctx context.Context, id uint, namaBuku string, tahunTerbit int, penerbit string, stok *int) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	namaBuku = strings.TrimSpace(namaBuku)
	penerbit = strings.TrimSpace(penerbit)

	if err := validateFields(namaBuku, tahunTerbit, penerbit); err != nil {
		return nil, err
	}

	// 未提交stok时保留当前库存，避免把在借扣减过的库存覆盖掉
	stokValue := b.Stok
	if stok != nil {
		if *stok < 0 {
			return nil, ErrInvalidStok
		}
		stokValue = *stok
	}

	b.UpdateInfo(namaBuku, tahunTerbit, penerbit, stokValue)

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return b, nil
}

// ListBooks 返回全部图书
func (s *service) ListBooks(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx)
}

// validateFields 目录字段校验
func validateFields(namaBuku string, tahunTerbit int, penerbit string) error {
	if namaBuku == "" || penerbit == "" || tahunTerbit == 0 {
		return ErrMissingFields
	}
	if tahunTerbit < MinTahunTerbit || tahunTerbit > MaxTahunTerbit {
		return ErrInvalidTahunTerbit
	}
	return nil
}
