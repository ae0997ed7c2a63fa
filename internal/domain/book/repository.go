package book

import (
	"context"
)

// Repository 图书仓储接口（依赖倒置原则）
// 设计说明：
// 1. 由domain层定义接口，infrastructure层实现
// 2. LockByID/UpdateStock参与借阅事务，实现方必须从context提取事务句柄
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// Update 更新图书信息
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书
	// 不存在时返回ErrBookNotFound
	Delete(ctx context.Context, id uint) error

	// List 返回全部图书，按id_buku降序
	List(ctx context.Context) ([]*Book, error)

	// LockByID 悲观锁查询图书（借阅创建时锁定库存行）
	// 使用SELECT FOR UPDATE锁定行，防止检查与扣减之间被并发修改
	LockByID(ctx context.Context, id uint) (*Book, error)

	// UpdateStock 原子更新库存
	// delta为正数表示增加（归还），负数表示减少（借出）
	// 条件更新保证stok不会被扣成负数，不足时返回ErrInsufficientStock
	UpdateStock(ctx context.Context, id uint, delta int) error
}
