package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/xiebiao/perpustakaan/pkg/errors"
)

// ctxKey context键类型，避免与其他包的键冲突
type ctxKey struct{}

// txKey 事务句柄在context中的键
var txKey = ctxKey{}

// TxManager 事务管理器
// 设计说明：
// 1. 封装GORM的Transaction方法（BEGIN/COMMIT/ROLLBACK）
// 2. 通过context传递事务DB（避免全局变量，每个请求独立作用域）
// 3. 附带事务超时：超过timeout的事务整体回滚，错误映射为503
type TxManager struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB, timeout time.Duration) *TxManager {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TxManager{db: db, timeout: timeout}
}

// Transaction 执行事务
// fn内所有走dbFromContext的Repository操作都在同一事务中执行；
// fn返回error时自动ROLLBACK，返回nil时自动COMMIT。
// 回滚后原始error原样返回，错误类别（404/409/400）不会被压扁成500。
//
// 使用示例：
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    b, err := bookRepo.LockByID(ctx, bookID) // 行锁
//	    if err != nil {
//	        return err
//	    }
//	    if err := loanRepo.CreateHeader(ctx, l); err != nil {
//	        return err // 自动回滚
//	    }
//	    return bookRepo.UpdateStock(ctx, bookID, -jumlah)
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey, tx)
		return fn(txCtx)
	})

	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		return apperrors.ErrServiceUnavailable
	}
	return err
}
