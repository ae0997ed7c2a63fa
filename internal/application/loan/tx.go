package loan

import (
	"context"
	"time"
)

// Transactor 事务边界接口（消费方定义）
// mysql.TxManager是生产实现；单元测试用直通的假实现即可
type Transactor interface {
	// Transaction 在一个数据库事务中执行fn
	// fn返回error时整体回滚，并且error原样传出（错误类别不丢失）
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// today 返回当天零点（借阅日期按天记录）
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
