package mysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/xiebiao/perpustakaan/internal/infrastructure/config"
	"github.com/xiebiao/perpustakaan/pkg/logger"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（生产环境应改用版本化迁移脚本）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := gormlogger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("gagal terhubung ke database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil koneksi SQL: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database tidak merespons: %w", err)
	}

	log := logger.Get()
	log.Info().
		Str("host", cfg.Database.Host).
		Str("dbname", cfg.Database.DBName).
		Msg("database connected")

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("gagal migrasi tabel: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&BookModel{},
		&LoanModel{},
		&LoanLineModel{},
	)
}

// UserModel GORM用户模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/user/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
// 4. 列名沿用既有库表（id_user等印尼语命名）
type UserModel struct {
	IDUser    uint      `gorm:"column:id_user;primaryKey"`
	Username  string    `gorm:"column:username;uniqueIndex;size:100;not null"`
	Password  string    `gorm:"column:password;size:255;not null"` // bcrypt哈希
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// BookModel GORM图书模型
type BookModel struct {
	IDBuku      uint      `gorm:"column:id_buku;primaryKey"`
	NamaBuku    string    `gorm:"column:nama_buku;size:200;not null"`
	TahunTerbit int       `gorm:"column:tahun_terbit;not null"`
	Penerbit    string    `gorm:"column:penerbit;size:100;not null"`
	Stok        int       `gorm:"column:stok;not null;default:1"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "buku"
}

// LoanModel GORM借阅头模型
// 与LoanLineModel是一对多关系，状态只有dipinjam/dikembalikan两个值
type LoanModel struct {
	IDPeminjaman    uint       `gorm:"column:id_peminjaman;primaryKey"`
	IDUser          uint       `gorm:"column:id_user;index;not null"`
	TanggalPinjam   time.Time  `gorm:"column:tanggal_pinjam;index;not null"`
	TanggalDeadline time.Time  `gorm:"column:tanggal_deadline;not null"`
	Status          string     `gorm:"column:status;size:20;not null;default:dipinjam"`
	TotalBuku       int        `gorm:"column:total_buku;not null;default:0"`
	TanggalKembali  *time.Time `gorm:"column:tanggal_kembali"`
}

// TableName 指定表名
func (LoanModel) TableName() string {
	return "peminjaman"
}

// LoanLineModel GORM借阅明细模型
// 注意：(id_peminjaman, id_buku)没有唯一约束，同一本书允许多条明细行
type LoanLineModel struct {
	IDDetail            uint       `gorm:"column:id_detail;primaryKey"`
	IDPeminjaman        uint       `gorm:"column:id_peminjaman;index;not null"`
	IDBuku              uint       `gorm:"column:id_buku;index;not null"`
	Jumlah              int        `gorm:"column:jumlah;not null;default:1"`
	Status              string     `gorm:"column:status;size:20;not null;default:dipinjam"`
	TanggalDikembalikan *time.Time `gorm:"column:tanggal_dikembalikan"`
}

// TableName 指定表名
func (LoanLineModel) TableName() string {
	return "detail_peminjaman"
}
