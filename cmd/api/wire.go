//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 使用方式：
//
//	wire gen ./cmd/api
//
// 生成wire_gen.go后，可用InitializeApp()替代main.go中的手动组装。
// 两份组装代码描述同一条依赖链，wire在编译期校验其完整性。

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	appbook "github.com/xiebiao/perpustakaan/internal/application/book"
	apploan "github.com/xiebiao/perpustakaan/internal/application/loan"
	appuser "github.com/xiebiao/perpustakaan/internal/application/user"
	"github.com/xiebiao/perpustakaan/internal/domain/book"
	"github.com/xiebiao/perpustakaan/internal/domain/loan"
	"github.com/xiebiao/perpustakaan/internal/domain/user"
	"github.com/xiebiao/perpustakaan/internal/infrastructure/config"
	"github.com/xiebiao/perpustakaan/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/perpustakaan/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/perpustakaan/internal/interface/http/handler"
	"github.com/xiebiao/perpustakaan/internal/interface/http/middleware"
	"github.com/xiebiao/perpustakaan/pkg/jwt"
	"github.com/xiebiao/perpustakaan/pkg/metrics"
	"gorm.io/gorm"
)

// infrastructureSet 基础设施层：配置、MySQL、Redis
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

// repositorySet 仓储层
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewBookRepository,
	mysql.NewLoanRepository,
	provideTxManager,
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	user.NewService,
	book.NewService,
)

// applicationSet 应用层用例
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,
	provideLoginUseCase,
	appuser.NewUpdateUserUseCase,
	appuser.NewListUsersUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	provideCreateLoanUseCase,
	apploan.NewListLoansUseCase,
	apploan.NewLoanDetailUseCase,
	provideReturnBooksUseCase,
)

// middlewareSet JWT管理器、Session存储、认证中间件
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器
var handlerSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewBookHandler,
	handler.NewLoanHandler,
)

// provideJWTManager 从配置提取JWT参数
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideTxManager 事务超时来自配置，wire无法自动提取time.Duration
func provideTxManager(cfg *config.Config, db *gorm.DB) *mysql.TxManager {
	return mysql.NewTxManager(db, cfg.Database.TxTimeout)
}

// provideLoginUseCase Session有效期与AccessToken有效期对齐
func provideLoginUseCase(
	cfg *config.Config,
	userService user.Service,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
) *appuser.LoginUseCase {
	return appuser.NewLoginUseCase(userService, jwtManager, sessionStore, cfg.JWT.AccessTokenExpire)
}

// provideCreateLoanUseCase *mysql.TxManager到Transactor接口的绑定
func provideCreateLoanUseCase(
	loanRepo loan.Repository,
	bookRepo book.Repository,
	userRepo user.Repository,
	txManager *mysql.TxManager,
) *apploan.CreateLoanUseCase {
	return apploan.NewCreateLoanUseCase(loanRepo, bookRepo, userRepo, txManager)
}

// provideReturnBooksUseCase *mysql.TxManager到Transactor接口的绑定
func provideReturnBooksUseCase(
	loanRepo loan.Repository,
	bookRepo book.Repository,
	txManager *mysql.TxManager,
) *apploan.ReturnBooksUseCase {
	return apploan.NewReturnBooksUseCase(loanRepo, bookRepo, txManager)
}

// provideGinEngine 创建并配置Gin引擎（路由与main.go的registerRoutes一致）
func provideGinEngine(
	cfg *config.Config,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	loanHandler *handler.LoanHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(metrics.Middleware())

	registerRoutes(r, userHandler, bookHandler, loanHandler, authMiddleware)
	return r
}

// InitializeApp 组装整个应用
// wire在编译期分析依赖链并生成初始化代码（wire_gen.go）
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
