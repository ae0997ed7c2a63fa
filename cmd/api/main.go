package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/perpustakaan/docs"
	appbook "github.com/xiebiao/perpustakaan/internal/application/book"
	apploan "github.com/xiebiao/perpustakaan/internal/application/loan"
	appuser "github.com/xiebiao/perpustakaan/internal/application/user"
	"github.com/xiebiao/perpustakaan/internal/domain/book"
	"github.com/xiebiao/perpustakaan/internal/domain/user"
	"github.com/xiebiao/perpustakaan/internal/infrastructure/config"
	"github.com/xiebiao/perpustakaan/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/perpustakaan/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/perpustakaan/internal/interface/http/handler"
	"github.com/xiebiao/perpustakaan/internal/interface/http/middleware"
	"github.com/xiebiao/perpustakaan/pkg/jwt"
	"github.com/xiebiao/perpustakaan/pkg/logger"
	"github.com/xiebiao/perpustakaan/pkg/metrics"
	"github.com/xiebiao/perpustakaan/pkg/response"
)

// @title           Perpustakaan API
// @version         1.0
// @description     图书馆管理服务：用户、图书、借阅与归还
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// main 主程序入口（手动依赖注入，wire版本见wire.go）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	// 2. 初始化存储
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init database")
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init redis")
	}

	// 3. 依赖注入（手动组装）
	// 组装链：Repository ← Service ← UseCase ← Handler

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	loanRepo := mysql.NewLoanRepository(db)
	txManager := mysql.NewTxManager(db, cfg.Database.TxTimeout)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)
	bookService := book.NewService(bookRepo)

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore, cfg.JWT.AccessTokenExpire)
	updateUserUseCase := appuser.NewUpdateUserUseCase(userService)
	listUsersUseCase := appuser.NewListUsersUseCase(userService)
	createBookUseCase := appbook.NewCreateBookUseCase(bookService)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService)
	getBookUseCase := appbook.NewGetBookUseCase(bookService)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookService)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookService)
	createLoanUseCase := apploan.NewCreateLoanUseCase(loanRepo, bookRepo, userRepo, txManager)
	listLoansUseCase := apploan.NewListLoansUseCase(loanRepo)
	loanDetailUseCase := apploan.NewLoanDetailUseCase(loanRepo)
	returnBooksUseCase := apploan.NewReturnBooksUseCase(loanRepo, bookRepo, txManager)

	// 接口层
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, updateUserUseCase, listUsersUseCase)
	bookHandler := handler.NewBookHandler(createBookUseCase, listBooksUseCase, getBookUseCase, updateBookUseCase, deleteBookUseCase)
	loanHandler := handler.NewLoanHandler(createLoanUseCase, listLoansUseCase, loanDetailUseCase, returnBooksUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 4. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(metrics.Middleware())

	registerRoutes(r, userHandler, bookHandler, loanHandler, authMiddleware)

	// 5. 启动服务，收到SIGINT/SIGTERM后优雅关闭
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("mode", cfg.Server.Mode).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	_ = redisClient.Close()
}

// registerRoutes 注册路由
// 鉴权策略：修改用户、借阅、归还需要Bearer Token，其余接口公开
func registerRoutes(
	r *gin.Engine,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	loanHandler *handler.LoanHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, "pong", gin.H{"status": "healthy"})
	})

	// Prometheus指标
	r.GET("/metrics", metrics.Handler())

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		// 用户模块
		api.POST("/register", userHandler.Register)
		api.POST("/login", userHandler.Login)
		api.GET("/users", userHandler.List)
		api.PUT("/users/:id", authMiddleware.RequireAuth(), userHandler.Update)

		// 图书模块
		buku := api.Group("/buku")
		{
			buku.GET("", bookHandler.List)
			buku.POST("", bookHandler.Create)
			buku.GET("/:id", bookHandler.Get)
			buku.PUT("/:id", bookHandler.Update)
			buku.DELETE("/:id", bookHandler.Delete)
		}

		// 借阅模块
		peminjaman := api.Group("/peminjaman")
		{
			peminjaman.GET("", loanHandler.List)
			peminjaman.GET("/:id", loanHandler.Detail)
			peminjaman.POST("", authMiddleware.RequireAuth(), loanHandler.Create)
			peminjaman.PUT("/:id/pengembalian", authMiddleware.RequireAuth(), loanHandler.Return)
		}
	}
}
