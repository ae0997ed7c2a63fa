package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appuser "github.com/xiebiao/perpustakaan/internal/application/user"
	"github.com/xiebiao/perpustakaan/internal/interface/http/dto"
	"github.com/xiebiao/perpustakaan/pkg/response"
)

// UserHandler 用户HTTP处理器
// 设计说明：
// 1. Handler只负责HTTP相关的事情：解析请求、调用应用层、返回响应
// 2. 不包含业务逻辑（业务逻辑在domain和application层）
// 3. 使用依赖注入，便于测试
type UserHandler struct {
	registerUseCase   *appuser.RegisterUseCase
	loginUseCase      *appuser.LoginUseCase
	updateUserUseCase *appuser.UpdateUserUseCase
	listUsersUseCase  *appuser.ListUsersUseCase
}

// NewUserHandler 创建用户处理器
func NewUserHandler(
	registerUseCase *appuser.RegisterUseCase,
	loginUseCase *appuser.LoginUseCase,
	updateUserUseCase *appuser.UpdateUserUseCase,
	listUsersUseCase *appuser.ListUsersUseCase,
) *UserHandler {
	return &UserHandler{
		registerUseCase:   registerUseCase,
		loginUseCase:      loginUseCase,
		updateUserUseCase: updateUserUseCase,
		listUsersUseCase:  listUsersUseCase,
	}
}

// Register 用户注册
// @Summary      用户注册
// @Description  创建新用户账号，用户名全局唯一
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      201 {object} response.Response{data=dto.UserResponse} "注册成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "用户名已存在"
// @Router       /api/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Username dan password wajib diisi")
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), appuser.RegisterRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Registrasi berhasil", &dto.UserResponse{
		IDUser:   result.IDUser,
		Username: result.Username,
	})
}

// Login 用户登录
// @Summary      用户登录
// @Description  验证用户名密码，返回JWT Token
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} response.Response{data=dto.LoginResponse} "登录成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "密码错误"
// @Failure      404 {object} response.Response "用户名不存在"
// @Router       /api/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Username dan password wajib diisi")
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), appuser.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "Login berhasil", &dto.LoginResponse{
		IDUser:       result.IDUser,
		Username:     result.Username,
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	})
}

// Update 修改用户
// @Summary      修改用户
// @Description  修改用户名和/或密码，两者至少提交一个
// @Tags         用户
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "用户ID"
// @Param        request body dto.UpdateUserRequest true "要修改的字段"
// @Success      200 {object} response.Response{data=dto.UserResponse} "修改成功"
// @Failure      400 {object} response.Response "参数错误或无字段可更新"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "用户不存在"
// @Failure      409 {object} response.Response "用户名已存在"
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID user tidak valid")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Format data tidak valid")
		return
	}

	result, err := h.updateUserUseCase.Execute(c.Request.Context(), appuser.UpdateUserRequest{
		IDUser:   uint(id),
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "User berhasil diupdate", &dto.UserResponse{
		IDUser:   result.IDUser,
		Username: result.Username,
	})
}

// List 用户列表
// @Summary      用户列表
// @Description  列出所有用户（不含密码）
// @Tags         用户
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.UserListItem}
// @Router       /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.listUsersUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.UserListItem, len(users))
	for i, u := range users {
		items[i] = dto.UserListItem{
			IDUser:    u.IDUser,
			Username:  u.Username,
			CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}
	response.Success(c, "", items)
}
