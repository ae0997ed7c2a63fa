package dto

// RegisterRequest HTTP层注册请求
// 说明：HTTP层的DTO，binding tag只做格式校验，业务规则在领域层
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest 修改用户请求
// username/password都是可选项，指针区分"未传"和"传了空串"
type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,min=3,max=50"`
	Password *string `json:"password" binding:"omitempty,min=6,max=72"`
}

// UserResponse 用户响应（不包含密码）
type UserResponse struct {
	IDUser   uint   `json:"id_user"`
	Username string `json:"username"`
}

// UserListItem 用户列表项
type UserListItem struct {
	IDUser    uint   `json:"id_user"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

// LoginResponse 登录响应（包含Token）
type LoginResponse struct {
	IDUser       uint   `json:"id_user"`
	Username     string `json:"username"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
