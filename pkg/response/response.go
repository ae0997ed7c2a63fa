package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/perpustakaan/pkg/errors"
	"github.com/xiebiao/perpustakaan/pkg/logger"
)

// Response 统一响应结构
// 设计说明：
// 1. Status固定为"success"或"error"，方便前端统一判断
// 2. Message是用户友好的提示信息
// 3. Data是业务数据，失败时省略
// 4. HTTP状态码承载错误类别（400/401/404/409/500），不再统一返回200
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应（HTTP 200）
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Created 创建成功响应（HTTP 201）
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
//
// HTTP状态码由AppError.HTTPStatus()推导，错误类别经过事务回滚依然保留
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 内部错误的细节只进日志，不回传客户端
	if appErr.Err != nil {
		log := logger.Get()
		log.Error().
			Err(appErr.Err).
			Int("code", appErr.Code).
			Str("path", c.FullPath()).
			Msg("request failed")
	}

	c.JSON(appErr.HTTPStatus(), Response{
		Status:  "error",
		Message: appErr.Message,
	})
}

// BadRequest 参数绑定失败的快捷响应
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Status:  "error",
		Message: message,
	})
}
