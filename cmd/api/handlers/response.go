package handlers

import (
	"github.com/cloudwego/hertz/pkg/app"

	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Success bool        `json:"success"`
}

// SendResponse pack response
// 所有出口统一走这里 任意error经ConvertErr规整 HTTP状态码由错误码推导
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(Err.HTTPStatus(), Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
		Success: Err.ErrCode == errno.SuccessCode,
	})
}

// PageData 分页响应体
type PageData struct {
	Items    interface{} `json:"items"`
	Total    int64       `json:"total"`
	PageNum  int64       `json:"page_num"`
	PageSize int64       `json:"page_size"`
}

const identityKey = "user_id"

// SetAuthUserId 认证中间件写入调用方身份
func SetAuthUserId(c *app.RequestContext, userId int64) {
	c.Set(identityKey, userId)
}

// AuthUserId 取认证中间件写入的调用方身份 handler显式传给service
func AuthUserId(c *app.RequestContext) (int64, error) {
	v, ok := c.Get(identityKey)
	if !ok {
		return 0, errno.AuthorizationFailedErr
	}
	userId, ok := v.(int64)
	if !ok || userId == 0 {
		return 0, errno.AuthorizationFailedErr
	}
	return userId, nil
}

// PathInt64 路径参数必须是合法int64 否则400而不是把烂ID塞给存储层
func PathInt64(c *app.RequestContext, name string) (int64, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, errno.ParamErr.WithMessage(name + " missing")
	}
	id, err := utils.ConvertStringToInt64(raw)
	if err != nil || id <= 0 {
		return 0, errno.ParamErr.WithMessage(name + " is invalid")
	}
	return id, nil
}
