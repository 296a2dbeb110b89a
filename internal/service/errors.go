package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrPostNotFound      = errors.New("文章不存在")
	ErrEntryNotFound     = errors.New("留言不存在")
	ErrNameRequired      = errors.New("名字不能为空")
	ErrMessageRequired   = errors.New("留言内容不能为空")
	ErrNameTooLong       = errors.New("名字长度超过限制")
	ErrMessageTooLong    = errors.New("留言长度超过限制")
	ErrSignFailed        = errors.New("留言提交失败，请稍后重试")
	ErrMailNotConfigured = errors.New("邮件服务未配置")
	ErrMailSendFailed    = errors.New("邮件发送失败，请稍后重试")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrPostNotFound:      NotFound,
	ErrEntryNotFound:     NotFound,
	ErrNameRequired:      BadRequest,
	ErrMessageRequired:   BadRequest,
	ErrNameTooLong:       BadRequest,
	ErrMessageTooLong:    BadRequest,
	ErrSignFailed:        InternalServerError,
	ErrMailNotConfigured: InternalServerError,
	ErrMailSendFailed:    InternalServerError,
	UnExpectedError:      InternalServerError,
}
