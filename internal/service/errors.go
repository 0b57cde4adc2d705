package service

import (
	"errors"
	"fmt"
)

// ==================== 错误分类 ====================
//
// ValidationError        客户端可检出的非法输入，在任何持久化/网络动作之前抛出
// InvalidTransitionError 状态机不允许的转移
// BusinessError          领域规则拒绝，对应响应信封里 code != 200
//
// 任何错误都只影响产生它的那一条命令，不会导致进程退出，也不会自动重试

// ValidationError 输入校验失败，指明出错字段
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("参数校验失败 [%s]: %s", e.Field, e.Reason)
}

// NewValidationError 创建校验错误
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError 判断是否为校验错误
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// InvalidTransitionError 非法的状态转移
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s 不允许从 %s 转移到 %s", e.Entity, e.From, e.To)
}

// NewInvalidTransitionError 创建状态转移错误
func NewInvalidTransitionError(entity, from, to string) error {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

// IsInvalidTransitionError 判断是否为状态转移错误
func IsInvalidTransitionError(err error) bool {
	var te *InvalidTransitionError
	return errors.As(err, &te)
}

// BusinessError 领域规则拒绝
type BusinessError struct {
	Code    int
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

// NewBusinessError 创建业务错误
func NewBusinessError(code int, message string) error {
	return &BusinessError{Code: code, Message: message}
}
