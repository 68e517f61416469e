package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// Init 在 gin 的校验引擎上注册自定义标签
//
//	eth_addr:      非零地址 (EIP-55 可选)
//	token_amount:  非负十进制数，不限小数位 (精度由 units.ToBaseUnits 按配置的 decimals 检查)
//	uint_string:   非负十进制整数
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validate = v
		register(v)
	}
}

// New returns a standalone validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New()
	register(v)
	return v
}

func register(v *validator.Validate) {
	_ = v.RegisterValidation("eth_addr", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	_ = v.RegisterValidation("token_amount", func(fl validator.FieldLevel) bool {
		return IsDecimal(fl.Field().String())
	})
	_ = v.RegisterValidation("uint_string", func(fl validator.FieldLevel) bool {
		return IsValidInteger(fl.Field().String())
	})
}

// GetErrorMsg translates validation errors into user-friendly messages
func GetErrorMsg(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var errMsgs []string
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 不能为空", field))
			case "eth_addr":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 不是合法的非零地址", field))
			case "token_amount":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 不是合法的非负十进制金额", field))
			case "uint_string":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 必须是非负整数", field))
			case "oneof":
				errMsgs = append(errMsgs, fmt.Sprintf("%s 必须是 [%s] 之一", field, e.Param()))
			default:
				errMsgs = append(errMsgs, fmt.Sprintf("%s 校验失败 (%s)", field, e.Tag()))
			}
		}
		return strings.Join(errMsgs, "; ")
	}
	return "请求参数错误"
}

// Tag reports the first failing tag, "" when err is not a validation error.
func Tag(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return validationErrors[0].Tag()
	}
	return ""
}
