package catalog

import (
	"errors"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/John-Robertt/videoreport/internal/domain"
)

// rowValidator 用 struct tag 校验单条 Record；错误映射为带列名的 ParseError。
type rowValidator struct {
	v *validator.Validate
}

func newRowValidator() rowValidator {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("utf8", func(fl validator.FieldLevel) bool {
		return utf8.ValidString(fl.Field().String())
	})

	// 错误信息里使用输入列名（json tag），而不是 Go 字段名。
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return rowValidator{v: v}
}

func (rv rowValidator) check(rec domain.Record) error {
	err := rv.v.Struct(rec)
	if err == nil {
		return nil
	}
	var fes validator.ValidationErrors
	if !errors.As(err, &fes) || len(fes) == 0 {
		return &domain.ParseError{Err: err}
	}
	// 只报告第一处问题。
	fe := fes[0]
	return &domain.ParseError{Column: fe.Field(), Err: errors.New(friendlyMessage(fe))}
}

func friendlyMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "值不能为空"
	case "utf8":
		return "值不是合法的 UTF-8"
	default:
		return "值非法"
	}
}
