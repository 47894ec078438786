package domain

import (
	"errors"
	"fmt"
)

const (
	ErrCodeIOFailed    = "io_failed"
	ErrCodeParseFailed = "parse_failed"
)

// IOError 表示输入无法打开/读取，或输出无法写入。
type IOError struct {
	Op   string // "open" / "read" / "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s：%s 失败：%v", ErrCodeIOFailed, e.Op, e.Err)
	}
	return fmt.Sprintf("%s：%s %q 失败：%v", ErrCodeIOFailed, e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError 表示输入无法解码为表格、表头缺列，或某一行缺值/值非法。
//
// Line 是 1-based 行号（CSV 为物理行号，XLSX 为工作表行号）；0 表示无法定位到行。
type ParseError struct {
	Path   string
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	msg := ErrCodeParseFailed + "："
	if e.Path != "" {
		msg += fmt.Sprintf("%q ", e.Path)
	}
	if e.Line > 0 {
		msg += fmt.Sprintf("第 %d 行 ", e.Line)
	}
	if e.Column != "" {
		msg += fmt.Sprintf("列 %s ", e.Column)
	}
	return msg + fmt.Sprintf("解析失败：%v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Code 从 error 中提取 error_code；既不是 IOError 也不是 ParseError 时返回空串。
func Code(err error) string {
	var pe *ParseError
	if errors.As(err, &pe) {
		return ErrCodeParseFailed
	}
	var ie *IOError
	if errors.As(err, &ie) {
		return ErrCodeIOFailed
	}
	return ""
}
