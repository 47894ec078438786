package catalog

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/John-Robertt/videoreport/internal/domain"
)

// Format 是输入表格的编码格式。
type Format int

const (
	FormatCSV Format = iota
	FormatXLSX
)

func (f Format) String() string {
	switch f {
	case FormatXLSX:
		return "xlsx"
	default:
		return "csv"
	}
}

// FormatFor 按扩展名选择解码格式：.xlsx 走工作簿，其余一律按 CSV 处理。
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}

// Load 读取 path 并解析为 Catalog（保持输入顺序）。
//
// 错误：
// - 打不开/读不了：*domain.IOError
// - 表头缺列、某行缺值/值非法、无法解码为表格：*domain.ParseError
//
// 解析是严格的：任意一行失败即整体失败，不返回部分结果。
func Load(path string) (domain.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	return decode(f, FormatFor(path), path)
}

// Decode 从内存中的字节源解析 Catalog；语义与 Load 相同，只是不涉及文件系统。
func Decode(r io.Reader, format Format) (domain.Catalog, error) {
	return decode(r, format, "")
}

func decode(r io.Reader, format Format, path string) (domain.Catalog, error) {
	switch format {
	case FormatXLSX:
		return decodeXLSX(r, path)
	default:
		return decodeCSV(r, path)
	}
}
