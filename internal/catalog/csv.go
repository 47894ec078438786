package catalog

import (
	"encoding/csv"
	"errors"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/John-Robertt/videoreport/internal/domain"
)

func decodeCSV(r io.Reader, path string) (domain.Catalog, error) {
	// Excel 导出的 CSV 常带 BOM：有 BOM 时按 BOM 解码，没有则原样透传（不替换非法字节，交给行校验报错）。
	br := transform.NewReader(r, unicode.BOMOverride(encoding.Nop.NewDecoder()))

	cr := csv.NewReader(br)
	// FieldsPerRecord=0：每行字段数必须与表头一致，缺字段直接报错。
	cr.FieldsPerRecord = 0

	head, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &domain.ParseError{Path: path, Err: errMissingHeader}
		}
		return nil, csvError(err, path)
	}
	headLine, _ := cr.FieldPos(0)
	h, err := parseHeader(head)
	if err != nil {
		return nil, withLocation(err, path, headLine)
	}

	rv := newRowValidator()
	out := make(domain.Catalog, 0, 128)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err, path)
		}
		line, _ := cr.FieldPos(0)

		rec, err := h.record(row, false)
		if err != nil {
			return nil, withLocation(err, path, line)
		}
		if err := rv.check(rec); err != nil {
			return nil, withLocation(err, path, line)
		}
		out = append(out, rec)
	}
	return out, nil
}

// csvError 区分“不是合法 CSV”（ParseError）与底层读取失败（IOError）。
func csvError(err error, path string) error {
	var cpe *csv.ParseError
	if errors.As(err, &cpe) {
		return &domain.ParseError{Path: path, Line: cpe.Line, Err: cpe.Err}
	}
	return &domain.IOError{Op: "read", Path: path, Err: err}
}

// withLocation 为行级 ParseError 补上文件路径与行号。
func withLocation(err error, path string, line int) error {
	var pe *domain.ParseError
	if errors.As(err, &pe) {
		cp := *pe
		cp.Path = path
		if cp.Line == 0 {
			cp.Line = line
		}
		return &cp
	}
	return err
}
