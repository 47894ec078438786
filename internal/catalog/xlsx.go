package catalog

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/John-Robertt/videoreport/internal/domain"
)

// decodeXLSX 读取工作簿的第一个工作表：首个非空行是表头，其后每个非空行一条记录。
func decodeXLSX(r io.Reader, path string) (domain.Catalog, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &domain.ParseError{Path: path, Err: fmt.Errorf("无法解码为 XLSX 工作簿：%w", err)}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &domain.ParseError{Path: path, Err: errors.New("工作簿中没有工作表")}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &domain.ParseError{Path: path, Err: fmt.Errorf("读取工作表 %q 失败：%w", sheets[0], err)}
	}

	var (
		h       header
		hasHead bool
	)
	rv := newRowValidator()
	out := make(domain.Catalog, 0, len(rows))
	for i, row := range rows {
		line := i + 1
		if isEmptyRow(row) {
			continue
		}
		if !hasHead {
			if h, err = parseHeader(row); err != nil {
				return nil, withLocation(err, path, line)
			}
			hasHead = true
			continue
		}

		rec, err := h.record(row, true)
		if err != nil {
			return nil, withLocation(err, path, line)
		}
		if err := rv.check(rec); err != nil {
			return nil, withLocation(err, path, line)
		}
		out = append(out, rec)
	}
	if !hasHead {
		return nil, &domain.ParseError{Path: path, Err: errMissingHeader}
	}
	return out, nil
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
