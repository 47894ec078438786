package catalog

import (
	"errors"
	"fmt"

	"github.com/John-Robertt/videoreport/internal/domain"
)

var errMissingHeader = errors.New("缺少表头行")

// header 记录每个必需列在原始行中的下标（顺序同 domain.Columns）。
type header struct {
	idx []int
}

// parseHeader 按列名精确匹配必需列；未识别的列直接忽略。
func parseHeader(cells []string) (header, error) {
	pos := make(map[string]int, len(cells))
	for i, c := range cells {
		if _, ok := pos[c]; ok {
			if isRequired(c) {
				return header{}, &domain.ParseError{Column: c, Err: fmt.Errorf("表头重复列 %q", c)}
			}
			continue
		}
		pos[c] = i
	}

	h := header{idx: make([]int, len(domain.Columns))}
	for i, name := range domain.Columns {
		p, ok := pos[name]
		if !ok {
			return header{}, &domain.ParseError{Column: name, Err: fmt.Errorf("表头缺少必需列 %q", name)}
		}
		h.idx[i] = p
	}
	return h, nil
}

// record 按表头映射取值；pad=true 时越界单元格视为空串（XLSX 会省略行尾空单元格）。
func (h header) record(cells []string, pad bool) (domain.Record, error) {
	v := make([]string, len(h.idx))
	for i, p := range h.idx {
		if p >= len(cells) {
			if !pad {
				return domain.Record{}, &domain.ParseError{Column: domain.Columns[i], Err: errors.New("缺少字段值")}
			}
			continue
		}
		v[i] = cells[p]
	}
	return domain.Record{
		Title:    v[0],
		Category: v[1],
		Rating:   v[2],
		Actors:   v[3],
		Aspect:   v[4],
		Format:   v[5],
	}, nil
}

func isRequired(name string) bool {
	for _, c := range domain.Columns {
		if c == name {
			return true
		}
	}
	return false
}
