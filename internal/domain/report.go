package domain

import (
	"encoding/json"
	"sort"
)

// Report 是最终渲染出的完整 HTML 文档（不可变；写盘或展示一次即结束生命周期）。
type Report string

const (
	StatusWritten  = "written"
	StatusRendered = "rendered"
	StatusFailed   = "failed"
)

// RunSummary 是 CLI 对外稳定输出（stdout 非 TTY 时的 JSON）的结构。
//
// 只包含确定性字段：不记录时间戳，便于脚本比对。
type RunSummary struct {
	Input  string `json:"input"`
	Output string `json:"output"`

	Status    string `json:"status"`
	ErrorCode string `json:"error_code"`
	ErrorMsg  string `json:"error_msg"`

	Records    int               `json:"records"`
	Categories []CategorySummary `json:"categories"`
}

type CategorySummary struct {
	Name    string `json:"name"`
	Records int    `json:"records"`
}

// Summarize 由分组结果生成各分类的统计。
func Summarize(g GroupedCatalog) []CategorySummary {
	out := make([]CategorySummary, 0, len(g))
	for _, c := range g {
		out = append(out, CategorySummary{Name: c.Name, Records: len(c.Records)})
	}
	return out
}

// Finalize 做两件事：
// 1) categories 稳定排序：按 name 字节序（与报告分节顺序一致）
// 2) records 由 categories 求和得出
func (s *RunSummary) Finalize() {
	if s.Categories == nil {
		s.Categories = []CategorySummary{}
	}
	sort.SliceStable(s.Categories, func(i, j int) bool {
		return s.Categories[i].Name < s.Categories[j].Name
	})

	n := 0
	for _, c := range s.Categories {
		n += c.Records
	}
	s.Records = n
}

// MarshalJSON 仅用于集中约束输出的稳定性（避免未来不小心引入非确定字段）。
// 当前只是透传 encoding/json 的默认行为。
func (s RunSummary) MarshalJSON() ([]byte, error) {
	type Alias RunSummary
	return json.Marshal(Alias(s))
}
