package ui

import (
	"strings"

	"github.com/John-Robertt/videoreport/internal/domain"
	"github.com/John-Robertt/videoreport/internal/report"
)

// previewMarkdown 把报告转换为 RichText 能正确展示的 Markdown。
//
// fyne 的 Markdown 解析器没有表格扩展，管道表格会被挤成同一段落；
// 因此每个表格块被包进代码块，以等宽预格式文本展示，列对齐得以保留。
func previewMarkdown(doc domain.Report) (string, error) {
	md, err := report.Markdown(doc)
	if err != nil {
		return "", err
	}
	return fenceTables(md), nil
}

func fenceTables(md string) string {
	lines := strings.Split(md, "\n")

	var b strings.Builder
	for i := 0; i < len(lines); {
		if !isTableLine(lines[i]) {
			b.WriteString(lines[i])
			b.WriteByte('\n')
			i++
			continue
		}

		j := i
		for j < len(lines) && isTableLine(lines[j]) {
			j++
		}
		block := lines[i:j]
		// 围栏必须比块内最长的反引号串更长，否则单元格里的 ``` 会提前结束代码块。
		fence := strings.Repeat("`", max(3, longestBacktickRun(block)+1))
		b.WriteString(fence)
		b.WriteByte('\n')
		for _, l := range block {
			b.WriteString(l)
			b.WriteByte('\n')
		}
		b.WriteString(fence)
		b.WriteByte('\n')
		i = j
	}
	return strings.TrimRight(b.String(), "\n")
}

func isTableLine(l string) bool {
	return strings.HasPrefix(strings.TrimSpace(l), "|")
}

func longestBacktickRun(lines []string) int {
	longest := 0
	for _, l := range lines {
		run := 0
		for _, r := range l {
			if r == '`' {
				run++
				longest = max(longest, run)
			} else {
				run = 0
			}
		}
	}
	return longest
}
