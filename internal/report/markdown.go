package report

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"github.com/John-Robertt/videoreport/internal/domain"
)

// Markdown 把报告转换为 Markdown，供无法渲染 HTML 的界面（例如 GUI 预览）展示。
// 报告本身仍以 HTML 为准；这里只是只读视图。
func Markdown(r domain.Report) (string, error) {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	md, err := conv.ConvertString(string(r))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}
