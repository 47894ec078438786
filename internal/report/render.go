package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/John-Robertt/videoreport/internal/domain"
)

// Title 是报告固定的一级标题。
const Title = "The Goldberg's Video Collection"

//go:embed style.css
var styleSheet string

var page = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
{{.Style}}</style>
</head>
<body>
<h1 align="center">{{.Title}}</h1>
{{- range .Groups}}
<h2>Category: {{.Name}}</h2>
<table>
<tr>{{range $.Columns}}<th>{{.}}</th>{{end}}</tr>
{{- range .Records}}
<tr>{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</table>
{{- end}}
</body>
</html>
`))

type pageData struct {
	Title   string
	Style   template.CSS
	Columns []string
	Groups  domain.GroupedCatalog
}

// Render 把分组结果渲染为完整、自包含的 HTML 文档。
//
// 约束：
// - 纯函数：相同输入 => 字节级相同输出（不含时间戳/随机 id/locale 格式化）
// - 所有字段值由 html/template 按上下文转义（输入是外部自由文本）
// - 样式表在编译期内嵌，文档不引用任何外部资源
func Render(g domain.GroupedCatalog) domain.Report {
	var b strings.Builder
	err := page.Execute(&b, pageData{
		Title:   Title,
		Style:   template.CSS(styleSheet),
		Columns: domain.DisplayColumns,
		Groups:  g,
	})
	if err != nil {
		// 模板与数据类型都是固定的，执行失败只可能是编程错误。
		panic(fmt.Sprintf("report: 渲染模板失败：%v", err))
	}
	return domain.Report(b.String())
}
