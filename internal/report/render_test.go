package report

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/John-Robertt/videoreport/internal/domain"
)

func sampleGrouped() domain.GroupedCatalog {
	return domain.GroupedCatalog{
		{Name: "Comedy", Records: []domain.Record{
			{Title: "Zootopia", Category: "Comedy", Rating: "PG", Actors: "Ginnifer Goodwin", Aspect: "2.39:1", Format: "Blu-ray"},
		}},
		{Name: "Horror", Records: []domain.Record{
			{Title: "Aliens", Category: "Horror", Rating: "A", Actors: "first", Aspect: "1.85:1", Format: "DVD"},
			{Title: "Aliens", Category: "Horror", Rating: "B", Actors: "second", Aspect: "1.85:1", Format: "DVD"},
		}},
	}
}

func parse(t *testing.T, r domain.Report) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(r)))
	if err != nil {
		t.Fatalf("解析渲染结果失败：%v", err)
	}
	return doc
}

func TestRender_DocumentStructure(t *testing.T) {
	doc := parse(t, Render(sampleGrouped()))

	if got := doc.Find("head meta[charset]").AttrOr("charset", ""); !strings.EqualFold(got, "utf-8") {
		t.Fatalf("缺少 charset 声明：%q", got)
	}
	if strings.TrimSpace(doc.Find("head style").Text()) == "" {
		t.Fatalf("缺少内嵌样式表")
	}
	if doc.Find("link, script, img").Length() != 0 {
		t.Fatalf("文档不应引用外部资源")
	}

	h1 := doc.Find("body h1")
	if h1.Length() != 1 || h1.Text() != Title {
		t.Fatalf("一级标题不一致：n=%d text=%q", h1.Length(), h1.Text())
	}

	var sections []string
	doc.Find("body h2").Each(func(_ int, s *goquery.Selection) {
		sections = append(sections, s.Text())
	})
	if len(sections) != 2 || sections[0] != "Category: Comedy" || sections[1] != "Category: Horror" {
		t.Fatalf("分节顺序不一致：%v", sections)
	}

	tables := doc.Find("body table")
	if tables.Length() != 2 {
		t.Fatalf("期望 2 个表格，实际 %d", tables.Length())
	}
	tables.Each(func(_ int, tbl *goquery.Selection) {
		var head []string
		tbl.Find("th").Each(func(_ int, s *goquery.Selection) { head = append(head, s.Text()) })
		if strings.Join(head, "|") != "Title|Rating|Actors|Aspect|Format" {
			t.Fatalf("表头不一致：%v", head)
		}
	})

	// 每条记录一行、每个字段一格；category 不重复成列。
	rows := tables.Eq(1).Find("tr").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Find("td").Length() > 0
	})
	if rows.Length() != 2 {
		t.Fatalf("Horror 期望 2 行，实际 %d", rows.Length())
	}
	var cells []string
	rows.Eq(0).Find("td").Each(func(_ int, s *goquery.Selection) { cells = append(cells, s.Text()) })
	if strings.Join(cells, "|") != "Aliens|A|first|1.85:1|DVD" {
		t.Fatalf("单元格不一致：%v", cells)
	}
	// 同名 Aliens：A 行在 B 行之前。
	if rows.Eq(1).Find("td").Eq(1).Text() != "B" {
		t.Fatalf("同名记录顺序被打乱")
	}
}

func TestRender_Deterministic(t *testing.T) {
	a := Render(sampleGrouped())
	b := Render(sampleGrouped())
	if a != b {
		t.Fatalf("相同输入必须得到相同输出")
	}
}

func TestRender_EmptyGrouping(t *testing.T) {
	r := Render(nil)
	doc := parse(t, r)

	if doc.Find("h1").Text() != Title {
		t.Fatalf("空分组也必须有固定标题")
	}
	if n := doc.Find("h2").Length(); n != 0 {
		t.Fatalf("空分组不应有分节，实际 %d", n)
	}
	if n := doc.Find("table").Length(); n != 0 {
		t.Fatalf("空分组不应有表格，实际 %d", n)
	}
}

func TestRender_EscapesFieldValues(t *testing.T) {
	g := domain.GroupedCatalog{
		{Name: "<b>Cult</b>", Records: []domain.Record{
			{Title: "<script>alert(1)</script>", Category: "<b>Cult</b>", Rating: "R&R", Actors: `"Q" & 'A'`, Aspect: "4:3", Format: "VHS"},
		}},
	}

	r := string(Render(g))
	for _, raw := range []string{"<script>alert(1)</script>", "<b>Cult</b>", "R&R"} {
		if strings.Contains(r, raw) {
			t.Fatalf("字段值未转义：%q 原样出现在输出中", raw)
		}
	}
	if !strings.Contains(r, "&lt;script&gt;") || !strings.Contains(r, "R&amp;R") {
		t.Fatalf("转义结果不符合预期：%s", r)
	}

	// 转义后文本内容应原样还原，且不产生额外元素。
	doc := parse(t, domain.Report(r))
	if doc.Find("body script, body b").Length() != 0 {
		t.Fatalf("字段值被当作标记解析")
	}
	if got := doc.Find("td").First().Text(); got != "<script>alert(1)</script>" {
		t.Fatalf("title 文本不一致：%q", got)
	}
	if got := doc.Find("h2").Text(); got != "Category: <b>Cult</b>" {
		t.Fatalf("分类标题文本不一致：%q", got)
	}
}
