package report

import (
	"strings"
	"testing"
)

func TestMarkdown_ContainsSectionsAndTitles(t *testing.T) {
	md, err := Markdown(Render(sampleGrouped()))
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}

	for _, want := range []string{"Video Collection", "Category: Comedy", "Category: Horror", "Zootopia", "Aliens"} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown 缺少 %q：\n%s", want, md)
		}
	}
	if strings.Contains(md, "<table") || strings.Contains(md, "<td>") {
		t.Fatalf("markdown 不应残留表格标记：\n%s", md)
	}
	if strings.Index(md, "Category: Comedy") > strings.Index(md, "Category: Horror") {
		t.Fatalf("markdown 分节顺序不一致")
	}
}
