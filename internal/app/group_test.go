package app

import (
	"testing"

	"github.com/John-Robertt/videoreport/internal/domain"
)

func TestGroupByCategory_CategoryOrder(t *testing.T) {
	cat := domain.Catalog{
		{Title: "Alien", Category: "Horror", Rating: "R"},
		{Title: "Bambi", Category: "Drama", Rating: "G"},
		{Title: "Zootopia", Category: "Comedy", Rating: "PG"},
	}

	g := GroupByCategory(cat)

	names := categoryNames(g)
	want := []string{"Comedy", "Drama", "Horror"}
	if len(names) != len(want) {
		t.Fatalf("期望 %d 个分类，实际 %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("分类顺序不符合契约：%v", names)
		}
		if len(g[i].Records) != 1 {
			t.Fatalf("分类 %q 期望 1 条记录，实际 %d", names[i], len(g[i].Records))
		}
	}
}

func TestGroupByCategory_StableTitleTieBreak(t *testing.T) {
	cat := domain.Catalog{
		{Title: "Aliens", Category: "Horror", Rating: "A"},
		{Title: "Alien", Category: "Horror", Rating: "x"},
		{Title: "Aliens", Category: "Horror", Rating: "B"},
	}

	g := GroupByCategory(cat)
	rs, ok := lookup(g, "Horror")
	if !ok || len(rs) != 3 {
		t.Fatalf("Horror 分组不完整：%v", g)
	}
	// 同名 Aliens：A 先于 B（输入顺序），重复记录不合并。
	if rs[0].Title != "Alien" || rs[1].Rating != "A" || rs[2].Rating != "B" {
		t.Fatalf("同名记录未保持输入顺序：%+v", rs)
	}
}

func TestGroupByCategory_OrdinalNotLocale(t *testing.T) {
	// 字节序：大写字母排在小写之前，'Z' < 'a'。
	cat := domain.Catalog{
		{Title: "b", Category: "drama"},
		{Title: "a", Category: "Zombie"},
		{Title: "B", Category: "drama"},
		{Title: "Émile", Category: "drama"},
	}

	g := GroupByCategory(cat)
	names := categoryNames(g)
	if names[0] != "Zombie" || names[1] != "drama" {
		t.Fatalf("分类未按字节序排序：%v", names)
	}
	rs, _ := lookup(g, "drama")
	if rs[0].Title != "B" || rs[1].Title != "b" || rs[2].Title != "Émile" {
		t.Fatalf("标题未按字节序排序：%+v", rs)
	}
}

func TestGroupByCategory_InvariantsHold(t *testing.T) {
	cat := domain.Catalog{
		{Title: "m", Category: "c2"}, {Title: "a", Category: "c1"}, {Title: "z", Category: "c2"},
		{Title: "a", Category: "c2"}, {Title: "k", Category: "c3"}, {Title: "a", Category: "c1"},
		{Title: "b", Category: "c3"}, {Title: "m", Category: "c2"},
	}

	g := GroupByCategory(cat)
	if g.Len() != len(cat) {
		t.Fatalf("记录数不守恒：%d vs %d", g.Len(), len(cat))
	}
	for i := 1; i < len(g); i++ {
		if !(g[i-1].Name < g[i].Name) {
			t.Fatalf("分类必须严格递增：%v", categoryNames(g))
		}
	}
	for _, c := range g {
		for i, r := range c.Records {
			if r.Category != c.Name {
				t.Fatalf("记录 %+v 被分到了 %q", r, c.Name)
			}
			if i > 0 && c.Records[i-1].Title > r.Title {
				t.Fatalf("分类 %q 内标题未非严格递增：%+v", c.Name, c.Records)
			}
		}
	}
}

func TestGroupByCategory_Empty(t *testing.T) {
	if g := GroupByCategory(nil); len(g) != 0 {
		t.Fatalf("空 Catalog 应得到空分组，实际 %v", g)
	}
}

func categoryNames(g domain.GroupedCatalog) []string {
	out := make([]string, 0, len(g))
	for _, c := range g {
		out = append(out, c.Name)
	}
	return out
}

func lookup(g domain.GroupedCatalog, name string) ([]domain.Record, bool) {
	for _, c := range g {
		if c.Name == name {
			return c.Records, true
		}
	}
	return nil, false
}
