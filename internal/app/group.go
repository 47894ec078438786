package app

import (
	"sort"

	"github.com/John-Robertt/videoreport/internal/domain"
)

// GroupByCategory 把记录按 category 分组为 GroupedCatalog。
//
// - 分类按首次出现顺序建桶，再按名称字节序排序
// - 分类内记录按 Title 字节序稳定排序：同名记录保持输入相对顺序
//
// 纯函数，不会失败；空 Catalog 得到空分组。
func GroupByCategory(cat domain.Catalog) domain.GroupedCatalog {
	index := make(map[string]int, 16)
	groups := make(domain.GroupedCatalog, 0, 16)

	for _, rec := range cat {
		if idx, ok := index[rec.Category]; ok {
			groups[idx].Records = append(groups[idx].Records, rec)
			continue
		}
		index[rec.Category] = len(groups)
		groups = append(groups, domain.CategoryGroup{
			Name:    rec.Category,
			Records: []domain.Record{rec},
		})
	}

	// 分类名唯一，Slice 即可；分类内必须 SliceStable 才能保证同名记录的先后次序。
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	for i := range groups {
		rs := groups[i].Records
		sort.SliceStable(rs, func(a, b int) bool { return rs[a].Title < rs[b].Title })
	}
	return groups
}
