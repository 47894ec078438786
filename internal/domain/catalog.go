package domain

// Catalog 是加载阶段的输出：按输入顺序排列的记录，尚未分组。
type Catalog []Record

// CategoryGroup 是分组后的一个分类及其记录。
type CategoryGroup struct {
	Name    string
	Records []Record
}

// GroupedCatalog 是有序的 category -> records 映射。
//
// 不变量：
// - 分类名按字节序严格递增
// - 分类内记录按 Title 字节序非严格递增；同名记录保持输入相对顺序
type GroupedCatalog []CategoryGroup

// Len 返回所有分类的记录总数。
func (g GroupedCatalog) Len() int {
	n := 0
	for _, c := range g {
		n += len(c.Records)
	}
	return n
}
