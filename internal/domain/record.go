package domain

// Record 是目录中的一条影片记录（六个字段全部是不透明的展示字符串）。
//
// 约束：
// - 不对任何字段施加数值/枚举语义；排序一律按字节序比较
// - title/category 参与分组与排序，必须非空；其余字段允许为空串
type Record struct {
	Title    string `json:"title" validate:"required,notblank,utf8"`
	Category string `json:"category" validate:"required,notblank,utf8"`
	Rating   string `json:"rating" validate:"utf8"`
	Actors   string `json:"actors" validate:"utf8"`
	Aspect   string `json:"aspect" validate:"utf8"`
	Format   string `json:"format" validate:"utf8"`
}

// Columns 是输入表头必须包含的列名（按 Record 字段顺序，精确匹配、大小写敏感）。
var Columns = []string{"title", "category", "rating", "actors", "aspect", "format"}

// DisplayColumns 是报告表格的列标题；category 作为分节标题，不重复成列。
var DisplayColumns = []string{"Title", "Rating", "Actors", "Aspect", "Format"}

// Cells 按 DisplayColumns 的顺序返回该记录的单元格值。
func (r Record) Cells() []string {
	return []string{r.Title, r.Rating, r.Actors, r.Aspect, r.Format}
}
