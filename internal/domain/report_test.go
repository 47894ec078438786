package domain

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestRunSummary_Finalize_SortAndCount(t *testing.T) {
	s := RunSummary{
		Input:  "/abs/movies.csv",
		Output: "/abs/Video Collection.html",
		Status: StatusWritten,
		Categories: []CategorySummary{
			{Name: "Horror", Records: 2},
			{Name: "Comedy", Records: 1},
			{Name: "Drama", Records: 3},
		},
	}

	s.Finalize()

	if s.Categories[0].Name != "Comedy" || s.Categories[1].Name != "Drama" || s.Categories[2].Name != "Horror" {
		t.Fatalf("categories 排序不符合契约：%v", s.Categories)
	}
	if s.Records != 6 {
		t.Fatalf("records 统计不正确：%d", s.Records)
	}
}

func TestRunSummary_EmptyCategoriesEncodeAsArray(t *testing.T) {
	s := RunSummary{Status: StatusFailed, ErrorCode: ErrCodeParseFailed}
	s.Finalize()

	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("json.Marshal 失败：%v", err)
	}
	// 失败时 categories 也必须是 []，而不是 null（脚本侧无需判空）。
	if !bytes.Contains(b, []byte(`"categories":[]`)) {
		t.Fatalf("categories 未编码为空数组：%s", string(b))
	}
}
