package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/John-Robertt/videoreport/internal/domain"
)

// emitSummary 遵守输出契约：
// - stdout 非 TTY：stdout 必须且仅输出一个 RunSummary JSON
// - stderr 是 TTY 且运行成功：在 stderr 打印分类统计表
func emitSummary(s streams, sum domain.RunSummary) {
	sum.Finalize()
	if !s.outTTY {
		_ = json.NewEncoder(s.out).Encode(sum)
	}
	if sum.Status == domain.StatusFailed {
		return
	}
	if s.errTTY {
		fmt.Fprintln(s.err, summaryTable(sum))
	}
	fmt.Fprintf(s.err, "完成：records=%d categories=%d output=%s\n", sum.Records, len(sum.Categories), sum.Output)
}

func summaryTable(sum domain.RunSummary) string {
	rows := make([][]string, 0, len(sum.Categories))
	for _, c := range sum.Categories {
		rows = append(rows, []string{c.Name, strconv.Itoa(c.Records)})
	}
	return renderTable(
		[]string{"Category", "Records"},
		rows,
		[]string{"Total", strconv.Itoa(sum.Records)},
		[]columnAlignment{alignLeft, alignRight},
	)
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, footer []string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(toRow(headers, columns))
	for _, row := range rows {
		tw.AppendRow(toRow(row, columns))
	}
	if len(footer) > 0 {
		tw.AppendFooter(toRow(footer, columns))
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
			AlignFooter: align,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

func toRow(cells []string, columns int) table.Row {
	r := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		if i < len(cells) {
			r[i] = cells[i]
		} else {
			r[i] = ""
		}
	}
	return r
}
