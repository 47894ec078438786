package run

import (
	"sort"
	"time"

	"github.com/John-Robertt/videoreport/internal/app"
	"github.com/John-Robertt/videoreport/internal/catalog"
	"github.com/John-Robertt/videoreport/internal/config"
	"github.com/John-Robertt/videoreport/internal/domain"
	"github.com/John-Robertt/videoreport/internal/infra/fsx"
	"github.com/John-Robertt/videoreport/internal/report"
)

// Result 是一次流水线的产物。
type Result struct {
	Grouped domain.GroupedCatalog
	Report  domain.Report
	Summary domain.RunSummary
}

// Build 执行 Loader -> Aggregator -> Renderer，不写盘。
//
// 只有 Loader 会失败（IOError/ParseError）；失败时不会产生任何 Report。
// obs 可为 nil。
func Build(input string, obs Observer) (Result, error) {
	res := Result{Summary: domain.RunSummary{Input: input}}

	loadStarted := time.Now()
	cat, err := catalog.Load(input)
	if err != nil {
		res.Summary = failedSummary(res.Summary, err)
		return res, err
	}
	phaseDone(obs, "load", map[string]any{
		"format":  catalog.FormatFor(input).String(),
		"records": len(cat),
	}, loadStarted)

	groupStarted := time.Now()
	grouped := app.GroupByCategory(cat)
	phaseDone(obs, "group", map[string]any{
		"categories": len(grouped),
		"records":    grouped.Len(),
	}, groupStarted)

	renderStarted := time.Now()
	doc := report.Render(grouped)
	phaseDone(obs, "render", map[string]any{"bytes": len(doc)}, renderStarted)

	res.Grouped = grouped
	res.Report = doc
	res.Summary.Status = domain.StatusRendered
	res.Summary.Categories = domain.Summarize(grouped)
	res.Summary.Finalize()
	return res, nil
}

// Execute 在 Build 成功后把报告写到 eff.Output。
//
// 任何失败都不会写出输出文件；写入失败统一为 *domain.IOError。
func Execute(eff config.EffectiveConfig, obs Observer) (Result, error) {
	if obs != nil {
		obs.OnStart(eff)
	}

	res, err := Build(eff.Input, obs)
	res.Summary.Output = eff.Output
	if err != nil {
		return res, err
	}

	writeStarted := time.Now()
	if err := WriteReport(eff.Output, res.Report, eff.Overwrite); err != nil {
		res.Summary = failedSummary(res.Summary, err)
		return res, err
	}
	phaseDone(obs, "write", map[string]any{"path": eff.Output}, writeStarted)

	res.Summary.Status = domain.StatusWritten
	return res, nil
}

// WriteReport 原子写入报告（临时文件 + rename），失败时不留下部分文件。
func WriteReport(path string, doc domain.Report, overwrite bool) error {
	if err := fsx.WriteFile(path, []byte(doc), overwrite); err != nil {
		return &domain.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func failedSummary(s domain.RunSummary, err error) domain.RunSummary {
	s.Status = domain.StatusFailed
	s.ErrorCode = domain.Code(err)
	s.ErrorMsg = err.Error()
	s.Categories = nil
	s.Finalize()
	return s
}

func phaseDone(obs Observer, name string, fields map[string]any, started time.Time) {
	if obs == nil {
		return
	}
	obs.OnPhaseDone(name, fields, time.Since(started))
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
