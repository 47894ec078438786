package run

import (
	"log/slog"
	"time"

	"github.com/John-Robertt/videoreport/internal/config"
)

// Observer 用于把“阶段/耗时”从核心流程中解耦出来。
//
// 约束：run 包只负责发事件，不做任何输出（避免污染 stdout 的 JSON 契约）。
type Observer interface {
	// OnStart 在 Execute 开始时调用。
	OnStart(eff config.EffectiveConfig)
	// OnPhaseDone 在 load/group/render/write 每个阶段结束时调用。
	OnPhaseDone(name string, fields map[string]any, dur time.Duration)
}

// LogObserver 把阶段事件写成 debug 级结构化日志。
type LogObserver struct {
	Logger *slog.Logger
}

var _ Observer = LogObserver{}

func (o LogObserver) OnStart(eff config.EffectiveConfig) {
	o.Logger.Debug("开始生成报告",
		slog.String("input", eff.Input),
		slog.String("output", eff.Output),
		slog.Bool("overwrite", eff.Overwrite),
	)
}

func (o LogObserver) OnPhaseDone(name string, fields map[string]any, dur time.Duration) {
	attrs := make([]any, 0, len(fields)+2)
	attrs = append(attrs, slog.String("phase", name), slog.Duration("dur", dur))
	for _, k := range sortedKeys(fields) {
		attrs = append(attrs, slog.Any(k, fields[k]))
	}
	o.Logger.Debug("阶段完成", attrs...)
}
