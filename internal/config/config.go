package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	// ErrCodeMissingInput 表示没有提供输入文件路径。
	ErrCodeMissingInput = "config_missing_input"
	// ErrCodeInvalid 表示参数/环境变量不合法。
	ErrCodeInvalid = "config_invalid"
)

const (
	// EnvPrefix 是环境变量前缀：VIDEOREPORT_OUTPUT、VIDEOREPORT_LOG_LEVEL 等。
	EnvPrefix = "VIDEOREPORT"
	// DefaultOutput 是输出路径的最终默认值（相对 cwd）。
	DefaultOutput = "Video Collection.html"
	// DefaultLogLevel / DefaultLogFormat 是日志的内置默认值。
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// CLIArgs 是 CLI 暴露的入口参数，并保留“是否显式指定”的信息。
// 这能保证覆盖优先级可实现：例如 --no-clobber=false 必须能覆盖 VIDEOREPORT_NO_CLOBBER=true。
type CLIArgs struct {
	Input string

	Output    string
	OutputSet bool

	NoClobber    bool
	NoClobberSet bool

	LogLevel  string
	LogFormat string
}

// EnvConfig 对应 VIDEOREPORT_* 环境变量。
type EnvConfig struct {
	Output    string `envconfig:"OUTPUT"`
	NoClobber bool   `envconfig:"NO_CLOBBER"`
	LogLevel  string `envconfig:"LOG_LEVEL"`
	LogFormat string `envconfig:"LOG_FORMAT"`
}

// EffectiveConfig 是合并并做最小规范化后的最终配置（实现层直接消费，不再做二次默认/优先级判断）。
type EffectiveConfig struct {
	// Input/Output 均为 clean + absolute。
	Input  string
	Output string

	// Overwrite=false 时目标已存在即失败。
	Overwrite bool

	LogLevel  string
	LogFormat string
}

// Error 是配置阶段的结构化错误（带 error_code）。
type Error struct {
	Code string
	Err  error
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeMissingInput:
		return fmt.Sprintf("%s：缺少输入文件路径", e.Code)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s：%v", e.Code, e.Err)
		}
		return e.Code
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Code 从 error 中提取 error_code；若不是 *Error 则返回空串。
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// LoadEffective 读取 VIDEOREPORT_* 环境变量，并与 CLI 参数合并为最终配置。
//
// 覆盖优先级（固定）：
// - output：CLI 位置参数 > VIDEOREPORT_OUTPUT > 默认 "./Video Collection.html"
// - no-clobber：CLI --no-clobber > VIDEOREPORT_NO_CLOBBER > 默认 false（覆盖已有文件）
// - log-level/log-format：CLI flag > 环境变量 > 默认 info/console
//
// 相对路径一律相对 cwd 解析。
func LoadEffective(cwd string, cli CLIArgs) (EffectiveConfig, error) {
	cwdAbs, err := filepath.Abs(cwd)
	if err != nil {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Err: err}
	}

	var env EnvConfig
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Err: err}
	}
	return merge(cwdAbs, cli, env)
}

func merge(cwdAbs string, cli CLIArgs, env EnvConfig) (EffectiveConfig, error) {
	if strings.TrimSpace(cli.Input) == "" {
		return EffectiveConfig{}, &Error{Code: ErrCodeMissingInput}
	}
	input := absCleanFrom(cwdAbs, cli.Input)

	// output：CLI > env > 默认
	output := DefaultOutput
	if cli.OutputSet {
		output = cli.Output
	} else if strings.TrimSpace(env.Output) != "" {
		output = env.Output
	}
	if strings.TrimSpace(output) == "" {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Err: fmt.Errorf("输出路径不能为空")}
	}
	output = absCleanFrom(cwdAbs, output)
	if output == input {
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Err: fmt.Errorf("输出路径与输入相同：%q", input)}
	}

	// no-clobber：CLI > env > 默认 false
	noClobber := env.NoClobber
	if cli.NoClobberSet {
		noClobber = cli.NoClobber
	}

	lc, err := mergeLog(cli.LogLevel, cli.LogFormat, env)
	if err != nil {
		return EffectiveConfig{}, err
	}

	return EffectiveConfig{
		Input:     input,
		Output:    output,
		Overwrite: !noClobber,
		LogLevel:  lc.Level,
		LogFormat: lc.Format,
	}, nil
}

// LogConfig 是只需要日志配置的入口（GUI）使用的最终配置。
type LogConfig struct {
	Level  string
	Format string
}

// LoadLogConfig 读取 VIDEOREPORT_LOG_LEVEL / VIDEOREPORT_LOG_FORMAT；
// 解析与校验规则与 LoadEffective 完全相同（没有 CLI 层，环境变量 > 默认）。
func LoadLogConfig() (LogConfig, error) {
	var env EnvConfig
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return LogConfig{}, &Error{Code: ErrCodeInvalid, Err: err}
	}
	return mergeLog("", "", env)
}

func mergeLog(cliLevel, cliFormat string, env EnvConfig) (LogConfig, error) {
	level := pick(cliLevel, env.LogLevel, DefaultLogLevel)
	if err := validateLogLevel(level); err != nil {
		return LogConfig{}, &Error{Code: ErrCodeInvalid, Err: err}
	}
	format := pick(cliFormat, env.LogFormat, DefaultLogFormat)
	if err := validateLogFormat(format); err != nil {
		return LogConfig{}, &Error{Code: ErrCodeInvalid, Err: err}
	}
	return LogConfig{Level: level, Format: format}, nil
}

func pick(values ...string) string {
	for _, v := range values {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			return v
		}
	}
	return ""
}

func validateLogLevel(l string) error {
	switch l {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("log-level 只能是 debug|info|warn|error，实际是 %q", l)
	}
}

func validateLogFormat(f string) error {
	switch f {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("log-format 只能是 console 或 json，实际是 %q", f)
	}
}

// absCleanFrom 以 base 为基准，把 p 变为 clean + absolute。
// - p 若已是绝对路径：直接 Clean
// - p 若是相对路径：Join(base, p) 后 Clean
func absCleanFrom(base, p string) string {
	p = filepath.Clean(strings.TrimSpace(p))
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Clean(filepath.Join(base, p))
}
