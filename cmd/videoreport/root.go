package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/John-Robertt/videoreport/internal/app/run"
	"github.com/John-Robertt/videoreport/internal/config"
	"github.com/John-Robertt/videoreport/internal/domain"
	"github.com/John-Robertt/videoreport/internal/logging"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// runFailure 标记“参数合法但流水线失败”，与 cobra 的用法错误区分开。
type runFailure struct{ err error }

func (f *runFailure) Error() string { return f.err.Error() }
func (f *runFailure) Unwrap() error { return f.err }

func execute(args []string, s streams) int {
	cmd := newRootCommand(s)
	cmd.SetArgs(args)
	cmd.SetOut(s.err)
	cmd.SetErr(s.err)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(s.err, "错误：%v\n", err)

	var rf *runFailure
	if errors.As(err, &rf) {
		return exitFailure
	}
	return exitUsage
}

func newRootCommand(s streams) *cobra.Command {
	var cli config.CLIArgs

	cmd := &cobra.Command{
		Use:   "videoreport <input> [output]",
		Short: "把影片目录（CSV/XLSX）转换为按分类分组的 HTML 报告",
		Long: `读取包含 title,category,rating,actors,aspect,format 六列的目录文件，
按分类名排序、分类内按片名排序，生成一份自包含的 HTML 报告。

output 缺省为 "./Video Collection.html"（可用 VIDEOREPORT_OUTPUT 覆盖）。`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli.Input = args[0]
			if len(args) == 2 {
				cli.Output = args[1]
				cli.OutputSet = true
			}
			cli.NoClobberSet = cmd.Flags().Changed("no-clobber")
			return runReport(s, cli)
		},
	}

	cmd.Flags().BoolVar(&cli.NoClobber, "no-clobber", false, "输出文件已存在时报错而不是覆盖")
	cmd.Flags().StringVar(&cli.LogLevel, "log-level", "", "日志级别：debug|info|warn|error（默认 info）")
	cmd.Flags().StringVar(&cli.LogFormat, "log-format", "", "日志格式：console|json（默认 console）")
	return cmd
}

func runReport(s streams, cli config.CLIArgs) error {
	cwd, err := os.Getwd()
	if err != nil {
		return &runFailure{err: fmt.Errorf("读取当前目录失败：%w", err)}
	}

	eff, err := config.LoadEffective(cwd, cli)
	if err != nil {
		// 配置错误属于用法错误（exit 2），但 stdout JSON 契约仍然成立。
		emitSummary(s, domain.RunSummary{
			Input:     cli.Input,
			Status:    domain.StatusFailed,
			ErrorCode: config.Code(err),
			ErrorMsg:  err.Error(),
		})
		return err
	}

	logger, err := logging.New(logging.Options{Level: eff.LogLevel, Format: eff.LogFormat, Writer: s.err})
	if err != nil {
		return err
	}

	res, err := run.Execute(eff, run.LogObserver{Logger: logger})
	emitSummary(s, res.Summary)
	if err != nil {
		return &runFailure{err: err}
	}
	return nil
}
