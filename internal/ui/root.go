// Package ui 是基于 fyne 的交互前端：选择目录文件、预览报告、保存报告。
//
// 所有流水线调用都在 goroutine 中执行，结果经 fyne.Do 回到 UI 线程。
package ui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/John-Robertt/videoreport/internal/app/session"
	"github.com/John-Robertt/videoreport/internal/config"
)

// RootUI 把 session.State 绑定到 fyne 的数据绑定上。
type RootUI struct {
	window  fyne.Window
	session *session.Session
	logger  *slog.Logger

	hasError binding.Bool
	errorMsg binding.String
	status   binding.String

	openBtn    *widget.Button
	saveBtn    *widget.Button
	errorLabel *widget.Label
	preview    *widget.RichText
}

// NewRootUI 创建主界面并订阅 session 状态。
func NewRootUI(window fyne.Window, s *session.Session, logger *slog.Logger) *RootUI {
	ui := &RootUI{
		window:   window,
		session:  s,
		logger:   logger,
		hasError: binding.NewBool(),
		errorMsg: binding.NewString(),
		status:   binding.NewString(),
	}
	ui.setupUI()
	s.Subscribe(ui.onState)
	return ui
}

func (ui *RootUI) setupUI() {
	ui.openBtn = widget.NewButton("打开目录…", ui.onOpenClick)
	ui.openBtn.Importance = widget.HighImportance
	ui.saveBtn = widget.NewButton("保存报告…", ui.onSaveClick)
	ui.saveBtn.Disable()

	statusLabel := widget.NewLabelWithData(ui.status)

	ui.errorLabel = widget.NewLabelWithData(ui.errorMsg)
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.Hide()
	ui.hasError.AddListener(binding.NewDataListener(func() {
		if v, _ := ui.hasError.Get(); v {
			ui.errorLabel.Show()
		} else {
			ui.errorLabel.Hide()
		}
	}))

	ui.preview = widget.NewRichTextFromMarkdown("")
	ui.preview.Wrapping = fyne.TextWrapWord

	top := container.NewVBox(
		container.NewHBox(ui.openBtn, ui.saveBtn, statusLabel),
		ui.errorLabel,
	)
	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, container.NewVScroll(ui.preview)))
}

// onState 可能在任意 goroutine 上被调用。
func (ui *RootUI) onState(st session.State) {
	_ = ui.hasError.Set(st.HasError)
	_ = ui.errorMsg.Set(st.ErrorMsg)

	status := "未打开"
	if st.Ready {
		status = fmt.Sprintf("%d 个分类，%d 条记录", st.Categories, st.Records)
	}
	_ = ui.status.Set(status)

	fyne.Do(func() {
		if st.Ready {
			ui.saveBtn.Enable()
		} else {
			ui.saveBtn.Disable()
			ui.preview.ParseMarkdown("")
		}
	})
}

func (ui *RootUI) onOpenClick() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if rc == nil {
			return // 用户取消
		}
		u := rc.URI()
		_ = rc.Close()

		path, err := pathOf(u)
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		ui.OpenPath(path)
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".xlsx"}))
	fd.Show()
}

// OpenPath 在后台加载 path，完成后刷新预览；失败只体现在错误状态上。
func (ui *RootUI) OpenPath(path string) {
	go func() {
		if !ui.session.Open(path) {
			ui.logger.Warn("打开目录失败", slog.String("path", path), slog.String("error", ui.session.State().ErrorMsg))
			return
		}
		doc, ok := ui.session.Report()
		if !ok {
			return
		}
		md, err := previewMarkdown(doc)
		if err != nil {
			ui.logger.Warn("生成预览失败", slog.String("path", path), slog.Any("error", err))
			md = "（预览不可用，报告仍可保存）"
		}
		fyne.Do(func() { ui.preview.ParseMarkdown(md) })
	}()
}

func (ui *RootUI) onSaveClick() {
	fd := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if wc == nil {
			return
		}
		u := wc.URI()
		_ = wc.Close()

		path, err := pathOf(u)
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		go func() {
			if err := ui.save(path); err != nil {
				fyne.Do(func() { dialog.ShowError(err, ui.window) })
			}
		}()
	}, ui.window)
	fd.SetFileName(config.DefaultOutput)
	fd.Show()
}

// save 在后台 goroutine 上执行；失败时清理对话框留下的空目标文件。
func (ui *RootUI) save(path string) error {
	if err := ui.session.Save(path); err != nil {
		ui.logger.Warn("保存报告失败", slog.String("path", path), slog.Any("error", err))
		if discardEmptyTarget(path) {
			ui.logger.Info("已移除保存对话框留下的空文件", slog.String("path", path))
		}
		return err
	}
	ui.logger.Info("报告已保存", slog.String("path", path))
	return nil
}

// discardEmptyTarget 删除 path 处的空普通文件。
//
// fyne 的保存对话框在回调前已经创建（或截断）了目标文件；原子写入失败时，
// 留下的空文件不是合法报告，删掉它，避免看起来像保存成功。
func discardEmptyTarget(path string) bool {
	fi, err := os.Lstat(path)
	if err != nil || !fi.Mode().IsRegular() || fi.Size() != 0 {
		return false
	}
	return os.Remove(path) == nil
}

// pathOf 只接受本地文件 URI；核心流水线从不处理 URI。
func pathOf(u fyne.URI) (string, error) {
	if u.Scheme() != "file" {
		return "", fmt.Errorf("只支持本地文件，实际 scheme=%q", u.Scheme())
	}
	return filepath.FromSlash(u.Path()), nil
}
