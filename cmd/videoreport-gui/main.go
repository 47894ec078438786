package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/John-Robertt/videoreport/internal/app/session"
	"github.com/John-Robertt/videoreport/internal/config"
	"github.com/John-Robertt/videoreport/internal/logging"
	"github.com/John-Robertt/videoreport/internal/ui"
)

func main() {
	lc, err := config.LoadLogConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置错误：%v\n", err)
		os.Exit(2)
	}
	logger, err := logging.New(logging.Options{Level: lc.Level, Format: lc.Format})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败：%v\n", err)
		os.Exit(2)
	}

	a := app.NewWithID("com.github.john-robertt.videoreport")
	w := a.NewWindow("Video Collection")
	w.Resize(fyne.NewSize(900, 650))

	root := ui.NewRootUI(w, session.New(), logger)

	// 可选：启动时直接打开一个目录文件（接受普通路径或 file:// URI）。
	if len(os.Args) > 1 {
		path, err := session.PathFromURI(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "参数错误：%v\n", err)
			os.Exit(2)
		}
		root.OpenPath(path)
	}

	w.ShowAndRun()
}
