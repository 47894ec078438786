// Package session 是交互前端的应用状态：两个命令（Open/Save）与可观察的错误状态。
//
// 前端（fyne 或其它 UI）只通过 Subscribe 得到状态变化，不直接碰流水线。
// 流水线本身是阻塞的：前端必须在 UI 线程之外调用 Open/Save。
package session

import (
	"errors"
	"sync"

	"github.com/John-Robertt/videoreport/internal/app/run"
	"github.com/John-Robertt/videoreport/internal/domain"
)

// ErrNoReport 表示在成功 Open 之前调用了 Save。
var ErrNoReport = errors.New("尚未打开任何目录，没有可保存的报告")

// State 是前端可观察的状态快照。
type State struct {
	// Ready 表示已有可保存/预览的报告。
	Ready bool

	HasError bool
	ErrorMsg string

	Source     string
	Categories int
	Records    int
}

// Listener 在状态变化后被调用（在调用 Open/Save 的 goroutine 上，且不持锁）。
type Listener func(State)

// Session 持有最近一次成功 Open 得到的报告。
type Session struct {
	mu        sync.Mutex
	state     State
	doc       domain.Report
	listeners []Listener

	build func(input string) (run.Result, error)
	write func(path string, doc domain.Report) error
}

func New() *Session {
	return &Session{
		build: func(input string) (run.Result, error) { return run.Build(input, nil) },
		write: func(path string, doc domain.Report) error { return run.WriteReport(path, doc, true) },
	}
}

// Subscribe 注册状态监听；注册时立即回调一次当前状态。
func (s *Session) Subscribe(l Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	st := s.state
	s.mu.Unlock()
	l(st)
}

// State 返回当前状态快照。
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Report 返回最近一次成功 Open 的报告；尚无报告时 ok=false。
func (s *Session) Report() (domain.Report, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc, s.state.Ready
}

// Open 加载并渲染 path（必须是文件系统路径，URI 由前端先经 PathFromURI 转换）。
//
// 失败不会 panic：错误写入可观察状态，并丢弃之前的报告（避免误存旧内容）。
func (s *Session) Open(path string) bool {
	res, err := s.build(path)

	s.mu.Lock()
	if err != nil {
		s.doc = ""
		s.state = State{HasError: true, ErrorMsg: err.Error(), Source: path}
	} else {
		s.doc = res.Report
		s.state = State{
			Ready:      true,
			Source:     path,
			Categories: len(res.Summary.Categories),
			Records:    res.Summary.Records,
		}
	}
	st := s.state
	ls := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	notify(ls, st)
	return err == nil
}

// Save 把当前报告原子写到 path（覆盖已有文件）。
//
// 写入失败是可恢复的：错误既返回给调用方，也写入可观察状态；已打开的报告保留，用户可换个位置重试。
func (s *Session) Save(path string) error {
	s.mu.Lock()
	doc, ready := s.doc, s.state.Ready
	s.mu.Unlock()
	if !ready {
		return ErrNoReport
	}

	err := s.write(path, doc)

	s.mu.Lock()
	if err != nil {
		s.state.HasError = true
		s.state.ErrorMsg = err.Error()
	} else {
		s.state.HasError = false
		s.state.ErrorMsg = ""
	}
	st := s.state
	ls := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	notify(ls, st)
	return err
}

func notify(ls []Listener, st State) {
	for _, l := range ls {
		l(st)
	}
}
