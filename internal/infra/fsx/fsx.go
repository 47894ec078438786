// Package fsx 提供报告输出的原子写入：同目录临时文件 + fsync + rename。
package fsx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// 测试替换它来模拟 rename 失败。
var renameFunc = os.Rename

// ConflictError 表示路径存在但类型不对（例如目标是目录，或父路径是普通文件）。
type ConflictError struct {
	Path string
	Want string
	Got  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("路径类型冲突：%q（期望 %s，实际 %s）", e.Path, e.Want, e.Got)
}

// WriteFile 把 data 原子写入 path。
//
// 语义：
// - 父目录必须已存在：不存在即失败，不会隐式创建
// - overwrite=false 且目标已存在：返回 os.ErrExist
// - 目标是目录或其它非普通文件：返回 *ConflictError
// - 任意一步失败：不留下临时文件，目标保持原样
//
// overwrite=false 时存在性检查与 rename 之间不是原子的；只有单写者，不处理并发写同一目标。
func WriteFile(path string, data []byte, overwrite bool) error {
	dir := filepath.Dir(path)
	if err := checkDir(dir); err != nil {
		return err
	}
	if err := checkTarget(path, overwrite); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err := writeAll(tmp, data); err != nil {
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := renameFunc(tmpName, path); err != nil {
		// 临时文件与目标同目录，EXDEV 之类的失败只会来自特殊挂载；统一按 rename 失败返回。
		return fmt.Errorf("替换目标文件失败：%w", err)
	}
	committed = true

	_ = syncDir(dir)
	return nil
}

func checkTarget(path string, overwrite bool) error {
	fi, err := os.Lstat(path)
	switch {
	case os.IsNotExist(err):
		return nil
	case err != nil:
		return err
	case fi.IsDir():
		return &ConflictError{Path: path, Want: "file", Got: "dir"}
	case !overwrite && !fi.Mode().IsRegular():
		return &ConflictError{Path: path, Want: "regular file", Got: fi.Mode().Type().String()}
	case !overwrite:
		return os.ErrExist
	default:
		return nil
	}
}

func checkDir(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return &ConflictError{Path: dir, Want: "dir", Got: "file"}
	}
	return nil
}

func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

// syncDir 让 rename 落盘；best-effort，Windows 上目录无法 fsync。
func syncDir(dir string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
