package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

func main() {
	os.Exit(execute(os.Args[1:], stdStreams()))
}

// streams 把进程的标准输出/错误与“是否为终端”打包在一起，便于测试注入。
type streams struct {
	out    io.Writer
	err    io.Writer
	outTTY bool
	errTTY bool
}

func stdStreams() streams {
	return streams{
		out:    os.Stdout,
		err:    os.Stderr,
		outTTY: isTerminal(os.Stdout),
		errTTY: isTerminal(os.Stderr),
	}
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
