package session

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
)

// PathFromURI 把前端给出的位置（file:// URI 或普通路径）转换为文件系统路径。
//
// - file:// URI：按 URI 解析（含百分号解码）；只接受空 host 或 localhost
// - 其它 scheme：报错（核心流水线只接收本地路径）
// - 不含 scheme 的字符串：视为普通路径，原样 Clean
func PathFromURI(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("路径不能为空")
	}

	if !strings.HasPrefix(strings.ToLower(raw), "file:") {
		if i := strings.Index(raw, "://"); i > 0 {
			return "", fmt.Errorf("不支持的 URI scheme：%q", raw[:i])
		}
		return filepath.Clean(raw), nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("URI 无效：%w", err)
	}
	if u.Host != "" && !strings.EqualFold(u.Host, "localhost") {
		return "", fmt.Errorf("不支持远程文件：host=%q", u.Host)
	}
	p := u.Path
	if p == "" {
		// file:relative 之类的 opaque 形式。
		p = u.Opaque
	}
	if p == "" {
		return "", fmt.Errorf("URI 缺少路径：%q", raw)
	}
	// file:///C:/x 在 Windows 上的 Path 是 "/C:/x"。
	if runtime.GOOS == "windows" && len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}
	return filepath.Clean(filepath.FromSlash(p)), nil
}
