// embed.go - 资源嵌入声明
// 放在 data/ 目录内，桌面端、移动端和终端命令都可以导入
package data

import (
	"embed"
	"io/fs"
	"strings"
)

//go:embed *.yaml waves
var files embed.FS

// FS 返回嵌入的数据文件，路径与仓库根目录一致（以 "data/" 开头）
func FS() fs.FS {
	return rootedFS{files}
}

// rootedFS 把 "data/xxx" 映射到嵌入文件系统中的 "xxx"
type rootedFS struct {
	inner fs.FS
}

func (r rootedFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	switch {
	case name == "data":
		return r.inner.Open(".")
	case strings.HasPrefix(name, "data/"):
		return r.inner.Open(strings.TrimPrefix(name, "data/"))
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}
