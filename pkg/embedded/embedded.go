// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 以 "data/" 开头的路径从嵌入文件系统读取；其他路径（绝对路径、覆盖目录）
// 直接读取磁盘，便于开发时替换波次布局和测试时使用临时文件。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const dataPrefix = "data/"

var (
	mu          sync.RWMutex
	dataFS      fs.FS
	initialized bool
)

// ErrNotInitialized 在 Init 之前访问嵌入资源时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init 初始化数据文件系统
// 必须在 main() 开始时、任何资源加载之前调用；测试中可以传入 os.DirFS 或 fstest.MapFS
func Init(data fs.FS) {
	mu.Lock()
	defer mu.Unlock()
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	mu.RLock()
	defer mu.RUnlock()
	return initialized
}

// normalize 标准化路径分隔符为正斜杠并移除 "./" 前缀
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// IsEmbeddedPath 判断路径是否指向嵌入资源
func IsEmbeddedPath(path string) bool {
	return strings.HasPrefix(normalize(path), dataPrefix)
}

// ReadFile 读取文件内容
// "data/" 前缀的路径从嵌入文件系统读取，其他路径从磁盘读取
func ReadFile(path string) ([]byte, error) {
	if !IsEmbeddedPath(path) {
		return os.ReadFile(path)
	}

	mu.RLock()
	defer mu.RUnlock()
	if !initialized {
		return nil, ErrNotInitialized
	}
	return fs.ReadFile(dataFS, normalize(path))
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	if !IsEmbeddedPath(path) {
		_, err := os.Stat(path)
		return err == nil
	}

	mu.RLock()
	defer mu.RUnlock()
	if !initialized {
		return false
	}
	_, err := fs.Stat(dataFS, normalize(path))
	return err == nil
}

// Glob 在嵌入文件系统中匹配文件
// 路径模式必须以 "data/" 开头
func Glob(pattern string) ([]string, error) {
	pattern = normalize(pattern)
	if !strings.HasPrefix(pattern, dataPrefix) {
		return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", pattern)
	}

	mu.RLock()
	defer mu.RUnlock()
	if !initialized {
		return nil, ErrNotInitialized
	}
	return fs.Glob(dataFS, pattern)
}
