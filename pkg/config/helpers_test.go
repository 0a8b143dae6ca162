package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/invaders/pkg/embedded"
)

// useRepoData 以仓库根目录的 data/ 初始化嵌入资源
func useRepoData(t *testing.T) {
	t.Helper()
	embedded.Init(os.DirFS(filepath.Join("..", "..")))
	t.Cleanup(func() { embedded.Init(nil) })
}

// writeTempFile 在临时目录写入文件并返回路径
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}
