package config

import "os"

// GetEnv 读取环境变量，未设置或为空时返回 fallback
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
