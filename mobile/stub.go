//go:build !mobile

// 普通构建时 mobile 包只有这个文件，绑定入口在 mobile.go（-tags mobile）
package mobile

// Dummy 让 go build ./... 在桌面端也能编译此包
func Dummy() {}
