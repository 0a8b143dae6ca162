// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "strings"

// AlienKind 定义外星人的种类
type AlienKind int

const (
	// AlienUnknown 未知种类
	AlienUnknown AlienKind = iota
	// AlienAris 横向巡航，碰到边界后下移一行
	AlienAris
	// AlienRylo 在上半场随机跳跃
	AlienRylo
	// AlienZorg 原地悬停，朝飞船发射三连散射
	AlienZorg
)

// AllAlienKinds 按配置顺序列出所有有效种类
var AllAlienKinds = []AlienKind{AlienAris, AlienRylo, AlienZorg}

var alienKindNames = map[AlienKind]string{
	AlienAris: "aris",
	AlienRylo: "rylo",
	AlienZorg: "zorg",
}

// String 返回种类的配置字符串（小写）
func (k AlienKind) String() string {
	if s, ok := alienKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Symbol 返回种类在波次布局文件中的符号
func (k AlienKind) Symbol() rune {
	switch k {
	case AlienAris:
		return 'a'
	case AlienRylo:
		return 'r'
	case AlienZorg:
		return 'z'
	default:
		return '?'
	}
}

// AlienKindFromString 将配置字符串转换为 AlienKind，大小写不敏感
func AlienKindFromString(s string) AlienKind {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range alienKindNames {
		if name == s {
			return k
		}
	}
	return AlienUnknown
}

// AlienKindFromSymbol 将布局符号转换为 AlienKind
// 返回 ok=false 表示符号不是外星人（包括空格符号 '#'）
func AlienKindFromSymbol(r rune) (AlienKind, bool) {
	switch r {
	case 'a', 'A':
		return AlienAris, true
	case 'r', 'R':
		return AlienRylo, true
	case 'z', 'Z':
		return AlienZorg, true
	default:
		return AlienUnknown, false
	}
}
