package game

import (
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	HallOfFameAppName = "alien_invaders"
	hallOfFameObject  = "halloffame"
	hallOfFameProp    = "scores"

	// DefaultHallOfFameSize 名人堂默认容量
	DefaultHallOfFameSize = 10
	// MaxNameLength 玩家名称最大长度
	MaxNameLength = 16
)

// HallOfFameEntry 名人堂条目
type HallOfFameEntry struct {
	Name         string    `yaml:"name"`
	Score        int       `yaml:"score"`
	WavesCleared int       `yaml:"wavesCleared"`
	Victory      bool      `yaml:"victory"`
	Time         time.Time `yaml:"time"`
}

type hallOfFameFile struct {
	Entries []HallOfFameEntry `yaml:"entries"`
}

// HallOfFame 名人堂（最高分列表）
//
// 使用 gdata 持久化为 YAML；gdataManager 为 nil 时只保存在内存中（降级模式）。
// 可被多个 SSH 会话并发使用。
type HallOfFame struct {
	mu           sync.RWMutex
	gdataManager *gdata.Manager
	entries      []HallOfFameEntry
	capacity     int
}

// NewHallOfFame 创建名人堂并加载已保存的记录
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
//
// 加载失败不是致命错误，记录日志后以空列表继续
func NewHallOfFame(gdataManager *gdata.Manager) *HallOfFame {
	h := &HallOfFame{
		gdataManager: gdataManager,
		capacity:     DefaultHallOfFameSize,
	}
	if err := h.Load(); err != nil {
		log.Printf("[HallOfFame] Warning: Failed to load scores: %v (starting empty)", err)
	}
	return h
}

// OpenStorage 打开默认位置的 gdata 存储（名人堂与设置共用）
// 打不开时返回 nil，调用方进入内存降级模式
func OpenStorage() *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{AppName: HallOfFameAppName})
	if err != nil {
		log.Printf("[Storage] Warning: gdata unavailable: %v (data kept in memory)", err)
		return nil
	}
	return manager
}

// OpenHallOfFame 打开默认存储位置的名人堂
func OpenHallOfFame() *HallOfFame {
	return NewHallOfFame(OpenStorage())
}

// Load 从 gdata 加载记录
func (h *HallOfFame) Load() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = nil
	if h.gdataManager == nil {
		return nil
	}
	if !h.gdataManager.ObjectPropExists(hallOfFameObject, hallOfFameProp) {
		return nil
	}

	data, err := h.gdataManager.LoadObjectProp(hallOfFameObject, hallOfFameProp)
	if err != nil {
		return fmt.Errorf("failed to load hall of fame: %w", err)
	}

	var file hallOfFameFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to unmarshal hall of fame: %w", err)
	}

	h.entries = file.Entries
	h.sortAndTruncate()
	log.Printf("[HallOfFame] Loaded %d entries", len(h.entries))
	return nil
}

// save 把记录写入 gdata，调用方需持有写锁
func (h *HallOfFame) save() error {
	if h.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(hallOfFameFile{Entries: h.entries})
	if err != nil {
		return fmt.Errorf("failed to marshal hall of fame: %w", err)
	}
	if err := h.gdataManager.SaveObjectProp(hallOfFameObject, hallOfFameProp, data); err != nil {
		return fmt.Errorf("failed to save hall of fame: %w", err)
	}
	return nil
}

// sortAndTruncate 按分数降序排序（同分时较早的记录在前），并截断到容量
func (h *HallOfFame) sortAndTruncate() {
	slices.SortStableFunc(h.entries, func(a, b HallOfFameEntry) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return a.Time.Compare(b.Time)
	})
	if len(h.entries) > h.capacity {
		h.entries = h.entries[:h.capacity]
	}
}

// Qualifies 检查分数能否进入名人堂
func (h *HallOfFame) Qualifies(score int) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if score <= 0 {
		return false
	}
	if len(h.entries) < h.capacity {
		return true
	}
	return score > h.entries[len(h.entries)-1].Score
}

// Record 记录一局成绩
//
// 返回：
//   - rank: 1-based 名次，未进入名人堂时为 0
//   - error: 持久化失败（内存中的记录仍然保留）
func (h *HallOfFame) Record(entry HallOfFameEntry) (int, error) {
	entry.Name = SanitizeName(entry.Name)
	if entry.Time.IsZero() {
		entry.Time = time.Now()
	}
	if !h.Qualifies(entry.Score) {
		return 0, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, entry)
	h.sortAndTruncate()

	rank := 0
	for i, e := range h.entries {
		if e == entry {
			rank = i + 1
			break
		}
	}

	if err := h.save(); err != nil {
		return rank, err
	}
	log.Printf("[HallOfFame] %s scored %d (rank %d)", entry.Name, entry.Score, rank)
	return rank, nil
}

// Entries 返回记录副本（已排序）
func (h *HallOfFame) Entries() []HallOfFameEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.entries)
}

// Best 返回最高分，没有记录时返回 0
func (h *HallOfFame) Best() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.entries) == 0 {
		return 0
	}
	return h.entries[0].Score
}

// SanitizeName 清理玩家名称：去掉控制字符，截断长度，空名称使用 "PILOT"
func SanitizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	runes := []rune(name)
	if len(runes) > MaxNameLength {
		name = string(runes[:MaxNameLength])
	}
	if name == "" {
		return "PILOT"
	}
	return name
}
