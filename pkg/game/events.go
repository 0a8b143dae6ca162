package game

import "github.com/decker502/invaders/pkg/types"

// EventType 游戏事件类型
type EventType int

const (
	EventShipFired EventType = iota
	EventAlienFired
	EventAlienHit
	EventAlienDestroyed
	EventShipHit
	EventShipDestroyed
	EventWaveStarted
	EventWaveCleared
	EventPhaseChanged
	EventHighScore
)

// String 返回事件名称
func (e EventType) String() string {
	switch e {
	case EventShipFired:
		return "ShipFired"
	case EventAlienFired:
		return "AlienFired"
	case EventAlienHit:
		return "AlienHit"
	case EventAlienDestroyed:
		return "AlienDestroyed"
	case EventShipHit:
		return "ShipHit"
	case EventShipDestroyed:
		return "ShipDestroyed"
	case EventWaveStarted:
		return "WaveStarted"
	case EventWaveCleared:
		return "WaveCleared"
	case EventPhaseChanged:
		return "PhaseChanged"
	case EventHighScore:
		return "HighScore"
	default:
		return "Unknown"
	}
}

// Event 游戏事件
// 前端（音效、终端闪屏）每帧取走一次
type Event struct {
	Type  EventType
	X, Y  float64         // 事件发生位置
	Kind  types.AlienKind // 外星人相关事件的种类
	Score int             // 击毁得分 / 名人堂分数
	Wave  int             // 波次索引
	Phase Phase           // 阶段切换后的新阶段
}

// EventQueue 事件队列
type EventQueue struct {
	events []Event
}

// NewEventQueue 创建事件队列
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 16)}
}

// Push 追加事件
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain 取走所有事件，按发生顺序返回
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len 返回未取走的事件数
func (q *EventQueue) Len() int {
	return len(q.events)
}
