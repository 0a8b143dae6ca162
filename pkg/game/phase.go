package game

import (
	"errors"
	"fmt"
	"log"
)

// Phase 游戏阶段
type Phase int

const (
	// PhaseMenu 主菜单
	PhaseMenu Phase = iota
	// PhaseLoadWave 波次入场：外星人补间进入格子，不射击
	PhaseLoadWave
	// PhasePlaying 战斗
	PhasePlaying
	// PhaseGameOver 飞船被击毁
	PhaseGameOver
	// PhaseVictory 所有波次清空，名人堂
	PhaseVictory
)

// String 返回阶段名称
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhaseLoadWave:
		return "LoadWave"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	case PhaseVictory:
		return "Victory"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// ErrInvalidTransition 请求了不允许的阶段切换
var ErrInvalidTransition = errors.New("invalid phase transition")

// allowedTransitions 允许的阶段切换
var allowedTransitions = map[Phase][]Phase{
	PhaseMenu:     {PhaseLoadWave},
	PhaseLoadWave: {PhasePlaying, PhaseMenu},
	PhasePlaying:  {PhaseLoadWave, PhaseGameOver, PhaseVictory, PhaseMenu},
	PhaseGameOver: {PhaseLoadWave, PhaseMenu},
	PhaseVictory:  {PhaseMenu},
}

// CanTransition 检查是否允许从 from 切换到 to
func CanTransition(from, to Phase) bool {
	for _, p := range allowedTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// PhaseHook 阶段切换钩子
type PhaseHook func(from, to Phase)

// PhaseMachine 阶段状态机
//
// Request 只登记下一个阶段，切换在下一步开始时由 Apply 执行：
// 先运行旧阶段的 exit 钩子，再运行新阶段的 enter 钩子。
// 同一步内多次 Request，以最后一次为准。
type PhaseMachine struct {
	current Phase
	pending *Phase
	onEnter map[Phase][]PhaseHook
	onExit  map[Phase][]PhaseHook
}

// NewPhaseMachine 创建阶段状态机
func NewPhaseMachine(initial Phase) *PhaseMachine {
	return &PhaseMachine{
		current: initial,
		onEnter: make(map[Phase][]PhaseHook),
		onExit:  make(map[Phase][]PhaseHook),
	}
}

// Current 返回当前阶段
func (m *PhaseMachine) Current() Phase {
	return m.current
}

// Pending 返回已登记但尚未执行的阶段
func (m *PhaseMachine) Pending() (Phase, bool) {
	if m.pending == nil {
		return m.current, false
	}
	return *m.pending, true
}

// OnEnter 注册进入阶段时的钩子
func (m *PhaseMachine) OnEnter(p Phase, hook PhaseHook) {
	m.onEnter[p] = append(m.onEnter[p], hook)
}

// OnExit 注册离开阶段时的钩子
func (m *PhaseMachine) OnExit(p Phase, hook PhaseHook) {
	m.onExit[p] = append(m.onExit[p], hook)
}

// Request 登记切换到 next
// 不允许的切换返回 ErrInvalidTransition，已登记的切换保持不变
func (m *PhaseMachine) Request(next Phase) error {
	if !CanTransition(m.current, next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.current, next)
	}
	m.pending = &next
	return nil
}

// Apply 执行已登记的切换
// 返回 true 表示发生了切换
func (m *PhaseMachine) Apply() bool {
	if m.pending == nil {
		return false
	}
	from, to := m.current, *m.pending
	m.pending = nil

	for _, hook := range m.onExit[from] {
		hook(from, to)
	}
	m.current = to
	for _, hook := range m.onEnter[to] {
		hook(from, to)
	}

	log.Printf("[PhaseMachine] %s -> %s", from, to)
	return true
}
