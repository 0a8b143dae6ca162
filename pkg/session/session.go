package session

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/systems"
	"github.com/decker502/invaders/pkg/systems/behavior"
)

// Session 一局游戏的完整模拟
//
// 会话拥有实体管理器、全部系统和阶段状态机，由前端以固定步长驱动。
// 会话本身不是并发安全的，每个玩家（每条 SSH 连接）持有自己的实例。
type Session struct {
	opts   Options
	rng    *rand.Rand
	em     *ecs.EntityManager
	state  *game.GameState
	phases *game.PhaseMachine
	events *game.EventQueue

	cooldownSystem  *systems.CooldownSystem
	shipSystem      *systems.ShipSystem
	behaviorSystem  *behavior.BehaviorSystem
	tweenSystem     *systems.TweenSystem
	movementSystem  *systems.MovementSystem
	physicsSystem   *systems.PhysicsSystem
	hierarchySystem *systems.HierarchySystem
	animationSystem *systems.AnimationSystem
	lifetimeSystem  *systems.LifetimeSystem
	waveSpawner     *systems.WaveSpawnSystem
	glorySystem     *systems.GlorySystem

	phaseTime float64 // 当前阶段已持续的时间（秒）
	steps     uint64  // 已执行的逻辑步数
	lastRank  int     // 最近一次记入名人堂的名次，0 表示未上榜
}

// NewSession 创建会话，初始阶段为菜单
func NewSession(opts Options) (*Session, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	s := &Session{
		opts:   opts,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		em:     ecs.NewEntityManager(),
		state:  game.NewGameState(opts.Campaign.WaveCount()),
		phases: game.NewPhaseMachine(game.PhaseMenu),
		events: game.NewEventQueue(),
	}
	s.state.HighScore = opts.HallOfFame.Best()

	s.cooldownSystem = systems.NewCooldownSystem(s.em)
	s.shipSystem = systems.NewShipSystem(s.em, s.events)
	s.behaviorSystem = behavior.NewBehaviorSystem(s.em, opts.Stats, s.rng, s.events)
	s.tweenSystem = systems.NewTweenSystem(s.em)
	s.movementSystem = systems.NewMovementSystem(s.em)
	s.physicsSystem = systems.NewPhysicsSystem(s.em, s.state, s.events)
	s.hierarchySystem = systems.NewHierarchySystem(s.em)
	s.animationSystem = systems.NewAnimationSystem(s.em)
	s.lifetimeSystem = systems.NewLifetimeSystem(s.em)
	s.waveSpawner = systems.NewWaveSpawnSystem(s.em, opts.Campaign, opts.Stats, s.rng, s.events)
	s.glorySystem = systems.NewGlorySystem(s.em, s.rng)

	s.registerPhaseHooks()

	log.Printf("[Session] 创建会话 (seed=%d, waves=%d, player=%s)", opts.Seed, opts.Campaign.WaveCount(), opts.PlayerName)
	return s, nil
}

// Phase 返回当前阶段
func (s *Session) Phase() game.Phase {
	return s.phases.Current()
}

// State 返回会话状态的副本
func (s *Session) State() game.GameState {
	return *s.state
}

// PhaseTime 返回当前阶段已持续的时间（秒）
func (s *Session) PhaseTime() float64 {
	return s.phaseTime
}

// AliensRemaining 返回存活外星人数量
func (s *Session) AliensRemaining() int {
	return s.waveSpawner.AliensRemaining()
}

// HallOfFame 返回会话使用的名人堂
func (s *Session) HallOfFame() *game.HallOfFame {
	return s.opts.HallOfFame
}

// PlayerName 返回玩家名称
func (s *Session) PlayerName() string {
	return s.opts.PlayerName
}

// SetPlayerName 修改玩家名称，下一次记入名人堂时生效
func (s *Session) SetPlayerName(name string) {
	s.opts.PlayerName = game.SanitizeName(name)
}

// Events 取走本步以来产生的事件
func (s *Session) Events() []game.Event {
	return s.events.Drain()
}

// Update 执行一个固定逻辑步（config.TimeStep）
//
// 顺序：
//  1. 执行上一步登记的阶段切换（exit/enter 钩子）
//  2. 运行当前阶段的系统
//  3. 根据输入和世界状态登记下一次切换
func (s *Session) Update(controls Controls) {
	dt := config.TimeStep
	s.steps++

	if s.phases.Apply() {
		s.phaseTime = 0
		s.events.Push(game.Event{Type: game.EventPhaseChanged, Phase: s.phases.Current(), Wave: s.state.CurrentWave})
	}

	phase := s.phases.Current()
	s.runSystems(phase, controls, dt)
	s.em.RemoveMarkedEntities()
	s.phaseTime += dt

	s.evaluateTransitions(phase, controls)
}

// runSystems 不同阶段运行不同的系统集合
func (s *Session) runSystems(phase game.Phase, controls Controls, dt float64) {
	switch phase {
	case game.PhaseLoadWave:
		s.shipSystem.Update(dt, controls.shipInput(), false)
		s.tweenSystem.Update(dt)
		s.hierarchySystem.Update(dt)
		s.animationSystem.Update(dt)
		s.lifetimeSystem.Update(dt)

	case game.PhasePlaying:
		s.cooldownSystem.Update(dt)
		s.shipSystem.Update(dt, controls.shipInput(), true)
		s.behaviorSystem.Update(dt)
		s.tweenSystem.Update(dt)
		s.movementSystem.Update(dt)
		s.physicsSystem.Update(dt)
		s.hierarchySystem.Update(dt)
		s.animationSystem.Update(dt)
		s.lifetimeSystem.Update(dt)

	case game.PhaseGameOver:
		s.movementSystem.Update(dt)
		s.physicsSystem.Update(dt)
		s.hierarchySystem.Update(dt)
		s.animationSystem.Update(dt)
		s.lifetimeSystem.Update(dt)

	case game.PhaseVictory:
		s.glorySystem.Update(dt, controls.Bask)
		s.movementSystem.Update(dt)
		s.animationSystem.Update(dt)
		s.lifetimeSystem.Update(dt)
	}
}

// evaluateTransitions 登记下一步的阶段切换
func (s *Session) evaluateTransitions(phase game.Phase, controls Controls) {
	// 钩子里已经登记了切换（如生成波次失败回到菜单）
	if _, pending := s.phases.Pending(); pending {
		return
	}

	switch phase {
	case game.PhaseMenu:
		if controls.Start {
			s.request(game.PhaseLoadWave)
		}

	case game.PhaseLoadWave:
		if controls.Menu {
			s.request(game.PhaseMenu)
		} else if s.phaseTime >= s.waveSpawner.LoadWaveDuration() {
			s.request(game.PhasePlaying)
		}

	case game.PhasePlaying:
		switch {
		case controls.Menu:
			s.request(game.PhaseMenu)
		case !s.shipAlive():
			s.request(game.PhaseGameOver)
		case s.waveSpawner.AliensRemaining() == 0:
			s.events.Push(game.Event{Type: game.EventWaveCleared, Wave: s.state.CurrentWave})
			if s.state.AdvanceWave() {
				s.request(game.PhaseLoadWave)
			} else {
				s.request(game.PhaseVictory)
			}
		}

	case game.PhaseGameOver:
		if controls.Menu {
			s.request(game.PhaseMenu)
		} else if controls.Retry {
			s.request(game.PhaseLoadWave)
		}

	case game.PhaseVictory:
		if controls.Menu {
			s.request(game.PhaseMenu)
		}
	}
}

func (s *Session) request(next game.Phase) {
	if err := s.phases.Request(next); err != nil {
		log.Printf("[Session] %v", err)
	}
}

func (s *Session) shipAlive() bool {
	_, ok := systems.FindShip(s.em)
	return ok
}

// registerPhaseHooks 注册阶段进入/离开时的钩子
func (s *Session) registerPhaseHooks() {
	s.phases.OnEnter(game.PhaseMenu, func(from, to game.Phase) {
		s.em.Clear()
	})

	s.phases.OnEnter(game.PhaseLoadWave, func(from, to game.Phase) {
		if from == game.PhasePlaying {
			// 入场阶段不推进子弹，上一波剩下的子弹直接移除
			systems.DestroyAll[*components.BulletComponent](s.em)
		} else if err := s.startNewGame(); err != nil {
			log.Printf("[Session] 开始新游戏失败: %v", err)
			s.request(game.PhaseMenu)
			return
		}
		if _, err := s.waveSpawner.SpawnWave(s.state.CurrentWave); err != nil {
			log.Printf("[Session] 生成波次失败: %v", err)
			s.request(game.PhaseMenu)
		}
	})

	s.phases.OnEnter(game.PhaseGameOver, func(from, to game.Phase) {
		systems.DestroyAll[*components.AlienComponent](s.em)
		s.recordHallOfFame(false)
	})

	s.phases.OnEnter(game.PhaseVictory, func(from, to game.Phase) {
		s.recordHallOfFame(true)
		s.state.ResetWave()
		if _, err := entities.NewTrophy(s.em); err != nil {
			log.Printf("[Session] 创建奖杯失败: %v", err)
		}
	})

	clearActors := func(from, to game.Phase) {
		systems.DestroyAll[*components.ShipComponent](s.em)
		systems.DestroyAll[*components.BulletComponent](s.em)
	}
	s.phases.OnExit(game.PhaseGameOver, clearActors)
	s.phases.OnExit(game.PhaseVictory, clearActors)
	s.phases.OnExit(game.PhaseVictory, func(from, to game.Phase) {
		systems.DestroyAll[*components.HallOfFameMarkerComponent](s.em)
	})
}

// startNewGame 清空世界，得分归零并生成飞船
func (s *Session) startNewGame() error {
	s.em.Clear()
	s.state.ResetForNewGame(s.opts.StartWave)
	s.state.ShipHealth = config.ShipHealth
	s.state.HighScore = max(s.state.HighScore, s.opts.HallOfFame.Best())
	s.lastRank = 0

	x, y := entities.ShipSpawnPosition()
	if _, err := entities.NewShip(s.em, x, y); err != nil {
		return fmt.Errorf("failed to spawn ship: %w", err)
	}
	log.Printf("[Session] 新游戏，从第 %d 波开始", s.state.CurrentWave+1)
	return nil
}

// recordHallOfFame 把本局成绩记入名人堂
func (s *Session) recordHallOfFame(victory bool) {
	rank, err := s.opts.HallOfFame.Record(game.HallOfFameEntry{
		Name:         s.opts.PlayerName,
		Score:        s.state.Score,
		WavesCleared: s.state.WavesCleared,
		Victory:      victory,
	})
	if err != nil {
		log.Printf("[Session] 名人堂保存失败: %v", err)
	}
	s.lastRank = rank
	if rank == 1 {
		s.events.Push(game.Event{Type: game.EventHighScore, Score: s.state.Score})
	}
}
