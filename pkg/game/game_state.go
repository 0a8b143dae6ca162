package game

// GameState 存储一局游戏的全局状态（得分、波次、飞船生命）
// 每个会话持有自己的实例，SSH 服务器上的多个会话互不影响
type GameState struct {
	Score        int // 当前得分
	CurrentWave  int // 当前波次索引（0-based）
	TotalWaves   int // 战役总波次数
	WavesCleared int // 本局已清空的波次数
	ShipHealth   int // 飞船生命值快照，供 HUD 显示
	HighScore    int // 名人堂最高分，供 HUD 显示
}

// NewGameState 创建新的游戏状态
func NewGameState(totalWaves int) *GameState {
	return &GameState{TotalWaves: totalWaves}
}

// AddScore 增加得分，负值被忽略
func (gs *GameState) AddScore(amount int) {
	if amount <= 0 {
		return
	}
	gs.Score += amount
	if gs.Score > gs.HighScore {
		gs.HighScore = gs.Score
	}
}

// ResetForNewGame 开始新的一局：得分清零，从 startWave 开始
func (gs *GameState) ResetForNewGame(startWave int) {
	gs.Score = 0
	gs.WavesCleared = 0
	gs.CurrentWave = clampWave(startWave, gs.TotalWaves)
}

// ResetWave 回到第一波（胜利后），保留得分供名人堂显示
func (gs *GameState) ResetWave() {
	gs.CurrentWave = 0
}

// AdvanceWave 记录当前波次已清空并前进到下一波
// 返回 false 表示已经是最后一波（此时 CurrentWave 不变）
func (gs *GameState) AdvanceWave() bool {
	gs.WavesCleared++
	if gs.IsLastWave() {
		return false
	}
	gs.CurrentWave++
	return true
}

// IsLastWave 当前是否为最后一波
func (gs *GameState) IsLastWave() bool {
	return gs.CurrentWave >= gs.TotalWaves-1
}

func clampWave(wave, total int) int {
	if wave < 0 || total <= 0 {
		return 0
	}
	if wave >= total {
		return total - 1
	}
	return wave
}
