package session

import "github.com/decker502/invaders/pkg/systems"

// Controls 一个逻辑步内的玩家输入
// 前端（ebiten、tcell、SSH 字节流）各自把按键映射到这里
type Controls struct {
	Left, Right bool
	Up, Down    bool
	Fire        bool

	Start bool // 菜单：开始游戏
	Retry bool // 游戏结束：重新开始
	Menu  bool // 回到菜单
	Bask  bool // 胜利画面：发射庆祝子弹
}

func (c Controls) shipInput() systems.ShipInput {
	return systems.ShipInput{
		Left:  c.Left,
		Right: c.Right,
		Up:    c.Up,
		Down:  c.Down,
		Fire:  c.Fire,
	}
}
