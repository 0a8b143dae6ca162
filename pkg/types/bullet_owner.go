package types

// BulletOwner 标识子弹所属阵营
type BulletOwner int

const (
	// OwnerShip 玩家飞船发射的子弹，只能伤害外星人
	OwnerShip BulletOwner = iota
	// OwnerAlien 外星人发射的子弹，只能伤害飞船
	OwnerAlien
)

// String 返回阵营名称
func (o BulletOwner) String() string {
	if o == OwnerAlien {
		return "alien"
	}
	return "ship"
}
