package mahjong

// Rule 规则开关
type Rule struct {
	// DoubleWindStacked 连风刻按场风+自风两个1番计, 关闭则合并为一个2番
	DoubleWindStacked bool
}

func DefaultRule() Rule {
	return Rule{DoubleWindStacked: true}
}

// Context 和牌时的桌面状况, 对算点只读
type Context struct {
	IsTsumo        bool
	IsDealer       bool
	RoundWind      Tile
	SeatWind       Tile
	IsRiichi       bool
	IsDoubleRiichi bool
	IsIppatsu      bool
	IsRinshan      bool // 岭上开花
	IsHaitei       bool // 海底/河底
	IsChankan      bool // 抢杠
	DoraIndicators []Tile
	UraIndicators  []Tile
	Rule           Rule
}

// riichiDeclared 立直或两立直
func (c *Context) riichiDeclared() bool {
	return c.IsRiichi || c.IsDoubleRiichi
}
