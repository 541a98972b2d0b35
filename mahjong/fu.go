package mahjong

// 符数计算

const (
	fuBase        int32 = 20
	fuChiitoi     int32 = 25
	fuMenzenRon   int32 = 10
	fuTsumo       int32 = 2
	fuEdgeWait    int32 = 2
	fuYakuhaiPair int32 = 2
)

// CalcFu 按一种分解算符. 七对子固定25符不进位,
// 其余进到10的整数倍. 役满手的符不参与算点, 这里仍按常规累加.
func CalcFu(h *Hand, d *Decomposition, ctx *Context, yaku map[Yaku]int32) int32 {
	switch d.Kind {
	case HandSevenPairs:
		return fuChiitoi
	case HandThirteenOrphans:
		return 0
	}

	_, pinfu := yaku[YakuPinfu]
	fu := fuBase

	if h.IsMenzen() && !ctx.IsTsumo {
		fu += fuMenzenRon
	}
	if ctx.IsTsumo && !pinfu {
		fu += fuTsumo
	}

	win := h.WinTile.Normalize()
	for i := range d.Groups {
		fu += groupFu(&d.Groups[i], win, ctx.IsTsumo)
	}
	fu += pairFu(d.Pair, ctx)

	switch d.Wait {
	case WaitKanchan, WaitPenchan, WaitTanki:
		fu += fuEdgeWait
	}

	// 副露平和形: 20符提升到30
	if fu == fuBase && !h.IsMenzen() {
		fu = 30
	}
	return roundUp10(fu)
}

func groupFu(g *Group, win Tile, tsumo bool) int32 {
	if g.IsSequence() {
		return 0
	}
	if g.Meld != nil {
		return g.Meld.Fu()
	}
	// 门前刻子: 荣和张完成的按明刻算
	var fu int32 = 4
	if !tsumo && g.Contains(win) {
		fu = 2
	}
	if g.Tiles[0].IsYaochu() {
		fu *= 2
	}
	return fu
}

func pairFu(pair Tile, ctx *Context) int32 {
	if pair.IsDragon() {
		return fuYakuhaiPair
	}
	var fu int32
	if pair == ctx.RoundWind {
		fu += fuYakuhaiPair
	}
	if pair == ctx.SeatWind {
		fu += fuYakuhaiPair
	}
	if fu > fuYakuhaiPair && !ctx.Rule.DoubleWindStacked {
		fu = fuYakuhaiPair
	}
	return fu
}

func roundUp10(fu int32) int32 {
	return (fu + 9) / 10 * 10
}
