package mahjong

// 役满判定. 命中任何役满后普通役全部作废, 多个役满相互叠加.

const (
	hanYakuman       int32 = 13
	hanDoubleYakuman int32 = 26
)

func (j *judge) judgeYakuman() map[Yaku]int32 {
	found := make(map[Yaku]int32)

	if j.deco.Kind == HandThirteenOrphans {
		found[YakuKokushi] = hanYakuman
	}
	if j.deco.Kind == HandNormal {
		j.checkSuuankou(found)
		j.checkDragonsAndWinds(found)
		j.checkQuads(found)
		j.checkChuuren(found)
	}
	j.checkAllHonorsTerminals(found)
	return found
}

// 四暗刻, 单骑听则双倍
func (j *judge) checkSuuankou(found map[Yaku]int32) {
	if !j.hand.IsMenzen() {
		return
	}
	if j.concealedTripletCount() != GroupCount {
		return
	}
	if j.deco.Wait == WaitTanki {
		found[YakuSuuankouTanki] = hanDoubleYakuman
	} else {
		found[YakuSuuankou] = hanYakuman
	}
}

func (j *judge) checkDragonsAndWinds(found map[Yaku]int32) {
	dragons, winds := 0, 0
	for i := range j.deco.Groups {
		g := &j.deco.Groups[i]
		if !g.IsTriplet() {
			continue
		}
		if g.Tiles[0].IsDragon() {
			dragons++
		}
		if g.Tiles[0].IsWind() {
			winds++
		}
	}
	if dragons == 3 {
		found[YakuDaisangen] = hanYakuman
	}
	switch {
	case winds == 4:
		found[YakuDaisuushii] = hanDoubleYakuman
	case winds == 3 && j.deco.Pair.IsWind():
		found[YakuShousuushii] = hanYakuman
	}
}

func (j *judge) checkQuads(found map[Yaku]int32) {
	quads := 0
	for i := range j.deco.Groups {
		if j.deco.Groups[i].IsQuad() {
			quads++
		}
	}
	if quads == GroupCount {
		found[YakuSuukantsu] = hanYakuman
	}
}

// 九莲宝灯: 门清清一色, 牌面构成1112345678999+任意一张.
// 去掉和牌张恰好剩下纯正形则为纯正九莲, 双倍.
func (j *judge) checkChuuren(found map[Yaku]int32) {
	if !j.hand.IsMenzen() || len(j.hand.Melds) > 0 {
		return
	}
	color := ColorUndefined
	var points [9]int
	for _, t := range j.all {
		if !t.IsSuit() {
			return
		}
		if color == ColorUndefined {
			color = t.Color()
		} else if t.Color() != color {
			return
		}
		points[t.Point()]++
	}
	if points[0] < 3 || points[8] < 3 {
		return
	}
	for p := 1; p < 8; p++ {
		if points[p] < 1 {
			return
		}
	}

	win := j.hand.WinTile.Normalize()
	if win.Color() != color {
		return
	}
	base := [9]int{3, 1, 1, 1, 1, 1, 1, 1, 3}
	work := points
	work[win.Point()]--
	if work == base {
		found[YakuJunseiChuuren] = hanDoubleYakuman
	} else {
		found[YakuChuuren] = hanYakuman
	}
}

func (j *judge) checkAllHonorsTerminals(found map[Yaku]int32) {
	honors, terminals := true, true
	for _, t := range j.all {
		if !t.IsHonor() {
			honors = false
		}
		if !t.IsTerminal() {
			terminals = false
		}
	}
	if honors {
		found[YakuTsuuiisou] = hanYakuman
	}
	if terminals {
		found[YakuChinroutou] = hanYakuman
	}
}
