package mahjong

import "slices"

// Yaku 役种
type Yaku int

const (
	YakuRiichi Yaku = iota // 立直
	YakuDoubleRiichi
	YakuIppatsu
	YakuTsumo // 门前清自摸和
	YakuPinfu
	YakuTanyao
	YakuIipeiko
	YakuYakuhaiRound // 役牌(场风)
	YakuYakuhaiSeat  // 役牌(自风)
	YakuDoubleWind   // 连风牌合并计法
	YakuHaku
	YakuHatsu
	YakuChun
	YakuRinshan
	YakuChankan
	YakuHaitei
	YakuHoutei
	YakuChiitoi
	YakuSanshokuDoujun
	YakuIttsu
	YakuChanta
	YakuSanankou
	YakuSanshokuDoukou
	YakuSankantsu
	YakuToitoi
	YakuShousangen
	YakuHonroutou
	YakuHonitsu
	YakuJunchan
	YakuRyanpeiko
	YakuChinitsu
	// 役满
	YakuKokushi
	YakuSuuankou
	YakuSuuankouTanki
	YakuDaisangen
	YakuShousuushii
	YakuDaisuushii
	YakuTsuuiisou
	YakuChinroutou
	YakuChuuren
	YakuJunseiChuuren
	YakuSuukantsu
	// 宝牌, 不算役
	YakuDora
	YakuAkaDora
	YakuUraDora
)

var yakuNames = map[Yaku]string{
	YakuRiichi:         "Riichi",
	YakuDoubleRiichi:   "Double Riichi",
	YakuIppatsu:        "Ippatsu",
	YakuTsumo:          "Menzen Tsumo",
	YakuPinfu:          "Pinfu",
	YakuTanyao:         "Tanyao",
	YakuIipeiko:        "Iipeiko",
	YakuYakuhaiRound:   "Yakuhai (Round Wind)",
	YakuYakuhaiSeat:    "Yakuhai (Seat Wind)",
	YakuDoubleWind:     "Yakuhai (Double Wind)",
	YakuHaku:           "Yakuhai (Haku)",
	YakuHatsu:          "Yakuhai (Hatsu)",
	YakuChun:           "Yakuhai (Chun)",
	YakuRinshan:        "Rinshan Kaihou",
	YakuChankan:        "Chankan",
	YakuHaitei:         "Haitei Raoyue",
	YakuHoutei:         "Houtei Raoyui",
	YakuChiitoi:        "Chiitoitsu",
	YakuSanshokuDoujun: "Sanshoku Doujun",
	YakuIttsu:          "Ittsu",
	YakuChanta:         "Chanta",
	YakuSanankou:       "Sanankou",
	YakuSanshokuDoukou: "Sanshoku Doukou",
	YakuSankantsu:      "Sankantsu",
	YakuToitoi:         "Toitoi",
	YakuShousangen:     "Shousangen",
	YakuHonroutou:      "Honroutou",
	YakuHonitsu:        "Honitsu",
	YakuJunchan:        "Junchan",
	YakuRyanpeiko:      "Ryanpeiko",
	YakuChinitsu:       "Chinitsu",
	YakuKokushi:        "Kokushi Musou",
	YakuSuuankou:       "Suuankou",
	YakuSuuankouTanki:  "Suuankou Tanki",
	YakuDaisangen:      "Daisangen",
	YakuShousuushii:    "Shousuushii",
	YakuDaisuushii:     "Daisuushii",
	YakuTsuuiisou:      "Tsuuiisou",
	YakuChinroutou:     "Chinroutou",
	YakuChuuren:        "Chuuren Poutou",
	YakuJunseiChuuren:  "Junsei Chuuren Poutou",
	YakuSuukantsu:      "Suukantsu",
	YakuDora:           "Dora",
	YakuAkaDora:        "Aka Dora",
	YakuUraDora:        "Ura Dora",
}

func (y Yaku) String() string {
	return yakuNames[y]
}

// IsYakuman 役满役种
func (y Yaku) IsYakuman() bool {
	return y >= YakuKokushi && y <= YakuSuukantsu
}

type judge struct {
	hand   *Hand
	deco   *Decomposition
	ctx    *Context
	all    []Tile // 全部牌的净牌面
	menzen bool
}

// JudgeYaku 判定一种分解下成立的全部役. 宝牌另行计数.
func JudgeYaku(h *Hand, d *Decomposition, ctx *Context) map[Yaku]int32 {
	j := &judge{hand: h, deco: d, ctx: ctx, menzen: h.IsMenzen()}
	for _, t := range h.AllTiles() {
		j.all = append(j.all, t.Normalize())
	}

	if found := j.judgeYakuman(); len(found) > 0 {
		return found
	}
	return j.judgeNormal()
}

// discount 副露减番
func (j *judge) discount(closed, open int32) int32 {
	if j.menzen {
		return closed
	}
	return open
}

func (j *judge) judgeNormal() map[Yaku]int32 {
	found := make(map[Yaku]int32)

	// 状况役
	if j.ctx.IsDoubleRiichi && j.menzen {
		found[YakuDoubleRiichi] = 2
	} else if j.ctx.IsRiichi && j.menzen {
		found[YakuRiichi] = 1
	}
	if j.ctx.IsIppatsu && j.ctx.riichiDeclared() {
		found[YakuIppatsu] = 1
	}
	if j.ctx.IsTsumo && j.menzen {
		found[YakuTsumo] = 1
	}
	if j.ctx.IsRinshan {
		found[YakuRinshan] = 1
	}
	if j.ctx.IsChankan {
		found[YakuChankan] = 1
	}
	if j.ctx.IsHaitei {
		if j.ctx.IsTsumo {
			found[YakuHaitei] = 1
		} else {
			found[YakuHoutei] = 1
		}
	}

	// 手牌构成役
	if j.deco.Kind == HandSevenPairs {
		found[YakuChiitoi] = 2
	}
	if j.checkTanyao() {
		found[YakuTanyao] = 1
	}
	if j.checkHonroutou() {
		found[YakuHonroutou] = 2
	}
	j.checkFlush(found)

	if j.deco.Kind == HandNormal {
		if j.checkPinfu() {
			found[YakuPinfu] = 1
		}
		j.checkYakuhai(found)
		j.checkDuplicateSequences(found)
		if j.checkSanshokuDoujun() {
			found[YakuSanshokuDoujun] = j.discount(2, 1)
		}
		if j.checkIttsu() {
			found[YakuIttsu] = j.discount(2, 1)
		}
		j.checkChanta(found)
		if j.concealedTripletCount() >= 3 {
			found[YakuSanankou] = 2
		}
		if j.checkSanshokuDoukou() {
			found[YakuSanshokuDoukou] = 2
		}
		if j.quadCount() == 3 {
			found[YakuSankantsu] = 2
		}
		if j.checkToitoi() {
			found[YakuToitoi] = 2
		}
		if j.checkShousangen() {
			found[YakuShousangen] = 2
		}
	}
	return found
}

func (j *judge) checkTanyao() bool {
	for _, t := range j.all {
		if t.IsYaochu() {
			return false
		}
	}
	return true
}

// 平和: 门清四顺子, 雀头非役牌, 两面听
func (j *judge) checkPinfu() bool {
	if !j.menzen || j.deco.Wait != WaitRyanmen {
		return false
	}
	for i := range j.deco.Groups {
		if !j.deco.Groups[i].IsSequence() {
			return false
		}
	}
	pair := j.deco.Pair
	if pair.IsDragon() || pair == j.ctx.RoundWind || pair == j.ctx.SeatWind {
		return false
	}
	return true
}

func (j *judge) checkYakuhai(found map[Yaku]int32) {
	for i := range j.deco.Groups {
		g := &j.deco.Groups[i]
		if !g.IsTriplet() {
			continue
		}
		tile := g.Tiles[0]
		switch tile {
		case TileHaku:
			found[YakuHaku] = 1
		case TileHatsu:
			found[YakuHatsu] = 1
		case TileChun:
			found[YakuChun] = 1
		}
		if !tile.IsWind() {
			continue
		}
		isRound := tile == j.ctx.RoundWind
		isSeat := tile == j.ctx.SeatWind
		if isRound && isSeat && !j.ctx.Rule.DoubleWindStacked {
			found[YakuDoubleWind] = 2
			continue
		}
		if isRound {
			found[YakuYakuhaiRound] = 1
		}
		if isSeat {
			found[YakuYakuhaiSeat] = 1
		}
	}
}

// 一杯口/二杯口: 相同顺子按多重集合计对数
func (j *judge) checkDuplicateSequences(found map[Yaku]int32) {
	if !j.menzen {
		return
	}
	counts := make(map[Tile]int)
	for i := range j.deco.Groups {
		g := &j.deco.Groups[i]
		if g.IsSequence() {
			counts[g.Tiles[0]]++
		}
	}
	pairs := 0
	for _, c := range counts {
		pairs += c / 2
	}
	switch pairs {
	case 1:
		found[YakuIipeiko] = 1
	case 2:
		found[YakuRyanpeiko] = 3
	}
}

func (j *judge) checkSanshokuDoujun() bool {
	return j.checkSanshoku(func(g *Group) bool { return g.IsSequence() })
}

func (j *judge) checkSanshokuDoukou() bool {
	return j.checkSanshoku(func(g *Group) bool { return g.IsTriplet() })
}

func (j *judge) checkSanshoku(match func(*Group) bool) bool {
	byPoint := make(map[int]map[EColor]bool)
	for i := range j.deco.Groups {
		g := &j.deco.Groups[i]
		if !match(g) || !g.Tiles[0].IsSuit() {
			continue
		}
		p := g.Tiles[0].Point()
		if byPoint[p] == nil {
			byPoint[p] = make(map[EColor]bool)
		}
		byPoint[p][g.Tiles[0].Color()] = true
	}
	for _, colors := range byPoint {
		if len(colors) == 3 {
			return true
		}
	}
	return false
}

// 一气通贯: 同色123,456,789
func (j *judge) checkIttsu() bool {
	starts := make(map[EColor]map[int]bool)
	for i := range j.deco.Groups {
		g := &j.deco.Groups[i]
		if !g.IsSequence() {
			continue
		}
		c := g.Tiles[0].Color()
		if starts[c] == nil {
			starts[c] = make(map[int]bool)
		}
		starts[c][g.Tiles[0].Point()] = true
	}
	for _, points := range starts {
		if points[0] && points[3] && points[6] {
			return true
		}
	}
	return false
}

// 混全带幺九/纯全带幺九: 每组和雀头都含幺九, 无字牌时升级为纯全.
// 没有顺子的全幺九手归混老头, 不重复计.
func (j *judge) checkChanta(found map[Yaku]int32) {
	if !j.deco.Pair.IsYaochu() {
		return
	}
	hasSequence := false
	for i := range j.deco.Groups {
		g := &j.deco.Groups[i]
		if !slices.ContainsFunc(g.Tiles, Tile.IsYaochu) {
			return
		}
		if g.IsSequence() {
			hasSequence = true
		}
	}
	if !hasSequence {
		return
	}
	for _, t := range j.all {
		if t.IsHonor() {
			found[YakuChanta] = j.discount(2, 1)
			return
		}
	}
	found[YakuJunchan] = j.discount(3, 2)
}

// concealedTripletCount 暗刻数: 碰/明杠不算, 荣和张完成的刻子不算
func (j *judge) concealedTripletCount() int {
	win := j.hand.WinTile.Normalize()
	count := 0
	for i := range j.deco.Groups {
		g := &j.deco.Groups[i]
		if !g.IsTriplet() {
			continue
		}
		if g.Meld != nil {
			if g.Meld.IsConcealed() {
				count++
			}
			continue
		}
		if !j.ctx.IsTsumo && g.Contains(win) {
			continue
		}
		count++
	}
	return count
}

func (j *judge) quadCount() int {
	count := 0
	for i := range j.deco.Groups {
		if j.deco.Groups[i].IsQuad() {
			count++
		}
	}
	return count
}

func (j *judge) checkToitoi() bool {
	for i := range j.deco.Groups {
		if !j.deco.Groups[i].IsTriplet() {
			return false
		}
	}
	return true
}

func (j *judge) checkShousangen() bool {
	if !j.deco.Pair.IsDragon() {
		return false
	}
	triplets := 0
	for i := range j.deco.Groups {
		g := &j.deco.Groups[i]
		if g.IsTriplet() && g.Tiles[0].IsDragon() {
			triplets++
		}
	}
	return triplets == 2
}

// 混老头: 全幺九且无顺子(七对子天然满足)
func (j *judge) checkHonroutou() bool {
	for i := range j.deco.Groups {
		if j.deco.Groups[i].IsSequence() {
			return false
		}
	}
	for _, t := range j.all {
		if !t.IsYaochu() {
			return false
		}
	}
	return true
}

// 混一色/清一色
func (j *judge) checkFlush(found map[Yaku]int32) {
	color := ColorUndefined
	hasHonor := false
	for _, t := range j.all {
		if t.IsHonor() {
			hasHonor = true
			continue
		}
		if color == ColorUndefined {
			color = t.Color()
		} else if t.Color() != color {
			return
		}
	}
	if color == ColorUndefined {
		return // 字一色归役满
	}
	if hasHonor {
		found[YakuHonitsu] = j.discount(3, 2)
	} else {
		found[YakuChinitsu] = j.discount(6, 5)
	}
}

// DoraCount 宝牌计数: 表/赤/里, 里宝只在立直时有效
type DoraCount struct {
	Dora int32
	Aka  int32
	Ura  int32
}

func (d DoraCount) Total() int32 {
	return d.Dora + d.Aka + d.Ura
}

func CountDora(h *Hand, ctx *Context) DoraCount {
	var res DoraCount
	dora := successors(ctx.DoraIndicators)
	var ura []Tile
	if ctx.riichiDeclared() {
		ura = successors(ctx.UraIndicators)
	}
	for _, t := range h.AllTiles() {
		if t.IsRed() {
			res.Aka++
		}
		n := t.Normalize()
		res.Dora += int32(countTile(dora, n))
		res.Ura += int32(countTile(ura, n))
	}
	return res
}

func successors(indicators []Tile) []Tile {
	res := make([]Tile, 0, len(indicators))
	for _, t := range indicators {
		if next := t.NextTile(); next != TileNull {
			res = append(res, next)
		}
	}
	return res
}

func countTile(tiles []Tile, t Tile) int {
	count := 0
	for _, v := range tiles {
		if v == t {
			count++
		}
	}
	return count
}
