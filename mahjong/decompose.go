package mahjong

import (
	"maps"
	"slices"
)

// Group 一组面子: 门前分解出的组Meld为nil, 副露组挂原Meld
type Group struct {
	Tiles []Tile // 净牌面, 已排序
	Meld  *Meld
}

func (g *Group) IsSequence() bool {
	return len(g.Tiles) > 1 && g.Tiles[0] != g.Tiles[1]
}

func (g *Group) IsTriplet() bool {
	return !g.IsSequence()
}

func (g *Group) IsQuad() bool {
	return len(g.Tiles) == 4
}

// IsOpen 鸣出来的组(暗杠除外)
func (g *Group) IsOpen() bool {
	return g.Meld != nil && !g.Meld.IsConcealed()
}

func (g *Group) Contains(tile Tile) bool {
	return slices.Contains(g.Tiles, tile.Normalize())
}

// Decomposition 手牌的一种和了解释
type Decomposition struct {
	Kind   EHandKind
	Pair   Tile    // 雀头; 七对子为TileNull, 国士为和牌张
	Groups []Group // 普通型4组(含副露), 七对子为7个两张组
	Wait   EWait
}

// Decompose 枚举手牌全部和了分解. 不是和牌形时返回空, 不报错.
func Decompose(h *Hand) []*Decomposition {
	win := h.WinTile.Normalize()
	counts := h.CountMap()

	// 特殊全手型只在无副露时成立, 命中即短路
	if len(h.Melds) == 0 {
		if d := decomposeThirteenOrphans(counts, win); d != nil {
			return []*Decomposition{d}
		}
		if d := decomposeSevenPairs(counts); d != nil {
			return []*Decomposition{d}
		}
	}

	meldGroups := make([]Group, len(h.Melds))
	for i, m := range h.Melds {
		tiles := make([]Tile, len(m.Tiles))
		for j, t := range m.Tiles {
			tiles[j] = t.Normalize()
		}
		meldGroups[i] = Group{Tiles: tiles, Meld: m}
	}

	var results []*Decomposition
	for _, pair := range sortedTiles(counts) {
		if counts[pair] < 2 {
			continue
		}
		rest := maps.Clone(counts)
		rest[pair] -= 2
		if rest[pair] == 0 {
			delete(rest, pair)
		}
		for _, combo := range partition(rest) {
			groups := append(slices.Clone(combo), meldGroups...)
			wait, ok := classifyWait(combo, pair, win)
			if !ok {
				continue
			}
			results = append(results, &Decomposition{
				Kind:   HandNormal,
				Pair:   pair,
				Groups: groups,
				Wait:   wait,
			})
		}
	}
	return results
}

func decomposeThirteenOrphans(counts map[Tile]int, win Tile) *Decomposition {
	targets := YaochuTiles()
	total := 0
	for tile, c := range counts {
		if !slices.Contains(targets, tile) {
			return nil
		}
		total += c
	}
	if total != TileCountFull {
		return nil
	}
	for _, t := range targets {
		if counts[t] == 0 {
			return nil
		}
	}
	return &Decomposition{Kind: HandThirteenOrphans, Pair: win, Wait: WaitTanki}
}

func decomposeSevenPairs(counts map[Tile]int) *Decomposition {
	if len(counts) != SevenPairCount {
		return nil
	}
	groups := make([]Group, 0, SevenPairCount)
	for _, tile := range sortedTiles(counts) {
		if counts[tile] != 2 {
			return nil
		}
		groups = append(groups, Group{Tiles: []Tile{tile, tile}})
	}
	return &Decomposition{Kind: HandSevenPairs, Pair: TileNull, Groups: groups, Wait: WaitTanki}
}

// partition 把剩余牌面递归拆成刻子/顺子的全部方案.
// 每个分支克隆计数, 不共享可变状态.
func partition(counts map[Tile]int) [][]Group {
	if len(counts) == 0 {
		return [][]Group{{}}
	}
	tile := minTile(counts)
	var results [][]Group

	if counts[tile] >= 3 {
		next := maps.Clone(counts)
		takeTiles(next, tile, 3)
		for _, rest := range partition(next) {
			group := Group{Tiles: []Tile{tile, tile, tile}}
			results = append(results, append([]Group{group}, rest...))
		}
	}

	if tile.IsSuit() && tile.Point() <= 6 {
		t2 := MakeTile(tile.Color(), tile.Point()+1)
		t3 := MakeTile(tile.Color(), tile.Point()+2)
		if counts[t2] > 0 && counts[t3] > 0 {
			next := maps.Clone(counts)
			takeTiles(next, tile, 1)
			takeTiles(next, t2, 1)
			takeTiles(next, t3, 1)
			for _, rest := range partition(next) {
				group := Group{Tiles: []Tile{tile, t2, t3}}
				results = append(results, append([]Group{group}, rest...))
			}
		}
	}
	return results
}

// classifyWait 定位和牌张完成的是哪一组并分类待ち.
// 雀头优先于面子, 与参考实现一致.
func classifyWait(groups []Group, pair, win Tile) (EWait, bool) {
	if pair == win {
		return WaitTanki, true
	}
	for i := range groups {
		g := &groups[i]
		if !g.Contains(win) {
			continue
		}
		if g.IsTriplet() {
			return WaitShanpon, true
		}
		if g.Tiles[1] == win {
			return WaitKanchan, true
		}
		low, high := g.Tiles[0], g.Tiles[2]
		if (low.Point() == 0 && win == high) || (low.Point() == 6 && win == low) {
			return WaitPenchan, true
		}
		return WaitRyanmen, true
	}
	// 和牌张必须落在门前部分
	return WaitNone, false
}

func takeTiles(counts map[Tile]int, tile Tile, n int) {
	counts[tile] -= n
	if counts[tile] <= 0 {
		delete(counts, tile)
	}
}

func minTile(counts map[Tile]int) Tile {
	res := TileInf
	for t := range counts {
		if t < res {
			res = t
		}
	}
	return res
}

func sortedTiles(counts map[Tile]int) []Tile {
	keys := make([]Tile, 0, len(counts))
	for t := range counts {
		keys = append(keys, t)
	}
	slices.Sort(keys)
	return keys
}
