package mahjong

import (
	"fmt"
	"slices"
)

// Hand 一副和了牌: 门前牌(含和牌张)+副露+和牌张
type Hand struct {
	Tiles   []Tile // 门前部分, 不含副露
	Melds   []*Meld
	WinTile Tile
}

func NewHand(tiles []Tile, melds []*Meld, winTile Tile) (*Hand, error) {
	h := &Hand{
		Tiles:   slices.Clone(tiles),
		Melds:   melds,
		WinTile: winTile,
	}
	slices.SortFunc(h.Tiles, func(a, b Tile) int { return int(a.SortKey() - b.SortKey()) })

	for _, t := range h.Tiles {
		if !t.IsValid() {
			return nil, fmt.Errorf("invalid tile in hand: %d", t)
		}
	}
	if !winTile.IsValid() {
		return nil, fmt.Errorf("invalid winning tile: %d", winTile)
	}
	if !slices.ContainsFunc(h.Tiles, func(t Tile) bool { return t.Normalize() == winTile.Normalize() }) {
		return nil, fmt.Errorf("winning tile %s not in hand", winTile.Name())
	}

	if got := len(h.Tiles) + 3*len(h.Melds); got != TileCountFull {
		return nil, fmt.Errorf("hand size %d with %d melds is not %d tiles equivalent",
			len(h.Tiles), len(h.Melds), TileCountFull)
	}

	counts := make(map[Tile]int)
	for _, t := range h.AllTiles() {
		counts[t.Normalize()]++
		if counts[t.Normalize()] > SameTileLimit {
			return nil, fmt.Errorf("more than %d copies of %s", SameTileLimit, t.Normalize().Name())
		}
	}
	return h, nil
}

// AllTiles 门前牌加副露牌
func (h *Hand) AllTiles() []Tile {
	all := slices.Clone(h.Tiles)
	for _, m := range h.Melds {
		all = append(all, m.Tiles...)
	}
	return all
}

// IsMenzen 门清: 没有暗杠以外的副露
func (h *Hand) IsMenzen() bool {
	for _, m := range h.Melds {
		if !m.IsConcealed() {
			return false
		}
	}
	return true
}

// CountMap 门前牌的净牌面计数
func (h *Hand) CountMap() map[Tile]int {
	counts := make(map[Tile]int)
	for _, t := range h.Tiles {
		counts[t.Normalize()]++
	}
	return counts
}
