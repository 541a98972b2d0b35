package mahjong

import (
	"fmt"
	"slices"
)

type MeldKind int

const (
	MeldNone   MeldKind = iota
	MeldChi             // 吃
	MeldPon             // 碰
	MeldMinkan          // 明杠
	MeldAnkan           // 暗杠
	MeldKakan           // 补杠
)

var meldKindNames = map[MeldKind]string{
	MeldChi:    "chi",
	MeldPon:    "pon",
	MeldMinkan: "minkan",
	MeldAnkan:  "ankan",
	MeldKakan:  "kakan",
}

var meldKindIDs = map[string]MeldKind{
	"chi":    MeldChi,
	"pon":    MeldPon,
	"minkan": MeldMinkan,
	"ankan":  MeldAnkan,
	"kakan":  MeldKakan,
}

func (k MeldKind) String() string {
	return meldKindNames[k]
}

func ParseMeldKind(name string) (MeldKind, error) {
	if k, ok := meldKindIDs[name]; ok {
		return k, nil
	}
	return MeldNone, fmt.Errorf("invalid meld kind %q", name)
}

// Meld 副露面子, 牌按SortKey预排序
type Meld struct {
	Kind  MeldKind
	Tiles []Tile
}

func NewMeld(kind MeldKind, tiles []Tile) (*Meld, error) {
	m := &Meld{Kind: kind, Tiles: slices.Clone(tiles)}
	slices.SortFunc(m.Tiles, func(a, b Tile) int { return int(a.SortKey() - b.SortKey()) })

	for _, t := range m.Tiles {
		if !t.IsValid() {
			return nil, fmt.Errorf("invalid tile in meld: %d", t)
		}
	}

	switch kind {
	case MeldChi:
		if len(m.Tiles) != 3 {
			return nil, fmt.Errorf("chi needs 3 tiles, got %d", len(m.Tiles))
		}
		t0 := m.Tiles[0].Normalize()
		if !t0.IsSuit() || t0.Point() > 6 {
			return nil, fmt.Errorf("invalid chi %s", TilesName(m.Tiles))
		}
		for i := 1; i < 3; i++ {
			if m.Tiles[i].Normalize() != MakeTile(t0.Color(), t0.Point()+i) {
				return nil, fmt.Errorf("invalid chi %s", TilesName(m.Tiles))
			}
		}
	case MeldPon, MeldMinkan, MeldAnkan, MeldKakan:
		want := 3
		if kind != MeldPon {
			want = 4
		}
		if len(m.Tiles) != want {
			return nil, fmt.Errorf("%s needs %d tiles, got %d", kind, want, len(m.Tiles))
		}
		face := m.Tiles[0].Normalize()
		for _, t := range m.Tiles[1:] {
			if t.Normalize() != face {
				return nil, fmt.Errorf("invalid %s %s", kind, TilesName(m.Tiles))
			}
		}
	default:
		return nil, fmt.Errorf("invalid meld kind %d", kind)
	}
	return m, nil
}

func (m *Meld) IsSequence() bool {
	return m.Kind == MeldChi
}

func (m *Meld) IsTriplet() bool {
	return m.Kind != MeldChi
}

func (m *Meld) IsQuad() bool {
	return m.Kind == MeldMinkan || m.Kind == MeldAnkan || m.Kind == MeldKakan
}

// IsConcealed 只有暗杠不破门清
func (m *Meld) IsConcealed() bool {
	return m.Kind == MeldAnkan
}

// Fu 副露本身的符: 吃0, 碰2, 明杠/补杠8, 暗杠16, 幺九牌翻倍
func (m *Meld) Fu() int32 {
	if m.IsSequence() {
		return 0
	}
	var fu int32
	switch m.Kind {
	case MeldPon:
		fu = 2
	case MeldMinkan, MeldKakan:
		fu = 8
	case MeldAnkan:
		fu = 16
	}
	if m.Tiles[0].IsYaochu() {
		fu *= 2
	}
	return fu
}
