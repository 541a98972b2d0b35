package mahjong

import (
	"fmt"
	"strings"
)

// Tile 编码: color<<8 | point<<4 | flag, flag 1为普通牌, 2为赤五
type Tile int32

const (
	flagPlain = 1
	flagRed   = 2
)

var (
	TileNull  Tile = -1
	TileInf   Tile = MakeTile(ColorEnd, 0)
	TileEast  Tile = MakeTile(ColorWind, 0)   // 东 1z
	TileSouth Tile = MakeTile(ColorWind, 1)   // 南 2z
	TileWest  Tile = MakeTile(ColorWind, 2)   // 西 3z
	TileNorth Tile = MakeTile(ColorWind, 3)   // 北 4z
	TileHaku  Tile = MakeTile(ColorDragon, 0) // 白 5z
	TileHatsu Tile = MakeTile(ColorDragon, 1) // 發 6z
	TileChun  Tile = MakeTile(ColorDragon, 2) // 中 7z
)

var colorToSuit = map[EColor]byte{
	ColorCharacter: 'm',
	ColorDot:       'p',
	ColorBamboo:    's',
}

var suitToColor = map[byte]EColor{
	'm': ColorCharacter,
	'p': ColorDot,
	's': ColorBamboo,
}

func MakeTile(color EColor, point int) Tile {
	return Tile((int(color) << 8) | (point << 4) | flagPlain)
}

func MakeRedTile(color EColor, point int) Tile {
	return Tile((int(color) << 8) | (point << 4) | flagRed)
}

func (t Tile) Color() EColor {
	return EColor((t >> 8) & 0x0F)
}

func (t Tile) Point() int {
	return int((t >> 4) & 0x0F)
}

func (t Tile) Info() (EColor, int) {
	return t.Color(), t.Point()
}

func (t Tile) Flag() int {
	return int(t & 0x0F)
}

func (t Tile) IsValid() bool {
	if t <= 0 || t >= TileInf {
		return false
	}
	c, p := t.Info()
	if c < ColorBegin || c >= ColorEnd {
		return false
	}
	if p < 0 || p >= PointCountByColor[c] {
		return false
	}
	if t.Flag() == flagRed {
		return t.IsSuit() && p == 4 // 赤牌只有赤五
	}
	return t.Flag() == flagPlain
}

func (t Tile) IsRed() bool {
	return t.Flag() == flagRed
}

// Normalize 去掉赤五标记
func (t Tile) Normalize() Tile {
	if t.IsRed() {
		return MakeTile(t.Color(), t.Point())
	}
	return t
}

// SortKey 34种牌面的全序, 赤五与普通五同位
func (t Tile) SortKey() int32 {
	return int32(t.Normalize())
}

func (t Tile) IsSuit() bool { // 数牌
	c := t.Color()
	return c >= ColorCharacter && c <= ColorBamboo
}

func (t Tile) IsHonor() bool { // 字牌
	c := t.Color()
	return c == ColorWind || c == ColorDragon
}

func (t Tile) IsWind() bool {
	return t.Color() == ColorWind
}

func (t Tile) IsDragon() bool { // 箭牌
	return t.Color() == ColorDragon
}

func (t Tile) IsTerminal() bool { // 老头牌
	return t.IsSuit() && (t.Point() == 0 || t.Point() == 8)
}

func (t Tile) IsYaochu() bool { // 幺九牌
	return t.IsTerminal() || t.IsHonor()
}

// NextTile 宝牌指示牌的下一张: 数牌9绕回1, 风牌东南西北循环, 箭牌白發中循环
func (t Tile) NextTile() Tile {
	n := t.Normalize()
	if !n.IsValid() {
		return TileNull
	}
	color := n.Color()
	count := PointCountByColor[color]
	return MakeTile(color, (n.Point()+1)%count)
}

func (t Tile) Name() string {
	c, p := t.Info()
	switch c {
	case ColorCharacter, ColorDot, ColorBamboo:
		if t.IsRed() {
			return fmt.Sprintf("%d%cr", p+1, colorToSuit[c])
		}
		return fmt.Sprintf("%d%c", p+1, colorToSuit[c])
	case ColorWind:
		return fmt.Sprintf("%dz", p+1)
	case ColorDragon:
		return fmt.Sprintf("%dz", p+5)
	default:
		return ""
	}
}

// ParseTile 解析"1m".."9s"、"1z".."7z"形式的牌面, 赤五带r后缀如"5mr"
func ParseTile(name string) (Tile, error) {
	red := false
	if strings.HasSuffix(name, "r") {
		red = true
		name = name[:len(name)-1]
	}
	if len(name) != 2 || name[0] < '1' || name[0] > '9' {
		return TileNull, fmt.Errorf("invalid tile %q", name)
	}
	num := int(name[0] - '1')
	suit := name[1]
	if suit == 'z' {
		if red || num >= 7 {
			return TileNull, fmt.Errorf("invalid tile %q", name)
		}
		if num < 4 {
			return MakeTile(ColorWind, num), nil
		}
		return MakeTile(ColorDragon, num-4), nil
	}
	color, ok := suitToColor[suit]
	if !ok {
		return TileNull, fmt.Errorf("invalid tile %q", name)
	}
	if red {
		if num != 4 {
			return TileNull, fmt.Errorf("invalid tile %q", name)
		}
		return MakeRedTile(color, num), nil
	}
	return MakeTile(color, num), nil
}

func ParseTiles(names []string) ([]Tile, error) {
	tiles := make([]Tile, len(names))
	for i, name := range names {
		t, err := ParseTile(name)
		if err != nil {
			return nil, err
		}
		tiles[i] = t
	}
	return tiles, nil
}

func TilesName(tiles []Tile) string {
	names := make([]string, len(tiles))
	for i, t := range tiles {
		names[i] = t.Name()
	}
	return strings.Join(names, ",")
}

func MakeTiles(t Tile, count int) []Tile {
	res := make([]Tile, count)
	for i := range res {
		res[i] = t
	}
	return res
}

// YaochuTiles 十三幺的13种牌面
func YaochuTiles() []Tile {
	return []Tile{
		MakeTile(ColorCharacter, 0), MakeTile(ColorCharacter, 8),
		MakeTile(ColorDot, 0), MakeTile(ColorDot, 8),
		MakeTile(ColorBamboo, 0), MakeTile(ColorBamboo, 8),
		TileEast, TileSouth, TileWest, TileNorth,
		TileHaku, TileHatsu, TileChun,
	}
}
