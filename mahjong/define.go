package mahjong

// 手牌形状类型
type EHandKind int

const (
	HandNormal          EHandKind = iota // 四面子一雀头
	HandSevenPairs                       // 七对子
	HandThirteenOrphans                  // 国士无双
)

// 听牌/待ち形状
type EWait int

const (
	WaitNone    EWait = iota
	WaitRyanmen       // 两面
	WaitKanchan       // 嵌张
	WaitPenchan       // 边张
	WaitShanpon       // 双碰
	WaitTanki         // 单骑
)

type EColor int

const (
	ColorUndefined EColor = -1
	ColorCharacter EColor = iota - 1 // 万 m
	ColorDot                         // 筒 p
	ColorBamboo                      // 索 s
	ColorWind                        // 风牌
	ColorDragon                      // 箭牌
	ColorEnd
	ColorBegin = ColorCharacter
)

var PointCountByColor = [ColorEnd]int{9, 9, 9, 4, 3}

const (
	TileCountFull  = 14 // 和牌时的等效张数
	GroupCount     = 4  // 面子数
	SameTileLimit  = 4  // 同一张牌的上限
	SevenPairCount = 7
)
