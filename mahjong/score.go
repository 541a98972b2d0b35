package mahjong

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNotWinningHand = errors.New("not a winning hand")
	ErrNoYaku         = errors.New("no yaku")
)

const baseYakuman int32 = 8000

// YakuHan 一个役及其番数
type YakuHan struct {
	Yaku Yaku
	Han  int32
}

// Payment 支付明细. 荣和只有Total, 自摸按庄闲拆分.
type Payment struct {
	Total  int32
	Dealer int32 // 闲家自摸时庄家支付
	Others int32 // 自摸时闲家各付
}

// Result 一次和牌的最终算点结果
type Result struct {
	Han     int32
	Fu      int32
	Yaku    []YakuHan
	Name    string // 得点档位名
	Payment Payment
}

// Calculate 对手牌算点. 取所有分解中得点最高的一种;
// 同点取番多者, 再同取符多者.
func Calculate(h *Hand, ctx *Context) (*Result, error) {
	decos := Decompose(h)
	if len(decos) == 0 {
		return nil, ErrNotWinningHand
	}

	var best *Result
	for _, d := range decos {
		r := resolve(h, d, ctx)
		if r == nil {
			continue
		}
		if best == nil || betterResult(r, best) {
			best = r
		}
	}
	if best == nil {
		return nil, ErrNoYaku
	}
	return best, nil
}

func resolve(h *Hand, d *Decomposition, ctx *Context) *Result {
	found := JudgeYaku(h, d, ctx)
	if len(found) == 0 {
		return nil
	}

	yakuman := false
	var han int32
	for y, v := range found {
		if y.IsYakuman() {
			yakuman = true
		}
		han += v
	}

	res := &Result{Yaku: sortedYaku(found)}
	if yakuman {
		res.Han = han
		res.Name = "Yakuman"
		res.Payment = payments(baseYakuman, ctx)
		return res
	}

	// 宝牌只在有役时追加
	dora := CountDora(h, ctx)
	if dora.Dora > 0 {
		res.Yaku = append(res.Yaku, YakuHan{YakuDora, dora.Dora})
	}
	if dora.Aka > 0 {
		res.Yaku = append(res.Yaku, YakuHan{YakuAkaDora, dora.Aka})
	}
	if dora.Ura > 0 {
		res.Yaku = append(res.Yaku, YakuHan{YakuUraDora, dora.Ura})
	}
	han += dora.Total()

	fu := CalcFu(h, d, ctx, found)
	base, name := basePoints(han, fu)
	res.Han = han
	res.Fu = fu
	res.Name = name
	res.Payment = payments(base, ctx)
	return res
}

// basePoints 番符到基本点的档位表
func basePoints(han, fu int32) (int32, string) {
	switch {
	case han >= 13:
		return baseYakuman, "Kazoe Yakuman"
	case han >= 11:
		return 6000, "Sanbaiman"
	case han >= 8:
		return 4000, "Baiman"
	case han >= 6:
		return 3000, "Haneman"
	case han >= 5 || (han == 4 && fu >= 40) || (han == 3 && fu >= 70):
		return 2000, "Mangan"
	}
	base := fu << (2 + han)
	if base > 2000 {
		base = 2000
	}
	return base, fmt.Sprintf("%d Han %d Fu", han, fu)
}

func payments(base int32, ctx *Context) Payment {
	if !ctx.IsTsumo {
		if ctx.IsDealer {
			return Payment{Total: roundUp100(base * 6)}
		}
		return Payment{Total: roundUp100(base * 4)}
	}
	if ctx.IsDealer {
		each := roundUp100(base * 2)
		return Payment{Total: each * 3, Others: each}
	}
	dealer := roundUp100(base * 2)
	others := roundUp100(base)
	return Payment{Total: dealer + others*2, Dealer: dealer, Others: others}
}

func roundUp100(points int32) int32 {
	return (points + 99) / 100 * 100
}

func sortedYaku(found map[Yaku]int32) []YakuHan {
	res := make([]YakuHan, 0, len(found))
	for y, v := range found {
		res = append(res, YakuHan{y, v})
	}
	slices.SortFunc(res, func(a, b YakuHan) int { return int(a.Yaku - b.Yaku) })
	return res
}

// 同点保留先找到的分解
func betterResult(a, b *Result) bool {
	return a.Payment.Total > b.Payment.Total
}
