package mahjong_test

import (
	"errors"
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

func TestCalculatePinfuTsumo(t *testing.T) {
	hand := mustHand(t,
		[]string{"2m", "3m", "4m", "5m", "6m", "7m", "3p", "4p", "5p", "2s", "2s", "5s", "6s", "7s"},
		nil, "7s")
	ctx := defaultContext()
	ctx.IsTsumo = true

	result, err := mahjong.Calculate(hand, ctx)
	if err != nil {
		t.Fatal(err)
	}
	// 平和+断幺+自摸 = 3番20符
	if result.Han != 3 || result.Fu != 20 {
		t.Errorf("got %d han %d fu, want 3 han 20 fu", result.Han, result.Fu)
	}
	if result.Name != "3 Han 20 Fu" {
		t.Errorf("name = %q", result.Name)
	}
	// 基本点160: 闲家自摸 700/400
	p := result.Payment
	if p.Dealer != 700 || p.Others != 400 || p.Total != 1500 {
		t.Errorf("payment = %+v, want 700/400 total 1500", p)
	}

	ctx.IsDealer = true
	result, err = mahjong.Calculate(hand, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if result.Payment.Others != 700 || result.Payment.Total != 2100 {
		t.Errorf("dealer payment = %+v, want 700 all total 2100", result.Payment)
	}
}

func TestCalculateRiichiKanchanRon(t *testing.T) {
	hand := mustHand(t,
		[]string{"2m", "3m", "4m", "6m", "7m", "8m", "2p", "2p", "3p", "4p", "5p", "5s", "6s", "7s"},
		nil, "6s")
	ctx := defaultContext()
	ctx.IsRiichi = true

	result, err := mahjong.Calculate(hand, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if result.Han != 1 || result.Fu != 40 {
		t.Errorf("got %d han %d fu, want 1 han 40 fu", result.Han, result.Fu)
	}
	if result.Payment.Total != 1300 {
		t.Errorf("total = %d, want 1300", result.Payment.Total)
	}
}

func TestCalculateChiitoiRon(t *testing.T) {
	hand := mustHand(t,
		[]string{"1m", "1m", "3m", "3m", "5p", "5p", "7p", "7p", "9s", "9s", "1z", "1z", "7z", "7z"},
		nil, "7z")
	result, err := mahjong.Calculate(hand, defaultContext())
	if err != nil {
		t.Fatal(err)
	}
	if result.Han != 2 || result.Fu != 25 {
		t.Errorf("got %d han %d fu, want 2 han 25 fu", result.Han, result.Fu)
	}
	// 基本点400, 闲家荣和1600
	if result.Payment.Total != 1600 {
		t.Errorf("total = %d, want 1600", result.Payment.Total)
	}
}

func TestCalculateMangan(t *testing.T) {
	hand := mustHand(t,
		[]string{"2m", "3m", "4m", "5m", "6m", "7m", "3p", "4p", "5p", "2s", "2s", "5s", "6s", "7s"},
		nil, "7s")
	ctx := defaultContext()
	ctx.IsTsumo = true
	ctx.IsRiichi = true
	ctx.IsIppatsu = true

	result, err := mahjong.Calculate(hand, ctx)
	if err != nil {
		t.Fatal(err)
	}
	// 立直+一发+自摸+平和+断幺 = 5番
	if result.Han != 5 || result.Name != "Mangan" {
		t.Errorf("got %d han %q, want 5 han Mangan", result.Han, result.Name)
	}
	if result.Payment.Dealer != 4000 || result.Payment.Others != 2000 || result.Payment.Total != 8000 {
		t.Errorf("payment = %+v, want 4000/2000 total 8000", result.Payment)
	}
}

func TestCalculateHanemanWithDora(t *testing.T) {
	hand := mustHand(t,
		[]string{"2m", "3m", "4m", "5mr", "6m", "7m", "3p", "3p", "5p", "6p", "7p", "4s", "5s", "6s"},
		nil, "7m")
	ctx := defaultContext()
	ctx.IsTsumo = true
	ctx.DoraIndicators = mustTiles(t, []string{"2p"}) // 宝牌3p两张

	result, err := mahjong.Calculate(hand, ctx)
	if err != nil {
		t.Fatal(err)
	}
	// 自摸+平和+断幺 = 3番, 表宝2+赤1 = 6番跳满
	if result.Han != 6 || result.Name != "Haneman" {
		t.Errorf("got %d han %q, want 6 han Haneman", result.Han, result.Name)
	}
	if result.Payment.Total != 12000 {
		t.Errorf("total = %d, want 12000", result.Payment.Total)
	}
}

func TestCalculateKazoeYakuman(t *testing.T) {
	hand := mustHand(t,
		[]string{"1m", "2m", "2m", "3m", "3m", "4m", "4m", "5m", "6m", "7m", "8m", "9m", "9m", "9m"},
		nil, "9m")
	ctx := defaultContext()
	ctx.IsRiichi = true
	ctx.IsIppatsu = true
	ctx.DoraIndicators = mustTiles(t, []string{"1m"}) // 宝牌2m两张
	ctx.UraIndicators = mustTiles(t, []string{"8m"})  // 里宝9m三张

	result, err := mahjong.Calculate(hand, ctx)
	if err != nil {
		t.Fatal(err)
	}
	// 立直1+一发1+清一色6+宝2+里3 = 13番
	if result.Han != 13 || result.Name != "Kazoe Yakuman" {
		t.Errorf("got %d han %q, want 13 han Kazoe Yakuman", result.Han, result.Name)
	}
	if result.Payment.Total != 32000 {
		t.Errorf("total = %d, want 32000", result.Payment.Total)
	}
}

func TestCalculateKokushi(t *testing.T) {
	hand := mustHand(t,
		[]string{"1m", "9m", "1p", "9p", "1s", "9s", "1z", "2z", "3z", "4z", "5z", "6z", "7z", "1m"},
		nil, "1m")
	ctx := defaultContext()
	ctx.IsDealer = true

	result, err := mahjong.Calculate(hand, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if result.Name != "Yakuman" || result.Fu != 0 {
		t.Errorf("got %q fu %d, want Yakuman fu 0", result.Name, result.Fu)
	}
	if result.Payment.Total != 48000 {
		t.Errorf("dealer total = %d, want 48000", result.Payment.Total)
	}
	if len(result.Yaku) != 1 || result.Yaku[0].Yaku != mahjong.YakuKokushi {
		t.Errorf("yaku = %v", result.Yaku)
	}
}

// 役满时宝牌不追加
func TestYakumanIgnoresDora(t *testing.T) {
	hand := mustHand(t,
		[]string{"1m", "9m", "1p", "9p", "1s", "9s", "1z", "2z", "3z", "4z", "5z", "6z", "7z", "1m"},
		nil, "1m")
	ctx := defaultContext()
	ctx.DoraIndicators = mustTiles(t, []string{"9p", "9p"})

	result, err := mahjong.Calculate(hand, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if result.Han != 13 {
		t.Errorf("han = %d, want 13", result.Han)
	}
	if result.Payment.Total != 32000 {
		t.Errorf("total = %d, want 32000", result.Payment.Total)
	}
}

// 多种分解取得点最高者: 三暗刻50符胜过平和一杯口30符
func TestCalculateHighestValue(t *testing.T) {
	hand := mustHand(t,
		[]string{"1m", "1m", "1m", "2m", "2m", "2m", "3m", "3m", "3m", "4m", "4m", "5p", "6p", "7p"},
		nil, "4m")
	result, err := mahjong.Calculate(hand, defaultContext())
	if err != nil {
		t.Fatal(err)
	}
	if result.Han != 2 || result.Fu != 50 {
		t.Errorf("got %d han %d fu, want 2 han 50 fu", result.Han, result.Fu)
	}
	if result.Payment.Total != 3200 {
		t.Errorf("total = %d, want 3200", result.Payment.Total)
	}
	if len(result.Yaku) != 1 || result.Yaku[0].Yaku != mahjong.YakuSanankou {
		t.Errorf("yaku = %v", result.Yaku)
	}
}

// 三杠子2番, 杠符走全表: 幺九暗杠32+明杠8+补杠8
func TestCalculateSankantsu(t *testing.T) {
	melds := []*mahjong.Meld{
		mustMeld(t, "ankan", "1m", "1m", "1m", "1m"),
		mustMeld(t, "minkan", "5p", "5p", "5p", "5p"),
		mustMeld(t, "kakan", "3s", "3s", "3s", "3s"),
	}
	hand := mustHand(t, []string{"4m", "5m", "6m", "8p", "8p"}, melds, "6m")
	result, err := mahjong.Calculate(hand, defaultContext())
	if err != nil {
		t.Fatal(err)
	}
	// 20+32+8+8 = 68, 进位到70
	if result.Han != 2 || result.Fu != 70 {
		t.Errorf("got %d han %d fu, want 2 han 70 fu", result.Han, result.Fu)
	}
	if len(result.Yaku) != 1 || result.Yaku[0].Yaku != mahjong.YakuSankantsu {
		t.Errorf("yaku = %v", result.Yaku)
	}
	// 基本点1120, 闲家荣和4500
	if result.Payment.Total != 4500 {
		t.Errorf("total = %d, want 4500", result.Payment.Total)
	}
}

func TestCalculateNotWinning(t *testing.T) {
	hand := mustHand(t,
		[]string{"1m", "2m", "4m", "5m", "7m", "8m", "1p", "2p", "4p", "1s", "2s", "1z", "2z", "3z"},
		nil, "3z")
	if _, err := mahjong.Calculate(hand, defaultContext()); !errors.Is(err, mahjong.ErrNotWinningHand) {
		t.Errorf("err = %v, want ErrNotWinningHand", err)
	}
}

// 无役不和, 宝牌救不了
func TestCalculateNoYaku(t *testing.T) {
	melds := []*mahjong.Meld{mustMeld(t, "chi", "2m", "3m", "4m")}
	hand := mustHand(t,
		[]string{"3p", "4p", "5p", "6p", "7p", "8p", "6s", "7s", "8s", "9s", "9s"},
		melds, "8s")
	ctx := defaultContext()
	ctx.DoraIndicators = mustTiles(t, []string{"2p"})
	if _, err := mahjong.Calculate(hand, ctx); !errors.Is(err, mahjong.ErrNoYaku) {
		t.Errorf("err = %v, want ErrNoYaku", err)
	}
}

func TestHandValidation(t *testing.T) {
	tests := []struct {
		name  string
		tiles []string
		win   string
	}{
		{
			"too few tiles",
			[]string{"1m", "2m", "3m", "4m", "5m", "6m", "7m", "8m", "9m", "1p", "1p"},
			"1p",
		},
		{
			"five copies",
			[]string{"1m", "1m", "1m", "1m", "1m", "4m", "5m", "6m", "7p", "8p", "9p", "4s", "5s", "6s"},
			"1m",
		},
		{
			"win tile missing",
			[]string{"2m", "3m", "4m", "5m", "6m", "7m", "3p", "4p", "5p", "2s", "2s", "5s", "6s", "7s"},
			"9s",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			winTile, err := mahjong.ParseTile(tt.win)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := mahjong.NewHand(mustTiles(t, tt.tiles), nil, winTile); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

// 重复算点结果一致, 手牌不被改动
func TestCalculateIdempotent(t *testing.T) {
	hand := mustHand(t,
		[]string{"2m", "3m", "4m", "6m", "7m", "8m", "2p", "2p", "3p", "4p", "5p", "5s", "6s", "7s"},
		nil, "6s")
	ctx := defaultContext()
	ctx.IsRiichi = true

	first, err := mahjong.Calculate(hand, ctx)
	if err != nil {
		t.Fatal(err)
	}
	second, err := mahjong.Calculate(hand, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if first.Han != second.Han || first.Fu != second.Fu || first.Payment.Total != second.Payment.Total {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
}
