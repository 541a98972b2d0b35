package mahjong_test

import (
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

func mustTiles(t *testing.T, names []string) []mahjong.Tile {
	t.Helper()
	tiles, err := mahjong.ParseTiles(names)
	if err != nil {
		t.Fatal(err)
	}
	return tiles
}

func mustMeld(t *testing.T, kind string, names ...string) *mahjong.Meld {
	t.Helper()
	k, err := mahjong.ParseMeldKind(kind)
	if err != nil {
		t.Fatal(err)
	}
	meld, err := mahjong.NewMeld(k, mustTiles(t, names))
	if err != nil {
		t.Fatal(err)
	}
	return meld
}

func mustHand(t *testing.T, tiles []string, melds []*mahjong.Meld, win string) *mahjong.Hand {
	t.Helper()
	winTile, err := mahjong.ParseTile(win)
	if err != nil {
		t.Fatal(err)
	}
	hand, err := mahjong.NewHand(mustTiles(t, tiles), melds, winTile)
	if err != nil {
		t.Fatal(err)
	}
	return hand
}

func TestDecomposeNormal(t *testing.T) {
	hand := mustHand(t,
		[]string{"2m", "3m", "4m", "6m", "7m", "8m", "2p", "2p", "3p", "4p", "5p", "5s", "6s", "7s"},
		nil, "6s")
	decos := mahjong.Decompose(hand)
	if len(decos) != 1 {
		t.Fatalf("got %d decompositions, want 1", len(decos))
	}
	d := decos[0]
	if d.Kind != mahjong.HandNormal || len(d.Groups) != 4 {
		t.Fatalf("unexpected decomposition %+v", d)
	}
	if d.Pair.Name() != "2p" {
		t.Errorf("pair = %s, want 2p", d.Pair.Name())
	}
	if d.Wait != mahjong.WaitKanchan {
		t.Errorf("wait = %v, want kanchan", d.Wait)
	}
}

// 111222333m44m既可读作三刻子+44雀头, 也可读作三个123+44,
// 还可读作11雀头+123+234+234. 全部分解都要给出.
func TestDecomposeMultiple(t *testing.T) {
	hand := mustHand(t,
		[]string{"1m", "1m", "1m", "2m", "2m", "2m", "3m", "3m", "3m", "4m", "4m", "5p", "6p", "7p"},
		nil, "4m")
	decos := mahjong.Decompose(hand)
	if len(decos) != 3 {
		t.Fatalf("got %d decompositions, want 3", len(decos))
	}
	waits := make(map[mahjong.EWait]int)
	for _, d := range decos {
		waits[d.Wait]++
	}
	if waits[mahjong.WaitTanki] != 2 || waits[mahjong.WaitRyanmen] != 1 {
		t.Errorf("unexpected waits %v", waits)
	}
}

func TestDecomposeWaits(t *testing.T) {
	tests := []struct {
		name  string
		tiles []string
		win   string
		wait  mahjong.EWait
	}{
		{
			"ryanmen",
			[]string{"2m", "3m", "4m", "5m", "6m", "7m", "3p", "4p", "5p", "5s", "6s", "7s", "8s", "8s"},
			"7s", mahjong.WaitRyanmen,
		},
		{
			"penchan low",
			[]string{"1m", "2m", "3m", "4p", "5p", "6p", "7s", "8s", "9s", "1z", "1z", "1z", "2z", "2z"},
			"3m", mahjong.WaitPenchan,
		},
		{
			"penchan high",
			[]string{"7m", "8m", "9m", "4p", "5p", "6p", "1s", "2s", "3s", "1z", "1z", "1z", "2z", "2z"},
			"7m", mahjong.WaitPenchan,
		},
		{
			"shanpon",
			[]string{"2m", "3m", "4m", "5p", "5p", "5p", "7s", "7s", "3z", "3z", "3z", "4s", "5s", "6s"},
			"5p", mahjong.WaitShanpon,
		},
		{
			"tanki",
			[]string{"2m", "3m", "4m", "5p", "6p", "7p", "4s", "5s", "6s", "3z", "3z", "3z", "6z", "6z"},
			"6z", mahjong.WaitTanki,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := mustHand(t, tt.tiles, nil, tt.win)
			decos := mahjong.Decompose(hand)
			if len(decos) == 0 {
				t.Fatal("no decomposition")
			}
			if decos[0].Wait != tt.wait {
				t.Errorf("wait = %v, want %v", decos[0].Wait, tt.wait)
			}
		})
	}
}

func TestDecomposeSevenPairs(t *testing.T) {
	hand := mustHand(t,
		[]string{"1m", "1m", "3m", "3m", "5p", "5p", "7p", "7p", "9s", "9s", "1z", "1z", "7z", "7z"},
		nil, "7z")
	decos := mahjong.Decompose(hand)
	if len(decos) != 1 || decos[0].Kind != mahjong.HandSevenPairs {
		t.Fatalf("unexpected decompositions %+v", decos)
	}
	if len(decos[0].Groups) != 7 || decos[0].Wait != mahjong.WaitTanki {
		t.Errorf("unexpected seven pairs shape %+v", decos[0])
	}
}

// 四张一样的牌不是两个对子
func TestSevenPairsNoDuplicates(t *testing.T) {
	hand := mustHand(t,
		[]string{"1m", "1m", "1m", "1m", "5p", "5p", "7p", "7p", "9s", "9s", "1z", "1z", "7z", "7z"},
		nil, "7z")
	if decos := mahjong.Decompose(hand); len(decos) != 0 {
		t.Fatalf("expected no decomposition, got %d", len(decos))
	}
}

func TestDecomposeThirteenOrphans(t *testing.T) {
	hand := mustHand(t,
		[]string{"1m", "9m", "1p", "9p", "1s", "9s", "1z", "2z", "3z", "4z", "5z", "6z", "7z", "1m"},
		nil, "1m")
	decos := mahjong.Decompose(hand)
	if len(decos) != 1 || decos[0].Kind != mahjong.HandThirteenOrphans {
		t.Fatalf("unexpected decompositions %+v", decos)
	}
}

func TestDecomposeNotWinning(t *testing.T) {
	hand := mustHand(t,
		[]string{"1m", "2m", "4m", "5m", "7m", "8m", "1p", "2p", "4p", "1s", "2s", "1z", "2z", "3z"},
		nil, "3z")
	if decos := mahjong.Decompose(hand); len(decos) != 0 {
		t.Fatalf("expected no decomposition, got %d", len(decos))
	}
}

func TestDecomposeWithMelds(t *testing.T) {
	melds := []*mahjong.Meld{
		mustMeld(t, "pon", "5z", "5z", "5z"),
		mustMeld(t, "chi", "2m", "3m", "4m"),
	}
	hand := mustHand(t,
		[]string{"5p", "6p", "7p", "4s", "5s", "6s", "8s", "8s"},
		melds, "6s")
	decos := mahjong.Decompose(hand)
	if len(decos) != 1 {
		t.Fatalf("got %d decompositions, want 1", len(decos))
	}
	if len(decos[0].Groups) != 4 {
		t.Fatalf("got %d groups, want 4", len(decos[0].Groups))
	}
	open := 0
	for i := range decos[0].Groups {
		if decos[0].Groups[i].IsOpen() {
			open++
		}
	}
	if open != 2 {
		t.Errorf("got %d open groups, want 2", open)
	}
}

// 分解不应改动手牌本身, 重复调用结果一致
func TestDecomposeIdempotent(t *testing.T) {
	hand := mustHand(t,
		[]string{"2m", "3m", "4m", "6m", "7m", "8m", "2p", "2p", "3p", "4p", "5p", "5s", "6s", "7s"},
		nil, "6s")
	before := mahjong.TilesName(hand.Tiles)
	first := len(mahjong.Decompose(hand))
	second := len(mahjong.Decompose(hand))
	if first != second {
		t.Errorf("decomposition count changed: %d then %d", first, second)
	}
	if mahjong.TilesName(hand.Tiles) != before {
		t.Error("hand tiles mutated by decomposition")
	}
}
