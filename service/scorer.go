package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/kevin-chtw/tw_riichi/utils"
)

// Scorer 算点HTTP层
type Scorer struct {
	logger     *logrus.Logger
	recognizer *Recognizer
	rule       mahjong.Rule
}

func NewScorer(logger *logrus.Logger, recognizer *Recognizer, rule mahjong.Rule) *Scorer {
	return &Scorer{logger: logger, recognizer: recognizer, rule: rule}
}

func (s *Scorer) Register(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/api/calculate", s.Calculate)
}

type meldReq struct {
	Type  string   `json:"type" binding:"required"`
	Tiles []string `json:"tiles" binding:"required"`
}

type calculateReq struct {
	Hand     []string  `json:"hand"`
	ImageURL string    `json:"image_url"`
	Melds    []meldReq `json:"melds"`
	WinTile  string    `json:"win_tile" binding:"required"`

	IsTsumo        bool   `json:"is_tsumo"`
	IsDealer       bool   `json:"is_dealer"`
	RoundWind      string `json:"round_wind"`
	SeatWind       string `json:"seat_wind"`
	IsRiichi       bool   `json:"is_riichi"`
	IsDoubleRiichi bool   `json:"is_double_riichi"`
	IsIppatsu      bool   `json:"is_ippatsu"`
	IsRinshan      bool   `json:"is_rinshan"`
	IsHaitei       bool   `json:"is_haitei"`
	IsChankan      bool   `json:"is_chankan"`

	DoraIndicators []string `json:"dora_indicators"`
	UraIndicators  []string `json:"ura_dora_indicators"`
}

type yakuResp struct {
	Name string `json:"name"`
	Han  int32  `json:"han"`
}

type paymentResp struct {
	Total  int32 `json:"total"`
	Dealer int32 `json:"dealer,omitempty"`
	Others int32 `json:"others,omitempty"`
}

type calculateResp struct {
	Hand      []string    `json:"hand"`
	Yaku      []yakuResp  `json:"yaku"`
	Han       int32       `json:"han"`
	Fu        int32       `json:"fu"`
	ScoreName string      `json:"score_name"`
	Score     int32       `json:"score"`
	Payments  paymentResp `json:"payments"`
}

func (s *Scorer) Calculate(c *gin.Context) {
	var req calculateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	if len(req.Hand) == 0 && req.ImageURL != "" {
		tiles, err := s.recognizer.Recognize(c.Request.Context(), req.ImageURL)
		if err != nil {
			if errors.Is(err, ErrNoTilesDetected) {
				fail(c, http.StatusBadRequest, "no tiles detected in image")
				return
			}
			s.logger.Errorf("recognizer call failed: %v", err)
			fail(c, http.StatusBadGateway, "tile recognition unavailable")
			return
		}
		req.Hand = tiles
	}

	hand, ctx, err := s.buildInput(&req)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := mahjong.Calculate(hand, ctx)
	if err != nil {
		// 非和牌/无役是干净的业务结果, 不是服务故障
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": calculateResp{
			Hand:      utils.Map(hand.Tiles, mahjong.Tile.Name),
			Yaku:      utils.Map(result.Yaku, toYakuResp),
			Han:       result.Han,
			Fu:        result.Fu,
			ScoreName: result.Name,
			Score:     result.Payment.Total,
			Payments: paymentResp{
				Total:  result.Payment.Total,
				Dealer: result.Payment.Dealer,
				Others: result.Payment.Others,
			},
		},
	})
}

func (s *Scorer) buildInput(req *calculateReq) (*mahjong.Hand, *mahjong.Context, error) {
	tiles, err := parseTiles(req.Hand, "hand")
	if err != nil {
		return nil, nil, err
	}

	melds := make([]*mahjong.Meld, 0, len(req.Melds))
	for i, m := range req.Melds {
		kind, err := mahjong.ParseMeldKind(m.Type)
		if err != nil {
			return nil, nil, fmt.Errorf("melds[%d]: %v", i, err)
		}
		meldTiles, err := parseTiles(m.Tiles, fmt.Sprintf("melds[%d]", i))
		if err != nil {
			return nil, nil, err
		}
		meld, err := mahjong.NewMeld(kind, meldTiles)
		if err != nil {
			return nil, nil, fmt.Errorf("melds[%d]: %v", i, err)
		}
		melds = append(melds, meld)
	}

	winTile, err := mahjong.ParseTile(req.WinTile)
	if err != nil {
		return nil, nil, fmt.Errorf("win_tile: %v", err)
	}
	hand, err := mahjong.NewHand(tiles, melds, winTile)
	if err != nil {
		return nil, nil, err
	}

	roundWind, seatWind := mahjong.TileEast, mahjong.TileEast
	if req.RoundWind != "" {
		if roundWind, err = mahjong.ParseTile(req.RoundWind); err != nil {
			return nil, nil, fmt.Errorf("round_wind: %v", err)
		}
	}
	if req.SeatWind != "" {
		if seatWind, err = mahjong.ParseTile(req.SeatWind); err != nil {
			return nil, nil, fmt.Errorf("seat_wind: %v", err)
		}
	}
	if !roundWind.IsWind() || !seatWind.IsWind() {
		return nil, nil, errors.New("round_wind and seat_wind must be wind tiles")
	}

	dora, err := parseTiles(req.DoraIndicators, "dora_indicators")
	if err != nil {
		return nil, nil, err
	}
	ura, err := parseTiles(req.UraIndicators, "ura_dora_indicators")
	if err != nil {
		return nil, nil, err
	}

	ctx := &mahjong.Context{
		IsTsumo:        req.IsTsumo,
		IsDealer:       req.IsDealer,
		RoundWind:      roundWind,
		SeatWind:       seatWind,
		IsRiichi:       req.IsRiichi,
		IsDoubleRiichi: req.IsDoubleRiichi,
		IsIppatsu:      req.IsIppatsu,
		IsRinshan:      req.IsRinshan,
		IsHaitei:       req.IsHaitei,
		IsChankan:      req.IsChankan,
		DoraIndicators: dora,
		UraIndicators:  ura,
		Rule:           s.rule,
	}
	return hand, ctx, nil
}

func parseTiles(names []string, field string) ([]mahjong.Tile, error) {
	tiles, err := mahjong.ParseTiles(names)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", field, err)
	}
	return tiles, nil
}

func toYakuResp(y mahjong.YakuHan) yakuResp {
	return yakuResp{Name: y.Yaku.String(), Han: y.Han}
}

func fail(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"status": "error", "message": msg})
}
