package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var ErrNoTilesDetected = errors.New("no tiles detected")

// Recognizer 外部牌面识别服务的客户端
type Recognizer struct {
	baseURL string
	client  *http.Client
}

func NewRecognizer(baseURL string, timeout time.Duration) *Recognizer {
	return &Recognizer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Recognize 按图片地址识别牌面, 返回"1m"格式的牌名列表
func (r *Recognizer) Recognize(ctx context.Context, imageURL string) ([]string, error) {
	body, err := json.Marshal(map[string]string{"image_url": imageURL})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/recognize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recognizer returned %s", resp.Status)
	}

	var result struct {
		Tiles []string `json:"tiles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if len(result.Tiles) == 0 {
		return nil, ErrNoTilesDetected
	}
	return result.Tiles, nil
}
