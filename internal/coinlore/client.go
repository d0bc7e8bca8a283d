// Package coinlore - клиент публичного тикер-API CoinLore.
package coinlore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"resty.dev/v3"

	"github.com/kitbuilder587/crypto-price-bot/internal/domain"
	"github.com/kitbuilder587/crypto-price-bot/internal/metrics"
)

const (
	DefaultBaseURL = "https://api.coinlore.net/api"
	DefaultLimit   = 10

	endpointTickers = "tickers"
	endpointTicker  = "ticker"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrMalformedPayload = errors.New("malformed payload")
	ErrEmptyID          = errors.New("empty asset id")
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	http    *resty.Client
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func New(cfg Config, logger *zap.Logger, m *metrics.Metrics) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	// ретраев нет: один запрос пользователя - один поход в API
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:    client,
		logger:  logger,
		metrics: m,
	}
}

type tickersResponse struct {
	Data *[]ticker `json:"data"`
}

// TopTickers возвращает первые limit записей в порядке источника
func (c *Client) TopTickers(ctx context.Context, limit int) ([]domain.AssetRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var result tickersResponse
	start := time.Now()

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"start": "0",
			"limit": strconv.Itoa(limit),
		}).
		SetResult(&result).
		Get("/tickers/")

	if err := c.check(endpointTickers, resp, err, start); err != nil {
		return nil, err
	}

	if result.Data == nil {
		return nil, fmt.Errorf("%w: missing data field", ErrMalformedPayload)
	}

	tickers := *result.Data
	if len(tickers) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrMalformedPayload)
	}
	if len(tickers) > limit {
		tickers = tickers[:limit]
	}

	records := make([]domain.AssetRecord, 0, len(tickers))
	for _, t := range tickers {
		rec := t.record()
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// Ticker возвращает одну запись. Пустой массив в ответе - ErrAssetNotFound.
func (c *Client) Ticker(ctx context.Context, id string) (*domain.AssetRecord, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	var result []ticker
	start := time.Now()

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("id", id).
		SetResult(&result).
		Get("/ticker/")

	if err := c.check(endpointTicker, resp, err, start); err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, id)
	}

	rec := result[0].record()
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	return &rec, nil
}

func (c *Client) check(endpoint string, resp *resty.Response, err error, start time.Time) error {
	elapsed := time.Since(start)

	if err != nil {
		c.metrics.RecordUpstreamRequest(endpoint, "error", elapsed)
		// resty отдает ошибку разбора JSON тем же путем, что и сетевую
		if resp != nil && resp.IsSuccess() {
			return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		return fmt.Errorf("coinlore %s: %w", endpoint, err)
	}

	c.metrics.RecordUpstreamRequest(endpoint, strconv.Itoa(resp.StatusCode()), elapsed)
	c.logger.Debug("coinlore request",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("elapsed", elapsed),
	)

	if !resp.IsSuccess() {
		return fmt.Errorf("%w: coinlore %s returned %d", ErrUnexpectedStatus, endpoint, resp.StatusCode())
	}
	return nil
}
