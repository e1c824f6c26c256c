// Package tmdb 是目录服务的客户端：发起最少的请求，把原始响应交给 formatter。
//
// 约束：
// - 每个操作只做一次尝试，不缓存、不重试
// - token 每次调用传入，Client 本身不保存凭据
// - 并发调用之间没有共享的可变状态
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/John-Robertt/tmdbnote/internal/domain"
	"github.com/John-Robertt/tmdbnote/internal/formatter"
	"github.com/John-Robertt/tmdbnote/internal/infra/httpx"
	"github.com/John-Robertt/tmdbnote/internal/infra/metrics"
)

const (
	DefaultBaseURL  = "https://api.themoviedb.org/3"
	DefaultLanguage = "ru-RU"

	// 单个响应体上限；正常详情响应远小于该值。
	maxBodyBytes = 8 << 20
)

// Client 访问目录 API。零值不可用，请用 New。
type Client struct {
	baseURL  string
	language string

	http    *http.Client
	conv    *formatter.Converter
	paths   domain.PathConfig
	log     zerolog.Logger
	metrics *metrics.Manager
}

// Option 配置 Client。
type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u = strings.TrimRight(strings.TrimSpace(u), "/"); u != "" {
			c.baseURL = u
		}
	}
}

// WithLanguage 设置请求的 language 参数（例如 ru-RU）。
func WithLanguage(lang string) Option {
	return func(c *Client) {
		if lang = strings.TrimSpace(lang); lang != "" {
			c.language = lang
		}
	}
}

// WithHTTPClient 替换底层 HTTP client；不设置时用 httpx.NewClient 构造。
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithConverter(conv *formatter.Converter) Option {
	return func(c *Client) {
		if conv != nil {
			c.conv = conv
		}
	}
}

// WithPaths 设置投影时各角色的笔记目录。
func WithPaths(p domain.PathConfig) Option {
	return func(c *Client) { c.paths = p }
}

func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

func WithMetrics(m *metrics.Manager) Option {
	return func(c *Client) { c.metrics = m }
}

func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:  DefaultBaseURL,
		language: DefaultLanguage,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.conv == nil {
		c.conv = formatter.NewConverter()
	}
	if c.http == nil {
		var obs httpx.Observer
		if c.metrics != nil {
			obs = c.metrics
		}
		h, err := httpx.NewClient(httpx.Options{Observer: obs})
		if err != nil {
			return nil, err
		}
		c.http = h
	}
	if _, err := url.ParseRequestURI(c.baseURL); err != nil {
		return nil, fmt.Errorf("base url 无效：%w", err)
	}
	return c, nil
}

// opLogger 为一次操作生成带关联 id 的 logger。
func (c *Client) opLogger(op string) zerolog.Logger {
	return c.log.With().Str("op", op).Str("request_id", uuid.NewString()).Logger()
}

// getJSON 发出一次 GET 并把 2xx 响应体解码进 out。
//
// 规则：
// - token 只放在 Authorization 头里，不出现在 URL/日志中
// - 非 2xx 返回 *HTTPStatusError（URL 不含查询参数）
func (c *Client) getJSON(ctx context.Context, endpoint, path string, q url.Values, token string, out any) error {
	if q == nil {
		q = url.Values{}
	}
	if q.Get("language") == "" {
		q.Set("language", c.language)
	}
	endpointURL := c.baseURL + path
	u := endpointURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(httpx.WithEndpoint(ctx, endpoint), http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return &HTTPStatusError{URL: endpointURL, StatusCode: resp.StatusCode}
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("解码 %s 响应失败：%w", endpoint, err)
	}
	return nil
}

// kindPath 把 Kind 映射为 URL 路径段。
func kindPath(k domain.Kind) (string, bool) {
	switch k {
	case domain.KindMovie:
		return "movie", true
	case domain.KindSeries:
		return "tv", true
	case domain.KindPerson:
		return "person", true
	default:
		return "", false
	}
}
