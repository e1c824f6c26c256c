package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTimeout   = 20 * time.Second
	defaultUserAgent = "tmdbnote/1.0 (+https://github.com/John-Robertt/tmdbnote)"
)

// Observer 在每次请求结束后被调用；status<=0 表示没有拿到响应。
type Observer interface {
	ObserveUpstream(endpoint string, status int, d time.Duration)
}

type endpointKey struct{}

// WithEndpoint 给请求打上逻辑端点名（例如 "search"、"details"），用于指标分组。
func WithEndpoint(ctx context.Context, endpoint string) context.Context {
	return context.WithValue(ctx, endpointKey{}, endpoint)
}

// EndpointFrom 读取 WithEndpoint 设置的端点名；未设置时返回 "other"。
func EndpointFrom(ctx context.Context) string {
	if v, ok := ctx.Value(endpointKey{}).(string); ok && v != "" {
		return v
	}
	return "other"
}

// Transport 固化“UA + 代理 + 单次尝试 + 指标”策略。
//
// 约束：
// - 每个请求只发一次，不做任何重试；失败原样返回给调用方
// - 不修改调用方的 *http.Request（内部 Clone 后再设置 header）
type Transport struct {
	Base *http.Transport

	UserAgent string
	Observer  Observer

	// DisableKeepAlives 决定是否对 Request 设置 Close=true。
	// 真正禁用 keep-alive 依赖 Base.DisableKeepAlives。
	DisableKeepAlives bool
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	if t.Base == nil {
		return nil, errors.New("nil base transport")
	}

	r := req.Clone(req.Context())
	if r.Header.Get("User-Agent") == "" {
		ua := t.UserAgent
		if ua == "" {
			ua = defaultUserAgent
		}
		r.Header.Set("User-Agent", ua)
	}
	if t.DisableKeepAlives {
		r.Close = true
	}

	start := time.Now()
	resp, err := t.Base.RoundTrip(r)
	if t.Observer != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		t.Observer.ObserveUpstream(EndpointFrom(req.Context()), status, time.Since(start))
	}
	return resp, err
}

// Options 描述目录 API client 的网络策略。
type Options struct {
	ProxyURL  string
	Timeout   time.Duration // <=0 使用默认值
	UserAgent string
	Observer  Observer
}

// NewClient 构造访问目录 API 的 HTTP client。
//
// 规则：
// - ProxyURL 非空：必须走代理，且禁用 keep-alive（每请求新连接）
// - 总超时由 http.Client.Timeout 负责；ctx 取消同样会中断请求
func NewClient(opts Options) (*http.Client, error) {
	base := &http.Transport{
		Proxy:                 nil,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 15 * time.Second,
		MaxIdleConnsPerHost:   4,
	}

	disableKeepAlives := false
	if proxyURL := strings.TrimSpace(opts.ProxyURL); proxyURL != "" {
		u, err := url.Parse(proxyURL)
		if err != nil {
			return nil, err
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, errors.New("proxy url 缺少 scheme 或 host")
		}
		base.Proxy = http.ProxyURL(u)
		base.DisableKeepAlives = true
		disableKeepAlives = true
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &http.Client{
		Transport: &Transport{
			Base:              base,
			UserAgent:         strings.TrimSpace(opts.UserAgent),
			Observer:          opts.Observer,
			DisableKeepAlives: disableKeepAlives,
		},
		Timeout: timeout,
	}, nil
}
