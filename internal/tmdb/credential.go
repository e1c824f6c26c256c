package tmdb

import (
	"context"
	"errors"

	"github.com/John-Robertt/tmdbnote/internal/validate"
)

type authResponse struct {
	Success bool `json:"success"`
}

// ValidateCredential 先做本地形状检查，再发一次轻量探测请求。
// 任何失败都返回 false，不向调用方暴露原因。
func (c *Client) ValidateCredential(ctx context.Context, token string) bool {
	const op = "validate_credential"
	if !validate.IsValidToken(token) {
		return false
	}
	return c.probeCredential(ctx, token).settle(c, op)
}

func (c *Client) probeCredential(ctx context.Context, token string) bestEffort[bool] {
	const op = "validate_credential"
	var resp authResponse
	if err := c.getJSON(ctx, "authentication", "/authentication", nil, token, &resp); err != nil {
		return degradedTo(false, op, err)
	}
	if !resp.Success {
		return degradedTo(false, op, errors.New("探测请求返回 success=false"))
	}
	return succeeded(true)
}
