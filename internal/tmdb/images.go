package tmdb

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/John-Robertt/tmdbnote/internal/domain"
	"github.com/John-Robertt/tmdbnote/internal/formatter"
	"github.com/John-Robertt/tmdbnote/internal/payload"
	"github.com/John-Robertt/tmdbnote/internal/validate"
)

// ListImagesByID 返回条目的全部图片（按 posters/backdrops/logos 分桶）。
//
// 规则：
// - 只发一次请求；任何失败（含参数不合法）都返回三个空桶，不返回错误
// - person：profiles -> posters，tagged images -> backdrops，logos 恒为空
// - URL trim 后为空的条目被过滤
func (c *Client) ListImagesByID(ctx context.Context, kind domain.Kind, id int, token string) domain.ImageBuckets {
	const op = "list_images"
	return c.fetchImageBuckets(ctx, kind, id, token).settle(c, op)
}

func (c *Client) fetchImageBuckets(ctx context.Context, kind domain.Kind, id int, token string) bestEffort[domain.ImageBuckets] {
	const op = "list_images"
	empty := domain.EmptyImageBuckets()

	if !validate.IsValidToken(token) || !validate.IsValidMovieID(id) {
		return degradedTo(empty, op, errors.New("token 或 id 不合法"))
	}
	segment, known := kindPath(kind)
	if !known {
		return degradedTo(empty, op, errors.New("未知 kind："+string(kind)))
	}
	base := "/" + segment + "/" + strconv.Itoa(id)

	if kind == domain.KindPerson {
		var set payload.PersonImageSet
		q := url.Values{}
		q.Set("append_to_response", "images,tagged_images")
		if err := c.getJSON(ctx, "images", base, q, token, &set); err != nil {
			return degradedTo(empty, op, err)
		}
		return succeeded(domain.ImageBuckets{
			Posters:   c.conv.ImageEntries(set.Images.Profiles, formatter.RoleProfile),
			Backdrops: c.conv.ImageEntries(set.TaggedImages.Results, formatter.RoleBackdrop),
			Logos:     []domain.Image{},
		})
	}

	var images payload.Images
	q := url.Values{}
	q.Set("include_image_language", c.imageLanguages())
	if err := c.getJSON(ctx, "images", base+"/images", q, token, &images); err != nil {
		return degradedTo(empty, op, err)
	}
	return succeeded(domain.ImageBuckets{
		Posters:   c.conv.ImageEntries(images.Posters, formatter.RolePoster),
		Backdrops: c.conv.ImageEntries(images.Backdrops, formatter.RoleBackdrop),
		Logos:     c.conv.ImageEntries(images.Logos, formatter.RoleLogo),
	})
}
