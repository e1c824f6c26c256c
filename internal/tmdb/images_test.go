package tmdb

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/John-Robertt/tmdbnote/internal/domain"
	"github.com/John-Robertt/tmdbnote/internal/formatter"
)

func TestListImagesByID_Movie(t *testing.T) {
	f := newFakeCatalog(t)
	f.routes["/movie/603/images"] = `{
		"posters": [{"file_path": "/a.jpg", "iso_639_1": "ru"}, {"file_path": "  "}, {"file_path": "/b.jpg"}],
		"backdrops": [{"file_path": "/c.jpg"}],
		"logos": [{"file_path": "/l.png", "iso_639_1": "en"}]
	}`
	c, m := newTestClient(t, f)

	got := c.ListImagesByID(context.Background(), domain.KindMovie, 603, testToken)
	if len(got.Posters) != 2 || len(got.Backdrops) != 1 || len(got.Logos) != 1 {
		t.Fatalf("分桶不正确：%+v", got)
	}
	if got.Posters[0].URL != "https://image.tmdb.org/t/p/original/a.jpg" || got.Posters[0].Language != "ru" {
		t.Fatalf("poster 不正确：%+v", got.Posters[0])
	}
	if n, err := testutil.GatherAndCount(m.Registry(), "tmdbnote_upstream_requests_total"); err != nil || n != 1 {
		t.Fatalf("应记录一次上游请求：n=%d err=%v", n, err)
	}
}

func TestListImagesByID_PersonBuckets(t *testing.T) {
	f := newFakeCatalog(t)
	f.routes["/person/6384"] = `{
		"images": {"profiles": [{"file_path": "/p1.jpg"}, {"file_path": "/p2.jpg"}]},
		"tagged_images": {"results": [{"file_path": "/t1.jpg"}]}
	}`
	c, _ := newTestClient(t, f)

	got := c.ListImagesByID(context.Background(), domain.KindPerson, 6384, testToken)
	if len(got.Posters) != 2 || len(got.Backdrops) != 1 {
		t.Fatalf("person 分桶不正确：%+v", got)
	}
	if got.Logos == nil || len(got.Logos) != 0 {
		t.Fatalf("person 的 logos 应为空切片：%#v", got.Logos)
	}
	if got.Posters[0].PreviewURL != "https://image.tmdb.org/t/p/w185/p1.jpg" {
		t.Fatalf("profile 预览尺寸不正确：%q", got.Posters[0].PreviewURL)
	}
}

func TestListImagesByID_FailureDegradesToEmpty(t *testing.T) {
	f := newFakeCatalog(t)
	f.status["/movie/603/images"] = http.StatusInternalServerError
	c, _ := newTestClient(t, f)

	r := c.fetchImageBuckets(context.Background(), domain.KindMovie, 603, testToken)
	if !r.degraded() || Code(r.cause) != CodePartialDataUnavailable || StatusCode(r.cause) != http.StatusInternalServerError {
		t.Fatalf("内部结果应标记为降级：%+v", r.cause)
	}

	got := c.ListImagesByID(context.Background(), domain.KindMovie, 603, testToken)
	if got.Len() != 0 || got.Posters == nil || got.Backdrops == nil || got.Logos == nil {
		t.Fatalf("失败时应返回三个空桶：%#v", got)
	}
}

func TestListImagesByID_DegradedIsCounted(t *testing.T) {
	f := newFakeCatalog(t)
	c, m := newTestClient(t, f)

	// 未登记路径 => 404 => 降级
	_ = c.ListImagesByID(context.Background(), domain.KindSeries, 1, testToken)
	_ = c.ListImagesByID(context.Background(), domain.KindMovie, 0, testToken)

	n, err := testutil.GatherAndCount(m.Registry(), "tmdbnote_degraded_results_total")
	if err != nil {
		t.Fatalf("GatherAndCount 失败：%v", err)
	}
	if n != 1 {
		t.Fatalf("期望一个 op 标签序列，实际 %d", n)
	}
	if f.hits.Load() != 1 {
		t.Fatalf("id 不合法时不应发请求，实际请求 %d 次", f.hits.Load())
	}
}

func TestRealEmptyIsNotDegraded(t *testing.T) {
	f := newFakeCatalog(t)
	f.routes["/tv/1/images"] = `{"posters": [], "backdrops": [], "logos": []}`
	c, _ := newTestClient(t, f)

	r := c.fetchImageBuckets(context.Background(), domain.KindSeries, 1, testToken)
	if r.degraded() || r.value.Len() != 0 {
		t.Fatalf("确实为空时不应标记降级：%+v", r)
	}
}

func TestListImagesByID_RequestsConfiguredLanguage(t *testing.T) {
	f := newFakeCatalog(t)
	f.routes["/movie/603/images"] = `{"posters": [{"file_path": "/de.jpg", "iso_639_1": "de"}], "backdrops": [], "logos": []}`

	cases := map[string]string{"de": "de,en,null", "ru": "ru,en,null", "en": "en,null"}
	for lang, want := range cases {
		c, _ := newTestClient(t, f, WithConverter(formatter.NewConverter(formatter.WithLanguage(lang))))
		c.ListImagesByID(context.Background(), domain.KindMovie, 603, testToken)
		if got := f.query("/movie/603/images").Get("include_image_language"); got != want {
			t.Fatalf("language=%s 时 include_image_language=%q，期望 %q", lang, got, want)
		}
	}
}
