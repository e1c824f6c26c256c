package formatter

import (
	"strings"

	"github.com/John-Robertt/tmdbnote/internal/payload"
)

// certificationRegion 是唯一参与年龄分级的地区。
const certificationRegion = "US"

// AgeRatingFromReleaseDates 取 US 条目下第一条 release_date 的 certification 并换算为年龄下限。
// 没有 US 条目、没有嵌套条目或分级不在表里时返回 0。
func AgeRatingFromReleaseDates(rd payload.ReleaseDates) int {
	for _, r := range rd.Results {
		if !strings.EqualFold(strings.TrimSpace(r.ISO), certificationRegion) {
			continue
		}
		if len(r.ReleaseDates) == 0 {
			return 0
		}
		return movieCertificationAge(strings.TrimSpace(r.ReleaseDates[0].Certification))
	}
	return 0
}

// AgeRatingFromContentRatings 取 US 条目的 rating 并换算为年龄下限。
func AgeRatingFromContentRatings(cr payload.ContentRatings) int {
	for _, r := range cr.Results {
		if !strings.EqualFold(strings.TrimSpace(r.ISO), certificationRegion) {
			continue
		}
		return tvRatingAge(strings.TrimSpace(r.Rating))
	}
	return 0
}
