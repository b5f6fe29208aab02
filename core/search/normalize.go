// ABOUTME: Item normalizer turns raw provider listings into cleaned, classified items
// ABOUTME: Pure functions; never fails on malformed provider data

package search

import (
	"pricewatch-api/core/domain"
	"pricewatch-api/pkg/utils/html"
	"pricewatch-api/pkg/utils/parse"
)

// UnknownMall is shown when the provider sends no mall name
const UnknownMall = "알 수 없음"

// productTypeLabels maps provider product type codes to display labels
var productTypeLabels = map[string]string{
	"1": "일반상품",
	"2": "일반상품+카탈로그",
	"3": "카탈로그",
}

// ProductTypeLabel returns the label for a provider code, or the code itself
// when it is not known
func ProductTypeLabel(code string) string {
	if label, ok := productTypeLabels[code]; ok {
		return label
	}
	return code
}

// Normalize cleans and classifies one raw listing against threshold.
// Unparseable prices become 0.
func Normalize(raw domain.RawItem, threshold int) domain.NormalizedItem {
	price := parse.IntOrZero(raw.LPrice)

	mall := raw.MallName
	if mall == "" {
		mall = UnknownMall
	}

	return domain.NormalizedItem{
		Name:        html.StripTags(raw.Title),
		Link:        raw.Link,
		Mall:        mall,
		Price:       price,
		Position:    domain.PositionFor(price, threshold),
		ProductType: ProductTypeLabel(raw.ProductType),
	}
}

// NormalizeAll normalizes raws in order
func NormalizeAll(raws []domain.RawItem, threshold int) []domain.NormalizedItem {
	items := make([]domain.NormalizedItem, 0, len(raws))
	for _, raw := range raws {
		items = append(items, Normalize(raw, threshold))
	}
	return items
}
