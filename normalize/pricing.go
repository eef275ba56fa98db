package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rushteam/famkit/core"
	"github.com/rushteam/famkit/pkg/conv"
)

// 定价抽取：价格字段含 "free" 或数值 0 → 免费；
// 否则取第一个 $N 数值 token 作为单价（USD）；类型未知时默认按次。

var priceKeys = []string{
	"price", "cost", "fee", "price_per_session", "price_per_month", "tuition", "ticket_price",
}

var (
	rePriceRange  = regexp.MustCompile(`\$?\s*(\d+(?:\.\d+)?)\s*-\s*\$?\s*(\d+(?:\.\d+)?)`)
	rePriceAmount = regexp.MustCompile(`\$?\s*(\d+(?:\.\d+)?)`)
)

// ExtractPricing 抽取活动定价。
func ExtractPricing(payload map[string]any) core.Pricing {
	key, raw := firstPriceField(payload)
	if raw == nil {
		return core.Pricing{Type: core.PricingPerSession, Currency: "USD"}
	}

	ptype := pricingTypeOf(key, payload)

	// 数值形式
	if f, ok := conv.ToFloat64(raw); ok {
		if _, isStr := raw.(string); !isStr {
			if f <= 0 {
				return core.Pricing{Type: core.PricingFree}
			}
			return core.Pricing{Type: ptype, Amount: f, Currency: "USD"}
		}
	}

	s, _ := conv.ToString(raw)
	lower := strings.ToLower(s)
	if strings.Contains(lower, "free") {
		return core.Pricing{Type: core.PricingFree}
	}
	if m := rePriceRange.FindStringSubmatch(s); m != nil {
		lo, _ := strconv.ParseFloat(m[1], 64)
		hi, _ := strconv.ParseFloat(m[2], 64)
		if lo <= hi && hi > 0 {
			return core.Pricing{
				Type:     ptype,
				Currency: "USD",
				Range:    &core.PriceRange{Min: lo, Max: hi},
			}
		}
	}
	if m := rePriceAmount.FindStringSubmatch(s); m != nil {
		amount, _ := strconv.ParseFloat(m[1], 64)
		if amount == 0 {
			return core.Pricing{Type: core.PricingFree}
		}
		return core.Pricing{Type: ptype, Amount: amount, Currency: "USD"}
	}
	return core.Pricing{Type: ptype, Currency: "USD"}
}

func firstPriceField(payload map[string]any) (string, any) {
	for _, k := range priceKeys {
		if v, ok := payload[k]; ok && v != nil {
			return k, v
		}
	}
	return "", nil
}

func pricingTypeOf(key string, payload map[string]any) core.PricingType {
	if strings.Contains(key, "month") || strings.Contains(key, "tuition") {
		return core.PricingPerMonth
	}
	if text, ok := conv.FirstString(payload, "type", "category"); ok {
		lower := strings.ToLower(text)
		if strings.Contains(lower, "camp") || strings.Contains(lower, "program") {
			return core.PricingPerProgram
		}
	}
	return core.PricingPerSession
}
