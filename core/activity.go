package core

// GeoPoint 是经纬度坐标。
type GeoPoint struct {
	Lat float64
	Lng float64
}

// Location 是活动或家庭所在位置。字段均可缺省；
// 坐标存在时距离打分优先使用坐标，否则退化为文本层级匹配。
type Location struct {
	Neighborhood string
	City         string
	State        string
	ZipCode      string
	Address      string
	Coordinates  *GeoPoint
}

// AgeRange 是活动适龄区间。约定 Min <= Max。
type AgeRange struct {
	Min int
	Max int
}

// Contains 判断年龄是否落在区间内。
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// Distance 返回年龄到区间的距离（区间内为 0）。
func (r AgeRange) Distance(age int) int {
	if age < r.Min {
		return r.Min - age
	}
	if age > r.Max {
		return age - r.Max
	}
	return 0
}

// Flexibility 是排期灵活度：已知信息越少越"灵活"。
type Flexibility string

const (
	FlexFixed        Flexibility = "fixed"
	FlexFlexible     Flexibility = "flexible"
	FlexVeryFlexible Flexibility = "very_flexible"
)

// Schedule 是活动排期。Days 为小写英文星期名，Times 为时间串（如 "3:30 PM"）。
type Schedule struct {
	Days        []string
	Times       []string
	Recurring   bool
	Flexibility Flexibility
}

// PricingType 是定价方式。
type PricingType string

const (
	PricingFree       PricingType = "free"
	PricingPerSession PricingType = "per_session"
	PricingPerMonth   PricingType = "per_month"
	PricingPerProgram PricingType = "per_program"
)

// PriceRange 是价格区间（部分来源只给区间不给单价）。
type PriceRange struct {
	Min float64
	Max float64
}

// Pricing 是活动定价。Amount<=0 且 Range 为空表示价格未知。
type Pricing struct {
	Type     PricingType
	Amount   float64
	Currency string
	Range    *PriceRange
}

// EffectiveCost 返回用于预算比较的成本：单价优先，否则区间上限，未知为 0。
func (p Pricing) EffectiveCost() float64 {
	if p.Amount > 0 {
		return p.Amount
	}
	if p.Range != nil && p.Range.Max > 0 {
		return p.Range.Max
	}
	return 0
}

// ProviderInfo 是机构画像：质量分的输入。
type ProviderInfo struct {
	Name            string
	Rating          float64 // 1-5，0 表示未知
	ReviewCount     int
	Verified        bool
	ExperienceYears int
}

// ActivityRecord 是归一化后的活动画像（Normalizer 的产物），构造完成后只读。
// 上游数据缺失时字段退化为零值/nil，不会让候选整体失败。
type ActivityRecord struct {
	ProviderID string
	ProgramID  string

	Name        string
	Description string
	Category    string

	Interests []string
	AgeRange  *AgeRange

	Location Location
	Schedule Schedule
	Pricing  Pricing
	Provider ProviderInfo
}
