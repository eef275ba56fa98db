package core

// Role 是家庭成人成员的角色。
type Role string

const (
	RoleParent    Role = "parent"
	RoleGuardian  Role = "guardian"
	RoleCaregiver Role = "caregiver"
)

// Adult 是家庭中的成人成员。
type Adult struct {
	Name string
	Role Role
}

// Child 是家庭中的孩子。打分逻辑以 Age 与 Interests 为核心；
// SpecialNeeds / Allergies 供过滤规则（CEL）使用。
type Child struct {
	Name         string
	Age          int // 0-18
	Interests    []string
	SpecialNeeds string
	Allergies    []string
}

// Budget 是家庭预算偏好。Max<=0 表示未设置上限。
type Budget struct {
	Min      float64
	Max      float64
	Currency string
}

// Preferences 是家庭的结构化偏好：预算、时段、活动类型、语言。
type Preferences struct {
	Budget        *Budget
	Schedule      []TimeSlot
	ActivityTypes []string
	Languages     []string
}

// FamilyProfile 是推荐请求的输入画像，引擎只读不改。
// 上游（自然语言解析或表单）负责构造与校验；进入引擎时假定形状合法。
//
// 约定：Children 为空时年龄分退化为固定中性值 0.5。
type FamilyProfile struct {
	Adults      []Adult
	Children    []Child
	Location    Location
	Preferences Preferences

	// Notes 是自由文本补充（如 "需要轮椅通道"），参与检索 query 构造。
	Notes string
}

// AllInterests 汇总孩子兴趣与偏好活动类型（去重，保序）。
// 兴趣分以此集合与活动侧兴趣做匹配。
func (p *FamilyProfile) AllInterests() []string {
	seen := make(map[string]bool)
	out := make([]string, 0, 8)
	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}
	for _, c := range p.Children {
		for _, in := range c.Interests {
			add(in)
		}
	}
	for _, t := range p.Preferences.ActivityTypes {
		add(t)
	}
	return out
}

// ChildAges 返回所有孩子的年龄（保序）。
func (p *FamilyProfile) ChildAges() []int {
	ages := make([]int, 0, len(p.Children))
	for _, c := range p.Children {
		ages = append(ages, c.Age)
	}
	return ages
}
