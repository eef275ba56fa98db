package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/famkit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		cel.Variable("candidate", cel.DynType),
		cel.Variable("family", cel.DynType),
		cel.Variable("label", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	return celEnv, err
}

// Eval 是候选规则 DSL 解释器，使用 CEL (Common Expression Language) 实现。
// 业务方用一行表达式声明过滤/放行规则，无需改引擎代码。
//
// 表达式语法（CEL 标准语法）：
//   - 候选字段：candidate.category == "swimming" / candidate.match_score > 0.5
//   - 家庭字段："peanut" in family.allergies / family.children_count > 1
//   - 标签：label.recall_source.contains("vector")
//   - 逻辑组合：candidate.category != "cooking" || !("peanut" in family.allergies)
//
// 注意：访问不存在的 key 会报错；用 label.key != null 检查存在性。
type Eval struct {
	cand *core.Candidate
	mctx *core.MatchContext
	env  *cel.Env
}

// NewEval 创建一个新的 DSL 解释器。
func NewEval(cand *core.Candidate, mctx *core.MatchContext) *Eval {
	env, _ := getCELEnv()
	return &Eval{
		cand: cand,
		mctx: mctx,
		env:  env,
	}
}

// Evaluate 解析并执行 DSL 表达式，返回布尔结果。
func (e *Eval) Evaluate(expr string) (bool, error) {
	if expr == "" {
		return true, nil
	}
	if e.env == nil {
		return false, fmt.Errorf("cel env not initialized")
	}

	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("compile error: %v", issues.Err())
	}

	prg, err := e.env.Program(ast)
	if err != nil {
		return false, fmt.Errorf("program error: %v", err)
	}

	out, _, err := prg.Eval(e.buildInput())
	if err != nil {
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func (e *Eval) buildInput() map[string]any {
	candidate := map[string]any{
		"id":                e.cand.ID,
		"source":            string(e.cand.Source),
		"vector_similarity": e.cand.VectorSimilarity,
		"match_score":       e.cand.MatchScore,
	}
	if a := e.cand.Activity; a != nil {
		candidate["provider_id"] = a.ProviderID
		candidate["name"] = a.Name
		candidate["category"] = a.Category
		candidate["neighborhood"] = a.Location.Neighborhood
		candidate["city"] = a.Location.City
		candidate["interests"] = a.Interests
		candidate["price"] = a.Pricing.EffectiveCost()
		candidate["free"] = a.Pricing.Type == core.PricingFree
		candidate["verified"] = a.Provider.Verified
		candidate["rating"] = a.Provider.Rating
	}

	labelAccessor := make(map[string]any, len(e.cand.Labels))
	for k, v := range e.cand.Labels {
		labelAccessor[k] = v.Value
	}

	family := map[string]any{}
	if e.mctx != nil && e.mctx.Family != nil {
		f := e.mctx.Family
		ages := make([]any, 0, len(f.Children))
		allergies := make([]any, 0, 4)
		needs := make([]any, 0, 2)
		for _, c := range f.Children {
			ages = append(ages, int64(c.Age))
			for _, al := range c.Allergies {
				allergies = append(allergies, al)
			}
			if c.SpecialNeeds != "" {
				needs = append(needs, c.SpecialNeeds)
			}
		}
		family["children_count"] = int64(len(f.Children))
		family["child_ages"] = ages
		family["allergies"] = allergies
		family["special_needs"] = needs
		family["interests"] = f.AllInterests()
		family["city"] = f.Location.City
		family["languages"] = f.Preferences.Languages
	}

	return map[string]any{
		"candidate": candidate,
		"family":    family,
		"label":     labelAccessor,
	}
}
