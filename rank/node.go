// Package rank 实现六因子打分、权重混合与解释生成。
// 各因子打分器是独立纯函数，Node 负责并发调度、混合、截断与排序。
package rank

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/famkit/core"
	"github.com/rushteam/famkit/pipeline"
	"github.com/rushteam/famkit/pkg/utils"
)

// Node 是打分排序 Node。
// - 对批次内候选并发打分（候选之间无共享可变状态）
// - 写入 labels：practical_score、match_score
// - 丢弃 matchScore 低于 Cutoff 的候选，按 matchScore 降序排序
type Node struct {
	Weights Weights

	// Concurrency 是并发打分上限，<=0 时取 8。
	Concurrency int
}

// NewNode 构造使用缺省权重的打分 Node。
func NewNode(opts ...Option) *Node {
	n := &Node{Weights: DefaultWeights()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Option 配置打分 Node。
type Option func(*Node)

// WithWeights 覆盖缺省权重。
func WithWeights(w Weights) Option {
	return func(n *Node) { n.Weights = w }
}

// WithConcurrency 设置并发打分上限。
func WithConcurrency(c int) Option {
	return func(n *Node) { n.Concurrency = c }
}

func (n *Node) Name() string        { return "rank.factors" }
func (n *Node) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *Node) Process(
	ctx context.Context,
	mctx *core.MatchContext,
	cands []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(cands) == 0 {
		return cands, nil
	}
	family := mctx.Family
	if family == nil {
		family = &core.FamilyProfile{}
	}

	limit := n.Concurrency
	if limit <= 0 {
		limit = 8
	}
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, c := range cands {
		if c == nil {
			continue
		}
		c := c
		g.Go(func() error {
			n.score(family, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	kept := cands[:0]
	for _, c := range cands {
		if c == nil || c.MatchScore < n.Weights.Cutoff {
			continue
		}
		kept = append(kept, c)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].MatchScore > kept[j].MatchScore
	})
	return kept, nil
}

// score 对单个候选完成六因子打分、混合与解释。
func (n *Node) score(family *core.FamilyProfile, c *core.Candidate) {
	rec := c.Activity
	if rec == nil {
		rec = &core.ActivityRecord{}
	}

	f := core.FactorScores{
		Age:       AgeScore(family.Children, rec.AgeRange),
		Interests: InterestScore(rec.Interests, family.AllInterests()),
		Location:  LocationScore(family.Location, rec.Location),
		Schedule:  ScheduleScore(family.Preferences.Schedule, rec.Schedule),
		Budget:    BudgetScore(family.Preferences.Budget, rec.Pricing),
		Quality:   QualityScore(rec.Provider),
	}
	c.Ranking = f
	c.PracticalScore = n.Weights.Practical(f)
	c.MatchScore = n.Weights.Blend(c.VectorSimilarity, c.PracticalScore)
	c.MatchReasons, c.Concerns = Explain(f, rec)

	c.PutLabel("practical_score", utils.Label{Value: fmt.Sprintf("%.3f", c.PracticalScore), Source: "rank"})
	c.PutLabel("match_score", utils.Label{Value: fmt.Sprintf("%.3f", c.MatchScore), Source: "rank"})
}
