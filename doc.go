// Package famkit 是面向家庭活动推荐的打分与排序引擎（Family Activity Kit）。
//
// 设计要点：
// - Pipeline-first: 推荐逻辑通过 Node 串联（Recall → Normalize → Filter → Enrich → Rank → ReRank）
// - Labels-first: labels 全链路透传与标准化 merge，支持 explain / 观测 / 策略驱动
// - Node 可扩展: 自定义 Node 即可插拔扩展（归一化规则、过滤器、打分器均可替换）
package famkit

import "github.com/rushteam/famkit/pipeline"

// 轻量 facade：便于用户直接 import "famkit" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindRecall    = pipeline.KindRecall
	KindNormalize = pipeline.KindNormalize
	KindFilter    = pipeline.KindFilter
	KindEnrich    = pipeline.KindEnrich
	KindRank      = pipeline.KindRank
	KindReRank    = pipeline.KindReRank
)
