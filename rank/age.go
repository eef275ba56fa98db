package rank

import "github.com/rushteam/famkit/core"

// 年龄分：对每个孩子按与适龄区间的距离分档，再对孩子取均值。
// 区间未知给 0.4（略低于中性，让已知适龄的记录占优）；
// 无孩子家庭给固定中性值 0.5。

const (
	ageScoreUnknown    = 0.4
	ageScoreNoChildren = 0.5
)

// AgeScore 计算年龄契合分，[0,1]。
func AgeScore(children []core.Child, ageRange *core.AgeRange) float64 {
	if len(children) == 0 {
		return ageScoreNoChildren
	}
	if ageRange == nil {
		return ageScoreUnknown
	}

	var sum float64
	for _, c := range children {
		sum += childAgeFit(c.Age, *ageRange)
	}
	return sum / float64(len(children))
}

// childAgeFit 是单个孩子的分档：区间内 1.0，差 1 年 0.7，差 2 年 0.4，
// 3-5 年按 max(0.1, 0.3-0.05·d) 衰减，更远为 0。
// 距离对年龄分单调不增。
func childAgeFit(age int, r core.AgeRange) float64 {
	d := r.Distance(age)
	switch {
	case d == 0:
		return 1.0
	case d == 1:
		return 0.7
	case d == 2:
		return 0.4
	case d <= 5:
		v := 0.3 - 0.05*float64(d)
		if v < 0.1 {
			return 0.1
		}
		return v
	default:
		return 0
	}
}
