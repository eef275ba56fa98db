package normalize

import "strings"

// 兴趣抽取：上游几乎没有干净的兴趣标签体系，
// 这里用类目 + 机构名 + 标题做尽力而为的代理集合。

// ExtractInterests 汇总类目、机构名、标题为扁平兴趣集合（去重、保序）。
// 机构名与标题相同时跳过机构名，避免重复信号。
func ExtractInterests(category, providerName, title string) []string {
	out := make([]string, 0, 3)
	seen := make(map[string]bool, 3)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		key := strings.ToLower(s)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, s)
	}

	add(category)
	if !strings.EqualFold(strings.TrimSpace(providerName), strings.TrimSpace(title)) {
		add(providerName)
	}
	add(title)
	return out
}
