package model

import "strings"

// RepeatedWordThreshold は繰り返しとみなす最小の出現回数です。
const RepeatedWordThreshold = 3

// RepeatedWordReport は繰り返し単語を含むレポートです。
type RepeatedWordReport struct {
	ID            ID       `json:"id"`
	Text          string   `json:"text"`
	RepeatedWords []string `json:"repeatedWords"`
}

// RepeatedWords はRepeatedWordThreshold回以上出現する単語を小文字で返します。
// 順序は最初に出現した順です。
func RepeatedWords(text string) []string {
	counts := make(map[string]int)
	var order []string
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	var repeated []string
	for _, w := range order {
		if counts[w] >= RepeatedWordThreshold {
			repeated = append(repeated, w)
		}
	}
	return repeated
}

// FindRepeatedWordReports は繰り返し単語を含むレポートだけを返します。
func FindRepeatedWordReports(reports []*Report) []*RepeatedWordReport {
	result := []*RepeatedWordReport{}
	for _, r := range reports {
		words := RepeatedWords(r.Text)
		if len(words) == 0 {
			continue
		}
		result = append(result, &RepeatedWordReport{
			ID:            r.ID,
			Text:          r.Text,
			RepeatedWords: words,
		})
	}
	return result
}
