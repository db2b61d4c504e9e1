package stats

import "khelkhatm/backend/models"

type GroupProgress struct {
	Name  string `json:"name"`
	Done  int    `json:"done"`
	Total int    `json:"total"`
}

// TopicProgress groups questions by topic in first-seen order. Only DONE
// questions count as done, matching the per-topic badge.
func TopicProgress(questions []models.Question) []GroupProgress {
	return group(len(questions), func(i int) (string, bool) {
		return questions[i].Topic, questions[i].Status == models.StatusDone
	})
}

// SubjectProgress groups concepts by subject in first-seen order.
func SubjectProgress(concepts []models.Concept) []GroupProgress {
	return group(len(concepts), func(i int) (string, bool) {
		return concepts[i].Subject, concepts[i].Status == models.StatusDone
	})
}

func group(n int, at func(int) (string, bool)) []GroupProgress {
	index := make(map[string]int)
	var out []GroupProgress
	for i := 0; i < n; i++ {
		name, done := at(i)
		pos, ok := index[name]
		if !ok {
			pos = len(out)
			index[name] = pos
			out = append(out, GroupProgress{Name: name})
		}
		out[pos].Total++
		if done {
			out[pos].Done++
		}
	}
	return out
}
