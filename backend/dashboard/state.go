// Package dashboard holds the application state a dashboard client works
// from and derives everything it renders from that state.
package dashboard

import (
	"time"

	"khelkhatm/backend/activity"
	"khelkhatm/backend/models"
	"khelkhatm/backend/stats"
)

// Filter mirrors the question list selectors. Empty fields mean "all".
type Filter struct {
	Phase  string        `json:"phase,omitempty"`
	Topic  string        `json:"topic,omitempty"`
	Status models.Status `json:"status,omitempty"`
}

func (f Filter) Match(q models.Question) bool {
	if f.Phase != "" && q.Phase != f.Phase {
		return false
	}
	if f.Topic != "" && q.Topic != f.Topic {
		return false
	}
	if f.Status != "" && q.Status != f.Status {
		return false
	}
	return true
}

// State is the single mutable copy of everything the dashboard has loaded.
type State struct {
	Questions   []models.Question
	Concepts    []models.Concept
	Logs        []models.DailyLog
	Summary     *models.Summary
	Activity    *activity.Live
	Filter      Filter
	MonthOffset int
	DailyTarget int
}

// View is the derived, read-only rendering of a State.
type View struct {
	Today           string                `json:"today"`
	Summary         *models.Summary       `json:"summary"`
	Calendar        stats.Calendar        `json:"calendar"`
	Streak          int                   `json:"streak"`
	DailyTarget     int                   `json:"dailyTarget"`
	Projection      *stats.Projection     `json:"projection"`
	HabitWeek       []stats.HabitDay      `json:"habitWeek"`
	Phases          []string              `json:"phases"`
	Topics          []string              `json:"topics"`
	TopicProgress   []stats.GroupProgress `json:"topicProgress"`
	SubjectProgress []stats.GroupProgress `json:"subjectProgress"`
	Activity        *activity.Live        `json:"activity"`
}

// Derive computes the view. The projection uses the authoritative summary
// counts; without a summary there is no projection.
func (s *State) Derive(now time.Time) View {
	target := s.DailyTarget
	if target < 1 {
		target = 1
	}

	var projection *stats.Projection
	if s.Summary != nil {
		projection = stats.ProjectCompletion(
			int(s.Summary.DSA.Total),
			int(s.Summary.DSA.Done),
			int(s.Summary.DSA.Revisit),
			target,
			now,
		)
	}

	return View{
		Today:           stats.DayKey(now),
		Summary:         s.Summary,
		Calendar:        stats.BuildCalendar(s.Questions, s.MonthOffset, now),
		Streak:          stats.Streak(s.Questions, now),
		DailyTarget:     target,
		Projection:      projection,
		HabitWeek:       stats.HabitWeek(s.Logs, now),
		Phases:          s.phases(),
		Topics:          s.topics(),
		TopicProgress:   stats.TopicProgress(s.Filtered()),
		SubjectProgress: stats.SubjectProgress(s.Concepts),
		Activity:        s.Activity,
	}
}

// Filtered returns the questions that pass the current filter.
func (s *State) Filtered() []models.Question {
	var out []models.Question
	for _, q := range s.Questions {
		if s.Filter.Match(q) {
			out = append(out, q)
		}
	}
	return out
}

func (s *State) phases() []string {
	return distinct(s.Questions, func(q models.Question) (string, bool) {
		return q.Phase, true
	})
}

// topics lists the topics of the selected phase, or of every phase.
func (s *State) topics() []string {
	return distinct(s.Questions, func(q models.Question) (string, bool) {
		return q.Topic, s.Filter.Phase == "" || q.Phase == s.Filter.Phase
	})
}

func distinct(questions []models.Question, key func(models.Question) (string, bool)) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, q := range questions {
		k, ok := key(q)
		if !ok || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// ApplySummary replaces the summary with an authoritative recount.
func (s *State) ApplySummary(summary *models.Summary) {
	s.Summary = summary
}

// ApplyActivity stores a polled snapshot. A nil snapshot (failed poll) keeps
// the previous one.
func (s *State) ApplyActivity(live *activity.Live) {
	if live != nil {
		s.Activity = live
	}
}
