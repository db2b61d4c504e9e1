// Package stats derives the dashboard figures from loaded records: the
// monthly contribution calendar, the solving streak, the completion
// projection and the smaller habit and topic summaries.
//
// Every function is pure. Callers pass the current time explicitly and the
// input slices are never modified.
package stats
