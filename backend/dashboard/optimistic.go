package dashboard

import (
	"errors"
	"time"

	"khelkhatm/backend/models"

	"github.com/google/uuid"
)

type Phase string

const (
	PhasePending   Phase = "pending"
	PhaseConfirmed Phase = "confirmed"
	PhaseReverted  Phase = "reverted"
)

var (
	ErrUnknownQuestion = errors.New("question is not loaded")
	ErrSettled         = errors.New("update already settled")
)

// Update tracks one optimistic status change from pending to either
// confirmed (server value applied) or reverted (prior value restored).
type Update struct {
	Phase Phase
	Prior models.Question
	Guess models.Question
	Value models.Question

	priorSummary *models.Summary
}

// BeginStatusChange applies the guessed result locally and returns the
// pending update. The summary's done count gets the web client's quick
// adjustment: +1 when entering DONE, -1 on any other change.
// That hint is knowingly wrong for REVISIT<->DONE and TODO->REVISIT; the
// summary is expected to be replaced by ApplySummary afterwards.
func (s *State) BeginStatusChange(id uuid.UUID, status models.Status, now time.Time) (*Update, error) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrUnknownQuestion
	}

	prior := s.Questions[i]
	guess := prior
	guess.Status = status
	switch {
	case status.Solved():
		at := now
		guess.CompletedAt = &at
	case status == models.StatusTodo:
		guess.CompletedAt = nil
	}

	u := &Update{Phase: PhasePending, Prior: prior, Guess: guess, Value: guess}

	if s.Summary != nil {
		saved := *s.Summary
		u.priorSummary = &saved

		hinted := *s.Summary
		if status == models.StatusDone {
			hinted.DSA.Done++
		} else {
			hinted.DSA.Done--
		}
		s.Summary = &hinted
	}

	s.Questions[i] = guess
	return u, nil
}

// Confirm reconciles a pending update with the value the store returned.
func (s *State) Confirm(u *Update, server models.Question) error {
	if u.Phase != PhasePending {
		return ErrSettled
	}
	if i := s.indexOf(server.ID); i >= 0 {
		s.Questions[i] = server
	}
	u.Value = server
	u.Phase = PhaseConfirmed
	return nil
}

// Revert restores the question and summary captured when the update began.
func (s *State) Revert(u *Update) error {
	if u.Phase != PhasePending {
		return ErrSettled
	}
	if i := s.indexOf(u.Prior.ID); i >= 0 {
		s.Questions[i] = u.Prior
	}
	if u.priorSummary != nil {
		s.Summary = u.priorSummary
	}
	u.Value = u.Prior
	u.Phase = PhaseReverted
	return nil
}

func (s *State) indexOf(id uuid.UUID) int {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return i
		}
	}
	return -1
}
