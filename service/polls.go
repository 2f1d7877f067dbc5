// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

package service

import (
	"log/slog"
	"strings"
	"time"

	"github.com/pollhive/pollhive/auth"
	"github.com/pollhive/pollhive/models"
	"github.com/pollhive/pollhive/store"
)

// PollService owns the poll lifecycle: creation, reads, owner-only
// mutation, vote casting, and tallying. Identity is always an explicit
// argument; there is no ambient current user.
type PollService struct {
	store *store.Store
}

func NewPollService(st *store.Store) *PollService {
	return &PollService{store: st}
}

// normalizeOptions trims labels and discards blank ones, preserving
// the order of the rest.
func normalizeOptions(options []string) []string {
	cleaned := make([]string, 0, len(options))
	for _, opt := range options {
		opt = strings.TrimSpace(opt)
		if opt != "" {
			cleaned = append(cleaned, opt)
		}
	}
	return cleaned
}

func validatePollInput(question string, options []string) ([]string, error) {
	if strings.TrimSpace(question) == "" {
		return nil, models.ErrQuestionRequired
	}
	cleaned := normalizeOptions(options)
	if len(cleaned) < 2 {
		return nil, models.ErrNotEnoughOptions
	}
	return cleaned, nil
}

// CreatePoll validates input and persists a new poll owned by user.
func (s *PollService) CreatePoll(user *models.User, question string, options []string) (*models.Poll, error) {
	if user == nil {
		return nil, models.ErrNotAuthenticated
	}
	cleaned, err := validatePollInput(question, options)
	if err != nil {
		return nil, err
	}

	poll := &models.Poll{
		ID:        auth.NewID(),
		OwnerID:   user.ID,
		Question:  strings.TrimSpace(question),
		Options:   cleaned,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.CreatePoll(poll); err != nil {
		return nil, err
	}

	slog.Info("poll created", "poll_id", poll.ID, "owner_id", user.ID)
	return poll, nil
}

// GetPoll fetches a poll by ID. No ownership restriction: any caller,
// authenticated or not, may read any poll.
func (s *PollService) GetPoll(id string) (*models.Poll, error) {
	return s.store.PollByID(id)
}

// GetPollWithVotes fetches a poll along with all votes cast on it.
func (s *PollService) GetPollWithVotes(id string) (*models.PollWithVotes, error) {
	poll, err := s.store.PollByID(id)
	if err != nil {
		return nil, err
	}
	votes, err := s.store.VotesForPoll(id)
	if err != nil {
		return nil, err
	}
	return &models.PollWithVotes{Poll: *poll, Votes: votes}, nil
}

// ListPollsByOwner returns the user's polls, newest first.
func (s *PollService) ListPollsByOwner(user *models.User) ([]models.Poll, error) {
	if user == nil {
		return nil, models.ErrNotAuthenticated
	}
	return s.store.PollsByOwner(user.ID)
}

// UpdatePoll replaces a poll's question and options. Only the owner
// may update, and options an existing vote references cannot be
// removed: shrinking below the highest voted index would leave votes
// dangling.
func (s *PollService) UpdatePoll(user *models.User, id, question string, options []string) (*models.Poll, error) {
	if user == nil {
		return nil, models.ErrNotAuthenticated
	}
	cleaned, err := validatePollInput(question, options)
	if err != nil {
		return nil, err
	}

	poll, err := s.store.PollByID(id)
	if err != nil {
		return nil, err
	}
	if poll.OwnerID != user.ID {
		return nil, models.ErrNotOwner
	}

	maxIndex, err := s.store.MaxVotedOptionIndex(id)
	if err != nil {
		return nil, err
	}
	if maxIndex >= len(cleaned) {
		return nil, models.ErrOptionsInUse
	}

	if err := s.store.UpdatePoll(id, strings.TrimSpace(question), cleaned); err != nil {
		return nil, err
	}

	slog.Info("poll updated", "poll_id", id, "owner_id", user.ID)
	return s.store.PollByID(id)
}

// DeletePoll removes a poll and its votes. Only the owner may delete.
func (s *PollService) DeletePoll(user *models.User, id string) error {
	if user == nil {
		return models.ErrNotAuthenticated
	}

	poll, err := s.store.PollByID(id)
	if err != nil {
		return err
	}
	if poll.OwnerID != user.ID {
		return models.ErrNotOwner
	}

	if err := s.store.DeletePoll(id); err != nil {
		return err
	}

	slog.Info("poll deleted", "poll_id", id, "owner_id", user.ID)
	return nil
}

// CastVote records user's choice on a poll. The duplicate-vote check
// is the store's unique constraint, so two simultaneous casts by the
// same user cannot both succeed.
func (s *PollService) CastVote(user *models.User, pollID string, optionIndex int) (*models.Vote, error) {
	if user == nil {
		return nil, models.ErrNotAuthenticated
	}

	poll, err := s.store.PollByID(pollID)
	if err != nil {
		return nil, err
	}
	if optionIndex < 0 || optionIndex >= len(poll.Options) {
		return nil, models.ErrOptionOutOfRange
	}

	vote := &models.Vote{
		ID:          auth.NewID(),
		PollID:      pollID,
		VoterID:     user.ID,
		OptionIndex: optionIndex,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.CreateVote(vote); err != nil {
		return nil, err
	}

	slog.Info("vote cast", "poll_id", pollID, "voter_id", user.ID, "option_index", optionIndex)
	return vote, nil
}

// Tally recomputes vote totals from stored votes. Every option appears
// in the result, zero-voted ones included.
func (s *PollService) Tally(pollID string) (*models.PollResults, error) {
	poll, err := s.store.PollByID(pollID)
	if err != nil {
		return nil, err
	}
	counts, err := s.store.VoteCounts(pollID)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, c := range counts {
		total += c
	}

	results := &models.PollResults{
		PollID:     poll.ID,
		Question:   poll.Question,
		TotalVotes: total,
		Options:    make([]models.OptionTally, len(poll.Options)),
	}
	for i, label := range poll.Options {
		results.Options[i] = models.OptionTally{
			OptionIndex: i,
			Label:       label,
			Votes:       counts[i],
			Percentage:  Percentage(counts[i], total),
		}
	}
	return results, nil
}

// Percentage returns round-half-up of 100*count/total, or 0 when total
// is 0.
func Percentage(count, total int) int {
	if total == 0 {
		return 0
	}
	return (200*count + total) / (2 * total)
}
