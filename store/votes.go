// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

package store

import (
	"fmt"

	"github.com/pollhive/pollhive/models"
)

// CreateVote inserts a vote. The UNIQUE (poll_id, voter_id) constraint
// is the duplicate-vote guarantee: a second vote by the same user loses
// the race at the database and comes back as models.ErrAlreadyVoted.
func (s *Store) CreateVote(v *models.Vote) error {
	_, err := s.db.Exec(`
		INSERT INTO vote (id, poll_id, voter_id, option_index, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, v.ID, v.PollID, v.VoterID, v.OptionIndex, v.CreatedAt)

	if isUniqueViolation(err) {
		return models.ErrAlreadyVoted
	}
	if err != nil {
		return fmt.Errorf("store: failed to insert vote: %w", err)
	}
	return nil
}

// VotesForPoll returns all votes on a poll in casting order.
func (s *Store) VotesForPoll(pollID string) ([]models.Vote, error) {
	rows, err := s.db.Query(`
		SELECT id, poll_id, voter_id, option_index, created_at
		FROM vote
		WHERE poll_id = $1
		ORDER BY created_at, id
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("store: failed to query votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.PollID, &v.VoterID, &v.OptionIndex, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("store: failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: failed to iterate votes: %w", err)
	}
	return votes, nil
}

// VoteCounts returns vote totals per option index. Indices with no
// votes are absent from the map; callers fill in zeros.
func (s *Store) VoteCounts(pollID string) (map[int]int, error) {
	rows, err := s.db.Query(`
		SELECT option_index, COUNT(*)
		FROM vote
		WHERE poll_id = $1
		GROUP BY option_index
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("store: failed to count votes: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var index, count int
		if err := rows.Scan(&index, &count); err != nil {
			return nil, fmt.Errorf("store: failed to scan vote count: %w", err)
		}
		counts[index] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: failed to iterate vote counts: %w", err)
	}
	return counts, nil
}

// MaxVotedOptionIndex returns the highest option index any vote on the
// poll references, or -1 when the poll has no votes.
func (s *Store) MaxVotedOptionIndex(pollID string) (int, error) {
	var max int
	err := s.db.QueryRow(`
		SELECT COALESCE(MAX(option_index), -1)
		FROM vote
		WHERE poll_id = $1
	`, pollID).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("store: failed to query max option index: %w", err)
	}
	return max, nil
}
