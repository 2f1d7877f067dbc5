// Copyright (c) 2025 Pollhive Authors.
// Licensed under the MIT License; see LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pollhive/pollhive/models"
)

// CreatePoll inserts a new poll. Options are stored as a JSON array in
// a single column, mirroring their ordered-list semantics.
func (s *Store) CreatePoll(p *models.Poll) error {
	options, err := json.Marshal(p.Options)
	if err != nil {
		return fmt.Errorf("store: failed to encode options: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO poll (id, owner_id, question, options, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, p.ID, p.OwnerID, p.Question, string(options), p.CreatedAt)

	if err != nil {
		return fmt.Errorf("store: failed to insert poll: %w", err)
	}
	return nil
}

func (s *Store) PollByID(id string) (*models.Poll, error) {
	var p models.Poll
	var options string
	err := s.db.QueryRow(`
		SELECT id, owner_id, question, options, created_at
		FROM poll
		WHERE id = $1
	`, id).Scan(&p.ID, &p.OwnerID, &p.Question, &options, &p.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, models.ErrPollNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: failed to query poll: %w", err)
	}

	if err := json.Unmarshal([]byte(options), &p.Options); err != nil {
		return nil, fmt.Errorf("store: failed to decode options: %w", err)
	}
	return &p, nil
}

// PollsByOwner returns the owner's polls, newest first. The id is a
// tiebreaker so ordering stays stable for equal timestamps.
func (s *Store) PollsByOwner(ownerID string) ([]models.Poll, error) {
	rows, err := s.db.Query(`
		SELECT id, owner_id, question, options, created_at
		FROM poll
		WHERE owner_id = $1
		ORDER BY created_at DESC, id
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("store: failed to query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var p models.Poll
		var options string
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Question, &options, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("store: failed to scan poll: %w", err)
		}
		if err := json.Unmarshal([]byte(options), &p.Options); err != nil {
			return nil, fmt.Errorf("store: failed to decode options: %w", err)
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: failed to iterate polls: %w", err)
	}
	return polls, nil
}

// UpdatePoll replaces a poll's question and options in one statement.
func (s *Store) UpdatePoll(id, question string, opts []string) error {
	options, err := json.Marshal(opts)
	if err != nil {
		return fmt.Errorf("store: failed to encode options: %w", err)
	}

	res, err := s.db.Exec(`
		UPDATE poll
		SET question = $1, options = $2
		WHERE id = $3
	`, question, string(options), id)
	if err != nil {
		return fmt.Errorf("store: failed to update poll: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: failed to read update result: %w", err)
	}
	if affected == 0 {
		return models.ErrPollNotFound
	}
	return nil
}

// DeletePoll removes a poll and its votes in a single transaction, so
// a reader never observes the poll gone while votes remain or vice
// versa.
func (s *Store) DeletePoll(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM vote WHERE poll_id = $1`, id); err != nil {
		return fmt.Errorf("store: failed to delete votes: %w", err)
	}

	res, err := tx.Exec(`DELETE FROM poll WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("store: failed to delete poll: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: failed to read delete result: %w", err)
	}
	if affected == 0 {
		return models.ErrPollNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: failed to commit delete: %w", err)
	}
	return nil
}
