package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/bagdasarian/position-helper/internal/repository"
)

type memberRepository struct {
	db       *sql.DB
	executor DBExecutor
}

func NewMemberRepository(db *sql.DB) *memberRepository {
	return &memberRepository{db: db, executor: db}
}

func (r *memberRepository) List(ctx context.Context) ([]*domain.Member, error) {
	query := `
		SELECT name, memo, is_active, preferences, created_at, updated_at
		FROM members
		ORDER BY id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*domain.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

func (r *memberRepository) GetByName(ctx context.Context, name string) (*domain.Member, error) {
	query := `
		SELECT name, memo, is_active, preferences, created_at, updated_at
		FROM members
		WHERE name = $1
	`

	member, err := scanMember(r.executor.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrMemberNotFound
		}
		return nil, err
	}

	return member, nil
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	if err := insertMember(ctx, r.executor, member); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrMemberExists
		}
		return err
	}
	return nil
}

func (r *memberRepository) Update(ctx context.Context, member *domain.Member) error {
	query := `
		UPDATE members
		SET memo = $2, is_active = $3, preferences = $4, updated_at = $5
		WHERE name = $1
	`

	prefs, err := marshalPreferences(member.Preferences)
	if err != nil {
		return err
	}

	now := time.Now()
	result, err := r.executor.ExecContext(ctx, query, member.Name, member.Memo, member.IsActive, prefs, now)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	member.UpdatedAt = &now
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, name string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM members WHERE name = $1`, name)
		if err != nil {
			return err
		}
		fromRoster, err := result.RowsAffected()
		if err != nil {
			return err
		}

		result, err = tx.ExecContext(ctx, `DELETE FROM position_rows WHERE member_name = $1`, name)
		if err != nil {
			return err
		}
		fromTable, err := result.RowsAffected()
		if err != nil {
			return err
		}

		if fromRoster == 0 && fromTable == 0 {
			return repository.ErrMemberNotFound
		}
		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*domain.Member, error) {
	member := &domain.Member{}
	var prefs []byte
	var updatedAt sql.NullTime
	err := row.Scan(
		&member.Name,
		&member.Memo,
		&member.IsActive,
		&prefs,
		&member.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if updatedAt.Valid {
		member.UpdatedAt = &updatedAt.Time
	}

	member.Preferences = map[string]any{}
	if len(prefs) > 0 {
		if err := json.Unmarshal(prefs, &member.Preferences); err != nil {
			return nil, fmt.Errorf("decode preferences of %q: %w", member.Name, err)
		}
	}

	return member, nil
}

func insertMember(ctx context.Context, executor DBExecutor, member *domain.Member) error {
	query := `
		INSERT INTO members (name, memo, is_active, preferences, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	prefs, err := marshalPreferences(member.Preferences)
	if err != nil {
		return err
	}

	if member.CreatedAt.IsZero() {
		member.CreatedAt = time.Now()
	}

	_, err = executor.ExecContext(ctx, query, member.Name, member.Memo, member.IsActive, prefs, member.CreatedAt)
	return err
}

func marshalPreferences(prefs map[string]any) (string, error) {
	if prefs == nil {
		return "{}", nil
	}
	data, err := json.Marshal(prefs)
	if err != nil {
		return "", fmt.Errorf("encode preferences: %w", err)
	}
	return string(data), nil
}
