package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/bagdasarian/position-helper/internal/domain"
)

type positionRepository struct {
	db       *sql.DB
	executor DBExecutor
}

func NewPositionRepository(db *sql.DB) *positionRepository {
	return &positionRepository{db: db, executor: db}
}

func (r *positionRepository) GetTable(ctx context.Context) (*domain.PositionTable, error) {
	positions, err := listPositions(ctx, r.executor)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT member_name, cells
		FROM position_rows
		ORDER BY sort_order, id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	table := domain.NewPositionTable()
	table.Positions = positions
	for rows.Next() {
		var member string
		var raw []byte
		if err := rows.Scan(&member, &raw); err != nil {
			return nil, err
		}

		cells := map[string]domain.Cell{}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &cells); err != nil {
				return nil, fmt.Errorf("decode cells of %q: %w", member, err)
			}
		}

		row := make([]domain.Cell, len(positions))
		for j, pos := range positions {
			row[j] = cells[pos]
		}
		table.Members = append(table.Members, member)
		table.Cells = append(table.Cells, row)
	}

	return table, rows.Err()
}

// SaveTable перезаписывает таблицу целиком
func (r *positionRepository) SaveTable(ctx context.Context, table *domain.PositionTable) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return writeTable(ctx, tx, table)
	})
}

// AddRow добавляет строку из нулей в конец таблицы, если её ещё нет
func (r *positionRepository) AddRow(ctx context.Context, member string) error {
	positions, err := listPositions(ctx, r.executor)
	if err != nil {
		return err
	}

	cells := make(map[string]domain.Cell, len(positions))
	for _, pos := range positions {
		cells[pos] = domain.NumberCell(0)
	}
	raw, err := json.Marshal(cells)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO position_rows (member_name, sort_order, cells)
		SELECT $1, COALESCE(MAX(sort_order), -1) + 1, $2 FROM position_rows
		ON CONFLICT (member_name) DO NOTHING
	`
	_, err = r.executor.ExecContext(ctx, query, member, string(raw))
	return err
}

func listPositions(ctx context.Context, executor DBExecutor) ([]string, error) {
	rows, err := executor.QueryContext(ctx, `SELECT name FROM positions ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		positions = append(positions, name)
	}
	return positions, rows.Err()
}

func writeTable(ctx context.Context, executor DBExecutor, table *domain.PositionTable) error {
	if _, err := executor.ExecContext(ctx, `DELETE FROM position_rows`); err != nil {
		return err
	}
	if _, err := executor.ExecContext(ctx, `DELETE FROM positions`); err != nil {
		return err
	}

	for i, pos := range table.Positions {
		_, err := executor.ExecContext(ctx,
			`INSERT INTO positions (name, sort_order) VALUES ($1, $2)`, pos, i)
		if err != nil {
			return err
		}
	}

	for i, member := range table.Members {
		cells := map[string]domain.Cell{}
		for j, pos := range table.Positions {
			if c := table.Cell(i, j); !c.IsBlank() {
				cells[pos] = c
			}
		}
		raw, err := json.Marshal(cells)
		if err != nil {
			return err
		}

		_, err = executor.ExecContext(ctx,
			`INSERT INTO position_rows (member_name, sort_order, cells) VALUES ($1, $2, $3)`,
			member, i, string(raw))
		if err != nil {
			return err
		}
	}

	return nil
}
