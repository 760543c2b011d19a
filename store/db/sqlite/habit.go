package sqlite

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/verdantlabs/greensense/store"
)

func (d *DB) CreateHabit(ctx context.Context, create *store.Habit) (*store.Habit, error) {
	stmt := `
		INSERT INTO habit (uid, text, category, impact_score, timestamp)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`
	if err := d.db.QueryRowContext(ctx, stmt,
		create.UID,
		create.Text,
		create.Category,
		create.ImpactScore,
		create.Timestamp,
	).Scan(&create.ID); err != nil {
		return nil, errors.Wrap(err, "failed to insert habit")
	}
	return create, nil
}

func (d *DB) ListHabits(ctx context.Context, find *store.FindHabit) ([]*store.Habit, error) {
	where, args := []string{"1 = 1"}, []any{}
	if v := find.ID; v != nil {
		where, args = append(where, "id = ?"), append(args, *v)
	}
	if v := find.UID; v != nil {
		where, args = append(where, "uid = ?"), append(args, *v)
	}
	if v := find.Category; v != nil {
		where, args = append(where, "category = ?"), append(args, *v)
	}

	query := `
		SELECT id, uid, text, category, impact_score, timestamp
		FROM habit
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY id ASC`
	if find.Limit != nil {
		query += " LIMIT ?"
		args = append(args, *find.Limit)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query habits")
	}
	defer rows.Close()

	list := []*store.Habit{}
	for rows.Next() {
		habit := &store.Habit{}
		if err := rows.Scan(
			&habit.ID,
			&habit.UID,
			&habit.Text,
			&habit.Category,
			&habit.ImpactScore,
			&habit.Timestamp,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan habit")
		}
		list = append(list, habit)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate habits")
	}
	return list, nil
}

func (d *DB) DeleteHabit(ctx context.Context, delete *store.DeleteHabit) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM habit WHERE id = ?", delete.ID); err != nil {
		return errors.Wrap(err, "failed to delete habit")
	}
	return nil
}
