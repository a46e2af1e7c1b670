package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource loads the catalog from the menu tables instead of a
// JSON document. Groups and items come back in their stored positions
// so the flattened IDs stay stable between loads.
type PostgresSource struct {
	db *pgxpool.Pool
}

func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Fetch(ctx context.Context) ([]RawGroup, int, error) {
	rows, err := s.db.Query(ctx, `
		SELECT c.name, i.title, COALESCE(i.description, ''), i.price, COALESCE(i.image, '')
		FROM menu_categories c
		JOIN menu_items i ON i.category_id = c.id
		ORDER BY c.position, i.position
	`)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer rows.Close()

	var groups []RawGroup
	index := make(map[string]int)

	for rows.Next() {
		var category string
		var item RawItem
		if err := rows.Scan(&category, &item.Title, &item.Description, &item.Price, &item.Img); err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrLoad, err)
		}

		pos, ok := index[category]
		if !ok {
			pos = len(groups)
			index[category] = pos
			groups = append(groups, RawGroup{Category: category})
		}
		groups[pos].Items = append(groups[pos].Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	return groups, 0, nil
}
