package store

import (
	"context"

	"github.com/lastwords/last-words-api/internal/logger"
)

type diagnosticsRepository struct {
	*DB
	logger *logger.Logger
}

func NewDiagnosticsRepository(db *DB, logger *logger.Logger) DiagnosticsRepository {
	return &diagnosticsRepository{
		DB:     db,
		logger: logger,
	}
}

// SelectOne runs "SELECT 1 AS ok" and returns the rows as column/value maps.
// Driver errors are returned unwrapped so their message reaches the caller
// verbatim.
func (d *diagnosticsRepository) SelectOne(ctx context.Context) ([]map[string]any, error) {
	log := logger.FromContext(ctx)

	rows, err := d.QueryContext(ctx, diagnosticsQuery)
	if err != nil {
		log.Err(err).
			Str("func", "diagnosticsRepository.SelectOne").
			Stringer("classification", d.errorClassificator.Classify(err)).
			Msg("database probe failed")
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := make([]map[string]any, 0, 1)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		row := make(map[string]any, len(columns))
		for i, column := range columns {
			if b, ok := values[i].([]byte); ok {
				row[column] = string(b)
				continue
			}
			row[column] = values[i]
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
