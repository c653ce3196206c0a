package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"traffic-density/internal/domain/entity"
	"traffic-density/internal/domain/port"
)

// SQLiteObservationRepository хранилище результатов прогонов в SQLite
type SQLiteObservationRepository struct {
	db *sql.DB
}

// NewSQLiteObservationRepository открывает базу и применяет схему
func NewSQLiteObservationRepository(dbPath string) (*SQLiteObservationRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	repo := &SQLiteObservationRepository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return repo, nil
}

func (r *SQLiteObservationRepository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS observations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			camera_id TEXT NOT NULL,
			level TEXT NOT NULL,
			density REAL,
			error TEXT NOT NULL DEFAULT '',
			observed_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_observations_camera_time ON observations(camera_id, observed_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_observations_run ON observations(run_id)`,
	}
	for _, m := range migrations {
		if _, err := r.db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

// Close закрывает соединение с базой
func (r *SQLiteObservationRepository) Close() error {
	return r.db.Close()
}

// Save сохраняет результаты прогона в одной транзакции.
// Для NA плотность записывается как NULL.
func (r *SQLiteObservationRepository) Save(ctx context.Context, observations []entity.Observation) error {
	if len(observations) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO observations (run_id, camera_id, level, density, error, observed_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range observations {
		var density sql.NullFloat64
		if o.Level != entity.LevelNA {
			density = sql.NullFloat64{Float64: o.Density, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, o.RunID, o.CameraID, string(o.Level), density, o.Err, o.ObservedAt.UTC()); err != nil {
			return fmt.Errorf("insert observation %s: %w", o.CameraID, err)
		}
	}

	return tx.Commit()
}

// Latest возвращает последний результат камеры или nil
func (r *SQLiteObservationRepository) Latest(ctx context.Context, cameraID string) (*entity.Observation, error) {
	list, err := r.History(ctx, cameraID, 1)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

// History возвращает последние результаты камеры, новые первыми
func (r *SQLiteObservationRepository) History(ctx context.Context, cameraID string, limit int) ([]entity.Observation, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.QueryContext(ctx, `SELECT run_id, camera_id, level, density, error, observed_at
		FROM observations WHERE camera_id = ? ORDER BY observed_at DESC, id DESC LIMIT ?`, cameraID, limit)
	if err != nil {
		return nil, fmt.Errorf("query observations: %w", err)
	}
	defer rows.Close()

	var out []entity.Observation
	for rows.Next() {
		var (
			o          entity.Observation
			level      string
			density    sql.NullFloat64
			observedAt time.Time
		)
		if err := rows.Scan(&o.RunID, &o.CameraID, &level, &density, &o.Err, &observedAt); err != nil {
			return nil, fmt.Errorf("scan observation: %w", err)
		}
		o.Level = entity.DensityLevel(level)
		o.Density = density.Float64
		o.ObservedAt = observedAt
		out = append(out, o)
	}
	return out, rows.Err()
}

var _ port.ObservationRepository = (*SQLiteObservationRepository)(nil)
