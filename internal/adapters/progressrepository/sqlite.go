package progressrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
	"github.com/ltnguyen/hanhtrinh/internal/reporting"
	"github.com/ltnguyen/hanhtrinh/internal/strutils"
)

// NewSQLiteDatabase opens (or creates) a local save file. This is the backend
// for offline play; the schema mirrors the postgres saves table.
func NewSQLiteDatabase(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open save file: %w", err)
	}

	_, err = db.Exec(
		`CREATE TABLE IF NOT EXISTS saves (
			slot_id TEXT PRIMARY KEY,
			data_format_version INTEGER NOT NULL,
			last_played TIMESTAMP NOT NULL,
			save_data BLOB NOT NULL
		)`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create saves table: %w", err)
	}

	return db, nil
}

// SQLiteProgressRepository stores save slots in a local file.
type SQLiteProgressRepository struct {
	db *sqlx.DB
}

func NewSQLiteProgressRepository(db *sqlx.DB) *SQLiteProgressRepository {
	return &SQLiteProgressRepository{db}
}

func (s *SQLiteProgressRepository) GetGameState(ctx context.Context, slotID string) (domain.GameState, error) {
	if !strutils.UUIDIsNormalized(slotID) {
		err := fmt.Errorf("slot id is not normalized")
		reporting.Report(ctx, err, map[string]string{
			"slotID": slotID,
		})
		return domain.GameState{}, err
	}

	var save dbSave
	err := s.db.QueryRowxContext(
		ctx,
		"SELECT slot_id, data_format_version, last_played, save_data FROM saves WHERE slot_id = ?",
		slotID,
	).StructScan(&save)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.GameState{}, domain.ErrSaveNotFound
	}
	if err != nil {
		return domain.GameState{}, fmt.Errorf("failed to query save: %w", err)
	}

	state, err := stateFromDataStorage(save.SaveData, save.DataFormatVersion, save.LastPlayed)
	if err != nil {
		err := fmt.Errorf("failed to decode save: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"slotID":            slotID,
			"dataFormatVersion": fmt.Sprintf("%d", save.DataFormatVersion),
		})
		return domain.GameState{}, err
	}

	return state, nil
}

func (s *SQLiteProgressRepository) StoreGameState(ctx context.Context, slotID string, state domain.GameState) error {
	if !strutils.UUIDIsNormalized(slotID) {
		err := fmt.Errorf("slot id is not normalized")
		reporting.Report(ctx, err, map[string]string{
			"slotID": slotID,
		})
		return err
	}

	saveData, err := stateToDataStorage(state)
	if err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO saves (slot_id, data_format_version, last_played, save_data)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (slot_id) DO UPDATE SET
			data_format_version = excluded.data_format_version,
			last_played = excluded.last_played,
			save_data = excluded.save_data`,
		slotID,
		DATA_FORMAT_VERSION,
		state.LastPlayed,
		saveData,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert save: %w", err)
	}

	return nil
}

func (s *SQLiteProgressRepository) DeleteGameState(ctx context.Context, slotID string) error {
	if !strutils.UUIDIsNormalized(slotID) {
		err := fmt.Errorf("slot id is not normalized")
		reporting.Report(ctx, err, map[string]string{
			"slotID": slotID,
		})
		return err
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM saves WHERE slot_id = ?", slotID)
	if err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrSaveNotFound
	}
	return nil
}
