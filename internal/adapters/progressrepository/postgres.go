package progressrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ltnguyen/hanhtrinh/internal/domain"
	"github.com/ltnguyen/hanhtrinh/internal/reporting"
	"github.com/ltnguyen/hanhtrinh/internal/strutils"
)

const MAIN_SCHEMA = "hanhtrinh"
const TESTING_SCHEMA = "hanhtrinh_test"

func GetSchemaName(isTesting bool) string {
	if isTesting {
		return TESTING_SCHEMA
	}
	return MAIN_SCHEMA
}

type PostgresProgressRepository struct {
	db     *sqlx.DB
	schema string
}

func NewPostgresProgressRepository(db *sqlx.DB, schema string) *PostgresProgressRepository {
	return &PostgresProgressRepository{db, schema}
}

type dbSave struct {
	SlotID            string    `db:"slot_id"`
	DataFormatVersion int       `db:"data_format_version"`
	LastPlayed        time.Time `db:"last_played"`
	SaveData          []byte    `db:"save_data"`
}

func (p *PostgresProgressRepository) GetGameState(ctx context.Context, slotID string) (domain.GameState, error) {
	if !strutils.UUIDIsNormalized(slotID) {
		err := fmt.Errorf("slot id is not normalized")
		reporting.Report(ctx, err, map[string]string{
			"slotID": slotID,
		})
		return domain.GameState{}, err
	}

	txx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		err := fmt.Errorf("failed to start transaction: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"slotID": slotID,
		})
		return domain.GameState{}, err
	}
	defer txx.Rollback()

	_, err = txx.ExecContext(ctx, fmt.Sprintf("SET search_path TO %s", pq.QuoteIdentifier(p.schema)))
	if err != nil {
		err := fmt.Errorf("failed to set search path: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"slotID": slotID,
		})
		return domain.GameState{}, err
	}

	var save dbSave
	err = txx.QueryRowxContext(
		ctx,
		"SELECT slot_id, data_format_version, last_played, save_data FROM saves WHERE slot_id = $1",
		slotID,
	).StructScan(&save)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.GameState{}, domain.ErrSaveNotFound
	}
	if err != nil {
		err := fmt.Errorf("failed to query save: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"slotID": slotID,
		})
		return domain.GameState{}, err
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

func (p *PostgresProgressRepository) StoreGameState(ctx context.Context, slotID string, state domain.GameState) error {
	if !strutils.UUIDIsNormalized(slotID) {
		err := fmt.Errorf("slot id is not normalized")
		reporting.Report(ctx, err, map[string]string{
			"slotID": slotID,
		})
		return err
	}

	saveData, err := stateToDataStorage(state)
	if err != nil {
		err := fmt.Errorf("failed to encode save: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"slotID": slotID,
		})
		return err
	}

	txx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		err := fmt.Errorf("failed to start transaction: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"slotID": slotID,
		})
		return err
	}
	defer txx.Rollback()

	_, err = txx.ExecContext(ctx, fmt.Sprintf("SET search_path TO %s", pq.QuoteIdentifier(p.schema)))
	if err != nil {
		err := fmt.Errorf("failed to set search path: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"slotID": slotID,
		})
		return err
	}

	_, err = txx.ExecContext(
		ctx,
		`INSERT INTO saves (slot_id, data_format_version, last_played, save_data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (slot_id) DO UPDATE SET
			data_format_version = EXCLUDED.data_format_version,
			last_played = EXCLUDED.last_played,
			save_data = EXCLUDED.save_data`,
		slotID,
		DATA_FORMAT_VERSION,
		state.LastPlayed,
		saveData,
	)
	if err != nil {
		err := fmt.Errorf("failed to upsert save: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"slotID": slotID,
		})
		return err
	}

	if err := txx.Commit(); err != nil {
		err := fmt.Errorf("failed to commit transaction: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"slotID": slotID,
		})
		return err
	}

	return nil
}

func (p *PostgresProgressRepository) DeleteGameState(ctx context.Context, slotID string) error {
	if !strutils.UUIDIsNormalized(slotID) {
		err := fmt.Errorf("slot id is not normalized")
		reporting.Report(ctx, err, map[string]string{
			"slotID": slotID,
		})
		return err
	}

	txx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		err := fmt.Errorf("failed to start transaction: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"slotID": slotID,
		})
		return err
	}
	defer txx.Rollback()

	_, err = txx.ExecContext(ctx, fmt.Sprintf("SET search_path TO %s", pq.QuoteIdentifier(p.schema)))
	if err != nil {
		err := fmt.Errorf("failed to set search path: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"slotID": slotID,
		})
		return err
	}

	result, err := txx.ExecContext(ctx, "DELETE FROM saves WHERE slot_id = $1", slotID)
	if err != nil {
		err := fmt.Errorf("failed to delete save: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"slotID": slotID,
		})
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("failed to read affected rows: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"slotID": slotID,
		})
		return err
	}

	if err := txx.Commit(); err != nil {
		err := fmt.Errorf("failed to commit transaction: %w", err)
		reporting.Report(ctx, err, map[string]string{
			"slotID": slotID,
		})
		return err
	}

	if affected == 0 {
		return domain.ErrSaveNotFound
	}
	return nil
}
