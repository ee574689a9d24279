package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates JSONB GIN indexes for PostgreSQL. These enable
// efficient entity lookups across alert and evidence payloads and are not
// expressible in the Ent schema.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Entity containment queries over alert snapshots
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_investigations_alert_entities_gin
		ON investigations USING gin(alert_entities jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create alert_entities GIN index: %w", err)
	}

	// Entity containment queries over evidence rows
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_evidences_entities_gin
		ON evidences USING gin(entities jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create evidence entities GIN index: %w", err)
	}

	// Free-text evidence payload search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_evidences_payload_gin
		ON evidences USING gin(payload)`)
	if err != nil {
		return fmt.Errorf("failed to create evidence payload GIN index: %w", err)
	}

	return nil
}
