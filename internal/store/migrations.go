package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Command log - one row per command issued to the device peer
		`CREATE TABLE IF NOT EXISTS command_log (
			id TEXT PRIMARY KEY,
			gesture TEXT NOT NULL,
			command TEXT NOT NULL,
			mode TEXT NOT NULL CHECK(mode IN ('LED', 'MOTOR')),
			led_on INTEGER NOT NULL,
			led_level INTEGER NOT NULL,
			motor_on INTEGER NOT NULL,
			motor_level INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_command_log_created_at ON command_log(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_command_log_gesture ON command_log(gesture)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
