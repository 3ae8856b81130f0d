package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// CommandEvent is one logged device command.
type CommandEvent struct {
	ID         string
	Gesture    string
	Command    string
	Mode       string
	LedOn      bool
	LedLevel   int
	MotorOn    bool
	MotorLevel int
	CreatedAt  time.Time
}

// EventRepository logs and queries issued commands.
type EventRepository struct {
	db *sql.DB
}

// Events returns the command event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Log inserts a command event. A zero ID is replaced with a fresh UUID; a
// zero CreatedAt is replaced with the current time.
func (r *EventRepository) Log(e *CommandEvent) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO command_log (id, gesture, command, mode, led_on, led_level, motor_on, motor_level, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Gesture, e.Command, e.Mode,
		boolToInt(e.LedOn), e.LedLevel, boolToInt(e.MotorOn), e.MotorLevel,
		e.CreatedAt,
	)
	return err
}

// Recent retrieves the most recent command events, newest first.
func (r *EventRepository) Recent(limit int) ([]*CommandEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, gesture, command, mode, led_on, led_level, motor_on, motor_level, created_at
		 FROM command_log ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*CommandEvent
	for rows.Next() {
		e := &CommandEvent{}
		var ledOn, motorOn int

		err := rows.Scan(&e.ID, &e.Gesture, &e.Command, &e.Mode,
			&ledOn, &e.LedLevel, &motorOn, &e.MotorLevel, &e.CreatedAt)
		if err != nil {
			return nil, err
		}

		e.LedOn = ledOn != 0
		e.MotorOn = motorOn != 0
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// CountByGesture returns how many commands each gesture has triggered.
func (r *EventRepository) CountByGesture() (map[string]int, error) {
	rows, err := r.db.Query(
		`SELECT gesture, COUNT(*) FROM command_log GROUP BY gesture`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var gesture string
		var n int
		if err := rows.Scan(&gesture, &n); err != nil {
			return nil, err
		}
		counts[gesture] = n
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// GetByID retrieves one command event.
func (r *EventRepository) GetByID(id string) (*CommandEvent, error) {
	e := &CommandEvent{}
	var ledOn, motorOn int

	err := r.db.QueryRow(
		`SELECT id, gesture, command, mode, led_on, led_level, motor_on, motor_level, created_at
		 FROM command_log WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.Gesture, &e.Command, &e.Mode,
		&ledOn, &e.LedLevel, &motorOn, &e.MotorLevel, &e.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	e.LedOn = ledOn != 0
	e.MotorOn = motorOn != 0
	return e, nil
}

// Prune deletes events older than the cutoff and returns how many rows
// were removed.
func (r *EventRepository) Prune(before time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM command_log WHERE created_at < ?`, before)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
