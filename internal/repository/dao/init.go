package dao

import (
	"fmt"

	"gorm.io/gorm"
)

type foreignKey struct {
	model     interface{}
	table     string
	name      string
	column    string
	refTable  string
	refColumn string
}

var foreignKeys = []foreignKey{
	{&Event{}, "events", "fk_events_college", "college_id", "colleges", "college_id"},
	{&Student{}, "students", "fk_students_college", "college_id", "colleges", "college_id"},
	{&Registration{}, "registrations", "fk_registrations_event", "event_id", "events", "event_id"},
	{&Registration{}, "registrations", "fk_registrations_student", "student_id", "students", "student_id"},
	{&Attendance{}, "attendance", "fk_attendance_registration", "registration_id", "registrations", "registration_id"},
}

// InitTables migrates the schema. Foreign keys and the partial unique index on
// active registrations are created by hand since gorm tags cannot express them.
func InitTables(db *gorm.DB) error {
	err := db.AutoMigrate(
		&College{},
		&Event{},
		&Student{},
		&Registration{},
		&Attendance{},
	)
	if err != nil {
		return fmt.Errorf("db.AutoMigrate -> %w", err)
	}

	for _, fk := range foreignKeys {
		if db.Migrator().HasConstraint(fk.model, fk.name) {
			continue
		}

		stmt := fmt.Sprintf(
			"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s)",
			fk.table, fk.name, fk.column, fk.refTable, fk.refColumn,
		)
		if err = db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("db.Exec(%s) -> %w", fk.name, err)
		}
	}

	// A cancelled registration frees the pair, so the student can register again with a new row.
	err = db.Exec(fmt.Sprintf(
		"CREATE UNIQUE INDEX IF NOT EXISTS %s ON registrations (event_id, student_id) WHERE status = 'registered'",
		uqRegistrationsActivePair,
	)).Error
	if err != nil {
		return fmt.Errorf("db.Exec(%s) -> %w", uqRegistrationsActivePair, err)
	}

	return nil
}

// ClearData deletes every row, children first. The schema is kept.
func ClearData(db *gorm.DB) error {
	for _, table := range []string{"attendance", "registrations", "students", "events", "colleges"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("db.Exec(delete %s) -> %w", table, err)
		}
	}

	return nil
}

func dropAllTables(db *gorm.DB) error {
	var tableNames []string
	if err := db.Table("information_schema.tables").
		Where("table_schema = ?", "public").
		Pluck("table_name", &tableNames).Error; err != nil {
		return err
	}

	for _, tableName := range tableNames {
		if err := db.Exec("DROP TABLE IF EXISTS " + tableName + " CASCADE").Error; err != nil {
			return err
		}
	}

	return nil
}
