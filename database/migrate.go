package database

import (
	"log"

	"gorm.io/gorm"
)

// schemaFixes are idempotent statements that repair schemas created by
// earlier releases: text columns that were created too narrow, and course
// rows persisted without a title before the write-time validation existed.
var schemaFixes = []string{
	"ALTER TABLE courses ALTER COLUMN thumbnail_url TYPE TEXT",
	"ALTER TABLE courses ALTER COLUMN description TYPE TEXT",
	"ALTER TABLE courses ALTER COLUMN category TYPE TEXT",
	"DELETE FROM courses WHERE title IS NULL",
}

// RunSchemaFixes applies each fix on a best-effort basis. A statement may
// fail on an already-fixed schema or on a database that does not support the
// syntax; the error is logged and the next fix still runs.
func RunSchemaFixes(db *gorm.DB) {
	for _, stmt := range schemaFixes {
		if err := db.Exec(stmt).Error; err != nil {
			log.Printf("Schema fix skipped (%s): %v", stmt, err)
		}
	}
}
