// Package model defines the database records for sharegate.
//
// Records map to PostgreSQL tables via GORM. The closed enums (Status,
// Visibility, ResourceKind) are generated with enumer and implement
// sql.Scanner/driver.Valuer so the database only ever sees their string
// forms.
package model
