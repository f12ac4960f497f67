package migrations

import "embed"

// FS holds the SQL migration files in this directory. They are applied
// on startup through golang-migrate's iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the application expects. Bump it when
// adding a migration pair.
const Version = 1
