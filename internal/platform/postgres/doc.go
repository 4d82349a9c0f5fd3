// Package postgres implements the internal/store interfaces over PostgreSQL,
// accessed through gorm. It also owns connecting the pool, schema auto-sync
// for development, and the embedded goose migrations used in production.
package postgres
