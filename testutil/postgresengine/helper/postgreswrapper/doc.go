// Package postgreswrapper provides test utilities for abstracting over different PostgreSQL database adapters.
//
// The same store test suite runs against pgx, sql.DB and sqlx.DB. The adapter is selected
// by the ADAPTER_TYPE environment variable (pgx.pool, sql.db, sqlx.db), pgx.pool being the default.
//
// Usage:
//
//	wrapper := CreateWrapperWithTestConfig(t)
//	defer wrapper.Close()
//
//	CleanUp(t, wrapper)
//	store := wrapper.GetStore()
package postgreswrapper
