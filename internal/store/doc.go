// Package store provides persistent storage for hirelane using SQLite.
//
// # Architecture
//
// The store package uses an interface-driven architecture with specialized
// interfaces:
//
//   - UserStore: Account records and credential lookup for the auth layer
//   - JobStore: Job postings
//   - ApplicationStore: Job applications
//
// SQLiteStore implements all interfaces in a single struct, allowing easy
// composition while maintaining clear interface boundaries.
//
// # SQLite Configuration
//
// The store uses SQLite with WAL mode for concurrent reads:
//
//	PRAGMA journal_mode=WAL;
//	PRAGMA foreign_keys=ON;
//
// # Error Handling
//
// Common errors:
//
//   - ErrUserNotFound: Requested user does not exist
//   - ErrEmailExists: Email is already registered
//   - ErrJobNotFound: Requested job does not exist
//   - ErrApplicationNotFound: Requested application does not exist
//
// All methods accept context.Context for cancellation support.
//
// # Testing
//
// Use NewMockStore() for unit tests:
//
//	store := store.NewMockStore()
//	// store implements all Store interfaces
//
// Use NewSQLiteStore(":memory:") for integration tests with real SQLite.
//
// # Password Hashes
//
// GetUser and GetUserByEmail never populate PasswordHash; only
// GetUserByEmailWithPassword does, and only the login path should call it.
// User marshals to JSON without the hash.
package store
