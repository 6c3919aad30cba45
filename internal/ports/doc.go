// Package ports defines the interfaces (ports) that connect the
// application core to infrastructure adapters.
//
// Ports are the boundaries between the calendar core and the outside
// world. They define what the core needs from external systems without
// specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [Repository]: Persists and loads the calendar entry set
//
// The core depends only on these interfaces. Infrastructure adapters
// (internal/adapters) implement them with concrete implementations
// (file system, etc.), which keeps the core testable with in-memory
// fakes and keeps the dependency direction pointing inward.
package ports
