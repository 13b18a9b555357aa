// Package core contains the domain of the library circulation: catalog, borrows and delay penalties.
//
// State is never stored as rows. It is the history of domain events like BorrowRequested or
// DelayPenaltyImposed, from which each decision and each read model projects exactly what it needs.
// Rejected commands are recorded as failure events (e.g. RequestingBorrowFailed) which never take
// part in later decisions.
//
// The package also holds the pure circulation rules shared by several use cases:
// out-days, overdue detection and penalty amounts, plus the domain error taxonomy.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
