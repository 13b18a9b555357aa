// Package shell contains the infrastructure shared by all features of the library circulation:
// mapping between domain events and storable events, command retries, and the observability helpers
// used by the observable wrappers.
//
// Nothing in here contains business rules, those live in core and in the feature packages.
package shell
