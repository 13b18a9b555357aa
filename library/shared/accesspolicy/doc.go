// Package accesspolicy decides which actor may perform which action.
//
// Authorize is a pure function. The command and query handlers never call it,
// the HTTP adapter does before it invokes a handler.
package accesspolicy
