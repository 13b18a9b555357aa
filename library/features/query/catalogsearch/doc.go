// Package catalogsearch implements the Catalog Search query use case.
//
// The term matches case-insensitively against title, ISBN and authors.
// Types and TagIDs each match when the book has any of the given values, empty means no restriction.
package catalogsearch
