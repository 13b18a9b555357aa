// Package addbooktocatalog implements the Add Book to Catalog use case.
//
// A book has a number of fungible copies, a type and a set of tags. The ISBN is unique
// and all referenced tags must exist. Adding the same BookID again is a no-op.
package addbooktocatalog
