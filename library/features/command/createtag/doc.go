// Package createtag implements the Create Tag use case.
//
// Tags are attached to catalog books and drive the related-books read model.
// Tag names are unique (case-sensitive). Creating the same TagID again is a no-op.
package createtag
