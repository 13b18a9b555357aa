// Package relatedbooks implements the Related Books query use case.
//
// Two books are related when they have the same book type and share at least one tag.
// The result is ordered by the number of shared tags, most first, and then by catalog order.
package relatedbooks
