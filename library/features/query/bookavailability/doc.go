// Package bookavailability implements the Book Availability query use case.
//
// A book is available while fewer of its borrows are active than it has copies.
// A borrow is active from BorrowRequested until BorrowReturned.
package bookavailability
