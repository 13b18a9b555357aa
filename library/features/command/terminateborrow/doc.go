// Package terminateborrow implements the Terminate Borrow use case: the student returns the book.
//
// When the borrow is overdue, the DelayPenaltyImposed event is appended in the same atomic append
// as BorrowReturned, so a returned overdue borrow never exists without its penalty.
package terminateborrow
