// Package createborrow implements the Create Borrow use case, the entry point of the borrow lifecycle.
//
// A student may borrow a book when the book exists, the student has no active borrow and no unpaid
// delay penalty, and fewer borrows of the book are active than it has copies. All of these facts are
// part of one consistency boundary: a concurrent borrow of the same book or by the same student makes
// the append fail, and the retry re-evaluates the rules against the fresh history.
//
// Replaying a command with the same BorrowID is a no-op.
package createborrow
