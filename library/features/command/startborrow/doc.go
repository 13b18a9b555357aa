// Package startborrow implements the Start Borrow use case: the book is handed over to the student
// and the borrow moves from Requested to Delivered with the agreed duration in days.
package startborrow
