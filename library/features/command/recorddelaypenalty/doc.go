// Package recorddelaypenalty implements the Record Delay Penalty use case.
//
// Returning an overdue borrow already imposes its penalty. This use case records the penalty
// for a returned borrow explicitly and is idempotent: an existing penalty stays unchanged and a
// borrow that was returned in time produces nothing.
package recorddelaypenalty
