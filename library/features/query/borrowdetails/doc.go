// Package borrowdetails implements the Borrow Details query use case.
//
// Out-days and the overdue flag of a borrow that was not returned yet are computed against the query's Now.
package borrowdetails
