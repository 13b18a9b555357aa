// Package borrowlist implements the Borrow List query use case.
package borrowlist
