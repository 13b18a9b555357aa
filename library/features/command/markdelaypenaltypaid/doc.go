// Package markdelaypenaltypaid implements the Mark Delay Penalty Paid use case.
// Payment itself happens elsewhere, the engine only records the flag.
package markdelaypenaltypaid
