// Package delaypenalties implements the Delay Penalties query use case.
package delaypenalties
