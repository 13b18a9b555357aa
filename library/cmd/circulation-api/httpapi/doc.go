// Package httpapi exposes the command and query handlers of the circulation engine over HTTP.
//
// The caller is identified by the X-Actor-ID and X-Actor-Role headers, set by an authenticating proxy.
// Every route authorizes the actor with the accesspolicy package before it calls a handler.
package httpapi
