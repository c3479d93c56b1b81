// Package pkgrouter serves JSON handlers on top of httprouter.
//
// A Handler returns a payload, which is encoded as the whole response body,
// or an error, which becomes {"message": ...} with the status picked by
// pkgerror. Every route runs behind panic recovery, correlation IDs, and a
// one-line access log.
package pkgrouter
