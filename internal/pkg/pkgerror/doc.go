// Package pkgerror holds the one error type handlers return.
//
// Stores signal a missing key with ErrNotFound. The usecase layer turns that,
// a blank parameter, or a failed store call into an *Error whose Code picks
// the HTTP status and whose Msg becomes the {"message"} body.
package pkgerror
