package pkglog

import "context"

type cidKey struct{}

// WithCorrelationID returns a copy of ctx whose log records carry cid as _cID.
func WithCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, cidKey{}, cid)
}

// CorrelationID returns the ID stored by WithCorrelationID, or "" when ctx
// did not come from an HTTP request.
func CorrelationID(ctx context.Context) string {
	cid, _ := ctx.Value(cidKey{}).(string)
	return cid
}
