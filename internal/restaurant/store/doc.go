// Package store implements the restaurant and menu store on top of DynamoDB,
// plus an in-memory variant for local runs and tests.
//
// Restaurants are keyed by "id". Menu items are keyed by the partition key
// "restaurant_id" and the sort key "id". Absent records are reported as
// pkgerror.ErrNotFound so callers can tell them apart from store failures.
package store
