// Package session is the dashboard's identity stub: one hardcoded
// credential pair, one serialized User record held under a fixed key in a
// key-value store, no token and no expiry.
//
// This provides zero real access control. The stored record is trusted
// as-is on every request. Do not port this pattern to a system that needs
// actual authentication.
package session
