// Package types defines the order journal interface, the Order entity,
// journal configuration, and the standard errors for the fooditems journal.
package types
