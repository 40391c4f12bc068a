// Package types defines the value records produced by the numerology
// engine and the standard errors shared across the arquetipo packages.
// Every type here is a transient, immutable snapshot computed fresh per
// report; no entity has an identity beyond its lookup key.
package types
