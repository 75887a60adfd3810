// Package types defines the Store interface, entity types, the acting
// subject model, and standard errors for the voyager relational core.
package types
