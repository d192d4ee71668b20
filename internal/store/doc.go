// Package store defines the persistence interfaces and sentinel errors used by
// the credential service. Implementations live under internal/platform.
package store
