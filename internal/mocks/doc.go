// Package mocks provides test doubles for the store and auth collaborators.
// Mocks use function fields so tests can override individual behaviors while
// keeping sensible map-backed defaults.
package mocks
