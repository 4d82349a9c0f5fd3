// Package mocks provides centralized test doubles for the store interfaces.
//
// Instead of defining inline fakes in individual test files, the in-memory
// implementations here are shared across test packages so that service and
// handler tests exercise the same persistence semantics.
package mocks
