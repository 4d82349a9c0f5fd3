// Package service implements the application's business rules on top of the
// store interfaces. Services own existence and uniqueness checks and leave
// persistence details to the injected stores.
package service
