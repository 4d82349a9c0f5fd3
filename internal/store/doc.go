// Package store defines the persistence interfaces and the sentinel errors
// their implementations must translate backend failures into. Keeping the
// interfaces here lets the service layer stay independent of the database
// technology behind them.
package store
