// Package config loads and validates application settings from environment
// variables, providing type-safe access for the rest of the application
// while keeping configuration details out of business logic.
package config
