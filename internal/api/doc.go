// Package api handles incoming HTTP requests: routing glue, request-body
// validation against declarative schemas, central error classification, and
// formatting every result into the uniform response envelope. It acts as an
// adapter between external clients and the internal application services.
package api
