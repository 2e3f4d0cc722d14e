// Package http contains the HTTP transport layer of the filmorate server:
// the chi router, the REST handlers for films, users, genres and MPA
// ratings, and the request middleware (trace id propagation, request
// logging, panic recovery).
//
// Handlers decode JSON bodies into the domain models, delegate to the
// service layer, and translate domain errors to HTTP statuses through
// statusFromError. They carry no business logic of their own.
package http
