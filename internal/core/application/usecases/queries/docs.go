// Package queries contains the read side. Handlers read straight from the
// database with raw SQL and return response structs shaped for transport;
// they never load aggregates and never write.
package queries
