// Package persistence provides the report record repositories.
// GORM backs the postgres and sqlite variants and bbolt backs the embedded
// single-file variant. Driver errors are translated into the errors of the
// reports package before they leave this package.
package persistence
