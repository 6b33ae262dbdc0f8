// Package models holds the GORM row types for encrypted reports.
// Rows convert to and from the reports domain entity and never leave the persistence layer.
package models
