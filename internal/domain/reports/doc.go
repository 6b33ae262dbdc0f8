// Package reports defines the encrypted report record, the contracts of the record repository
// and the secure report store, and the errors they return.
package reports
