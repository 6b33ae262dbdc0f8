// Package crypto defines the authenticated encryption contract used to protect reports at rest
// and the sealed payload shape stored next to every report record.
package crypto
