// Package app wires the authenticated cipher and the record repository into the secure report store.
package app
