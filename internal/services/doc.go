// Package services defines the shared error taxonomy and context
// annotation helpers for the organize engine. Sentinel errors let callers
// classify a failure (pre-flight rejection, planning fault, bad
// configuration) without matching on message text.
package services
