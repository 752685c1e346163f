// Package unit holds unit tests that exercise single packages in
// isolation.
package unit
