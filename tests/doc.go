// Package tests holds the self-validation suite: it exercises every
// fixture the kit provides and checks the project's own configuration
// files for the expected markers.
package tests
