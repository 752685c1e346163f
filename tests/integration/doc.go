// Package integration holds cross-package tests. Files other than this
// marker carry the integration build tag and run only when requested.
package integration
