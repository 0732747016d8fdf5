// Package common holds process-wide helpers shared by the binaries: logger
// setup and build metadata.
package common
