// Package version provides version information for fivesquare.
//
// Version and Revision are normally stamped at build time. When Revision is
// not stamped, it is read from the VCS information embedded by the Go
// toolchain, if present.
package version
