// Package numfile reads integers from and writes results to plain text files.
//
// Failures are reported with the file variants of [squareerrors]: a file that
// cannot be opened or created is a [squareerrors.FileOpenError], malformed
// content is a [squareerrors.FileReadError], and a failed write is a
// [squareerrors.FileWriteError]. File handles are always released before
// returning.
package numfile
