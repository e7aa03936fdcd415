// Package squareerrors provides the error taxonomy for fivesquare.
//
// Logic errors describe an input that failed validation, and file errors
// describe a failure reading or writing one of the program's files. Every
// variant renders its own human-readable message and can be matched against
// its sentinel kind with [errors.Is].
package squareerrors
