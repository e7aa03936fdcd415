// Package log builds [log/slog] handlers from level and format strings.
//
// Handlers are backed by [github.com/charmbracelet/log], which renders
// colored text on terminals and plain logfmt or JSON elsewhere.
package log
