// Package slog provides log/slog decorators for postport collaborators.
package slog
