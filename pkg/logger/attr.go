package logger

import "log/slog"

// Error returns the conventional attribute for an error value.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

// ActorID returns the conventional attribute for the acting identity.
func ActorID(id string) slog.Attr {
	return slog.String("actor_id", id)
}

// Component returns the conventional attribute naming the emitting
// subsystem.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
