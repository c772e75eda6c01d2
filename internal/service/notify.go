package service

import (
	"fmt"
	"io"
	"log/slog"
)

// Notifier presents a transient user-facing message.
type Notifier interface {
	Notify(title, description string)
}

type WriterNotifier struct {
	w io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(title, description string) {
	fmt.Fprintf(n.w, "%s: %s\n", title, description)
}

// LogNotifier routes notifications to a structured logger instead of the terminal.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(title, description string) {
	n.logger.Info("notification", "title", title, "description", description)
}
