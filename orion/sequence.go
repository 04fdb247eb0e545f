package orion

import (
	"fmt"
	"log/slog"
	"slices"
	"time"
)

// StepError reports the setup step that failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// sequence runs setup steps strictly in order and remembers how to
// release what they created.
type sequence struct {
	completed []string
	releasers []func()
}

func (s *sequence) step(name string, fn func() error) error {
	slog.Info("Starting step", slog.String("step", name))

	startTime := time.Now()

	if err := fn(); err != nil {
		slog.Error("Step failed", slog.String("step", name), slog.Any("err", err))
		return &StepError{Step: name, Err: err}
	}

	s.completed = append(s.completed, name)

	slog.Debug(
		"Step done",
		slog.String("step", name),
		slog.Duration("duration", time.Since(startTime)),
	)

	return nil
}

func (s *sequence) onRelease(fn func()) {
	s.releasers = append(s.releasers, fn)
}

// release runs all release functions in reverse order of registration.
func (s *sequence) release() {
	for _, fn := range slices.Backward(s.releasers) {
		fn()
	}

	s.releasers = nil
}
