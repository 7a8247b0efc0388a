package lesson

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func printer(text string) RunFunc {
	return func(w io.Writer) error {
		_, err := fmt.Fprintln(w, text)
		return err
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestCatalogue(t *testing.T) *Catalogue {
	t.Helper()
	c, err := NewCatalogue(
		Lesson{Name: "one", Title: "First", Run: printer("1")},
		Lesson{Name: "two", Title: "Second", Run: printer("2")},
		Lesson{Name: "three", Title: "Third", Run: printer("3")},
	)
	require.NoError(t, err)
	return c
}

func TestNewCatalogue_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		lessons []Lesson
		wantErr string
	}{
		{"empty name", []Lesson{{Run: printer("x")}}, "empty name"},
		{"missing run", []Lesson{{Name: "a"}}, `lesson "a" has no Run function`},
		{"duplicate", []Lesson{{Name: "a", Run: printer("x")}, {Name: "a", Run: printer("y")}}, `duplicate lesson "a"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalogue(tt.lessons...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCatalogue_AllKeepsOrder(t *testing.T) {
	c := newTestCatalogue(t)

	var names []string
	for _, l := range c.All() {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"one", "two", "three"}, names)

	// Changing the copy does not change the catalogue.
	c.All()[0].Name = "changed"
	assert.Equal(t, "one", c.All()[0].Name)
}

func TestCatalogue_Get(t *testing.T) {
	c := newTestCatalogue(t)

	l, err := c.Get("two")
	require.NoError(t, err)
	assert.Equal(t, "Second", l.Title)

	_, err = c.Get("four")
	require.ErrorIs(t, err, ErrUnknownLesson)
	assert.Contains(t, err.Error(), `"four"`)
}

func TestCatalogue_Run(t *testing.T) {
	c := newTestCatalogue(t)

	t.Run("everything", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, c.Run(&buf, discardLogger()))
		assert.Equal(t, "1\n\n2\n\n3\n", buf.String())
	})

	t.Run("named, in the given order", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, c.Run(&buf, discardLogger(), "three", "one"))
		assert.Equal(t, "3\n\n1\n", buf.String())
	})

	t.Run("unknown name prints nothing", func(t *testing.T) {
		var buf bytes.Buffer
		err := c.Run(&buf, discardLogger(), "one", "nope")
		require.ErrorIs(t, err, ErrUnknownLesson)
		assert.Empty(t, buf.String())
	})
}

func TestCatalogue_RunWrapsLessonError(t *testing.T) {
	boom := errors.New("boom")
	c, err := NewCatalogue(
		Lesson{Name: "ok", Run: printer("fine")},
		Lesson{Name: "bad", Run: func(io.Writer) error { return boom }},
		Lesson{Name: "never", Run: printer("unreachable")},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = c.Run(&buf, discardLogger())
	require.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "lesson bad: boom")
	assert.NotContains(t, buf.String(), "unreachable")
}

func TestCatalogue_RunLogsEachLesson(t *testing.T) {
	c := newTestCatalogue(t)

	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	require.NoError(t, c.Run(io.Discard, log, "two"))
	assert.Contains(t, logs.String(), "msg=\"running lesson\" lesson=two")
	assert.Contains(t, logs.String(), "count=1")
}
