// Package lesson defines what a lesson is and keeps the catalogue of
// lessons the CLI can run.
//
// A lesson is just a name, a title and a function that prints to an
// io.Writer. The lesson packages (basics, practice/...) do not know about
// the catalogue; main wires them together, the same way handlers receive
// their dependencies from main instead of reaching for globals.
package lesson

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// RunFunc prints one lesson to w.
type RunFunc func(w io.Writer) error

// Lesson is one runnable exercise.
type Lesson struct {
	Name  string
	Title string
	Run   RunFunc
}

// ErrUnknownLesson is returned when a name is not in the catalogue.
var ErrUnknownLesson = errors.New("unknown lesson")

// Catalogue is an ordered, name-indexed set of lessons.
type Catalogue struct {
	lessons []Lesson
	byName  map[string]int
}

// NewCatalogue builds a catalogue. Order is kept as given; names must be
// unique and non-empty, and every lesson needs a Run function.
func NewCatalogue(lessons ...Lesson) (*Catalogue, error) {
	c := &Catalogue{
		lessons: make([]Lesson, 0, len(lessons)),
		byName:  make(map[string]int, len(lessons)),
	}

	for _, l := range lessons {
		if l.Name == "" {
			return nil, errors.New("lesson.NewCatalogue: lesson with empty name")
		}
		if l.Run == nil {
			return nil, fmt.Errorf("lesson.NewCatalogue: lesson %q has no Run function", l.Name)
		}
		if _, dup := c.byName[l.Name]; dup {
			return nil, fmt.Errorf("lesson.NewCatalogue: duplicate lesson %q", l.Name)
		}
		c.byName[l.Name] = len(c.lessons)
		c.lessons = append(c.lessons, l)
	}

	return c, nil
}

// All returns every lesson in catalogue order. The slice is a copy.
func (c *Catalogue) All() []Lesson {
	out := make([]Lesson, len(c.lessons))
	copy(out, c.lessons)
	return out
}

// Get looks a lesson up by name.
func (c *Catalogue) Get(name string) (Lesson, error) {
	i, ok := c.byName[name]
	if !ok {
		return Lesson{}, fmt.Errorf("%w: %q", ErrUnknownLesson, name)
	}
	return c.lessons[i], nil
}

// Run prints the named lessons to w in the order given. With no names it
// runs the whole catalogue. All names are checked before anything is
// printed, so a typo does not leave half the output behind.
//
// Lessons are separated by a blank line.
func (c *Catalogue) Run(w io.Writer, log *slog.Logger, names ...string) error {
	selected := c.lessons
	if len(names) > 0 {
		selected = make([]Lesson, 0, len(names))
		for _, name := range names {
			l, err := c.Get(name)
			if err != nil {
				return err
			}
			selected = append(selected, l)
		}
	}

	for i, l := range selected {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("lesson %s: %w", l.Name, err)
			}
		}

		log.Debug("running lesson", slog.String("lesson", l.Name))

		if err := l.Run(w); err != nil {
			return fmt.Errorf("lesson %s: %w", l.Name, err)
		}
	}

	log.Info("lessons finished", slog.Int("count", len(selected)))
	return nil
}
