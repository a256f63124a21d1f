package mapping

import (
	"errors"
	"fmt"
	"math"

	"github.com/jsvensson/wordhue/internal/color"
	"github.com/jsvensson/wordhue/internal/words"
)

// ErrEmptyInput is matched by EmptyInputError with errors.Is.
var ErrEmptyInput = errors.New("no words to color")

// EmptyInputError is returned when aggregation is left with zero words.
type EmptyInputError struct {
	Text string
}

func (e *EmptyInputError) Error() string {
	if e.Text == "" {
		return ErrEmptyInput.Error()
	}
	return fmt.Sprintf("%s: %q has no usable words", ErrEmptyInput, e.Text)
}

func (e *EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// DefaultLerp is the interpolation fraction used when Options.LerpT is zero.
const DefaultLerp = 0.5

// Transform is applied to every per-word color before it is blended.
type Transform func(color.Color) color.Color

// Options controls word aggregation. The zero value aggregates unsorted words
// halfway toward each next word with no transform.
type Options struct {
	// Sort orders tokenized words before aggregation. Only FromText tokenizes.
	Sort bool
	// LerpT is the fraction moved toward each next word, in (0, 1]. Zero means DefaultLerp.
	LerpT float64
	// Transform runs on each word's color; nil means identity.
	Transform Transform
	// Sampler maps each word to a color; nil means SampleSpread.
	Sampler Sampler
}

func (o Options) lerp() (float64, error) {
	if o.LerpT == 0 {
		return DefaultLerp, nil
	}
	if o.LerpT < 0 || o.LerpT > 1 || math.IsNaN(o.LerpT) {
		return 0, fmt.Errorf("lerp %v out of range (0, 1]", o.LerpT)
	}
	return o.LerpT, nil
}

func (o Options) wordColor(word string) color.Color {
	c := FromStringWith(word, o.Sampler)
	if o.Transform != nil {
		c = o.Transform(c)
	}
	return c
}

// FromText tokenizes text with tok and aggregates the resulting words.
// A nil tok filters nothing.
func FromText(text string, tok *words.Tokenizer, opts Options) (color.Color, error) {
	list := tok.Words(text, opts.Sort)
	if len(list) == 0 {
		return color.Color{}, &EmptyInputError{Text: text}
	}
	return FromWords(list, opts)
}

// FromWords blends the colors of list in order: the running color starts at
// the first word's color and moves LerpT of the way toward each next word's
// color. The result depends on word order.
func FromWords(list []string, opts Options) (color.Color, error) {
	if len(list) == 0 {
		return color.Color{}, &EmptyInputError{}
	}
	t, err := opts.lerp()
	if err != nil {
		return color.Color{}, err
	}

	c := opts.wordColor(list[0])
	for _, w := range list[1:] {
		c.MoveTowards(opts.wordColor(w), t)
	}
	return c, nil
}
