// Package icon renders a string as a grid of on/off cells, one per bit of its
// UTF-8 encoding.
package icon

import (
	"errors"
	"fmt"
	"image"
	imgcolor "image/color"
	"io"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/jsvensson/wordhue/internal/color"
	"github.com/jsvensson/wordhue/internal/words"
)

// MaxSize bounds the edge length of a rendered icon in pixels.
const MaxSize = 4096

var (
	// ErrNoBits is returned when there is nothing to draw.
	ErrNoBits = errors.New("icon: no bits to draw")
	// ErrTooLarge is returned when the icon would exceed MaxSize on either edge.
	ErrTooLarge = errors.New("icon: image too large")
)

// Options controls icon rendering. Zero values select the defaults.
type Options struct {
	// BitSize is the edge length of one cell in pixels. Defaults to 1.
	BitSize int
	// Width, when set, overrides BitSize so the grid is roughly Width pixels wide.
	Width int
	// Background fills cells past the last bit. Defaults to gray.
	Background *color.Color
	// On and Off fill set and unset bits. Default to black and white.
	On  *color.Color
	Off *color.Color

	// WordMode renders the tokenized words joined by commas instead of the raw text.
	WordMode bool
	// Sort orders words in WordMode.
	Sort bool
}

var (
	defaultBackground = color.Color{R: 128, G: 128, B: 128}
	defaultOn         = color.Color{}
	defaultOff        = color.Color{R: 255, G: 255, B: 255}
)

func pick(c *color.Color, def color.Color) imgcolor.NRGBA {
	if c != nil {
		def = *c
	}
	return imgcolor.NRGBA{R: def.R, G: def.G, B: def.B, A: 0xff}
}

// BitArray lists the bits of each byte of s, least significant first. Leading
// zero bits are not emitted, so a zero byte contributes nothing.
func BitArray(s string) []int {
	var bits []int
	for _, b := range []byte(s) {
		for shifted := b; shifted > 0; shifted >>= 1 {
			bits = append(bits, int(shifted&1))
		}
	}
	return bits
}

// Grid returns the column and row count used to lay out n bits: the grid is
// as square as possible with ceil(sqrt(n)) columns.
func Grid(n int) (cols, rows int) {
	if n <= 0 {
		return 0, 0
	}
	cols = int(math.Ceil(math.Sqrt(float64(n))))
	rows = (n + cols - 1) / cols
	return cols, rows
}

// Build draws bits row by row, left to right.
func Build(bits []int, opts Options) (image.Image, error) {
	if len(bits) == 0 {
		return nil, ErrNoBits
	}

	cols, rows := Grid(len(bits))
	bitSize := opts.BitSize
	if opts.Width > 0 {
		bitSize = int(math.Round(float64(opts.Width) / float64(cols)))
	}
	if bitSize < 1 {
		bitSize = 1
	}
	// Checked before multiplying so huge sizes cannot overflow.
	if opts.Width > MaxSize || bitSize > MaxSize || cols*bitSize > MaxSize || rows*bitSize > MaxSize {
		return nil, fmt.Errorf("%w: %d bits at %dpx per bit exceeds %dpx", ErrTooLarge, len(bits), bitSize, MaxSize)
	}

	bg := pick(opts.Background, defaultBackground)
	on := pick(opts.On, defaultOn)
	off := pick(opts.Off, defaultOff)

	grid := imaging.New(cols, rows, bg)
	for i, bit := range bits {
		fill := off
		if bit == 1 {
			fill = on
		}
		grid.SetNRGBA(i%cols, i/cols, fill)
	}

	if bitSize == 1 {
		return grid, nil
	}
	return imaging.Resize(grid, cols*bitSize, rows*bitSize, imaging.NearestNeighbor), nil
}

// FromString builds the icon for text. In WordMode the text is tokenized with
// tok first.
func FromString(text string, tok *words.Tokenizer, opts Options) (image.Image, error) {
	if opts.WordMode {
		text = strings.Join(tok.Words(text, opts.Sort), ",")
	}
	return Build(BitArray(text), opts)
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}
