package reader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/Pratikdalwadi/docground/format"
	"github.com/Pratikdalwadi/docground/layout"
	"github.com/Pratikdalwadi/docground/model"
)

// ErrNoPages is returned when an input holds no pages
var ErrNoPages = errors.New("no pages found")

// Open reads the recognizer output in filename. The format is detected
// from the content first and the extension second. Page images have no
// words; they yield one empty page carrying the image dimensions.
func Open(filename string) ([]layout.PageInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	f := format.DetectFromMagic(data)
	if f == format.Unknown {
		f = format.Detect(filename)
	}
	return Read(bytes.NewReader(data), f)
}

// Read parses recognizer output of the given format from r
func Read(r io.Reader, f format.Format) ([]layout.PageInput, error) {
	switch {
	case f == format.JSON:
		return ReadJSON(r)
	case f == format.HOCR:
		return ReadHOCR(r)
	case f.IsImage():
		size, err := ReadImageSize(r)
		if err != nil {
			return nil, err
		}
		return []layout.PageInput{size.PageInput(1, "image")}, nil
	default:
		return nil, fmt.Errorf("cannot read %s input: %w", f, format.ErrUnsupported)
	}
}

// pageSet collects word sources by page number, keeping each page's
// sources in the order they were seen
type pageSet struct {
	pages map[int]*layout.PageInput
}

func newPageSet() *pageSet {
	return &pageSet{pages: make(map[int]*layout.PageInput)}
}

func (s *pageSet) add(number int, src model.WordSource) {
	p, ok := s.pages[number]
	if !ok {
		p = &layout.PageInput{Number: number}
		s.pages[number] = p
	}
	p.Sources = append(p.Sources, src)
}

// inputs returns the pages sorted by page number
func (s *pageSet) inputs() []layout.PageInput {
	out := make([]layout.PageInput, 0, len(s.pages))
	for _, p := range s.pages {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Number < out[j].Number
	})
	return out
}
