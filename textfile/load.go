package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/elements/btree"
	"github.com/npillmayer/elements/bytestr"
)

// DefaultBatch is the number of lines between two progress messages.
const DefaultBatch = 1024

// maxLine is the longest line a Loader accepts, in bytes.
const maxLine = 1 << 20

// Progress is broadcast to subscribers while a Loader reads lines.
type Progress struct {
	Name       string // file name, empty for plain readers
	Lines      int    // lines read so far
	Duplicates int    // lines skipped as duplicates
	Done       bool   // set for the final message of a load
	Err        error  // error a load failed with, if any
}

// Loader reads text into string trees and broadcasts its progress.
type Loader struct {
	Batch int // lines between progress messages; DefaultBatch if 0
	cast  *caster.Caster
}

// NewLoader creates a loader. The broadcaster of the loader stops when ctx is
// cancelled; ctx may be nil.
func NewLoader(ctx context.Context) *Loader {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Loader{cast: caster.New(ctx)}
}

// Subscribe returns a channel receiving Progress messages. capacity is the
// number of messages buffered for the subscriber; publishing blocks while the
// buffer is full. ok is false if the loader has been closed.
func (l *Loader) Subscribe(ctx context.Context, capacity uint) (sub <-chan interface{}, ok bool) {
	return l.cast.Sub(ctx, capacity)
}

// Close stops broadcasting and closes all subscriber channels.
func (l *Loader) Close() {
	l.cast.Close()
}

// Load reads the regular file name into a tree.
func (l *Loader) Load(name string) (*bytestr.Tree, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("textfile: %s is not a regular file", name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tracer().Debugf("textfile: loading %s (%d bytes)", name, fi.Size())
	return l.read(name, f)
}

// Read reads lines from r into a tree.
func (l *Loader) Read(r io.Reader) (*bytestr.Tree, error) {
	if r == nil {
		return nil, errors.New("textfile: reader is nil")
	}
	return l.read("", r)
}

func (l *Loader) read(name string, r io.Reader) (*bytestr.Tree, error) {
	batch := l.Batch
	if batch <= 0 {
		batch = DefaultBatch
	}
	tree := bytestr.NewTree()
	progress := Progress{Name: name}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLine)
	for scanner.Scan() {
		progress.Lines++
		next, err := tree.Insert(bytestr.FromBytes(scanner.Bytes()))
		if errors.Is(err, btree.ErrDuplicateItem) {
			progress.Duplicates++
		} else if err != nil {
			return nil, l.fail(progress, err)
		} else {
			tree = next
		}
		if progress.Lines%batch == 0 {
			l.cast.Pub(progress)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, l.fail(progress, err)
	}
	progress.Done = true
	l.cast.Pub(progress)
	tracer().Infof("textfile: %d lines, %d duplicates", progress.Lines, progress.Duplicates)
	return tree, nil
}

func (l *Loader) fail(progress Progress, err error) error {
	if progress.Name != "" {
		err = fmt.Errorf("textfile: %s, line %d: %w", progress.Name, progress.Lines, err)
	}
	tracer().Errorf("%v", err)
	progress.Done, progress.Err = true, err
	l.cast.Pub(progress)
	return err
}

// Load reads the regular file name into a tree, without progress messages.
func Load(name string) (*bytestr.Tree, error) {
	l := NewLoader(context.Background())
	defer l.Close()
	return l.Load(name)
}
