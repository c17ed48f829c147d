package btree

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[word, wordSummary]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestCheckEmptyTree(t *testing.T) {
	tree := makeWordTree(t)
	if err := tree.Check(); err != nil {
		t.Fatalf("expected empty tree to be valid, got %v", err)
	}
	if tree.Len() != 0 || tree.Height() != 0 || !tree.IsEmpty() {
		t.Fatalf("unexpected empty tree state len=%d height=%d", tree.Len(), tree.Height())
	}
}

func TestNilTreeReadsAsEmpty(t *testing.T) {
	var tree *Tree[word, wordSummary]
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Fatalf("nil tree should read as empty")
	}
	if !tree.ForEach(func(word) bool { return true }) {
		t.Fatalf("walking a nil tree should succeed")
	}
	if _, err := tree.InsertAt(0, word("a")); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for nil tree insert, got %v", err)
	}
}

func TestCheckManualLeafRoot(t *testing.T) {
	tree := makeWordTree(t)
	tree.root = tree.makeLeaf(words("hello", " world"))
	tree.height = 1
	if err := tree.Check(); err != nil {
		t.Fatalf("expected tree to validate, got %v", err)
	}
	if tree.Len() != 2 {
		t.Fatalf("unexpected item count: %d", tree.Len())
	}
	if s := tree.Summary(); s.Bytes != 11 || s.Items != 2 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestInsertAtNoOpReturnsSameTree(t *testing.T) {
	tree := makeWordTree(t)
	out, err := tree.InsertAt(0)
	if err != nil {
		t.Fatalf("unexpected error for no-op insert: %v", err)
	}
	if out != tree {
		t.Fatalf("expected no-op insert to return the same tree pointer")
	}
}

func TestInsertAtBuildsTreeAndPreservesOriginal(t *testing.T) {
	base := makeWordTree(t)
	t1, err := base.InsertAt(0, words("a", "b", "c")...)
	if err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}
	t2, err := t1.InsertAt(1, word("X"))
	if err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}
	if got := collectWords(base); len(got) != 0 {
		t.Fatalf("base tree changed unexpectedly: %v", got)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, collectWords(t1)); diff != "" {
		t.Fatalf("t1 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "X", "b", "c"}, collectWords(t2)); diff != "" {
		t.Fatalf("t2 mismatch (-want +got):\n%s", diff)
	}
	for _, tree := range []*Tree[word, wordSummary]{t1, t2} {
		if err := tree.Check(); err != nil {
			t.Fatalf("invariant check failed: %v", err)
		}
	}
}

func TestInsertAtRootSplitAndInternalPropagation(t *testing.T) {
	tree := makeWordTree(t)
	// With degree 12, a few hundred items trigger internal split/root growth.
	want := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		want = append(want, strconv.Itoa(i))
	}
	tree = appendAll(t, tree, want...)
	if tree.Height() < 3 {
		t.Fatalf("expected height >= 3 after propagated splits, got %d", tree.Height())
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	if diff := cmp.Diff(want, collectWords(tree)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if s := tree.Summary(); s.Items != 200 {
		t.Fatalf("unexpected summary item count: %d", s.Items)
	}
}

func TestAtMatchesIteration(t *testing.T) {
	tree := makeWordTree(t)
	for i := 0; i < 150; i++ {
		tree = appendAll(t, tree, strconv.Itoa(i))
	}
	for i := 0; i < 150; i++ {
		item, err := tree.At(i)
		if err != nil {
			t.Fatalf("At(%d) failed: %v", i, err)
		}
		if string(item) != strconv.Itoa(i) {
			t.Fatalf("At(%d) = %q", i, item)
		}
	}
	if _, err := tree.At(150); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := tree.At(-1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestDeleteAtKeepsOrderAndPersistence(t *testing.T) {
	base := appendAll(t, makeWordTree(t), "a", "b", "c", "d")
	out, err := base.DeleteAt(1)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "c", "d"}, collectWords(out)); diff != "" {
		t.Fatalf("delete mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, collectWords(base)); diff != "" {
		t.Fatalf("base changed (-want +got):\n%s", diff)
	}
}

func TestDeleteAtBounds(t *testing.T) {
	tree := appendAll(t, makeWordTree(t), "a")
	if _, err := tree.DeleteAt(1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := tree.DeleteAt(-1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestDeleteAtToEmptyTreeNormalizesRoot(t *testing.T) {
	tree := appendAll(t, makeWordTree(t), "a", "b")
	var err error
	for !tree.IsEmpty() {
		tree, err = tree.DeleteAt(0)
		if err != nil {
			t.Fatalf("delete failed: %v", err)
		}
	}
	if tree.Height() != 0 {
		t.Fatalf("expected height 0 for empty tree, got %d", tree.Height())
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("empty tree invalid: %v", err)
	}
}

func TestDeleteAtCascadingUnderflow(t *testing.T) {
	tree := makeWordTree(t)
	model := make([]string, 0, 400)
	for i := 0; i < 400; i++ {
		model = append(model, strconv.Itoa(i))
	}
	tree = appendAll(t, tree, model...)
	startHeight := tree.Height()
	var err error
	// delete from the middle, exercising borrow and merge at all levels
	for len(model) > 3 {
		pos := len(model) / 2
		tree, err = tree.DeleteAt(pos)
		if err != nil {
			t.Fatalf("delete at %d failed: %v", pos, err)
		}
		model = append(model[:pos], model[pos+1:]...)
		if err := tree.Check(); err != nil {
			t.Fatalf("invariants after delete (len=%d): %v", len(model), err)
		}
	}
	if diff := cmp.Diff(model, collectWords(tree)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if tree.Height() >= startHeight {
		t.Fatalf("expected tree to shrink from height %d, got %d", startHeight, tree.Height())
	}
}

func TestForEachStopsEarly(t *testing.T) {
	tree := appendAll(t, makeWordTree(t), "a", "b", "c", "d")
	var seen []string
	complete := tree.ForEach(func(item word) bool {
		seen = append(seen, string(item))
		return item != "b"
	})
	if complete {
		t.Fatalf("expected ForEach to report an aborted walk")
	}
	if diff := cmp.Diff([]string{"a", "b"}, seen); diff != "" {
		t.Fatalf("visited mismatch (-want +got):\n%s", diff)
	}
	if tree.ForEach(nil) {
		t.Fatalf("expected ForEach(nil) to fail")
	}
}
