package btree

import (
	"strings"
	"testing"
)

// word is a test item summarized by item and byte count.
type word string

type wordSummary struct {
	Items uint64
	Bytes uint64
}

func (w word) Summary() wordSummary {
	return wordSummary{Items: 1, Bytes: uint64(len(w))}
}

type wordMonoid struct{}

func (wordMonoid) Zero() wordSummary { return wordSummary{} }

func (wordMonoid) Add(left, right wordSummary) wordSummary {
	return wordSummary{Items: left.Items + right.Items, Bytes: left.Bytes + right.Bytes}
}

type byteDimension struct{}

func (byteDimension) Zero() uint64 { return 0 }

func (byteDimension) Add(acc uint64, summary wordSummary) uint64 {
	return acc + summary.Bytes
}

func (byteDimension) Compare(acc uint64, target uint64) int {
	switch {
	case acc < target:
		return -1
	case acc > target:
		return 1
	default:
		return 0
	}
}

func compareWords(a, b word) int {
	return strings.Compare(string(a), string(b))
}

func makeWordTree(t testing.TB) *Tree[word, wordSummary] {
	t.Helper()
	tree, err := New(Config[word, wordSummary]{
		Monoid: wordMonoid{},
	})
	if err != nil {
		t.Fatalf("failed to create tree: %v", err)
	}
	return tree
}

func makeOrderedWordTree(t testing.TB, destroy func(word)) *Tree[word, wordSummary] {
	t.Helper()
	tree, err := New(Config[word, wordSummary]{
		Monoid:  wordMonoid{},
		Compare: compareWords,
		Destroy: destroy,
	})
	if err != nil {
		t.Fatalf("failed to create ordered tree: %v", err)
	}
	return tree
}

func words(strs ...string) []word {
	out := make([]word, 0, len(strs))
	for _, s := range strs {
		out = append(out, word(s))
	}
	return out
}

func collectWords(tree *Tree[word, wordSummary]) []string {
	var out []string
	tree.ForEachItem(func(item word) bool {
		out = append(out, string(item))
		return true
	})
	return out
}

func appendAll(t testing.TB, tree *Tree[word, wordSummary], strs ...string) *Tree[word, wordSummary] {
	t.Helper()
	var err error
	for _, s := range strs {
		tree, err = tree.InsertAt(tree.Len(), word(s))
		if err != nil {
			t.Fatalf("insert %q failed: %v", s, err)
		}
	}
	return tree
}
