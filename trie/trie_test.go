package trie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlds/trie"
)

func TestTrie_Search(t *testing.T) {
	dict := trie.New("hello", "goodbye", "helpful")

	cases := []struct {
		value     string
		wholeWord bool
		want      bool
	}{
		{"hello", true, true},
		{"help", true, false},
		{"help", false, true},
		{"good", false, true},
		{"goodbye", true, true},
		{"hellos", true, false},
		{"x", false, false},
		{"", false, true},
		{"", true, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, dict.Search(tc.value, tc.wholeWord), "Search(%q, %v)", tc.value, tc.wholeWord)
	}
}

func TestTrie_AddDuplicateAndLen(t *testing.T) {
	dict := trie.New()
	assert.True(t, dict.Add("go"))
	assert.False(t, dict.Add("go"))
	assert.True(t, dict.Add("gopher"))
	assert.Equal(t, 2, dict.Len())
	assert.True(t, dict.Contains("go"))
}

func TestTrie_Words(t *testing.T) {
	dict := trie.New("car", "cart", "carbon", "dog", "日本", "日本語")

	assert.Equal(t, []string{"car", "carbon", "cart"}, dict.Words("car"))
	assert.Equal(t, []string{"日本", "日本語"}, dict.Words("日"))
	assert.Nil(t, dict.Words("zebra"))
	assert.Len(t, dict.Words(""), 6)
}
