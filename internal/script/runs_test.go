package script

import (
	"reflect"
	"testing"

	"github.com/ppiankov/lidspan/internal/model"
)

func TestSplit_MixedLatinWithPunctuation(t *testing.T) {
	runs := NewSplitter(nil).Split("Hola amigo, how are you?")

	want := []Run{
		{Script: model.ScriptLatin, Start: 0, End: 10},
		{Script: model.ScriptCommon, Start: 10, End: 12},
		{Script: model.ScriptLatin, Start: 12, End: 24},
	}
	if !reflect.DeepEqual(runs, want) {
		t.Errorf("Split() = %+v, want %+v", runs, want)
	}
}

func TestSplit_HanAndLatin(t *testing.T) {
	// Offsets are code points, not bytes
	runs := NewSplitter(nil).Split("你好，world!")

	want := []Run{
		{Script: model.ScriptHan, Start: 0, End: 2},
		{Script: model.ScriptCommon, Start: 2, End: 3},
		{Script: model.ScriptLatin, Start: 3, End: 9},
	}
	if !reflect.DeepEqual(runs, want) {
		t.Errorf("Split() = %+v, want %+v", runs, want)
	}
}

func TestSplit_AllCommon(t *testing.T) {
	runs := NewSplitter(nil).Split("12, 34.")

	want := []Run{
		{Script: model.ScriptCommon, Start: 0, End: 7},
	}
	if !reflect.DeepEqual(runs, want) {
		t.Errorf("Split() = %+v, want %+v", runs, want)
	}
}

func TestSplit_Empty(t *testing.T) {
	if runs := NewSplitter(nil).Split(""); len(runs) != 0 {
		t.Errorf("Split(\"\") = %+v, want no runs", runs)
	}
}

func TestSplit_SeparatorsStayInsideScriptRun(t *testing.T) {
	runs := NewSplitter(nil).Split("how are you")

	want := []Run{
		{Script: model.ScriptLatin, Start: 0, End: 11},
	}
	if !reflect.DeepEqual(runs, want) {
		t.Errorf("Split() = %+v, want %+v", runs, want)
	}
}

func TestSplit_TrailingPunctuationFoldsIntoScriptRun(t *testing.T) {
	runs := NewSplitter(nil).Split("hello!")

	want := []Run{
		{Script: model.ScriptLatin, Start: 0, End: 6},
	}
	if !reflect.DeepEqual(runs, want) {
		t.Errorf("Split() = %+v, want %+v", runs, want)
	}
}

func TestSplit_ScriptChange(t *testing.T) {
	// No separator between scripts: runs abut directly
	runs := NewSplitter(nil).Split("abcдва")

	want := []Run{
		{Script: model.ScriptLatin, Start: 0, End: 3},
		{Script: model.ScriptCyrillic, Start: 3, End: 6},
	}
	if !reflect.DeepEqual(runs, want) {
		t.Errorf("Split() = %+v, want %+v", runs, want)
	}
}

func TestSplit_UnmatchedCharacterDroppedAndSplits(t *testing.T) {
	// U+0301 combining acute matches no script table and no Common
	// category: it is excluded from every run and splits its neighbors
	runs := NewSplitter(nil).Split("a\u0301b")

	want := []Run{
		{Script: model.ScriptLatin, Start: 0, End: 1},
		{Script: model.ScriptLatin, Start: 2, End: 3},
	}
	if !reflect.DeepEqual(runs, want) {
		t.Errorf("Split() = %+v, want %+v", runs, want)
	}
}

func TestSplit_OrderedAndNonOverlapping(t *testing.T) {
	texts := []string{
		"Hola amigo, how are you?",
		"你好，world! 12, 34. привет",
		"a\u0301b 日本語 ok?!",
	}

	s := NewSplitter(nil)
	for _, text := range texts {
		runs := s.Split(text)
		for i, run := range runs {
			if run.Start >= run.End {
				t.Errorf("Split(%q): run %d is empty: %+v", text, i, run)
			}
			if i > 0 && runs[i-1].End > run.Start {
				t.Errorf("Split(%q): runs %d and %d overlap: %+v %+v",
					text, i-1, i, runs[i-1], run)
			}
		}
	}
}
