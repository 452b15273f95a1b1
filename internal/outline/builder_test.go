package outline

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"
)

func TestBuild_SinglePageEmitsOneHeading(t *testing.T) {
	page := []Line{
		{Text: "Annual Report", Size: 24, Top: 50},
		{Text: "INTRODUCTION", Size: 16, Top: 100},
		{Text: "Body text for the introduction.", Size: 10, Top: 130},
		{Text: "BACKGROUND", Size: 16, Top: 300},
	}
	doc := Build([][]Line{page}, DefaultOptions())

	if doc.Title != "Annual Report" {
		t.Errorf("expected title %q, got %q", "Annual Report", doc.Title)
	}
	want := []Entry{{Level: H1, Text: "INTRODUCTION", Page: 0}}
	if !reflect.DeepEqual(doc.Outline, want) {
		t.Errorf("expected %+v, got %+v", want, doc.Outline)
	}
}

func TestBuild_SinglePageGuards(t *testing.T) {
	page := []Line{
		{Text: "Community Flyer", Size: 24, Top: 50},
		{Text: "MISSION STATEMENT", Size: 16, Top: 100},
		{Text: "Lowercase Heading", Size: 16, Top: 200},
		{Text: "ONE TWO THREE FOUR FIVE SIX SEVEN EIGHT NINE", Size: 16, Top: 300},
		{Text: "GOALS", Size: 16, Top: 400},
	}
	doc := Build([][]Line{page}, DefaultOptions())

	want := []Entry{{Level: H1, Text: "GOALS", Page: 0}}
	if !reflect.DeepEqual(doc.Outline, want) {
		t.Errorf("expected %+v, got %+v", want, doc.Outline)
	}
}

func TestBuild_SinglePageWithoutStrictMode(t *testing.T) {
	opts := DefaultOptions()
	opts.SinglePageStrict = false
	page := []Line{
		{Text: "Flyer", Size: 24, Top: 50},
		{Text: "Where to go", Size: 16, Top: 100},
		{Text: "When to arrive", Size: 16, Top: 200},
	}
	doc := Build([][]Line{page}, opts)

	want := []Entry{
		{Level: H2, Text: "Where to go", Page: 0},
		{Level: H2, Text: "When to arrive", Page: 0},
	}
	if !reflect.DeepEqual(doc.Outline, want) {
		t.Errorf("expected %+v, got %+v", want, doc.Outline)
	}
}

func TestBuild_MultiPage(t *testing.T) {
	pages := [][]Line{
		{
			{Text: "Foundation Syllabus", Size: 24, Top: 100},
			{Text: "Version 2024", Size: 16, Top: 300},
		},
		{
			{Text: "1 Introduction", Size: 16, Top: 100},
			{Text: "Some body text.", Size: 10, Top: 130},
			{Text: "1.1 Scope", Size: 14, Top: 200},
		},
		{
			{Text: "1 Introduction", Size: 16, Top: 20},
			{Text: "2 Methods", Size: 16, Top: 80},
			{Text: "Page 2 of 3", Size: 14, Top: 700},
		},
	}
	doc := Build(pages, DefaultOptions())

	if doc.Title != "Foundation Syllabus" {
		t.Errorf("expected title %q, got %q", "Foundation Syllabus", doc.Title)
	}
	want := []Entry{
		{Level: H1, Text: "1 Introduction", Page: 1},
		{Level: H2, Text: "1.1 Scope", Page: 1},
		{Level: H1, Text: "2 Methods", Page: 2},
	}
	if !reflect.DeepEqual(doc.Outline, want) {
		t.Errorf("expected %+v, got %+v", want, doc.Outline)
	}
}

func TestBuild_MultiPageFirstPageDropped(t *testing.T) {
	pages := [][]Line{
		{
			{Text: "Big Title", Size: 24, Top: 100},
			{Text: "Prominent Subtitle", Size: 18, Top: 200},
			{Text: "OVERVIEW", Size: 16, Top: 400},
		},
		{
			{Text: "Just body text here.", Size: 10, Top: 100},
		},
	}
	doc := Build(pages, DefaultOptions())
	if len(doc.Outline) != 0 {
		t.Errorf("expected empty outline, got %+v", doc.Outline)
	}
	if doc.Outline == nil {
		t.Error("expected non-nil outline slice")
	}
}

// Page-0 headings are recorded as seen before the page is dropped, so a
// repeat on a later page is suppressed too.
func TestBuild_FirstPageHeadingSuppressesLaterRepeat(t *testing.T) {
	pages := [][]Line{
		{
			{Text: "Handbook", Size: 24, Top: 50},
			{Text: "Overview", Size: 16, Top: 100},
		},
		{
			{Text: "Overview", Size: 16, Top: 50},
			{Text: "Details", Size: 16, Top: 200},
			{Text: "Body text.", Size: 10, Top: 230},
		},
	}

	doc := Build(pages, DefaultOptions())
	want := []Entry{{Level: H1, Text: "Details", Page: 1}}
	if !reflect.DeepEqual(doc.Outline, want) {
		t.Errorf("expected %+v, got %+v", want, doc.Outline)
	}

	opts := DefaultOptions()
	opts.DropFirstPage = false
	doc = Build(pages, opts)
	want = []Entry{
		{Level: H2, Text: "Overview", Page: 0},
		{Level: H1, Text: "Details", Page: 1},
	}
	if !reflect.DeepEqual(doc.Outline, want) {
		t.Errorf("expected %+v, got %+v", want, doc.Outline)
	}
}

func TestBuild_PageOffset(t *testing.T) {
	opts := DefaultOptions()
	opts.PageOffset = 1
	pages := [][]Line{
		{
			{Text: "Report", Size: 24, Top: 50},
			{Text: "OVERVIEW", Size: 16, Top: 200},
		},
		{
			{Text: "DETAILS", Size: 16, Top: 100},
		},
	}
	doc := Build(pages, opts)

	want := []Entry{
		{Level: H2, Text: "OVERVIEW", Page: 1},
		{Level: H1, Text: "DETAILS", Page: 2},
	}
	if !reflect.DeepEqual(doc.Outline, want) {
		t.Errorf("expected %+v, got %+v", want, doc.Outline)
	}
}

func TestBuild_KeepFirstPageWhenToggledOff(t *testing.T) {
	opts := DefaultOptions()
	opts.DropFirstPage = false
	pages := [][]Line{
		{
			{Text: "Report", Size: 24, Top: 50},
			{Text: "OVERVIEW", Size: 16, Top: 200},
		},
		{{Text: "body", Size: 10, Top: 100}},
	}
	doc := Build(pages, opts)
	want := []Entry{{Level: H2, Text: "OVERVIEW", Page: 0}}
	if !reflect.DeepEqual(doc.Outline, want) {
		t.Errorf("expected %+v, got %+v", want, doc.Outline)
	}
}

func TestBuild_FallbackTitle(t *testing.T) {
	doc := Build([][]Line{{{Text: "only body", Size: 10}}}, DefaultOptions())
	if doc.Title != FallbackTitle {
		t.Errorf("expected %q, got %q", FallbackTitle, doc.Title)
	}

	empty := Build(nil, DefaultOptions())
	if empty.Title != FallbackTitle || len(empty.Outline) != 0 {
		t.Errorf("expected fallback title and empty outline, got %+v", empty)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	pages := [][]Line{
		{{Text: "Guide", Size: 24, Top: 50}},
		{
			{Text: "1 Setup", Size: 16, Top: 100},
			{Text: "1.1 Install", Size: 14, Top: 160},
			{Text: "1.2 Configure", Size: 14, Top: 220},
		},
	}
	first, err := json.Marshal(Build(pages, DefaultOptions()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	second, err := json.Marshal(Build(pages, DefaultOptions()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("expected identical output, got\n%s\n%s", first, second)
	}
}

func TestDocument_JSONShape(t *testing.T) {
	doc := Document{
		Title:   "T",
		Outline: []Entry{{Level: H3, Text: "Deep", Page: 4}},
	}
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"title":"T","outline":[{"level":"H3","text":"Deep","page":4}]}`
	if string(b) != want {
		t.Errorf("expected %s, got %s", want, b)
	}

	var back Document
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Outline[0].Level != H3 {
		t.Errorf("expected H3 after round trip, got %s", back.Outline[0].Level)
	}
}

func TestOptions_Validate(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Fatalf("expected defaults to be valid, got %v", err)
	}

	bad := []func(*Options){
		func(o *Options) { o.MaxLevels = 5 },
		func(o *Options) { o.MaxLevels = 2 },
		func(o *Options) { o.PageOffset = -1 },
		func(o *Options) { o.FallbackSizeRatio = 0 },
		func(o *Options) { o.TitleMaxLines = 0 },
		func(o *Options) { o.MergeDistance = -1 },
	}
	for i, mutate := range bad {
		o := DefaultOptions()
		mutate(&o)
		if err := o.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}
