package core

import (
	"testing"

	"github.com/feedbacklab/feedbacklab/internal/types"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		kind  types.PostKind
		title string
		body  string
	}{
		{"discussion", types.KindDiscussion, "", "Nice work!"},
		{"discussion multiline", types.KindDiscussion, "", "line one\nline two"},
		{"update", types.KindUpdate, "Beta launched", "We shipped the beta today."},
		{"devpost", types.KindDevPost, "Migration notes", "Switched the queue to streaming."},
		{"faq", types.KindFAQ, "Is this free?", "Yes."},
		{"update single-newline body", types.KindUpdate, "T", "a\nb\nc"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			encoded := EncodePost(test.kind, test.title, test.body)
			decoded := DecodePost(encoded)

			if decoded.Kind != test.kind {
				t.Fatalf("kind = %s, want %s", decoded.Kind, test.kind)
			}
			if test.kind == types.KindDiscussion {
				if decoded.Title != nil {
					t.Fatalf("discussion title = %q, want nil", *decoded.Title)
				}
			} else {
				if decoded.Title == nil || *decoded.Title != test.title {
					t.Fatalf("title = %v, want %q", decoded.Title, test.title)
				}
			}
			if decoded.Body != test.body {
				t.Fatalf("body = %q, want %q", decoded.Body, test.body)
			}
		})
	}
}

func TestDecodePostIsTotal(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"\n\n",
		"FAQ:",
		"FAQ: ",
		"FAQ:no space",
		"DEVPOST:",
		"UPDATE:",
		"UPDATE:   \n\n",
		"plain: text: with: colons",
		"faq: lowercase is not a marker",
		"ANSWER: orphaned answer line",
		"UPDATE: title only, no separator",
	}

	valid := map[types.PostKind]bool{
		types.KindDiscussion: true,
		types.KindUpdate:     true,
		types.KindFAQ:        true,
		types.KindDevPost:    true,
	}

	for _, input := range inputs {
		decoded := DecodePost(input)
		if !valid[decoded.Kind] {
			t.Fatalf("DecodePost(%q) kind = %q, not a known kind", input, decoded.Kind)
		}
	}
}

func TestDecodeLowercaseMarkerIsDiscussion(t *testing.T) {
	decoded := DecodePost("faq: lowercase is not a marker")
	if decoded.Kind != types.KindDiscussion {
		t.Fatalf("kind = %s, want discussion", decoded.Kind)
	}
	if decoded.Body != "faq: lowercase is not a marker" {
		t.Fatalf("body = %q, want verbatim content", decoded.Body)
	}
}

func TestClassificationPriority(t *testing.T) {
	decoded := DecodePost("FAQ: DEVPOST: trick\nANSWER: x")
	if decoded.Kind != types.KindFAQ {
		t.Fatalf("kind = %s, want faq", decoded.Kind)
	}
	if decoded.Title == nil || *decoded.Title != "DEVPOST: trick" {
		t.Fatalf("question = %v, want %q", decoded.Title, "DEVPOST: trick")
	}
	if decoded.Body != "x" {
		t.Fatalf("answer = %q, want %q", decoded.Body, "x")
	}

	decoded = DecodePost("DEVPOST: mentions UPDATE: inside\n\nbody")
	if decoded.Kind != types.KindDevPost {
		t.Fatalf("kind = %s, want devpost", decoded.Kind)
	}
}

func TestDecodeFAQWithoutAnswer(t *testing.T) {
	decoded := DecodePost("FAQ: Where is the roadmap?")
	if decoded.Kind != types.KindFAQ {
		t.Fatalf("kind = %s, want faq", decoded.Kind)
	}
	if decoded.Title == nil || *decoded.Title != "Where is the roadmap?" {
		t.Fatalf("question = %v", decoded.Title)
	}
	if decoded.Body != "" {
		t.Fatalf("answer = %q, want empty", decoded.Body)
	}
}

func TestDecodeUpdateWithoutBlankLine(t *testing.T) {
	decoded := DecodePost("UPDATE: just a title")
	if decoded.Kind != types.KindUpdate {
		t.Fatalf("kind = %s, want update", decoded.Kind)
	}
	if decoded.Title == nil || *decoded.Title != "just a title" {
		t.Fatalf("title = %v", decoded.Title)
	}
	if decoded.Body != "" {
		t.Fatalf("body = %q, want empty", decoded.Body)
	}
}

func TestDecodeBodyKeepsInternalBlankLines(t *testing.T) {
	decoded := DecodePost("UPDATE: T\n\npara one\n\npara two")
	if decoded.Body != "para one\n\npara two" {
		t.Fatalf("body = %q, want both paragraphs", decoded.Body)
	}
}

// A title containing a blank line corrupts the split. This is the stored
// format's documented limitation, not something the decoder repairs.
func TestDecodeTitleWithBlankLineCorrupts(t *testing.T) {
	encoded := EncodePost(types.KindUpdate, "part one\n\npart two", "body")
	decoded := DecodePost(encoded)
	if decoded.Title == nil || *decoded.Title != "part one" {
		t.Fatalf("title = %v, want truncated %q", decoded.Title, "part one")
	}
	if decoded.Body != "part two\n\nbody" {
		t.Fatalf("body = %q, want leaked title remainder", decoded.Body)
	}
}

func TestFAQScenario(t *testing.T) {
	encoded := EncodePost(types.KindFAQ, "Is this free?", "Yes.")
	if encoded != "FAQ: Is this free?\nANSWER: Yes." {
		t.Fatalf("encoded = %q", encoded)
	}

	decoded := DecodePost(encoded)
	if decoded.Kind != types.KindFAQ || decoded.Title == nil || *decoded.Title != "Is this free?" || decoded.Body != "Yes." {
		t.Fatalf("decoded = %+v", decoded)
	}
}

func TestDiscussionScenario(t *testing.T) {
	encoded := EncodePost(types.KindDiscussion, "", "Nice work!")
	if encoded != "Nice work!" {
		t.Fatalf("encoded = %q, want no marker", encoded)
	}

	decoded := DecodePost(encoded)
	if decoded.Kind != types.KindDiscussion || decoded.Title != nil || decoded.Body != "Nice work!" {
		t.Fatalf("decoded = %+v", decoded)
	}
}

func TestClassifyContent(t *testing.T) {
	tests := []struct {
		content string
		want    types.PostKind
	}{
		{"FAQ: q\nANSWER: a", types.KindFAQ},
		{"DEVPOST: t\n\nb", types.KindDevPost},
		{"UPDATE: t\n\nb", types.KindUpdate},
		{"hello", types.KindDiscussion},
		{"", types.KindDiscussion},
	}

	for _, test := range tests {
		if got := ClassifyContent(test.content); got != test.want {
			t.Errorf("ClassifyContent(%q) = %s, want %s", test.content, got, test.want)
		}
	}
}
