package core

import (
	"strings"

	"github.com/feedbacklab/feedbacklab/internal/types"
)

// Content prefixes for the overlay table. A single comments table carries
// four logical post kinds, distinguished only by these markers.
const (
	prefixFAQ     = "FAQ:"
	prefixDevPost = "DEVPOST:"
	prefixUpdate  = "UPDATE:"

	faqAnswerSeparator = "\nANSWER: "
	titleBodySeparator = "\n\n"
)

// DecodedPost is the logical (kind, title, body) triple stored in one
// content string. Title is nil for discussion posts.
type DecodedPost struct {
	Kind  types.PostKind
	Title *string
	Body  string
}

// EncodePost serializes a logical post into the single content field.
// Discussion posts are stored verbatim with no marker. Encoding never
// fails; callers validate title/body before reaching the codec.
func EncodePost(kind types.PostKind, title, body string) string {
	switch kind {
	case types.KindUpdate:
		return prefixUpdate + " " + title + titleBodySeparator + body
	case types.KindDevPost:
		return prefixDevPost + " " + title + titleBodySeparator + body
	case types.KindFAQ:
		return prefixFAQ + " " + title + faqAnswerSeparator + body
	default:
		return body
	}
}

// DecodePost classifies a stored content string and extracts title and
// body. Decoding is total: unrecognized content becomes a discussion post
// with the raw text as body. Classification checks FAQ, then DEVPOST, then
// UPDATE; first match wins, so an FAQ whose question mentions "DEVPOST:"
// stays an FAQ.
//
// Known limitation, preserved from the stored data format: the title/body
// split for updates and dev posts is the first blank line. A title
// containing a literal "\n\n" corrupts the split, and an FAQ question
// containing "\nANSWER: " truncates early. Bodies may contain blank lines
// freely; everything after the first separator survives verbatim.
func DecodePost(content string) DecodedPost {
	switch {
	case strings.HasPrefix(content, prefixFAQ):
		rest := stripMarker(content, prefixFAQ)
		question, answer, found := strings.Cut(rest, faqAnswerSeparator)
		if !found {
			answer = ""
		}
		return DecodedPost{Kind: types.KindFAQ, Title: &question, Body: answer}
	case strings.HasPrefix(content, prefixDevPost):
		title, body := splitTitleBody(stripMarker(content, prefixDevPost))
		return DecodedPost{Kind: types.KindDevPost, Title: &title, Body: body}
	case strings.HasPrefix(content, prefixUpdate):
		title, body := splitTitleBody(stripMarker(content, prefixUpdate))
		return DecodedPost{Kind: types.KindUpdate, Title: &title, Body: body}
	default:
		return DecodedPost{Kind: types.KindDiscussion, Body: content}
	}
}

// ClassifyContent returns only the kind of a stored content string.
func ClassifyContent(content string) types.PostKind {
	switch {
	case strings.HasPrefix(content, prefixFAQ):
		return types.KindFAQ
	case strings.HasPrefix(content, prefixDevPost):
		return types.KindDevPost
	case strings.HasPrefix(content, prefixUpdate):
		return types.KindUpdate
	default:
		return types.KindDiscussion
	}
}

func stripMarker(content, marker string) string {
	rest := strings.TrimPrefix(content, marker)
	return strings.TrimPrefix(rest, " ")
}

func splitTitleBody(rest string) (string, string) {
	title, body, found := strings.Cut(rest, titleBodySeparator)
	if !found {
		return rest, ""
	}
	return title, body
}
