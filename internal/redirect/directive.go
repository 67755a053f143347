package redirect

import "strings"

// DirectiveKind tags the decoded form of a redirection directive.
type DirectiveKind int

const (
	// KindNone means no override: default selection proceeds.
	KindNone DirectiveKind = iota
	// KindServe requests a specific question ID be served next.
	KindServe
)

// Directive is the decoded form of a raw directive string.
// Raw directives are parsed once at load time; anything that is not a
// recognizable "serve <question-id>" decodes to KindNone.
type Directive struct {
	Kind       DirectiveKind
	QuestionID string
}

// None is the zero directive.
var None = Directive{Kind: KindNone}

// Serve builds a serve directive for the given question ID.
func Serve(questionID string) Directive {
	return Directive{Kind: KindServe, QuestionID: questionID}
}

// IsServe reports whether the directive requests a specific question.
func (d Directive) IsServe() bool {
	return d.Kind == KindServe && d.QuestionID != ""
}

// parseDirective decodes a raw directive string.
//
// Accepted shapes: "serve Q2.0", "Serve (Q2.0)". The keyword match is
// case-insensitive and parentheses around the ID are stripped. Empty,
// malformed, or unrecognized values degrade to None, never an error.
func parseDirective(raw string) Directive {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return None
	}

	fields := strings.Fields(raw)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "serve") {
		return None
	}

	id := strings.TrimSpace(strings.Trim(fields[1], "()"))
	if id == "" {
		return None
	}
	return Serve(id)
}
