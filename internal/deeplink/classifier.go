package deeplink

import (
	"net/url"
	"regexp"
	"strings"
)

// Dialect is the closed set of recognized link shapes.
type Dialect int

const (
	DialectNmap Dialect = iota + 1
	DialectIntent
	DialectWebDirections
	DialectShortlink
	DialectWeb
)

func (d Dialect) String() string {
	switch d {
	case DialectNmap:
		return "nmap"
	case DialectIntent:
		return "intent"
	case DialectWebDirections:
		return "web-directions"
	case DialectShortlink:
		return "shortlink"
	case DialectWeb:
		return "web"
	default:
		return "unknown"
	}
}

// Web directions URL variants.
const (
	VariantV5 = "v5"
	VariantP  = "p"
)

// Link is a classified raw link.
type Link struct {
	Dialect Dialect
	// Text is the working text after token extraction; decoders read it instead of the raw input.
	Text string
	// ModalityWord and Query are set for DialectNmap and DialectIntent.
	ModalityWord string
	Query        string
	// Variant is set for DialectWebDirections.
	Variant string
}

var (
	schemePrefixRe   = regexp.MustCompile(`(?i)^(?:nmap|intent|https?)://`)
	embeddedSchemeRe = regexp.MustCompile(`(?i)(?:nmap|intent|https?)://[^\s<>"` + "`" + `]+`)
	bareHostRe       = regexp.MustCompile(`(?i)\b(?:naver\.me|map\.naver\.com)/[^\s<>"` + "`" + `]*`)

	nmapRe          = regexp.MustCompile(`(?i)^nmap://route/([a-z]+)\?(.+)$`)
	intentRe        = regexp.MustCompile(`(?i:^intent://route/([a-z]+)\?)(.+?)#Intent`)
	webDirectionsRe = regexp.MustCompile(`(?i)^https?://map\.naver\.com/(v5|p)/directions/`)
	shortlinkRe     = regexp.MustCompile(`(?i)^https?://naver\.me/`)
)

const tokenTrailingPunct = ".,;:!?)]}>'"

// Classify determines the dialect of raw, extracting an embedded link from surrounding prose.
func Classify(raw string) (*Link, error) {
	text := extractToken(strings.TrimSpace(raw))

	if m := nmapRe.FindStringSubmatch(text); m != nil {
		return &Link{Dialect: DialectNmap, Text: text, ModalityWord: m[1], Query: m[2]}, nil
	}

	if m := intentRe.FindStringSubmatch(text); m != nil {
		return &Link{Dialect: DialectIntent, Text: text, ModalityWord: m[1], Query: m[2]}, nil
	}

	if variant, ok := matchWebDirections(text); ok {
		return &Link{Dialect: DialectWebDirections, Text: text, Variant: variant}, nil
	}

	if shortlinkRe.MatchString(text) {
		return &Link{Dialect: DialectShortlink, Text: text}, nil
	}

	if isNaverURL(text) {
		return &Link{Dialect: DialectWeb, Text: text}, nil
	}

	return nil, &ClassificationError{Raw: raw}
}

// extractToken keeps text that already starts with a link scheme byte for byte.
// Only a token pulled out of surrounding prose loses its trailing punctuation.
func extractToken(text string) string {
	if schemePrefixRe.MatchString(text) {
		return text
	}

	if token := embeddedSchemeRe.FindString(text); token != "" {
		return strings.TrimRight(token, tokenTrailingPunct)
	}

	if token := bareHostRe.FindString(text); token != "" {
		return "https://" + strings.TrimRight(token, tokenTrailingPunct)
	}

	return text
}

func matchWebDirections(text string) (variant string, ok bool) {
	m := webDirectionsRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}

	return strings.ToLower(m[1]), true
}

func isNaverURL(text string) bool {
	u, err := url.Parse(text)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	return strings.Contains(strings.ToLower(u.Hostname()), "naver.")
}
