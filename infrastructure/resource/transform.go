package resource

import (
	"regexp"
	"strings"
)

// Color placeholders understood by bundled fragments
const (
	PrimaryToken   = "{primary}"
	SecondaryToken = "{secondary}"
)

// envelope allows an XML prolog, comments and a doctype ahead of the root element
var envelope = regexp.MustCompile(`(?s)^\s*(?:<\?xml[^>]*\?>\s*)?(?:(?:<!--.*?-->|<!DOCTYPE[^>]*>)\s*)*<svg[^>]*>(.*)</svg>\s*$`)

// Source supplies raw fragment markup by name
type Source interface {
	Load(name string) (string, error)
}

// StripEnvelope removes the outer <svg> element, keeping its children.
// Markup without an envelope is returned unchanged.
func StripEnvelope(markup string) string {
	if m := envelope.FindStringSubmatch(markup); m != nil {
		return m[1]
	}
	return markup
}

// SubstituteColors replaces the color placeholders
func SubstituteColors(markup, primary, secondary string) string {
	return strings.NewReplacer(PrimaryToken, primary, SecondaryToken, secondary).Replace(markup)
}

// Include loads a fragment and prepares it for embedding
func Include(src Source, name, primary, secondary string) (string, error) {
	raw, err := src.Load(name)
	if err != nil {
		return "", err
	}
	return SubstituteColors(StripEnvelope(raw), primary, secondary), nil
}
