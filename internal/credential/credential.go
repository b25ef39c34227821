// Package credential classifies and renders credential payloads.
//
// A payload extracted from the OS store is one of two shapes: a JSON
// object (the client's credential document, carrying emailAddress and
// organizationUuid) or an opaque token string such as an API key.
// Classification is total — anything that is not a JSON object is an
// opaque token — and only ever affects display; storage always handles
// the raw bytes verbatim.
package credential

import (
	"bytes"
	"encoding/json"
)

// Kind discriminates the two credential shapes.
type Kind string

const (
	KindStructured Kind = "structured"
	KindOpaque     Kind = "opaque"
)

// Blob is a classified credential payload. Raw always holds the exact
// bytes as extracted; every other field is display-only.
type Blob struct {
	Kind Kind
	Raw  []byte

	// Set when Kind == KindStructured.
	EmailAddress     string
	OrganizationUUID *string

	// Set when Kind == KindOpaque.
	Token string
}

// Classify parses raw and returns its classified form. It is pure and
// total: any payload that does not parse as a JSON object is an opaque
// token, never an error.
func Classify(raw []byte) Blob {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Blob{Kind: KindOpaque, Raw: raw, Token: string(raw)}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return Blob{Kind: KindOpaque, Raw: raw, Token: string(raw)}
	}

	// Earlier revisions of the switcher wrapped plain API keys in a small
	// envelope before storing them. Unwrap so they render as tokens.
	var format, apiKey string
	unmarshalString(fields["format"], &format)
	unmarshalString(fields["apiKey"], &apiKey)
	if format == "string" && apiKey != "" {
		return Blob{Kind: KindOpaque, Raw: raw, Token: apiKey}
	}

	b := Blob{Kind: KindStructured, Raw: raw}
	unmarshalString(fields["emailAddress"], &b.EmailAddress)
	if org, ok := fields["organizationUuid"]; ok && !bytes.Equal(bytes.TrimSpace(org), []byte("null")) {
		var s string
		if json.Unmarshal(org, &s) == nil {
			b.OrganizationUUID = &s
		}
	}
	return b
}

// unmarshalString fills dst when data holds a JSON string; any other
// shape is left alone. Field-level type mismatches never fail a
// classification.
func unmarshalString(data json.RawMessage, dst *string) {
	if data == nil {
		return
	}
	var s string
	if json.Unmarshal(data, &s) == nil {
		*dst = s
	}
}

// Mask renders an opaque token as first8...last4 for display. Tokens too
// short to elide anything render fully masked.
func Mask(token string) string {
	if len(token) <= 12 {
		return "********"
	}
	return token[:8] + "..." + token[len(token)-4:]
}

// PlanLabel returns the human label for a structured credential:
// organization-scoped credentials bill against an API organization,
// everything else is a personal plan.
func PlanLabel(b Blob) string {
	if b.Kind != KindStructured {
		return ""
	}
	if b.OrganizationUUID != nil && *b.OrganizationUUID != "" {
		return "API billing"
	}
	return "Personal plan"
}

// Summary renders a one-line display form: email and plan label for
// structured credentials, a masked token for opaque ones. The secret
// itself never appears in a summary.
func Summary(b Blob) string {
	if b.Kind == KindStructured {
		label := PlanLabel(b)
		if b.EmailAddress == "" {
			return label
		}
		return b.EmailAddress + " (" + label + ")"
	}
	return Mask(b.Token)
}
