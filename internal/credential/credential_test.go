package credential

import (
	"bytes"
	"testing"
)

func TestClassifyStructured(t *testing.T) {
	raw := []byte(`{"emailAddress":"a@x.com","organizationUuid":null}`)

	b := Classify(raw)
	if b.Kind != KindStructured {
		t.Fatalf("expected structured, got %v", b.Kind)
	}
	if b.EmailAddress != "a@x.com" {
		t.Errorf("expected a@x.com, got %q", b.EmailAddress)
	}
	if b.OrganizationUUID != nil {
		t.Errorf("expected nil organization for null, got %q", *b.OrganizationUUID)
	}
	if !bytes.Equal(b.Raw, raw) {
		t.Error("Raw must hold the exact input bytes")
	}
}

func TestClassifyStructuredWithOrganization(t *testing.T) {
	b := Classify([]byte(`{"emailAddress":"b@x.com","organizationUuid":"org-123"}`))
	if b.Kind != KindStructured {
		t.Fatalf("expected structured, got %v", b.Kind)
	}
	if b.OrganizationUUID == nil || *b.OrganizationUUID != "org-123" {
		t.Errorf("expected organization org-123, got %v", b.OrganizationUUID)
	}
}

func TestClassifyOpaque(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"api key", "sk-ant-abc123xyz"},
		{"empty", ""},
		{"whitespace only", "   \n\t"},
		{"json array", `["not","an","object"]`},
		{"json number", "42"},
		{"json string", `"quoted"`},
		{"truncated object", `{"emailAddress":`},
		{"unicode", "clé-secrète-日本語"},
		{"embedded quotes", `token-with-"quotes"-inside`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Classify([]byte(tt.raw))
			if b.Kind != KindOpaque {
				t.Fatalf("expected opaque, got %v", b.Kind)
			}
			if b.Token != tt.raw {
				t.Errorf("expected token %q, got %q", tt.raw, b.Token)
			}
			if string(b.Raw) != tt.raw {
				t.Error("Raw must hold the exact input bytes")
			}
		})
	}
}

func TestClassifyLegacyEnvelope(t *testing.T) {
	raw := []byte(`{"authType":"api_key","apiKey":"sk-ant-legacy-key-0001","createdAt":"2024-01-01","format":"string"}`)

	b := Classify(raw)
	if b.Kind != KindOpaque {
		t.Fatalf("expected legacy envelope to classify as opaque, got %v", b.Kind)
	}
	if b.Token != "sk-ant-legacy-key-0001" {
		t.Errorf("expected unwrapped key, got %q", b.Token)
	}
	if !bytes.Equal(b.Raw, raw) {
		t.Error("Raw must still hold the envelope bytes verbatim")
	}
}

func TestClassifyIgnoresFieldTypeMismatches(t *testing.T) {
	// A JSON object stays structured even when its fields have odd types.
	b := Classify([]byte(`{"emailAddress":12345,"organizationUuid":{"nested":true}}`))
	if b.Kind != KindStructured {
		t.Fatalf("expected structured, got %v", b.Kind)
	}
	if b.EmailAddress != "" {
		t.Errorf("expected empty email for non-string field, got %q", b.EmailAddress)
	}
	if b.OrganizationUUID != nil {
		t.Errorf("expected nil organization for non-string field, got %q", *b.OrganizationUUID)
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"sk-ant-REDACTED", "sk-ant-a...wxyz"},
		{"exactly-13ch!", "exactly-...3ch!"},
		{"short", "********"},
		{"twelve-chars", "********"},
		{"", "********"},
	}

	for _, tt := range tests {
		if got := Mask(tt.token); got != tt.want {
			t.Errorf("Mask(%q) = %q, want %q", tt.token, got, tt.want)
		}
	}
}

func TestPlanLabel(t *testing.T) {
	personal := Classify([]byte(`{"emailAddress":"a@x.com","organizationUuid":null}`))
	if got := PlanLabel(personal); got != "Personal plan" {
		t.Errorf("expected Personal plan, got %q", got)
	}

	api := Classify([]byte(`{"emailAddress":"a@x.com","organizationUuid":"org-1"}`))
	if got := PlanLabel(api); got != "API billing" {
		t.Errorf("expected API billing, got %q", got)
	}

	opaque := Classify([]byte("sk-ant-token"))
	if got := PlanLabel(opaque); got != "" {
		t.Errorf("expected empty label for opaque, got %q", got)
	}
}

func TestSummary(t *testing.T) {
	structured := Classify([]byte(`{"emailAddress":"a@x.com","organizationUuid":null}`))
	if got := Summary(structured); got != "a@x.com (Personal plan)" {
		t.Errorf("Summary = %q", got)
	}

	opaque := Classify([]byte("sk-ant-REDACTED"))
	if got := Summary(opaque); got != "sk-ant-a...wxyz" {
		t.Errorf("Summary = %q", got)
	}
}
