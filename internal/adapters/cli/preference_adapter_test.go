package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/example/evn/internal/i18n"
)

// mockPreferenceService implements primary.PreferenceService for testing
type mockPreferenceService struct {
	stored string
	err    error
}

func (m *mockPreferenceService) GetLanguage(ctx context.Context) (string, error) {
	return m.stored, m.err
}

func (m *mockPreferenceService) SetLanguage(ctx context.Context, lang string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	l, err := i18n.Parse(lang)
	if err != nil {
		return "", err
	}
	m.stored = string(l)
	return m.stored, nil
}

func (m *mockPreferenceService) ClearLanguage(ctx context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.stored = ""
	return nil
}

func TestPreferenceAdapter_ShowLanguage(t *testing.T) {
	tests := []struct {
		name      string
		stored    string
		effective i18n.Lang
		want      string
	}{
		{name: "nothing stored", stored: "", effective: i18n.Polish, want: "Bieżący język: pl\n"},
		{name: "stored matches", stored: "de", effective: i18n.German, want: "Aktuelle Sprache: de\n"},
		{name: "overridden", stored: "de", effective: i18n.English, want: "Current language: en\n  (preference: de)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			adapter := NewPreferenceAdapter(&mockPreferenceService{stored: tt.stored}, out)

			if err := adapter.ShowLanguage(context.Background(), tt.effective); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestPreferenceAdapter_SetLanguageConfirmsInNewLanguage(t *testing.T) {
	out := &bytes.Buffer{}
	service := &mockPreferenceService{}
	adapter := NewPreferenceAdapter(service, out)

	if err := adapter.SetLanguage(context.Background(), "DE"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if service.stored != "de" {
		t.Errorf("stored = %q, want de", service.stored)
	}
	if out.String() != "✓ Sprache gesetzt: de\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestPreferenceAdapter_SetLanguageUnsupported(t *testing.T) {
	out := &bytes.Buffer{}
	adapter := NewPreferenceAdapter(&mockPreferenceService{}, out)

	if err := adapter.SetLanguage(context.Background(), "fr"); err == nil {
		t.Fatal("expected error for unsupported language")
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestPreferenceAdapter_ClearLanguage(t *testing.T) {
	out := &bytes.Buffer{}
	service := &mockPreferenceService{stored: "en"}
	adapter := NewPreferenceAdapter(service, out)

	if err := adapter.ClearLanguage(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if service.stored != "" {
		t.Errorf("expected stored language cleared, got %q", service.stored)
	}

	service.err = errors.New("locked")
	if err := adapter.ClearLanguage(context.Background()); err == nil {
		t.Error("expected error from service")
	}
}
