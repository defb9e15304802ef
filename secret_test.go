package exa

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestSecret_Redaction(t *testing.T) {
	s := NewSecret("super-secret-key")

	for _, rendered := range []string{
		fmt.Sprint(s),
		fmt.Sprintf("%v", s),
		fmt.Sprintf("%#v", s),
		fmt.Sprintf("%s", s),
	} {
		if strings.Contains(rendered, "super-secret-key") {
			t.Errorf("secret leaked through formatting: %q", rendered)
		}
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "super-secret-key") {
		t.Errorf("secret leaked through JSON: %s", data)
	}

	if s.expose() != "super-secret-key" {
		t.Errorf("expose() = %q, want original value", s.expose())
	}
}
