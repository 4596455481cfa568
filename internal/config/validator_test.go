package config

import (
	"strings"
	"testing"
)

func TestValidateAcceptsGoodConfig(t *testing.T) {
	data := []byte("follow_shortcuts: true\nprobe_timeout: 5s\nhelper_path: /opt/helper.sh\n")
	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !result.Valid {
		t.Errorf("valid config rejected: %+v", result.Issues)
	}
}

func TestValidateAcceptsEmptyConfig(t *testing.T) {
	result, err := Validate(nil)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !result.Valid {
		t.Errorf("empty config rejected: %+v", result.Issues)
	}
}

func TestValidateRejectsWrongType(t *testing.T) {
	data := []byte("follow_shortcuts: sometimes\n")
	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if result.Valid {
		t.Fatal("wrong-typed config accepted")
	}

	found := false
	for _, issue := range result.Issues {
		if strings.Contains(issue.Path, "follow_shortcuts") {
			found = true
		}
	}
	if !found {
		t.Errorf("no issue names follow_shortcuts: %+v", result.Issues)
	}
}

func TestValidateRejectsUnknownKey(t *testing.T) {
	data := []byte("follow_shortcut: true\n")
	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if result.Valid {
		t.Error("config with unknown key accepted")
	}
}

func TestValidateRejectsBadDurationPattern(t *testing.T) {
	data := []byte("probe_timeout: soon\n")
	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if result.Valid {
		t.Error("malformed duration accepted")
	}
}

func TestValidateMalformedYAML(t *testing.T) {
	if _, err := Validate([]byte(":\n  - ][")); err == nil {
		t.Error("malformed YAML did not surface an error")
	}
}
