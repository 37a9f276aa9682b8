package lifecycle

import (
	"strings"
	"testing"
)

func TestRenderUnitDefinition(t *testing.T) {
	def := Definition{
		WorkDir:    "/srv/agent",
		Launcher:   "/usr/local/bin/uv",
		Entrypoint: "agent.py",
		SecretKey:  "abc123",
	}

	text := string(def.Render())

	for _, want := range []string{
		"WorkingDirectory=/srv/agent",
		"ExecStart=/usr/local/bin/uv run agent.py abc123",
		"Type=simple",
		"Restart=always",
		"RestartSec=10",
		"StandardOutput=journal",
		"WantedBy=multi-user.target",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("definition missing %q:\n%s", want, text)
		}
	}

	if strings.Contains(text, "Environment=") {
		t.Errorf("definition should have no environment line without a base URL:\n%s", text)
	}
}

func TestRenderUnitDefinitionWithBaseURL(t *testing.T) {
	def := Definition{
		WorkDir:    "/srv/agent",
		Launcher:   "/usr/local/bin/uv",
		Entrypoint: "agent.py",
		SecretKey:  "abc123",
		BaseURL:    "https://api.example.net",
	}

	text := string(def.Render())
	if !strings.Contains(text, "Environment=API_BASE_URL=https://api.example.net\n") {
		t.Fatalf("definition missing base URL environment line:\n%s", text)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	def := Definition{
		WorkDir:    "/srv/agent",
		Launcher:   "/usr/local/bin/uv",
		Entrypoint: "agent.py",
		SecretKey:  "abc123",
	}

	if string(def.Render()) != string(def.Render()) {
		t.Fatal("identical inputs must render identical definitions")
	}
}
