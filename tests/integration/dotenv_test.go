package integration

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnvFromParentDir(t *testing.T) {
	root := t.TempDir()
	env := "TRIPMATE_IT_QUOTED=\"hello world\"\nTRIPMATE_IT_PRESET=from-file\n"
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte(env), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(nested); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("TRIPMATE_IT_PRESET", "from-env")
	t.Setenv("TRIPMATE_IT_QUOTED", "")
	os.Unsetenv("TRIPMATE_IT_QUOTED")

	loadDotEnv(t)

	if got := os.Getenv("TRIPMATE_IT_QUOTED"); got != "hello world" {
		t.Errorf("quoted value = %q, want %q", got, "hello world")
	}
	if got := os.Getenv("TRIPMATE_IT_PRESET"); got != "from-env" {
		t.Errorf("preset value overwritten: %q", got)
	}
}
