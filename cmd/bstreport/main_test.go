package main

import "testing"

func TestMainWiring(t *testing.T) {
	origSetVersion := setVersionInfo
	origExecute := executeCmd
	t.Cleanup(func() {
		setVersionInfo = origSetVersion
		executeCmd = origExecute
	})

	var gotVersion string
	executed := false
	setVersionInfo = func(v, c, d string) {
		if executed {
			t.Fatalf("version info must be set before executing")
		}
		gotVersion = v + "|" + c + "|" + d
	}
	executeCmd = func() { executed = true }

	run()

	if gotVersion != "dev|none|unknown" {
		t.Fatalf("unexpected version info %q", gotVersion)
	}
	if !executed {
		t.Fatalf("expected root command to execute")
	}
}
