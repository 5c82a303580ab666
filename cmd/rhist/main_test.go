package main

import (
	"testing"
)

func TestPersistentFlagsRegistered(t *testing.T) {
	for _, name := range []string{"repo", "config", "verbose"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag --%s not registered", name)
		}
	}
}

func TestRepoFlagSelectsRepositoryPath(t *testing.T) {
	defer func() {
		repoPath = ""
		cfg = nil
	}()

	if err := rootCmd.PersistentFlags().Set("repo", "/srv/repos/app"); err != nil {
		t.Fatalf("Set(repo) error = %v", err)
	}

	rootCmd.PersistentPreRun(rootCmd, nil)

	if cfg == nil {
		t.Fatal("PersistentPreRun left cfg unset")
	}
	if cfg.Repo.Path != "/srv/repos/app" {
		t.Errorf("Repo.Path = %q, want %q", cfg.Repo.Path, "/srv/repos/app")
	}
}

func TestConfigDefaultsWithoutRepoFlag(t *testing.T) {
	defer func() {
		repoPath = ""
		cfg = nil
	}()

	repoPath = ""
	rootCmd.PersistentPreRun(rootCmd, nil)

	if cfg == nil {
		t.Fatal("PersistentPreRun left cfg unset")
	}
	if cfg.Repo.Path == "" {
		t.Error("Repo.Path empty, want the configured default")
	}
}
