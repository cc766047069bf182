package bootstrap

import (
	"errors"
	"testing"

	coreconfig "github.com/m3rciful/prayerbot/core/config"
)

func TestRunRequiresConfig(t *testing.T) {
	if _, err := Run(Options{}); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestRunLoggerFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := Run(Options{
		Config:     &coreconfig.Config{},
		LoggerInit: func(*coreconfig.Config) error { return boom },
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
}

func TestRunCreatesEmptyStore(t *testing.T) {
	res, err := Run(Options{
		Config:     &coreconfig.Config{},
		LoggerInit: func(*coreconfig.Config) error { return nil },
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Store == nil || res.Store.Len() != 0 {
		t.Fatalf("unexpected store %+v", res.Store)
	}
}
