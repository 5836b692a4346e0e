//go:build e2e && unix

package main

import (
	"testing"
	"time"
)

// TestQuitKey checks that 'q' exits the application cleanly.
func TestQuitKey(t *testing.T) {
	tf := NewTUITest(t)
	defer tf.Cleanup()

	if err := tf.StartApp(); err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	if !tf.SeePlain("press 's' to start") {
		t.Fatalf("initial screen missing:\n%s", tf.SnapshotPlain())
	}

	if err := tf.SendKeys(KeyQuit); err != nil {
		t.Fatalf("failed to send quit key: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- tf.cmd.Wait() }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("application did not exit after 'q'")
	}
	tf.cmd = nil
}
