package history

import (
	"context"
	"testing"
	"time"
)

func TestNilStoreIsSafe(t *testing.T) {
	var s *Store

	if err := s.Record(context.Background(), Record{RequestedAt: time.Now()}); err != nil {
		t.Errorf("Record on nil store = %v, want nil", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close on nil store = %v, want nil", err)
	}
}

func TestOpenDSNRejectsUnreachableHost(t *testing.T) {
	// A DSN pointing at a closed local port should fail the initial
	// Ping rather than silently returning a live Store.
	_, err := OpenDSN("root:root@tcp(127.0.0.1:1)/jsbeautify?timeout=200ms")
	if err == nil {
		t.Error("OpenDSN against an unreachable host should return an error")
	}
}
