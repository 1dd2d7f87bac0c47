package bypass

import (
	"sync"
	"testing"
)

func TestBypass(t *testing.T) {
	reg := New()

	t.Run("unknown identity is not bypassed", func(t *testing.T) {
		if reg.IsBypassed("AccountHandler") {
			t.Error("IsBypassed() = true for an identity never bypassed")
		}
	})

	t.Run("bypass adds identity", func(t *testing.T) {
		reg.Bypass("AccountHandler")

		if !reg.IsBypassed("AccountHandler") {
			t.Error("IsBypassed() = false after Bypass()")
		}
		if reg.Count() != 1 {
			t.Errorf("Count() = %d, want 1", reg.Count())
		}
	})

	t.Run("bypass is idempotent", func(t *testing.T) {
		reg.Bypass("AccountHandler")

		if reg.Count() != 1 {
			t.Errorf("Count() = %d after double bypass, want 1", reg.Count())
		}
	})

	t.Run("clear removes identity", func(t *testing.T) {
		reg.ClearBypass("AccountHandler")

		if reg.IsBypassed("AccountHandler") {
			t.Error("IsBypassed() = true after ClearBypass()")
		}
	})

	t.Run("clear of missing identity is a no-op", func(t *testing.T) {
		reg.ClearBypass("NeverBypassed")

		if reg.Count() != 0 {
			t.Errorf("Count() = %d, want 0", reg.Count())
		}
	})
}

func TestClearAllBypasses(t *testing.T) {
	reg := New()
	identities := []string{"AccountHandler", "ContactHandler", "OpportunityHandler"}
	for _, identity := range identities {
		reg.Bypass(identity)
	}

	reg.ClearAllBypasses()

	for _, identity := range identities {
		if reg.IsBypassed(identity) {
			t.Errorf("IsBypassed(%q) = true after ClearAllBypasses()", identity)
		}
	}
	if reg.Count() != 0 {
		t.Errorf("Count() = %d, want 0", reg.Count())
	}
}

func TestBypassed(t *testing.T) {
	reg := New()
	reg.Bypass("ContactHandler")
	reg.Bypass("AccountHandler")

	got := reg.Bypassed()
	want := []string{"AccountHandler", "ContactHandler"}

	if len(got) != len(want) {
		t.Fatalf("Bypassed() returned %d identities, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Bypassed()[%d] = %q, want %q (sorted)", i, got[i], want[i])
		}
	}
}

func TestConcurrentAccess(t *testing.T) {
	reg := New()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.Bypass("AccountHandler")
			reg.IsBypassed("AccountHandler")
			reg.ClearBypass("AccountHandler")
			reg.Bypassed()
		}()
	}

	wg.Wait()
}
