package nav

import "testing"

func TestDefaultRegistry_OrderAndLookup(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()

	want := []ViewKey{KeyUpload, KeyDownload, KeyMerge, KeySplit}
	got := r.Descriptors()
	if len(got) != len(want) {
		t.Fatalf("descriptor count = %d, want %d", len(got), len(want))
	}
	for i, d := range got {
		if d.Key != want[i] {
			t.Fatalf("descriptor[%d].Key = %v, want %v", i, d.Key, want[i])
		}
		if d.Label == "" || d.Description == "" {
			t.Fatalf("descriptor %v has empty label or description", d.Key)
		}
	}

	for _, k := range want {
		d, ok := r.Resolve(k)
		if !ok || d.Key != k {
			t.Fatalf("Resolve(%v) = %v %v, want hit", k, d.Key, ok)
		}
	}
}

func TestRegistry_HomeDoesNotResolve(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	if _, ok := r.Resolve(KeyHome); ok {
		t.Fatal("Resolve(home) = hit, want miss: HOME maps to no form")
	}
	if _, ok := r.Resolve(ViewKey(42)); ok {
		t.Fatal("Resolve(unknown) = hit, want miss")
	}
}

func TestController_SelectAndClear(t *testing.T) {
	t.Parallel()

	var c Controller

	if sig := c.Signal(); sig.Present {
		t.Fatal("fresh controller signal is present, want absent")
	}

	c.Select(KeyMerge)
	if sig := c.Signal(); !sig.Present || sig.Key != KeyMerge {
		t.Fatalf("signal = %+v, want merge present", sig)
	}

	c.Select(KeyHome)
	if sig := c.Signal(); sig.Present {
		t.Fatalf("signal = %+v, want absent after HOME", sig)
	}
}

func TestViewKey_String(t *testing.T) {
	t.Parallel()

	cases := map[ViewKey]string{
		KeyHome:     "home",
		KeyUpload:   "upload",
		KeyDownload: "download",
		KeyMerge:    "merge",
		KeySplit:    "split",
		ViewKey(9):  "unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", int(k), got, want)
		}
	}
}
