package loaderenv

import (
	"reflect"
	"testing"
)

func TestSetPreservesInsertionOrder(t *testing.T) {
	env := New()
	env.Set("kernel", "kernel")
	env.Set("autoboot_delay", "10")
	env.Set("boot_verbose", "YES")

	want := []Var{
		{Name: "kernel", Value: "kernel"},
		{Name: "autoboot_delay", Value: "10"},
		{Name: "boot_verbose", Value: "YES"},
	}
	if got := env.All(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestOverwriteKeepsPosition(t *testing.T) {
	env := New()
	env.Set("a", "1")
	env.Set("b", "2")
	env.Set("a", "3")

	all := env.All()
	if all[0].Name != "a" || all[0].Value != "3" {
		t.Fatalf("expected a=3 to keep first position, got %v", all)
	}
	if env.Len() != 2 {
		t.Fatalf("expected 2 variables, got %d", env.Len())
	}
}

func TestUnsetRemovesFromListing(t *testing.T) {
	env := New()
	env.Set("a", "1")
	env.Set("b", "2")
	env.Unset("a")
	env.Unset("missing")

	if _, ok := env.Get("a"); ok {
		t.Fatalf("expected a removed")
	}
	all := env.All()
	if len(all) != 1 || all[0].Name != "b" {
		t.Fatalf("expected only b listed, got %v", all)
	}
}

func TestGetDefault(t *testing.T) {
	env := New()
	env.Set("kernel", "kernel.old")

	if got := env.GetDefault("kernel", "kernel"); got != "kernel.old" {
		t.Fatalf("expected stored value, got %q", got)
	}
	if got := env.GetDefault("autoboot_delay", "10"); got != "10" {
		t.Fatalf("expected fallback, got %q", got)
	}
}
