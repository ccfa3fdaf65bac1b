package cache

import "testing"

func TestLRUCache_SetGet(t *testing.T) {
	c := NewLRUCache[string](2)
	c.Set("a", "1")
	if v, ok := c.Get("a"); !ok || v != "1" {
		t.Fatalf("got %q,%v", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatalf("expected miss")
	}
	c.Set("a", "2")
	if v, _ := c.Get("a"); v != "2" {
		t.Fatalf("overwrite failed: %q", v)
	}
	if c.Size() != 1 {
		t.Fatalf("size = %d", c.Size())
	}
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRUCache[int](2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // a is now most recent
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Fatalf("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("a should survive")
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatalf("c should be present")
	}
}

func TestLRUCache_Delete(t *testing.T) {
	c := NewLRUCache[int](0)
	c.Set("a", 1)
	c.Set("b", 2) // size clamps to 1, so a is evicted
	if _, ok := c.Get("a"); ok {
		t.Fatalf("a should have been evicted")
	}
	c.Delete("b")
	if c.Size() != 0 {
		t.Fatalf("delete failed")
	}
	c.Delete("missing")
}
