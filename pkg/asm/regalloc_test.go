package asm

import (
	"strings"
	"testing"
)

func TestGetOrCreate(t *testing.T) {
	ra := newRegisterAssigner()

	a, err := ra.getOrCreate("a", -1)
	if err != nil {
		t.Fatalf("getOrCreate returned error: %v", err)
	}
	if a.number != -1 {
		t.Errorf("new named register has number %d, want -1", a.number)
	}

	// Binding a number to an existing name resolves to the same register.
	a2, err := ra.getOrCreate("a", 5)
	if err != nil {
		t.Fatalf("getOrCreate returned error: %v", err)
	}
	if a2 != a || a.number != 5 {
		t.Errorf("name binding did not unify: %v vs %v", a, a2)
	}

	// Lookup by number alone finds the same register.
	a3, err := ra.getOrCreate("", 5)
	if err != nil {
		t.Fatalf("getOrCreate returned error: %v", err)
	}
	if a3 != a {
		t.Errorf("number lookup returned %v, want %v", a3, a)
	}
}

func TestGetOrCreateConflicts(t *testing.T) {
	t.Run("同じ名前に複数の番号", func(t *testing.T) {
		ra := newRegisterAssigner()
		if _, err := ra.getOrCreate("a", 5); err != nil {
			t.Fatal(err)
		}
		if _, err := ra.getOrCreate("a", 6); err == nil {
			t.Error("expected error for conflicting numbers")
		}
	})

	t.Run("同じ番号に複数の名前", func(t *testing.T) {
		ra := newRegisterAssigner()
		if _, err := ra.getOrCreate("a", 5); err != nil {
			t.Fatal(err)
		}
		if _, err := ra.getOrCreate("b", 5); err == nil {
			t.Error("expected error for conflicting names")
		}
	})

	t.Run("範囲外の番号", func(t *testing.T) {
		ra := newRegisterAssigner()
		if _, err := ra.getOrCreate("a", 0x100); err == nil {
			t.Error("expected error for out-of-range number")
		}
	})
}

func TestConstrain(t *testing.T) {
	t.Run("連続した番号は許される", func(t *testing.T) {
		ra := newRegisterAssigner()
		a, _ := ra.getOrCreate("a", 3)
		b, _ := ra.getOrCreate("b", 4)
		if err := ra.constrain(a, b); err != nil {
			t.Errorf("constrain returned error: %v", err)
		}
	})

	t.Run("連続しない番号は拒否される", func(t *testing.T) {
		ra := newRegisterAssigner()
		a, _ := ra.getOrCreate("a", 3)
		b, _ := ra.getOrCreate("b", 10)
		if err := ra.constrain(a, b); err == nil {
			t.Error("expected error for non-consecutive numbers")
		}
	})

	t.Run("既に別の制約がある", func(t *testing.T) {
		ra := newRegisterAssigner()
		a, _ := ra.getOrCreate("a", -1)
		b, _ := ra.getOrCreate("b", -1)
		c, _ := ra.getOrCreate("c", -1)
		if err := ra.constrain(a, b); err != nil {
			t.Fatal(err)
		}
		if err := ra.constrain(a, c); err == nil {
			t.Error("expected error when a already has a successor")
		}
	})
}

func TestAssignAll(t *testing.T) {
	t.Run("単独のレジスタは最初の空き番号", func(t *testing.T) {
		ra := newRegisterAssigner()
		a, _ := ra.getOrCreate("a", -1)
		if err := ra.assignAll(); err != nil {
			t.Fatal(err)
		}
		if a.number != 0 {
			t.Errorf("a assigned %d, want 0", a.number)
		}
	})

	t.Run("後続が番号付きなら直前の番号を取る", func(t *testing.T) {
		ra := newRegisterAssigner()
		a, _ := ra.getOrCreate("a", -1)
		b, _ := ra.getOrCreate("b", 10)
		if err := ra.constrain(a, b); err != nil {
			t.Fatal(err)
		}
		if err := ra.assignAll(); err != nil {
			t.Fatal(err)
		}
		if a.number != 9 {
			t.Errorf("a assigned %d, want 9", a.number)
		}
	})

	t.Run("先行が番号付きなら直後の番号を取る", func(t *testing.T) {
		ra := newRegisterAssigner()
		a, _ := ra.getOrCreate("a", 3)
		b, _ := ra.getOrCreate("b", -1)
		if err := ra.constrain(a, b); err != nil {
			t.Fatal(err)
		}
		if err := ra.assignAll(); err != nil {
			t.Fatal(err)
		}
		if b.number != 4 {
			t.Errorf("b assigned %d, want 4", b.number)
		}
	})

	t.Run("自由な連鎖は空き領域に置かれる", func(t *testing.T) {
		ra := newRegisterAssigner()
		// Occupy number 0 so the chain cannot start there.
		if _, err := ra.getOrCreate("z", 0); err != nil {
			t.Fatal(err)
		}
		a, _ := ra.getOrCreate("a", -1)
		b, _ := ra.getOrCreate("b", -1)
		c, _ := ra.getOrCreate("c", -1)
		if err := ra.constrain(a, b); err != nil {
			t.Fatal(err)
		}
		if err := ra.constrain(b, c); err != nil {
			t.Fatal(err)
		}
		if err := ra.assignAll(); err != nil {
			t.Fatal(err)
		}
		if a.number != 1 || b.number != 2 || c.number != 3 {
			t.Errorf("chain assigned %d, %d, %d, want 1, 2, 3", a.number, b.number, c.number)
		}
	})

	t.Run("空き領域が足りない", func(t *testing.T) {
		ra := newRegisterAssigner()
		for z := 0; z < 0x100; z++ {
			if _, err := ra.getOrCreate("", z); err != nil {
				t.Fatal(err)
			}
		}
		if _, err := ra.getOrCreate("a", -1); err != nil {
			t.Fatal(err)
		}
		err := ra.assignAll()
		if err == nil || !strings.Contains(err.Error(), "not enough space") {
			t.Errorf("expected space exhaustion error, got %v", err)
		}
	})
}
