package river

import (
	"math/rand"
	"testing"
)

func mustScene(t *testing.T, design string, width int, seed int64) *Scene {
	t.Helper()
	lines, err := ParseDesign([]byte(design))
	if err != nil {
		t.Fatalf("ParseDesign: %v", err)
	}
	s, err := BuildScene(lines, width, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}
	return s
}

func TestBuildSceneRowCount(t *testing.T) {
	s := mustScene(t, "40 20 40 0 0 3\n30 40 30 0 0 7\n", 80, 1)

	if s.Len() != 10 {
		t.Errorf("Len() = %d, expected 10 (3 + 7)", s.Len())
	}
	for i := 0; i < s.Len(); i++ {
		if got := len(s.Row(i)); got != 80 {
			t.Errorf("row %d has width %d, expected 80", i, got)
		}
	}
}

func TestFirstPartNeverHasEnemies(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		s := mustScene(t, "40 20 40 0 0 5\n30 40 30 0 0 5\n", 80, seed)
		for i := 0; i < 5; i++ {
			for x, c := range s.Row(i) {
				if c.Kind == Enemy {
					t.Fatalf("seed %d: enemy at (%d, %d) inside the first part", seed, i, x)
				}
			}
		}
	}
}

func TestEnemiesOnlyOnRiverColumns(t *testing.T) {
	design := "40 20 40 0 0 5\n20 25 10 25 20 10\n"
	lines, err := ParseDesign([]byte(design))
	if err != nil {
		t.Fatal(err)
	}

	for seed := int64(0); seed < 50; seed++ {
		s, err := BuildScene(lines, 80, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatal(err)
		}

		base := generateRow(lines[1], 80)
		enemies := 0
		for i := 5; i < 15; i++ {
			rowEnemies := 0
			for x, c := range s.Row(i) {
				if c.Kind != Enemy {
					continue
				}
				rowEnemies++
				if base[x].Kind != River {
					t.Fatalf("seed %d: enemy at (%d, %d) sits on %v, not River", seed, i, x, base[x].Kind)
				}
			}
			if rowEnemies > 1 {
				t.Fatalf("seed %d: row %d has %d enemies, at most 1 allowed", seed, i, rowEnemies)
			}
			enemies += rowEnemies
		}
		_ = enemies
	}
}

func TestEnemySeedingRate(t *testing.T) {
	// Across many seeded rows roughly half should carry an enemy.
	design := "40 20 40 0 0 1\n30 40 30 0 0 200\n"
	s := mustScene(t, design, 80, 7)

	enemies := 0
	for i := 1; i < s.Len(); i++ {
		for _, c := range s.Row(i) {
			if c.Kind == Enemy {
				enemies++
			}
		}
	}

	if enemies < 60 || enemies > 140 {
		t.Errorf("enemy rows = %d of 200, expected roughly half", enemies)
	}
}

func TestWindowWrapsWithoutGapOrDuplicate(t *testing.T) {
	s := mustScene(t, "40 20 40 0 0 10\n", 80, 1) // Len 10

	w := s.Window(8, 5) // logical rows 8, 9, 0, 1, 2, 3
	if len(w) != 6 {
		t.Fatalf("Window(8, 5) returned %d rows, expected 6", len(w))
	}

	expected := []int{8, 9, 0, 1, 2, 3}
	for i, logical := range expected {
		if &w[i][0] != &s.rows[logical][0] {
			t.Errorf("window index %d is not logical row %d", i, logical)
		}
	}
}

func TestWindowSingleRow(t *testing.T) {
	s := mustScene(t, "40 20 40 0 0 10\n", 80, 1)

	// Full wrap: start and end coincide mod Len. One row, not zero, not two.
	w := s.Window(10, 0)
	if len(w) != 1 {
		t.Fatalf("Window(10, 0) returned %d rows, expected 1", len(w))
	}
	if &w[0][0] != &s.rows[0][0] {
		t.Error("Window(10, 0) should wrap to logical row 0")
	}
}

func TestWindowReturnsLiveHandles(t *testing.T) {
	s := mustScene(t, "0 100 0 0 0 10\n", 80, 1)

	w := s.Window(0, 3)
	w[2][40].Kind = Enemy

	if s.Row(2)[40].Kind != Enemy {
		t.Error("mutating a window row should be visible through the scene")
	}
}

func TestKindAt(t *testing.T) {
	s := mustScene(t, "40 20 40 0 0 10\n", 80, 1)

	if k := s.KindAt(3, 0); k != Land {
		t.Errorf("KindAt(3, 0) = %v, expected Land", k)
	}
	if k := s.KindAt(3, 40); k != River {
		t.Errorf("KindAt(3, 40) = %v, expected River", k)
	}

	// Row index wraps around the ring.
	if k := s.KindAt(13, 40); k != River {
		t.Errorf("KindAt(13, 40) = %v, expected River (wrapped)", k)
	}

	// Off-world columns read as Land.
	if s.KindAt(0, -1) != Land || s.KindAt(0, 80) != Land {
		t.Error("out-of-range columns should read as Land")
	}
}

func TestDestroyEnemyIdempotent(t *testing.T) {
	s := mustScene(t, "0 100 0 0 0 5\n", 80, 1)
	s.rows[2][40].Kind = Enemy

	if !s.DestroyEnemy(2, 40) {
		t.Fatal("first DestroyEnemy should succeed")
	}
	if s.Row(2)[40].Kind != River {
		t.Error("destroyed enemy cell should become River")
	}
	if s.DestroyEnemy(2, 40) {
		t.Error("second DestroyEnemy on the same cell should report false")
	}
	if s.DestroyEnemy(3, 40) {
		t.Error("DestroyEnemy on a River cell should report false")
	}
}

func TestBuildSceneRejectsBadInput(t *testing.T) {
	lines := []DesignLine{{River1: 100, Height: 1}}

	if _, err := BuildScene(lines, 0, rand.New(rand.NewSource(1))); err == nil {
		t.Error("zero width should be rejected")
	}
	if _, err := BuildScene(nil, 80, rand.New(rand.NewSource(1))); err == nil {
		t.Error("empty design should be rejected")
	}
}
