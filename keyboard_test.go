package main

import "testing"

func TestBuildKeyboardKanaRightToLeft(t *testing.T) {
	grid := buildKeyboard("hira")
	if len(grid) != 6 {
		t.Fatalf("Expected 5 kana rows plus specials, got %d", len(grid))
	}
	if grid[0][9] != "あ" || grid[0][0] != "わ" {
		t.Errorf("Expected あ rightmost and わ leftmost, got %q and %q", grid[0][9], grid[0][0])
	}
	if grid[4][9] != "お" {
		t.Errorf("Expected お at the bottom of the first column, got %q", grid[4][9])
	}
	if grid[1][2] != "" {
		t.Errorf("Expected a hole in the や column, got %q", grid[1][2])
	}
	last := grid[len(grid)-1]
	for i, k := range specialKeys {
		if last[i] != k {
			t.Errorf("Special key %d: expected %q, got %q", i, k, last[i])
		}
	}
}

func TestBuildKeyboardLatin(t *testing.T) {
	tests := []struct {
		tab  string
		rows []int
	}{
		{"eng_upper", []int{10, 10, 6, 5}},
		{"eng_lower", []int{10, 10, 6, 5}},
		{"num", []int{10, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.tab, func(t *testing.T) {
			grid := buildKeyboard(tt.tab)
			if len(grid) != len(tt.rows) {
				t.Fatalf("Expected %d rows, got %d", len(tt.rows), len(grid))
			}
			for i, n := range tt.rows {
				if len(grid[i]) != n {
					t.Errorf("Row %d: expected %d keys, got %d", i, n, len(grid[i]))
				}
			}
		})
	}
}

func TestEveryTabHasLayout(t *testing.T) {
	for _, tab := range keyboardTabs {
		if len(buildKeyboard(tab.id)) < 2 {
			t.Errorf("Tab %s has no keys", tab.id)
		}
	}
}

func TestKeyPositionAndAt(t *testing.T) {
	grid := buildKeyboard("eng_upper")
	r, c, ok := keyPosition(grid, "K")
	if !ok || r != 1 || c != 0 {
		t.Errorf("Expected K at (1,0), got (%d,%d) %v", r, c, ok)
	}
	if keyAt(grid, r, c) != "K" {
		t.Errorf("Expected keyAt to return K")
	}
	if keyAt(grid, 99, 0) != "" || keyAt(grid, 0, -1) != "" {
		t.Error("Expected empty key outside the grid")
	}
	if _, _, ok := keyPosition(grid, ""); ok {
		t.Error("Expected holes never to match")
	}
}
