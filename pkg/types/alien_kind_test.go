package types

import "testing"

func TestAlienKindFromString(t *testing.T) {
	tests := []struct {
		in   string
		want AlienKind
	}{
		{"aris", AlienAris},
		{"Rylo", AlienRylo},
		{" ZORG ", AlienZorg},
		{"boss", AlienUnknown},
		{"", AlienUnknown},
	}
	for _, tt := range tests {
		if got := AlienKindFromString(tt.in); got != tt.want {
			t.Errorf("AlienKindFromString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAlienKindSymbolRoundTrip(t *testing.T) {
	for _, k := range AllAlienKinds {
		got, ok := AlienKindFromSymbol(k.Symbol())
		if !ok || got != k {
			t.Errorf("符号 %q 应解析为 %v，实际 %v (ok=%v)", k.Symbol(), k, got, ok)
		}
	}
	if _, ok := AlienKindFromSymbol('#'); ok {
		t.Error("'#' 不应解析为外星人")
	}
}

func TestBulletOwnerString(t *testing.T) {
	if OwnerShip.String() != "ship" || OwnerAlien.String() != "alien" {
		t.Errorf("unexpected owner names: %s %s", OwnerShip, OwnerAlien)
	}
}
