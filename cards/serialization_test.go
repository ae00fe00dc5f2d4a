package cards

import "testing"

func TestDumpLoadRoundTrip(t *testing.T) {
	original := BasicTable()

	data, err := Dump(original)
	if err != nil {
		t.Fatalf("Dump returned an error: %v", err)
	}

	loaded, err := LoadTable(data)
	if err != nil {
		t.Fatalf("LoadTable returned an error: %v", err)
	}

	if loaded.Name != original.Name || loaded.HeroPower != original.HeroPower {
		t.Fatalf("round trip changed table metadata: got %+v", loaded)
	}
	if len(loaded.Cards) != len(original.Cards) {
		t.Fatalf("round trip changed card count: got %d, want %d", len(loaded.Cards), len(original.Cards))
	}
	for i, c := range loaded.Cards {
		if c.ID != original.Cards[i].ID || c.Name != original.Cards[i].Name {
			t.Errorf("card %d round-tripped wrong: got %+v, want %+v", i, c, original.Cards[i])
		}
	}

	if _, err := Compile(loaded.Cards); err != nil {
		t.Errorf("round-tripped cards should still compile: %v", err)
	}
}

func TestLoadTableRejectsMalformedYAML(t *testing.T) {
	if _, err := LoadTable([]byte("cards: [this is not: a valid, card list")); err == nil {
		t.Fatal("expected an error decoding malformed YAML")
	}
}
