package generator

import "testing"

func TestNewResolver_FlagCombinations(t *testing.T) {
	tests := []struct {
		name    string
		force   bool
		skip    bool
		diff    bool
		wantErr bool
	}{
		{name: "no flags", wantErr: false},
		{name: "force only", force: true, wantErr: false},
		{name: "skip only", skip: true, wantErr: false},
		{name: "diff only", diff: true, wantErr: false},
		{name: "force and skip", force: true, skip: true, wantErr: true},
		{name: "force and diff", force: true, diff: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver, err := NewResolver(tt.force, tt.skip, tt.diff)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for conflicting flags")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resolver == nil {
				t.Fatal("expected a resolver")
			}
		})
	}
}

func TestResolver_ForceOverwrites(t *testing.T) {
	resolver, err := NewResolver(true, false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := resolver.ResolveConflict("lib/main.dart", []byte("old"), []byte("new"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != Overwrite {
		t.Errorf("force strategy returned %v, want Overwrite", res)
	}
}

func TestResolver_SkipKeepsExisting(t *testing.T) {
	resolver, err := NewResolver(false, true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := resolver.ResolveConflict("pubspec.yaml", []byte("old"), []byte("new"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res != Skip {
		t.Errorf("skip strategy returned %v, want Skip", res)
	}
}
