package voxel

import "testing"

func TestRegistryIDAssignment(t *testing.T) {
	reg := NewBlockRegistry()

	tests := []struct {
		desc   BlockDescriptor
		wantID uint32
	}{
		{BlockDescriptor{Name: "air", Invisible: true, Transparent: true}, 0},
		{BlockDescriptor{Name: "grass", TopTexture: "grass_top"}, 1},
		{BlockDescriptor{Name: "dirt", TopTexture: "dirt"}, 2},
	}

	for _, tt := range tests {
		got := reg.AddBlock(tt.desc)
		if got != tt.wantID {
			t.Errorf("AddBlock(%q) = id %d, want %d", tt.desc.Name, got, tt.wantID)
		}
	}

	if got := reg.ByName("grass").TopTexture; got != "grass_top" {
		t.Errorf("ByName(grass).TopTexture = %q, want %q", got, "grass_top")
	}
	if got := reg.ByID(2).Name; got != "dirt" {
		t.Errorf("ByID(2).Name = %q, want %q", got, "dirt")
	}
	if reg.Len() != 3 {
		t.Errorf("Len() = %d, want 3", reg.Len())
	}
}

func TestInstantiateCopiesFlags(t *testing.T) {
	reg := NewBlockRegistry()
	RegisterDefaultBlocks(reg)

	tests := []struct {
		name            string
		wantID          uint32
		wantInvisible   bool
		wantTransparent bool
	}{
		{"air", 0, true, true},
		{"grass", 1, false, false},
		{"dirt", 2, false, false},
		{"stone", 3, false, false},
	}

	for _, tt := range tests {
		b := reg.Instantiate(tt.name)
		if b.ID != tt.wantID || b.Invisible != tt.wantInvisible || b.Transparent != tt.wantTransparent {
			t.Errorf("Instantiate(%q) = %+v, want id=%d invisible=%v transparent=%v",
				tt.name, b, tt.wantID, tt.wantInvisible, tt.wantTransparent)
		}
	}
}

func TestUnknownLookupPanics(t *testing.T) {
	reg := NewBlockRegistry()
	RegisterDefaultBlocks(reg)

	cases := map[string]func(){
		"ByName":      func() { reg.ByName("bedrock") },
		"ByID":        func() { reg.ByID(99) },
		"Instantiate": func() { reg.Instantiate("bedrock") },
	}

	for name, fn := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s com chave desconhecida deveria entrar em pânico", name)
				}
			}()
			fn()
		}()
	}
}

func TestTextureNames(t *testing.T) {
	reg := NewBlockRegistry()
	RegisterDefaultBlocks(reg)

	names := reg.TextureNames()
	want := map[string]bool{
		"grass_top": true, "grass_side": true, "dirt": true, "stone": true,
	}
	if len(names) != len(want) {
		t.Fatalf("TextureNames() = %v, want %d nomes únicos", names, len(want))
	}
	for _, n := range names {
		if !want[n] {
			t.Errorf("nome de textura inesperado: %q", n)
		}
	}
}
