package domain

import (
	"testing"
)

func TestCatalog_Sort_Deterministic(t *testing.T) {
	c := &Catalog{}
	c.Add(Asset{Name: "OrbitalLogo", Kind: KindImage})
	c.Add(Asset{Name: "Accent", Kind: KindColor})
	c.Add(Asset{Name: "GoogleLogo", Kind: KindImage})
	c.Add(Asset{Name: "OrbitalLogoDark", Kind: KindImage})

	c.Sort()

	expected := []string{"GoogleLogo", "OrbitalLogo", "OrbitalLogoDark", "Accent"}
	for i, name := range expected {
		if c.Assets[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, c.Assets[i].Name)
		}
	}

	// Images come before colors regardless of name order
	if c.Assets[3].Kind != KindColor {
		t.Errorf("expected color asset last, got kind %q", c.Assets[3].Kind)
	}
}

func TestCatalog_ByKind(t *testing.T) {
	c := &Catalog{}
	c.Add(Asset{Name: "GoogleLogo", Kind: KindImage})
	c.Add(Asset{Name: "Accent", Kind: KindColor})
	c.Add(Asset{Name: "OrbitalLogo", Kind: KindImage})

	images := c.ByKind(KindImage)
	if len(images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(images))
	}

	if colors := c.ByKind(KindColor); len(colors) != 1 {
		t.Errorf("expected 1 color, got %d", len(colors))
	}
}

func TestCatalog_Find(t *testing.T) {
	c := &Catalog{}
	c.Add(Asset{Name: "Accent", Kind: KindColor})
	c.Add(Asset{Name: "Accent", Kind: KindImage})

	a, found := c.Find("Accent")
	if !found {
		t.Fatal("expected to find asset")
	}
	if a.Kind != KindImage {
		t.Errorf("expected image to win the name lookup, got %q", a.Kind)
	}

	if _, found := c.Find("Missing"); found {
		t.Error("expected lookup miss for unknown name")
	}
}

func TestCatalog_Namespaces(t *testing.T) {
	c := &Catalog{}
	c.Add(Asset{Name: "Icons/Back", Kind: KindImage, Namespace: "Icons"})
	c.Add(Asset{Name: "Icons/Forward", Kind: KindImage, Namespace: "Icons"})
	c.Add(Asset{Name: "GoogleLogo", Kind: KindImage})
	c.Add(Asset{Name: "Badges/Pro", Kind: KindImage, Namespace: "Badges"})

	ns := c.Namespaces()
	if len(ns) != 2 {
		t.Fatalf("expected 2 namespaces, got %d: %v", len(ns), ns)
	}
	if ns[0] != "Badges" || ns[1] != "Icons" {
		t.Errorf("expected sorted namespaces [Badges Icons], got %v", ns)
	}
}

func TestMerge(t *testing.T) {
	a := &Catalog{Root: "A.xcassets"}
	a.Add(Asset{Name: "Zebra", Kind: KindImage})
	b := &Catalog{Root: "B.xcassets"}
	b.Add(Asset{Name: "Apple", Kind: KindImage})

	merged := Merge(a, b)
	if merged.Count() != 2 {
		t.Fatalf("expected 2 assets, got %d", merged.Count())
	}
	if merged.Assets[0].Name != "Apple" {
		t.Errorf("expected merged catalog to be sorted, got %q first", merged.Assets[0].Name)
	}
}

func TestIndex_AddAndCount(t *testing.T) {
	idx := NewIndex()
	idx.AddAsset(Asset{Name: "GoogleLogo", Kind: KindImage, Path: "GoogleLogo.imageset"})
	idx.AddAsset(Asset{Name: "Accent", Kind: KindColor, Path: "Accent.colorset"})

	if idx.Count() != 2 {
		t.Fatalf("expected 2 entries, got %d", idx.Count())
	}

	entry, exists := idx.Get("image/GoogleLogo")
	if !exists {
		t.Fatal("expected entry for image/GoogleLogo")
	}
	if entry.Identifier != "GoogleLogo" {
		t.Errorf("expected derived identifier, got %q", entry.Identifier)
	}

	counts := idx.CountByKind()
	if counts[KindImage] != 1 || counts[KindColor] != 1 {
		t.Errorf("unexpected kind counts: %v", counts)
	}
}
