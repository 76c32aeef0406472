package pets

import (
	"bytes"
	"errors"
	"testing"
)

func TestDefaultSeed(t *testing.T) {
	seed, err := DefaultSeed()
	if err != nil {
		t.Fatalf("DefaultSeed: %v", err)
	}
	if got := ids(seed); len(got) != 5 || got[0] != "1" || got[4] != "5" {
		t.Fatalf("seed ids = %v", got)
	}

	champeta := seed[0]
	if champeta.Name != "Champeta" || champeta.Species != SpeciesDog {
		t.Fatalf("unexpected first record: %+v", champeta)
	}
	if !champeta.HasExpiredVaccine() {
		t.Fatalf("Champeta should carry an expired vaccine")
	}
	if exp := champeta.ExpiredVaccines(); len(exp) != 1 || exp[0].Name != "Parvovirus" {
		t.Fatalf("expired vaccines = %+v", exp)
	}
}

func TestParseSeedFillsDefaults(t *testing.T) {
	items, err := ParseSeed([]byte(`
pets:
  - id: "x"
    name: Nube
    species: Gato
`))
	if err != nil {
		t.Fatalf("ParseSeed: %v", err)
	}
	p := items[0]
	if p.ImageURL != ImageFor(SpeciesCat) {
		t.Fatalf("image = %q", p.ImageURL)
	}
	if p.Diseases == nil || p.Vaccines == nil {
		t.Fatalf("expected empty slices, got %+v", p)
	}
}

func TestParseSeedRejectsBadIDs(t *testing.T) {
	if _, err := ParseSeed([]byte("pets:\n  - name: Sin id\n")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := ParseSeed([]byte("pets:\n  - id: a\n  - id: a\n")); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if _, err := ParseSeed([]byte("pets: [")); err == nil {
		t.Fatalf("expected yaml error")
	}
}

func TestWriteSeedRoundTrips(t *testing.T) {
	seed, _ := DefaultSeed()

	var buf bytes.Buffer
	if err := WriteSeed(&buf, seed); err != nil {
		t.Fatalf("WriteSeed: %v", err)
	}
	back, err := ParseSeed(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseSeed: %v", err)
	}
	if len(back) != len(seed) || back[2].HealthDetail != seed[2].HealthDetail {
		t.Fatalf("round trip mismatch")
	}
}

func TestHasMedicalAlerts(t *testing.T) {
	base := Pet{Allergies: NoKnownAllergies}
	if base.HasMedicalAlerts() {
		t.Fatalf("no alerts expected")
	}
	withAllergy := base
	withAllergy.Allergies = "Polen"
	if !withAllergy.HasMedicalAlerts() {
		t.Fatalf("allergy should alert")
	}
	withDisease := base
	withDisease.Diseases = []string{"Artritis"}
	if !withDisease.HasMedicalAlerts() {
		t.Fatalf("disease should alert")
	}
}
