package pets

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var embeddedSeed []byte

type seedFile struct {
	Pets []Pet `yaml:"pets"`
}

// DefaultSeed devuelve el dataset inicial embebido en el binario.
func DefaultSeed() ([]Pet, error) {
	return ParseSeed(embeddedSeed)
}

// LoadSeedFile lee un fixture alternativo. path vacío = seed embebido.
func LoadSeedFile(path string) ([]Pet, error) {
	if path == "" {
		return DefaultSeed()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(b)
}

// ParseSeed decodifica un fixture YAML con la forma {pets: [...]}.
// Los registros del seed no pasan por la validación del intake, pero
// sí se les exige un id único.
func ParseSeed(b []byte) ([]Pet, error) {
	var f seedFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Pets))
	for i, p := range f.Pets {
		if p.ID == "" {
			return nil, fmt.Errorf("parse seed: pet #%d: %w", i, ErrInvalidInput)
		}
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("parse seed: pet %q: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = struct{}{}

		if p.ImageURL == "" {
			f.Pets[i].ImageURL = ImageFor(p.Species)
		}
		if p.Diseases == nil {
			f.Pets[i].Diseases = []string{}
		}
		if p.Vaccines == nil {
			f.Pets[i].Vaccines = []Vaccine{}
		}
	}
	return f.Pets, nil
}

// WriteSeed serializa registros con el mismo formato que ParseSeed acepta.
func WriteSeed(w io.Writer, items []Pet) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(seedFile{Pets: items}); err != nil {
		return err
	}
	return enc.Close()
}
