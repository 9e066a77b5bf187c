package howitworks

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the YAML layout of a catalog override:
//
//	tutor:
//	  - title: Sign Up
//	    description: Create your tutor profile in minutes.
//	    image: /static/images/tutor_signup.png
//	student:
//	  - ...
type catalogFile map[Audience][]Step

// LoadCatalog reads a catalog from a YAML file. Audiences missing from the
// file keep their default steps.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c, err := DecodeCatalog(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// DecodeCatalog decodes a YAML catalog from r, overlaying the defaults.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	merged := DefaultCatalog().steps
	for aud, steps := range file {
		merged[aud] = steps
	}
	return NewCatalog(merged)
}

// Encode writes the steps of the given audiences as YAML.
func (c *Catalog) Encode(w io.Writer, audiences ...Audience) error {
	if len(audiences) == 0 {
		audiences = Audiences
	}
	out := make(catalogFile, len(audiences))
	for _, aud := range audiences {
		out[aud] = c.Steps(aud)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	return enc.Close()
}
