// Package platform loads the capability tables of a video hardware platform.
package platform

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/pion/vidcbuf/pkg/session"
	"gopkg.in/yaml.v3"
)

//go:embed iris2.yaml
var iris2YAML []byte

// Platform describes a device: the capabilities of its core and the default
// capabilities given to each session.
type Platform struct {
	Name     string
	Core     session.Capabilities
	Instance session.Capabilities
}

type document struct {
	Name     string            `yaml:"name"`
	Core     map[string]uint32 `yaml:"core"`
	Instance map[string]uint32 `yaml:"instance"`
}

// Load decodes a platform description from r.
func Load(r io.Reader) (*Platform, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("platform: decode: %w", err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("platform: missing name")
	}
	core, err := capabilities(doc.Core)
	if err != nil {
		return nil, fmt.Errorf("platform %s: core: %w", doc.Name, err)
	}
	instance, err := capabilities(doc.Instance)
	if err != nil {
		return nil, fmt.Errorf("platform %s: instance: %w", doc.Name, err)
	}
	return &Platform{Name: doc.Name, Core: core, Instance: instance}, nil
}

// LoadFile decodes the platform description stored at path.
func LoadFile(path string) (*Platform, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("platform: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the built-in iris2 platform.
func Default() *Platform {
	p, err := Load(bytes.NewReader(iris2YAML))
	if err != nil {
		panic(err)
	}
	return p
}

// NewCore returns a core holding a copy of the platform core capabilities.
func (p *Platform) NewCore() *session.Core {
	return &session.Core{Capabilities: p.Core.Clone()}
}

// InstanceCapabilities returns a copy of the default session capabilities.
func (p *Platform) InstanceCapabilities() session.Capabilities {
	return p.Instance.Clone()
}

func capabilities(values map[string]uint32) (session.Capabilities, error) {
	if values == nil {
		return nil, nil
	}
	caps := make(session.Capabilities, len(values))
	for name, v := range values {
		c, err := session.ParseCapability(name)
		if err != nil {
			return nil, err
		}
		caps[c] = v
	}
	return caps, nil
}
