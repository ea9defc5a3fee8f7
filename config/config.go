// Package config loads editor settings from YAML or TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/math/f64"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/vecedit"
	"github.com/gogpu/vecedit/snap"
	"github.com/gogpu/vecedit/stops"
	"github.com/gogpu/vecedit/vnet"
)

// Settings represents the optional vecedit.yaml or vecedit.toml file.
type Settings struct {
	Snap  SnapSettings `yaml:"snap" toml:"snap"`
	Pen   PenSettings  `yaml:"pen" toml:"pen"`
	Stops StopSettings `yaml:"stops" toml:"stops"`
}

// SnapSettings contains snapping thresholds.
type SnapSettings struct {
	// Vertex is the vertex snap threshold in screen units. Zero disables
	// vertex snapping.
	Vertex float64 `yaml:"vertex" toml:"vertex"`
	// Stop is the gradient stop snap threshold in offset units.
	Stop float64 `yaml:"stop" toml:"stop"`
}

// PenSettings contains pen tool settings.
type PenSettings struct {
	// Mirroring is one of none, angle, all or auto.
	Mirroring string `yaml:"mirroring" toml:"mirroring"`
}

// StopSettings contains gradient stop settings.
type StopSettings struct {
	// Step quantizes dragged offsets. Zero disables it.
	Step float64 `yaml:"step" toml:"step"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		Snap:  SnapSettings{Vertex: 8, Stop: 0.02},
		Pen:   PenSettings{Mirroring: vnet.MirrorAuto.String()},
		Stops: StopSettings{Step: 0},
	}
}

// fileNames are tried in order by LoadOptional.
var fileNames = []string{"vecedit.yaml", "vecedit.yml", "vecedit.toml"}

// Load reads settings from path. The format follows the file extension.
// Keys missing from the file keep their default values; unknown keys are
// an error.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	s, err := decode(filepath.Ext(path), data)
	if err != nil {
		return Settings{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("config: %s: %w", path, err)
	}
	vecedit.Logger().Debug("config: loaded", "path", path)
	return s, nil
}

// LoadOptional reads the first settings file found in dir, or returns the
// defaults when there is none. Later files shadowed by the first one are
// reported with a warning and otherwise ignored.
func LoadOptional(dir string) (Settings, error) {
	var found []string
	for _, name := range fileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return Settings{}, fmt.Errorf("config: stat %s: %w", path, err)
		}
		found = append(found, path)
	}
	if len(found) == 0 {
		return Default(), nil
	}
	for _, path := range found[1:] {
		vecedit.Logger().Warn("config: ignoring shadowed settings file", "path", path, "using", found[0])
	}
	return Load(found[0])
}

func decode(ext string, data []byte) (Settings, error) {
	s := Default()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return Settings{}, err
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return Settings{}, err
		}
	default:
		return Settings{}, fmt.Errorf("unknown format %q: %w", ext, vecedit.ErrInvalidArgument)
	}
	return s, nil
}

// Validate rejects negative thresholds and unknown mirroring modes.
func (s Settings) Validate() error {
	switch {
	case s.Snap.Vertex < 0:
		return fmt.Errorf("snap.vertex %v is negative: %w", s.Snap.Vertex, vecedit.ErrInvalidArgument)
	case s.Snap.Stop < 0:
		return fmt.Errorf("snap.stop %v is negative: %w", s.Snap.Stop, vecedit.ErrInvalidArgument)
	case s.Stops.Step < 0 || s.Stops.Step > 1:
		return fmt.Errorf("stops.step %v outside [0, 1]: %w", s.Stops.Step, vecedit.ErrInvalidArgument)
	}
	if _, err := vnet.ParseMirroring(s.Pen.Mirroring); err != nil {
		return fmt.Errorf("pen.mirroring: %w", err)
	}
	return nil
}

// EditorOptions returns the pen editor options for a model-to-screen view
// transform, given in the f64.Aff3 form used by x/image. The vertex
// threshold is converted from screen to model units through view.
func (s Settings) EditorOptions(view f64.Aff3) ([]vnet.Option, error) {
	mode, err := vnet.ParseMirroring(s.Pen.Mirroring)
	if err != nil {
		return nil, fmt.Errorf("config: pen.mirroring: %w", err)
	}
	threshold := -1.0
	if s.Snap.Vertex > 0 {
		threshold = snap.ThresholdFor(s.Snap.Vertex, vecedit.MatrixFromAff3(view))
	}
	return []vnet.Option{
		vnet.WithMirroring(mode),
		vnet.WithVertexSnap(threshold),
	}, nil
}

// StopOptions returns the gradient stop list options.
func (s Settings) StopOptions() []stops.Option {
	return []stops.Option{
		stops.WithStep(s.Stops.Step),
		stops.WithStopSnap(s.Snap.Stop),
	}
}
