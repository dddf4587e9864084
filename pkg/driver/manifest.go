package driver

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"cps/interpreter-go/pkg/interpreter"
	"cps/interpreter-go/pkg/runtime"
)

// Manifest is the run configuration spec.md §6 asks the core's caller to
// supply: host numeric bounds, the bitwise word width, and which of the
// two permissible resolutions the nondeterministic equality oracle should
// take for this run. A manifest is usually loaded from YAML; DefaultManifest
// gives the profile the interpreter uses when none is supplied.
type Manifest struct {
	Path     string
	Profile  string
	WordBits int
	MinInt   int64
	MaxInt   int64
	MinReal  float64
	MaxReal  float64
	Oracle   string
}

// Oracle mode names a Manifest.Oracle field may take.
const (
	OracleAlwaysEqual   = "always-equal"
	OracleAlwaysUnequal = "always-unequal"
)

// DefaultManifest models a 32-bit two's-complement word with the oracle
// always resolving to "equal" — the same default interpreter.DefaultLimits
// uses, expressed as a loadable/savable manifest.
func DefaultManifest() *Manifest {
	return &Manifest{
		Profile:  "word32",
		WordBits: 32,
		MinInt:   math.MinInt32,
		MaxInt:   math.MaxInt32,
		MinReal:  -math.MaxFloat64,
		MaxReal:  math.MaxFloat64,
		Oracle:   OracleAlwaysEqual,
	}
}

// LoadManifest parses a run manifest from disk.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var raw manifestDisk
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", abs, err)
	}

	m := raw.toManifest()
	m.Path = abs
	m.normalize()
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("manifest: %s: %w", abs, err)
	}
	return m, nil
}

// WriteManifest serialises m back to disk.
func WriteManifest(m *Manifest, path string) error {
	if m == nil {
		return fmt.Errorf("manifest: nil manifest")
	}
	if path == "" {
		if m.Path == "" {
			return fmt.Errorf("manifest: missing path")
		}
		path = m.Path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	m.Path = abs
	m.normalize()

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m.toDisk()); err != nil {
		return fmt.Errorf("manifest: marshal %s: %w", abs, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("manifest: encoder close: %w", err)
	}
	if err := os.WriteFile(abs, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("manifest: write %s: %w", abs, err)
	}
	return nil
}

func (m *Manifest) normalize() {
	if m == nil {
		return
	}
	m.Profile = sanitizeSegment(m.Profile)
	m.Oracle = strings.TrimSpace(strings.ToLower(m.Oracle))
	if m.WordBits == 0 {
		m.WordBits = 32
	}
	if m.MaxInt == 0 && m.MinInt == 0 {
		m.MinInt, m.MaxInt = math.MinInt32, math.MaxInt32
	}
	if m.MaxReal == 0 && m.MinReal == 0 {
		m.MinReal, m.MaxReal = -math.MaxFloat64, math.MaxFloat64
	}
	if m.Oracle == "" {
		m.Oracle = OracleAlwaysEqual
	}
}

func (m *Manifest) validate() error {
	if m.WordBits < 1 || m.WordBits > 64 {
		return fmt.Errorf("word_bits %d out of range [1,64]", m.WordBits)
	}
	if m.MinInt > m.MaxInt {
		return fmt.Errorf("min_int %d exceeds max_int %d", m.MinInt, m.MaxInt)
	}
	if m.MinReal > m.MaxReal {
		return fmt.Errorf("min_real %v exceeds max_real %v", m.MinReal, m.MaxReal)
	}
	switch m.Oracle {
	case OracleAlwaysEqual, OracleAlwaysUnequal:
	default:
		return fmt.Errorf("unknown oracle mode %q", m.Oracle)
	}
	return nil
}

// Limits converts the manifest into the interpreter.Limits the evaluator
// consumes: a host decimal decoder is always strconv.ParseFloat; the
// oracle is resolved from the manifest's chosen mode.
func (m *Manifest) Limits() (*interpreter.Limits, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	var oracle runtime.Oracle
	switch m.Oracle {
	case OracleAlwaysUnequal:
		oracle = func(ifEqual, ifUnequal bool) bool { return ifUnequal }
	default:
		oracle = func(ifEqual, ifUnequal bool) bool { return ifEqual }
	}
	return &interpreter.Limits{
		MinInt:   m.MinInt,
		MaxInt:   m.MaxInt,
		MinReal:  m.MinReal,
		MaxReal:  m.MaxReal,
		WordBits: m.WordBits,
		StringToReal: func(literal string) (float64, error) {
			return strconv.ParseFloat(literal, 64)
		},
		Oracle: oracle,
	}, nil
}

func (m *Manifest) toDisk() manifestDisk {
	return manifestDisk{
		Profile:  m.Profile,
		WordBits: m.WordBits,
		MinInt:   m.MinInt,
		MaxInt:   m.MaxInt,
		MinReal:  m.MinReal,
		MaxReal:  m.MaxReal,
		Oracle:   m.Oracle,
	}
}

type manifestDisk struct {
	Profile  string  `yaml:"profile"`
	WordBits int     `yaml:"word_bits"`
	MinInt   int64   `yaml:"min_int"`
	MaxInt   int64   `yaml:"max_int"`
	MinReal  float64 `yaml:"min_real"`
	MaxReal  float64 `yaml:"max_real"`
	Oracle   string  `yaml:"oracle"`
}

func (d manifestDisk) toManifest() *Manifest {
	m := &Manifest{
		Profile:  sanitizeSegment(d.Profile),
		WordBits: d.WordBits,
		MinInt:   d.MinInt,
		MaxInt:   d.MaxInt,
		MinReal:  d.MinReal,
		MaxReal:  d.MaxReal,
		Oracle:   strings.TrimSpace(strings.ToLower(d.Oracle)),
	}
	m.normalize()
	return m
}

func sanitizeSegment(s string) string {
	return strings.TrimSpace(s)
}
