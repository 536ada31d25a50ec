package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

const profileExt = ".json"

var errInvalidProfileName = errors.New("invalid profile name")

// ProfileStore keeps one JSON file per profile in dir.
type ProfileStore struct {
	dir string
}

func NewProfileStore(dir string) *ProfileStore {
	return &ProfileStore{dir: dir}
}

func (s *ProfileStore) path(name string) string {
	return filepath.Join(s.dir, name+profileExt)
}

// List returns the profile names found in the store, sorted.
func (s *ProfileStore) List() []string {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*"+profileExt))
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), profileExt))
	}
	sort.Strings(names)
	return names
}

// Create writes an empty profile. An existing profile is left alone.
func (s *ProfileStore) Create(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", errInvalidProfileName, name)
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}
	if _, err := os.Stat(s.path(name)); err == nil {
		return nil
	}
	if err := os.WriteFile(s.path(name), []byte("{}"), 0644); err != nil {
		return fmt.Errorf("create profile %s: %w", name, err)
	}
	return nil
}

// Load reads a profile. A missing, unreadable or corrupt file yields an
// empty profile; values that are not colours are skipped.
func (s *ProfileStore) Load(name string) *ColorProfile {
	p := &ColorProfile{
		colors: make(map[string]string),
		store:  s,
		name:   name,
	}
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("profile %s: %v", name, err)
		}
		return p
	}
	if !gjson.ValidBytes(data) {
		log.Printf("profile %s: not valid JSON, starting empty", name)
		return p
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		log.Printf("profile %s: not an object, starting empty", name)
		return p
	}
	root.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			return true
		}
		if hex, ok := normalizeHex(value.String()); ok {
			p.colors[key.String()] = hex
		}
		return true
	})
	return p
}

// Save writes colors wholesale as indented JSON, keeping non-ASCII keys
// literal.
func (s *ProfileStore) Save(name string, colors map[string]string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(colors); err != nil {
		return fmt.Errorf("encode profile %s: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write profile %s: %w", name, err)
	}
	return nil
}

// ColorProfile maps characters to their assigned colour. Every change is
// written through to the store; write failures are logged and dropped.
type ColorProfile struct {
	colors map[string]string
	store  *ProfileStore
	name   string
}

// NewColorProfile builds a profile that is not backed by a store.
func NewColorProfile(colors map[string]string) *ColorProfile {
	p := &ColorProfile{colors: make(map[string]string, len(colors))}
	for k, v := range colors {
		if hex, ok := normalizeHex(v); ok {
			p.colors[k] = hex
		}
	}
	return p
}

func (p *ColorProfile) Name() string {
	return p.name
}

func (p *ColorProfile) Len() int {
	return len(p.colors)
}

func (p *ColorProfile) Lookup(char string) (string, bool) {
	c, ok := p.colors[char]
	return c, ok
}

func (p *ColorProfile) Get(char, fallback string) string {
	if c, ok := p.colors[char]; ok {
		return c
	}
	return fallback
}

// Set assigns hex to char and persists the profile. It reports false when
// hex is not a colour.
func (p *ColorProfile) Set(char, hex string) bool {
	norm, ok := normalizeHex(hex)
	if !ok {
		return false
	}
	p.colors[char] = norm
	if p.store != nil {
		if err := p.store.Save(p.name, p.colors); err != nil {
			log.Printf("save profile: %v", err)
		}
	}
	return true
}

func (p *ColorProfile) Snapshot() map[string]string {
	out := make(map[string]string, len(p.colors))
	for k, v := range p.colors {
		out[k] = v
	}
	return out
}
