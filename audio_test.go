package main

import (
	"path/filepath"
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSoundFileFor(t *testing.T) {
	tests := []struct {
		char string
		want string
	}{
		{"a", "a.wav"},
		{"A", "a.wav"},
		{"7", "7.wav"},
		{"か", "か.wav"},
		{"カ", "か.wav"},
		{"ゃ", "や.wav"},
		{"ッ", "つ.wav"},
		{"ぉ", "お.wav"},
		{"!", ""},
		{"。", ""},
		{" ", ""},
		{"\n", ""},
		{"ab", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := soundFileFor(tt.char); got != tt.want {
			t.Errorf("soundFileFor(%q): expected %q, got %q", tt.char, tt.want, got)
		}
	}
}

func TestListTracks(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"02_flow_state.wav", "01_earth_root.wav", "notes.txt", "04_cloud_dream.MP3"} {
		if err := writeTestFile(filepath.Join(dir, name), ""); err != nil {
			t.Fatal(err)
		}
	}
	got := listTracks(dir)
	want := []string{"01_earth_root.wav", "02_flow_state.wav", "04_cloud_dream.MP3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if listTracks(filepath.Join(dir, "missing")) != nil {
		t.Error("Expected nil for a missing directory")
	}
}

func TestDecodeAudioRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.ogg")
	if err := writeTestFile(path, "data"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := decodeAudio(path); err == nil {
		t.Error("Expected an error for .ogg")
	}
}

func TestUninitializedSoundManagerIsSilent(t *testing.T) {
	sm := NewSoundManager(t.TempDir(), t.TempDir())
	sm.Play("a")
	sm.PlayMusicLoop("01_earth_root.wav")
	sm.Stop()
	sm.Cleanup()
	if len(sm.cues) != 0 {
		t.Errorf("Expected no cues loaded before Initialize")
	}
}

func TestMusicOverlay(t *testing.T) {
	m, audio, _ := newTestModel(t)
	m.bgmDir = t.TempDir()
	if err := writeTestFile(filepath.Join(m.bgmDir, "01_earth_root.wav"), ""); err != nil {
		t.Fatal(err)
	}
	m.openMusic()
	m.handleOverlayKey(tea.KeyMsg{Type: tea.KeyEnter})
	m.handleOverlayKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})

	if len(audio.tracks) != 1 || audio.tracks[0] != "01_earth_root.wav" {
		t.Errorf("Expected one track started, got %v", audio.tracks)
	}
	if audio.stops != 1 {
		t.Errorf("Expected one stop, got %d", audio.stops)
	}
}
