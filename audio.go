package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const sampleRate = beep.SampleRate(44100)

// Audio is the sound collaborator. Every call is fire-and-forget.
type Audio interface {
	Play(char string)
	PlayMusicLoop(track string)
	Stop()
}

type silentAudio struct{}

func (silentAudio) Play(string)          {}
func (silentAudio) PlayMusicLoop(string) {}
func (silentAudio) Stop()                {}

// SoundManager plays per-character cues from soundsDir and loops background
// music from bgmDir. Missing or undecodable files are skipped one by one.
type SoundManager struct {
	mu          sync.Mutex
	soundsDir   string
	bgmDir      string
	mixer       *beep.Mixer
	cues        map[string]*beep.Buffer
	missing     map[string]bool
	music       *beep.Ctrl
	musicCloser beep.StreamSeekCloser
	initialized bool
}

func NewSoundManager(soundsDir, bgmDir string) *SoundManager {
	return &SoundManager{
		soundsDir: soundsDir,
		bgmDir:    bgmDir,
		mixer:     &beep.Mixer{},
		cues:      make(map[string]*beep.Buffer),
		missing:   make(map[string]bool),
	}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops everything that is playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.stopMusicLocked()
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) Play(char string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	name := soundFileFor(char)
	if name == "" {
		return
	}
	buf := sm.cue(name)
	if buf == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// cue loads and caches a sound file. Failures are remembered so a missing
// file is only reported once.
func (sm *SoundManager) cue(name string) *beep.Buffer {
	if buf, ok := sm.cues[name]; ok {
		return buf
	}
	if sm.missing[name] {
		return nil
	}
	streamer, format, err := decodeAudio(filepath.Join(sm.soundsDir, name))
	if err != nil {
		log.Printf("sound %s: %v", name, err)
		sm.missing[name] = true
		return nil
	}
	defer streamer.Close()

	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(beep.Resample(4, format.SampleRate, sampleRate, streamer))
	sm.cues[name] = buf
	return buf
}

// PlayMusicLoop replaces the current track with track, looped forever.
func (sm *SoundManager) PlayMusicLoop(track string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer, format, err := decodeAudio(filepath.Join(sm.bgmDir, track))
	if err != nil {
		log.Printf("music %s: %v", track, err)
		return
	}
	sm.stopMusicLocked()

	looped := beep.Loop(-1, streamer)
	ctrl := &beep.Ctrl{Streamer: beep.Resample(4, format.SampleRate, sampleRate, looped), Paused: false}
	sm.music = ctrl
	sm.musicCloser = streamer
	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

func (sm *SoundManager) Stop() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.stopMusicLocked()
}

func (sm *SoundManager) stopMusicLocked() {
	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	sm.music.Streamer = nil
	speaker.Unlock()
	if err := sm.musicCloser.Close(); err != nil {
		log.Printf("close music: %v", err)
	}
	sm.music = nil
	sm.musicCloser = nil
}

// Tracks lists the music files in the bgm directory.
func (sm *SoundManager) Tracks() []string {
	return listTracks(sm.bgmDir)
}

func listTracks(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	tracks := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".wav", ".mp3":
			tracks = append(tracks, e.Name())
		}
	}
	sort.Strings(tracks)
	return tracks
}

func decodeAudio(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		err = fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, err
	}
	return streamer, format, nil
}

var smallKana = map[rune]rune{
	'ぁ': 'あ', 'ぃ': 'い', 'ぅ': 'う', 'ぇ': 'え', 'ぉ': 'お',
	'っ': 'つ', 'ゃ': 'や', 'ゅ': 'ゆ', 'ょ': 'よ', 'ゎ': 'わ',
}

// soundFileFor names the cue file of char: kana fold katakana and small
// forms onto the full hiragana, latin letters fold to lower case.
func soundFileFor(char string) string {
	r, size := utf8.DecodeRuneInString(char)
	if r == utf8.RuneError || size != len(char) {
		return ""
	}
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return string(unicode.ToLower(r)) + ".wav"
	case r >= 'ァ' && r <= 'ヶ':
		r -= 'ァ' - 'ぁ'
	case r >= 'ぁ' && r <= 'ゖ':
	default:
		return ""
	}
	if full, ok := smallKana[r]; ok {
		r = full
	}
	return string(r) + ".wav"
}
