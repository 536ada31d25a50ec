package main

import (
	"io"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	config := loadConfig()

	if config.LogFile != "" {
		f, err := tea.LogToFile(config.LogFile, "synkey")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var audio Audio = silentAudio{}
	if config.Sound {
		sm := NewSoundManager(config.AssetDir("sounds"), config.AssetDir("bgm"))
		if err := sm.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer sm.Cleanup()
			audio = sm
		}
	}

	p := tea.NewProgram(
		initialModel(config, audio),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func initialModel(config *Config, audio Audio) model {
	themes := NewThemeFeed(config.AssetDir("themes"))
	fonts, err := newFontSet(loadFontData(config.FontPath))
	if err != nil {
		log.Printf("fonts: %v", err)
	}

	raster, err := newRasterizer(fonts, themes)
	if err != nil {
		log.Printf("rasterizer: %v", err)
	}

	input := textinput.New()
	input.CharLimit = 32
	input.Width = 24

	m := model{
		config:           config,
		mode:             ModeSetting,
		session:          newSession(),
		renderer:         NewRenderer(paperWidth, newMeasurer(config.Measure, fonts)),
		raster:           raster,
		profiles:         NewProfileStore(config.AssetDir("profiles")),
		profile:          NewColorProfile(nil),
		themes:           themes,
		audio:            audio,
		bgmDir:           config.AssetDir("bgm"),
		lang:             config.Language,
		styleIndex:       styleIndex(config.UIStyle),
		nameInput:        input,
		dragSticker:      -1,
		lastClickSticker: -1,
		now:              time.Now,
		copyText:         writeClipboard,
	}

	if config.Profile != "" {
		m.profile = m.profiles.Load(config.Profile)
	} else {
		m.openProfiles()
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.overlay != OverlayNone {
			return m, m.handleOverlayKey(msg)
		}
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		if m.overlay != OverlayNone {
			return m, nil
		}
		m.handleMouse(msg)
		return m, nil
	}
	return m, nil
}
