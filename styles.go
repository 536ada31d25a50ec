package main

import "github.com/charmbracelet/lipgloss"

// uiStyle is one of the selectable chrome looks. The paper itself keeps its
// own colours; only bars, docks and keys follow the style.
type uiStyle struct {
	id      string
	bar     lipgloss.Color
	barText lipgloss.Color
	active  lipgloss.Color
	paper   lipgloss.Color
	border  lipgloss.Color
	key     lipgloss.Color
	dim     lipgloss.Color
}

var uiStyles = []uiStyle{
	{id: "clean", bar: "#F2F2F2", barText: "#333333", active: "#FFB7C5", paper: "#FFFFFF", border: "#BBBBBB", key: "#FFFFFF", dim: "#888888"},
	{id: "dark", bar: "#2B2B2B", barText: "#EEEEEE", active: "#5654A2", paper: "#FFFFFF", border: "#555555", key: "#EEEEEE", dim: "#999999"},
	{id: "sepia", bar: "#E8D9B5", barText: "#5B4636", active: "#C39143", paper: "#FBF3E4", border: "#A19361", key: "#FBF3E4", dim: "#8C7B5E"},
	{id: "ice", bar: "#DDEFF5", barText: "#1E50A2", active: "#A0D8EF", paper: "#FFFFFF", border: "#4C6CB3", key: "#F5FBFD", dim: "#6B8FA8"},
	{id: "pastel", bar: "#FDEFF4", barText: "#674196", active: "#E198B4", paper: "#FFFFFF", border: "#BBBCDE", key: "#FFF8FB", dim: "#A08BB5"},
}

func styleIndex(id string) int {
	for i, s := range uiStyles {
		if s.id == id {
			return i
		}
	}
	return 0
}

func (s uiStyle) barStyle() lipgloss.Style {
	return lipgloss.NewStyle().Background(s.bar).Foreground(s.barText).Padding(0, 1)
}

func (s uiStyle) buttonStyle(active bool) lipgloss.Style {
	st := lipgloss.NewStyle().Foreground(s.barText).Background(s.bar).Padding(0, 1)
	if active {
		st = st.Background(s.active).Bold(true)
	}
	return st
}

func (s uiStyle) paperBorder() lipgloss.Style {
	return lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(s.border)
}

func (s uiStyle) keyStyle(fg string, selected bool) lipgloss.Style {
	st := lipgloss.NewStyle().
		Width(keyWidth).
		Align(lipgloss.Center).
		Background(s.key).
		Foreground(lipgloss.Color(fg)).
		Bold(true)
	if selected {
		st = st.Reverse(true)
	}
	return st
}

func (s uiStyle) tabStyle(active bool) lipgloss.Style {
	st := lipgloss.NewStyle().Width(tabWidth).Align(lipgloss.Center).Foreground(s.barText).Background(s.bar)
	if active {
		st = st.Background(s.active).Bold(true)
	}
	return st
}

func (s uiStyle) dimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.dim)
}

func (s uiStyle) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#D7003A")).Bold(true)
}

func (s uiStyle) successStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#007B43")).Bold(true)
}
