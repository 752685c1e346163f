package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	setupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
)

// styled reports whether output should carry ANSI styling.
func styled() bool {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

func styleOK(s string) string {
	if !styled() {
		return s
	}
	return okStyle.Render(s)
}

func styleFail(s string) string {
	if !styled() {
		return s
	}
	return failStyle.Render(s)
}

func styleSetupFail(s string) string {
	if !styled() {
		return s
	}
	return setupStyle.Render(s)
}

func printSection(title string) {
	if !styled() {
		pterm.DisableStyling()
	}
	pterm.DefaultSection.Println(title)
}
