package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vitalpoint/callhub-api/reconcile"
	"github.com/vitalpoint/callhub-api/store"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

type model struct {
	engine   *reconcile.Engine
	quitting bool
	notice   string
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.moveSelection(-1)
		return m, nil
	case "down", "j":
		m.moveSelection(1)
		return m, nil
	}

	runes := []rune(keyMsg.String())
	if len(runes) != 1 {
		return m, nil
	}

	m.notice = ""
	if err := m.engine.HandleKey(runes[0]); err != nil {
		m.notice = err.Error()
	}
	return m, nil
}

func (m *model) moveSelection(delta int) {
	item := m.engine.Item()
	if item == nil || len(item.Candidates) == 0 {
		return
	}

	current := 0
	if c := m.engine.SelectedCandidate(); c != nil {
		for i := range item.Candidates {
			if &item.Candidates[i] == c {
				current = i
				break
			}
		}
	}

	next := current + delta
	if next < 0 {
		next = 0
	}
	if next >= len(item.Candidates) {
		next = len(item.Candidates) - 1
	}
	m.engine.Select(next)
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("callhub reconcile: %s mode", m.engine.Mode().Name())))
	b.WriteString("\n\n")

	switch m.engine.State() {
	case reconcile.ErrorState:
		b.WriteString(errorStyle.Render("error: " + m.engine.Err().Error()))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("press any action key to retry, or contact your call captain if this persists"))
		b.WriteString("\n")
		return b.String()
	case reconcile.AwaitingItem, reconcile.Committing:
		b.WriteString("working...\n")
		return b.String()
	case reconcile.Idle:
		b.WriteString("starting...\n")
		return b.String()
	}

	item := m.engine.Item()
	if item == nil {
		return b.String()
	}

	if item.Source != nil {
		s := item.Summary
		b.WriteString(fmt.Sprintf("source: %s\n", s.Name))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  (%v, %v)  %s  %s  %s\n", s.Latitude, s.Longitude, s.Address, s.Phone, s.Website)))
	}
	if item.Task != nil {
		b.WriteString(fmt.Sprintf("duplicate task: %s\n", item.Task.Location.Name))
	}
	b.WriteString("\n")

	selected := m.engine.SelectedCandidate()
	for i := range item.Candidates {
		c := &item.Candidates[i]
		line := fmt.Sprintf("%2d. %-40s %8.2f", i+1, c.Name, c.Distance)
		if c == selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if len(item.Candidates) == 0 {
		b.WriteString(dimStyle.Render("  no nearby candidates\n"))
	}

	b.WriteString("\n")
	for _, kb := range m.engine.Mode().Legend() {
		b.WriteString(dimStyle.Render(fmt.Sprintf("[%s] %s  ", kb.Keys, kb.Label)))
	}
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.notice))
		b.WriteString("\n")
	}

	return b.String()
}

func main() {
	var (
		configFile string
		modeName   string
		forcedID   string
		query      string
		region     string
		reviewer   string
	)

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.StringVar(&modeName, "mode", "match", "reconciliation mode: match or merge")
	flag.StringVar(&forcedID, "id", "", "[optional] force a specific source location id (match mode)")
	flag.StringVar(&query, "q", "", "[optional] free-text task filter (merge mode)")
	flag.StringVar(&region, "region", "", "[optional] region task filter (merge mode)")
	flag.StringVar(&reviewer, "reviewer", "", "reviewer identity recorded on resolutions")
	flag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(configFile)
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "cannot read config:", err)
		os.Exit(1)
	}

	// the TUI owns the terminal
	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)

	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	mongoClient, err := mongo.NewClient(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "create mongo client:", err)
		os.Exit(1)
	}
	if err := mongoClient.Connect(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "connect mongo:", err)
		os.Exit(1)
	}
	mongoStore := store.NewCallhubStore(mongoClient, viper.GetString("mongo.database"), nil)
	defer mongoStore.Close()

	var mode reconcile.Mode
	switch modeName {
	case "match":
		mode = reconcile.NewMatchMode(mongoStore)
	case "merge":
		mode = reconcile.NewMergeMode(mongoStore, query, region)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", modeName)
		os.Exit(1)
	}

	engine := reconcile.NewEngine(mode, reviewer)
	if err := engine.Start(forcedID); err != nil {
		// the engine is in its error state; the UI shows the detail
		log.WithError(err).Warn("initial fetch failed")
	}

	if _, err := tea.NewProgram(model{engine: engine}).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
