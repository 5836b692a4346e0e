package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"matchwalk/internal/config"
	"matchwalk/internal/eventbus"
	"matchwalk/internal/ui"
)

func main() {
	// Parse command line arguments
	var text, pattern string
	flag.StringVar(&text, "text", "", "Text to search in (overrides the configured default)")
	flag.StringVar(&text, "t", "", "Text to search in (shorthand)")
	flag.StringVar(&pattern, "pattern", "", "Pattern to search for (overrides the configured default)")
	flag.StringVar(&pattern, "p", "", "Pattern to search for (shorthand)")
	flag.Parse()

	// Positional fallback: matchwalk TEXT PATTERN
	if text == "" && flag.NArg() > 0 {
		text = flag.Arg(0)
	}
	if pattern == "" && flag.NArg() > 1 {
		pattern = flag.Arg(1)
	}

	// Set up logging
	logFile, err := os.OpenFile("matchwalk.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		// Use default config
		cfg = config.DefaultConfig()
	}

	// Flags override configured defaults for this run
	if text != "" {
		cfg.DefaultText = text
	}
	if pattern != "" {
		cfg.DefaultPattern = pattern
	}

	// Persist edited defaults when the UI reports them changed
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.ConfigChangedEvent)
		if !ok {
			return
		}
		cfg.DefaultText = event.DefaultText
		cfg.DefaultPattern = event.DefaultPattern
		if !cfg.UISettings.AutosaveOnExit {
			return
		}
		if err := configSvc.Save(cfg); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	})

	// Log session milestones
	bus.Subscribe(eventbus.EventSearchStarted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchStartedEvent); ok {
			log.Printf("Search started: text=%q pattern=%q steps=%d", event.Text, event.Pattern, event.StepCount)
		}
	})
	bus.Subscribe(eventbus.EventMatchFound, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.MatchFoundEvent); ok {
			log.Printf("Match found at index %d", event.Index)
		}
	})
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchCompletedEvent); ok {
			log.Printf("Search completed: found=%v", event.Found)
		}
	})

	// Create UI model
	uiModel := ui.NewModel(bus, cfg)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	// Forward config/error events to the UI status bar
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventConfigSaved, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	close(eventChan)
}
