package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	widgetgen "github.com/goliatone/go-widgetgen"
)

func main() {
	configPath := flag.String("config", "widgets.yaml", "widget config document to load")
	windowName := flag.String("window", "", "window to preview (defaults to the only window)")
	rendererName := flag.String("renderer", "htmlpreview", "renderer to use")
	output := flag.String("output", "", "output file (stdout if empty)")
	title := flag.String("title", "", "preview document title")
	validateOnly := flag.Bool("validate", false, "validate the config and exit")
	flag.Parse()

	data, err := os.ReadFile(*configPath)
	if err != nil {
		log.Fatalf("read config: %v", err)
	}

	cfg, err := widgetgen.LoadConfig(data)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("validate config: %v", err)
	}
	if *validateOnly {
		fmt.Printf("%s: %d widget(s), %d window(s) ok\n", *configPath, len(cfg.Definitions), len(cfg.Windows))
		return
	}

	window, err := pickWindow(cfg, *windowName)
	if err != nil {
		log.Fatal(err)
	}

	registry, err := widgetgen.NewRenderRegistry()
	if err != nil {
		log.Fatalf("configure renderers: %v", err)
	}
	renderer, err := registry.Get(*rendererName)
	if err != nil {
		log.Fatalf("resolve renderer: %v", err)
	}

	opts := widgetgen.RenderOptions{Title: *title}
	if opts.Title == "" {
		opts.Title = fmt.Sprintf("window %s", window.Name)
	}

	html, err := renderer.Render(context.Background(), window.Widget, opts)
	if err != nil {
		log.Fatalf("render preview: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, html, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Preview written to %s\n", *output)
		return
	}
	fmt.Println(string(html))
}

func pickWindow(cfg *widgetgen.Config, name string) (widgetgen.WindowDefinition, error) {
	if name != "" {
		window, ok := cfg.Windows[name]
		if !ok {
			return widgetgen.WindowDefinition{}, fmt.Errorf("no window named %q (have: %v)", name, windowNames(cfg))
		}
		return window, nil
	}
	if len(cfg.Windows) == 1 {
		for _, window := range cfg.Windows {
			return window, nil
		}
	}
	return widgetgen.WindowDefinition{}, fmt.Errorf("config has %d windows, pick one with -window (have: %v)", len(cfg.Windows), windowNames(cfg))
}

func windowNames(cfg *widgetgen.Config) []string {
	names := make([]string, 0, len(cfg.Windows))
	for name := range cfg.Windows {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
