package main

import (
	"regexp"
	"time"

	"github.com/fwojciec/provscan"
)

// defaultModel targets a local Ollama instance; --backend=gemini ignores it.
const defaultModel = "qwen2.5:3b"

// CLI defines the command-line interface.
type CLI struct {
	URLFile   string `arg:"" help:"Text file with one profile URL per line."`
	OutputCSV string `arg:"" help:"Destination CSV file (overwritten)."`

	Endpoint string        `default:"http://localhost:11434/v1/chat/completions" help:"OpenAI-compatible chat completions endpoint."`
	Model    string        `default:"${default_model}" help:"Model name to request."`
	APIKey   string        `env:"PROVSCAN_API_KEY" default:"sk-1234" help:"API key for the completion endpoint."`
	Backend  string        `enum:"openai,gemini" default:"openai" help:"Completion backend (openai or gemini)."`
	Delay    time.Duration `default:"500ms" help:"Pause between consecutive profile fetches."`
	Timeout  time.Duration `default:"60s" help:"Per-request timeout for fetches and completions."`

	Render      bool          `help:"Fetch pages with a headless browser for JavaScript-rendered profiles."`
	RenderDelay time.Duration `default:"2s" help:"Extra wait after page load when rendering."`
	NoSections  bool          `help:"Skip section heuristics and send extracted page text to the model."`

	Sitemap string   `help:"Sitemap URL; discovered profile URLs are merged with the URL file."`
	Filter  []string `help:"Regex patterns; sitemap URLs must match at least one."`

	Archive string `help:"Directory for markdown copies of fetched pages." type:"path"`
	DB      string `help:"SQLite database path for the provider inventory." type:"path"`

	Verbose bool `short:"v" help:"Log fetch and completion details to stderr."`
}

// buildFilter compiles the --filter patterns into a URLFilter.
// Returns nil when no patterns are given.
func buildFilter(patterns []string) (*provscan.URLFilter, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	filter := &provscan.URLFilter{}
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, provscan.Errorf(provscan.EINVALID, "invalid filter pattern %q: %v", pattern, err)
		}
		filter.Include = append(filter.Include, re)
	}

	return filter, nil
}
