// Command provscan extracts structured clinician records from profile pages
// into a CSV inventory, using an LLM to turn page text into fields.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/provscan"
	"github.com/fwojciec/provscan/csv"
	"github.com/fwojciec/provscan/fs"
	"github.com/fwojciec/provscan/gemini"
	"github.com/fwojciec/provscan/goquery"
	"github.com/fwojciec/provscan/htmltomarkdown"
	provhttp "github.com/fwojciec/provscan/http"
	"github.com/fwojciec/provscan/openai"
	"github.com/fwojciec/provscan/pipeline"
	"github.com/fwojciec/provscan/rod"
	provslog "github.com/fwojciec/provscan/slog"
	"github.com/fwojciec/provscan/sqlite"
	"github.com/fwojciec/provscan/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, open only when --db is given.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("provscan"),
		kong.Description("Extract clinician profile pages into a CSV inventory"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"default_model": defaultModel},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Assemble the URL list before touching the output file, so a bad
	// input path never truncates an existing inventory.
	urls, err := LoadURLs(cli.URLFile)
	if err != nil {
		return fmt.Errorf("reading URL file: %w", err)
	}

	if cli.Sitemap != "" {
		filter, err := buildFilter(cli.Filter)
		if err != nil {
			return err
		}

		var sitemaps provscan.SitemapService = provhttp.NewSitemapService(nil)
		discovered, err := sitemaps.DiscoverURLs(ctx, cli.Sitemap, filter)
		if err != nil {
			return fmt.Errorf("sitemap discovery: %w", err)
		}
		urls = MergeURLs(urls, discovered)
	}

	if len(urls) == 0 {
		return fmt.Errorf("no URLs to process")
	}

	writer, err := csv.NewWriter(cli.OutputCSV)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	fetcher, err := m.newFetcher(cli, stderr)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	completer, err := newCompleter(ctx, cli)
	if err != nil {
		return err
	}

	if logger != nil {
		fetcher = provslog.NewLoggingFetcher(fetcher, logger)
		completer = provslog.NewLoggingCompleter(completer, logger)
	}

	p := &pipeline.Pipeline{
		Fetcher:   fetcher,
		Sections:  goquery.NewExtractor(),
		Completer: completer,
		Writer:    writer,
		Pacer:     pipeline.NewPacer(cli.Delay),
		Logger:    logger,
	}

	if cli.NoSections {
		p.Content = trafilatura.NewExtractor()
	}

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("opening database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		p.Records = sqlite.NewRecordService(m.DB)
	}

	if cli.Archive != "" {
		p.Archive = fs.NewArchive(cli.Archive)
		p.Converter = htmltomarkdown.NewConverter()
	}

	result, err := p.Run(ctx, urls, progressPrinter(stdout))
	if err != nil {
		return err
	}

	printSummary(stdout, result)
	return nil
}

// newFetcher selects the plain HTTP fetcher or the rendering browser
// fetcher based on the flags.
func (m *Main) newFetcher(cli *CLI, stderr io.Writer) (provscan.Fetcher, error) {
	if !cli.Render {
		return provhttp.NewFetcher(provhttp.WithTimeout(cli.Timeout)), nil
	}

	fetcher, err := rod.NewFetcher(
		rod.WithFetchTimeout(cli.Timeout),
		rod.WithRenderDelay(cli.RenderDelay),
	)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return fetcher, nil
}

// newCompleter builds the completion backend.
func newCompleter(ctx context.Context, cli *CLI) (provscan.Completer, error) {
	switch cli.Backend {
	case "gemini":
		client, err := genai.NewClient(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("creating gemini client: %w", err)
		}
		model := cli.Model
		if model == defaultModel {
			// The local-Ollama default makes no sense for Gemini.
			model = ""
		}
		return gemini.NewCompleter(client, model), nil
	default:
		return openai.NewCompleter(cli.Endpoint, cli.Model, cli.APIKey,
			openai.WithTimeout(cli.Timeout)), nil
	}
}

// progressPrinter writes one line per processed URL.
func progressPrinter(w io.Writer) pipeline.ProgressFunc {
	return func(e pipeline.ProgressEvent) {
		switch e.Type {
		case pipeline.ProgressStarted:
			fmt.Fprintf(w, "Processing %d URLs\n", e.Total)
		case pipeline.ProgressCompleted:
			fmt.Fprintf(w, "[%d/%d] (%.1f%%) ok %s\n",
				e.Completed, e.Total, percent(e.Completed, e.Total), e.URL)
		case pipeline.ProgressFailed:
			fmt.Fprintf(w, "[%d/%d] (%.1f%%) FAILED %s (%s: %v)\n",
				e.Completed, e.Total, percent(e.Completed, e.Total), e.URL, e.Stage, e.Error)
		}
	}
}

// printSummary reports the final counts and lists failed URLs so they can be
// retried from a new URL file.
func printSummary(w io.Writer, result *pipeline.Result) {
	fmt.Fprintf(w, "\nDone: %d succeeded, %d failed (%.1f%% of %d)\n",
		result.Succeeded, len(result.FailedURLs),
		percent(result.Succeeded, result.Attempted), result.Attempted)

	if len(result.FailedURLs) > 0 {
		fmt.Fprintln(w, "Failed URLs:")
		for _, url := range result.FailedURLs {
			fmt.Fprintf(w, "  %s\n", url)
		}
	}
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
