package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/fwojciec/provscan/bloom"
)

// LoadURLs reads one URL per line from path. Blank lines are skipped and a
// UTF-8 BOM on the first line is stripped. Lines are not validated as URLs;
// a bad line becomes a failed URL downstream rather than aborting the run.
func LoadURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		if line == "" {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return urls, nil
}

// MergeURLs appends sitemap-discovered URLs to the file URLs, dropping
// discovered URLs already present. File URLs pass through untouched,
// duplicates included: the run processes one pipeline item per input line.
//
// The Bloom filter is only a prefilter over the large discovered sets; a
// URL is dropped only after an exact membership check, so a false positive
// can never lose one.
func MergeURLs(fileURLs, discovered []string) []string {
	if len(discovered) == 0 {
		return fileURLs
	}

	prefilter := bloom.NewFilter(uint(len(fileURLs)+len(discovered)), 0.001)
	seen := make(map[string]bool, len(fileURLs))
	for _, url := range fileURLs {
		prefilter.Add(url)
		seen[url] = true
	}

	merged := fileURLs
	for _, url := range discovered {
		if prefilter.Test(url) && seen[url] {
			continue
		}
		prefilter.Add(url)
		seen[url] = true
		merged = append(merged, url)
	}

	return merged
}
