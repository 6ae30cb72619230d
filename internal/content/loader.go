package content

import (
	"embed"
	"errors"
	"fmt"
	"path"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// File names of the catalog collections.
const (
	FileJobs      = "jobs.yaml"
	FileLocations = "locations.yaml"
	FileFAQs      = "faqs.yaml"
	FileAudits    = "audits.yaml"
	FileResearch  = "research.yaml"
	FileNews      = "news.yaml"
)

// embeddedData holds the catalog shipped with the binary.
//
//go:embed data/*.yaml
var embeddedData embed.FS

// ErrNoRecords is returned for a collection file with no records.
var ErrNoRecords = errors.New("collection has no records")

// EmbeddedDir is the directory of the embedded catalog inside EmbeddedFs.
const EmbeddedDir = "data"

// EmbeddedFs exposes the built-in catalog as an afero filesystem.
func EmbeddedFs() afero.Fs {
	return afero.FromIOFS{FS: embeddedData}
}

// Load reads every collection from dir on fs.
func Load(fs afero.Fs, dir string) (*Catalog, error) {
	var cat Catalog
	var errs []error

	collect := func(name string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	collect(FileJobs, loadList(fs, dir, FileJobs, &cat.Jobs))
	collect(FileLocations, loadList(fs, dir, FileLocations, &cat.Locations))
	collect(FileFAQs, loadList(fs, dir, FileFAQs, &cat.FAQs))
	collect(FileAudits, loadList(fs, dir, FileAudits, &cat.Audits))
	collect(FileResearch, loadList(fs, dir, FileResearch, &cat.Research))
	collect(FileNews, loadList(fs, dir, FileNews, &cat.News))

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &cat, nil
}

// loadList decodes one YAML list into out and checks its records.
func loadList[T Searchable](fs afero.Fs, dir, name string, out *[]T) error {
	data, err := afero.ReadFile(fs, path.Join(dir, name))
	if err != nil {
		return fmt.Errorf("failed to read: %w", err)
	}
	var items []T
	if err := yaml.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}
	// A file caught mid-rewrite decodes to nothing.
	if len(items) == 0 {
		return ErrNoRecords
	}
	if err := validateList(items); err != nil {
		return err
	}
	*out = items
	return nil
}

// validateList requires every record to have a unique id and a title.
func validateList[T Searchable](items []T) error {
	seen := make(map[string]int, len(items))
	for i, item := range items {
		if item.Key() == "" {
			return fmt.Errorf("record %d has no id", i)
		}
		if item.SearchTitle() == "" {
			return fmt.Errorf("record %q has no title", item.Key())
		}
		if prev, dup := seen[item.Key()]; dup {
			return fmt.Errorf("duplicate id %q at records %d and %d", item.Key(), prev, i)
		}
		seen[item.Key()] = i
	}
	return nil
}
