package fetch

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
)

// Version is one row of the registry's extension_versions.csv.
type Version struct {
	ID          string
	Date        string
	Version     string
	BaseURL     string
	DownloadURL string
}

// Live reports whether the version tracks a branch (like master) rather
// than a dated release.
func (v Version) Live() bool {
	return v.Date == ""
}

// Versions fetches and parses the registry's extension-versions CSV.
func (d *Downloader) Versions(ctx context.Context, url string) ([]Version, error) {
	data, err := d.get(ctx, url)
	if err != nil {
		return nil, err
	}
	versions, err := ParseVersions(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fetch: parse versions from %s: %w", url, err)
	}
	return versions, nil
}

// ParseVersions reads extension-version records from CSV with a header
// row of Id, Date, Version, Base URL, Download URL.
func ParseVersions(r io.Reader) ([]Version, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range []string{"Id", "Version"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var versions []Version
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		versions = append(versions, Version{
			ID:          field(record, "Id"),
			Date:        field(record, "Date"),
			Version:     field(record, "Version"),
			BaseURL:     field(record, "Base URL"),
			DownloadURL: field(record, "Download URL"),
		})
	}
	return versions, nil
}
