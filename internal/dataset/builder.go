// ABOUTME: Record builder joining SPDX list, detail, and FSF data into flat rows.
// ABOUTME: Runs the identifier parser and FSF classifier once per entry.

package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hamidahoderinwale/licences-db/internal/fsf"
	"github.com/hamidahoderinwale/licences-db/internal/models"
	"github.com/hamidahoderinwale/licences-db/internal/spdx"
	"github.com/hamidahoderinwale/licences-db/internal/spdxapi"
)

// Builder assembles dataset rows from fetched metadata.
type Builder struct {
	client *spdxapi.Client

	// Progress, when set, receives one human-readable line per step.
	Progress func(msg string)
}

// NewBuilder creates a builder over the given client.
func NewBuilder(client *spdxapi.Client) *Builder {
	return &Builder{client: client}
}

func (b *Builder) progress(msg string) {
	if b.Progress != nil {
		b.Progress(msg)
	}
}

// Licenses returns the raw SPDX licence list.
func (b *Builder) Licenses(ctx context.Context) ([]models.LicenseEntry, error) {
	return b.client.Licenses(ctx)
}

// BuildLicenses fetches every licence and assembles one row per entry.
// A sample > 0 limits the build to the first sample entries. A detail
// fetch failure degrades that row to list-level data rather than aborting
// the whole build.
func (b *Builder) BuildLicenses(ctx context.Context, sample int) ([]models.LicenseRow, error) {
	b.progress("Fetching SPDX license list...")
	entries, err := b.client.Licenses(ctx)
	if err != nil {
		return nil, err
	}
	b.progress(fmt.Sprintf("Found %d licenses.", len(entries)))

	if sample > 0 && sample < len(entries) {
		entries = entries[:sample]
		b.progress(fmt.Sprintf("Sampling first %d licenses.", sample))
	}

	rows := make([]models.LicenseRow, 0, len(entries))
	for i, entry := range entries {
		b.progress(fmt.Sprintf("[%d/%d] Fetching %s...", i+1, len(entries), entry.LicenseID))

		row, err := b.buildLicenseRow(ctx, entry)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			b.progress(fmt.Sprintf("Warning: %s: %v", entry.LicenseID, err))
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// buildLicenseRow assembles one row. It always returns a usable row; the
// error reports fetch problems the caller may want to surface.
func (b *Builder) buildLicenseRow(ctx context.Context, entry models.LicenseEntry) (models.LicenseRow, error) {
	parsed := spdx.Parse(entry.LicenseID)
	row := models.LicenseRow{
		LicenseName:   entry.Name,
		SPDXID:        entry.LicenseID,
		LicenseFamily: parsed.Family,
		UsageCategory: UsageCategory(entry.LicenseID),
		SourceURL:     entry.SourceURL(),
	}
	if parsed.Version != "" {
		row.Version = &parsed.Version
	}
	if parsed.Modifier != spdx.ModifierNone {
		modifier := string(parsed.Modifier)
		row.VersionModifier = &modifier
	}

	fsfEntry, err := b.client.FSF(ctx, entry.LicenseID)
	found := err == nil
	if err != nil && !errors.Is(err, spdxapi.ErrNotFound) {
		return row, err
	}
	var tags []string
	if found {
		tags = fsfEntry.Tags
	}
	row.FSFGPLCompat = fsf.Classification(tags, found)
	if len(tags) > 0 {
		encoded, err := json.Marshal(tags)
		if err == nil {
			tagsJSON := string(encoded)
			row.FSFTags = &tagsJSON
		}
	}

	detail, err := b.client.LicenseDetail(ctx, entry.LicenseID)
	if err != nil {
		return row, err
	}
	row.FullText = detail.LicenseText
	row.PageMarkdown = LicensePage(detail, row.SourceURL, tags, row.FSFGPLCompat)

	return row, nil
}

// ErrUnknownLicense reports a lookup for an identifier the SPDX list
// doesn't carry.
var ErrUnknownLicense = errors.New("unknown licence identifier")

// Lookup builds the row for a single licence identifier. Matching is
// case-insensitive since SPDX identifiers are case-preserving but users
// rarely are.
func (b *Builder) Lookup(ctx context.Context, spdxID string) (*models.LicenseRow, error) {
	entries, err := b.client.Licenses(ctx)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if strings.EqualFold(entry.LicenseID, spdxID) {
			row, err := b.buildLicenseRow(ctx, entry)
			if err != nil {
				return nil, err
			}
			return &row, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", spdxID, ErrUnknownLicense)
}

// BuildExceptions fetches every exception and assembles one row per entry.
func (b *Builder) BuildExceptions(ctx context.Context, sample int) ([]models.ExceptionRow, error) {
	b.progress("Fetching SPDX exceptions list...")
	entries, err := b.client.Exceptions(ctx)
	if err != nil {
		return nil, err
	}
	b.progress(fmt.Sprintf("Found %d exceptions.", len(entries)))

	if sample > 0 && sample < len(entries) {
		entries = entries[:sample]
		b.progress(fmt.Sprintf("Sampling first %d exceptions.", sample))
	}

	rows := make([]models.ExceptionRow, 0, len(entries))
	for i, entry := range entries {
		b.progress(fmt.Sprintf("[%d/%d] Fetching %s...", i+1, len(entries), entry.LicenseExceptionID))

		row := models.ExceptionRow{
			ExceptionID:   entry.LicenseExceptionID,
			ExceptionName: entry.Name,
			SourceURL:     entry.SourceURL(),
			IsDeprecated:  entry.IsDeprecated,
		}

		detail, err := b.client.ExceptionDetail(ctx, entry.LicenseExceptionID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			b.progress(fmt.Sprintf("Warning: %s: %v", entry.LicenseExceptionID, err))
		} else {
			row.FullText = detail.LicenseExceptionText
			row.PageMarkdown = ExceptionPage(detail, row.SourceURL)
		}

		rows = append(rows, row)
	}

	return rows, nil
}
