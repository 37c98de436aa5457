// ABOUTME: Licence list, licence detail, and FSF metadata fetches.
// ABOUTME: Typed wrappers over the raw JSON endpoints.

package spdxapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hamidahoderinwale/licences-db/internal/models"
)

// Licenses fetches the master SPDX licence list.
func (c *Client) Licenses(ctx context.Context) ([]models.LicenseEntry, error) {
	body, err := c.get(ctx, c.cfg.LicensesURL)
	if err != nil {
		return nil, err
	}

	var list struct {
		Licenses []models.LicenseEntry `json:"licenses"`
	}
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("decode licence list: %w", err)
	}
	return list.Licenses, nil
}

// LicenseDetail fetches the full detail record for one licence.
func (c *Client) LicenseDetail(ctx context.Context, spdxID string) (*models.LicenseDetail, error) {
	body, err := c.get(ctx, c.cfg.LicenseDetailBase+spdxID+".json")
	if err != nil {
		return nil, err
	}

	detail := &models.LicenseDetail{}
	if err := json.Unmarshal(body, detail); err != nil {
		return nil, fmt.Errorf("decode detail for %s: %w", spdxID, err)
	}
	return detail, nil
}

// FSF fetches the FSF metadata record for one licence. Most licences have
// none; callers must treat ErrNotFound as absence, not failure.
func (c *Client) FSF(ctx context.Context, spdxID string) (*models.FSFEntry, error) {
	body, err := c.get(ctx, c.cfg.FSFAPIBase+spdxID+".json")
	if err != nil {
		return nil, err
	}

	entry := &models.FSFEntry{}
	if err := json.Unmarshal(body, entry); err != nil {
		return nil, fmt.Errorf("decode FSF record for %s: %w", spdxID, err)
	}
	return entry, nil
}
