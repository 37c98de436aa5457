// ABOUTME: Exception list and exception detail fetches.
// ABOUTME: Exceptions appear in WITH expressions (GPL-2.0-only WITH Classpath-exception-2.0).

package spdxapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hamidahoderinwale/licences-db/internal/models"
)

// Exceptions fetches the master SPDX exception list.
func (c *Client) Exceptions(ctx context.Context) ([]models.ExceptionEntry, error) {
	body, err := c.get(ctx, c.cfg.ExceptionsURL)
	if err != nil {
		return nil, err
	}

	var list struct {
		Exceptions []models.ExceptionEntry `json:"exceptions"`
	}
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("decode exception list: %w", err)
	}
	return list.Exceptions, nil
}

// ExceptionDetail fetches the full detail record for one exception.
func (c *Client) ExceptionDetail(ctx context.Context, exceptionID string) (*models.ExceptionDetail, error) {
	body, err := c.get(ctx, c.cfg.ExceptionDetailBase+exceptionID+".json")
	if err != nil {
		return nil, err
	}

	detail := &models.ExceptionDetail{}
	if err := json.Unmarshal(body, detail); err != nil {
		return nil, fmt.Errorf("decode detail for %s: %w", exceptionID, err)
	}
	return detail, nil
}
