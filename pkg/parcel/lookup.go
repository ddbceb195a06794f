package parcel

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// parcelResponse is the feature-service JSON for the parcel layer.
type parcelResponse struct {
	Features []struct {
		Attributes struct {
			ParcelID  string  `json:"parcel_id"`
			SitusAddr string  `json:"situs_address"`
			LotSqFt   float64 `json:"lot_sqft"`
			LotWidth  float64 `json:"lot_width"`
			LotDepth  float64 `json:"lot_depth"`
		} `json:"attributes"`
	} `json:"features"`
}

// zoningResponse is the feature-service JSON for the base-zoning layer.
type zoningResponse struct {
	Features []struct {
		Attributes struct {
			ZoningZType string `json:"zoning_ztype"`
		} `json:"attributes"`
	} `json:"features"`
}

// historicResponse is the feature-service JSON for the historic-district layer.
type historicResponse struct {
	Features []struct {
		Attributes struct {
			DistrictName string `json:"district_name"`
		} `json:"attributes"`
	} `json:"features"`
}

// Lookup resolves an address through the parcel, zoning, and historic
// layers. Failures past the parcel stage degrade the record rather than
// aborting; a failure at the parcel stage returns an unmatched estimated
// record and no error.
func (c *client) Lookup(ctx context.Context, address string) (*Record, error) {
	rec := &Record{Address: address, Source: "estimated"}

	var parcels parcelResponse
	if err := c.query(ctx, "parcels", address, &parcels); err != nil || len(parcels.Features) == 0 {
		zap.L().Warn("parcel: lookup degraded to estimate",
			zap.String("address", address),
			zap.Error(err),
		)
		return rec, nil
	}

	attrs := parcels.Features[0].Attributes
	rec.ParcelID = attrs.ParcelID
	rec.LotAreaSqFt = attrs.LotSqFt
	rec.Width = attrs.LotWidth
	rec.Depth = attrs.LotDepth
	rec.Source = "parcel_api"
	rec.Matched = true

	var zoningResp zoningResponse
	if err := c.query(ctx, "zoning", address, &zoningResp); err == nil && len(zoningResp.Features) > 0 {
		rec.ZoningCode = zoningResp.Features[0].Attributes.ZoningZType
	} else {
		zap.L().Debug("parcel: zoning layer miss", zap.String("address", address), zap.Error(err))
	}

	var historic historicResponse
	if err := c.query(ctx, "historic", address, &historic); err == nil {
		rec.Historic = len(historic.Features) > 0
	}

	return rec, nil
}

// query hits one feature layer with an address filter and decodes the JSON.
func (c *client) query(ctx context.Context, layer, address string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return eris.Wrap(err, "parcel: rate limit")
	}

	params := url.Values{
		"address": {address},
		"f":       {"json"},
	}
	reqURL := c.baseURL + "/" + layer + "/query?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return eris.Wrapf(err, "parcel: build %s request", layer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return eris.Wrapf(err, "parcel: %s request", layer)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return eris.Errorf("parcel: %s layer returned status %d", layer, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrapf(err, "parcel: read %s body", layer)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return eris.Wrapf(err, "parcel: parse %s response", layer)
	}
	return nil
}
