package sr

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	domainerrors "trafficalert/internal/domain/errors"
	"trafficalert/internal/errors"
)

type areaXML struct {
	Name string `xml:"name,attr"`
}

// The coordinate lookup answers with a bare <area>, the listing with <areas><area/>...</areas>.
type areasResponse struct {
	Area  *areaXML `xml:"area"`
	Areas *struct {
		Items []areaXML `xml:"area"`
	} `xml:"areas"`
}

// ListAreas returns the names of every traffic area.
func (c *Client) ListAreas(ctx context.Context) ([]string, error) {
	query := url.Values{}
	query.Set("pagination", "false")

	var resp areasResponse
	if err := c.get(ctx, "/traffic/areas", query, &resp); err != nil {
		return nil, err
	}
	if resp.Areas == nil {
		return nil, errors.New("response has no areas element")
	}

	names := make([]string, 0, len(resp.Areas.Items))
	for _, area := range resp.Areas.Items {
		if area.Name != "" {
			names = append(names, area.Name)
		}
	}

	return names, nil
}

// Classify asks the API which traffic area covers the point.
func (c *Client) Classify(ctx context.Context, lat, lon int) (string, error) {
	query := url.Values{}
	query.Set("latitude", strconv.Itoa(lat))
	query.Set("longitude", strconv.Itoa(lon))

	var resp areasResponse
	if err := c.get(ctx, "/traffic/areas", query, &resp); err != nil {
		return "", errors.Mark(err, domainerrors.ErrAreaLookupFailed)
	}

	if resp.Area == nil || resp.Area.Name == "" {
		return "", domainerrors.ErrAreaNotFound
	}

	c.logger.DebugContext(ctx, "Classified coordinates",
		slog.Int("lat", lat),
		slog.Int("lon", lon),
		slog.String("area", resp.Area.Name),
	)

	return resp.Area.Name, nil
}
