package sr

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"trafficalert/internal/domain/entity"
	"trafficalert/internal/errors"
)

type messagesResponse struct {
	Messages *struct {
		Items []messageXML `xml:"message"`
	} `xml:"messages"`
}

type messageXML struct {
	ID            int64   `xml:"id,attr"`
	Priority      string  `xml:"priority,attr"`
	CreatedDate   string  `xml:"createddate"`
	Title         string  `xml:"title"`
	ExactLocation *string `xml:"exactlocation"`
	Description   string  `xml:"description"`
	Category      string  `xml:"category"`
}

// FetchMessages returns the messages currently active in area.
// A response without a <messages> element is a failure, not an empty feed.
func (c *Client) FetchMessages(ctx context.Context, area string) ([]*entity.TrafficMessage, error) {
	query := url.Values{}
	query.Set("pagination", "false")
	query.Set("trafficareaname", area)

	var resp messagesResponse
	if err := c.get(ctx, "/traffic/messages", query, &resp); err != nil {
		return nil, c.fetchFailed(area, err)
	}

	if resp.Messages == nil {
		return nil, c.fetchFailed(area, errors.New("response has no messages element"))
	}

	messages := make([]*entity.TrafficMessage, 0, len(resp.Messages.Items))
	for _, item := range resp.Messages.Items {
		messages = append(messages, item.toEntity(area))
	}

	c.logger.DebugContext(ctx, "Fetched traffic messages",
		slog.String("area", area),
		slog.Int("count", len(messages)),
	)

	return messages, nil
}

func (m messageXML) toEntity(area string) *entity.TrafficMessage {
	var location *string
	if m.ExactLocation != nil && strings.TrimSpace(*m.ExactLocation) != "" {
		trimmed := strings.TrimSpace(*m.ExactLocation)
		location = &trimmed
	}

	return &entity.TrafficMessage{
		ID:            m.ID,
		Area:          area,
		CreatedDate:   strings.TrimSpace(m.CreatedDate),
		Priority:      entity.Priority(parseCode(m.Priority, 0)),
		Category:      entity.Category(parseCode(m.Category, -1)),
		Title:         strings.TrimSpace(m.Title),
		Description:   strings.TrimSpace(m.Description),
		ExactLocation: location,
	}
}
