package impl

import (
	"strings"
	"time"

	"trafficalert/config"
	"trafficalert/internal/domain/entity"
	domainerrors "trafficalert/internal/domain/errors"
	"trafficalert/internal/errors"
	"trafficalert/internal/usecase"
)

// timestampLayout renders month, day, hour and minute.
const timestampLayout = "Jan 2 15:04"

type messageFormatter struct {
	location *time.Location
}

// NewMessageFormatter renders timestamps in the configured dispatch timezone.
func NewMessageFormatter(cfg *config.Config) (usecase.MessageFormatter, error) {
	location, err := time.LoadLocation(cfg.Dispatch.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load timezone %q", cfg.Dispatch.Timezone)
	}

	return &messageFormatter{location: location}, nil
}

// Format renders:
//
//	{title}
//	{Jan 2 15:04} · {priority} · {category}
//	{description}
//	Location: {exact location}   (only when present)
func (f *messageFormatter) Format(message *entity.TrafficMessage) (string, error) {
	createdAt, err := message.CreatedAt()
	if err != nil {
		return "", errors.Wrapf(errors.Mark(err, domainerrors.ErrFormat), "message %d", message.ID)
	}

	var b strings.Builder
	b.WriteString(message.Title)
	b.WriteByte('\n')
	b.WriteString(createdAt.In(f.location).Format(timestampLayout))
	b.WriteString(" · ")
	b.WriteString(message.Priority.Label())
	b.WriteString(" · ")
	b.WriteString(message.Category.Label())
	b.WriteByte('\n')
	b.WriteString(message.Description)
	if message.HasExactLocation() {
		b.WriteString("\nLocation: ")
		b.WriteString(strings.TrimSpace(*message.ExactLocation))
	}

	return b.String(), nil
}
