package sr

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trafficalert/config"
	"trafficalert/internal/domain/entity"
	domainerrors "trafficalert/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const messagesBody = `<?xml version="1.0" encoding="utf-8"?>
<sr>
  <copyright>Copyright Sveriges Radio 2024. All rights reserved.</copyright>
  <messages>
    <message id="1001" priority="3">
      <createddate>2024-03-01T12:01:00.000Z</createddate>
      <title>E4 Uppsala norra</title>
      <exactlocation>Mellan trafikplats Gnista och Bärby</exactlocation>
      <description>Köbildning efter olycka.</description>
      <latitude>59.88</latitude>
      <longitude>17.64</longitude>
      <category>0</category>
      <subcategory>Olycka</subcategory>
    </message>
    <message id="1002" priority="9">
      <createddate>2024-03-01T12:05:00Z</createddate>
      <title>Väg 55</title>
      <exactlocation></exactlocation>
      <description>Vägarbete.</description>
      <category>x</category>
    </message>
  </messages>
</sr>`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Feed: &config.FeedConfig{
		BaseURL:        server.URL + "/",
		RequestTimeout: 2 * time.Second,
		UserAgent:      "trafficalert-test",
	}}

	return NewClient(ClientParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestFetchMessages(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/traffic/messages", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("pagination"))
		assert.Equal(t, "Uppland", r.URL.Query().Get("trafficareaname"))
		assert.Equal(t, "trafficalert-test", r.Header.Get("User-Agent"))
		_, _ = io.WriteString(w, messagesBody)
	})

	messages, err := client.FetchMessages(context.Background(), "Uppland")
	require.NoError(t, err)
	require.Len(t, messages, 2)

	first := messages[0]
	assert.Equal(t, int64(1001), first.ID)
	assert.Equal(t, "Uppland", first.Area)
	assert.Equal(t, "2024-03-01T12:01:00.000Z", first.CreatedDate)
	assert.Equal(t, entity.PriorityDisruption, first.Priority)
	assert.Equal(t, entity.CategoryRoadTraffic, first.Category)
	assert.Equal(t, "E4 Uppsala norra", first.Title)
	assert.Equal(t, "Köbildning efter olycka.", first.Description)
	require.NotNil(t, first.ExactLocation)
	assert.Equal(t, "Mellan trafikplats Gnista och Bärby", *first.ExactLocation)

	second := messages[1]
	assert.Equal(t, "Unknown", second.Priority.Label())
	assert.Equal(t, "Unknown", second.Category.Label())
	assert.Nil(t, second.ExactLocation)
}

func TestFetchMessages_EmptyFeedIsNotAFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `<sr><messages></messages></sr>`)
	})

	messages, err := client.FetchMessages(context.Background(), "Gotland")

	require.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}

func TestFetchMessages_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "malformed xml",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `<sr><messages><message>`)
			},
		},
		{
			name: "missing messages element",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `<sr><error>unknown area</error></sr>`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)

			messages, err := client.FetchMessages(context.Background(), "Uppland")

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrFetchFailed)
			assert.Nil(t, messages)
		})
	}
}

func TestFetchMessages_TimeoutIsFetchFailure(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	client.httpClient.Timeout = 50 * time.Millisecond
	defer close(release)

	_, err := client.FetchMessages(context.Background(), "Uppland")

	assert.ErrorIs(t, err, domainerrors.ErrFetchFailed)
}

func TestClassify(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/traffic/areas", r.URL.Path)
		switch r.URL.Query().Get("latitude") {
		case "60":
			_, _ = io.WriteString(w, `<sr><area name="Uppland" zoom="8" radius="0" trafficdepartmentunitid="2"/></sr>`)
		case "61":
			_, _ = io.WriteString(w, `<sr><area name="Gävleborg" zoom="8" radius="0"/></sr>`)
		default:
			_, _ = io.WriteString(w, `<sr></sr>`)
		}
	})

	area, err := client.Classify(context.Background(), 60, 18)
	require.NoError(t, err)
	assert.Equal(t, "Uppland", area)

	area, err = client.Classify(context.Background(), 61, 18)
	require.NoError(t, err)
	assert.Equal(t, "Gävleborg", area)

	_, err = client.Classify(context.Background(), 10, 10)
	assert.ErrorIs(t, err, domainerrors.ErrAreaNotFound)
}

func TestClassify_UpstreamFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Classify(context.Background(), 60, 18)

	assert.ErrorIs(t, err, domainerrors.ErrAreaLookupFailed)
}

func TestListAreas(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `<sr><areas><area name="Blekinge"/><area name="Uppland"/><area name=""/></areas></sr>`)
	})

	areas, err := client.ListAreas(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Blekinge", "Uppland"}, areas)
}
