package source

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hospital-replica-sync/config"
	"hospital-replica-sync/internal/delivery/dto"
	"hospital-replica-sync/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrSourceUnavailable covers timeouts, connection failures, non-2xx
// responses and undecodable bodies from the upstream API.
var ErrSourceUnavailable = errors.New("source unavailable")

const (
	// CutoffLayout is the only accepted cutoff format.
	CutoffLayout = "2006-01-02"

	cutoffParam = "fecha_mayor"
)

// envelope is the upstream list response; a missing "datos" key means no records.
// Entries stay raw so one malformed entry cannot fail the whole list.
type envelope struct {
	Datos []json.RawMessage `json:"datos"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

func NewClient(cfg config.SourceConfig, log *logrus.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

// BaseURL returns the configured upstream address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Fetch returns the upstream records of table newer than cutoff.
// Filtering happens upstream; records are returned in upstream order.
func (c *Client) Fetch(ctx context.Context, table entity.Table, cutoff time.Time) ([]dto.SourceRecord, error) {
	ctx, span := otel.Tracer("replica-sync/source").Start(ctx, "source.fetch")
	defer span.End()
	span.SetAttributes(attribute.String("sync.table", table.String()))

	endpoint, err := url.JoinPath(c.baseURL, "api", table.String())
	if err != nil {
		return nil, c.unavailable(span, fmt.Errorf("build endpoint: %w", err))
	}
	query := url.Values{cutoffParam: []string{cutoff.Format(CutoffLayout)}}
	endpoint += "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, c.unavailable(span, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	c.log.WithField("endpoint", endpoint).Info("Fetching records from source")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.unavailable(span, fmt.Errorf("GET %s: %w", endpoint, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, c.unavailable(span, fmt.Errorf("GET %s: status %d", endpoint, resp.StatusCode))
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()

	var body envelope
	if err := decoder.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			c.log.WithField("table", table.String()).Warn("Source returned an empty body")
			return []dto.SourceRecord{}, nil
		}
		return nil, c.unavailable(span, fmt.Errorf("decode response: %w", err))
	}

	records := make([]dto.SourceRecord, len(body.Datos))
	for i, raw := range body.Datos {
		records[i] = c.decodeRecord(table, i, raw)
	}

	span.SetAttributes(attribute.Int("sync.received", len(records)))
	c.log.WithFields(logrus.Fields{
		"table":    table.String(),
		"received": len(records),
	}).Info("Records received from source")

	return records, nil
}

// decodeRecord returns nil for an entry that is not a JSON object. The
// orchestrator counts such an entry as errored like any record without an id.
func (c *Client) decodeRecord(table entity.Table, index int, raw json.RawMessage) dto.SourceRecord {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var record dto.SourceRecord
	if err := decoder.Decode(&record); err != nil {
		c.log.WithFields(logrus.Fields{
			"table": table.String(),
			"index": index,
		}).Warnf("Failed to decode source record: %+v", err)
		return nil
	}
	return record
}

func (c *Client) unavailable(span trace.Span, err error) error {
	c.log.Warnf("Failed to fetch from source: %+v", err)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
}
