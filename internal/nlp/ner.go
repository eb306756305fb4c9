package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPEntityTagger talks to an external NER sidecar. Request and response
// are small JSON bodies; the label vocabulary is the recognizer's own and
// gets mapped by the anonymizer.
type HTTPEntityTagger struct {
	endpoint string
	client   *http.Client
}

func NewHTTPEntityTagger(endpoint string, timeout time.Duration) *HTTPEntityTagger {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPEntityTagger{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: timeout},
	}
}

type tagRequest struct {
	Text string `json:"text"`
}

type tagResponse struct {
	Entities []EntitySpan `json:"entities"`
}

func (t *HTTPEntityTagger) Tag(ctx context.Context, text string) ([]EntitySpan, error) {
	data, err := json.Marshal(tagRequest{Text: text})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint+"/entities", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ner request failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	var out tagResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Entities, nil
}
