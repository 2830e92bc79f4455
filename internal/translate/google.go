package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/waylonwalker/senzu/internal/errors"
)

// googleEndpoint is the unauthenticated "gtx" translation endpoint.
const googleEndpoint = "https://translate.googleapis.com/translate_a/single"

// GoogleTranslator translates via the public Google Translate gtx endpoint.
type GoogleTranslator struct {
	endpoint   string
	source     string
	target     string
	httpClient *http.Client
}

// NewGoogleTranslator creates a translator from source to target language
// codes (e.g. "es" to "en").
func NewGoogleTranslator(source, target string) *GoogleTranslator {
	return &GoogleTranslator{
		endpoint: googleEndpoint,
		source:   source,
		target:   target,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Translate implements Translator.
func (g *GoogleTranslator) Translate(ctx context.Context, text string) (string, error) {
	params := url.Values{
		"client": {"gtx"},
		"sl":     {g.source},
		"tl":     {g.target},
		"dt":     {"t"},
		"q":      {text},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", errors.NewInternal(err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", errors.NewTranslationFailed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.NewTranslationFailed(errors.NewUpstreamStatus(resp.StatusCode, g.endpoint))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewTranslationFailed(err)
	}

	translated, err := decodeGTXResponse(body)
	if err != nil {
		return "", errors.NewTranslationFailed(err)
	}
	return translated, nil
}

// decodeGTXResponse extracts the translated text from the gtx response,
// which is a nested array: [[["translated","source",...],...],...]. Long
// inputs are split into multiple segments that concatenate in order.
func decodeGTXResponse(body []byte) (string, error) {
	var root []json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return "", err
	}
	if len(root) == 0 {
		return "", fmt.Errorf("empty translation response")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(root[0], &segments); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(seg[0], &part); err != nil {
			return "", err
		}
		sb.WriteString(part)
	}
	return sb.String(), nil
}
