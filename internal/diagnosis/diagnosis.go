package diagnosis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"repaircenter/internal/config"
)

// Fallback texts surfaced to the end user. Callers must not try to tell a
// failure apart from a terse real diagnosis, the fallback text is the signal.
const (
	FallbackMessage    = "AI analysis unavailable at the moment."
	EmptyResultMessage = "Could not generate analysis."
)

const systemInstruction = "You are an expert electronics repair technician at Rasel Repair Center. " +
	"You provide helpful, concise initial diagnoses to customers."

const promptFormat = `Device: %s
Brand: %s
Model: %s
Issue: %s

Please analyze this repair issue. Provide a brief diagnosis of what might be wrong and a very rough estimated price range (in USD) for the repair parts and labor. Keep it under 50 words.`

// Analyzer asks a Gemini-style generateContent endpoint for a short diagnosis
// of a repair issue. It makes a single attempt per call and absorbs every
// failure into a readable fallback string.
type Analyzer struct {
	cfg    *config.DiagnosisConfig
	client *http.Client
	log    *logrus.Logger
}

func NewAnalyzer(cfg *config.DiagnosisConfig, log *logrus.Logger) *Analyzer {
	return &Analyzer{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}
}

type generateRequest struct {
	SystemInstruction content   `json:"system_instruction"`
	Contents          []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Analyze never fails: on any transport, status or decoding problem it
// returns FallbackMessage, and EmptyResultMessage when the collaborator
// answers with no text. The caller captures the result into the ticket draft
// once; a request is never re-diagnosed.
func (a *Analyzer) Analyze(ctx context.Context, deviceType, brand, model, issue string) string {
	prompt := fmt.Sprintf(promptFormat, deviceType, brand, model, issue)

	body, err := json.Marshal(generateRequest{
		SystemInstruction: content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		a.log.WithError(err).Error("diagnosis: could not marshal request")
		return FallbackMessage
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", a.cfg.BaseURL, a.cfg.Model, a.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		a.log.WithError(err).Error("diagnosis: could not build request")
		return FallbackMessage
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		a.log.WithError(err).Warn("diagnosis: collaborator call failed")
		return FallbackMessage
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.log.WithField("status", resp.StatusCode).Warn("diagnosis: collaborator returned non-OK status")
		return FallbackMessage
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		a.log.WithError(err).Warn("diagnosis: could not decode collaborator response")
		return FallbackMessage
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 ||
		len(decoded.Candidates[0].Content.Parts[0].Text) == 0 {
		return EmptyResultMessage
	}

	return decoded.Candidates[0].Content.Parts[0].Text
}
