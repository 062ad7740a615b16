// Package notify sends fire-and-forget workflow webhooks. Delivery failures
// are logged and swallowed; the main request flow never depends on them.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Event names shared with the workflow-automation side.
const (
	EventUserSignup          = "user_signup"
	EventResumeTailored      = "resume_tailored"
	EventJobDescriptionAdded = "job_description_added"
	EventAIProcessError      = "ai_process_error"
)

// Payload is the wire shape every webhook receives.
type Payload struct {
	Event     string         `json:"event"`
	UserID    string         `json:"userId"`
	Data      map[string]any `json:"data"`
	Timestamp string         `json:"timestamp"` // RFC 3339
}

type Notifier interface {
	ResumeTailored(ctx context.Context, userID, resultID, jobTitle string, score int)
	JobDescriptionAdded(ctx context.Context, userID, jobID, jobTitle, company string)
}

// N8N posts events to per-event webhook URLs. Unset URLs disable their event.
type N8N struct {
	resumeTailoredURL string
	jobAddedURL       string

	http *http.Client
	log  *logrus.Logger
}

func NewN8N(resumeTailoredURL, jobAddedURL string, log *logrus.Logger) *N8N {
	if log == nil {
		log = logrus.New()
	}
	return &N8N{
		resumeTailoredURL: resumeTailoredURL,
		jobAddedURL:       jobAddedURL,
		http:              &http.Client{Timeout: 5 * time.Second},
		log:               log,
	}
}

func (n *N8N) ResumeTailored(ctx context.Context, userID, resultID, jobTitle string, score int) {
	n.post(ctx, n.resumeTailoredURL, Payload{
		Event:  EventResumeTailored,
		UserID: userID,
		Data: map[string]any{
			"resumeId": resultID,
			"jobTitle": jobTitle,
			"score":    score,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (n *N8N) JobDescriptionAdded(ctx context.Context, userID, jobID, jobTitle, company string) {
	n.post(ctx, n.jobAddedURL, Payload{
		Event:  EventJobDescriptionAdded,
		UserID: userID,
		Data: map[string]any{
			"jobId":    jobID,
			"jobTitle": jobTitle,
			"company":  company,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (n *N8N) post(ctx context.Context, url string, p Payload) {
	if url == "" {
		return
	}

	body, err := json.Marshal(p)
	if err != nil {
		n.log.WithError(err).WithField("event", p.Event).Warn("webhook payload marshal failed")
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		n.log.WithError(err).WithField("event", p.Event).Warn("webhook request build failed")
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		n.log.WithError(err).WithField("event", p.Event).Warn("webhook delivery failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		n.log.WithFields(logrus.Fields{
			"event":  p.Event,
			"status": resp.StatusCode,
		}).Warn("webhook rejected")
	}
}

// Nop satisfies Notifier when no workflow integration is configured.
type Nop struct{}

func (Nop) ResumeTailored(context.Context, string, string, string, int)         {}
func (Nop) JobDescriptionAdded(context.Context, string, string, string, string) {}
