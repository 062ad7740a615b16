package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Source values for TailoringMetadata.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// TailoringMetadata distinguishes a genuine model answer from the heuristic
// stand-in and carries per-request diagnostics.
type TailoringMetadata struct {
	Source         string `bson:"source" json:"source"` // ai|fallback
	Model          string `bson:"model,omitempty" json:"model,omitempty"`
	FallbackReason string `bson:"fallback_reason,omitempty" json:"fallbackReason,omitempty"`
	ProcessingMS   int64  `bson:"processing_ms" json:"processingMs"`
	TokensUsed     int    `bson:"tokens_used,omitempty" json:"tokensUsed,omitempty"`
}

// TailoringResult is produced once per tailoring request and never mutated.
type TailoringResult struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID           string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	JobDescriptionID string             `bson:"job_description_id,omitempty" json:"jobDescriptionId,omitempty"`

	TailoredResume ResumeContent     `bson:"tailored_resume" json:"tailoredResume"`
	Score          int               `bson:"score" json:"score"` // 0..100
	KeywordMatches []string          `bson:"keyword_matches" json:"keywordMatches"`
	Suggestions    []string          `bson:"suggestions" json:"suggestions"`
	Metadata       TailoringMetadata `bson:"metadata" json:"metadata"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
