package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GenerationRecord AI 内容生成的审计记录
type GenerationRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    uint64             `bson:"user_id" json:"userId"`
	Kind      string             `bson:"kind" json:"kind"` // generate / improve
	Mode      string             `bson:"mode,omitempty" json:"mode,omitempty"`
	Title     string             `bson:"title,omitempty" json:"title,omitempty"`
	Model     string             `bson:"model,omitempty" json:"model,omitempty"`
	Success   bool               `bson:"success" json:"success"`
	ErrorKind string             `bson:"error_kind,omitempty" json:"errorKind,omitempty"`
	LatencyMs int64              `bson:"latency_ms" json:"latencyMs"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
