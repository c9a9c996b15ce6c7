package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldEngine is the structured log field key for the active similarity engine.
	FieldEngine = "similarity_engine"
	// FieldModel is the structured log field key for the embedding model identifier.
	FieldModel = "embedding_model"
	// FieldCandidate is the structured log field key for the candidate document name.
	FieldCandidate = "candidate"
	// FieldRunID is the structured log field key for a batch scan identifier.
	FieldRunID = "run_id"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches the provided fields to the logger, defaulting to a no-op
// logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	logger = OrNop(logger)

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CommonFields describes which similarity engine and embedding model are in use.
// Empty values are dropped so fallback entries stay compact.
func CommonFields(engine, model string) []zap.Field {
	return StringFields(
		StringField{Key: FieldEngine, Value: engine},
		StringField{Key: FieldModel, Value: model},
	)
}

// WithCommonFields attaches CommonFields to the provided logger.
func WithCommonFields(logger *zap.Logger, engine, model string) *zap.Logger {
	return WithFields(logger, CommonFields(engine, model)...)
}
