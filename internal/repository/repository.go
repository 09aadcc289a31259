package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var ErrInvalidArtifact error = errors.New("invalid artifact")

const fileTimeLayout = "20060102_150405"

type ArtifactRepository struct {
	logs    *zap.SugaredLogger
	storage Storage
}

func NewArtifactRepository(logger *zap.SugaredLogger, storage Storage) *ArtifactRepository {
	return &ArtifactRepository{
		logs:    logger,
		storage: storage,
	}
}

// Exists reports whether any stored artifact references txHash. Hashes are
// compared without regard to letter case. Records that cannot be read or
// decoded are skipped.
func (r *ArtifactRepository) Exists(ctx context.Context, txHash string) (bool, error) {
	names, err := r.storage.List(ctx)
	if err != nil {
		return false, fmt.Errorf("list artifacts: %w", err)
	}

	for _, name := range names {
		data, err := r.storage.Read(ctx, name)
		if err != nil {
			if ctx.Err() != nil {
				return false, fmt.Errorf("read artifact: %w", ctx.Err())
			}
			r.logs.Debugw("skipping unreadable artifact", "name", name, "error", err)
			continue
		}

		var rec record
		if err := json.Unmarshal(data, &rec); err != nil {
			r.logs.Debugw("skipping corrupt artifact", "name", name, "error", err)
			continue
		}

		if strings.EqualFold(rec.Summary.TxHash, txHash) {
			return true, nil
		}
	}

	return false, nil
}

// Save writes the artifact under a new name and returns its location.
func (r *ArtifactRepository) Save(ctx context.Context, artifact *Artifact) (string, error) {
	if artifact == nil {
		return "", fmt.Errorf("%w: nil artifact", ErrInvalidArtifact)
	}
	if err := artifact.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidArtifact, err)
	}

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal artifact: %w", err)
	}

	path, err := r.storage.Create(ctx, FileName(artifact), data)
	if err != nil {
		return "", fmt.Errorf("store artifact: %w", err)
	}

	r.logs.Infow("artifact saved", "path", path, "tx_hash", artifact.Summary.TxHash)
	return path, nil
}

// FileName is tx_<local time>_<hash without 0x>.json.
func FileName(artifact *Artifact) string {
	hash := strings.TrimPrefix(strings.ToLower(artifact.Summary.TxHash), "0x")
	return fmt.Sprintf("tx_%s_%s.json", artifact.Summary.Timestamp.Format(fileTimeLayout), hash)
}
