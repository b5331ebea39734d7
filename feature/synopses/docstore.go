package synopses

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

const documentContentType = "text/markdown"

// documentKey is the object key of a section's markdown document.
func documentKey(sectionID string) string {
	return "sections/" + sectionID + ".md"
}

// GetDocument returns the markdown document of a section.
func (s *Service) GetDocument(ctx context.Context, sectionID string) ([]byte, error) {
	if err := s.checkSections(ctx, []string{sectionID}); err != nil {
		return nil, err
	}
	reader, err := s.client.GetObject(ctx, s.bucket, documentKey(sectionID), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return data, nil
}

// PutDocument stores the markdown document of a section.
func (s *Service) PutDocument(ctx context.Context, sectionID string, data []byte) error {
	if err := s.checkSections(ctx, []string{sectionID}); err != nil {
		return err
	}
	_, err := s.client.PutObject(
		ctx,
		s.bucket,
		documentKey(sectionID),
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: documentContentType},
	)
	if err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}
	return nil
}

// DeleteDocument removes the markdown document of a section.
func (s *Service) DeleteDocument(ctx context.Context, sectionID string) error {
	if err := s.checkSections(ctx, []string{sectionID}); err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucket, documentKey(sectionID), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
