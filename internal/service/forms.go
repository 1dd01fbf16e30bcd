package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/formsmith/formsmith/compiler"
	"github.com/formsmith/formsmith/compiler/ir"
	"github.com/formsmith/formsmith/internal/domain"
	"github.com/formsmith/formsmith/internal/pkg/logger"
	"github.com/formsmith/formsmith/internal/port"
)

// ErrEditToken is returned when an update carries the wrong edit token.
var ErrEditToken = errors.New("edit token mismatch")

// ErrNoArchive is returned when an archive operation runs without a
// configured storage backend.
var ErrNoArchive = errors.New("archive storage not configured")

type Forms struct {
	store   port.FormStore
	events  port.Publisher
	archive port.ArchiveStorage
	ttl     time.Duration
}

func NewForms(store port.FormStore, events port.Publisher, archive port.ArchiveStorage, ttl time.Duration) *Forms {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Forms{store: store, events: events, archive: archive, ttl: ttl}
}

// Generate validates the descriptor and runs the compiler over it.
func (s *Forms) Generate(ctx context.Context, form *ir.Form) (compiler.Bundle, error) {
	if err := ValidateDescriptor(form); err != nil {
		return compiler.Bundle{}, fmt.Errorf("invalid descriptor: %w", err)
	}
	return compiler.Generate(form), nil
}

// Publish stores a descriptor under a fresh id and hands back the one
// plaintext edit token the caller will ever see.
func (s *Forms) Publish(ctx context.Context, form *ir.Form) (id, editToken string, err error) {
	if err := ValidateDescriptor(form); err != nil {
		return "", "", fmt.Errorf("invalid descriptor: %w", err)
	}

	id = uuid.NewString()
	editToken = uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(editToken), bcrypt.DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("hash edit token: %w", err)
	}

	now := time.Now().UTC()
	rec := domain.PublishedForm{
		ID:            id,
		Descriptor:    *form,
		EditTokenHash: hash,
		CreatedAt:     now,
		UpdatedAt:     now,
		ExpiresAt:     now.Add(s.ttl),
	}
	if err := s.store.Save(ctx, rec); err != nil {
		return "", "", fmt.Errorf("save form: %w", err)
	}

	if err := s.events.PublishFormPublished(ctx, domain.FormPublished{
		FormID:    id,
		Name:      form.Name,
		Framework: string(form.Framework),
	}); err != nil {
		logger.From(ctx).Warn("publish event failed", "formId", id, "err", err)
	}
	return id, editToken, nil
}

// Load returns the stored descriptor.
func (s *Forms) Load(ctx context.Context, id string) (*ir.Form, error) {
	rec, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Expired(time.Now().UTC()) {
		return nil, port.ErrNotFound
	}
	return &rec.Descriptor, nil
}

// authorize loads a live record and verifies the edit token against its
// stored hash.
func (s *Forms) authorize(ctx context.Context, id, editToken string) (*domain.PublishedForm, error) {
	rec, err := s.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Expired(time.Now().UTC()) {
		return nil, port.ErrNotFound
	}
	if bcrypt.CompareHashAndPassword(rec.EditTokenHash, []byte(editToken)) != nil {
		return nil, ErrEditToken
	}
	return rec, nil
}

// Update replaces a stored descriptor after verifying the edit token.
// The record keeps its original expiry.
func (s *Forms) Update(ctx context.Context, id, editToken string, form *ir.Form) error {
	if err := ValidateDescriptor(form); err != nil {
		return fmt.Errorf("invalid descriptor: %w", err)
	}
	rec, err := s.authorize(ctx, id, editToken)
	if err != nil {
		return err
	}

	rec.Descriptor = *form
	rec.UpdatedAt = time.Now().UTC()
	if err := s.store.Update(ctx, *rec); err != nil {
		return fmt.Errorf("update form: %w", err)
	}

	if err := s.events.PublishFormUpdated(ctx, domain.FormUpdated{FormID: id}); err != nil {
		logger.From(ctx).Warn("update event failed", "formId", id, "err", err)
	}
	return nil
}

// Export generates a bundle and uploads every artifact plus its manifest
// under an id-scoped prefix. Returns the archive prefix.
func (s *Forms) Export(ctx context.Context, id string, form *ir.Form) (string, error) {
	if s.archive == nil {
		return "", ErrNoArchive
	}
	bundle, err := s.Generate(ctx, form)
	if err != nil {
		return "", err
	}

	prefix := "bundles/" + id
	for _, f := range bundle.Files {
		key := path.Join(prefix, f.Path)
		if _, err := s.archive.Upload(ctx, key, bytes.NewReader([]byte(f.Contents)), contentTypeFor(f.Path)); err != nil {
			return "", fmt.Errorf("upload %s: %w", f.Path, err)
		}
	}
	manifest, err := compiler.Manifest(form, bundle)
	if err != nil {
		return "", err
	}
	key := path.Join(prefix, "manifest.json")
	if _, err := s.archive.Upload(ctx, key, bytes.NewReader([]byte(manifest)), "application/json"); err != nil {
		return "", fmt.Errorf("upload manifest: %w", err)
	}
	return prefix, nil
}

// ExportPublished archives the stored descriptor's bundle and hands back
// the archive prefix plus a time-limited manifest link.
func (s *Forms) ExportPublished(ctx context.Context, id string) (prefix, manifestURL string, err error) {
	form, err := s.Load(ctx, id)
	if err != nil {
		return "", "", err
	}
	prefix, err = s.Export(ctx, id, form)
	if err != nil {
		return "", "", err
	}
	manifestURL, err = s.archive.PresignGet(ctx, path.Join(prefix, "manifest.json"), 15*time.Minute)
	if err != nil {
		return "", "", fmt.Errorf("presign manifest: %w", err)
	}
	return prefix, manifestURL, nil
}

// BundleFile reads one archived artifact back. The file path is cleaned
// so it cannot climb out of the form's prefix.
func (s *Forms) BundleFile(ctx context.Context, id, file string) ([]byte, error) {
	if s.archive == nil {
		return nil, ErrNoArchive
	}
	if _, err := s.Load(ctx, id); err != nil {
		return nil, err
	}
	rc, err := s.archive.Download(ctx, "bundles/"+id+path.Clean("/"+file))
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Discard removes a published form and its archived bundle after
// verifying the edit token.
func (s *Forms) Discard(ctx context.Context, id, editToken string) error {
	rec, err := s.authorize(ctx, id, editToken)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete form: %w", err)
	}

	if s.archive != nil {
		// The archive layout is reproducible from the descriptor, so the
		// bundle is regenerated to learn which keys to remove.
		bundle := compiler.Generate(&rec.Descriptor)
		prefix := "bundles/" + id
		for _, f := range bundle.Files {
			if err := s.archive.Delete(ctx, path.Join(prefix, f.Path)); err != nil {
				logger.From(ctx).Warn("archive delete failed", "formId", id, "key", f.Path, "err", err)
			}
		}
		if err := s.archive.Delete(ctx, path.Join(prefix, "manifest.json")); err != nil {
			logger.From(ctx).Warn("archive delete failed", "formId", id, "key", "manifest.json", "err", err)
		}
	}

	if err := s.events.PublishFormDeleted(ctx, domain.FormDeleted{FormID: id}); err != nil {
		logger.From(ctx).Warn("delete event failed", "formId", id, "err", err)
	}
	return nil
}

func contentTypeFor(p string) string {
	switch path.Ext(p) {
	case ".json":
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}
