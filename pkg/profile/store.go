package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/graphloom/pkg/errors"
	"github.com/matzehuels/graphloom/pkg/io"
)

// Summary identifies one stored bundle version.
type Summary struct {
	ProfileID      string `json:"profileId" bson:"profileId"`
	ProfileVersion int    `json:"profileVersion" bson:"profileVersion"`
	Checksum       string `json:"checksum" bson:"checksum"`
}

// Store persists profile bundles. Get with version 0 returns the latest
// version. Missing bundles are reported with errors.ErrCodeNotFound.
type Store interface {
	Get(ctx context.Context, id string, version int) (*Bundle, error)
	Put(ctx context.Context, b *Bundle) error
	List(ctx context.Context) ([]Summary, error)
	Close() error
}

func checkPut(b *Bundle) error {
	if b == nil {
		return errors.New(errors.ErrCodeInvalidProfile, "bundle is nil")
	}
	if err := errors.ValidateProfileID(b.ProfileID); err != nil {
		return err
	}
	if b.ProfileVersion < 1 {
		return errors.New(errors.ErrCodeInvalidProfile,
			"profile version must be >= 1 to store, got %d", b.ProfileVersion)
	}
	_, err := Resolve(b.Map())
	return err
}

func checkGet(id string, version int) error {
	if err := errors.ValidateProfileID(id); err != nil {
		return err
	}
	return errors.ValidateProfileVersion(version)
}

func notFound(id string, version int) error {
	if version == 0 {
		return errors.New(errors.ErrCodeNotFound, "profile %q not found", id)
	}
	return errors.New(errors.ErrCodeNotFound, "profile %q version %d not found", id, version)
}

// =============================================================================
// FileStore
// =============================================================================

// FileStore keeps bundles at <dir>/<id>/<version>.json.
type FileStore struct {
	dir string
}

// NewFileStore creates dir if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Get reads one bundle version, or the highest stored version when version is 0.
func (s *FileStore) Get(ctx context.Context, id string, version int) (*Bundle, error) {
	if err := checkGet(id, version); err != nil {
		return nil, err
	}
	if version == 0 {
		versions, err := s.versions(id)
		if err != nil {
			return nil, err
		}
		if len(versions) == 0 {
			return nil, notFound(id, 0)
		}
		version = versions[len(versions)-1]
	}

	path := s.path(id, version)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, notFound(id, version)
	}
	m, err := io.ReadMap(path)
	if err != nil {
		return nil, err
	}
	return FromMap(m)
}

// Put writes the bundle, replacing an existing file for the same version.
func (s *FileStore) Put(ctx context.Context, b *Bundle) error {
	if err := checkPut(b); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(s.dir, b.ProfileID), 0o755); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}
	return io.ExportJSON(s.path(b.ProfileID, b.ProfileVersion), b)
}

// List returns every stored version sorted by id and version.
func (s *FileStore) List(ctx context.Context) ([]Summary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	var out []Summary
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		versions, err := s.versions(e.Name())
		if err != nil {
			return nil, err
		}
		for _, v := range versions {
			sum := Summary{ProfileID: e.Name(), ProfileVersion: v}
			if data, err := os.ReadFile(s.path(e.Name(), v)); err == nil {
				var b Bundle
				if json.Unmarshal(data, &b) == nil {
					sum.Checksum = b.Checksum
				}
			}
			out = append(out, sum)
		}
	}
	sortSummaries(out)
	return out, nil
}

// Close is a no-op.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) path(id string, version int) string {
	return filepath.Join(s.dir, id, strconv.Itoa(version)+".json")
}

// versions returns the stored versions of id in ascending order.
func (s *FileStore) versions(id string) ([]int, error) {
	entries, err := os.ReadDir(filepath.Join(s.dir, id))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list profile versions: %w", err)
	}
	var out []int
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".json")
		if !ok || e.IsDir() {
			continue
		}
		if v, err := strconv.Atoi(name); err == nil && v > 0 {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out, nil
}

var _ Store = (*FileStore)(nil)
