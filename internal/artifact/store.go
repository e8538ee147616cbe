package artifact

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"careerconnect/internal/common"
)

// Store keeps uploaded resume artifacts. Text returns whatever textual
// content is available for a stored artifact; for non-textual uploads that
// is a best-effort byte decode, which downstream scoring treats as a weak
// signal anyway.
type Store interface {
	Store(ctx context.Context, name string, content []byte) (string, error)
	Text(ctx context.Context, ref string) (string, error)
}

type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create upload directory", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Store(ctx context.Context, name string, content []byte) (string, error) {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "", common.NewValidationError("invalid artifact name", map[string]string{"name": "a file name is required"})
	}
	ref := common.NewUUID().String() + "-" + base
	if err := os.WriteFile(filepath.Join(s.dir, ref), content, 0o644); err != nil {
		return "", common.NewError(common.CodeInternal, "failed to store artifact", err)
	}
	return ref, nil
}

func (s *DiskStore) Text(ctx context.Context, ref string) (string, error) {
	base := filepath.Base(ref)
	if base != ref {
		return "", common.NewValidationError("invalid artifact reference", map[string]string{"ref": "reference must not contain path separators"})
	}
	content, err := os.ReadFile(filepath.Join(s.dir, base))
	if err != nil {
		if os.IsNotExist(err) {
			return "", common.NewError(common.CodeNotFound, "artifact not found", err)
		}
		return "", common.NewError(common.CodeInternal, "failed to read artifact", err)
	}
	return string(content), nil
}
