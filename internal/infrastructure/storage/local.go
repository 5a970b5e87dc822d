package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/vendas-api/internal/application/ports"
)

var _ ports.FileStorage = (*LocalStorage)(nil)

// LocalStorage guarda archivos en disco para desarrollo. El servidor HTTP sirve dir en
// la ruta de baseURL (por defecto /uploads).
type LocalStorage struct {
	dir     string
	baseURL string
}

// NewLocalStorage crea dir si no existe.
func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear %s: %w", dir, err)
	}
	if baseURL == "" {
		baseURL = "/uploads"
	}
	return &LocalStorage{dir: dir, baseURL: baseURL}, nil
}

// Upload escribe body en dir/key. key no puede salir de dir.
func (s *LocalStorage) Upload(ctx context.Context, key string, body []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || filepath.IsAbs(clean) || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || clean == ".." {
		return "", fmt.Errorf("clave inválida: %q", key)
	}
	dst := filepath.Join(s.dir, clean)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("crear directorio: %w", err)
	}
	if err := os.WriteFile(dst, body, 0o644); err != nil {
		return "", fmt.Errorf("escribir %s: %w", key, err)
	}
	return joinURL(s.baseURL, filepath.ToSlash(clean)), nil
}
