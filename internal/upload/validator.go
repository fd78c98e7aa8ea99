package upload

import (
	"errors"
	"fmt"
	"noteblog/internal/config"
	"strings"
)

var (
	ErrNoFile        = errors.New("файл не выбран")
	ErrEmptyFilename = errors.New("пустое имя файла")
	ErrTooLarge      = errors.New("размер файла превышает допустимый")
	ErrBadExtension  = errors.New("недопустимый тип файла")
)

// Upload - результат успешной проверки: безопасное имя и расширение
type Upload struct {
	SafeName  string
	Extension string
	Size      int64
}

type Validator struct {
	allowed map[string]bool
	maxSize int64
}

func NewValidator(cfg config.Upload) *Validator {
	allowed := make(map[string]bool, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		allowed[strings.ToLower(ext)] = true
	}

	return &Validator{
		allowed: allowed,
		maxSize: cfg.MaxSizeBytes,
	}
}

func (v *Validator) MaxSize() int64 {
	return v.maxSize
}

// Validate - проверяет имя и размер файла, сами байты не читает.
// Порядок проверок: имя файла -> размер -> расширение.
func (v *Validator) Validate(filename string, size int64) (*Upload, error) {
	if filename == "" {
		return nil, ErrNoFile
	}

	safeName := SanitizeFilename(filename)
	if safeName == "" {
		return nil, ErrEmptyFilename
	}

	if size > v.maxSize {
		return nil, fmt.Errorf("%w (макс. %d байт)", ErrTooLarge, v.maxSize)
	}

	ext := extension(safeName)
	if ext == "" || !v.allowed[ext] {
		return nil, fmt.Errorf("%w: разрешены %s", ErrBadExtension, strings.Join(v.extensions(), ", "))
	}

	return &Upload{
		SafeName:  safeName,
		Extension: ext,
		Size:      size,
	}, nil
}

func (v *Validator) extensions() []string {
	extensions := make([]string, 0, len(v.allowed))
	for ext := range v.allowed {
		extensions = append(extensions, ext)
	}
	return extensions
}

func extension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

// SanitizeFilename - приводит имя файла к безопасному для хранилища виду:
// отбрасывает пути, пробелы заменяет на "_", оставляет только [A-Za-z0-9._-],
// убирает ведущие точки, чтобы исключить выход за каталог хранения
func SanitizeFilename(filename string) string {
	// cut off any path, both separators
	if idx := strings.LastIndexAny(filename, "/\\"); idx >= 0 {
		filename = filename[idx+1:]
	}

	var b strings.Builder
	for _, r := range filename {
		switch {
		case r == ' ' || r == '\t':
			b.WriteRune('_')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		}
	}

	safeName := strings.TrimLeft(b.String(), ".")
	if strings.Trim(safeName, "._-") == "" {
		return ""
	}

	return safeName
}
