package league

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	ErrManifestMissing      = errors.New("league manifest missing")
	ErrManifestMalformed    = errors.New("league manifest malformed")
	ErrLeagueNotFound       = errors.New("league not found")
	ErrDescriptorIncomplete = errors.New("league descriptor incomplete")
)

// LookupMode selects which manifest attribute a lookup key is compared with.
type LookupMode string

const (
	LookupByName LookupMode = "name"
	LookupByID   LookupMode = "id"
)

func ParseLookupMode(v string) (LookupMode, error) {
	switch LookupMode(strings.ToLower(strings.TrimSpace(v))) {
	case LookupByName:
		return LookupByName, nil
	case LookupByID:
		return LookupByID, nil
	default:
		return "", errors.Newf("unsupported lookup mode %q; expected name or id", v)
	}
}

// FileField names the descriptor attribute holding the match file name.
type FileField string

const (
	FileFieldFile FileField = "file"
	FileFieldJSON FileField = "json"
)

func ParseFileField(v string) (FileField, error) {
	switch FileField(strings.ToLower(strings.TrimSpace(v))) {
	case FileFieldFile:
		return FileFieldFile, nil
	case FileFieldJSON:
		return FileFieldJSON, nil
	default:
		return "", errors.Newf("unsupported manifest file field %q; expected file or json", v)
	}
}

// League is one manifest entry. Name is the manifest key, File is relative
// to the matches directory.
type League struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	File string `json:"file"`
}

// Summary is the consumer-facing view of a league; it never carries File.
type Summary struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

func (l League) Summary() Summary {
	return Summary{Name: l.Name, ID: l.ID}
}

// MatchFile returns the usable match file reference or ErrDescriptorIncomplete.
func (l League) MatchFile() (string, error) {
	file := strings.TrimSpace(l.File)
	if file == "" {
		return "", errors.Wrapf(ErrDescriptorIncomplete, "league=%q has no match file", l.Name)
	}
	if !filepath.IsLocal(file) {
		return "", errors.Wrapf(ErrDescriptorIncomplete, "league=%q match file %q escapes the matches directory", l.Name, file)
	}

	return file, nil
}
