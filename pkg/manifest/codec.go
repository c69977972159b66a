package manifest

import (
	"bytes"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/dot/pkg/errors"
)

var validate = validator.New()

// decodeEntries parses a manifest document. A table missing local_file,
// path or dir is a schema error.
func decodeEntries(data []byte) (map[string]Entry, error) {
	raw := make(map[string]storedEntry)
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse manifest")
	}

	entries := make(map[string]Entry, len(raw))
	for name, r := range raw {
		if err := validate.Struct(r); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid manifest entry %q", name)
		}
		entries[name] = Entry{
			Name:         name,
			StoredPath:   *r.StoredPath,
			OriginalPath: *r.OriginalPath,
			IsDirectory:  *r.IsDirectory,
		}
	}
	return entries, nil
}

// encodeEntries renders entries as a flattened TOML document.
func encodeEntries(entries map[string]Entry) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)
	if err := enc.Encode(entries); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to serialize manifest")
	}
	return buf.Bytes(), nil
}
