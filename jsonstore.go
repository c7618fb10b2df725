package bancogo

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// FileStore keeps the document as a single JSON file on disk.
type FileStore struct {
	path string
}

var (
	_ Store = (*FileStore)(nil)
)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the full document. An absent file yields an empty document;
// unreadable or undecodable content is an error so startup can fail loudly
// instead of silently starting empty.
func (st *FileStore) Load() (*Document, error) {
	f, err := os.Open(st.path)
	if errors.Is(err, os.ErrNotExist) {
		return &Document{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc Document
	if err = json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", st.path, err)
	}
	if err = doc.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", st.path, err)
	}
	return &doc, nil
}

// Save rewrites the document atomically: encode into a temporary file, then
// rename it over the old one so a crash mid-write cannot truncate the data.
func (st *FileStore) Save(doc *Document) error {
	tmp := st.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err = enc.Encode(doc); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, st.path)
}
