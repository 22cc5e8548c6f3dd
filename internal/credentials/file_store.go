package credentials

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"
	"sync"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// fileStore keeps credentials in a JSON file. Two instances over different
// files realize the cookie-scoped and durable-scoped stores for a single-user
// client installation.
type fileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a Store backed by a JSON file at the given path. The
// file and any missing parent directories are created on first write.
func NewFileStore(filePath string) Store {
	return &fileStore{path: filePath}
}

// NewCookieStore returns the default cookie-scoped store: a file named
// "cookies" under the client home directory.
func NewCookieStore() (Store, error) {
	home, err := clientHome()
	if err != nil {
		return nil, err
	}
	return NewFileStore(path.Join(home, "cookies")), nil
}

// NewDurableFileStore returns the default durable store: a file named
// "credentials" under the client home directory.
func NewDurableFileStore() (Store, error) {
	home, err := clientHome()
	if err != nil {
		return nil, err
	}
	return NewFileStore(path.Join(home, "credentials")), nil
}

func clientHome() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "error locating user's home directory")
	}
	return path.Join(homeDir, ".burgerctl"), nil
}

func (f *fileStore) Get(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries, err := f.load()
	if err != nil {
		return "", err
	}
	return entries[key], nil
}

func (f *fileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries, err := f.load()
	if err != nil {
		return err
	}
	entries[key] = value
	return f.save(entries)
}

func (f *fileStore) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return f.save(entries)
}

func (f *fileStore) load() (map[string]string, error) {
	entries := map[string]string{}
	entryBytes, err := ioutil.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}
		return nil, errors.Wrapf(
			err,
			"error reading credentials file at %s",
			f.path,
		)
	}
	if err := json.Unmarshal(entryBytes, &entries); err != nil {
		return nil, errors.Wrapf(
			err,
			"error parsing credentials file at %s",
			f.path,
		)
	}
	return entries, nil
}

func (f *fileStore) save(entries map[string]string) error {
	dir := path.Dir(f.path)
	if _, err := os.Stat(dir); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(
				err,
				"error checking for existence of %s",
				dir,
			)
		}
		if err := os.MkdirAll(dir, 0700); err != nil {
			return errors.Wrapf(err, "error creating %s", dir)
		}
	}
	entryBytes, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, "error marshaling credentials")
	}
	// Credentials only-- keep the file private to the user.
	if err := ioutil.WriteFile(f.path, entryBytes, 0600); err != nil {
		return errors.Wrapf(err, "error writing to %s", f.path)
	}
	return nil
}
