// Package store keeps saved cities as JSON files in a directory.
//
// Each save slot is a file named after its ID (simcity_<uuid>.json). A
// separate file remembers which slot the player is currently working on so
// that quick & auto saves know where to go.
package store

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/voidshard/citygrid"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// IDPrefix starts every save ID
	IDPrefix = "simcity_"

	// DefaultCityName is used for saves that were never named
	DefaultCityName = "Unnamed City"

	fileExt     = ".json"
	currentFile = "currentCityId"
)

var (
	// ErrNotFound is returned when a save (or current save) doesn't exist
	ErrNotFound = fmt.Errorf("save not found")

	// ErrInvalidID is returned for IDs we would never have generated
	ErrInvalidID = fmt.Errorf("invalid save id")
)

// Config for a Store
type Config struct {
	// Dir holds the save files, it's created if needed
	Dir string

	// Logger is told about files we couldn't read (optional)
	Logger citygrid.Logger
}

// Summary describes a save without its cells
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Timestamp   int64  `json:"timestamp"`
	Population  int    `json:"population"`
	Buildings   int    `json:"buildings"`
	Roads       int    `json:"roads"`
}

// summaryData is the part of a save file needed for a Summary
type summaryData struct {
	Timestamp       int64              `json:"timestamp"`
	CityName        string             `json:"cityName"`
	CityDescription string             `json:"cityDescription"`
	Stats           citygrid.SaveStats `json:"stats"`
	Buildings       []json.RawMessage  `json:"buildings"`
	Roads           []json.RawMessage  `json:"roads"`
}

// Store is a directory of save slots.
// It's not safe for concurrent use.
type Store struct {
	dir string
	log citygrid.Logger
}

// New opens (creating if required) a Store
func New(cfg *Config) (*Store, error) {
	if cfg == nil || cfg.Dir == "" {
		return nil, fmt.Errorf("a save directory is required")
	}
	err := os.MkdirAll(cfg.Dir, 0755)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create save dir %s", cfg.Dir)
	}

	s := &Store{dir: cfg.Dir, log: cfg.Logger}
	if s.log == nil {
		s.log = citygrid.DefaultConfig().Logger
	}
	return s, nil
}

// NewID returns a fresh save ID
func NewID() string {
	return IDPrefix + uuid.New().String()
}

// validID returns if the ID looks like one from NewID
func validID(id string) bool {
	if !strings.HasPrefix(id, IDPrefix) {
		return false
	}
	_, err := uuid.Parse(strings.TrimPrefix(id, IDPrefix))
	return err == nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+fileExt)
}

// Create writes the data to a new slot & returns its ID
func (s *Store) Create(data *citygrid.SaveData) (string, error) {
	id := NewID()
	return id, s.Put(id, data)
}

// Put writes the data to the given slot, replacing whatever was there
func (s *Store) Put(id string, data *citygrid.SaveData) error {
	if !validID(id) {
		return errors.Wrap(ErrInvalidID, id)
	}

	blob, err := json.Marshal(data)
	if err != nil {
		return errors.Wrapf(err, "failed to encode save %s", id)
	}
	return s.write(s.path(id), blob)
}

// write replaces fpath via a temp file so a crash can't leave half a save
func (s *Store) write(fpath string, blob []byte) error {
	tmp := fpath + ".tmp"
	err := ioutil.WriteFile(tmp, blob, 0644)
	if err != nil {
		return errors.Wrapf(err, "failed to write %s", tmp)
	}
	return errors.Wrapf(os.Rename(tmp, fpath), "failed to replace %s", fpath)
}

// Raw returns the bytes of the given save
func (s *Store) Raw(id string) ([]byte, error) {
	if !validID(id) {
		return nil, errors.Wrap(ErrInvalidID, id)
	}
	blob, err := ioutil.ReadFile(s.path(id))
	if os.IsNotExist(err) {
		return nil, errors.Wrap(ErrNotFound, id)
	}
	return blob, errors.Wrapf(err, "failed to read save %s", id)
}

// Get returns the given save, strictly decoded. See Load for a forgiving
// alternative.
func (s *Store) Get(id string) (*citygrid.SaveData, error) {
	blob, err := s.Raw(id)
	if err != nil {
		return nil, err
	}
	data := &citygrid.SaveData{}
	err = json.Unmarshal(blob, data)
	return data, errors.Wrapf(err, "failed to decode save %s", id)
}

// Load replaces the city with the given save.
// Bad records are skipped (see City.LoadJSON).
func (s *Store) Load(id string, c *citygrid.City) (*citygrid.LoadReport, error) {
	blob, err := s.Raw(id)
	if err != nil {
		return nil, err
	}
	return c.LoadJSON(blob)
}

// List returns a Summary of every save, most recent first.
// Files that can't be read are logged & left out.
func (s *Store) List() ([]*Summary, error) {
	infos, err := ioutil.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", s.dir)
	}

	found := []*Summary{}
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		id := strings.TrimSuffix(name, fileExt)
		if !validID(id) {
			continue
		}

		sum, err := s.summary(id)
		if err != nil {
			s.log.Printf("skipping save %s: %v", id, err)
			continue
		}
		found = append(found, sum)
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Timestamp > found[j].Timestamp
	})
	return found, nil
}

// summary reads the summary of a single save
func (s *Store) summary(id string) (*Summary, error) {
	blob, err := s.Raw(id)
	if err != nil {
		return nil, err
	}
	data := &summaryData{}
	err = json.Unmarshal(blob, data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode save %s", id)
	}

	name := data.CityName
	if name == "" {
		name = DefaultCityName
	}
	return &Summary{
		ID:          id,
		Name:        name,
		Description: data.CityDescription,
		Timestamp:   data.Timestamp,
		Population:  data.Stats.Population,
		Buildings:   len(data.Buildings),
		Roads:       len(data.Roads),
	}, nil
}

// Delete removes a save. If it was the current save, there is no longer a
// current save.
func (s *Store) Delete(id string) error {
	if !validID(id) {
		return errors.Wrap(ErrInvalidID, id)
	}
	err := os.Remove(s.path(id))
	if os.IsNotExist(err) {
		return errors.Wrap(ErrNotFound, id)
	} else if err != nil {
		return errors.Wrapf(err, "failed to delete save %s", id)
	}

	current, err := s.Current()
	if err == nil && current == id {
		return s.ClearCurrent()
	}
	return nil
}

// SetCurrent marks the given (existing) save as the one being played
func (s *Store) SetCurrent(id string) error {
	if !validID(id) {
		return errors.Wrap(ErrInvalidID, id)
	}
	if _, err := os.Stat(s.path(id)); os.IsNotExist(err) {
		return errors.Wrap(ErrNotFound, id)
	}
	return s.write(filepath.Join(s.dir, currentFile), []byte(id))
}

// Current returns the ID of the save being played, or ErrNotFound
func (s *Store) Current() (string, error) {
	blob, err := ioutil.ReadFile(filepath.Join(s.dir, currentFile))
	if os.IsNotExist(err) {
		return "", ErrNotFound
	} else if err != nil {
		return "", errors.Wrap(err, "failed to read current save")
	}

	id := strings.TrimSpace(string(blob))
	if _, err := os.Stat(s.path(id)); !validID(id) || os.IsNotExist(err) {
		return "", ErrNotFound
	}
	return id, nil
}

// ClearCurrent forgets the current save (eg. when starting a new city)
func (s *Store) ClearCurrent() error {
	err := os.Remove(filepath.Join(s.dir, currentFile))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to clear current save")
	}
	return nil
}

// SaveCurrent writes the city into the current save, creating a new save
// (& making it current) if there isn't one. Returns the save ID.
func (s *Store) SaveCurrent(c *citygrid.City) (string, error) {
	id, err := s.Current()
	if errors.Is(err, ErrNotFound) {
		id, err = s.Create(s.snapshot(c))
		if err != nil {
			return "", err
		}
		err = s.SetCurrent(id)
		if err != nil {
			return "", err
		}
		c.MarkSaved()
		return id, nil
	} else if err != nil {
		return "", err
	}

	err = s.Put(id, s.snapshot(c))
	if err != nil {
		return "", err
	}
	c.MarkSaved()
	return id, nil
}

// AutoSave writes the city into the current save, but only if there is a
// current save, the city isn't empty & it has changed since it was last
// saved. Returns if a save was written.
func (s *Store) AutoSave(c *citygrid.City) (bool, error) {
	if !c.HasUnsavedChanges() || len(c.Roads())+len(c.Buildings()) == 0 {
		return false, nil
	}

	id, err := s.Current()
	if errors.Is(err, ErrNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	err = s.Put(id, s.snapshot(c))
	if err != nil {
		return false, err
	}
	c.MarkSaved()
	s.log.Printf("auto-saved city to %s", id)
	return true, nil
}

// snapshot returns the city's save data, naming it if required
func (s *Store) snapshot(c *citygrid.City) *citygrid.SaveData {
	data := c.Snapshot()
	if data.CityName == "" {
		data.CityName = DefaultCityName
	}
	return data
}
