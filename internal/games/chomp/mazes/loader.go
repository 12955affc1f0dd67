package mazes

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// mazeFile is the YAML schema for a user maze pack entry.
type mazeFile struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// LoadFile parses and validates a single YAML maze file.
func LoadFile(path string) (*Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read maze %s: %w", path, err)
	}

	var mf mazeFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse maze %s: %w", path, err)
	}
	if mf.ID == "" {
		mf.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if mf.Name == "" {
		mf.Name = mf.ID
	}

	m, err := Parse(mf.ID, mf.Name, mf.Rows)
	if err != nil {
		return nil, fmt.Errorf("maze file %s: %w", path, err)
	}
	if err := Validate(m); err != nil {
		return nil, fmt.Errorf("maze file %s: %w", path, err)
	}
	return m, nil
}

// LoadDir loads every .yaml/.yml maze in a directory, sorted by
// filename. A missing directory is not an error; it simply yields no
// mazes.
func LoadDir(dir string) ([]*Maze, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read maze directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var result []*Maze
	for _, name := range names {
		m, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, nil
}

// UserMazeDir returns the user's maze pack directory, or empty if the
// home directory is unavailable.
func UserMazeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chomp", "mazes")
}

// LoadUserMazes loads the user's maze packs from UserMazeDir.
func LoadUserMazes() ([]*Maze, error) {
	dir := UserMazeDir()
	if dir == "" {
		return nil, nil
	}
	return LoadDir(dir)
}
