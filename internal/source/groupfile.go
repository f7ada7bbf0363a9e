package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"liga-app/internal/model"
)

// FindGroupFile resolves the YAML file holding a group: first through the
// division.yml group references, then by scanning divisions/<id>/groups/.
func FindGroupFile(divisionDir, groupID string) (string, error) {
	var meta divisionMeta
	if err := loadYAMLFile(filepath.Join(divisionDir, divisionFile), &meta); err != nil {
		return "", err
	}
	for _, ref := range meta.Groups {
		if ref.ID != groupID || ref.File == "" {
			continue
		}
		candidate := filepath.Join(divisionDir, filepath.FromSlash(ref.File))
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	pattern := filepath.Join(divisionDir, groupsDir, "*.yml")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return "", err
	}
	sort.Strings(files)
	for _, file := range files {
		var group model.Group
		if err := loadYAMLFile(file, &group); err != nil {
			continue
		}
		if group.ID == groupID {
			return file, nil
		}
	}
	return "", fmt.Errorf("no group file found for %s", groupID)
}

func LoadGroup(path string) (model.Group, error) {
	var group model.Group
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Group{}, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &group); err != nil {
		return model.Group{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return group, nil
}

func SaveGroup(path string, group model.Group) error {
	data, err := yaml.Marshal(group)
	if err != nil {
		return fmt.Errorf("encode group: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
