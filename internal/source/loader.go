package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"liga-app/internal/model"
)

const (
	seasonFile   = "season.yml"
	rulesFile    = "rules.yml"
	divisionsDir = "divisions"
	divisionFile = "division.yml"
	groupsDir    = "groups"
)

// Divisions appear in the compiled payload in this order; anything else
// follows alphabetically.
var divisionOrder = []string{"gold", "silver", "ladies", "mix"}

type divisionMeta struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Groups      []groupRef `yaml:"groups"`
}

// groupRef is either a bare file name or a {id, file} mapping.
type groupRef struct {
	ID   string
	File string
}

func (g *groupRef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		g.File = value.Value
		return nil
	}
	var raw struct {
		ID   string `yaml:"id"`
		File string `yaml:"file"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	g.ID = raw.ID
	g.File = raw.File
	return nil
}

// LoadTree reads a season data tree (season.yml, rules.yml and
// divisions/<id>/ group files) into a single season document. Missing
// season or rules files load as empty sections; a referenced group file
// that does not exist is an error.
func LoadTree(root string) (model.SeasonDoc, error) {
	var doc model.SeasonDoc
	if err := loadYAMLFile(filepath.Join(root, seasonFile), &doc.Season); err != nil {
		return model.SeasonDoc{}, err
	}
	if err := loadYAMLFile(filepath.Join(root, rulesFile), &doc.Rules); err != nil {
		return model.SeasonDoc{}, err
	}

	divisionsRoot := filepath.Join(root, divisionsDir)
	entries, err := os.ReadDir(divisionsRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return model.SeasonDoc{}, fmt.Errorf("read divisions: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		divisionDir := filepath.Join(divisionsRoot, entry.Name())
		metaPath := filepath.Join(divisionDir, divisionFile)
		if _, err := os.Stat(metaPath); err != nil {
			continue
		}
		var meta divisionMeta
		if err := loadYAMLFile(metaPath, &meta); err != nil {
			return model.SeasonDoc{}, err
		}
		division := model.Division{
			ID:          meta.ID,
			Title:       meta.Title,
			Description: meta.Description,
		}
		if division.ID == "" {
			division.ID = entry.Name()
		}
		groups, err := loadDivisionGroups(divisionDir, meta)
		if err != nil {
			return model.SeasonDoc{}, err
		}
		division.Groups = groups
		doc.Divisions = append(doc.Divisions, division)
	}

	sortDivisions(doc.Divisions)
	return doc, nil
}

func loadDivisionGroups(divisionDir string, meta divisionMeta) ([]model.Group, error) {
	groups := make([]model.Group, 0, len(meta.Groups))
	for _, ref := range meta.Groups {
		if ref.File == "" {
			continue
		}
		groupPath := filepath.Join(divisionDir, filepath.FromSlash(ref.File))
		if _, err := os.Stat(groupPath); err != nil {
			return nil, fmt.Errorf("group file %s is missing", groupPath)
		}
		var group model.Group
		if err := loadYAMLFile(groupPath, &group); err != nil {
			return nil, err
		}
		if group.ID == "" {
			group.ID = ref.ID
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func sortDivisions(divisions []model.Division) {
	rank := func(id string) int {
		if i := slices.Index(divisionOrder, id); i >= 0 {
			return i
		}
		return len(divisionOrder)
	}
	slices.SortStableFunc(divisions, func(a, b model.Division) int {
		ra, rb := rank(a.ID), rank(b.ID)
		if ra != rb {
			return ra - rb
		}
		return strings.Compare(a.ID, b.ID)
	})
}

// Compile loads the tree and writes it as one JSON payload, the document
// consumed by the service and the presentation layer.
func Compile(root, output string) error {
	doc, err := LoadTree(root)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	return os.WriteFile(output, append(data, '\n'), 0o644)
}

// LoadJSON reads a compiled season payload.
func LoadJSON(path string) (model.SeasonDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.SeasonDoc{}, fmt.Errorf("read payload: %w", err)
	}
	var doc model.SeasonDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.SeasonDoc{}, fmt.Errorf("decode payload: %w", err)
	}
	return doc, nil
}

func loadYAMLFile(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
